package temporal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
	"github.com/feral-file/ff-catalog-indexer/internal/workflows"
)

// WorkflowClient is the part of client.Client used to start workflows
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=WorkflowClient=MockWorkflowClient,TemporalOrchestrator=MockTemporalOrchestrator
type WorkflowClient interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// Execution identifies a started workflow
type Execution struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// TemporalOrchestrator starts the catalog workflows on the worker task queue
type TemporalOrchestrator interface {
	// StartIndexAndImport starts a durable indexing run
	StartIndexAndImport(ctx context.Context, req orchestrator.Request) (*Execution, error)

	// StartPromoteIndexRecords starts a durable promotion of the given records
	StartPromoteIndexRecords(ctx context.Context, indexIDs []int64) (*Execution, error)
}

type temporalOrchestrator struct {
	client    WorkflowClient
	taskQueue string
	clock     adapter.Clock
}

// NewTemporalOrchestrator creates a launcher for the catalog workflows
func NewTemporalOrchestrator(c WorkflowClient, taskQueue string, clock adapter.Clock) TemporalOrchestrator {
	return &temporalOrchestrator{
		client:    c,
		taskQueue: taskQueue,
		clock:     clock,
	}
}

func (t *temporalOrchestrator) StartIndexAndImport(ctx context.Context, req orchestrator.Request) (*Execution, error) {
	scope := "all"
	if req.Wallet != "" {
		scope = strings.ToLower(req.Wallet)
	} else if req.Blockchain != "" {
		scope = string(req.Blockchain)
	}

	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("catalog-index-and-import-%s-%s", scope, t.newID()),
		TaskQueue:                t.taskQueue,
		WorkflowExecutionTimeout: 12 * time.Hour,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}
	return t.start(ctx, options, workflows.IndexAndImportWorkflow, req)
}

func (t *temporalOrchestrator) StartPromoteIndexRecords(ctx context.Context, indexIDs []int64) (*Execution, error) {
	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("catalog-promote-%s", t.newID()),
		TaskQueue:                t.taskQueue,
		WorkflowExecutionTimeout: time.Hour,
	}
	return t.start(ctx, options, workflows.PromoteIndexRecordsWorkflow, indexIDs)
}

func (t *temporalOrchestrator) start(ctx context.Context, options client.StartWorkflowOptions, workflow string, arg interface{}) (*Execution, error) {
	run, err := t.client.ExecuteWorkflow(ctx, options, workflow, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to start workflow %s: %w", workflow, err)
	}

	logger.InfoCtx(ctx, "Workflow started",
		zap.String("workflow", workflow),
		zap.String("workflow_id", run.GetID()),
		zap.String("run_id", run.GetRunID()))

	return &Execution{WorkflowID: run.GetID(), RunID: run.GetRunID()}, nil
}

func (t *temporalOrchestrator) newID() string {
	return strings.ToLower(ulid.MustNewDefault(t.clock.Now()).String())
}
