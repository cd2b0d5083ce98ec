package workflows

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
	"github.com/feral-file/ff-catalog-indexer/internal/promotion"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

// Non-retryable application error types
const (
	ErrTypeInvalidRequest = "InvalidRequest"
	ErrTypeInvalidRecord  = "InvalidRecord"
)

// RunOutcome is how a workflow run ended; errors do not survive activity serialization
type RunOutcome struct {
	Error    string `json:"error,omitempty"`
	Canceled bool   `json:"canceled,omitempty"`
}

// Status maps the outcome to the persisted run status
func (o RunOutcome) Status() schema.RunStatus {
	switch {
	case o.Canceled:
		return schema.RunStatusCanceled
	case o.Error != "":
		return schema.RunStatusFailed
	default:
		return schema.RunStatusCompleted
	}
}

// err rebuilds the run error for the orchestrator
func (o RunOutcome) err() error {
	switch {
	case o.Canceled && o.Error != "":
		return fmt.Errorf("%w: %s", context.Canceled, o.Error)
	case o.Canceled:
		return context.Canceled
	case o.Error != "":
		return errors.New(o.Error)
	default:
		return nil
	}
}

// Executor defines the catalog activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor.go -package=mocks -mock_names=Executor=MockCatalogExecutor
type Executor interface {
	// PlanRun resolves the wallets a request covers
	PlanRun(ctx context.Context, req orchestrator.Request) ([]orchestrator.WalletTarget, error)

	// BeginRun persists a new indexing run
	BeginRun(ctx context.Context, req orchestrator.Request, walletCount int) (*orchestrator.RunReport, error)

	// IndexWallet pages and stages every requested observation type of one wallet
	IndexWallet(ctx context.Context, target orchestrator.WalletTarget, observationTypes []domain.ObservationType) (*orchestrator.WalletReport, error)

	// PromotePending promotes the changed imported records, then every pending record
	PromotePending(ctx context.Context, changedImported []int64) (*orchestrator.PromotionSummary, error)

	// CompleteRun stores the final report of a run
	CompleteRun(ctx context.Context, report *orchestrator.RunReport, outcome RunOutcome) error

	// PromoteIndexRecord promotes a single staged record
	PromoteIndexRecord(ctx context.Context, indexID int64) (*promotion.Result, error)
}

type executor struct {
	orchestrator     orchestrator.Orchestrator
	promoter         promotion.UnifiedIndexer
	temporalActivity adapter.Activity
}

// NewExecutor creates a new executor instance
func NewExecutor(orch orchestrator.Orchestrator, promoter promotion.UnifiedIndexer, temporalActivity adapter.Activity) Executor {
	return &executor{
		orchestrator:     orch,
		promoter:         promoter,
		temporalActivity: temporalActivity,
	}
}

func (e *executor) PlanRun(ctx context.Context, req orchestrator.Request) ([]orchestrator.WalletTarget, error) {
	targets, err := e.orchestrator.Plan(req)
	if err != nil {
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidRequest, err)
	}
	return targets, nil
}

func (e *executor) BeginRun(ctx context.Context, req orchestrator.Request, walletCount int) (*orchestrator.RunReport, error) {
	return e.orchestrator.BeginRun(ctx, req, walletCount)
}

func (e *executor) IndexWallet(ctx context.Context, target orchestrator.WalletTarget, observationTypes []domain.ObservationType) (*orchestrator.WalletReport, error) {
	info := e.temporalActivity.GetInfo(ctx)
	logger.InfoCtx(ctx, "Indexing wallet",
		zap.String("wallet", target.Address),
		zap.String("blockchain", string(target.Blockchain)),
		zap.Int32("attempt", info.Attempt))

	e.temporalActivity.RecordHeartbeat(ctx, target.Address)

	report, err := e.orchestrator.IndexWallet(ctx, target, observationTypes)
	if err != nil {
		return nil, fmt.Errorf("failed to index wallet %s: %w", target.Address, err)
	}
	return report, nil
}

func (e *executor) PromotePending(ctx context.Context, changedImported []int64) (*orchestrator.PromotionSummary, error) {
	return e.orchestrator.Promote(ctx, changedImported)
}

func (e *executor) CompleteRun(ctx context.Context, report *orchestrator.RunReport, outcome RunOutcome) error {
	if report == nil {
		return temporal.NewNonRetryableApplicationError("missing run report", ErrTypeInvalidRequest, nil)
	}
	return e.orchestrator.CompleteRun(ctx, report, outcome.err())
}

func (e *executor) PromoteIndexRecord(ctx context.Context, indexID int64) (*promotion.Result, error) {
	result, err := e.promoter.ProcessIndexedData(ctx, indexID)
	if err != nil {
		if errors.Is(err, domain.ErrIndexNotFound) || errors.Is(err, domain.ErrInvalidTransition) {
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidRecord, err)
		}
		return nil, err
	}
	return result, nil
}
