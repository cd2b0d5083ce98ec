package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
	"github.com/feral-file/ff-catalog-indexer/internal/promotion"
)

// Workflow names as registered on the worker
const (
	IndexAndImportWorkflow      = "IndexAndImport"
	PromoteIndexRecordsWorkflow = "PromoteIndexRecords"
)

// WorkerCatalog defines the durable catalog workflows
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_catalog.go -package=mocks -mock_names=WorkerCatalog=MockWorkerCatalog
type WorkerCatalog interface {
	// IndexAndImport visits every wallet of the request as an activity, sleeping
	// between wallets, then optionally promotes what was staged
	IndexAndImport(ctx workflow.Context, req orchestrator.Request) (*orchestrator.RunReport, error)

	// PromoteIndexRecords promotes the given staged records in parallel
	PromoteIndexRecords(ctx workflow.Context, indexIDs []int64) (*promotion.BatchResult, error)
}

type WorkerCatalogConfig struct {
	// InterWalletDelay is the durable pause between two wallets
	InterWalletDelay time.Duration
	// WalletTimeout bounds a single wallet activity
	WalletTimeout time.Duration
	// ActivityMaxAttempts bounds activity retries; storage outages are retried
	ActivityMaxAttempts int32
	// PromoteAfterRun promotes pending and changed records at the end of a run
	PromoteAfterRun bool
	// PromotionConcurrency bounds the parallel promotion activities
	PromotionConcurrency int
}

// workerCatalog is the concrete implementation of WorkerCatalog
type workerCatalog struct {
	config   WorkerCatalogConfig
	executor Executor
}

// NewWorkerCatalog creates a new worker catalog instance
func NewWorkerCatalog(executor Executor, config WorkerCatalogConfig) WorkerCatalog {
	if config.WalletTimeout <= 0 {
		config.WalletTimeout = 30 * time.Minute
	}
	if config.ActivityMaxAttempts <= 0 {
		config.ActivityMaxAttempts = 3
	}
	if config.PromotionConcurrency <= 0 {
		config.PromotionConcurrency = promotion.DEFAULT_WORKERS
	}
	return &workerCatalog{
		executor: executor,
		config:   config,
	}
}
