package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
	"github.com/feral-file/ff-catalog-indexer/internal/promotion"
)

// IndexAndImport runs one indexing run durably. Wallets are visited in
// order; a wallet failure is part of its report and only storage outages
// or cancellation end the run early. The run report is persisted in every case.
func (w *workerCatalog) IndexAndImport(ctx workflow.Context, req orchestrator.Request) (*orchestrator.RunReport, error) {
	log := logger.With(logger.WorkflowFields(ctx)...)
	if req.Trigger == "" {
		req.Trigger = "workflow"
	}
	log.Info("Starting index and import",
		zap.String("wallet", req.Wallet),
		zap.String("blockchain", string(req.Blockchain)),
		zap.String("observation_type", string(req.ObservationType)))

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: w.config.WalletTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        10 * time.Second,
			BackoffCoefficient:     2,
			MaximumAttempts:        w.config.ActivityMaxAttempts,
			NonRetryableErrorTypes: []string{ErrTypeInvalidRequest},
		},
	})

	var targets []orchestrator.WalletTarget
	if err := workflow.ExecuteActivity(ctx, w.executor.PlanRun, req).Get(ctx, &targets); err != nil {
		log.Error("Failed to plan run", zap.Error(err))
		return nil, err
	}

	var report *orchestrator.RunReport
	if err := workflow.ExecuteActivity(ctx, w.executor.BeginRun, req, len(targets)).Get(ctx, &report); err != nil {
		log.Error("Failed to begin run", zap.Error(err))
		return nil, err
	}

	runErr := w.indexWallets(ctx, report, targets, orchestrator.ObservationTypes(req))

	if runErr == nil && w.config.PromoteAfterRun {
		var summary *orchestrator.PromotionSummary
		runErr = workflow.ExecuteActivity(ctx, w.executor.PromotePending, report.ChangedImported()).Get(ctx, &summary)
		report.Promotion = summary
	}

	outcome := RunOutcome{}
	if runErr != nil {
		outcome.Error = runErr.Error()
		outcome.Canceled = temporal.IsCanceledError(runErr)
	}
	report.Status = outcome.Status()

	// Stored on a disconnected context so canceled runs are recorded too
	completeCtx, _ := workflow.NewDisconnectedContext(ctx)
	if err := workflow.ExecuteActivity(completeCtx, w.executor.CompleteRun, report, outcome).Get(completeCtx, nil); err != nil {
		log.Error("Failed to store run report", zap.Error(err), zap.String("run_id", report.ID))
	}

	log.Info("Index and import finished",
		zap.String("run_id", report.ID),
		zap.String("status", string(report.Status)),
		zap.Int("wallets", len(report.Wallets)),
		zap.Int("discovered", report.Totals.Discovered),
		zap.Int("stored", report.Totals.Stored),
		zap.Int("errored", report.Totals.Errored))

	return report, runErr
}

func (w *workerCatalog) indexWallets(ctx workflow.Context, report *orchestrator.RunReport, targets []orchestrator.WalletTarget, observationTypes []domain.ObservationType) error {
	for i, target := range targets {
		if i > 0 && w.config.InterWalletDelay > 0 {
			if err := workflow.Sleep(ctx, w.config.InterWalletDelay); err != nil {
				return err
			}
		}

		var walletReport *orchestrator.WalletReport
		err := workflow.ExecuteActivity(ctx, w.executor.IndexWallet, target, observationTypes).Get(ctx, &walletReport)
		if err != nil {
			return fmt.Errorf("failed to index wallet %s: %w", target.Address, err)
		}
		if walletReport != nil {
			report.AddWallet(*walletReport)
		}
	}
	return nil
}

// PromoteIndexRecords promotes staged records in parallel, at most
// PromotionConcurrency at a time. A record that cannot be promoted is
// reported in the result; the workflow itself only fails on cancellation.
func (w *workerCatalog) PromoteIndexRecords(ctx workflow.Context, indexIDs []int64) (*promotion.BatchResult, error) {
	log := logger.With(logger.WorkflowFields(ctx)...)
	log.Info("Starting promotion", zap.Int("records", len(indexIDs)))

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts:        w.config.ActivityMaxAttempts,
			NonRetryableErrorTypes: []string{ErrTypeInvalidRecord},
		},
	})

	batch := &promotion.BatchResult{Results: make([]promotion.Result, 0, len(indexIDs))}
	for start := 0; start < len(indexIDs); start += w.config.PromotionConcurrency {
		end := min(start+w.config.PromotionConcurrency, len(indexIDs))

		futures := make([]workflow.Future, 0, end-start)
		for _, id := range indexIDs[start:end] {
			futures = append(futures, workflow.ExecuteActivity(ctx, w.executor.PromoteIndexRecord, id))
		}

		for i, future := range futures {
			id := indexIDs[start+i]
			var result *promotion.Result
			if err := future.Get(ctx, &result); err != nil {
				if temporal.IsCanceledError(err) {
					return batch, err
				}
				result = &promotion.Result{IndexID: id, Errors: []string{err.Error()}}
			}

			batch.Processed++
			if result.Success {
				batch.Imported++
			} else {
				batch.Failed++
			}
			batch.Results = append(batch.Results, *result)
		}
	}

	log.Info("Promotion finished",
		zap.Int("processed", batch.Processed),
		zap.Int("imported", batch.Imported),
		zap.Int("failed", batch.Failed))
	return batch, nil
}
