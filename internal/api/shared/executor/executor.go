package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/api/shared/constants"
	"github.com/feral-file/ff-catalog-indexer/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-catalog-indexer/internal/api/shared/errors"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
	"github.com/feral-file/ff-catalog-indexer/internal/promotion"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/temporal"
	"github.com/feral-file/ff-catalog-indexer/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Ready checks the storage boundary is reachable
	Ready(ctx context.Context) error

	// ImportRecords stages manual records. A single record is promoted
	// synchronously; a batch is handed to the promotion workflow, or promoted
	// in-process when no workflow engine is configured.
	ImportRecords(ctx context.Context, records []domain.IndexerData) (*dto.ImportResponse, error)

	// IndexAndImport runs the whole pipeline in-process and returns its report
	IndexAndImport(ctx context.Context, req orchestrator.Request) (*orchestrator.RunReport, error)

	// TriggerIndexAndImport starts the pipeline as a workflow
	TriggerIndexAndImport(ctx context.Context, req orchestrator.Request) (*dto.TriggerWorkflowResponse, error)

	// ListIndexRecords lists staged records collapsed to one per token
	ListIndexRecords(ctx context.Context, filter store.IndexFilter) (*dto.ListResponse[dto.IndexRecordResponse], error)

	// GetIndexRecord retrieves a staged record with its payload, nil when not found
	GetIndexRecord(ctx context.Context, id int64) (*dto.IndexRecordResponse, error)

	// ResetIndexRecord moves a failed or abandoned processing record back to pending
	ResetIndexRecord(ctx context.Context, id int64) (*dto.IndexRecordResponse, error)

	// ResetFailedIndexRecords moves every failed record back to pending
	ResetFailedIndexRecords(ctx context.Context) (*dto.ResetFailedResponse, error)

	// Promote promotes the given records, or the pending ones when none are given
	Promote(ctx context.Context, req dto.PromoteRequest) (*dto.PromotionResponse, error)

	// TriggerPromote starts the promotion of the given records as a workflow
	TriggerPromote(ctx context.Context, indexIDs []int64) (*dto.TriggerWorkflowResponse, error)

	// DeleteArtwork deletes an artwork and decouples its staged records
	DeleteArtwork(ctx context.Context, id int64) (*dto.DeleteArtworkResponse, error)

	// ListArtworks lists catalog artworks newest first
	ListArtworks(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.ArtworkResponse], error)

	// GetArtwork retrieves an artwork with its artists and collection, nil when not found
	GetArtwork(ctx context.Context, id int64) (*dto.ArtworkResponse, error)

	// GetRun retrieves an indexing run, nil when not found
	GetRun(ctx context.Context, id string) (*dto.RunResponse, error)

	// Stats counts staged records per status and catalog entities
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type executor struct {
	store        store.Store
	promoter     promotion.UnifiedIndexer
	orchestrator orchestrator.Orchestrator
	// workflows is nil when no workflow engine is configured
	workflows temporal.TemporalOrchestrator
}

// NewExecutor creates a new API executor. workflows may be nil, in which case
// asynchronous runs are rejected.
func NewExecutor(st store.Store, promoter promotion.UnifiedIndexer, orch orchestrator.Orchestrator, workflows temporal.TemporalOrchestrator) Executor {
	return &executor{
		store:        st,
		promoter:     promoter,
		orchestrator: orch,
		workflows:    workflows,
	}
}

func (e *executor) Ready(ctx context.Context) error {
	if err := e.store.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (e *executor) ImportRecords(ctx context.Context, records []domain.IndexerData) (*dto.ImportResponse, error) {
	if len(records) == 1 {
		result, err := e.promoter.ImportRecord(ctx, records[0])
		if err != nil {
			return nil, fmt.Errorf("failed to import record: %w", err)
		}
		resp := dto.MapImportResult(result)
		return &resp, nil
	}

	if e.workflows == nil {
		batch, err := e.promoter.ImportBatch(ctx, records)
		if err != nil {
			return nil, fmt.Errorf("failed to import records: %w", err)
		}

		logger.InfoCtx(ctx, "Imported manual records",
			zap.Int("processed", batch.Processed),
			zap.Int("imported", batch.Imported),
			zap.Int("failed", batch.Failed))

		return &dto.ImportResponse{PromotionResponse: dto.MapPromotion(batch)}, nil
	}

	staged, err := e.promoter.StageRecords(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to stage records: %w", err)
	}

	resp := &dto.ImportResponse{PromotionResponse: dto.MapPromotion(nil), StagedIDs: staged.IndexIDs}
	for _, r := range staged.Rejected {
		resp.Processed++
		resp.Failed++
		resp.Results = append(resp.Results, r)
	}
	if len(staged.IndexIDs) == 0 {
		return resp, nil
	}

	// Staged records stay pending if the workflow cannot start
	execution, err := e.TriggerPromote(ctx, staged.IndexIDs)
	if err != nil {
		return nil, err
	}
	resp.WorkflowID = execution.WorkflowID
	resp.RunID = execution.RunID

	logger.InfoCtx(ctx, "Queued manual records for promotion",
		zap.Int("staged", len(staged.IndexIDs)),
		zap.Int("rejected", len(staged.Rejected)),
		zap.String("workflow_id", execution.WorkflowID))

	return resp, nil
}

func (e *executor) IndexAndImport(ctx context.Context, req orchestrator.Request) (*orchestrator.RunReport, error) {
	if _, err := e.orchestrator.Plan(req); err != nil {
		return nil, err
	}

	report, err := e.orchestrator.IndexAndImport(ctx, req)
	if report == nil {
		return nil, fmt.Errorf("failed to run index and import: %w", err)
	}
	if err != nil {
		// The report already carries the failure
		logger.WarnCtx(ctx, "Index and import ended early", zap.String("run_id", report.ID), zap.Error(err))
	}
	return report, nil
}

func (e *executor) TriggerIndexAndImport(ctx context.Context, req orchestrator.Request) (*dto.TriggerWorkflowResponse, error) {
	if e.workflows == nil {
		return nil, apierrors.NewServiceUnavailableError("Asynchronous runs are not available")
	}
	if _, err := e.orchestrator.Plan(req); err != nil {
		return nil, err
	}

	execution, err := e.workflows.StartIndexAndImport(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to start index and import workflow: %w", err)
	}
	return &dto.TriggerWorkflowResponse{WorkflowID: execution.WorkflowID, RunID: execution.RunID}, nil
}

func (e *executor) ListIndexRecords(ctx context.Context, filter store.IndexFilter) (*dto.ListResponse[dto.IndexRecordResponse], error) {
	if filter.Limit <= 0 {
		filter.Limit = constants.DEFAULT_INDEX_LIMIT
	}

	records, total, err := e.store.ListIndexRecords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list index records: %w", err)
	}

	return &dto.ListResponse[dto.IndexRecordResponse]{
		Items:  dto.MapIndexRecords(records),
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

func (e *executor) GetIndexRecord(ctx context.Context, id int64) (*dto.IndexRecordResponse, error) {
	record, err := e.store.GetIndexRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get index record: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	resp := dto.MapIndexRecord(record, true)
	return &resp, nil
}

func (e *executor) ResetIndexRecord(ctx context.Context, id int64) (*dto.IndexRecordResponse, error) {
	record, err := e.promoter.ResetIndexRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to reset index record %d: %w", id, err)
	}

	resp := dto.MapIndexRecord(record, false)
	return &resp, nil
}

func (e *executor) ResetFailedIndexRecords(ctx context.Context) (*dto.ResetFailedResponse, error) {
	count, err := e.store.ResetFailedIndexRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset failed index records: %w", err)
	}

	logger.InfoCtx(ctx, "Reset failed index records", zap.Int64("count", count))
	return &dto.ResetFailedResponse{Reset: count}, nil
}

func (e *executor) Promote(ctx context.Context, req dto.PromoteRequest) (*dto.PromotionResponse, error) {
	var (
		batch *promotion.BatchResult
		err   error
	)
	if len(req.IndexIDs) > 0 {
		batch, err = e.promoter.ProcessRecords(ctx, req.IndexIDs)
	} else {
		batch, err = e.promoter.ProcessPending(ctx, req.Since, req.Limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to promote records: %w", err)
	}

	resp := dto.MapPromotion(batch)
	return &resp, nil
}

func (e *executor) TriggerPromote(ctx context.Context, indexIDs []int64) (*dto.TriggerWorkflowResponse, error) {
	if e.workflows == nil {
		return nil, apierrors.NewServiceUnavailableError("Asynchronous promotion is not available")
	}
	if len(indexIDs) == 0 {
		return nil, apierrors.NewValidationError("index_ids are required for asynchronous promotion")
	}

	execution, err := e.workflows.StartPromoteIndexRecords(ctx, indexIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to start promotion workflow: %w", err)
	}
	return &dto.TriggerWorkflowResponse{WorkflowID: execution.WorkflowID, RunID: execution.RunID}, nil
}

func (e *executor) DeleteArtwork(ctx context.Context, id int64) (*dto.DeleteArtworkResponse, error) {
	decoupled, err := e.promoter.DeleteArtwork(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete artwork %d: %w", id, err)
	}
	if decoupled == nil {
		decoupled = []int64{}
	}
	return &dto.DeleteArtworkResponse{ArtworkID: id, DecoupledIndexIDs: decoupled}, nil
}

func (e *executor) ListArtworks(ctx context.Context, limit, offset int) (*dto.ListResponse[dto.ArtworkResponse], error) {
	if limit <= 0 {
		limit = constants.DEFAULT_ARTWORKS_LIMIT
	}

	artworks, total, err := e.store.ListArtworks(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}

	items := make([]dto.ArtworkResponse, 0, len(artworks))
	for i := range artworks {
		items = append(items, dto.MapArtwork(&artworks[i]))
	}
	return &dto.ListResponse[dto.ArtworkResponse]{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (e *executor) GetArtwork(ctx context.Context, id int64) (*dto.ArtworkResponse, error) {
	artwork, err := e.store.GetArtwork(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}
	if artwork == nil {
		return nil, nil
	}

	resp := dto.MapArtwork(artwork)
	return &resp, nil
}

func (e *executor) GetRun(ctx context.Context, id string) (*dto.RunResponse, error) {
	run, err := e.store.GetRun(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	if run == nil {
		return nil, nil
	}

	resp := dto.MapRun(run)
	return &resp, nil
}

func (e *executor) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	byStatus, err := e.store.CountIndexRecordsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count index records: %w", err)
	}

	artists, collections, artworks, err := e.store.CountCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}

	if byStatus == nil {
		byStatus = make(map[domain.ImportStatus]int64)
	}
	for _, status := range []domain.ImportStatus{domain.ImportStatusPending, domain.ImportStatusImported, domain.ImportStatusFailed} {
		if _, ok := byStatus[status]; !ok {
			byStatus[status] = 0
		}
	}

	return &dto.StatsResponse{
		IndexByStatus: byStatus,
		Artists:       artists,
		Collections:   collections,
		Artworks:      artworks,
	}, nil
}
