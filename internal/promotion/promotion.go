package promotion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/messaging"
	"github.com/feral-file/ff-catalog-indexer/internal/metrics"
	"github.com/feral-file/ff-catalog-indexer/internal/normalizer"
	"github.com/feral-file/ff-catalog-indexer/internal/providers"
	"github.com/feral-file/ff-catalog-indexer/internal/store"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
	"github.com/feral-file/ff-catalog-indexer/internal/types"
)

const (
	// DEFAULT_WORKERS bounds concurrent promotions
	DEFAULT_WORKERS = 4
	// SNIFF_BYTES is how much of a media file is read to detect its type
	SNIFF_BYTES = 512
)

// Result is the outcome of promoting one staged record
type Result struct {
	IndexID      int64    `json:"index_id"`
	Success      bool     `json:"success"`
	ArtworkID    *int64   `json:"artwork_id,omitempty"`
	ArtistID     *int64   `json:"artist_id,omitempty"`
	CollectionID *int64   `json:"collection_id,omitempty"`
	Errors       []string `json:"errors,omitempty"`
}

// BatchResult aggregates the outcomes of a batch of promotions
type BatchResult struct {
	Processed int      `json:"processed"`
	Imported  int      `json:"imported"`
	Failed    int      `json:"failed"`
	Results   []Result `json:"results"`
}

func (b *BatchResult) add(r Result) {
	b.Processed++
	if r.Success {
		b.Imported++
	} else {
		b.Failed++
	}
	b.Results = append(b.Results, r)
}

// StagedBatch is the outcome of staging manual records
type StagedBatch struct {
	IndexIDs []int64
	Rejected []Result
}

// Config holds promotion engine settings
type Config struct {
	// Workers bounds concurrent promotions in a batch
	Workers int
	// SniffMimeTypes fetches the head of the primary media when the MIME type is missing
	SniffMimeTypes bool
}

// UnifiedIndexer promotes staged records into the catalog
//
//go:generate mockgen -source=promotion.go -destination=../mocks/promotion.go -package=mocks -mock_names=UnifiedIndexer=MockUnifiedIndexer
type UnifiedIndexer interface {
	// ProcessIndexedData promotes one staged record. A promotion failure is
	// reported in the result and recorded on the staged record; the error
	// return is reserved for a missing record, a rejected transition or an
	// unreachable store.
	ProcessIndexedData(ctx context.Context, indexID int64) (*Result, error)

	// ProcessPending promotes pending records with bounded concurrency,
	// optionally only those updated since the given time
	ProcessPending(ctx context.Context, since *time.Time, limit int) (*BatchResult, error)

	// ProcessRecords promotes the given staged records with bounded concurrency
	ProcessRecords(ctx context.Context, indexIDs []int64) (*BatchResult, error)

	// ImportRecord normalizes, stages and synchronously promotes one manual record
	ImportRecord(ctx context.Context, data domain.IndexerData) (*Result, error)

	// StageRecords normalizes and stages manual records without promoting
	// them. Records that fail normalization are reported, not staged.
	StageRecords(ctx context.Context, data []domain.IndexerData) (*StagedBatch, error)

	// ImportBatch stages manual records, then promotes them as a batch
	ImportBatch(ctx context.Context, data []domain.IndexerData) (*BatchResult, error)

	// ResetIndexRecord moves a failed record, or a processing record whose
	// claim has outlived the lease, back to pending
	ResetIndexRecord(ctx context.Context, indexID int64) (*schema.ArtworkIndex, error)

	// DeleteArtwork deletes an artwork and decouples its staged records
	DeleteArtwork(ctx context.Context, artworkID int64) ([]int64, error)
}

type unifiedIndexer struct {
	config     Config
	store      store.Store
	normalizer normalizer.Normalizer
	publisher  messaging.Publisher
	httpClient adapter.HTTPClient
	json       adapter.JSON
	clock      adapter.Clock
	metrics    *metrics.Metrics
}

// NewUnifiedIndexer creates the promotion engine. publisher and m may be nil;
// httpClient is only used when MIME sniffing is enabled.
func NewUnifiedIndexer(
	cfg Config,
	st store.Store,
	norm normalizer.Normalizer,
	publisher messaging.Publisher,
	httpClient adapter.HTTPClient,
	json adapter.JSON,
	clock adapter.Clock,
	m *metrics.Metrics,
) UnifiedIndexer {
	if cfg.Workers <= 0 {
		cfg.Workers = DEFAULT_WORKERS
	}
	if publisher == nil {
		publisher = messaging.Noop{}
	}
	return &unifiedIndexer{
		config:     cfg,
		store:      st,
		normalizer: norm,
		publisher:  publisher,
		httpClient: httpClient,
		json:       json,
		clock:      clock,
		metrics:    m,
	}
}

func (u *unifiedIndexer) ProcessIndexedData(ctx context.Context, indexID int64) (*Result, error) {
	record, err := u.store.GetIndexRecord(ctx, indexID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrIndexNotFound
	}

	if _, err := u.store.UpdateIndexStatus(ctx, indexID, domain.ImportStatusProcessing, store.IndexStatusUpdate{
		At: u.clock.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("failed to mark staged record %d processing: %w", indexID, err)
	}

	result := &Result{IndexID: indexID}
	artwork, err := u.promote(ctx, record, result)
	if err != nil {
		return u.fail(ctx, record, result, err)
	}

	now := u.clock.Now().UTC()
	if _, err := u.store.UpdateIndexStatus(ctx, indexID, domain.ImportStatusImported, store.IndexStatusUpdate{
		ArtworkID: &artwork.ID,
		At:        now,
	}); err != nil {
		u.release(ctx, indexID)
		return nil, fmt.Errorf("failed to mark staged record %d imported: %w", indexID, err)
	}

	result.Success = true
	result.ArtworkID = &artwork.ID
	u.metrics.IncPromotion(metrics.OutcomeImported)

	logger.InfoCtx(ctx, "Promoted staged record",
		zap.Int64("index_id", indexID),
		zap.Int64("artwork_id", artwork.ID),
		zap.String("contract", record.ContractAddress),
		zap.String("token_id", record.TokenID))

	event := &domain.CatalogEvent{
		Type:            domain.EventArtworkImported,
		ArtworkID:       artwork.ID,
		ContractAddress: artwork.ContractAddress,
		TokenID:         artwork.TokenID,
		Blockchain:      artwork.Blockchain,
		CollectionID:    artwork.CollectionID,
		IndexIDs:        []int64{indexID},
		OccurredAt:      now,
	}
	for _, a := range artwork.Artists {
		event.ArtistIDs = append(event.ArtistIDs, a.ID)
	}
	if err := u.publisher.PublishCatalogEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish artwork imported event",
			zap.Int64("artwork_id", artwork.ID), zap.Error(err))
	}

	return result, nil
}

// promote upserts artist, collection and artwork. Entities written before a
// failure are kept; each upsert is idempotent on its identity key.
func (u *unifiedIndexer) promote(ctx context.Context, record *schema.ArtworkIndex, result *Result) (*schema.Artwork, error) {
	data, err := store.DecodePayload(u.json, record.Payload)
	if err != nil {
		return nil, err
	}

	if u.config.SniffMimeTypes && data.MimeType == nil {
		data.MimeType = u.sniffMimeType(ctx, types.FirstNonEmpty(data.AnimationURL, data.ImageURL))
	}

	var artistIDs []int64
	if c := data.Creator; c != nil && c.IdentityKey() != "" {
		artist, err := u.store.UpsertArtist(ctx, store.ArtistInput{
			IdentityKey:      c.IdentityKey(),
			Address:          c.Address,
			Blockchain:       data.Blockchain,
			Name:             c.Name,
			Description:      c.Description,
			AvatarURL:        c.AvatarURL,
			ProfileURL:       c.ProfileURL,
			WebsiteURL:       c.WebsiteURL,
			Verified:         c.Verified,
			Socials:          c.Socials,
			ResolutionSource: c.ResolutionSource,
		})
		if err != nil {
			return nil, err
		}
		result.ArtistID = &artist.ID
		artistIDs = append(artistIDs, artist.ID)
	}

	var collectionID *int64
	if c := data.Collection; c != nil && c.Slug != "" {
		collection, err := u.store.UpsertCollection(ctx, store.CollectionInput{
			Collection: *c,
			Blockchain: data.Blockchain,
			ArtistIDs:  artistIDs,
		})
		if err != nil {
			return nil, err
		}
		collectionID = &collection.ID
		result.CollectionID = collectionID
	}

	return u.store.UpsertArtwork(ctx, store.ArtworkInput{
		Data:         *data,
		DataSource:   record.DataSource,
		CollectionID: collectionID,
		ArtistIDs:    artistIDs,
	})
}

// fail records a promotion failure on the staged record
func (u *unifiedIndexer) fail(ctx context.Context, record *schema.ArtworkIndex, result *Result, cause error) (*Result, error) {
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		u.release(ctx, record.ID)
		return nil, cause
	}

	reason := cause.Error()
	result.Success = false
	result.Errors = append(result.Errors, reason)
	u.metrics.IncPromotion(metrics.OutcomeFailed)

	logger.WarnCtx(ctx, "Promotion failed",
		zap.Int64("index_id", record.ID),
		zap.String("contract", record.ContractAddress),
		zap.String("token_id", record.TokenID),
		zap.Error(cause))

	if _, err := u.store.UpdateIndexStatus(ctx, record.ID, domain.ImportStatusFailed, store.IndexStatusUpdate{
		Error: &reason,
		At:    u.clock.Now().UTC(),
	}); err != nil {
		u.release(ctx, record.ID)
		return nil, fmt.Errorf("failed to mark staged record %d failed: %w", record.ID, err)
	}

	return result, nil
}

// release gives up the processing claim so the record is picked up again.
// When the store cannot be reached either, the claim expires after
// domain.PROCESSING_LEASE and the record is reclaimed then.
func (u *unifiedIndexer) release(ctx context.Context, indexID int64) {
	if _, err := u.store.UpdateIndexStatus(context.WithoutCancel(ctx), indexID, domain.ImportStatusPending, store.IndexStatusUpdate{
		At: u.clock.Now().UTC(),
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to release staged record claim", zap.Int64("index_id", indexID), zap.Error(err))
	}
}

// sniffMimeType reads the head of url and detects its type. Failures leave the type unknown.
func (u *unifiedIndexer) sniffMimeType(ctx context.Context, url *string) *string {
	if url == nil || u.httpClient == nil {
		return nil
	}
	head, err := u.httpClient.GetPrefix(ctx, *url, SNIFF_BYTES)
	if err != nil {
		logger.DebugCtx(ctx, "Failed to sniff media type", zap.String("url", *url), zap.Error(err))
		return nil
	}
	detected := mimetype.Detect(head)
	if detected.Is("application/octet-stream") || detected.Is("text/plain") {
		return nil
	}
	return types.StringPtr(normalizer.CanonicalMimeType(detected.String()))
}

func (u *unifiedIndexer) ProcessPending(ctx context.Context, since *time.Time, limit int) (*BatchResult, error) {
	records, err := u.store.ListPendingIndexRecords(ctx, since, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return u.ProcessRecords(ctx, ids)
}

func (u *unifiedIndexer) ProcessRecords(ctx context.Context, indexIDs []int64) (*BatchResult, error) {
	batch := &BatchResult{Results: make([]Result, 0, len(indexIDs))}
	if len(indexIDs) == 0 {
		return batch, nil
	}

	results := make([]Result, len(indexIDs))
	errs := make([]error, len(indexIDs))

	pool := pond.NewPool(u.config.Workers, pond.WithContext(ctx))
	group := pool.NewGroup()
	for i, id := range indexIDs {
		group.Submit(func() {
			r, err := u.ProcessIndexedData(ctx, id)
			if err != nil {
				errs[i] = err
				results[i] = Result{IndexID: id, Errors: []string{err.Error()}}
				return
			}
			results[i] = *r
		})
	}
	waitErr := group.Wait()
	pool.StopAndWait()

	for i := range indexIDs {
		if errors.Is(errs[i], context.Canceled) || errors.Is(errs[i], context.DeadlineExceeded) {
			continue
		}
		if results[i].IndexID == 0 {
			// never started
			continue
		}
		batch.add(results[i])
	}

	logger.InfoCtx(ctx, "Promotion batch finished",
		zap.Int("requested", len(indexIDs)),
		zap.Int("processed", batch.Processed),
		zap.Int("imported", batch.Imported),
		zap.Int("failed", batch.Failed))

	if err := ctx.Err(); err != nil {
		return batch, err
	}
	if waitErr != nil {
		return batch, waitErr
	}
	return batch, nil
}

func (u *unifiedIndexer) ImportRecord(ctx context.Context, data domain.IndexerData) (*Result, error) {
	normalized, err := u.normalizeManual(data)
	if err != nil {
		return nil, err
	}
	id, err := u.stage(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return u.ProcessIndexedData(ctx, id)
}

func (u *unifiedIndexer) StageRecords(ctx context.Context, data []domain.IndexerData) (*StagedBatch, error) {
	staged := &StagedBatch{IndexIDs: make([]int64, 0, len(data))}

	for i := range data {
		normalized, err := u.normalizeManual(data[i])
		if err != nil {
			staged.Rejected = append(staged.Rejected, Result{Errors: []string{
				fmt.Sprintf("record %d (%s): %s", i, data[i].TokenKey(), err.Error()),
			}})
			continue
		}
		id, err := u.stage(ctx, normalized)
		if err != nil {
			return nil, err
		}
		staged.IndexIDs = append(staged.IndexIDs, id)
	}
	return staged, nil
}

func (u *unifiedIndexer) ImportBatch(ctx context.Context, data []domain.IndexerData) (*BatchResult, error) {
	staged, err := u.StageRecords(ctx, data)
	if err != nil {
		return nil, err
	}

	batch, err := u.ProcessRecords(ctx, staged.IndexIDs)
	if batch != nil {
		for _, r := range staged.Rejected {
			batch.add(r)
		}
	}
	return batch, err
}

// normalizeManual completes a manual record; manual records are staged as owned
func (u *unifiedIndexer) normalizeManual(data domain.IndexerData) (*domain.IndexerData, error) {
	return u.normalizer.Normalize(providers.ProviderRecord{
		Source:          domain.DataSourceManual,
		Blockchain:      data.Blockchain,
		ObservationType: domain.ObservationOwned,
		Manual:          &data,
	})
}

func (u *unifiedIndexer) stage(ctx context.Context, data *domain.IndexerData) (int64, error) {
	input, err := store.NewIndexInput(u.json, data, domain.DataSourceManual, domain.ObservationOwned, "", u.clock.Now().UTC())
	if err != nil {
		return 0, err
	}

	record, _, err := u.store.UpsertIndexRecord(ctx, input)
	if err != nil {
		return 0, err
	}
	return record.ID, nil
}

func (u *unifiedIndexer) ResetIndexRecord(ctx context.Context, indexID int64) (*schema.ArtworkIndex, error) {
	record, err := u.store.GetIndexRecord(ctx, indexID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrIndexNotFound
	}
	now := u.clock.Now().UTC()
	if record.ImportStatus != domain.ImportStatusFailed && !domain.IsStaleClaim(record.ImportStatus, record.ClaimedAt, now) {
		return nil, fmt.Errorf("%w: only failed or abandoned processing records can be reset, record is %s",
			domain.ErrInvalidTransition, record.ImportStatus)
	}
	return u.store.UpdateIndexStatus(ctx, indexID, domain.ImportStatusPending, store.IndexStatusUpdate{At: now})
}

func (u *unifiedIndexer) DeleteArtwork(ctx context.Context, artworkID int64) ([]int64, error) {
	artwork, err := u.store.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	if artwork == nil {
		return nil, domain.ErrArtworkNotFound
	}

	decoupled, err := u.store.DeleteArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Deleted artwork",
		zap.Int64("artwork_id", artworkID),
		zap.Int64s("decoupled", decoupled))

	if err := u.publisher.PublishCatalogEvent(ctx, &domain.CatalogEvent{
		Type:            domain.EventArtworkDecoupled,
		ArtworkID:       artworkID,
		ContractAddress: artwork.ContractAddress,
		TokenID:         artwork.TokenID,
		Blockchain:      artwork.Blockchain,
		IndexIDs:        decoupled,
		OccurredAt:      u.clock.Now().UTC(),
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to publish artwork decoupled event",
			zap.Int64("artwork_id", artworkID), zap.Error(err))
	}

	return decoupled, nil
}
