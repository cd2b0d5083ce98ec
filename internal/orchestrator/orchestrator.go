package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/metrics"
	"github.com/feral-file/ff-catalog-indexer/internal/normalizer"
	"github.com/feral-file/ff-catalog-indexer/internal/promotion"
	"github.com/feral-file/ff-catalog-indexer/internal/providers"
	"github.com/feral-file/ff-catalog-indexer/internal/store"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
	"github.com/feral-file/ff-catalog-indexer/internal/types"
)

const (
	DEFAULT_PAGE_SIZE = 50
	DEFAULT_MAX_PAGES = 200
)

// Config holds batch run settings
type Config struct {
	Wallets          []string
	PageSize         int
	InterWalletDelay time.Duration
	InterTypeDelay   time.Duration
	MaxPages         int
	RetryPolicy      providers.RetryPolicy
	// PromoteAfterRun promotes pending and changed records once every wallet was visited
	PromoteAfterRun bool
}

// Orchestrator drives provider adapters across wallets and stages what they return
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/orchestrator.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// IndexAndImport runs the whole pipeline for the request. The report is
	// always returned; the error is set when the run was canceled or the
	// store became unreachable.
	IndexAndImport(ctx context.Context, req Request) (*RunReport, error)

	// Plan resolves the wallets a request covers
	Plan(req Request) ([]WalletTarget, error)

	// BeginRun persists a new run and resets per-run provider caches
	BeginRun(ctx context.Context, req Request, walletCount int) (*RunReport, error)

	// IndexWallet pages every requested observation type of one wallet
	IndexWallet(ctx context.Context, target WalletTarget, observationTypes []domain.ObservationType) (*WalletReport, error)

	// Promote promotes pending records and the given changed imported records
	Promote(ctx context.Context, changedImported []int64) (*PromotionSummary, error)

	// CompleteRun stores the final report of a run
	CompleteRun(ctx context.Context, report *RunReport, runErr error) error
}

type orchestrator struct {
	config     Config
	adapters   *providers.Set
	normalizer normalizer.Normalizer
	store      store.Store
	promoter   promotion.UnifiedIndexer
	json       adapter.JSON
	clock      adapter.Clock
	metrics    *metrics.Metrics
}

// New creates an orchestrator. promoter is only used when promotion is requested; m may be nil.
func New(
	cfg Config,
	adapters *providers.Set,
	norm normalizer.Normalizer,
	st store.Store,
	promoter promotion.UnifiedIndexer,
	json adapter.JSON,
	clock adapter.Clock,
	m *metrics.Metrics,
) Orchestrator {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DEFAULT_PAGE_SIZE
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DEFAULT_MAX_PAGES
	}
	if cfg.RetryPolicy == (providers.RetryPolicy{}) {
		cfg.RetryPolicy = providers.DefaultRetryPolicy()
	}
	return &orchestrator{
		config:     cfg,
		adapters:   adapters,
		normalizer: norm,
		store:      st,
		promoter:   promoter,
		json:       json,
		clock:      clock,
		metrics:    m,
	}
}

// ObservationTypes returns the observation types a request covers, owned first
func ObservationTypes(req Request) []domain.ObservationType {
	if req.ObservationType != "" {
		return []domain.ObservationType{req.ObservationType}
	}
	return domain.ObservationTypes
}

func (o *orchestrator) Plan(req Request) ([]WalletTarget, error) {
	if req.Blockchain != "" && !domain.IsValidBlockchain(req.Blockchain) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedBlockchain, req.Blockchain)
	}
	if req.ObservationType != "" && !domain.IsValidObservationType(req.ObservationType) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidObservationType, req.ObservationType)
	}

	if req.Wallet != "" {
		if !domain.IsValidAddress(req.Wallet) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, req.Wallet)
		}
		blockchain := domain.AddressToBlockchain(req.Wallet)
		if req.Blockchain != "" && req.Blockchain != blockchain {
			return nil, fmt.Errorf("%w: wallet %s is not a %s address", domain.ErrInvalidAddress, req.Wallet, req.Blockchain)
		}
		return []WalletTarget{{Address: domain.NormalizeAddress(req.Wallet), Blockchain: blockchain}}, nil
	}

	seen := make(map[string]bool, len(o.config.Wallets))
	targets := make([]WalletTarget, 0, len(o.config.Wallets))
	for _, wallet := range domain.NormalizeAddresses(o.config.Wallets) {
		if seen[wallet] {
			continue
		}
		seen[wallet] = true

		if !domain.IsValidAddress(wallet) {
			logger.Warn("Skipping invalid configured wallet", zap.String("wallet", wallet))
			continue
		}
		blockchain := domain.AddressToBlockchain(wallet)
		if req.Blockchain != "" && blockchain != req.Blockchain {
			continue
		}
		targets = append(targets, WalletTarget{Address: wallet, Blockchain: blockchain})
	}
	return targets, nil
}

func (o *orchestrator) IndexAndImport(ctx context.Context, req Request) (*RunReport, error) {
	targets, err := o.Plan(req)
	if err != nil {
		return nil, err
	}

	report, err := o.BeginRun(ctx, req, len(targets))
	if err != nil {
		return nil, err
	}

	runErr := o.run(ctx, report, targets, ObservationTypes(req))

	if runErr == nil && o.config.PromoteAfterRun && o.promoter != nil {
		summary, err := o.Promote(ctx, report.ChangedImported())
		report.Promotion = summary
		if err != nil && (isCanceled(err) || errors.Is(err, domain.ErrStorageUnavailable)) {
			runErr = err
		}
	}

	if err := o.CompleteRun(ctx, report, runErr); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to store run report: %w", err), zap.String("run_id", report.ID))
	}
	return report, runErr
}

// run visits the wallets in order, sleeping between them
func (o *orchestrator) run(ctx context.Context, report *RunReport, targets []WalletTarget, observationTypes []domain.ObservationType) error {
	for i, target := range targets {
		if i > 0 && o.config.InterWalletDelay > 0 {
			if err := o.clock.SleepContext(ctx, o.config.InterWalletDelay); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		walletReport, err := o.IndexWallet(ctx, target, observationTypes)
		if walletReport != nil {
			report.AddWallet(*walletReport)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (o *orchestrator) BeginRun(ctx context.Context, req Request, walletCount int) (*RunReport, error) {
	now := o.clock.Now().UTC()
	report := &RunReport{
		ID:          ulid.MustNewDefault(now).String(),
		Request:     req,
		Status:      schema.RunStatusRunning,
		StartedAt:   now,
		WalletCount: walletCount,
		Wallets:     []WalletReport{},
	}

	run := &schema.IndexingRun{
		ID:              report.ID,
		Trigger:         req.Trigger,
		Status:          schema.RunStatusRunning,
		Wallet:          types.NonEmptyStringPtr(req.Wallet),
		Blockchain:      types.NonEmptyStringPtr(string(req.Blockchain)),
		ObservationType: types.NonEmptyStringPtr(string(req.ObservationType)),
		WalletCount:     walletCount,
		StartedAt:       now,
	}
	if err := o.store.CreateRun(ctx, run); err != nil {
		return nil, o.storageError(ctx, err)
	}

	o.adapters.BeginRun()

	logger.InfoCtx(ctx, "Indexing run started",
		zap.String("run_id", report.ID),
		zap.String("trigger", req.Trigger),
		zap.Int("wallets", walletCount))
	return report, nil
}

func (o *orchestrator) IndexWallet(ctx context.Context, target WalletTarget, observationTypes []domain.ObservationType) (*WalletReport, error) {
	report := &WalletReport{
		Wallet:     target.Address,
		Blockchain: target.Blockchain,
		Passes:     []PassReport{},
	}

	a, err := o.adapters.ForBlockchain(target.Blockchain)
	if err != nil {
		report.Error = types.StringPtr(err.Error())
		logger.WarnCtx(ctx, "No provider for wallet", zap.String("wallet", target.Address), zap.Error(err))
		return report, nil
	}
	report.Provider = a.Source()

	for i, observationType := range observationTypes {
		if i > 0 && o.config.InterTypeDelay > 0 {
			if err := o.clock.SleepContext(ctx, o.config.InterTypeDelay); err != nil {
				return report, err
			}
		}

		pass, changed, err := o.indexPass(ctx, a, target.Address, observationType)
		report.Passes = append(report.Passes, *pass)
		report.Counts.add(pass.Counts)
		report.ChangedImported = append(report.ChangedImported, changed...)
		if err != nil {
			return report, err
		}
	}

	logger.InfoCtx(ctx, "Wallet indexed",
		zap.String("wallet", target.Address),
		zap.String("provider", string(report.Provider)),
		zap.Int("discovered", report.Discovered),
		zap.Int("stored", report.Stored),
		zap.Int("unchanged", report.Unchanged),
		zap.Int("errored", report.Errored),
		zap.Int("filtered", report.Filtered))

	return report, nil
}

// indexPass pages one observation type of a wallet in provider order. A
// failed page ends the pass and is reported; only cancellation and storage
// failures are returned.
func (o *orchestrator) indexPass(ctx context.Context, a providers.Adapter, wallet string, observationType domain.ObservationType) (*PassReport, []int64, error) {
	pass := &PassReport{ObservationType: observationType}
	var changed []int64
	provider := string(a.Source())

	cursor := ""
	for pass.Pages < o.config.MaxPages {
		if err := ctx.Err(); err != nil {
			return pass, changed, err
		}

		page, err := providers.FetchPage(ctx, a, o.config.RetryPolicy, wallet, observationType, o.config.PageSize, cursor)
		if err != nil {
			if isCanceled(err) {
				return pass, changed, err
			}
			pass.Error = types.StringPtr(err.Error())
			logger.WarnCtx(ctx, "Wallet pass aborted",
				zap.String("wallet", wallet),
				zap.String("observation_type", string(observationType)),
				zap.Int("page", pass.Pages),
				zap.Error(err))
			return pass, changed, nil
		}

		pass.Pages++
		pass.Filtered += page.Filtered
		pass.Discovered += len(page.Records)
		o.metrics.AddDiscovered(provider, len(page.Records))

		stored := 0
		for _, record := range page.Records {
			id, outcome, err := o.stage(ctx, record, wallet, observationType)
			if err != nil {
				if isCanceled(err) || errors.Is(err, domain.ErrStorageUnavailable) {
					return pass, changed, err
				}
				pass.recordError(fmt.Sprintf("%s: %s", record.TokenKey(), err.Error()))
				continue
			}
			switch outcome.outcome {
			case store.UpsertCreated, store.UpsertUpdated:
				pass.Stored++
				stored++
				if outcome.reimport {
					changed = append(changed, id)
				}
			case store.UpsertUnchanged:
				pass.Unchanged++
			}
		}
		o.metrics.AddStaged(provider, stored)

		logger.DebugCtx(ctx, "Page staged",
			zap.String("wallet", wallet),
			zap.String("observation_type", string(observationType)),
			zap.Int("page", pass.Pages),
			zap.Int("records", len(page.Records)),
			zap.Int("stored", stored))

		if page.Done || page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	return pass, changed, nil
}

type stageOutcome struct {
	outcome store.UpsertOutcome
	// reimport is set when an already imported record changed
	reimport bool
}

// stage normalizes one provider record and upserts it into the staging index
func (o *orchestrator) stage(ctx context.Context, record providers.ProviderRecord, wallet string, observationType domain.ObservationType) (int64, stageOutcome, error) {
	data, err := o.normalizer.Normalize(record)
	if err != nil {
		return 0, stageOutcome{}, err
	}

	input, err := store.NewIndexInput(o.json, data, record.Source, observationType, wallet, o.clock.Now().UTC())
	if err != nil {
		return 0, stageOutcome{}, err
	}

	staged, outcome, err := o.store.UpsertIndexRecord(ctx, input)
	if err != nil {
		return 0, stageOutcome{}, o.storageError(ctx, err)
	}

	return staged.ID, stageOutcome{
		outcome:  outcome,
		reimport: outcome == store.UpsertUpdated && staged.ImportStatus == domain.ImportStatusImported,
	}, nil
}

// storageError turns a store failure into ErrStorageUnavailable when the
// database no longer answers
func (o *orchestrator) storageError(ctx context.Context, err error) error {
	if isCanceled(err) {
		return err
	}
	if pingErr := o.store.Ping(ctx); pingErr != nil {
		if isCanceled(pingErr) {
			return pingErr
		}
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return err
}

func (o *orchestrator) Promote(ctx context.Context, changedImported []int64) (*PromotionSummary, error) {
	summary := &PromotionSummary{}
	if o.promoter == nil {
		return summary, nil
	}

	merge := func(batch *promotion.BatchResult) {
		if batch == nil {
			return
		}
		summary.Processed += batch.Processed
		summary.Imported += batch.Imported
		summary.Failed += batch.Failed
		for _, r := range batch.Results {
			for _, e := range r.Errors {
				if len(summary.Errors) < maxReportedErrors {
					summary.Errors = append(summary.Errors, fmt.Sprintf("index %d: %s", r.IndexID, e))
				}
			}
		}
	}

	if len(changedImported) > 0 {
		batch, err := o.promoter.ProcessRecords(ctx, changedImported)
		merge(batch)
		if err != nil {
			return summary, o.storageError(ctx, err)
		}
	}

	batch, err := o.promoter.ProcessPending(ctx, nil, 0)
	merge(batch)
	if err != nil {
		return summary, o.storageError(ctx, err)
	}

	logger.InfoCtx(ctx, "Promotion finished",
		zap.Int("processed", summary.Processed),
		zap.Int("imported", summary.Imported),
		zap.Int("failed", summary.Failed))
	return summary, nil
}

func (o *orchestrator) CompleteRun(ctx context.Context, report *RunReport, runErr error) error {
	finished := o.clock.Now().UTC()
	report.FinishedAt = &finished

	switch {
	case runErr == nil:
		report.Status = schema.RunStatusCompleted
	case isCanceled(runErr):
		report.Status = schema.RunStatusCanceled
		report.Error = types.StringPtr(runErr.Error())
	default:
		report.Status = schema.RunStatusFailed
		report.Error = types.StringPtr(runErr.Error())
	}

	o.metrics.ObserveRun(string(report.Status), finished.Sub(report.StartedAt))

	logger.InfoCtx(ctx, "Indexing run finished",
		zap.String("run_id", report.ID),
		zap.String("status", string(report.Status)),
		zap.Int("wallets", len(report.Wallets)),
		zap.Int("discovered", report.Totals.Discovered),
		zap.Int("stored", report.Totals.Stored),
		zap.Int("unchanged", report.Totals.Unchanged),
		zap.Int("errored", report.Totals.Errored),
		zap.Int("wallet_failures", report.Failures))

	body, err := o.json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}

	// The run row is written even when the caller's context is gone
	return o.store.FinishRun(context.WithoutCancel(ctx), report.ID, store.RunUpdate{
		Status:      report.Status,
		WalletCount: report.WalletCount,
		Discovered:  report.Totals.Discovered,
		Stored:      report.Totals.Stored,
		Errored:     report.Totals.Errored,
		Report:      body,
		Error:       report.Error,
		FinishedAt:  finished,
	})
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
