package orchestrator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/mocks"
	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
	"github.com/feral-file/ff-catalog-indexer/internal/promotion"
	"github.com/feral-file/ff-catalog-indexer/internal/providers"
	"github.com/feral-file/ff-catalog-indexer/internal/store"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

const (
	walletA = "0xaaaa000000000000000000000000000000000001"
	walletB = "0xbbbb000000000000000000000000000000000002"
	walletT = "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type testDeps struct {
	adapter    *mocks.MockProviderAdapter
	normalizer *mocks.MockNormalizer
	store      *mocks.MockStore
	promoter   *mocks.MockUnifiedIndexer
	clock      *mocks.MockClock
}

func setup(t *testing.T, cfg orchestrator.Config) (orchestrator.Orchestrator, *testDeps) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := &testDeps{
		adapter:    mocks.NewMockProviderAdapter(ctrl),
		normalizer: mocks.NewMockNormalizer(ctrl),
		store:      mocks.NewMockStore(ctrl),
		promoter:   mocks.NewMockUnifiedIndexer(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	deps.adapter.EXPECT().Blockchain().Return(domain.BlockchainEthereum).AnyTimes()
	deps.adapter.EXPECT().Source().Return(domain.DataSourceOpenSea).AnyTimes()
	deps.clock.EXPECT().Now().Return(fixedNow).AnyTimes()

	cfg.RetryPolicy = providers.RetryPolicy{MaxRetries: 1, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}

	// Normalization passes manual payloads through
	deps.normalizer.EXPECT().Normalize(gomock.Any()).
		DoAndReturn(func(record providers.ProviderRecord) (*domain.IndexerData, error) {
			if record.Manual.Title == "broken" {
				return nil, domain.ErrMissingTokenKey
			}
			return record.Manual, nil
		}).AnyTimes()

	o := orchestrator.New(cfg, providers.NewSet(deps.adapter), deps.normalizer, deps.store, deps.promoter, adapter.NewJSON(), deps.clock, nil)
	return o, deps
}

func token(id string, title string) providers.ProviderRecord {
	return providers.ProviderRecord{
		Source:     domain.DataSourceOpenSea,
		Blockchain: domain.BlockchainEthereum,
		Manual: &domain.IndexerData{
			ContractAddress: "0x1111111111111111111111111111111111111111",
			TokenID:         id,
			Title:           title,
			Blockchain:      domain.BlockchainEthereum,
		},
	}
}

func page(done bool, next string, records ...providers.ProviderRecord) *providers.Page {
	return &providers.Page{Records: records, NextCursor: next, Done: done}
}

func TestIndexAndImport_ConfiguredWallets(t *testing.T) {
	o, deps := setup(t, orchestrator.Config{
		Wallets:          []string{walletA, walletB, walletA},
		PageSize:         2,
		InterWalletDelay: time.Second,
		InterTypeDelay:   100 * time.Millisecond,
		PromoteAfterRun:  true,
	})
	ctx := context.Background()

	deps.store.EXPECT().CreateRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *schema.IndexingRun) error {
			assert.NotEmpty(t, run.ID)
			assert.Equal(t, "cli", run.Trigger)
			assert.Equal(t, 2, run.WalletCount)
			return nil
		})
	deps.adapter.EXPECT().BeginRun()

	gomock.InOrder(
		deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletA, domain.ObservationOwned, 2, "").
			Return(page(false, "c2", token("1", "one"), token("2", "two")), nil),
		deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletA, domain.ObservationOwned, 2, "c2").
			Return(&providers.Page{Records: []providers.ProviderRecord{token("3", "broken")}, Done: true, Filtered: 1}, nil),
		deps.clock.EXPECT().SleepContext(gomock.Any(), 100*time.Millisecond).Return(nil),
		deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletA, domain.ObservationCreated, 2, "").
			Return(page(true, "", token("4", "four")), nil),
		deps.clock.EXPECT().SleepContext(gomock.Any(), time.Second).Return(nil),
		deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletB, domain.ObservationOwned, 2, "").
			Return(nil, adapter.Permanent(errors.New("bad request"))),
		deps.clock.EXPECT().SleepContext(gomock.Any(), 100*time.Millisecond).Return(nil),
		deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletB, domain.ObservationCreated, 2, "").
			Return(page(true, ""), nil),
	)

	deps.store.EXPECT().UpsertIndexRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in store.UpsertIndexInput) (*schema.ArtworkIndex, store.UpsertOutcome, error) {
			switch in.TokenID {
			case "1":
				assert.Equal(t, walletA, *in.Wallet)
				assert.Equal(t, domain.ObservationOwned, in.ObservationType)
				return &schema.ArtworkIndex{ID: 1, ImportStatus: domain.ImportStatusPending}, store.UpsertCreated, nil
			case "2":
				return &schema.ArtworkIndex{ID: 2, ImportStatus: domain.ImportStatusImported}, store.UpsertUnchanged, nil
			case "4":
				assert.Equal(t, domain.ObservationCreated, in.ObservationType)
				return &schema.ArtworkIndex{ID: 4, ImportStatus: domain.ImportStatusImported}, store.UpsertUpdated, nil
			}
			t.Fatalf("unexpected token %s", in.TokenID)
			return nil, "", nil
		}).Times(3)

	deps.promoter.EXPECT().ProcessRecords(gomock.Any(), []int64{4}).
		Return(&promotion.BatchResult{Processed: 1, Imported: 1, Results: []promotion.Result{{IndexID: 4, Success: true}}}, nil)
	deps.promoter.EXPECT().ProcessPending(gomock.Any(), nil, 0).
		Return(&promotion.BatchResult{Processed: 1, Failed: 1, Results: []promotion.Result{{IndexID: 1, Errors: []string{"boom"}}}}, nil)

	var finished store.RunUpdate
	deps.store.EXPECT().FinishRun(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update store.RunUpdate) error {
			finished = update
			return nil
		})

	report, err := o.IndexAndImport(ctx, orchestrator.Request{Trigger: "cli"})
	require.NoError(t, err)

	assert.Equal(t, schema.RunStatusCompleted, report.Status)
	require.Len(t, report.Wallets, 2)

	a := report.Wallets[0]
	assert.Equal(t, walletA, a.Wallet)
	assert.Equal(t, domain.DataSourceOpenSea, a.Provider)
	require.Len(t, a.Passes, 2)
	assert.Equal(t, 2, a.Passes[0].Pages)
	assert.Equal(t, 4, a.Discovered)
	assert.Equal(t, 2, a.Stored)
	assert.Equal(t, 1, a.Unchanged)
	assert.Equal(t, 1, a.Errored)
	assert.Equal(t, 1, a.Filtered)
	assert.Equal(t, []int64{4}, a.ChangedImported)

	b := report.Wallets[1]
	require.Len(t, b.Passes, 2)
	require.NotNil(t, b.Passes[0].Error, "failed page aborts only that pass")
	assert.Contains(t, *b.Passes[0].Error, "bad request")
	assert.Zero(t, b.Discovered)
	assert.True(t, b.HasErrors())

	assert.Equal(t, orchestrator.Counts{Discovered: 4, Stored: 2, Unchanged: 1, Errored: 1, Filtered: 1}, report.Totals)
	assert.Equal(t, 2, report.Failures)

	require.NotNil(t, report.Promotion)
	assert.Equal(t, 2, report.Promotion.Processed)
	assert.Equal(t, 1, report.Promotion.Imported)
	assert.Equal(t, 1, report.Promotion.Failed)
	assert.Equal(t, []string{"index 1: boom"}, report.Promotion.Errors)

	assert.Equal(t, schema.RunStatusCompleted, finished.Status)
	assert.Equal(t, 4, finished.Discovered)
	assert.Equal(t, 2, finished.Stored)
	assert.Equal(t, 1, finished.Errored)
	assert.Contains(t, string(finished.Report), report.ID)
}

func TestIndexAndImport_StorageUnavailableAbortsRun(t *testing.T) {
	o, deps := setup(t, orchestrator.Config{Wallets: []string{walletA, walletB}, PromoteAfterRun: true})

	deps.store.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)
	deps.adapter.EXPECT().BeginRun()
	deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletA, domain.ObservationOwned, gomock.Any(), "").
		Return(page(true, "", token("1", "one"), token("2", "two")), nil)
	deps.store.EXPECT().UpsertIndexRecord(gomock.Any(), gomock.Any()).Return(nil, store.UpsertOutcome(""), errors.New("connection refused"))
	deps.store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	deps.promoter.EXPECT().ProcessPending(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deps.store.EXPECT().FinishRun(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update store.RunUpdate) error {
			assert.Equal(t, schema.RunStatusFailed, update.Status)
			require.NotNil(t, update.Error)
			return nil
		})

	report, err := o.IndexAndImport(context.Background(), orchestrator.Request{})
	require.ErrorIs(t, err, domain.ErrStorageUnavailable)
	require.NotNil(t, report, "the report is returned with the error")
	assert.Equal(t, schema.RunStatusFailed, report.Status)
	require.Len(t, report.Wallets, 1)
	assert.Equal(t, 2, report.Totals.Discovered)
}

func TestIndexAndImport_RecordErrorsDoNotAbort(t *testing.T) {
	o, deps := setup(t, orchestrator.Config{})

	deps.store.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)
	deps.adapter.EXPECT().BeginRun()
	deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletA, domain.ObservationOwned, gomock.Any(), "").
		Return(page(true, "", token("1", "one"), token("2", "two")), nil)
	gomock.InOrder(
		deps.store.EXPECT().UpsertIndexRecord(gomock.Any(), gomock.Any()).Return(nil, store.UpsertOutcome(""), errors.New("value too long")),
		deps.store.EXPECT().UpsertIndexRecord(gomock.Any(), gomock.Any()).Return(&schema.ArtworkIndex{ID: 2}, store.UpsertCreated, nil),
	)
	deps.store.EXPECT().Ping(gomock.Any()).Return(nil)
	deps.store.EXPECT().FinishRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	report, err := o.IndexAndImport(context.Background(), orchestrator.Request{
		Wallet:          walletA,
		ObservationType: domain.ObservationOwned,
	})
	require.NoError(t, err)
	assert.Equal(t, schema.RunStatusCompleted, report.Status)
	assert.Equal(t, 1, report.Totals.Stored)
	assert.Equal(t, 1, report.Totals.Errored)
	require.Len(t, report.Wallets[0].Passes[0].Errors, 1)
	assert.Contains(t, report.Wallets[0].Passes[0].Errors[0], "value too long")
	assert.Nil(t, report.Promotion)
}

func TestIndexAndImport_CanceledBetweenWallets(t *testing.T) {
	o, deps := setup(t, orchestrator.Config{
		Wallets:          []string{walletA, walletB},
		InterWalletDelay: time.Second,
	})

	deps.store.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)
	deps.adapter.EXPECT().BeginRun()
	deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletA, domain.ObservationOwned, gomock.Any(), "").Return(page(true, ""), nil)
	deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletA, domain.ObservationCreated, gomock.Any(), "").Return(page(true, ""), nil)
	deps.clock.EXPECT().SleepContext(gomock.Any(), time.Second).Return(context.Canceled)
	deps.store.EXPECT().FinishRun(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update store.RunUpdate) error {
			assert.Equal(t, schema.RunStatusCanceled, update.Status)
			return nil
		})

	report, err := o.IndexAndImport(context.Background(), orchestrator.Request{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, schema.RunStatusCanceled, report.Status)
	assert.Len(t, report.Wallets, 1)
}

func TestIndexAndImport_MaxPages(t *testing.T) {
	o, deps := setup(t, orchestrator.Config{MaxPages: 2})

	deps.store.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)
	deps.adapter.EXPECT().BeginRun()
	deps.adapter.EXPECT().FetchWalletTokens(gomock.Any(), walletA, domain.ObservationOwned, gomock.Any(), gomock.Any()).
		Return(page(false, "more"), nil).Times(2)
	deps.store.EXPECT().FinishRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	report, err := o.IndexAndImport(context.Background(), orchestrator.Request{Wallet: walletA, ObservationType: domain.ObservationOwned})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Wallets[0].Passes[0].Pages)
}

func TestIndexAndImport_UnsupportedBlockchain(t *testing.T) {
	o, deps := setup(t, orchestrator.Config{})

	deps.store.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(nil)
	deps.adapter.EXPECT().BeginRun()
	deps.store.EXPECT().FinishRun(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	report, err := o.IndexAndImport(context.Background(), orchestrator.Request{Wallet: walletT})
	require.NoError(t, err)
	require.Len(t, report.Wallets, 1)
	require.NotNil(t, report.Wallets[0].Error)
	assert.Contains(t, *report.Wallets[0].Error, domain.ErrUnsupportedBlockchain.Error())
	assert.Equal(t, 1, report.Failures)
}

func TestIndexAndImport_CreateRunFailure(t *testing.T) {
	o, deps := setup(t, orchestrator.Config{})

	deps.store.EXPECT().CreateRun(gomock.Any(), gomock.Any()).Return(errors.New("dial tcp: refused"))
	deps.store.EXPECT().Ping(gomock.Any()).Return(errors.New("dial tcp: refused"))

	_, err := o.IndexAndImport(context.Background(), orchestrator.Request{Wallet: walletA})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestPlan(t *testing.T) {
	o, _ := setup(t, orchestrator.Config{Wallets: []string{walletA, walletT, "not-a-wallet", " " + walletB}})

	tests := []struct {
		name    string
		req     orchestrator.Request
		want    []orchestrator.WalletTarget
		wantErr error
	}{
		{
			name: "all configured wallets",
			req:  orchestrator.Request{},
			want: []orchestrator.WalletTarget{
				{Address: walletA, Blockchain: domain.BlockchainEthereum},
				{Address: walletT, Blockchain: domain.BlockchainTezos},
				{Address: walletB, Blockchain: domain.BlockchainEthereum},
			},
		},
		{
			name: "filtered by blockchain",
			req:  orchestrator.Request{Blockchain: domain.BlockchainTezos},
			want: []orchestrator.WalletTarget{{Address: walletT, Blockchain: domain.BlockchainTezos}},
		},
		{
			name: "single wallet is normalized",
			req:  orchestrator.Request{Wallet: "0xAAAA000000000000000000000000000000000001"},
			want: []orchestrator.WalletTarget{{Address: walletA, Blockchain: domain.BlockchainEthereum}},
		},
		{
			name:    "invalid wallet",
			req:     orchestrator.Request{Wallet: "0x123"},
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:    "wallet on another blockchain",
			req:     orchestrator.Request{Wallet: walletA, Blockchain: domain.BlockchainTezos},
			wantErr: domain.ErrInvalidAddress,
		},
		{
			name:    "unknown blockchain",
			req:     orchestrator.Request{Blockchain: "solana"},
			wantErr: domain.ErrUnsupportedBlockchain,
		},
		{
			name:    "unknown observation type",
			req:     orchestrator.Request{ObservationType: "sold"},
			wantErr: domain.ErrInvalidObservationType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := o.Plan(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestObservationTypes(t *testing.T) {
	assert.Equal(t, []domain.ObservationType{domain.ObservationOwned, domain.ObservationCreated}, orchestrator.ObservationTypes(orchestrator.Request{}))
	assert.Equal(t, []domain.ObservationType{domain.ObservationCreated}, orchestrator.ObservationTypes(orchestrator.Request{ObservationType: domain.ObservationCreated}))
}
