package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
	"github.com/feral-file/ff-catalog-indexer/internal/types"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const (
	testContract = "0x1111111111111111111111111111111111111111"
	testWalletA  = "0xaaaa000000000000000000000000000000000001"
	testWalletB  = "0xbbbb000000000000000000000000000000000002"
)

// buildTestData creates normalized data for a token
func buildTestData(contract, tokenID, title string) *domain.IndexerData {
	return &domain.IndexerData{
		ContractAddress: contract,
		TokenID:         tokenID,
		Title:           title,
		Blockchain:      domain.BlockchainEthereum,
	}
}

// buildTestIndexInput creates a staging upsert for a token
func buildTestIndexInput(t *testing.T, data *domain.IndexerData, obs domain.ObservationType, wallet string) UpsertIndexInput {
	input, err := NewIndexInput(adapter.NewJSON(), data, domain.DataSourceOpenSea, obs, wallet, time.Now().UTC())
	require.NoError(t, err)
	return input
}

// stageTestRecord stages a token and returns the record
func stageTestRecord(t *testing.T, store Store, data *domain.IndexerData, obs domain.ObservationType, wallet string) *schema.ArtworkIndex {
	record, _, err := store.UpsertIndexRecord(context.Background(), buildTestIndexInput(t, data, obs, wallet))
	require.NoError(t, err)
	return record
}

// importTestRecord walks a staged record through processing to imported
func importTestRecord(t *testing.T, store Store, id int64, artworkID int64) {
	ctx := context.Background()
	_, err := store.UpdateIndexStatus(ctx, id, domain.ImportStatusProcessing, IndexStatusUpdate{})
	require.NoError(t, err)
	_, err = store.UpdateIndexStatus(ctx, id, domain.ImportStatusImported, IndexStatusUpdate{ArtworkID: &artworkID})
	require.NoError(t, err)
}

// =============================================================================
// Test: Staging
// =============================================================================

func testUpsertIndexRecord(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates then detects unchanged and updated payloads", func(t *testing.T) {
		data := buildTestData(testContract, "1", "First")

		created, outcome, err := store.UpsertIndexRecord(ctx, buildTestIndexInput(t, data, domain.ObservationOwned, testWalletA))
		require.NoError(t, err)
		assert.Equal(t, UpsertCreated, outcome)
		assert.Equal(t, domain.ImportStatusPending, created.ImportStatus)
		assert.Equal(t, testWalletA, *created.Wallet)

		same, outcome, err := store.UpsertIndexRecord(ctx, buildTestIndexInput(t, data, domain.ObservationOwned, testWalletA))
		require.NoError(t, err)
		assert.Equal(t, UpsertUnchanged, outcome)
		assert.Equal(t, created.ID, same.ID)

		data.Title = "Renamed"
		updated, outcome, err := store.UpsertIndexRecord(ctx, buildTestIndexInput(t, data, domain.ObservationOwned, testWalletB))
		require.NoError(t, err)
		assert.Equal(t, UpsertUpdated, outcome)
		assert.Equal(t, created.ID, updated.ID)

		got, err := store.GetIndexRecord(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Title)
		assert.Equal(t, testWalletB, *got.Wallet)

		decoded, err := DecodePayload(adapter.NewJSON(), got.Payload)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", decoded.Title)
	})

	t.Run("observation type is part of the key", func(t *testing.T) {
		data := buildTestData(testContract, "2", "Two")
		owned := stageTestRecord(t, store, data, domain.ObservationOwned, testWalletA)
		created := stageTestRecord(t, store, data, domain.ObservationCreated, testWalletA)
		assert.NotEqual(t, owned.ID, created.ID)
	})

	t.Run("re-staging preserves import status and artwork reference", func(t *testing.T) {
		data := buildTestData(testContract, "3", "Three")
		record := stageTestRecord(t, store, data, domain.ObservationOwned, testWalletA)

		artwork, err := store.UpsertArtwork(ctx, ArtworkInput{Data: *data, DataSource: domain.DataSourceOpenSea})
		require.NoError(t, err)
		importTestRecord(t, store, record.ID, artwork.ID)

		data.Title = "Three v2"
		_, outcome, err := store.UpsertIndexRecord(ctx, buildTestIndexInput(t, data, domain.ObservationOwned, testWalletA))
		require.NoError(t, err)
		assert.Equal(t, UpsertUpdated, outcome)

		got, err := store.GetIndexRecord(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ImportStatusImported, got.ImportStatus)
		require.NotNil(t, got.ArtworkID)
		assert.Equal(t, artwork.ID, *got.ArtworkID)
	})

	t.Run("missing key is rejected", func(t *testing.T) {
		_, _, err := store.UpsertIndexRecord(ctx, UpsertIndexInput{TokenID: "1"})
		assert.ErrorIs(t, err, domain.ErrMissingTokenKey)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		got, err := store.GetIndexRecord(ctx, 987654321)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testUpdateIndexStatus(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("follows the promotion state machine", func(t *testing.T) {
		record := stageTestRecord(t, store, buildTestData(testContract, "10", "Ten"), domain.ObservationOwned, testWalletA)

		_, err := store.UpdateIndexStatus(ctx, record.ID, domain.ImportStatusImported, IndexStatusUpdate{})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		processing, err := store.UpdateIndexStatus(ctx, record.ID, domain.ImportStatusProcessing, IndexStatusUpdate{})
		require.NoError(t, err)
		assert.Equal(t, domain.ImportStatusProcessing, processing.ImportStatus)
		assert.Equal(t, 1, processing.Attempts)

		failed, err := store.UpdateIndexStatus(ctx, record.ID, domain.ImportStatusFailed, IndexStatusUpdate{Error: types.StringPtr("boom")})
		require.NoError(t, err)
		assert.Equal(t, "boom", *failed.LastError)

		_, err = store.UpdateIndexStatus(ctx, record.ID, domain.ImportStatusProcessing, IndexStatusUpdate{})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		reset, err := store.UpdateIndexStatus(ctx, record.ID, domain.ImportStatusPending, IndexStatusUpdate{})
		require.NoError(t, err)
		assert.Equal(t, domain.ImportStatusPending, reset.ImportStatus)
		assert.Nil(t, reset.LastError)
	})

	t.Run("abandoned processing claims are recoverable", func(t *testing.T) {
		live := stageTestRecord(t, store, buildTestData(testContract, "13", "Live"), domain.ObservationOwned, testWalletA)
		abandoned := stageTestRecord(t, store, buildTestData(testContract, "14", "Abandoned"), domain.ObservationOwned, testWalletA)
		reset := stageTestRecord(t, store, buildTestData(testContract, "15", "Reset"), domain.ObservationOwned, testWalletA)

		now := time.Now().UTC()
		claimed, err := store.UpdateIndexStatus(ctx, live.ID, domain.ImportStatusProcessing, IndexStatusUpdate{At: now})
		require.NoError(t, err)
		require.NotNil(t, claimed.ClaimedAt)

		longAgo := now.Add(-domain.PROCESSING_LEASE - time.Minute)
		for _, id := range []int64{abandoned.ID, reset.ID} {
			_, err := store.UpdateIndexStatus(ctx, id, domain.ImportStatusProcessing, IndexStatusUpdate{At: longAgo})
			require.NoError(t, err)
		}

		_, err = store.UpdateIndexStatus(ctx, live.ID, domain.ImportStatusProcessing, IndexStatusUpdate{At: now})
		assert.ErrorIs(t, err, domain.ErrRecordClaimed)

		pending, err := store.ListPendingIndexRecords(ctx, nil, 0)
		require.NoError(t, err)
		ids := make([]int64, 0, len(pending))
		for _, p := range pending {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, abandoned.ID)
		assert.Contains(t, ids, reset.ID)
		assert.NotContains(t, ids, live.ID)

		reclaimed, err := store.UpdateIndexStatus(ctx, abandoned.ID, domain.ImportStatusProcessing, IndexStatusUpdate{At: now})
		require.NoError(t, err)
		assert.Equal(t, 2, reclaimed.Attempts)
		assert.WithinDuration(t, now, *reclaimed.ClaimedAt, time.Second)

		_, err = store.ResetFailedIndexRecords(ctx)
		require.NoError(t, err)

		got, err := store.GetIndexRecord(ctx, reset.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ImportStatusPending, got.ImportStatus)
		assert.Nil(t, got.ClaimedAt)

		got, err = store.GetIndexRecord(ctx, live.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ImportStatusProcessing, got.ImportStatus, "live claims survive a bulk reset")

		failed, err := store.UpdateIndexStatus(ctx, live.ID, domain.ImportStatusFailed, IndexStatusUpdate{Error: types.StringPtr("x")})
		require.NoError(t, err)
		assert.Nil(t, failed.ClaimedAt)
	})

	t.Run("unknown record", func(t *testing.T) {
		_, err := store.UpdateIndexStatus(ctx, 987654321, domain.ImportStatusProcessing, IndexStatusUpdate{})
		assert.ErrorIs(t, err, domain.ErrIndexNotFound)
	})

	t.Run("bulk reset and pending listing", func(t *testing.T) {
		a := stageTestRecord(t, store, buildTestData(testContract, "11", "A"), domain.ObservationOwned, testWalletA)
		b := stageTestRecord(t, store, buildTestData(testContract, "12", "B"), domain.ObservationOwned, testWalletA)
		for _, id := range []int64{a.ID, b.ID} {
			_, err := store.UpdateIndexStatus(ctx, id, domain.ImportStatusProcessing, IndexStatusUpdate{})
			require.NoError(t, err)
			_, err = store.UpdateIndexStatus(ctx, id, domain.ImportStatusFailed, IndexStatusUpdate{Error: types.StringPtr("x")})
			require.NoError(t, err)
		}

		pending, err := store.ListPendingIndexRecords(ctx, nil, 0)
		require.NoError(t, err)
		for _, p := range pending {
			assert.NotContains(t, []int64{a.ID, b.ID}, p.ID)
		}

		n, err := store.ResetFailedIndexRecords(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, int64(2))

		pending, err = store.ListPendingIndexRecords(ctx, nil, 0)
		require.NoError(t, err)
		ids := make([]int64, 0, len(pending))
		for _, p := range pending {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, a.ID)
		assert.Contains(t, ids, b.ID)

		future := time.Now().Add(time.Hour)
		pending, err = store.ListPendingIndexRecords(ctx, &future, 0)
		require.NoError(t, err)
		assert.Empty(t, pending)

		counts, err := store.CountIndexRecordsByStatus(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, counts[domain.ImportStatusPending], int64(2))
	})
}

func testListIndexRecords(t *testing.T, store Store) {
	ctx := context.Background()
	contract := "0x2222222222222222222222222222222222222222"

	owned := stageTestRecord(t, store, buildTestData(contract, "1", "Staged title"), domain.ObservationOwned, testWalletA)
	created := stageTestRecord(t, store, buildTestData(contract, "1", "Staged title"), domain.ObservationCreated, testWalletB)
	stageTestRecord(t, store, buildTestData(contract, "2", "Other"), domain.ObservationOwned, testWalletA)

	artwork, err := store.UpsertArtwork(ctx, ArtworkInput{Data: *buildTestData(contract, "1", "Promoted")})
	require.NoError(t, err)
	importTestRecord(t, store, owned.ID, artwork.ID)

	eth := domain.BlockchainEthereum
	records, total, err := store.ListIndexRecords(ctx, IndexFilter{Blockchain: &eth, Query: contract, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, records, 2)

	var first *schema.ArtworkIndex
	for i := range records {
		if records[i].TokenID == "1" {
			first = &records[i]
		}
	}
	require.NotNil(t, first)
	assert.Equal(t, owned.ID, first.ID, "the record linked to an artwork takes precedence")
	assert.NotEqual(t, created.ID, first.ID)

	imported := domain.ImportStatusImported
	records, total, err = store.ListIndexRecords(ctx, IndexFilter{Status: &imported, Query: "Staged", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, records, 1)

	records, _, err = store.ListIndexRecords(ctx, IndexFilter{Query: contract, Limit: 1, Offset: 5})
	require.NoError(t, err)
	assert.Empty(t, records)
}

// =============================================================================
// Test: Catalog
// =============================================================================

func testUpsertArtist(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("address set accumulates", func(t *testing.T) {
		key := "0xcccc000000000000000000000000000000000003"
		first, err := store.UpsertArtist(ctx, ArtistInput{
			IdentityKey: key,
			Address:     key,
			Blockchain:  domain.BlockchainEthereum,
			Name:        types.StringPtr("Jane"),
			Socials:     map[string]string{"twitter": "jane"},
		})
		require.NoError(t, err)

		second, err := store.UpsertArtist(ctx, ArtistInput{
			IdentityKey: key,
			Address:     "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb",
			Blockchain:  domain.BlockchainTezos,
			Verified:    true,
			Socials:     map[string]string{"instagram": "jane.ig"},
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Jane", *second.Name, "missing fields keep known values")
		assert.True(t, second.Verified)
		assert.Equal(t, "jane", second.Socials["twitter"])
		assert.Equal(t, "jane.ig", second.Socials["instagram"])

		got, err := store.GetArtistByIdentityKey(ctx, key)
		require.NoError(t, err)
		require.Len(t, got.Addresses, 2)
		addresses := []string{got.Addresses[0].Address, got.Addresses[1].Address}
		assert.ElementsMatch(t, []string{key, "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"}, addresses)
	})

	t.Run("identity key is required", func(t *testing.T) {
		_, err := store.UpsertArtist(ctx, ArtistInput{})
		assert.Error(t, err)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		got, err := store.GetArtistByIdentityKey(ctx, "0xnobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testCatalogScenario(t *testing.T, store Store) {
	ctx := context.Background()
	contract := "C1"

	promote := func(collectionTitle string) (*schema.Artist, *schema.Collection, *schema.Artwork) {
		artist, err := store.UpsertArtist(ctx, ArtistInput{IdentityKey: "0xa", Address: "0xA"})
		require.NoError(t, err)

		collection, err := store.UpsertCollection(ctx, CollectionInput{
			Collection: domain.Collection{Slug: "s1", Title: collectionTitle},
			Blockchain: domain.BlockchainEthereum,
			ArtistIDs:  []int64{artist.ID},
		})
		require.NoError(t, err)

		data := buildTestData(contract, "7", "Seven")
		artwork, err := store.UpsertArtwork(ctx, ArtworkInput{
			Data:         *data,
			DataSource:   domain.DataSourceManual,
			CollectionID: &collection.ID,
			ArtistIDs:    []int64{artist.ID},
		})
		require.NoError(t, err)
		return artist, collection, artwork
	}

	beforeArtists, beforeCollections, beforeArtworks, err := store.CountCatalog(ctx)
	require.NoError(t, err)

	artist1, collection1, artwork1 := promote("S")
	artist2, collection2, artwork2 := promote("S2")

	assert.Equal(t, artist1.ID, artist2.ID)
	assert.Equal(t, collection1.ID, collection2.ID)
	assert.Equal(t, artwork1.ID, artwork2.ID)
	assert.Equal(t, "S2", collection2.Title)

	afterArtists, afterCollections, afterArtworks, err := store.CountCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, beforeArtists+1, afterArtists)
	assert.Equal(t, beforeCollections+1, afterCollections)
	assert.Equal(t, beforeArtworks+1, afterArtworks)

	got, err := store.GetArtwork(ctx, artwork2.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Collection)
	assert.Equal(t, "s1", got.Collection.Slug)
	require.Len(t, got.Artists, 1)
	assert.Equal(t, artist1.ID, got.Artists[0].ID)

	collection, err := store.GetCollectionBySlug(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, collection.Artists, 1)
}

func testUpsertArtworkLinks(t *testing.T, store Store) {
	ctx := context.Background()
	data := buildTestData("0x3333333333333333333333333333333333333333", "1", "Linked")
	data.Dimensions = &domain.Dimensions{Width: 10, Height: 20}
	data.Attributes = []domain.Attribute{{Key: "palette", Value: "warm"}}

	a, err := store.UpsertArtist(ctx, ArtistInput{IdentityKey: "artist-a"})
	require.NoError(t, err)
	b, err := store.UpsertArtist(ctx, ArtistInput{IdentityKey: "artist-b"})
	require.NoError(t, err)
	collection, err := store.UpsertCollection(ctx, CollectionInput{Collection: domain.Collection{Slug: "linked", Title: "L"}})
	require.NoError(t, err)

	_, err = store.UpsertArtwork(ctx, ArtworkInput{Data: *data, CollectionID: &collection.ID, ArtistIDs: []int64{a.ID}})
	require.NoError(t, err)

	artwork, err := store.UpsertArtwork(ctx, ArtworkInput{Data: *data, ArtistIDs: []int64{b.ID}})
	require.NoError(t, err)
	assert.Len(t, artwork.Artists, 2, "artist links are additive")
	require.NotNil(t, artwork.CollectionID, "collection kept when new data has none")
	assert.Equal(t, collection.ID, *artwork.CollectionID)
	assert.Equal(t, 10, *artwork.Width)
	assert.JSONEq(t, `[{"key":"palette","value":"warm"}]`, string(artwork.Attributes))

	artwork, err = store.UpsertArtwork(ctx, ArtworkInput{Data: *data, ArtistIDs: []int64{b.ID}, ReplaceArtists: true})
	require.NoError(t, err)
	require.Len(t, artwork.Artists, 1)
	assert.Equal(t, b.ID, artwork.Artists[0].ID)

	byKey, err := store.GetArtworkByKey(ctx, data.TokenKey())
	require.NoError(t, err)
	assert.Equal(t, artwork.ID, byKey.ID)

	artworks, total, err := store.ListArtworks(ctx, 1, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(1))
	assert.Len(t, artworks, 1)
}

func testDeleteArtwork(t *testing.T, store Store) {
	ctx := context.Background()
	data := buildTestData("0x4444444444444444444444444444444444444444", "1", "Doomed")

	owned := stageTestRecord(t, store, data, domain.ObservationOwned, testWalletA)
	created := stageTestRecord(t, store, data, domain.ObservationCreated, testWalletA)
	artwork, err := store.UpsertArtwork(ctx, ArtworkInput{Data: *data})
	require.NoError(t, err)
	importTestRecord(t, store, owned.ID, artwork.ID)
	importTestRecord(t, store, created.ID, artwork.ID)

	decoupled, err := store.DeleteArtwork(ctx, artwork.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{owned.ID, created.ID}, decoupled)

	for _, id := range decoupled {
		got, err := store.GetIndexRecord(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.ImportStatusPending, got.ImportStatus)
		assert.Nil(t, got.ArtworkID)
	}

	gone, err := store.GetArtwork(ctx, artwork.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	_, err = store.DeleteArtwork(ctx, artwork.ID)
	assert.ErrorIs(t, err, domain.ErrArtworkNotFound)
}

// =============================================================================
// Test: Indexing runs
// =============================================================================

func testIndexingRuns(t *testing.T, store Store) {
	ctx := context.Background()

	run := &schema.IndexingRun{ID: "01J0000000000000000000TEST", Trigger: "test", StartedAt: time.Now().UTC()}
	require.NoError(t, store.CreateRun(ctx, run))

	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.RunStatusRunning, got.Status)

	err = store.FinishRun(ctx, run.ID, RunUpdate{
		Status:      schema.RunStatusCompleted,
		WalletCount: 2,
		Discovered:  5,
		Stored:      4,
		Errored:     1,
		Report:      []byte(`{"id":"01J0000000000000000000TEST"}`),
		FinishedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)

	got, err = store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, schema.RunStatusCompleted, got.Status)
	assert.Equal(t, 4, got.Stored)
	assert.NotNil(t, got.FinishedAt)

	assert.ErrorIs(t, store.FinishRun(ctx, "missing", RunUpdate{Status: schema.RunStatusFailed}), domain.ErrRunNotFound)

	missing, err := store.GetRun(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, store.Ping(ctx))
}

// RunStoreTests runs all store tests against a store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store Store)
	}{
		{"UpsertIndexRecord", testUpsertIndexRecord},
		{"UpdateIndexStatus", testUpdateIndexStatus},
		{"ListIndexRecords", testListIndexRecords},
		{"UpsertArtist", testUpsertArtist},
		{"CatalogScenario", testCatalogScenario},
		{"UpsertArtworkLinks", testUpsertArtworkLinks},
		{"DeleteArtwork", testDeleteArtwork},
		{"IndexingRuns", testIndexingRuns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
