package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
	"github.com/feral-file/ff-catalog-indexer/internal/store/storetest"
)

var testPG *storetest.Postgres

func TestMain(m *testing.M) {
	ctx := context.Background()

	pg, err := storetest.Start(ctx)
	if err != nil {
		fmt.Printf("Failed to start test database: %v\n", err)
		os.Exit(1)
	}
	testPG = pg

	code := 1
	if err := Migrate(pg.DB); err != nil {
		fmt.Printf("Failed to migrate test database: %v\n", err)
	} else {
		code = m.Run()
	}

	if err := pg.Terminate(ctx); err != nil {
		fmt.Printf("Failed to terminate test database: %v\n", err)
	}
	os.Exit(code)
}

// initPGTestDB hands each test a store over its own rolled-back transaction
func initPGTestDB(t *testing.T) Store {
	return NewPGStore(testPG.Begin(t))
}

func TestPostgreSQLStore(t *testing.T) {
	RunStoreTests(t, initPGTestDB, func(*testing.T) {})
}

// Concurrent stagings of a new token commit outside a test transaction, so
// the rows are removed by contract afterwards.
func TestUpsertIndexRecord_ConcurrentCreate(t *testing.T) {
	const contract = "0x2222222222222222222222222222222222222222"
	const writers = 8

	db := testPG.DB
	t.Cleanup(func() {
		db.Where("contract_address = ?", contract).Delete(&schema.ArtworkIndex{})
	})
	store := NewPGStore(db)

	input := buildTestIndexInput(t, buildTestData(contract, "1", "Raced"), domain.ObservationOwned, testWalletA)
	input.SeenAt = time.Now().UTC()

	type result struct {
		record  *schema.ArtworkIndex
		outcome UpsertOutcome
		err     error
	}
	results := make([]result, writers)

	var start sync.WaitGroup
	var done sync.WaitGroup
	start.Add(1)
	for i := 0; i < writers; i++ {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			start.Wait()
			record, outcome, err := store.UpsertIndexRecord(context.Background(), input)
			results[i] = result{record, outcome, err}
		}(i)
	}
	start.Done()
	done.Wait()

	var created int
	var id int64
	for _, r := range results {
		require.NoError(t, r.err)
		require.NotNil(t, r.record)
		if r.outcome == UpsertCreated {
			created++
		} else {
			assert.Equal(t, UpsertUnchanged, r.outcome)
		}
		if id == 0 {
			id = r.record.ID
		}
		assert.Equal(t, id, r.record.ID)
		assert.Equal(t, domain.ImportStatusPending, r.record.ImportStatus)
		assert.Equal(t, input.PayloadHash, r.record.PayloadHash)
	}
	assert.Equal(t, 1, created, "exactly one writer creates the row")

	var rows int64
	require.NoError(t, db.Model(&schema.ArtworkIndex{}).Where("contract_address = ?", contract).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}
