package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

// UpsertOutcome reports what a staging upsert did
type UpsertOutcome string

const (
	// UpsertCreated means a new staged record was inserted
	UpsertCreated UpsertOutcome = "created"
	// UpsertUpdated means the payload of an existing record changed
	UpsertUpdated UpsertOutcome = "updated"
	// UpsertUnchanged means only last_seen_at was refreshed
	UpsertUnchanged UpsertOutcome = "unchanged"
)

// UpsertIndexInput is one staged observation
type UpsertIndexInput struct {
	ContractAddress string
	TokenID         string
	ObservationType domain.ObservationType
	DataSource      domain.DataSource
	Blockchain      domain.Blockchain
	Wallet          *string
	Title           string
	Payload         []byte
	PayloadHash     string
	SeenAt          time.Time
}

// IndexStatusUpdate carries the fields written with a status transition
type IndexStatusUpdate struct {
	// ArtworkID is set on imported
	ArtworkID *int64
	// Error is set on failed
	Error *string
	// At is the transition time, used for imported_at
	At time.Time
}

// IndexFilter filters the collapsed listing of staged records
type IndexFilter struct {
	Blockchain *domain.Blockchain
	Status     *domain.ImportStatus
	// Query matches title, contract address or token id
	Query  string
	Limit  int
	Offset int
}

// ArtistInput is an artist upsert keyed by identity key
type ArtistInput struct {
	IdentityKey      string
	Address          string
	Blockchain       domain.Blockchain
	Name             *string
	Description      *string
	AvatarURL        *string
	ProfileURL       *string
	WebsiteURL       *string
	Verified         bool
	Socials          map[string]string
	ResolutionSource domain.CreatorResolutionSource
}

// CollectionInput is a collection upsert keyed by slug
type CollectionInput struct {
	Collection domain.Collection
	Blockchain domain.Blockchain
	// ArtistIDs are linked additively
	ArtistIDs []int64
}

// ArtworkInput is an artwork upsert keyed by (contract, token)
type ArtworkInput struct {
	Data         domain.IndexerData
	DataSource   domain.DataSource
	CollectionID *int64
	// ArtistIDs are linked additively unless ReplaceArtists is set
	ArtistIDs      []int64
	ReplaceArtists bool
}

// RunUpdate carries the final state of an indexing run
type RunUpdate struct {
	Status      schema.RunStatus
	WalletCount int
	Discovered  int
	Stored      int
	Errored     int
	Report      []byte
	Error       *string
	FinishedAt  time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Ping checks the database is reachable
	Ping(ctx context.Context) error

	// =============================================================================
	// Staging (artwork_index)
	// =============================================================================

	// UpsertIndexRecord stages an observation keyed by (contract, token, observation type).
	// The payload is replaced when its hash changed; import status and artwork
	// reference are never touched.
	UpsertIndexRecord(ctx context.Context, input UpsertIndexInput) (*schema.ArtworkIndex, UpsertOutcome, error)
	// GetIndexRecord retrieves a staged record by ID, nil when not found
	GetIndexRecord(ctx context.Context, id int64) (*schema.ArtworkIndex, error)
	// ListPendingIndexRecords lists pending records oldest first, optionally only those updated since
	ListPendingIndexRecords(ctx context.Context, since *time.Time, limit int) ([]schema.ArtworkIndex, error)
	// UpdateIndexStatus moves a staged record to a new status, rejecting invalid transitions
	UpdateIndexStatus(ctx context.Context, id int64, to domain.ImportStatus, update IndexStatusUpdate) (*schema.ArtworkIndex, error)
	// ResetFailedIndexRecords moves every failed record back to pending
	ResetFailedIndexRecords(ctx context.Context) (int64, error)
	// ListIndexRecords lists staged records collapsed to one per (contract, token)
	ListIndexRecords(ctx context.Context, filter IndexFilter) ([]schema.ArtworkIndex, int64, error)
	// CountIndexRecordsByStatus counts staged records per import status
	CountIndexRecordsByStatus(ctx context.Context) (map[domain.ImportStatus]int64, error)

	// =============================================================================
	// Catalog
	// =============================================================================

	// UpsertArtist creates or updates an artist and merges the address into its address set
	UpsertArtist(ctx context.Context, input ArtistInput) (*schema.Artist, error)
	// UpsertCollection creates or updates a collection by slug and links artists additively
	UpsertCollection(ctx context.Context, input CollectionInput) (*schema.Collection, error)
	// UpsertArtwork creates or updates an artwork by (contract, token) and links it
	UpsertArtwork(ctx context.Context, input ArtworkInput) (*schema.Artwork, error)
	// GetArtwork retrieves an artwork with its collection and artists, nil when not found
	GetArtwork(ctx context.Context, id int64) (*schema.Artwork, error)
	// GetArtworkByKey retrieves an artwork by (contract, token), nil when not found
	GetArtworkByKey(ctx context.Context, key domain.TokenKey) (*schema.Artwork, error)
	// GetArtistByIdentityKey retrieves an artist with its addresses, nil when not found
	GetArtistByIdentityKey(ctx context.Context, identityKey string) (*schema.Artist, error)
	// GetCollectionBySlug retrieves a collection with its artists, nil when not found
	GetCollectionBySlug(ctx context.Context, slug string) (*schema.Collection, error)
	// ListArtworks lists artworks newest first
	ListArtworks(ctx context.Context, limit, offset int) ([]schema.Artwork, int64, error)
	// CountCatalog counts artists, collections and artworks
	CountCatalog(ctx context.Context) (artists, collections, artworks int64, err error)
	// DeleteArtwork deletes an artwork and decouples its staged records, returning their IDs
	DeleteArtwork(ctx context.Context, id int64) ([]int64, error)

	// =============================================================================
	// Indexing runs
	// =============================================================================

	// CreateRun persists a new running run
	CreateRun(ctx context.Context, run *schema.IndexingRun) error
	// FinishRun stores the final state of a run
	FinishRun(ctx context.Context, id string, update RunUpdate) error
	// GetRun retrieves a run by ID, nil when not found
	GetRun(ctx context.Context, id string) (*schema.IndexingRun, error)
}
