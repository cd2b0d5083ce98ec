package dto

import (
	"encoding/json"
	"time"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/promotion"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

// ListResponse is a page of items
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// IndexRecordResponse is a staged record
type IndexRecordResponse struct {
	ID              int64                  `json:"id"`
	ContractAddress string                 `json:"contract_address"`
	TokenID         string                 `json:"token_id"`
	ObservationType domain.ObservationType `json:"observation_type"`
	DataSource      domain.DataSource      `json:"data_source"`
	Blockchain      domain.Blockchain      `json:"blockchain"`
	Wallet          *string                `json:"wallet,omitempty"`
	Title           string                 `json:"title"`
	ImportStatus    domain.ImportStatus    `json:"import_status"`
	ArtworkID       *int64                 `json:"artwork_id,omitempty"`
	LastError       *string                `json:"last_error,omitempty"`
	Attempts        int                    `json:"attempts"`
	Payload         json.RawMessage        `json:"payload,omitempty"`
	LastSeenAt      time.Time              `json:"last_seen_at"`
	ImportedAt      *time.Time             `json:"imported_at,omitempty"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// ArtistResponse is a catalog artist
type ArtistResponse struct {
	ID               int64                          `json:"id"`
	IdentityKey      string                         `json:"identity_key"`
	Name             *string                        `json:"name,omitempty"`
	Description      *string                        `json:"description,omitempty"`
	AvatarURL        *string                        `json:"avatar_url,omitempty"`
	ProfileURL       *string                        `json:"profile_url,omitempty"`
	WebsiteURL       *string                        `json:"website_url,omitempty"`
	Verified         bool                           `json:"verified"`
	Socials          map[string]interface{}         `json:"socials,omitempty"`
	Addresses        []string                       `json:"addresses,omitempty"`
	ResolutionSource domain.CreatorResolutionSource `json:"resolution_source,omitempty"`
}

// CollectionResponse is a catalog collection
type CollectionResponse struct {
	ID               int64             `json:"id"`
	Slug             string            `json:"slug"`
	Title            string            `json:"title"`
	Description      *string           `json:"description,omitempty"`
	ImageURL         *string           `json:"image_url,omitempty"`
	ExternalURL      *string           `json:"external_url,omitempty"`
	ContractAddress  *string           `json:"contract_address,omitempty"`
	Blockchain       domain.Blockchain `json:"blockchain,omitempty"`
	IsGenerative     bool              `json:"is_generative"`
	IsSharedContract bool              `json:"is_shared_contract"`
	TotalSupply      *int64            `json:"total_supply,omitempty"`
	OwnerCount       *int64            `json:"owner_count,omitempty"`
	FloorPrice       *string           `json:"floor_price,omitempty"`
	TotalVolume      *string           `json:"total_volume,omitempty"`
	Currency         *string           `json:"currency,omitempty"`
}

// ArtworkResponse is a catalog artwork with its artists and collection
type ArtworkResponse struct {
	ID              int64               `json:"id"`
	ContractAddress string              `json:"contract_address"`
	TokenID         string              `json:"token_id"`
	Blockchain      domain.Blockchain   `json:"blockchain"`
	Title           string              `json:"title"`
	Description     *string             `json:"description,omitempty"`
	ImageURL        *string             `json:"image_url,omitempty"`
	AnimationURL    *string             `json:"animation_url,omitempty"`
	ThumbnailURL    *string             `json:"thumbnail_url,omitempty"`
	MetadataURL     *string             `json:"metadata_url,omitempty"`
	MimeType        *string             `json:"mime_type,omitempty"`
	TokenStandard   *string             `json:"token_standard,omitempty"`
	Supply          *int64              `json:"supply,omitempty"`
	MintedAt        *time.Time          `json:"minted_at,omitempty"`
	Width           *int                `json:"width,omitempty"`
	Height          *int                `json:"height,omitempty"`
	Attributes      json.RawMessage     `json:"attributes,omitempty"`
	Features        json.RawMessage     `json:"features,omitempty"`
	DataSource      domain.DataSource   `json:"data_source,omitempty"`
	Collection      *CollectionResponse `json:"collection,omitempty"`
	Artists         []ArtistResponse    `json:"artists"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// RunResponse is a persisted indexing run
type RunResponse struct {
	ID              string           `json:"id"`
	Trigger         string           `json:"trigger"`
	Status          schema.RunStatus `json:"status"`
	Wallet          *string          `json:"wallet,omitempty"`
	Blockchain      *string          `json:"blockchain,omitempty"`
	ObservationType *string          `json:"observation_type,omitempty"`
	WalletCount     int              `json:"wallet_count"`
	Discovered      int              `json:"discovered"`
	Stored          int              `json:"stored"`
	Errored         int              `json:"errored"`
	Report          json.RawMessage  `json:"report,omitempty"`
	Error           *string          `json:"error,omitempty"`
	StartedAt       time.Time        `json:"started_at"`
	FinishedAt      *time.Time       `json:"finished_at,omitempty"`
}

// PromotionResponse is the outcome of an import or a promotion
type PromotionResponse struct {
	Processed int                `json:"processed"`
	Imported  int                `json:"imported"`
	Failed    int                `json:"failed"`
	Results   []promotion.Result `json:"results"`
}

// ImportResponse is the outcome of a manual import. A batch handed to the
// promotion workflow reports its staged ids and the workflow instead of
// promotion results.
type ImportResponse struct {
	PromotionResponse
	StagedIDs  []int64 `json:"staged_ids,omitempty"`
	WorkflowID string  `json:"workflow_id,omitempty"`
	RunID      string  `json:"run_id,omitempty"`
}

// Queued reports whether promotion was left to a workflow
func (r ImportResponse) Queued() bool {
	return r.WorkflowID != ""
}

// TriggerWorkflowResponse identifies a started workflow
type TriggerWorkflowResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// ResetFailedResponse is the outcome of a bulk reset
type ResetFailedResponse struct {
	Reset int64 `json:"reset"`
}

// DeleteArtworkResponse lists the staged records released by a delete
type DeleteArtworkResponse struct {
	ArtworkID         int64   `json:"artwork_id"`
	DecoupledIndexIDs []int64 `json:"decoupled_index_ids"`
}

// StatsResponse summarizes the staging index and the catalog
type StatsResponse struct {
	IndexByStatus map[domain.ImportStatus]int64 `json:"index_by_status"`
	Artists       int64                         `json:"artists"`
	Collections   int64                         `json:"collections"`
	Artworks      int64                         `json:"artworks"`
}
