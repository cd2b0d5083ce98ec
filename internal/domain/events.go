package domain

import "time"

// CatalogEventType is the kind of catalog change
type CatalogEventType string

const (
	// EventArtworkImported is published after a staged record was promoted
	EventArtworkImported CatalogEventType = "artwork.imported"
	// EventArtworkDecoupled is published after an artwork was deleted and its staged records reset
	EventArtworkDecoupled CatalogEventType = "artwork.decoupled"
)

// CatalogEvent is a change notification for downstream consumers
type CatalogEvent struct {
	Type            CatalogEventType `json:"type"`
	ArtworkID       int64            `json:"artwork_id"`
	ContractAddress string           `json:"contract_address,omitempty"`
	TokenID         string           `json:"token_id,omitempty"`
	Blockchain      Blockchain       `json:"blockchain,omitempty"`
	ArtistIDs       []int64          `json:"artist_ids,omitempty"`
	CollectionID    *int64           `json:"collection_id,omitempty"`
	IndexIDs        []int64          `json:"index_ids,omitempty"`
	OccurredAt      time.Time        `json:"occurred_at"`
}
