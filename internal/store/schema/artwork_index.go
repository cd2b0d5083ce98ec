package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
)

// ArtworkIndex represents the artwork_index table - the staging area between
// provider ingestion and catalog promotion. One row per (contract, token,
// observation type); several rows may refer to the same artwork.
type ArtworkIndex struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ContractAddress is the normalized contract address of the token
	ContractAddress string `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_artwork_index_key,priority:1"`
	// TokenID is the token id within the contract
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_artwork_index_key,priority:2"`
	// ObservationType records why the token was discovered (owned, created)
	ObservationType domain.ObservationType `gorm:"column:observation_type;not null;type:text;uniqueIndex:idx_artwork_index_key,priority:3"`
	// DataSource is the provider that produced the payload
	DataSource domain.DataSource `gorm:"column:data_source;not null;type:text"`
	// Blockchain is the blockchain of the token
	Blockchain domain.Blockchain `gorm:"column:blockchain;not null;type:text;index:idx_artwork_index_blockchain"`
	// Wallet is the wallet whose query discovered the token (nil for manual imports)
	Wallet *string `gorm:"column:wallet;type:text"`
	// Title is copied from the payload for listing and search
	Title string `gorm:"column:title;not null;type:text"`
	// Payload is the normalized IndexerData
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// PayloadHash is the hex SHA-256 of the canonical payload, used to skip unchanged rewrites
	PayloadHash string `gorm:"column:payload_hash;not null;type:text"`
	// ImportStatus is the promotion state
	ImportStatus domain.ImportStatus `gorm:"column:import_status;not null;default:'pending';type:text;index:idx_artwork_index_status"`
	// ArtworkID references the promoted artwork (nil until promoted, reset when the artwork is deleted)
	ArtworkID *int64 `gorm:"column:artwork_id;index:idx_artwork_index_artwork_id"`
	// LastError is the reason of the last failed promotion
	LastError *string `gorm:"column:last_error;type:text"`
	// Attempts counts promotion attempts
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// ClaimedAt is when the record last entered processing (nil otherwise)
	ClaimedAt *time.Time `gorm:"column:claimed_at;type:timestamptz"`
	// LastSeenAt is the last time a provider returned the token
	LastSeenAt time.Time `gorm:"column:last_seen_at;not null;default:now();type:timestamptz"`
	// ImportedAt is the time of the last successful promotion
	ImportedAt *time.Time `gorm:"column:imported_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz;index:idx_artwork_index_updated_at"`

	// Associations
	Artwork *Artwork `gorm:"foreignKey:ArtworkID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for the ArtworkIndex model
func (ArtworkIndex) TableName() string {
	return "artwork_index"
}

// TokenKey returns the (contract, token) identity of the record
func (a *ArtworkIndex) TokenKey() domain.TokenKey {
	return domain.TokenKey{ContractAddress: a.ContractAddress, TokenID: a.TokenID}
}
