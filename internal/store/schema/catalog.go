package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
)

// Artist represents the artists table
type Artist struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// IdentityKey is the normalized creator address, or "name:<uuid>" for creators without one
	IdentityKey string  `gorm:"column:identity_key;not null;uniqueIndex;type:text"`
	Name        *string `gorm:"column:name;type:text"`
	Description *string `gorm:"column:description;type:text"`
	AvatarURL   *string `gorm:"column:avatar_url;type:text"`
	ProfileURL  *string `gorm:"column:profile_url;type:text"`
	WebsiteURL  *string `gorm:"column:website_url;type:text"`
	Verified    bool    `gorm:"column:verified;not null;default:false"`
	// Socials maps a platform to a handle
	Socials datatypes.JSONMap `gorm:"column:socials;type:jsonb"`
	// ResolutionSource records which signal produced the identity
	ResolutionSource domain.CreatorResolutionSource `gorm:"column:resolution_source;type:text"`
	CreatedAt        time.Time                      `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt        time.Time                      `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Addresses []ArtistAddress `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Artist model
func (Artist) TableName() string {
	return "artists"
}

// ArtistAddress represents the artist_addresses table - the append-only
// wallet address set of an artist
type ArtistAddress struct {
	ArtistID   int64             `gorm:"column:artist_id;primaryKey"`
	Address    string            `gorm:"column:address;primaryKey;type:text"`
	Blockchain domain.Blockchain `gorm:"column:blockchain;type:text"`
	CreatedAt  time.Time         `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ArtistAddress model
func (ArtistAddress) TableName() string {
	return "artist_addresses"
}

// Collection represents the collections table
type Collection struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Slug is the human slug, or the normalized contract address when none exists
	Slug             string            `gorm:"column:slug;not null;uniqueIndex;type:text"`
	Title            string            `gorm:"column:title;not null;type:text"`
	Description      *string           `gorm:"column:description;type:text"`
	ImageURL         *string           `gorm:"column:image_url;type:text"`
	ExternalURL      *string           `gorm:"column:external_url;type:text"`
	ContractAddress  *string           `gorm:"column:contract_address;type:text"`
	Blockchain       domain.Blockchain `gorm:"column:blockchain;type:text"`
	IsGenerative     bool              `gorm:"column:is_generative;not null;default:false"`
	IsSharedContract bool              `gorm:"column:is_shared_contract;not null;default:false"`
	TotalSupply      *int64            `gorm:"column:total_supply"`
	OwnerCount       *int64            `gorm:"column:owner_count"`
	FloorPrice       *decimal.Decimal  `gorm:"column:floor_price;type:numeric"`
	TotalVolume      *decimal.Decimal  `gorm:"column:total_volume;type:numeric"`
	Currency         *string           `gorm:"column:currency;type:text"`
	CreatedAt        time.Time         `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Artists []Artist `gorm:"many2many:collection_artists;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}

// CollectionArtist represents the collection_artists join table
type CollectionArtist struct {
	CollectionID int64 `gorm:"column:collection_id;primaryKey"`
	ArtistID     int64 `gorm:"column:artist_id;primaryKey"`
}

// TableName specifies the table name for the CollectionArtist model
func (CollectionArtist) TableName() string {
	return "collection_artists"
}

// Artwork represents the artworks table - one row per (contract, token)
type Artwork struct {
	// ID is the internal database primary key
	ID              int64             `gorm:"column:id;primaryKey;autoIncrement"`
	ContractAddress string            `gorm:"column:contract_address;not null;type:text;uniqueIndex:idx_artworks_key,priority:1"`
	TokenID         string            `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_artworks_key,priority:2"`
	Blockchain      domain.Blockchain `gorm:"column:blockchain;not null;type:text"`
	Title           string            `gorm:"column:title;not null;type:text"`
	Description     *string           `gorm:"column:description;type:text"`
	ImageURL        *string           `gorm:"column:image_url;type:text"`
	AnimationURL    *string           `gorm:"column:animation_url;type:text"`
	ThumbnailURL    *string           `gorm:"column:thumbnail_url;type:text"`
	MetadataURL     *string           `gorm:"column:metadata_url;type:text"`
	MimeType        *string           `gorm:"column:mime_type;type:text"`
	TokenStandard   *string           `gorm:"column:token_standard;type:text"`
	Supply          *int64            `gorm:"column:supply"`
	MintedAt        *time.Time        `gorm:"column:minted_at;type:timestamptz"`
	Width           *int              `gorm:"column:width"`
	Height          *int              `gorm:"column:height"`
	Attributes      datatypes.JSON    `gorm:"column:attributes;type:jsonb"`
	Features        datatypes.JSON    `gorm:"column:features;type:jsonb"`
	// CollectionID references the single collection of the artwork
	CollectionID *int64            `gorm:"column:collection_id;index"`
	DataSource   domain.DataSource `gorm:"column:data_source;type:text"`
	CreatedAt    time.Time         `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Collection *Collection `gorm:"foreignKey:CollectionID;constraint:OnDelete:SET NULL"`
	Artists    []Artist    `gorm:"many2many:artwork_artists;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Artwork model
func (Artwork) TableName() string {
	return "artworks"
}

// ArtworkArtist represents the artwork_artists join table
type ArtworkArtist struct {
	ArtworkID int64 `gorm:"column:artwork_id;primaryKey"`
	ArtistID  int64 `gorm:"column:artist_id;primaryKey"`
}

// TableName specifies the table name for the ArtworkArtist model
func (ArtworkArtist) TableName() string {
	return "artwork_artists"
}
