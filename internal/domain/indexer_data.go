package domain

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatorResolutionSource records which upstream signal produced a creator identity
type CreatorResolutionSource string

const (
	// CreatorSourceEmbedded is creator data carried directly on the token record
	CreatorSourceEmbedded CreatorResolutionSource = "embedded_creator"
	// CreatorSourceVerifiedList is the first entry of an explicit verified-creators list
	CreatorSourceVerifiedList CreatorResolutionSource = "verified_creators"
	// CreatorSourceManual is creator data supplied through the manual import entry point
	CreatorSourceManual CreatorResolutionSource = "manual"
)

// Attribute is one ordered key/value trait of a token
type Attribute struct {
	Key         string      `json:"key"`
	Value       interface{} `json:"value"`
	DisplayType *string     `json:"display_type,omitempty"`
}

// Dimensions are the pixel dimensions of the primary media
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Creator is the resolved author of a token
type Creator struct {
	Address          string                  `json:"address"`
	Name             *string                 `json:"name,omitempty"`
	Description      *string                 `json:"description,omitempty"`
	AvatarURL        *string                 `json:"avatar_url,omitempty"`
	ProfileURL       *string                 `json:"profile_url,omitempty"`
	WebsiteURL       *string                 `json:"website_url,omitempty"`
	Verified         bool                    `json:"verified"`
	Socials          map[string]string       `json:"socials,omitempty"`
	ResolutionSource CreatorResolutionSource `json:"resolution_source"`
}

// CollectionStats are supply and trading statistics of a collection
type CollectionStats struct {
	TotalSupply *int64           `json:"total_supply,omitempty"`
	OwnerCount  *int64           `json:"owner_count,omitempty"`
	FloorPrice  *decimal.Decimal `json:"floor_price,omitempty"`
	TotalVolume *decimal.Decimal `json:"total_volume,omitempty"`
	Currency    *string          `json:"currency,omitempty"`
}

// Collection is the collection a token belongs to
type Collection struct {
	Slug             string          `json:"slug"`
	Title            string          `json:"title"`
	Description      *string         `json:"description,omitempty"`
	ImageURL         *string         `json:"image_url,omitempty"`
	ExternalURL      *string         `json:"external_url,omitempty"`
	ContractAddress  *string         `json:"contract_address,omitempty"`
	IsGenerative     bool            `json:"is_generative"`
	IsSharedContract bool            `json:"is_shared_contract"`
	Stats            CollectionStats `json:"stats"`
}

// IndexerData is the provider-agnostic representation of a token
type IndexerData struct {
	ContractAddress string                 `json:"contract_address"`
	TokenID         string                 `json:"token_id"`
	Title           string                 `json:"title"`
	Description     *string                `json:"description,omitempty"`
	ImageURL        *string                `json:"image_url,omitempty"`
	AnimationURL    *string                `json:"animation_url,omitempty"`
	ThumbnailURL    *string                `json:"thumbnail_url,omitempty"`
	MetadataURL     *string                `json:"metadata_url,omitempty"`
	MimeType        *string                `json:"mime_type,omitempty"`
	Blockchain      Blockchain             `json:"blockchain"`
	TokenStandard   *string                `json:"token_standard,omitempty"`
	Supply          *int64                 `json:"supply,omitempty"`
	MintedAt        *time.Time             `json:"minted_at,omitempty"`
	Dimensions      *Dimensions            `json:"dimensions,omitempty"`
	Attributes      []Attribute            `json:"attributes,omitempty"`
	Features        map[string]interface{} `json:"features,omitempty"`
	Creator         *Creator               `json:"creator,omitempty"`
	Collection      *Collection            `json:"collection,omitempty"`
}

// TokenKey returns the (contract, token) identity of the data
func (d *IndexerData) TokenKey() TokenKey {
	return NewTokenKey(d.ContractAddress, d.TokenID)
}

// Validate checks the data is complete enough to be staged
func (d IndexerData) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.ContractAddress, validation.Required),
		validation.Field(&d.TokenID, validation.Required, validation.By(func(value interface{}) error {
			if !validTokenNumber(value.(string)) {
				return validation.NewError("validation_token_id", "must be a non-negative integer")
			}
			return nil
		})),
		validation.Field(&d.Blockchain, validation.Required, validation.In(BlockchainEthereum, BlockchainTezos)),
		validation.Field(&d.Supply, validation.Min(int64(0))),
		validation.Field(&d.Creator),
		validation.Field(&d.Collection),
	)
}

// Validate checks the creator carries an address or, failing that, a name
func (c Creator) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Address, validation.When(strings.TrimSpace(SafeName(c.Name)) == "", validation.Required)),
	)
}

// artistNamespace seeds name-based artist identities
var artistNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://feralfile.com/catalog/artist"))

// IdentityKey is the normalized address, or a stable hash of the display
// name when the creator has no address. Empty when neither exists.
func (c Creator) IdentityKey() string {
	if a := NormalizeAddress(c.Address); a != "" {
		return a
	}
	name := strings.ToLower(strings.Join(strings.Fields(SafeName(c.Name)), " "))
	if name == "" {
		return ""
	}
	return "name:" + uuid.NewSHA1(artistNamespace, []byte(name)).String()
}

// SafeName dereferences an optional name
func SafeName(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}

// Validate checks the collection carries a slug
func (c Collection) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Slug, validation.Required),
	)
}

// CollectionSlug returns the human readable slug when one exists,
// otherwise the normalized contract address
func CollectionSlug(humanSlug string, contractAddress string) string {
	if s := strings.TrimSpace(humanSlug); s != "" {
		return strings.ToLower(s)
	}
	return NormalizeAddress(contractAddress)
}
