package opensea

import (
	"encoding/json"
	"strings"
)

// NFT is an item of the account listing, also returned by the detail endpoint.
// Detail-only fields are empty on listing items.
type NFT struct {
	Identifier          string  `json:"identifier"`
	Collection          string  `json:"collection"`
	Contract            string  `json:"contract"`
	TokenStandard       string  `json:"token_standard"`
	Name                *string `json:"name"`
	Description         *string `json:"description"`
	ImageURL            *string `json:"image_url"`
	DisplayImageURL     *string `json:"display_image_url"`
	DisplayAnimationURL *string `json:"display_animation_url"`
	AnimationURL        *string `json:"animation_url"`
	MetadataURL         *string `json:"metadata_url"`
	OpenSeaURL          *string `json:"opensea_url"`
	UpdatedAt           *string `json:"updated_at"`
	IsDisabled          bool    `json:"is_disabled"`
	IsNSFW              bool    `json:"is_nsfw"`

	// Detail fields
	Creator *string `json:"creator,omitempty"`
	Traits  []Trait `json:"traits,omitempty"`
	Owners  []Owner `json:"owners,omitempty"`
}

// Trait represents a trait/attribute of an NFT
type Trait struct {
	TraitType   string      `json:"trait_type"`
	DisplayType *string     `json:"display_type"`
	MaxValue    interface{} `json:"max_value"`
	Value       interface{} `json:"value"`
}

// Owner is an owner entry of the detail endpoint
type Owner struct {
	Address  string `json:"address"`
	Quantity int64  `json:"quantity"`
}

// NFTListResponse is returned by the account NFTs endpoint
type NFTListResponse struct {
	NFTs []NFT `json:"nfts"`
	Next string `json:"next"`
}

// NFTResponse represents the response from the Get NFT endpoint
type NFTResponse struct {
	NFT    NFT      `json:"nft"`
	Errors []string `json:"errors,omitempty"`
}

// Event is an account event. Mints are transfers from the zero address.
type Event struct {
	EventType      string `json:"event_type"`
	EventTimestamp int64  `json:"event_timestamp"`
	FromAddress    string `json:"from_address"`
	ToAddress      string `json:"to_address"`
	Quantity       int64  `json:"quantity"`
	NFT            *NFT   `json:"nft"`
}

// EventListResponse is returned by the account events endpoint
type EventListResponse struct {
	AssetEvents []Event `json:"asset_events"`
	Next        string  `json:"next"`
}

// Collection is returned by the collection endpoint
type Collection struct {
	Slug            string         `json:"collection"`
	Name            *string        `json:"name"`
	Description     *string        `json:"description"`
	ImageURL        *string        `json:"image_url"`
	BannerImageURL  *string        `json:"banner_image_url"`
	Category        *string        `json:"category"`
	OpenSeaURL      *string        `json:"opensea_url"`
	ProjectURL      *string        `json:"project_url"`
	TwitterUsername *string        `json:"twitter_username"`
	Contracts       []ContractInfo `json:"contracts"`
	TotalSupply     *int64         `json:"total_supply"`
}

// ContractInfo is a contract deployment of a collection
type ContractInfo struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
}

// IsGenerative reports whether the collection is categorised as generative art
func (c *Collection) IsGenerative() bool {
	return c != nil && c.Category != nil && strings.Contains(strings.ToLower(*c.Category), "generative")
}

// CollectionStats is returned by the collection stats endpoint
type CollectionStats struct {
	Total struct {
		Volume           json.Number `json:"volume"`
		Sales            int64       `json:"sales"`
		NumOwners        int64       `json:"num_owners"`
		FloorPrice       json.Number `json:"floor_price"`
		FloorPriceSymbol string      `json:"floor_price_symbol"`
	} `json:"total"`
}

// Account is a user profile
type Account struct {
	Address         string          `json:"address"`
	Username        *string         `json:"username"`
	ProfileImageURL *string         `json:"profile_image_url"`
	Website         *string         `json:"website"`
	Bio             *string         `json:"bio"`
	SocialMedia     []SocialAccount `json:"social_media_accounts"`
}

// SocialAccount is a linked social handle
type SocialAccount struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
}

// Record is everything the adapter learned about one token
type Record struct {
	NFT        NFT              `json:"nft"`
	Collection *Collection      `json:"collection,omitempty"`
	Stats      *CollectionStats `json:"stats,omitempty"`
	// CreatorProfile is the profile of NFT.Creator, the token-level creator
	CreatorProfile *Account `json:"creator_profile,omitempty"`
}
