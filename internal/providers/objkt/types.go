package objkt

import "encoding/json"

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query         string      `json:"query"`
	Variables     interface{} `json:"variables"`
	OperationName string      `json:"operationName"`
}

// GraphQLError is an error entry of a GraphQL response
type GraphQLError struct {
	Message string `json:"message"`
}

// TokenResponse represents the GraphQL response from objkt v3 API
type TokenResponse struct {
	Data struct {
		Token []Token `json:"token"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors,omitempty"`
}

// Token represents a token from objkt v3 API with its creators and contract
type Token struct {
	TokenID      string            `json:"token_id"`
	FAContract   string            `json:"fa_contract"`
	Name         *string           `json:"name"`
	Description  *string           `json:"description"`
	DisplayURI   *string           `json:"display_uri"`
	ArtifactURI  *string           `json:"artifact_uri"`
	ThumbnailURI *string           `json:"thumbnail_uri"`
	Metadata     *string           `json:"metadata"`
	Mime         *string           `json:"mime"`
	Supply       json.Number       `json:"supply"`
	Timestamp    *string           `json:"timestamp"`
	Flag         *string           `json:"flag"`
	Creators     []Creator         `json:"creators"`
	Attributes   []TokenAttribute  `json:"attributes"`
	FA           *FA               `json:"fa"`
	Formats      []json.RawMessage `json:"formats,omitempty"`
}

// Creator is an entry of the token-level creators relation
type Creator struct {
	CreatorAddress string `json:"creator_address"`
	Verified       bool   `json:"verified"`
	Holder         Holder `json:"holder"`
}

// Holder represents the profile of an address
type Holder struct {
	Address     string  `json:"address"`
	Alias       *string `json:"alias"`
	TzDomain    *string `json:"tzdomain"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Twitter     *string `json:"twitter"`
	Instagram   *string `json:"instagram"`
	Logo        *string `json:"logo"`
}

// TokenAttribute wraps an attribute of the token
type TokenAttribute struct {
	Attribute struct {
		Name  string `json:"name"`
		Value string `json:"value"`
		Type  string `json:"type"`
	} `json:"attribute"`
}

// FA is the FA2 contract (collection) a token belongs to. The contract
// creator is deliberately not queried: it names the deployer, not the author.
type FA struct {
	Contract       string  `json:"contract"`
	Name           *string `json:"name"`
	Slug           *string `json:"path"`
	Description    *string `json:"description"`
	Logo           *string `json:"logo"`
	Website        *string `json:"website"`
	CollectionType *string `json:"collection_type"`
	Editions       *int64  `json:"editions"`
	OwnerCount     *int64  `json:"owners"`
	FloorPrice     *int64  `json:"floor_price"`
	Volume         *int64  `json:"volume_total"`
}

// IsGenerative reports whether the contract is a generative collection
func (f *FA) IsGenerative() bool {
	return f != nil && f.CollectionType != nil && *f.CollectionType == "generative"
}

// Record is a token observed for a wallet
type Record struct {
	Token Token `json:"token"`
}
