package opensea

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/metrics"
	"github.com/feral-file/ff-catalog-indexer/internal/ratelimit"
)

const PROVIDER_NAME = "opensea"

// chain is the OpenSea chain slug for Ethereum mainnet
const chain = "ethereum"

// MaxPageSize is the largest page the account endpoints accept
const MaxPageSize = 200

// Client defines the interface for OpenSea client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/opensea_client.go -package=mocks -mock_names=Client=MockOpenSeaClient
type Client interface {
	// ListAccountNFTs lists NFTs held by an account
	ListAccountNFTs(ctx context.Context, address string, limit int, next string) (*NFTListResponse, error)

	// ListAccountMints lists transfer events of an account, including mints
	ListAccountMints(ctx context.Context, address string, limit int, next string) (*EventListResponse, error)

	// GetNFT fetches the detail of one NFT, including traits and the token-level creator
	GetNFT(ctx context.Context, contractAddress, tokenID string) (*NFT, error)

	// GetCollection fetches collection details by slug
	GetCollection(ctx context.Context, slug string) (*Collection, error)

	// GetCollectionStats fetches collection trading statistics by slug
	GetCollectionStats(ctx context.Context, slug string) (*CollectionStats, error)

	// GetAccount fetches a user profile by address
	GetAccount(ctx context.Context, address string) (*Account, error)
}

// OpenSeaClient implements Client over the OpenSea REST API v2
type OpenSeaClient struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.Limiter
	metrics    *metrics.Metrics
	apiURL     string
	apiKey     string
}

// NewClient creates a new OpenSea client. Every request waits on limiter.
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.Limiter, m *metrics.Metrics, apiURL string, apiKey string) Client {
	return &OpenSeaClient{
		httpClient: httpClient,
		limiter:    limiter,
		metrics:    m,
		apiURL:     strings.TrimRight(apiURL, "/"),
		apiKey:     apiKey,
	}
}

// get performs one paced, authenticated GET
func (c *OpenSeaClient) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	if c.apiKey == "" {
		return adapter.Permanent(domain.ErrNoAPIKey)
	}

	u := c.apiURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	headers := map[string]string{
		"X-API-KEY": c.apiKey,
	}

	_, err := ratelimit.Do(ctx, c.limiter, func(ctx context.Context) (struct{}, error) {
		start := time.Now()
		err := c.httpClient.GetJSON(ctx, u, headers, result)
		c.metrics.ObserveProviderRequest(PROVIDER_NAME, time.Since(start), err)
		return struct{}{}, err
	})
	if err != nil {
		return fmt.Errorf("failed to call OpenSea API: %w", err)
	}
	return nil
}

func pageQuery(limit int, next string) url.Values {
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if next != "" {
		q.Set("next", next)
	}
	return q
}

func (c *OpenSeaClient) ListAccountNFTs(ctx context.Context, address string, limit int, next string) (*NFTListResponse, error) {
	var resp NFTListResponse
	path := fmt.Sprintf("/chain/%s/account/%s/nfts", chain, strings.ToLower(address))
	if err := c.get(ctx, path, pageQuery(limit, next), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *OpenSeaClient) ListAccountMints(ctx context.Context, address string, limit int, next string) (*EventListResponse, error) {
	q := pageQuery(limit, next)
	q.Set("event_type", "transfer")
	q.Set("chain", chain)

	var resp EventListResponse
	path := fmt.Sprintf("/events/accounts/%s", strings.ToLower(address))
	if err := c.get(ctx, path, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *OpenSeaClient) GetNFT(ctx context.Context, contractAddress, tokenID string) (*NFT, error) {
	var resp NFTResponse
	path := fmt.Sprintf("/chain/%s/contract/%s/nfts/%s", chain, strings.ToLower(contractAddress), tokenID)
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("OpenSea API errors: %v", resp.Errors)
	}
	return &resp.NFT, nil
}

func (c *OpenSeaClient) GetCollection(ctx context.Context, slug string) (*Collection, error) {
	var resp Collection
	if err := c.get(ctx, "/collections/"+url.PathEscape(slug), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *OpenSeaClient) GetCollectionStats(ctx context.Context, slug string) (*CollectionStats, error) {
	var resp CollectionStats
	if err := c.get(ctx, "/collections/"+url.PathEscape(slug)+"/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *OpenSeaClient) GetAccount(ctx context.Context, address string) (*Account, error) {
	var resp Account
	if err := c.get(ctx, "/accounts/"+strings.ToLower(address), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExtractArtistFromTraits returns artist names listed in traits such as
// "artist" or "created by", joined with ", "
func ExtractArtistFromTraits(traits []Trait) string {
	artistTraitNames := map[string]bool{
		"artist":       true,
		"artists":      true,
		"creator":      true,
		"artist name":  true,
		"creator name": true,
		"made by":      true,
		"created by":   true,
	}

	var artistNames []string
	seen := make(map[string]bool)
	for _, trait := range traits {
		if !artistTraitNames[strings.ToLower(strings.TrimSpace(trait.TraitType))] {
			continue
		}
		if v, ok := trait.Value.(string); ok && v != "" && !seen[v] {
			artistNames = append(artistNames, v)
			seen[v] = true
		}
	}

	return strings.Join(artistNames, ", ")
}

// IsMint reports whether the event minted a token to address
func (e *Event) IsMint(address string) bool {
	if e.NFT == nil {
		return false
	}
	if e.EventType != "mint" && e.EventType != "transfer" {
		return false
	}
	return strings.EqualFold(e.FromAddress, domain.ETHEREUM_ZERO_ADDRESS) &&
		strings.EqualFold(e.ToAddress, address)
}
