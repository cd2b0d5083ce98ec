package objkt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/metrics"
	"github.com/feral-file/ff-catalog-indexer/internal/ratelimit"
)

const PROVIDER_NAME = "objkt"

// MaxPageSize is the largest limit the objkt API accepts
const MaxPageSize = 500

// tokenFields is the selection shared by the wallet queries. One round trip
// returns the token, its creators and its contract.
const tokenFields = `
    token_id
    fa_contract
    name
    description
    display_uri
    artifact_uri
    thumbnail_uri
    metadata
    mime
    supply
    timestamp
    flag
    creators {
      creator_address
      verified
      holder {
        address
        alias
        tzdomain
        description
        website
        twitter
        instagram
        logo
      }
    }
    attributes {
      attribute {
        name
        value
        type
      }
    }
    fa {
      contract
      name
      path
      description
      logo
      website
      collection_type
      editions
      owners
      floor_price
      volume_total
    }`

var walletQueries = map[domain.ObservationType]string{
	domain.ObservationOwned: `query WalletTokens($address: String!, $limit: Int!, $offset: Int!) {
  token(
    where: {holders: {holder_address: {_eq: $address}, quantity: {_gt: "0"}}}
    order_by: {pk: asc}
    limit: $limit
    offset: $offset
  ) {` + tokenFields + `
  }
}`,
	domain.ObservationCreated: `query WalletTokens($address: String!, $limit: Int!, $offset: Int!) {
  token(
    where: {creators: {creator_address: {_eq: $address}}}
    order_by: {pk: asc}
    limit: $limit
    offset: $offset
  ) {` + tokenFields + `
  }
}`,
}

// Client defines the interface for objkt client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/objkt_client.go -package=mocks -mock_names=Client=MockObjktClient
type Client interface {
	// WalletTokens returns one page of tokens owned or created by address
	WalletTokens(ctx context.Context, address string, observationType domain.ObservationType, limit int, offset int) ([]Token, error)
}

// ObjktClient implements objkt client
type ObjktClient struct {
	httpClient adapter.HTTPClient
	limiter    ratelimit.Limiter
	metrics    *metrics.Metrics
	apiURL     string
}

// NewClient creates a new objkt client. Every request waits on limiter.
func NewClient(httpClient adapter.HTTPClient, limiter ratelimit.Limiter, m *metrics.Metrics, apiURL string) Client {
	return &ObjktClient{
		httpClient: httpClient,
		limiter:    limiter,
		metrics:    m,
		apiURL:     apiURL,
	}
}

// WalletTokens queries the objkt v3 API using GraphQL
func (c *ObjktClient) WalletTokens(ctx context.Context, address string, observationType domain.ObservationType, limit int, offset int) ([]Token, error) {
	query, ok := walletQueries[observationType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidObservationType, observationType)
	}
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	request := GraphQLRequest{
		Query: query,
		Variables: map[string]interface{}{
			"address": address,
			"limit":   limit,
			"offset":  offset,
		},
		OperationName: "WalletTokens",
	}

	response, err := ratelimit.Do(ctx, c.limiter, func(ctx context.Context) (*TokenResponse, error) {
		var resp TokenResponse
		start := time.Now()
		err := c.httpClient.PostJSON(ctx, c.apiURL, nil, request, &resp)
		c.metrics.ObserveProviderRequest(PROVIDER_NAME, time.Since(start), err)
		return &resp, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call objkt v3 API: %w", err)
	}

	if len(response.Errors) > 0 {
		messages := make([]string, 0, len(response.Errors))
		for _, e := range response.Errors {
			messages = append(messages, e.Message)
		}
		return nil, adapter.Permanent(fmt.Errorf("objkt GraphQL errors: %s", strings.Join(messages, "; ")))
	}

	return response.Data.Token, nil
}
