package providers

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/objkt"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/opensea"
)

// ProviderRecord is a provider-shaped token tagged by its source. Exactly
// one of OpenSea, Objkt or Manual is set, matching Source.
type ProviderRecord struct {
	Source          domain.DataSource      `json:"source"`
	Blockchain      domain.Blockchain      `json:"blockchain"`
	Wallet          string                 `json:"wallet,omitempty"`
	ObservationType domain.ObservationType `json:"observation_type"`

	OpenSea *opensea.Record     `json:"opensea,omitempty"`
	Objkt   *objkt.Record       `json:"objkt,omitempty"`
	Manual  *domain.IndexerData `json:"manual,omitempty"`
}

// TokenKey returns the (contract, token) pair of the record
func (r ProviderRecord) TokenKey() domain.TokenKey {
	switch r.Source {
	case domain.DataSourceOpenSea:
		if r.OpenSea != nil {
			return domain.NewTokenKey(r.OpenSea.NFT.Contract, r.OpenSea.NFT.Identifier)
		}
	case domain.DataSourceObjkt:
		if r.Objkt != nil {
			return domain.NewTokenKey(r.Objkt.Token.FAContract, r.Objkt.Token.TokenID)
		}
	case domain.DataSourceManual:
		if r.Manual != nil {
			return domain.NewTokenKey(r.Manual.ContractAddress, r.Manual.TokenID)
		}
	}
	return domain.TokenKey{}
}

// Page is one page of wallet tokens
type Page struct {
	Records []ProviderRecord
	// NextCursor is opaque to callers: an OpenSea "next" token or an objkt offset
	NextCursor string
	Done       bool
	// Filtered counts tokens dropped as non-collectible
	Filtered int
}

// Adapter fetches the tokens of a wallet from one provider. Each adapter
// owns its pagination idiom and its rate limiter.
//
//go:generate mockgen -source=provider.go -destination=../mocks/provider_adapter.go -package=mocks -mock_names=Adapter=MockProviderAdapter
type Adapter interface {
	// Source identifies the provider
	Source() domain.DataSource

	// Blockchain is the chain the provider indexes
	Blockchain() domain.Blockchain

	// FetchWalletTokens returns one page of tokens starting at cursor ("" for the first page)
	FetchWalletTokens(ctx context.Context, address string, observationType domain.ObservationType, pageSize int, cursor string) (*Page, error)

	// BeginRun resets per-run caches
	BeginRun()
}

// Set routes blockchains to adapters
type Set struct {
	adapters map[domain.Blockchain]Adapter
	order    []domain.Blockchain
}

// NewSet registers adapters by the blockchain they serve
func NewSet(adapters ...Adapter) *Set {
	s := &Set{adapters: make(map[domain.Blockchain]Adapter)}
	for _, a := range adapters {
		if a == nil {
			continue
		}
		if _, exists := s.adapters[a.Blockchain()]; !exists {
			s.order = append(s.order, a.Blockchain())
		}
		s.adapters[a.Blockchain()] = a
	}
	return s
}

// ForBlockchain returns the adapter serving blockchain
func (s *Set) ForBlockchain(blockchain domain.Blockchain) (Adapter, error) {
	a, ok := s.adapters[blockchain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedBlockchain, blockchain)
	}
	return a, nil
}

// BeginRun resets the caches of every adapter
func (s *Set) BeginRun() {
	for _, b := range s.order {
		s.adapters[b].BeginRun()
	}
}
