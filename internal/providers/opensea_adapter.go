package providers

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/opensea"
	"github.com/feral-file/ff-catalog-indexer/internal/registry"
)

// collectionInfo caches the collection lookups of one slug
type collectionInfo struct {
	collection *opensea.Collection
	stats      *opensea.CollectionStats
}

// OpenSeaAdapter pages the Ethereum marketplace by cursor
type OpenSeaAdapter struct {
	client       opensea.Client
	blacklist    registry.BlacklistRegistry
	fetchDetails bool

	mu          sync.Mutex
	collections map[string]*collectionInfo
	accounts    map[string]*opensea.Account
}

// NewOpenSeaAdapter creates the Ethereum adapter. With fetchDetails every
// token is enriched from the detail endpoint, which carries traits and the
// token-level creator, and with the creator profile.
func NewOpenSeaAdapter(client opensea.Client, blacklist registry.BlacklistRegistry, fetchDetails bool) *OpenSeaAdapter {
	return &OpenSeaAdapter{
		client:       client,
		blacklist:    blacklist,
		fetchDetails: fetchDetails,
		collections:  make(map[string]*collectionInfo),
		accounts:     make(map[string]*opensea.Account),
	}
}

func (a *OpenSeaAdapter) Source() domain.DataSource {
	return domain.DataSourceOpenSea
}

func (a *OpenSeaAdapter) Blockchain() domain.Blockchain {
	return domain.BlockchainEthereum
}

// BeginRun drops the collection and profile caches
func (a *OpenSeaAdapter) BeginRun() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.collections = make(map[string]*collectionInfo)
	a.accounts = make(map[string]*opensea.Account)
}

func (a *OpenSeaAdapter) FetchWalletTokens(ctx context.Context, address string, observationType domain.ObservationType, pageSize int, cursor string) (*Page, error) {
	var nfts []opensea.NFT
	var next string

	switch observationType {
	case domain.ObservationOwned:
		resp, err := a.client.ListAccountNFTs(ctx, address, pageSize, cursor)
		if err != nil {
			return nil, err
		}
		nfts, next = resp.NFTs, resp.Next
	case domain.ObservationCreated:
		resp, err := a.client.ListAccountMints(ctx, address, pageSize, cursor)
		if err != nil {
			return nil, err
		}
		for _, ev := range resp.AssetEvents {
			if ev.IsMint(address) {
				nfts = append(nfts, *ev.NFT)
			}
		}
		next = resp.Next
	default:
		return nil, domain.ErrInvalidObservationType
	}

	page := &Page{NextCursor: next, Done: next == ""}
	seen := make(map[domain.TokenKey]bool)

	for _, nft := range nfts {
		key := domain.NewTokenKey(nft.Contract, nft.Identifier)
		if !key.Valid() || seen[key] {
			continue
		}
		seen[key] = true

		if a.blacklist.IsBlacklisted(domain.ChainEthereumMainnet, nft.Contract) {
			page.Filtered++
			continue
		}

		record, err := a.enrich(ctx, nft)
		if err != nil {
			return nil, err
		}

		page.Records = append(page.Records, ProviderRecord{
			Source:          domain.DataSourceOpenSea,
			Blockchain:      domain.BlockchainEthereum,
			Wallet:          address,
			ObservationType: observationType,
			OpenSea:         record,
		})
	}

	return page, nil
}

// enrich adds detail, collection and creator profile to a listing item.
// Lookups are best effort: only cancellation aborts the page.
func (a *OpenSeaAdapter) enrich(ctx context.Context, nft opensea.NFT) (*opensea.Record, error) {
	record := &opensea.Record{NFT: nft}

	if a.fetchDetails {
		detail, err := a.client.GetNFT(ctx, nft.Contract, nft.Identifier)
		switch {
		case err == nil:
			record.NFT = mergeDetail(nft, *detail)
		case isCanceled(ctx, err):
			return nil, err
		default:
			logger.WarnCtx(ctx, "Failed to fetch NFT detail",
				zap.String("contract", nft.Contract),
				zap.String("tokenID", nft.Identifier),
				zap.Error(err))
		}
	}

	if nft.Collection != "" {
		info, err := a.collection(ctx, nft.Collection)
		if err != nil {
			return nil, err
		}
		record.Collection = info.collection
		record.Stats = info.stats
	}

	if a.fetchDetails && record.NFT.Creator != nil && *record.NFT.Creator != "" {
		account, err := a.account(ctx, *record.NFT.Creator)
		if err != nil {
			return nil, err
		}
		record.CreatorProfile = account
	}

	return record, nil
}

// collection resolves a slug once per run; failed lookups are cached as empty
func (a *OpenSeaAdapter) collection(ctx context.Context, slug string) (*collectionInfo, error) {
	a.mu.Lock()
	info, ok := a.collections[slug]
	a.mu.Unlock()
	if ok {
		return info, nil
	}

	info = &collectionInfo{}
	collection, err := a.client.GetCollection(ctx, slug)
	if err != nil {
		if isCanceled(ctx, err) {
			return nil, err
		}
		logger.WarnCtx(ctx, "Failed to fetch collection", zap.String("slug", slug), zap.Error(err))
	} else {
		info.collection = collection
	}

	stats, err := a.client.GetCollectionStats(ctx, slug)
	if err != nil {
		if isCanceled(ctx, err) {
			return nil, err
		}
		logger.WarnCtx(ctx, "Failed to fetch collection stats", zap.String("slug", slug), zap.Error(err))
	} else {
		info.stats = stats
	}

	a.mu.Lock()
	a.collections[slug] = info
	a.mu.Unlock()
	return info, nil
}

// account resolves a creator profile once per run
func (a *OpenSeaAdapter) account(ctx context.Context, address string) (*opensea.Account, error) {
	key := domain.NormalizeAddress(address)

	a.mu.Lock()
	account, ok := a.accounts[key]
	a.mu.Unlock()
	if ok {
		return account, nil
	}

	account, err := a.client.GetAccount(ctx, address)
	if err != nil {
		if isCanceled(ctx, err) {
			return nil, err
		}
		logger.WarnCtx(ctx, "Failed to fetch creator profile", zap.String("address", address), zap.Error(err))
		account = nil
	}

	a.mu.Lock()
	a.accounts[key] = account
	a.mu.Unlock()
	return account, nil
}

// mergeDetail prefers detail fields and keeps listing values the detail lacks
func mergeDetail(listed, detail opensea.NFT) opensea.NFT {
	merged := detail
	if merged.Collection == "" {
		merged.Collection = listed.Collection
	}
	if merged.TokenStandard == "" {
		merged.TokenStandard = listed.TokenStandard
	}
	if merged.DisplayImageURL == nil {
		merged.DisplayImageURL = listed.DisplayImageURL
	}
	if merged.DisplayAnimationURL == nil {
		merged.DisplayAnimationURL = listed.DisplayAnimationURL
	}
	if merged.Name == nil {
		merged.Name = listed.Name
	}
	if merged.ImageURL == nil {
		merged.ImageURL = listed.ImageURL
	}
	return merged
}

func isCanceled(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
