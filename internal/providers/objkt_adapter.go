package providers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/objkt"
	"github.com/feral-file/ff-catalog-indexer/internal/registry"
)

// ObjktAdapter pages the Tezos graph API by limit/offset
type ObjktAdapter struct {
	client    objkt.Client
	blacklist registry.BlacklistRegistry
}

// NewObjktAdapter creates the Tezos adapter
func NewObjktAdapter(client objkt.Client, blacklist registry.BlacklistRegistry) *ObjktAdapter {
	return &ObjktAdapter{client: client, blacklist: blacklist}
}

func (a *ObjktAdapter) Source() domain.DataSource {
	return domain.DataSourceObjkt
}

func (a *ObjktAdapter) Blockchain() domain.Blockchain {
	return domain.BlockchainTezos
}

// BeginRun is a no-op: one query returns token, creators and contract
func (a *ObjktAdapter) BeginRun() {}

// FetchWalletTokens uses the decimal offset as cursor. A short page is the last one.
func (a *ObjktAdapter) FetchWalletTokens(ctx context.Context, address string, observationType domain.ObservationType, pageSize int, cursor string) (*Page, error) {
	offset := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 {
			return nil, adapter.Permanent(fmt.Errorf("invalid objkt cursor %q", cursor))
		}
		offset = n
	}
	if pageSize <= 0 || pageSize > objkt.MaxPageSize {
		pageSize = objkt.MaxPageSize
	}

	tokens, err := a.client.WalletTokens(ctx, address, observationType, pageSize, offset)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Done:       len(tokens) < pageSize,
		NextCursor: strconv.Itoa(offset + len(tokens)),
	}
	if page.Done {
		page.NextCursor = ""
	}

	for _, token := range tokens {
		if !domain.NewTokenKey(token.FAContract, token.TokenID).Valid() {
			continue
		}
		if a.blacklist.IsBlacklisted(domain.ChainTezosMainnet, token.FAContract) {
			page.Filtered++
			continue
		}
		page.Records = append(page.Records, ProviderRecord{
			Source:          domain.DataSourceObjkt,
			Blockchain:      domain.BlockchainTezos,
			Wallet:          address,
			ObservationType: observationType,
			Objkt:           &objkt.Record{Token: token},
		})
	}

	return page, nil
}
