package registry

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
)

// BlacklistRegistry defines the interface for blacklist operations
//
//go:generate mockgen -source=blacklist.go -destination=../mocks/blacklist_registry.go -package=mocks -mock_names=BlacklistRegistry=MockBlacklistRegistry
type BlacklistRegistry interface {
	// IsBlacklisted checks if a contract address is blacklisted for a given chain
	IsBlacklisted(chainID domain.Chain, contractAddress string) bool
}

// BlacklistData represents the structure of the blacklist.json file
// Key format: "chain_id" -> list of contract addresses
type BlacklistData map[string][]string

// DefaultBlacklist lists protocol contracts whose tokens are not collectibles:
// wrapped currencies, name services and liquidity positions.
// These always apply, with or without a blacklist file.
var DefaultBlacklist = BlacklistData{
	string(domain.ChainEthereumMainnet): {
		"0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", // WETH
		"0x57f1887a8bf19b14fc0df6fd9b2acc9af147ea85", // ENS base registrar
		"0xd4416b13d2b3a9abae7acd5d6c2bbdbe25686401", // ENS name wrapper
		"0xc36442b4a4522e871399cd717abdd847ab11fe88", // Uniswap V3 positions
	},
	string(domain.ChainTezosMainnet): {
		"KT1VYsVfmobT7rsMVivvZ4J8i3bPiqz12NaH", // wXTZ
		"KT1GBZmSxmnKJXGMdMLbugPfLyUPmuLSMwKS", // Tezos Domains
		"KT1AFA2mwNUMNd4SsujE1YYp29vd8BZejyKW", // hDAO
	},
}

// blacklistRegistry is the internal implementation of BlacklistRegistry
type blacklistRegistry struct {
	// Fast lookup map: "chain:contract" -> true
	contracts map[string]bool
}

// NewBlacklistRegistry builds a registry from the defaults plus the given extra entries
func NewBlacklistRegistry(extra BlacklistData) BlacklistRegistry {
	bl := &blacklistRegistry{contracts: make(map[string]bool)}
	bl.add(DefaultBlacklist)
	bl.add(extra)
	return bl
}

func (b *blacklistRegistry) add(data BlacklistData) {
	for chainID, addresses := range data {
		for _, addr := range addresses {
			b.contracts[blacklistKey(domain.Chain(chainID), addr)] = true
		}
	}
}

func blacklistKey(chainID domain.Chain, contractAddress string) string {
	return fmt.Sprintf("%s:%s",
		strings.ToLower(string(chainID)),
		strings.ToLower(strings.TrimSpace(contractAddress)))
}

// IsBlacklisted checks if a contract address is blacklisted for a given chain
func (b *blacklistRegistry) IsBlacklisted(chainID domain.Chain, contractAddress string) bool {
	if b == nil {
		return false
	}
	return b.contracts[blacklistKey(chainID, contractAddress)]
}

// BlacklistRegistryLoader defines the interface for loading blacklist registries from files
//
//go:generate mockgen -source=blacklist.go -destination=../mocks/blacklist_registry.go -package=mocks -mock_names=BlacklistRegistryLoader=MockBlacklistRegistryLoader
type BlacklistRegistryLoader interface {
	// Load loads the blacklist from a JSON file. An empty path yields the defaults only.
	Load(filePath string) (BlacklistRegistry, error)
}

type blacklistRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewBlacklistRegistryLoader creates a new BlacklistRegistryLoader with injected dependencies
func NewBlacklistRegistryLoader(fs adapter.FileSystem, json adapter.JSON) BlacklistRegistryLoader {
	return &blacklistRegistryLoader{
		fs:   fs,
		json: json,
	}
}

// Load loads the blacklist registry from a JSON file
func (l *blacklistRegistryLoader) Load(filePath string) (BlacklistRegistry, error) {
	if filePath == "" {
		return NewBlacklistRegistry(nil), nil
	}

	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read blacklist file: %w", err)
	}

	var blacklistData BlacklistData
	if err := l.json.Unmarshal(data, &blacklistData); err != nil {
		return nil, fmt.Errorf("failed to parse blacklist JSON: %w", err)
	}

	return NewBlacklistRegistry(blacklistData), nil
}
