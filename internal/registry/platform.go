package registry

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
)

// PlatformRegistry knows which contracts belong to multi-artist platforms.
// Tokens on those contracts never take authorship from contract-level fields.
//
//go:generate mockgen -source=platform.go -destination=../mocks/platform_registry.go -package=mocks -mock_names=PlatformRegistry=MockPlatformRegistry
type PlatformRegistry interface {
	// LookupByContract returns the platform hosting the contract, or nil
	LookupByContract(chainID domain.Chain, contractAddress string) *PlatformInfo
}

// PlatformInfo represents a platform entry in the registry
type PlatformInfo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	// Shared is true when the contracts host works by many artists
	Shared bool `json:"shared"`
	// Generative is true when tokens are outputs of on-chain generators
	Generative bool `json:"generative"`
	// Contracts maps a chain ID like "eip155:1" to contract addresses
	Contracts map[string][]string `json:"contracts"`
}

// PlatformRegistryData represents the structure of the registry JSON file
type PlatformRegistryData struct {
	Version   int            `json:"version"`
	Platforms []PlatformInfo `json:"platforms"`
}

// DefaultPlatforms are the shared-contract platforms known without a registry file
var DefaultPlatforms = []PlatformInfo{
	{
		Name:   "OpenSea Shared Storefront",
		URL:    "https://opensea.io",
		Shared: true,
		Contracts: map[string][]string{
			string(domain.ChainEthereumMainnet): {"0x495f947276749ce646f68ac8c248420045cb7b5e"},
		},
	},
	{
		Name:       "Art Blocks",
		URL:        "https://www.artblocks.io",
		Shared:     true,
		Generative: true,
		Contracts: map[string][]string{
			string(domain.ChainEthereumMainnet): {
				"0x059edd72cd353df5106d2b9cc5ab83a52287ac3a",
				"0xa7d8d9ef8d8ce8992df33d8b8cf4aebabd5bd270",
				"0x99a9b7c1116f9ceeb1652de04d5969cce509b069",
			},
		},
	},
	{
		Name:   "Foundation",
		URL:    "https://foundation.app",
		Shared: true,
		Contracts: map[string][]string{
			string(domain.ChainEthereumMainnet): {"0x3b3ee1931dc30c1957379fac9aba94d1c48a5405"},
		},
	},
	{
		Name:   "SuperRare",
		URL:    "https://superrare.com",
		Shared: true,
		Contracts: map[string][]string{
			string(domain.ChainEthereumMainnet): {"0xb932a70a57673d89f4acffbe830e8ed7f75fb9e0"},
		},
	},
	{
		Name:   "OBJKT (hic et nunc)",
		URL:    "https://objkt.com",
		Shared: true,
		Contracts: map[string][]string{
			string(domain.ChainTezosMainnet): {"KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton"},
		},
	},
	{
		Name:       "fxhash",
		URL:        "https://www.fxhash.xyz",
		Shared:     true,
		Generative: true,
		Contracts: map[string][]string{
			string(domain.ChainTezosMainnet): {
				"KT1KEa8z6vWXDJrVqtMrAeDVzsvxat3kHaCE",
				"KT1U6EHmNxJTkvaWJ4ThczG4FSDaHC21ssvi",
			},
		},
	},
}

type platformRegistry struct {
	// chain:contract -> platform
	byContract map[string]*PlatformInfo
}

// NewPlatformRegistry builds a registry from the defaults followed by extra
// platforms. A contract listed in extra overrides the default entry.
func NewPlatformRegistry(extra []PlatformInfo) PlatformRegistry {
	r := &platformRegistry{byContract: make(map[string]*PlatformInfo)}
	for _, set := range [][]PlatformInfo{DefaultPlatforms, extra} {
		for i := range set {
			platform := set[i]
			for chainID, contracts := range platform.Contracts {
				for _, addr := range contracts {
					r.byContract[blacklistKey(domain.Chain(chainID), addr)] = &platform
				}
			}
		}
	}
	return r
}

func (r *platformRegistry) LookupByContract(chainID domain.Chain, contractAddress string) *PlatformInfo {
	if r == nil {
		return nil
	}
	return r.byContract[blacklistKey(chainID, contractAddress)]
}

// PlatformRegistryLoader defines the interface for loading platform registries from files
//
//go:generate mockgen -source=platform.go -destination=../mocks/platform_registry.go -package=mocks -mock_names=PlatformRegistryLoader=MockPlatformRegistryLoader
type PlatformRegistryLoader interface {
	// Load loads the registry from a JSON file. An empty path yields the defaults only.
	Load(filePath string) (PlatformRegistry, error)
}

type platformRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewPlatformRegistryLoader creates a new PlatformRegistryLoader with injected dependencies
func NewPlatformRegistryLoader(fs adapter.FileSystem, json adapter.JSON) PlatformRegistryLoader {
	return &platformRegistryLoader{fs: fs, json: json}
}

func (l *platformRegistryLoader) Load(filePath string) (PlatformRegistry, error) {
	if filePath == "" {
		return NewPlatformRegistry(nil), nil
	}

	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry file: %w", err)
	}

	var registryData PlatformRegistryData
	if err := l.json.Unmarshal(data, &registryData); err != nil {
		return nil, fmt.Errorf("failed to parse registry JSON: %w", err)
	}

	for _, p := range registryData.Platforms {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("failed to parse registry JSON: platform without name")
		}
	}

	return NewPlatformRegistry(registryData.Platforms), nil
}
