package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Blockchain represents the blockchain name
type Blockchain string

const (
	BlockchainEthereum Blockchain = "ethereum"
	BlockchainTezos    Blockchain = "tezos"
)

// IsValidBlockchain checks if a blockchain is supported
func IsValidBlockchain(blockchain Blockchain) bool {
	return blockchain == BlockchainEthereum || blockchain == BlockchainTezos
}

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainTezosMainnet    Chain = "tezos:mainnet"
)

// ChainOf returns the mainnet chain identifier for a blockchain
func ChainOf(blockchain Blockchain) Chain {
	switch blockchain {
	case BlockchainEthereum:
		return ChainEthereumMainnet
	case BlockchainTezos:
		return ChainTezosMainnet
	default:
		return Chain("")
	}
}

// ChainStandard represents blockchain token standards
type ChainStandard string

const (
	StandardERC721  ChainStandard = "erc721"
	StandardERC1155 ChainStandard = "erc1155"
	StandardFA2     ChainStandard = "fa2"
)

// DataSource identifies the upstream provider that produced a record
type DataSource string

const (
	DataSourceOpenSea DataSource = "opensea"
	DataSourceObjkt   DataSource = "objkt"
	DataSourceManual  DataSource = "manual"
)

// ObservationType records why a token was discovered for a wallet
type ObservationType string

const (
	// ObservationOwned means the queried wallet holds the token
	ObservationOwned ObservationType = "owned"
	// ObservationCreated means the queried wallet minted the token
	ObservationCreated ObservationType = "created"
)

// ObservationTypes lists observation types in processing order
var ObservationTypes = []ObservationType{ObservationOwned, ObservationCreated}

// IsValidObservationType checks if an observation type is known
func IsValidObservationType(t ObservationType) bool {
	return t == ObservationOwned || t == ObservationCreated
}

// ImportStatus is the promotion state of a staged record
type ImportStatus string

const (
	ImportStatusPending    ImportStatus = "pending"
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusImported   ImportStatus = "imported"
	ImportStatusFailed     ImportStatus = "failed"
)

// PROCESSING_LEASE is how long a processing claim holds. A record still
// processing after that is treated as abandoned and may be claimed again or reset.
const PROCESSING_LEASE = 10 * time.Minute

// validTransitions lists the allowed status moves of a staged record.
// imported -> pending only happens when the linked artwork is deleted.
// failed -> pending is a manual reset; processing -> pending releases a claim.
var validTransitions = map[ImportStatus][]ImportStatus{
	ImportStatusPending:    {ImportStatusProcessing},
	ImportStatusProcessing: {ImportStatusImported, ImportStatusFailed, ImportStatusPending},
	ImportStatusImported:   {ImportStatusProcessing, ImportStatusPending},
	ImportStatusFailed:     {ImportStatusPending},
}

// CanTransition reports whether a staged record may move from one status to another
func CanTransition(from, to ImportStatus) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsStaleClaim reports whether a processing record has outlived its lease at now.
// A processing record without a claim time is stale.
func IsStaleClaim(status ImportStatus, claimedAt *time.Time, now time.Time) bool {
	if status != ImportStatusProcessing {
		return false
	}
	return claimedAt == nil || !now.Before(claimedAt.Add(PROCESSING_LEASE))
}

// TokenKey identifies a token across providers: (contract address, token id)
type TokenKey struct {
	ContractAddress string
	TokenID         string
}

// NewTokenKey builds a token key with a normalized contract address
func NewTokenKey(contractAddress, tokenID string) TokenKey {
	return TokenKey{
		ContractAddress: NormalizeAddress(contractAddress),
		TokenID:         strings.TrimSpace(tokenID),
	}
}

// String returns "contract:token"
func (k TokenKey) String() string {
	return fmt.Sprintf("%s:%s", k.ContractAddress, k.TokenID)
}

// Valid checks the token key has a contract and a numeric token id
func (k TokenKey) Valid() bool {
	return k.ContractAddress != "" && validTokenNumber(k.TokenID)
}

// AddressToBlockchain converts an address to the blockchain it belongs to
func AddressToBlockchain(address string) Blockchain {
	if strings.HasPrefix(address, "0x") {
		return BlockchainEthereum
	}
	return BlockchainTezos
}

// IsValidAddress checks whether an address is a well formed ethereum or tezos address
func IsValidAddress(address string) bool {
	if strings.HasPrefix(address, "0x") {
		return common.IsHexAddress(address)
	}
	return tezosAddressRegex.MatchString(address)
}

// NormalizeAddresses normalizes a list of addresses, dropping empty entries
func NormalizeAddresses(addresses []string) []string {
	normalized := make([]string, 0, len(addresses))
	for _, address := range addresses {
		if a := NormalizeAddress(address); a != "" {
			normalized = append(normalized, a)
		}
	}
	return normalized
}

// NormalizeAddress case-normalizes an address.
// Ethereum addresses are lower-cased hex; tezos addresses are base58 and case sensitive.
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	if common.IsHexAddress(address) {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	if len(address) > 1 && (address[:2] == "0x" || address[:2] == "0X") {
		return strings.ToLower(address)
	}
	return address
}

var (
	tokenNumberRegex  = regexp.MustCompile(`^[0-9]+$`)
	tezosAddressRegex = regexp.MustCompile(`^(tz1|tz2|tz3|tz4|KT1)[1-9A-HJ-NP-Za-km-z]{33}$`)
)

// validTokenNumber checks if a token number is valid
func validTokenNumber(tokenNumber string) bool {
	return tokenNumberRegex.MatchString(tokenNumber)
}
