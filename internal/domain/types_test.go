package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		expected string
	}{
		{
			name:     "checksummed ethereum address is lower-cased",
			address:  "0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D",
			expected: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		},
		{
			name:     "surrounding whitespace is trimmed",
			address:  "  0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d ",
			expected: "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d",
		},
		{
			name:     "tezos address keeps its case",
			address:  "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb",
			expected: "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb",
		},
		{
			name:     "short hex prefixed address is lower-cased",
			address:  "0XAB",
			expected: "0xab",
		},
		{
			name:     "empty address",
			address:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAddress(tt.address))
		})
	}
}

func TestNormalizeAddresses_DropsEmpty(t *testing.T) {
	result := NormalizeAddresses([]string{"0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", "", " "})
	assert.Equal(t, []string{"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}, result)
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"))
	assert.True(t, IsValidAddress("tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"))
	assert.True(t, IsValidAddress("KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton"))
	assert.False(t, IsValidAddress("0x123"))
	assert.False(t, IsValidAddress("tz1short"))
	assert.False(t, IsValidAddress(""))
}

func TestAddressToBlockchain(t *testing.T) {
	assert.Equal(t, BlockchainEthereum, AddressToBlockchain("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d"))
	assert.Equal(t, BlockchainTezos, AddressToBlockchain("tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"))
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from     ImportStatus
		to       ImportStatus
		expected bool
	}{
		{ImportStatusPending, ImportStatusProcessing, true},
		{ImportStatusPending, ImportStatusImported, false},
		{ImportStatusProcessing, ImportStatusImported, true},
		{ImportStatusProcessing, ImportStatusFailed, true},
		{ImportStatusImported, ImportStatusProcessing, true},
		{ImportStatusImported, ImportStatusPending, true},
		{ImportStatusImported, ImportStatusFailed, false},
		{ImportStatusFailed, ImportStatusPending, true},
		{ImportStatusFailed, ImportStatusProcessing, false},
		{ImportStatusFailed, ImportStatusImported, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.expected, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTokenKey(t *testing.T) {
	key := NewTokenKey("0xBC4CA0EdA7647A8aB7C2061c2E118A18a936f13D", " 7 ")
	assert.Equal(t, "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d", key.ContractAddress)
	assert.Equal(t, "7", key.TokenID)
	assert.Equal(t, "0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d:7", key.String())
	assert.True(t, key.Valid())

	assert.False(t, NewTokenKey("", "7").Valid())
	assert.False(t, NewTokenKey("KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton", "abc").Valid())
}

func TestChainOf(t *testing.T) {
	assert.Equal(t, ChainEthereumMainnet, ChainOf(BlockchainEthereum))
	assert.Equal(t, ChainTezosMainnet, ChainOf(BlockchainTezos))
	assert.Equal(t, Chain(""), ChainOf(Blockchain("solana")))
}

func TestIsStaleClaim(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fresh := now.Add(-time.Minute)
	expired := now.Add(-PROCESSING_LEASE)

	assert.False(t, IsStaleClaim(ImportStatusProcessing, &fresh, now))
	assert.True(t, IsStaleClaim(ImportStatusProcessing, &expired, now))
	assert.True(t, IsStaleClaim(ImportStatusProcessing, nil, now), "a claim without a time never expires otherwise")
	assert.False(t, IsStaleClaim(ImportStatusPending, nil, now))
	assert.False(t, IsStaleClaim(ImportStatusFailed, &expired, now))
}
