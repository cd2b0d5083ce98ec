package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog-indexer/internal/api/shared/constants"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
)

func TestImportRequest_UnmarshalJSON(t *testing.T) {
	var single ImportRequest
	require.NoError(t, json.Unmarshal([]byte(` {"contract_address":"0xabc","token_id":"1"}`), &single))
	require.Len(t, single.Records, 1)
	assert.Equal(t, "1", single.Records[0].TokenID)

	var batch ImportRequest
	require.NoError(t, json.Unmarshal([]byte(`[{"token_id":"1"},{"token_id":"2"}]`), &batch))
	assert.Len(t, batch.Records, 2)

	var bad ImportRequest
	assert.Error(t, json.Unmarshal([]byte(`"text"`), &bad))
}

func TestImportRequest_Validate(t *testing.T) {
	assert.Error(t, ImportRequest{}.Validate())
	assert.NoError(t, ImportRequest{Records: make([]domain.IndexerData, 1)}.Validate())
	assert.Error(t, ImportRequest{Records: make([]domain.IndexerData, constants.MAX_IMPORT_BATCH_SIZE+1)}.Validate())
}

func TestIndexAndImportRequest_Validate(t *testing.T) {
	tests := []struct {
		name  string
		req   IndexAndImportRequest
		valid bool
	}{
		{name: "empty means all", req: IndexAndImportRequest{}, valid: true},
		{name: "ethereum wallet", req: IndexAndImportRequest{Wallet: "0x1234567890abcdef1234567890abcdef12345678"}, valid: true},
		{name: "tezos wallet", req: IndexAndImportRequest{Wallet: "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"}, valid: true},
		{name: "bad wallet", req: IndexAndImportRequest{Wallet: "0x123"}},
		{name: "blockchain", req: IndexAndImportRequest{Blockchain: domain.BlockchainTezos}, valid: true},
		{name: "unknown blockchain", req: IndexAndImportRequest{Blockchain: "solana"}},
		{name: "created", req: IndexAndImportRequest{ObservationType: domain.ObservationCreated}, valid: true},
		{name: "unknown observation type", req: IndexAndImportRequest{ObservationType: "minted"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIndexAndImportRequest_ToRequest(t *testing.T) {
	req := IndexAndImportRequest{Wallet: "tz1abc", ObservationType: domain.ObservationOwned}.ToRequest()
	assert.Equal(t, "api", req.Trigger)
	assert.Equal(t, "tz1abc", req.Wallet)
	assert.Equal(t, domain.ObservationOwned, req.ObservationType)
}

func TestPromoteRequest_Validate(t *testing.T) {
	assert.NoError(t, PromoteRequest{}.Validate())
	assert.NoError(t, PromoteRequest{IndexIDs: []int64{1, 2}}.Validate())
	assert.Error(t, PromoteRequest{IndexIDs: []int64{-1}}.Validate())
	assert.Error(t, PromoteRequest{IndexIDs: []int64{0}}.Validate())
	assert.Error(t, PromoteRequest{IndexIDs: []int64{3, 0}}.Validate())
	assert.Error(t, PromoteRequest{Limit: -1}.Validate())
	assert.Error(t, PromoteRequest{IndexIDs: make([]int64, constants.MAX_PROMOTE_IDS+1)}.Validate())
}
