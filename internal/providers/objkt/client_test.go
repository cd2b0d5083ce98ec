package objkt_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/mocks"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/objkt"
)

const (
	OBJKT_API_URL = "https://data.objkt.com/v3/graphql"
	wallet        = "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb"
)

const tokenPage = `{
  "data": {
    "token": [
      {
        "token_id": "125",
        "fa_contract": "KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton",
        "name": "Test Token",
        "display_uri": "ipfs://display",
        "artifact_uri": "ipfs://artifact",
        "mime": "video/mp4",
        "supply": 10,
        "creators": [
          {"creator_address": "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb", "verified": true, "holder": {"address": "tz1VSUr8wwNhLAzempoch5d6hLRiTh8Cjcjb", "alias": "artist"}}
        ],
        "attributes": [{"attribute": {"name": "palette", "value": "mono"}}],
        "fa": {"contract": "KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton", "name": "OBJKTs", "path": "hicetnunc", "collection_type": "artist"}
      }
    ]
  }
}`

func newClient(t *testing.T) (*mocks.MockHTTPClient, *mocks.MockLimiter, objkt.Client) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	mockLimiter := mocks.NewMockLimiter(ctrl)
	return mockHTTP, mockLimiter, objkt.NewClient(mockHTTP, mockLimiter, nil, OBJKT_API_URL)
}

func TestClient_WalletTokens(t *testing.T) {
	tests := []struct {
		name            string
		observationType domain.ObservationType
		whereClause     string
	}{
		{name: "owned", observationType: domain.ObservationOwned, whereClause: "holders: {holder_address"},
		{name: "created", observationType: domain.ObservationCreated, whereClause: "creators: {creator_address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockHTTP, mockLimiter, client := newClient(t)

			mockLimiter.EXPECT().Wait(gomock.Any()).Return(nil)
			mockHTTP.EXPECT().
				PostJSON(gomock.Any(), OBJKT_API_URL, gomock.Nil(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, _ map[string]string, body interface{}, result interface{}) error {
					req := body.(objkt.GraphQLRequest)
					assert.Equal(t, "WalletTokens", req.OperationName)
					assert.Contains(t, req.Query, tt.whereClause)
					vars := req.Variables.(map[string]interface{})
					assert.Equal(t, wallet, vars["address"])
					assert.Equal(t, 100, vars["limit"])
					assert.Equal(t, 200, vars["offset"])
					return json.Unmarshal([]byte(tokenPage), result)
				})

			tokens, err := client.WalletTokens(context.Background(), wallet, tt.observationType, 100, 200)
			require.NoError(t, err)
			require.Len(t, tokens, 1)

			token := tokens[0]
			assert.Equal(t, "125", token.TokenID)
			assert.Equal(t, "video/mp4", *token.Mime)
			assert.Equal(t, "10", token.Supply.String())
			require.Len(t, token.Creators, 1)
			assert.True(t, token.Creators[0].Verified)
			assert.Equal(t, "artist", *token.Creators[0].Holder.Alias)
			assert.Equal(t, "hicetnunc", *token.FA.Slug)
			assert.False(t, token.FA.IsGenerative())
			assert.Equal(t, "palette", token.Attributes[0].Attribute.Name)
		})
	}
}

func TestClient_WalletTokens_InvalidObservationType(t *testing.T) {
	_, _, client := newClient(t)

	_, err := client.WalletTokens(context.Background(), wallet, domain.ObservationType("minted"), 10, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidObservationType)
}

func TestClient_WalletTokens_GraphQLErrorsArePermanent(t *testing.T) {
	mockHTTP, mockLimiter, client := newClient(t)

	mockLimiter.EXPECT().Wait(gomock.Any()).Return(nil)
	mockHTTP.EXPECT().
		PostJSON(gomock.Any(), OBJKT_API_URL, gomock.Nil(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, _ interface{}, result interface{}) error {
			return json.Unmarshal([]byte(`{"errors": [{"message": "field not found"}]}`), result)
		})

	_, err := client.WalletTokens(context.Background(), wallet, domain.ObservationOwned, 10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field not found")
	assert.False(t, adapter.IsRetryable(err))
}

func TestClient_WalletTokens_HTTPError(t *testing.T) {
	mockHTTP, mockLimiter, client := newClient(t)

	mockLimiter.EXPECT().Wait(gomock.Any()).Return(nil)
	mockHTTP.EXPECT().
		PostJSON(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&adapter.StatusError{StatusCode: 503})

	_, err := client.WalletTokens(context.Background(), wallet, domain.ObservationOwned, 10, 0)
	require.Error(t, err)
	assert.True(t, adapter.IsRetryable(err))
}
