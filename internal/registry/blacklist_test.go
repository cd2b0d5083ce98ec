package registry_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/mocks"
	"github.com/feral-file/ff-catalog-indexer/internal/registry"
)

func realUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func TestBlacklistRegistryLoader_Load(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		setupMocks   func(*mocks.MockFileSystem, *mocks.MockJSON)
		expectedErr  string
		validateFunc func(t *testing.T, reg registry.BlacklistRegistry)
	}{
		{
			name: "successful load with valid JSON",
			path: "blacklist.json",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return([]byte(`{
					"eip155:1": ["0x123", "0xabc"],
					"tezos:mainnet": ["KT1ABC", "KT1XYZ"]
				}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(realUnmarshal)
			},
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereumMainnet, "0x123"))
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereumMainnet, "0xabc"))
				assert.True(t, reg.IsBlacklisted(domain.ChainTezosMainnet, "KT1ABC"))
				assert.False(t, reg.IsBlacklisted(domain.ChainEthereumMainnet, "0x999"))
				assert.False(t, reg.IsBlacklisted(domain.ChainTezosMainnet, "KT1NONEXISTENT"))
				// defaults still apply
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereumMainnet, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"))
			},
		},
		{
			name: "empty path yields defaults",
			path: "",
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereumMainnet, "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"))
				assert.True(t, reg.IsBlacklisted(domain.ChainTezosMainnet, "KT1VYsVfmobT7rsMVivvZ4J8i3bPiqz12NaH"))
				assert.False(t, reg.IsBlacklisted(domain.ChainTezosMainnet, "KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton"))
			},
		},
		{
			name: "file read error",
			path: "blacklist.json",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return(nil, assert.AnError)
			},
			expectedErr: "failed to read blacklist file",
		},
		{
			name: "JSON parse error",
			path: "blacklist.json",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				blacklistJSON := []byte(`invalid json`)
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return(blacklistJSON, nil)
				mockJSON.
					EXPECT().
					Unmarshal(blacklistJSON, gomock.Any()).
					Return(assert.AnError)
			},
			expectedErr: "failed to parse blacklist JSON",
		},
		{
			name: "case insensitive lookup",
			path: "blacklist.json",
			setupMocks: func(mockFS *mocks.MockFileSystem, mockJSON *mocks.MockJSON) {
				mockFS.
					EXPECT().
					ReadFile("blacklist.json").
					Return([]byte(`{"EIP155:1": ["0x123ABC"]}`), nil)
				mockJSON.
					EXPECT().
					Unmarshal(gomock.Any(), gomock.Any()).
					DoAndReturn(realUnmarshal)
			},
			validateFunc: func(t *testing.T, reg registry.BlacklistRegistry) {
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereumMainnet, "0x123ABC"))
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereumMainnet, "0X123ABC"))
				assert.True(t, reg.IsBlacklisted(domain.ChainEthereumMainnet, " 0x123abc "))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFS := mocks.NewMockFileSystem(ctrl)
			mockJSON := mocks.NewMockJSON(ctrl)

			if tt.setupMocks != nil {
				tt.setupMocks(mockFS, mockJSON)
			}

			loader := registry.NewBlacklistRegistryLoader(mockFS, mockJSON)
			reg, err := loader.Load(tt.path)

			if tt.expectedErr != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, reg)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, reg)
			if tt.validateFunc != nil {
				tt.validateFunc(t, reg)
			}
		})
	}
}

func TestBlacklistRegistry_ChainScoped(t *testing.T) {
	reg := registry.NewBlacklistRegistry(registry.BlacklistData{
		"eip155:1": {"0xdead"},
	})

	assert.True(t, reg.IsBlacklisted(domain.ChainEthereumMainnet, "0xdead"))
	assert.False(t, reg.IsBlacklisted(domain.ChainTezosMainnet, "0xdead"))
	assert.False(t, reg.IsBlacklisted(domain.Chain("eip155:137"), "0xdead"))
}
