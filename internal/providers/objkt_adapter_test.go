package providers_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/mocks"
	"github.com/feral-file/ff-catalog-indexer/internal/providers"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/objkt"
	"github.com/feral-file/ff-catalog-indexer/internal/registry"
)

const (
	tzWallet   = "tz1burnburnburnburnburnburnburjAYjjX"
	tzContract = "KT1RJ6PbjHpwc3M5rw5s2Nbmefwbuwbdxton"
	wxtz       = "KT1VYsVfmobT7rsMVivvZ4J8i3bPiqz12NaH"
)

func TestObjktAdapter_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjktClient(ctrl)
	a := providers.NewObjktAdapter(client, registry.NewBlacklistRegistry(nil))
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().WalletTokens(gomock.Any(), tzWallet, domain.ObservationOwned, 2, 0).Return([]objkt.Token{
			{TokenID: "1", FAContract: tzContract},
			{TokenID: "2", FAContract: wxtz},
		}, nil),
		client.EXPECT().WalletTokens(gomock.Any(), tzWallet, domain.ObservationOwned, 2, 2).Return([]objkt.Token{
			{TokenID: "3", FAContract: tzContract},
		}, nil),
	)

	page, err := a.FetchWalletTokens(ctx, tzWallet, domain.ObservationOwned, 2, "")
	require.NoError(t, err)
	assert.False(t, page.Done)
	assert.Equal(t, "2", page.NextCursor)
	assert.Equal(t, 1, page.Filtered)
	require.Len(t, page.Records, 1)
	assert.Equal(t, domain.DataSourceObjkt, page.Records[0].Source)
	assert.Equal(t, domain.NewTokenKey(tzContract, "1"), page.Records[0].TokenKey())

	page, err = a.FetchWalletTokens(ctx, tzWallet, domain.ObservationOwned, 2, page.NextCursor)
	require.NoError(t, err)
	assert.True(t, page.Done)
	assert.Empty(t, page.NextCursor)
	require.Len(t, page.Records, 1)
}

func TestObjktAdapter_PageSizeCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjktClient(ctrl)
	a := providers.NewObjktAdapter(client, registry.NewBlacklistRegistry(nil))

	client.EXPECT().WalletTokens(gomock.Any(), tzWallet, domain.ObservationCreated, objkt.MaxPageSize, 0).Return(nil, nil)

	page, err := a.FetchWalletTokens(context.Background(), tzWallet, domain.ObservationCreated, 10000, "")
	require.NoError(t, err)
	assert.True(t, page.Done)
	assert.Empty(t, page.Records)
}

func TestObjktAdapter_InvalidCursorIsPermanent(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockObjktClient(ctrl)
	a := providers.NewObjktAdapter(client, registry.NewBlacklistRegistry(nil))

	_, err := a.FetchWalletTokens(context.Background(), tzWallet, domain.ObservationOwned, 10, "abc")
	require.Error(t, err)
	assert.False(t, adapter.IsRetryable(err))
}
