package jetstream_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/mocks"
	catalogjs "github.com/feral-file/ff-catalog-indexer/internal/providers/jetstream"
)

type publisherMocks struct {
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	js     *mocks.MockJetStream
}

func setupPublisherMocks(t *testing.T) *publisherMocks {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return &publisherMocks{
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		js:     mocks.NewMockJetStream(ctrl),
	}
}

func testConfig() catalogjs.Config {
	return catalogjs.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "CATALOG",
		SubjectPrefix:  "catalog.",
		MaxReconnects:  5,
		ReconnectWait:  time.Second,
		ConnectionName: "catalog-api",
	}
}

func TestNewPublisher_EnsuresStream(t *testing.T) {
	m := setupPublisherMocks(t)
	ctx := context.Background()

	m.natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(ctx, "CATALOG", []string{"catalog.>"}).Return(nil)

	p, err := catalogjs.NewPublisher(ctx, testConfig(), m.natsJS, adapter.NewJSON())
	require.NoError(t, err)
	require.NotNil(t, p)

	m.conn.EXPECT().Close()
	p.Close()
}

func TestNewPublisher_ConnectError(t *testing.T) {
	m := setupPublisherMocks(t)

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("no servers available"))

	p, err := catalogjs.NewPublisher(context.Background(), testConfig(), m.natsJS, adapter.NewJSON())
	assert.Nil(t, p)
	assert.ErrorContains(t, err, "no servers available")
}

func TestNewPublisher_StreamErrorClosesConnection(t *testing.T) {
	m := setupPublisherMocks(t)

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.conn, m.js, nil)
	m.js.EXPECT().EnsureStream(gomock.Any(), "CATALOG", gomock.Any()).Return(errors.New("insufficient resources"))
	m.conn.EXPECT().Close()

	p, err := catalogjs.NewPublisher(context.Background(), testConfig(), m.natsJS, adapter.NewJSON())
	assert.Nil(t, p)
	assert.ErrorContains(t, err, "failed to ensure stream CATALOG")
}

func TestPublishCatalogEvent(t *testing.T) {
	m := setupPublisherMocks(t)
	ctx := context.Background()
	cfg := testConfig()
	cfg.StreamName = ""
	cfg.SubjectPrefix = ""

	m.natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(m.conn, m.js, nil)
	p, err := catalogjs.NewPublisher(ctx, cfg, m.natsJS, adapter.NewJSON())
	require.NoError(t, err)

	event := &domain.CatalogEvent{
		Type:            domain.EventArtworkImported,
		ArtworkID:       42,
		ContractAddress: "0x1111111111111111111111111111111111111111",
		TokenID:         "7",
		Blockchain:      domain.BlockchainEthereum,
		ArtistIDs:       []int64{3},
		IndexIDs:        []int64{9},
		OccurredAt:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	m.js.EXPECT().Publish(ctx, "catalog.artwork.imported", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
			assert.Contains(t, string(data), `"artwork_id":42`)
			assert.Contains(t, string(data), `"type":"artwork.imported"`)
			return &jetstream.PubAck{Stream: "CATALOG", Sequence: 1}, nil
		})
	require.NoError(t, p.PublishCatalogEvent(ctx, event))

	event.Type = domain.EventArtworkDecoupled
	m.js.EXPECT().Publish(ctx, "catalog.artwork.decoupled", gomock.Any()).Return(nil, errors.New("nats: timeout"))
	assert.ErrorContains(t, p.PublishCatalogEvent(ctx, event), "failed to publish event")
}
