package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/config"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/messaging"
	"github.com/feral-file/ff-catalog-indexer/internal/metrics"
	"github.com/feral-file/ff-catalog-indexer/internal/normalizer"
	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
	"github.com/feral-file/ff-catalog-indexer/internal/promotion"
	"github.com/feral-file/ff-catalog-indexer/internal/providers"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/jetstream"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/objkt"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/opensea"
	"github.com/feral-file/ff-catalog-indexer/internal/ratelimit"
	"github.com/feral-file/ff-catalog-indexer/internal/registry"
	"github.com/feral-file/ff-catalog-indexer/internal/store"
)

// Pipeline is the wired indexing stack shared by every binary
type Pipeline struct {
	DB           *gorm.DB
	Store        store.Store
	Promoter     promotion.UnifiedIndexer
	Orchestrator orchestrator.Orchestrator
	Clock        adapter.Clock

	publisher messaging.Publisher
	redis     adapter.RedisClient
}

// Build connects to the database and the optional redis and NATS backends,
// then assembles the provider adapters, the promotion engine and the orchestrator.
// m may be nil.
func Build(ctx context.Context, cfg config.PipelineConfig, m *metrics.Metrics) (*Pipeline, error) {
	p := &Pipeline{Clock: adapter.NewClock()}
	fs := adapter.NewFileSystem()
	jsonAdapter := adapter.NewJSON()

	db, err := store.Open(cfg.Database, nil)
	if err != nil {
		return nil, err
	}
	p.DB = db
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.Bool("read_replica", cfg.Database.ReadHost != ""),
	)

	if cfg.Database.AutoMigrate {
		if err := store.Migrate(db); err != nil {
			return nil, err
		}
		logger.InfoCtx(ctx, "Database schema migrated")
	}
	p.Store = store.NewPGStore(db)

	blacklist := registry.NewBlacklistRegistry(nil)
	if cfg.BlacklistPath != "" {
		blacklist, err = registry.NewBlacklistRegistryLoader(fs, jsonAdapter).Load(cfg.BlacklistPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load blacklist registry: %w", err)
		}
		logger.InfoCtx(ctx, "Loaded blacklist registry", zap.String("path", cfg.BlacklistPath))
	}

	platforms := registry.NewPlatformRegistry(nil)
	if cfg.PlatformsPath != "" {
		platforms, err = registry.NewPlatformRegistryLoader(fs, jsonAdapter).Load(cfg.PlatformsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load platform registry: %w", err)
		}
		logger.InfoCtx(ctx, "Loaded platform registry", zap.String("path", cfg.PlatformsPath))
	}

	var distributed adapter.RedisRateLimiter
	if cfg.Redis.Addr != "" {
		p.redis = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := p.redis.Ping(ctx); err != nil {
			p.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		distributed = p.redis.NewRateLimiter()
		logger.InfoCtx(ctx, "Connected to redis, distributed rate limits enabled", zap.String("addr", cfg.Redis.Addr))
	}

	p.publisher = messaging.Noop{}
	if cfg.NATS.URL != "" {
		p.publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			p.Close()
			return nil, err
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, catalog events will not be published")
	}

	openseaClient := opensea.NewClient(
		adapter.NewHTTPClient(cfg.Providers.OpenSea.Timeout),
		ratelimit.New("opensea", cfg.RateLimit.OpenSea, distributed, p.Clock),
		m,
		cfg.Providers.OpenSea.URL,
		cfg.Providers.OpenSea.APIKey,
	)
	objktClient := objkt.NewClient(
		adapter.NewHTTPClient(cfg.Providers.Objkt.Timeout),
		ratelimit.New("objkt", cfg.RateLimit.Objkt, distributed, p.Clock),
		m,
		cfg.Providers.Objkt.URL,
	)
	adapters := providers.NewSet(
		providers.NewOpenSeaAdapter(openseaClient, blacklist, cfg.Providers.OpenSea.FetchDetails),
		providers.NewObjktAdapter(objktClient, blacklist),
	)

	norm := normalizer.New(platforms)
	p.Promoter = promotion.NewUnifiedIndexer(
		promotion.Config{
			Workers:        cfg.Orchestrator.PromotionWorkers,
			SniffMimeTypes: cfg.Orchestrator.SniffMimeTypes,
		},
		p.Store,
		norm,
		p.publisher,
		adapter.NewHTTPClient(cfg.Providers.OpenSea.Timeout),
		jsonAdapter,
		p.Clock,
		m,
	)

	retry := providers.DefaultRetryPolicy()
	if cfg.Orchestrator.MaxPageRetries > 0 {
		retry.MaxRetries = cfg.Orchestrator.MaxPageRetries
	}
	p.Orchestrator = orchestrator.New(
		orchestrator.Config{
			Wallets:          cfg.Orchestrator.Wallets,
			PageSize:         cfg.Orchestrator.PageSize,
			InterWalletDelay: cfg.Orchestrator.InterWalletDelay,
			InterTypeDelay:   cfg.Orchestrator.InterTypeDelay,
			MaxPages:         cfg.Orchestrator.MaxPages,
			RetryPolicy:      retry,
			PromoteAfterRun:  cfg.Orchestrator.PromoteAfterRun,
		},
		adapters,
		norm,
		p.Store,
		p.Promoter,
		jsonAdapter,
		p.Clock,
		m,
	)

	return p, nil
}

// Close releases the broker, redis and database connections
func (p *Pipeline) Close() {
	if p.publisher != nil {
		p.publisher.Close()
	}
	if p.redis != nil {
		if err := p.redis.Close(); err != nil {
			logger.Warn("Failed to close redis", zap.Error(err))
		}
	}
	if p.DB != nil {
		if sqlDB, err := p.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
