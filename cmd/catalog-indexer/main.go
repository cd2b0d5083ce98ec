package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-catalog-indexer/internal/config"
	"github.com/feral-file/ff-catalog-indexer/internal/domain"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/metrics"
	"github.com/feral-file/ff-catalog-indexer/internal/orchestrator"
	"github.com/feral-file/ff-catalog-indexer/internal/pipeline"
	"github.com/feral-file/ff-catalog-indexer/internal/store/schema"
)

var (
	configFile      = flag.String("config", "", "Path to configuration file")
	envPath         = flag.String("env", "config/", "Path to environment files")
	wallet          = flag.String("wallet", "", "Index a single wallet instead of every configured one")
	blockchain      = flag.String("blockchain", "", "Restrict the run to ethereum or tezos")
	observationType = flag.String("type", "", "Restrict the run to owned or created tokens")
	promoteOnly     = flag.Bool("promote-only", false, "Skip indexing and promote pending records")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadIndexerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Canceled on SIGINT/SIGTERM; the run stops between pages and wallets
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "catalog-indexer",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.ListenAddr); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("component", "metrics"))
			}
		}()
	}

	p, err := pipeline.Build(ctx, cfg.PipelineConfig, m)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to build pipeline", zap.Error(err))
	}
	defer p.Close()

	if *promoteOnly {
		summary, err := p.Orchestrator.Promote(ctx, nil)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to promote pending records", zap.Error(err))
		}
		printJSON(summary)
		return
	}

	req := orchestrator.Request{
		Wallet:          *wallet,
		Blockchain:      domain.Blockchain(*blockchain),
		ObservationType: domain.ObservationType(*observationType),
		Trigger:         "cli",
	}

	report, err := p.Orchestrator.IndexAndImport(ctx, req)
	if report == nil {
		logger.FatalCtx(ctx, "Index and import failed", zap.Error(err))
	}
	printJSON(report)

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(ctx, err, zap.String("run_id", report.ID))
	}
	if report.Status == schema.RunStatusFailed {
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func printJSON(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logger.Error(err, zap.String("component", "report"))
	}
}
