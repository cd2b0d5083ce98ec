package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-catalog-indexer/internal/adapter"
	"github.com/feral-file/ff-catalog-indexer/internal/config"
	"github.com/feral-file/ff-catalog-indexer/internal/logger"
	"github.com/feral-file/ff-catalog-indexer/internal/metrics"
	"github.com/feral-file/ff-catalog-indexer/internal/pipeline"
	"github.com/feral-file/ff-catalog-indexer/internal/providers/temporal"
	"github.com/feral-file/ff-catalog-indexer/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		Environment:     cfg.Environment,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker-catalog",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Catalog Worker")

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		go func() {
			if err := m.Serve(ctx, cfg.Metrics.ListenAddr); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("component", "metrics"))
			}
		}()
	}

	// Wire the indexing pipeline
	p, err := pipeline.Build(ctx, cfg.PipelineConfig, m)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to build pipeline", zap.Error(err))
	}
	defer p.Close()

	// Initialize executor for activities
	executor := workflows.NewExecutor(p.Orchestrator, p.Promoter, adapter.NewActivity())

	// Connect to Temporal with logger integration
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    logger.NewTemporalAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.TaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
			Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("taskQueue", cfg.Temporal.TaskQueue))

	// Create worker catalog instance
	workerCatalog := workflows.NewWorkerCatalog(executor, workflows.WorkerCatalogConfig{
		InterWalletDelay:     cfg.Orchestrator.InterWalletDelay,
		PromoteAfterRun:      cfg.Orchestrator.PromoteAfterRun,
		PromotionConcurrency: cfg.Orchestrator.PromotionWorkers,
	})

	// Register workflows under the names the API starts them with
	temporalWorker.RegisterWorkflowWithOptions(workerCatalog.IndexAndImport, workflow.RegisterOptions{Name: workflows.IndexAndImportWorkflow})
	temporalWorker.RegisterWorkflowWithOptions(workerCatalog.PromoteIndexRecords, workflow.RegisterOptions{Name: workflows.PromoteIndexRecordsWorkflow})
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.PlanRun)
	temporalWorker.RegisterActivity(executor.BeginRun)
	temporalWorker.RegisterActivity(executor.IndexWallet)
	temporalWorker.RegisterActivity(executor.PromotePending)
	temporalWorker.RegisterActivity(executor.CompleteRun)
	temporalWorker.RegisterActivity(executor.PromoteIndexRecord)
	logger.InfoCtx(ctx, "Registered activities")

	// Start worker
	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))

	cancel()
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
