// Package metrics exposes prometheus collectors for indexing runs, provider
// traffic and promotions. A nil *Metrics is valid and records nothing.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/ff-catalog-indexer/internal/logger"
)

const namespace = "catalog"

// Promotion outcomes
const (
	OutcomeImported = "imported"
	OutcomeFailed   = "failed"
)

// Metrics holds all catalog collectors on a private registry
type Metrics struct {
	TokensDiscovered *prometheus.CounterVec
	TokensStaged     *prometheus.CounterVec
	ProviderErrors   *prometheus.CounterVec
	Promotions       *prometheus.CounterVec
	Runs             *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec

	ProviderRequestDuration *prometheus.HistogramVec
	RunDuration             prometheus.Histogram

	registry *prometheus.Registry
}

// New creates and registers the collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TokensDiscovered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_discovered_total",
			Help:      "Tokens returned by providers after non-collectible filtering",
		}, []string{"provider"}),
		TokensStaged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_staged_total",
			Help:      "Tokens written to the staging index",
		}, []string{"provider"}),
		ProviderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "Provider requests that failed",
		}, []string{"provider"}),
		Promotions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "promotions_total",
			Help:      "Staged records promoted into the catalog by outcome",
		}, []string{"outcome"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Indexing runs by final status",
		}, []string{"status"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "API requests by route and status",
		}, []string{"method", "route", "status"}),
		ProviderRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_request_duration_seconds",
			Help:      "Provider request latency including retries",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of indexing runs",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600},
		}),
	}

	m.registry.MustRegister(
		m.TokensDiscovered,
		m.TokensStaged,
		m.ProviderErrors,
		m.Promotions,
		m.Runs,
		m.HTTPRequests,
		m.ProviderRequestDuration,
		m.RunDuration,
	)
	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveProviderRequest records latency and, on failure, an error
func (m *Metrics) ObserveProviderRequest(provider string, d time.Duration, err error) {
	if m == nil {
		return
	}
	m.ProviderRequestDuration.WithLabelValues(provider).Observe(d.Seconds())
	if err != nil {
		m.ProviderErrors.WithLabelValues(provider).Inc()
	}
}

func (m *Metrics) AddDiscovered(provider string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.TokensDiscovered.WithLabelValues(provider).Add(float64(n))
}

func (m *Metrics) AddStaged(provider string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.TokensStaged.WithLabelValues(provider).Add(float64(n))
}

func (m *Metrics) IncPromotion(outcome string) {
	if m == nil {
		return
	}
	m.Promotions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRun(status string, d time.Duration) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(status).Inc()
	m.RunDuration.Observe(d.Seconds())
}

func (m *Metrics) IncHTTPRequest(method, route string, status int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Handler returns the exposition handler for this registry
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Metrics server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
