package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveProviderRequest("opensea", time.Second, errors.New("boom"))
		m.AddDiscovered("opensea", 3)
		m.AddStaged("opensea", 3)
		m.IncPromotion(OutcomeImported)
		m.ObserveRun("completed", time.Second)
		m.IncHTTPRequest(http.MethodGet, "/health", 200)
	})
	assert.Nil(t, m.Registry())
}

func TestCounters(t *testing.T) {
	m := New()

	m.AddDiscovered("objkt", 5)
	m.AddDiscovered("objkt", 0)
	m.AddStaged("objkt", 4)
	m.ObserveProviderRequest("objkt", 10*time.Millisecond, nil)
	m.ObserveProviderRequest("objkt", 10*time.Millisecond, errors.New("timeout"))
	m.IncPromotion(OutcomeImported)
	m.IncPromotion(OutcomeFailed)
	m.IncPromotion(OutcomeImported)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.TokensDiscovered.WithLabelValues("objkt")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.TokensStaged.WithLabelValues("objkt")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProviderErrors.WithLabelValues("objkt")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Promotions.WithLabelValues(OutcomeImported)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ProviderRequestDuration))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.AddDiscovered("opensea", 1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `catalog_tokens_discovered_total{provider="opensea"} 1`)
}
