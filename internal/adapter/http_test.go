package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastClient() HTTPClient {
	return NewHTTPClientWithOptions(HTTPOptions{
		Timeout:         5 * time.Second,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxElapsedTime:  time.Second,
	})
}

func TestGetJSON_SendsHeadersAndDecodes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "secret", r.Header.Get("X-API-KEY"))
		_, _ = fmt.Fprint(w, `{"name":"token"}`)
	}))
	defer server.Close()

	var out struct {
		Name string `json:"name"`
	}
	err := fastClient().GetJSON(context.Background(), server.URL, map[string]string{"X-API-KEY": "secret"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "token", out.Name)
}

func TestGetJSON_RetriesOnTooManyRequests(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	var out map[string]interface{}
	require.NoError(t, fastClient().GetJSON(context.Background(), server.URL, nil, &out))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestGetJSON_StatusClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		retryable bool
	}{
		{name: "not found is permanent", status: http.StatusNotFound, retryable: false},
		{name: "unauthorized is permanent", status: http.StatusUnauthorized, retryable: false},
		{name: "server error is retryable", status: http.StatusBadGateway, retryable: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			var out map[string]interface{}
			err := fastClient().GetJSON(context.Background(), server.URL, nil, &out)
			require.Error(t, err)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
			assert.Equal(t, tt.retryable, IsRetryable(err))
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestPostJSON_ResendsBodyOnRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "query", body["query"])
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = fmt.Fprint(w, `{"data":{"ok":true}}`)
	}))
	defer server.Close()

	var out struct {
		Data struct {
			OK bool `json:"ok"`
		} `json:"data"`
	}
	err := fastClient().PostJSON(context.Background(), server.URL, nil, map[string]string{"query": "query"}, &out)
	require.NoError(t, err)
	assert.True(t, out.Data.OK)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestGetPrefix_LimitsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bytes=0-3", r.Header.Get("Range"))
		_, _ = fmt.Fprint(w, "abcdefgh")
	}))
	defer server.Close()

	data, err := fastClient().GetPrefix(context.Background(), server.URL, 4)
	require.NoError(t, err)
	assert.Equal(t, "abcd", string(data))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(context.Canceled))
	assert.True(t, IsRetryable(errors.New("connection reset")))
	assert.True(t, IsRetryable(&StatusError{StatusCode: http.StatusTooManyRequests}))
	assert.False(t, IsRetryable(&StatusError{StatusCode: http.StatusBadRequest}))
}
