package exchangerateapi_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	"github.com/muhammadanas3/currency-exchange-api/internal/repositories/external/exchangerateapi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRatesSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-key/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":"success","conversion_rates":{"EUR":0.92,"JPY":157.34}}`)
	}))
	defer server.Close()

	client := exchangerateapi.NewClient(server.URL, "test-key", 2*time.Second, 0)
	rates, err := client.FetchRates(context.Background(), "usd")

	require.NoError(t, err)
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.92")))
	assert.True(t, rates["JPY"].Equal(decimal.RequireFromString("157.34")))
}

func TestFetchRatesProviderErrorIsTerminal(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":"error","error-type":"invalid-key"}`)
	}))
	defer server.Close()

	client := exchangerateapi.NewClient(server.URL, "bad-key", 2*time.Second, 3)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRateUnavailable))
	assert.Contains(t, err.Error(), "invalid-key")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "failure responses must not be retried")
}

func TestFetchRatesRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":"success","conversion_rates":{"EUR":0.92}}`)
	}))
	defer server.Close()

	client := exchangerateapi.NewClient(server.URL, "test-key", 2*time.Second, 2)
	rates, err := client.FetchRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.True(t, rates["EUR"].Equal(decimal.RequireFromString("0.92")))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchRatesExhaustsRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := exchangerateapi.NewClient(server.URL, "test-key", 2*time.Second, 2)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRateUnavailable))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "one attempt plus two retries")
}

func TestFetchRatesMissingTableIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"result":"success"}`)
	}))
	defer server.Close()

	client := exchangerateapi.NewClient(server.URL, "test-key", 2*time.Second, 0)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRateUnavailable))
}

func TestFetchRatesTransportErrorOmitsAPIKey(t *testing.T) {
	client := exchangerateapi.NewClient("http://127.0.0.1:1", "super-secret-key", 500*time.Millisecond, 0)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrRateUnavailable))
	assert.NotContains(t, err.Error(), "super-secret-key")
}
