// Package exchangerateapi is a client for the exchangerate-api.com style
// rate endpoint: GET {base-url}/{api-key}/latest/{BASE} returning a full
// conversion table for the base currency.
package exchangerateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	portsprov "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/providers"
	"github.com/shopspring/decimal"
)

const resultSuccess = "success"

// Client calls the remote rate provider with a bounded timeout and a small
// fixed-backoff retry for transient failures. The provider is the only
// network dependency of the pricing path.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	maxRetries   int
	retryBackoff time.Duration
}

// NewClient creates a provider client. maxRetries counts retries after the
// first attempt; timeout bounds each individual HTTP call.
func NewClient(baseURL, apiKey string, timeout time.Duration, maxRetries int) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		httpClient:   &http.Client{Timeout: timeout},
		maxRetries:   maxRetries,
		retryBackoff: 200 * time.Millisecond,
	}
}

var _ portsprov.RateProvider = (*Client)(nil)

type apiResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// FetchRates returns the conversion table for a base currency. Transport
// errors and 5xx responses are retried with linear backoff; a provider
// response that reports failure is terminal and carries the provider's
// reason.
func (c *Client) FetchRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, c.apiKey, strings.ToUpper(baseCurrency))

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", apperrors.ErrRateUnavailable, ctx.Err())
			case <-time.After(time.Duration(attempt) * c.retryBackoff):
			}
		}

		rates, retryable, err := c.fetchOnce(ctx, url)
		if err == nil {
			return rates, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) fetchOnce(ctx context.Context, url string) (map[string]decimal.Decimal, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%w: failed to build provider request: %v", apperrors.ErrRateUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The URL embeds the API key, so it never goes into the error.
		return nil, true, fmt.Errorf("%w: provider request failed: %v", apperrors.ErrRateUnavailable, unwrapURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, true, fmt.Errorf("%w: provider returned status %d", apperrors.ErrRateUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("%w: provider returned status %d", apperrors.ErrRateUnavailable, resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, false, fmt.Errorf("%w: failed to decode provider response: %v", apperrors.ErrRateUnavailable, err)
	}

	if body.Result != resultSuccess || body.ConversionRates == nil {
		reason := body.ErrorType
		if reason == "" {
			reason = "unknown error"
		}
		return nil, false, fmt.Errorf("%w: provider reported %q", apperrors.ErrRateUnavailable, reason)
	}

	return body.ConversionRates, false, nil
}

// unwrapURLError strips the *url.Error wrapper so the API key embedded in
// the request URL does not leak into logs.
func unwrapURLError(err error) error {
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		if inner := u.Unwrap(); inner != nil {
			return inner
		}
	}
	return err
}
