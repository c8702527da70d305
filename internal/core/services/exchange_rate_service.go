package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	portsprov "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/providers"
	portsrepo "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/repositories"
	"github.com/muhammadanas3/currency-exchange-api/internal/metrics"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

var one = decimal.NewFromInt(1)

// ExchangeRateService serves conversion rates from the store, refreshing
// stale or missing pairs from the remote provider. Refreshes for the same
// pair are collapsed through a single-flight group so concurrent callers
// share one fetch and one upsert.
type ExchangeRateService struct {
	store    portsrepo.RateStoreFacade
	provider portsprov.RateProvider
	ttl      time.Duration
	now      func() time.Time
	group    singleflight.Group
	metrics  *metrics.Metrics
}

// NewExchangeRateService creates a new ExchangeRateService. ttl is the
// staleness window after which a cached rate must be refreshed before use.
func NewExchangeRateService(store portsrepo.RateStoreFacade, provider portsprov.RateProvider, ttl time.Duration) *ExchangeRateService {
	return &ExchangeRateService{
		store:    store,
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock overrides the clock. Intended for tests.
func (s *ExchangeRateService) WithClock(now func() time.Time) *ExchangeRateService {
	s.now = now
	return s
}

// WithMetrics attaches cache and provider metrics.
func (s *ExchangeRateService) WithMetrics(m *metrics.Metrics) *ExchangeRateService {
	s.metrics = m
	return s
}

// GetRate returns the conversion rate from base to target.
func (s *ExchangeRateService) GetRate(ctx context.Context, baseCurrency, targetCurrency string) (decimal.Decimal, error) {
	record, err := s.GetRateRecord(ctx, baseCurrency, targetCurrency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return record.Rate, nil
}

// GetRateRecord returns the full record for a pair: from the store when
// fresher than the staleness window, otherwise refreshed from the provider
// and upserted. Fails with apperrors.ErrRateUnavailable if the provider
// reports failure or its table lacks the target currency; in that case no
// record is written.
func (s *ExchangeRateService) GetRateRecord(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	base := strings.ToUpper(baseCurrency)
	target := strings.ToUpper(targetCurrency)
	if len(base) != 3 || len(target) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	// Identical pairs convert 1:1 without touching store or provider.
	if base == target {
		return &domain.ExchangeRate{
			BaseCurrency:   base,
			TargetCurrency: target,
			Rate:           one,
			LastUpdated:    s.now(),
		}, nil
	}

	record, err := s.store.FindRate(ctx, base, target)
	if err == nil && s.now().Sub(record.LastUpdated) < s.ttl {
		s.metrics.RecordCacheHit()
		return record, nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up cached rate: %w", err)
	}
	s.metrics.RecordCacheMiss()

	// Collapse concurrent refreshes of the same pair into one fetch.
	v, err, _ := s.group.Do(base+"/"+target, func() (interface{}, error) {
		return s.refresh(ctx, base, target)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ExchangeRate), nil
}

func (s *ExchangeRateService) refresh(ctx context.Context, base, target string) (*domain.ExchangeRate, error) {
	s.metrics.RecordProviderFetch()
	rates, err := s.provider.FetchRates(ctx, base)
	if err != nil {
		s.metrics.RecordProviderError()
		return nil, err
	}

	rate, ok := rates[target]
	if !ok {
		s.metrics.RecordProviderError()
		return nil, fmt.Errorf("%w: target currency %s missing from provider response", apperrors.ErrRateUnavailable, target)
	}

	record := domain.ExchangeRate{
		BaseCurrency:   base,
		TargetCurrency: target,
		Rate:           rate,
		LastUpdated:    s.now(),
	}
	if err := s.store.SaveRate(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist refreshed rate: %w", err)
	}
	return &record, nil
}
