package services

import (
	"context"

	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc defines read operations for exchange rates.
type RateReaderSvc interface {
	// GetRate returns the conversion rate from base to target, serving
	// from the cache when fresh and refreshing from the remote provider
	// otherwise. Fails with apperrors.ErrRateUnavailable if the pair
	// cannot be resolved.
	GetRate(ctx context.Context, baseCurrency, targetCurrency string) (decimal.Decimal, error)

	// GetRateRecord returns the full cached record for a pair, refreshing
	// it the same way GetRate does.
	GetRateRecord(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error)
}

// RateSvcFacade combines all exchange rate service interfaces.
type RateSvcFacade interface {
	RateReaderSvc
}
