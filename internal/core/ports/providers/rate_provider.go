package providers

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider abstracts the remote exchange-rate API. A single call
// returns the full conversion table for a base currency.
type RateProvider interface {
	// FetchRates returns the conversion table keyed by target currency
	// code. A provider-reported failure is returned as an error wrapping
	// apperrors.ErrRateUnavailable.
	FetchRates(ctx context.Context, baseCurrency string) (map[string]decimal.Decimal, error)
}
