package repositories

import (
	"context"

	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
)

// RateReader defines read operations for cached exchange rate records.
type RateReader interface {
	// FindRate retrieves the record for a (base, target) pair, or
	// apperrors.ErrNotFound if the pair has never been fetched.
	FindRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error)
}

// RateWriter defines write operations for cached exchange rate records.
type RateWriter interface {
	// SaveRate inserts the record for its (base, target) pair, or updates
	// it in place if one already exists.
	SaveRate(ctx context.Context, rate domain.ExchangeRate) error
}

// RateStoreFacade combines all rate store interfaces. This is a facade for
// clients that need access to all operations.
type RateStoreFacade interface {
	RateReader
	RateWriter
}
