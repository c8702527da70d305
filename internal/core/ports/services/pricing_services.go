package services

import (
	"context"

	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
)

// DiscountResolverSvc computes the winning discount for an order. The
// principal is always passed explicitly; implementations must not read it
// from ambient state.
type DiscountResolverSvc interface {
	// Resolve returns the winning discount amount and the policy that
	// explains it.
	Resolve(order domain.Order, principal domain.Principal) domain.Discount
}

// PricingSvcFacade prices a full order: total, discount, conversion.
type PricingSvcFacade interface {
	// Price computes the PricingResult for an order on behalf of the given
	// principal. Fails with apperrors.ErrRateUnavailable if the currency
	// pair cannot be resolved.
	Price(ctx context.Context, order domain.Order, principal domain.Principal) (*domain.PricingResult, error)
}
