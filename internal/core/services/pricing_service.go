package services

import (
	"context"
	"fmt"

	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	portssvc "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/services"
	"github.com/muhammadanas3/currency-exchange-api/internal/metrics"
)

// PricingService orchestrates pricing an order: total, discount, currency
// conversion. It has no state of its own; the only side effect is the
// cache refresh performed inside the rate service.
type PricingService struct {
	discounts portssvc.DiscountResolverSvc
	rates     portssvc.RateSvcFacade
	metrics   *metrics.Metrics
}

// NewPricingService creates a new PricingService.
func NewPricingService(discounts portssvc.DiscountResolverSvc, rates portssvc.RateSvcFacade) *PricingService {
	return &PricingService{
		discounts: discounts,
		rates:     rates,
	}
}

// WithMetrics attaches pricing metrics.
func (s *PricingService) WithMetrics(m *metrics.Metrics) *PricingService {
	s.metrics = m
	return s
}

// Price computes the PricingResult for an order on behalf of the given
// principal. The conversion identity converted = (total - discount) * rate
// holds exactly: no intermediate value is rounded.
func (s *PricingService) Price(ctx context.Context, order domain.Order, principal domain.Principal) (*domain.PricingResult, error) {
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", apperrors.ErrValidation)
	}

	totalAmount := order.Total()
	discount := s.discounts.Resolve(order, principal)

	// Role percentages never exceed 100%, so the net amount cannot go
	// negative for any valid order.
	netAmount := totalAmount.Sub(discount.Amount)

	rate, err := s.rates.GetRate(ctx, order.SourceCurrency, order.TargetCurrency)
	if err != nil {
		return nil, err
	}

	convertedAmount := netAmount.Mul(rate)
	s.metrics.RecordPricing(string(discount.Policy))

	return &domain.PricingResult{
		OriginalAmount:   totalAmount,
		OriginalCurrency: order.SourceCurrency,
		ConvertedAmount:  convertedAmount,
		TargetCurrency:   order.TargetCurrency,
		DiscountAmount:   discount.Amount,
		DiscountType:     discount.Policy.Label(),
		FinalAmount:      convertedAmount,
	}, nil
}
