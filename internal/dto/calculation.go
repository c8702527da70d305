package dto

import (
	"fmt"

	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculationItem is one line item in a calculation request.
type CalculationItem struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Category string          `json:"category" binding:"required,oneof=GROCERIES ELECTRONICS CLOTHING OTHER"`
}

// CalculationRequest defines the body of POST /calculate.
type CalculationRequest struct {
	Items          []CalculationItem `json:"items" binding:"required,min=1,dive"`
	SourceCurrency string            `json:"sourceCurrency" binding:"required,len=3,uppercase"`
	TargetCurrency string            `json:"targetCurrency" binding:"required,len=3,uppercase"`
}

// ToOrder converts the request into a domain Order. Price positivity is
// enforced here because the binding layer cannot compare decimals.
func (r CalculationRequest) ToOrder() (domain.Order, error) {
	items := make([]domain.LineItem, len(r.Items))
	for i, item := range r.Items {
		if item.Price.LessThanOrEqual(decimal.Zero) {
			return domain.Order{}, fmt.Errorf("%w: price of item %q must be positive", apperrors.ErrValidation, item.Name)
		}
		items[i] = domain.LineItem{
			Name:     item.Name,
			Price:    item.Price,
			Category: domain.ItemCategory(item.Category),
		}
	}
	return domain.Order{
		Items:          items,
		SourceCurrency: r.SourceCurrency,
		TargetCurrency: r.TargetCurrency,
	}, nil
}

// CalculationResponse defines the body returned by POST /calculate.
// FinalAmount is a literal copy of ConvertedAmount, kept for compatibility
// with existing clients.
type CalculationResponse struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	TargetCurrency   string          `json:"targetCurrency"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	DiscountType     string          `json:"discountType"`
	FinalAmount      decimal.Decimal `json:"finalAmount"`
}

// ToCalculationResponse converts a domain.PricingResult to its response DTO.
func ToCalculationResponse(result *domain.PricingResult) CalculationResponse {
	return CalculationResponse{
		OriginalAmount:   result.OriginalAmount,
		OriginalCurrency: result.OriginalCurrency,
		ConvertedAmount:  result.ConvertedAmount,
		TargetCurrency:   result.TargetCurrency,
		DiscountAmount:   result.DiscountAmount,
		DiscountType:     result.DiscountType,
		FinalAmount:      result.FinalAmount,
	}
}
