package domain

import "github.com/shopspring/decimal"

// DiscountPolicy identifies which discount policy explains a charged
// discount amount.
type DiscountPolicy string

const (
	PolicyNone      DiscountPolicy = "NONE"
	PolicyVolume    DiscountPolicy = "VOLUME"
	PolicyEmployee  DiscountPolicy = "EMPLOYEE"
	PolicyAffiliate DiscountPolicy = "AFFILIATE"
	PolicyLongTerm  DiscountPolicy = "LONG_TERM"
	PolicyUnknown   DiscountPolicy = "UNKNOWN"
)

// Label returns the human-readable classification for the policy. The
// strings are part of the API contract and must not change.
func (p DiscountPolicy) Label() string {
	switch p {
	case PolicyNone:
		return "No discount"
	case PolicyVolume:
		return "$5 per $100 discount"
	case PolicyEmployee:
		return "Employee discount (30%)"
	case PolicyAffiliate:
		return "Affiliate discount (10%)"
	case PolicyLongTerm:
		return "Long-term customer discount (5%)"
	}
	return "Unknown discount type"
}

// Discount is the winning discount for an order: the amount actually
// deducted and the policy that explains it.
type Discount struct {
	Amount decimal.Decimal `json:"amount"`
	Policy DiscountPolicy  `json:"policy"`
}

// PricingResult is the outcome of pricing one order. Produced fresh per
// request, never persisted. FinalAmount always equals ConvertedAmount.
type PricingResult struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	OriginalCurrency string          `json:"originalCurrency"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	TargetCurrency   string          `json:"targetCurrency"`
	DiscountAmount   decimal.Decimal `json:"discountAmount"`
	DiscountType     string          `json:"discountType"`
	FinalAmount      decimal.Decimal `json:"finalAmount"`
}
