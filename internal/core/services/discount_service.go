package services

import (
	"time"

	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	employeeRate    = decimal.RequireFromString("0.30")
	affiliateRate   = decimal.RequireFromString("0.10")
	longTermRate    = decimal.RequireFromString("0.05")
	volumeUnit      = decimal.RequireFromString("5.00")
	volumeThreshold = decimal.RequireFromString("100.00")
)

// Accounts younger than this many years get no long-term customer discount.
const longTermMinYears = 2

// DiscountService resolves the winning discount for an order. It is pure
// apart from the clock, which is injectable for tests.
type DiscountService struct {
	now func() time.Time
}

// NewDiscountService creates a new DiscountService using the wall clock.
func NewDiscountService() *DiscountService {
	return &DiscountService{now: time.Now}
}

// NewDiscountServiceWithClock creates a DiscountService with a fixed clock.
func NewDiscountServiceWithClock(now func() time.Time) *DiscountService {
	return &DiscountService{now: now}
}

// Resolve computes the winning discount: the larger of the volume discount
// and the role-based discount, never their sum. The policy tag is
// re-derived from the winning amount with a fixed precedence, so on a tie
// between the volume and role candidates the volume policy is reported.
func (s *DiscountService) Resolve(order domain.Order, principal domain.Principal) domain.Discount {
	totalAmount := order.Total()

	volume := volumeDiscount(totalAmount)
	role := s.roleDiscount(order, principal, totalAmount)

	amount := decimal.Max(volume, role)
	return domain.Discount{
		Amount: amount,
		Policy: classify(totalAmount, amount, order.HasNonGroceryItem()),
	}
}

// volumeDiscount is the flat $5 back per full $100 of pre-discount total.
// QuoRem truncates exactly to a whole count of $100 units; Div would round
// the quotient to DivisionPrecision first, which can cross the integer
// boundary for totals just under a multiple of 100. No other intermediate
// value is rounded.
func volumeDiscount(totalAmount decimal.Decimal) decimal.Decimal {
	units, _ := totalAmount.QuoRem(volumeThreshold, 0)
	return units.Mul(volumeUnit)
}

// roleDiscount is zero whenever every item is a grocery; otherwise it is a
// percentage of the total keyed by the principal's role. Customers only
// qualify once their account is at least two years old.
func (s *DiscountService) roleDiscount(order domain.Order, principal domain.Principal, totalAmount decimal.Decimal) decimal.Decimal {
	if !order.HasNonGroceryItem() {
		return decimal.Zero
	}
	switch principal.Role {
	case domain.RoleEmployee:
		return totalAmount.Mul(employeeRate)
	case domain.RoleCashier:
		// CASHIER is the affiliate tier.
		return totalAmount.Mul(affiliateRate)
	case domain.RoleCustomer:
		if s.isLongTermCustomer(principal) {
			return totalAmount.Mul(longTermRate)
		}
	}
	return decimal.Zero
}

func (s *DiscountService) isLongTermCustomer(principal domain.Principal) bool {
	return !principal.AccountCreatedAt.After(s.now().AddDate(-longTermMinYears, 0, 0))
}

// classify re-derives which policy explains the winning amount by exact
// decimal equality against the recomputed candidates, in fixed precedence:
// zero, volume, employee, affiliate, long-term. The role candidates are
// only considered when the order has a non-grocery item. An amount that
// matches nothing degrades to PolicyUnknown rather than an error.
func classify(totalAmount, amount decimal.Decimal, hasNonGrocery bool) domain.DiscountPolicy {
	if amount.IsZero() {
		return domain.PolicyNone
	}
	if amount.Equal(volumeDiscount(totalAmount)) {
		return domain.PolicyVolume
	}
	if hasNonGrocery {
		switch {
		case amount.Equal(totalAmount.Mul(employeeRate)):
			return domain.PolicyEmployee
		case amount.Equal(totalAmount.Mul(affiliateRate)):
			return domain.PolicyAffiliate
		case amount.Equal(totalAmount.Mul(longTermRate)):
			return domain.PolicyLongTerm
		}
	}
	return domain.PolicyUnknown
}
