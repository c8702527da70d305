package domain

import "github.com/shopspring/decimal"

// ItemCategory classifies a line item for discount eligibility.
type ItemCategory string

const (
	CategoryGroceries   ItemCategory = "GROCERIES"
	CategoryElectronics ItemCategory = "ELECTRONICS"
	CategoryClothing    ItemCategory = "CLOTHING"
	CategoryOther       ItemCategory = "OTHER"
)

// IsValid reports whether the category is one of the known values.
func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryGroceries, CategoryElectronics, CategoryClothing, CategoryOther:
		return true
	}
	return false
}

// LineItem is a single priced entry in an order. Immutable once constructed.
type LineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category ItemCategory    `json:"category"`
}

// Order is a non-empty basket of line items priced in a single source
// currency, to be converted into the target currency.
type Order struct {
	Items          []LineItem `json:"items"`
	SourceCurrency string     `json:"sourceCurrency"`
	TargetCurrency string     `json:"targetCurrency"`
}

// Total returns the exact decimal sum of all item prices.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price)
	}
	return total
}

// HasNonGroceryItem reports whether at least one item falls outside the
// GROCERIES category. Role-based discounts only apply when this holds.
func (o Order) HasNonGroceryItem() bool {
	for _, item := range o.Items {
		if item.Category != CategoryGroceries {
			return true
		}
	}
	return false
}
