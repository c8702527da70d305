package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the last known conversion rate for a (base, target)
// currency pair. One record exists per pair; a refresh mutates it in place.
type ExchangeRate struct {
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}
