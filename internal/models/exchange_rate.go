package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the database row holding the last known rate for a
// currency pair. The pair is the primary key; a refresh overwrites the row.
type ExchangeRate struct {
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}
