package dto

import (
	"time"

	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the structure for API responses containing
// a cached exchange rate.
type ExchangeRateResponse struct {
	BaseCurrency   string          `json:"baseCurrency"`
	TargetCurrency string          `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its response DTO.
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		BaseCurrency:   rate.BaseCurrency,
		TargetCurrency: rate.TargetCurrency,
		Rate:           rate.Rate,
		LastUpdated:    rate.LastUpdated,
	}
}
