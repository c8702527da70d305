package mapping

import (
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	"github.com/muhammadanas3/currency-exchange-api/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to its database model.
func ToModelExchangeRate(rate domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		BaseCurrency:   rate.BaseCurrency,
		TargetCurrency: rate.TargetCurrency,
		Rate:           rate.Rate,
		LastUpdated:    rate.LastUpdated,
	}
}

// ToDomainExchangeRate converts a database model to the domain ExchangeRate.
func ToDomainExchangeRate(rate models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		BaseCurrency:   rate.BaseCurrency,
		TargetCurrency: rate.TargetCurrency,
		Rate:           rate.Rate,
		LastUpdated:    rate.LastUpdated,
	}
}
