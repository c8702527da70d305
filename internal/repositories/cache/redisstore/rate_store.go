package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	portsrepo "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/repositories"
	"github.com/muhammadanas3/currency-exchange-api/internal/models"
	"github.com/muhammadanas3/currency-exchange-api/internal/utils/mapping"
	"github.com/redis/go-redis/v9"
)

// RateStore implements the rate store port on Redis. Each pair maps to one
// JSON value; staleness is decided by the cache service from the stored
// last_updated timestamp, so keys carry no Redis TTL.
type RateStore struct {
	client *redis.Client
}

// NewRateStore creates a Redis-backed rate store.
func NewRateStore(client *redis.Client) *RateStore {
	return &RateStore{client: client}
}

var _ portsrepo.RateStoreFacade = (*RateStore)(nil)

func rateKey(baseCurrency, targetCurrency string) string {
	return "exchange_rate:" + strings.ToUpper(baseCurrency) + ":" + strings.ToUpper(targetCurrency)
}

// FindRate retrieves the record for a currency pair.
func (r *RateStore) FindRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	data, err := r.client.Get(ctx, rateKey(baseCurrency, targetCurrency)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("%w: no rate for %s/%s", apperrors.ErrNotFound, baseCurrency, targetCurrency)
		}
		return nil, fmt.Errorf("failed to read rate from redis: %w", err)
	}

	var modelRate models.ExchangeRate
	if err := json.Unmarshal(data, &modelRate); err != nil {
		return nil, fmt.Errorf("failed to decode cached rate: %w", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// SaveRate upserts the record for its currency pair.
func (r *RateStore) SaveRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)
	modelRate.BaseCurrency = strings.ToUpper(modelRate.BaseCurrency)
	modelRate.TargetCurrency = strings.ToUpper(modelRate.TargetCurrency)

	if modelRate.BaseCurrency == modelRate.TargetCurrency {
		return fmt.Errorf("%w: base and target currencies cannot be the same", apperrors.ErrValidation)
	}

	data, err := json.Marshal(modelRate)
	if err != nil {
		return fmt.Errorf("failed to encode rate: %w", err)
	}

	if err := r.client.Set(ctx, rateKey(modelRate.BaseCurrency, modelRate.TargetCurrency), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write rate to redis: %w", err)
	}
	return nil
}
