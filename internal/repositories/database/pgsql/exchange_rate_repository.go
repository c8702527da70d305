package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/muhammadanas3/currency-exchange-api/internal/apperrors"
	"github.com/muhammadanas3/currency-exchange-api/internal/core/domain"
	portsrepo "github.com/muhammadanas3/currency-exchange-api/internal/core/ports/repositories"
	"github.com/muhammadanas3/currency-exchange-api/internal/models"
	"github.com/muhammadanas3/currency-exchange-api/internal/utils/mapping"
)

// PgxRateStore implements the rate store port on top of pgxpool. One row
// per (base, target) pair; upserts overwrite in place, no history.
type PgxRateStore struct {
	db *pgxpool.Pool
}

// NewPgxRateStore creates a new PgxRateStore.
func NewPgxRateStore(db *pgxpool.Pool) *PgxRateStore {
	return &PgxRateStore{db: db}
}

var _ portsrepo.RateStoreFacade = (*PgxRateStore)(nil)

// FindRate retrieves the record for a currency pair.
func (r *PgxRateStore) FindRate(ctx context.Context, baseCurrency, targetCurrency string) (*domain.ExchangeRate, error) {
	query := `
		SELECT base_currency, target_currency, rate, last_updated
		FROM exchange_rates
		WHERE base_currency = $1 AND target_currency = $2;
	`

	var modelRate models.ExchangeRate
	err := r.db.QueryRow(ctx, query, strings.ToUpper(baseCurrency), strings.ToUpper(targetCurrency)).Scan(
		&modelRate.BaseCurrency, &modelRate.TargetCurrency, &modelRate.Rate, &modelRate.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no rate for %s/%s", apperrors.ErrNotFound, baseCurrency, targetCurrency)
		}
		return nil, fmt.Errorf("failed to find exchange rate: %w", err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// SaveRate upserts the record for its currency pair. The conflict target
// is the pair primary key, so concurrent writers resolve to last-write-wins
// inside a single atomic statement.
func (r *PgxRateStore) SaveRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)
	modelRate.BaseCurrency = strings.ToUpper(modelRate.BaseCurrency)
	modelRate.TargetCurrency = strings.ToUpper(modelRate.TargetCurrency)

	if modelRate.BaseCurrency == modelRate.TargetCurrency {
		return fmt.Errorf("%w: base and target currencies cannot be the same", apperrors.ErrValidation)
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO exchange_rates (base_currency, target_currency, rate, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (base_currency, target_currency)
		DO UPDATE SET rate = EXCLUDED.rate, last_updated = EXCLUDED.last_updated`,
		modelRate.BaseCurrency, modelRate.TargetCurrency, modelRate.Rate, modelRate.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to save exchange rate: %w", err)
	}
	return nil
}
