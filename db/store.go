package db

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Queries implements Querier against a pgx connection pool. Transient
// failures are retried here with exponential backoff; the engine itself
// never retries, it treats any returned error as fatal for the current
// calculation.
type Queries struct {
	pool *pgxpool.Pool
}

// New creates a new Queries instance backed by the given pool.
func New(pool *pgxpool.Pool) *Queries {
	return &Queries{pool: pool}
}

const maxLookupRetries = 3

// retry runs op, retrying transient failures. pgx.ErrNoRows is a definitive
// answer, not a failure, and is returned immediately.
func (q *Queries) retry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxLookupRetries), ctx)
	return backoff.Retry(func() error {
		err := op()
		if errors.Is(err, pgx.ErrNoRows) {
			return backoff.Permanent(err)
		}
		return err
	}, policy)
}

const getActivePricingConfig = `
SELECT id,
       base_fare_per_route_pence,
       per_drop_fee_pence,
       mileage_rate_per_mile_pence,
       driving_rate_per_minute_pence,
       loading_rate_per_minute_pence,
       unloading_rate_per_minute_pence,
       waiting_rate_per_minute_pence,
       route_excellence_bonus_pence,
       multi_drop_bonus_threshold,
       multi_drop_bonus_per_extra_drop_pence,
       long_distance_bonus_threshold_miles,
       long_distance_bonus_per_extra_mile_pence,
       is_active,
       created_at
FROM pricing_configs
WHERE is_active = true
ORDER BY created_at DESC
LIMIT 1
`

// GetActivePricingConfig returns the newest pricing config marked active.
func (q *Queries) GetActivePricingConfig(ctx context.Context) (PricingConfig, error) {
	var cfg PricingConfig
	err := q.retry(ctx, func() error {
		row := q.pool.QueryRow(ctx, getActivePricingConfig)
		return row.Scan(
			&cfg.ID,
			&cfg.BaseFarePerRoutePence,
			&cfg.PerDropFeePence,
			&cfg.MileageRatePerMilePence,
			&cfg.DrivingRatePerMinutePence,
			&cfg.LoadingRatePerMinutePence,
			&cfg.UnloadingRatePerMinutePence,
			&cfg.WaitingRatePerMinutePence,
			&cfg.RouteExcellenceBonusPence,
			&cfg.MultiDropBonusThreshold,
			&cfg.MultiDropBonusPerExtraDropPence,
			&cfg.LongDistanceBonusThresholdMiles,
			&cfg.LongDistanceBonusPerExtraMilePence,
			&cfg.IsActive,
			&cfg.CreatedAt,
		)
	})
	return cfg, err
}

const countCompletedAssignments = `
SELECT COUNT(*)
FROM assignments
WHERE driver_id = $1
  AND status = 'COMPLETED'
`

// CountCompletedAssignments returns the driver's lifetime completed-job count.
func (q *Queries) CountCompletedAssignments(ctx context.Context, driverID uuid.UUID) (int64, error) {
	var count int64
	err := q.retry(ctx, func() error {
		row := q.pool.QueryRow(ctx, countCompletedAssignments, driverID)
		return row.Scan(&count)
	})
	return count, err
}

const sumDriverNetEarnings = `
SELECT COALESCE(SUM(net_amount_pence), 0)
FROM driver_earnings
WHERE driver_id = $1
  AND calculated_at >= $2
  AND calculated_at <= $3
`

// SumDriverNetEarnings returns the driver's net earnings recorded inside the
// given window, in pence.
func (q *Queries) SumDriverNetEarnings(ctx context.Context, arg SumDriverNetEarningsParams) (int64, error) {
	var sum int64
	err := q.retry(ctx, func() error {
		row := q.pool.QueryRow(ctx, sumDriverNetEarnings, arg.DriverID, arg.DayStart, arg.DayEnd)
		return row.Scan(&sum)
	})
	return sum, err
}
