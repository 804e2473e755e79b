package db

import (
	"context"

	"github.com/google/uuid"
)

// Querier is the read-only collaborator surface the earnings engine depends
// on. All three lookups are snapshots; the engine never writes.
type Querier interface {
	// GetActivePricingConfig returns the pricing config currently marked
	// active. Absence is reported as pgx.ErrNoRows, which callers treat
	// differently from a fetch failure.
	GetActivePricingConfig(ctx context.Context) (PricingConfig, error)
	// CountCompletedAssignments returns the driver's lifetime count of
	// completed jobs.
	CountCompletedAssignments(ctx context.Context, driverID uuid.UUID) (int64, error)
	// SumDriverNetEarnings returns the sum of net earnings (pence) recorded
	// for the driver within [DayStart, DayEnd]. Zero when none exist.
	SumDriverNetEarnings(ctx context.Context, arg SumDriverNetEarningsParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
