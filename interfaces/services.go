package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/swifthaul/swifthaul-api/types/api/params"
	"github.com/swifthaul/swifthaul-api/types/api/responses"
	"github.com/swifthaul/swifthaul-api/types/business"
)

// EarningsCalculator produces an itemized, compliance-checked payout for a
// single job settlement.
type EarningsCalculator interface {
	CalculateEarnings(ctx context.Context, calcParams params.EarningsCalculationParams) (*responses.EarningsCalculationResult, error)
}

// TierResolver maps a driver's completed-job history to a performance tier.
// Implementations must degrade to the lowest tier on lookup failure instead
// of returning an error.
type TierResolver interface {
	ResolveTier(ctx context.Context, driverID uuid.UUID) business.DriverTier
}

// RateConfigProvider supplies the active per-unit rates for a calculation.
type RateConfigProvider interface {
	GetActiveConfig(ctx context.Context) (business.RateConfig, error)
}

// WeeklyMilestoneProvider supplies the weekly-aggregation bonus for a driver.
// Implementations aggregate the driver's completed jobs over the week
// containing jobDate; without a provider the engine keeps the bonus at zero.
type WeeklyMilestoneProvider interface {
	WeeklyMilestoneBonus(ctx context.Context, driverID uuid.UUID, jobDate time.Time) (int64, error)
}
