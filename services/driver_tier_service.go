package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swifthaul/swifthaul-api/db"
	"github.com/swifthaul/swifthaul-api/interfaces"
	"github.com/swifthaul/swifthaul-api/logger"
	"github.com/swifthaul/swifthaul-api/types/business"
)

// tierSpec defines one closed interval of the tier ladder.
type tierSpec struct {
	name       string
	level      int
	minJobs    int64
	maxJobs    int64 // inclusive; -1 means unbounded
	multiplier float64
}

var pricingTiers = []tierSpec{
	{name: "Bronze Driver", level: 1, minJobs: 0, maxJobs: 50, multiplier: 1.0},
	{name: "Silver Driver", level: 2, minJobs: 51, maxJobs: 200, multiplier: 1.1},
	{name: "Gold Driver", level: 3, minJobs: 201, maxJobs: 500, multiplier: 1.2},
	{name: "Platinum Driver", level: 4, minJobs: 501, maxJobs: -1, multiplier: 1.3},
}

// DriverTierService resolves a driver's performance tier from job history
type DriverTierService struct {
	queries db.Querier
	logger  *zap.Logger
}

var _ interfaces.TierResolver = (*DriverTierService)(nil)

// NewDriverTierService creates a new driver tier service
func NewDriverTierService(queries db.Querier) *DriverTierService {
	return &DriverTierService{
		queries: queries,
		logger:  logger.Log,
	}
}

// TierForJobCount maps a completed-job count to its tier. Intervals are
// checked in ascending order and exactly one matches any non-negative count.
func TierForJobCount(jobsCompleted int64) business.DriverTier {
	for _, tier := range pricingTiers {
		if jobsCompleted >= tier.minJobs && (tier.maxJobs < 0 || jobsCompleted <= tier.maxJobs) {
			return business.DriverTier{
				Name:          tier.name,
				Level:         tier.level,
				Multiplier:    tier.multiplier,
				JobsCompleted: jobsCompleted,
			}
		}
	}

	// Unreachable for non-negative counts; negative counts land on Bronze.
	bronze := pricingTiers[0]
	return business.DriverTier{
		Name:          bronze.name,
		Level:         bronze.level,
		Multiplier:    bronze.multiplier,
		JobsCompleted: jobsCompleted,
	}
}

// ResolveTier looks up the driver's lifetime completed-job count and maps it
// to a tier. A history lookup failure degrades to Bronze with a zero count so
// a collaborator outage can never inflate a payout.
func (s *DriverTierService) ResolveTier(ctx context.Context, driverID uuid.UUID) business.DriverTier {
	jobsCompleted, err := s.queries.CountCompletedAssignments(ctx, driverID)
	if err != nil {
		s.logger.Error("Failed to count completed assignments, defaulting to Bronze tier",
			zap.String("driver_id", driverID.String()),
			zap.Error(err))
		return TierForJobCount(0)
	}

	return TierForJobCount(jobsCompleted)
}
