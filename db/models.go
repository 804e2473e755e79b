package db

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// PricingConfig maps a row of the pricing_configs table. At most one row is
// marked active at a time; the newest active row wins.
type PricingConfig struct {
	ID                                 uuid.UUID
	BaseFarePerRoutePence              int64
	PerDropFeePence                    int64
	MileageRatePerMilePence            int64
	DrivingRatePerMinutePence          int64
	LoadingRatePerMinutePence          int64
	UnloadingRatePerMinutePence        int64
	WaitingRatePerMinutePence          int64
	RouteExcellenceBonusPence          int64
	MultiDropBonusThreshold            int32
	MultiDropBonusPerExtraDropPence    int64
	LongDistanceBonusThresholdMiles    float64
	LongDistanceBonusPerExtraMilePence int64
	IsActive                           pgtype.Bool
	CreatedAt                          pgtype.Timestamptz
}

// SumDriverNetEarningsParams bounds the earnings sum to one driver's
// recorded payouts inside a single calendar-day window.
type SumDriverNetEarningsParams struct {
	DriverID uuid.UUID
	DayStart pgtype.Timestamptz
	DayEnd   pgtype.Timestamptz
}
