package params

import (
	"time"

	"github.com/google/uuid"
)

// EarningsCalculationParams carries the operational facts of a single
// completed (or in-progress) job for settlement. It is built fresh per
// calculation call; the engine never mutates it.
type EarningsCalculationParams struct {
	AssignmentID uuid.UUID
	DriverID     uuid.UUID
	BookingID    uuid.UUID

	DistanceMiles   float64
	DurationMinutes float64
	DropCount       int

	// Time breakdown in minutes. The categories need not sum to
	// DurationMinutes; untracked time simply earns no time fee.
	LoadingMinutes   float64
	UnloadingMinutes float64
	DrivingMinutes   float64
	WaitingMinutes   float64

	// Customer payment is informational; the payout is rate-driven.
	CustomerPaymentPence int64

	UrgencyLevel string // "standard", "express", "premium"
	ServiceType  string // "standard", "luxury"

	OnTimeDelivery bool
	CustomerRating *float64 // 1.0-5.0

	TollCostsPence    *int64
	ParkingCostsPence *int64
	FuelUsedLitres    *float64

	HasHelper   bool
	HelperHours *float64

	// JobDate anchors the daily earnings cap window (local midnight to
	// midnight).
	JobDate time.Time
}
