package business

// DriverTier describes the performance tier a driver has earned through
// completed jobs. The multiplier scales the job subtotal before bonuses.
type DriverTier struct {
	Name          string  `json:"name"`
	Level         int     `json:"level"`
	Multiplier    float64 `json:"multiplier"`
	JobsCompleted int64   `json:"jobs_completed"`
}

// TimeFees itemizes the per-minute pay for each time category of a job.
type TimeFees struct {
	DrivingPence   int64 `json:"driving_pence"`
	LoadingPence   int64 `json:"loading_pence"`
	UnloadingPence int64 `json:"unloading_pence"`
	WaitingPence   int64 `json:"waiting_pence"`
}

// Total returns the sum of all time fee categories.
func (t TimeFees) Total() int64 {
	return t.DrivingPence + t.LoadingPence + t.UnloadingPence + t.WaitingPence
}

// EarningsBonuses itemizes the additive bonus components of a payout.
// WeeklyMilestonePence is supplied by an optional weekly-aggregation
// collaborator and stays zero without one.
type EarningsBonuses struct {
	OnTimeBonusPence       int64 `json:"on_time_bonus_pence"`
	RatingBonusPence       int64 `json:"rating_bonus_pence"`
	MultiDropBonusPence    int64 `json:"multi_drop_bonus_pence"`
	LongDistanceBonusPence int64 `json:"long_distance_bonus_pence"`
	WeeklyMilestonePence   int64 `json:"weekly_milestone_pence"`
}

// Total returns the sum of all bonus components.
func (b EarningsBonuses) Total() int64 {
	return b.OnTimeBonusPence + b.RatingBonusPence + b.MultiDropBonusPence +
		b.LongDistanceBonusPence + b.WeeklyMilestonePence
}

// UKDeductions holds the UK-specific deduction estimates for a payout.
// VAT and fuel duty are informational only; National Insurance and the
// insurance levy are subtracted from the driver's net.
type UKDeductions struct {
	VATAmountPence         int64 `json:"vat_amount_pence"`
	NationalInsurancePence int64 `json:"national_insurance_pence"`
	InsuranceLevyPence     int64 `json:"insurance_levy_pence"`
	FuelDutyPence          int64 `json:"fuel_duty_pence"`
}

// Reimbursements holds the tax-free cost pass-throughs of a job.
type Reimbursements struct {
	TollCostsPence    int64 `json:"toll_costs_pence"`
	ParkingCostsPence int64 `json:"parking_costs_pence"`
	FuelCostsPence    int64 `json:"fuel_costs_pence"`
}

// Total returns the sum of all reimbursements.
func (r Reimbursements) Total() int64 {
	return r.TollCostsPence + r.ParkingCostsPence + r.FuelCostsPence
}

// ComplianceSnapshot records the regulatory checks evaluated against the
// final (post-cap) payout.
type ComplianceSnapshot struct {
	MeetsMinimumWage       bool    `json:"meets_minimum_wage"`
	WithinDailyHoursLimit  bool    `json:"within_daily_hours_limit"`
	WithinDailyCap         bool    `json:"within_daily_cap"`
	EffectiveHourlyRate    float64 `json:"effective_hourly_rate"`
	HoursWorked            float64 `json:"hours_worked"`
	RemainingDailyCapacity int64   `json:"remaining_daily_capacity_pence"`
}

// EarningsBreakdown is the fully itemized payout for a single job. All
// monetary fields are pence. NetEarningsAfterTaxPence is the final payout
// after the daily cap has been applied.
type EarningsBreakdown struct {
	GrossEarningsPence int64 `json:"gross_earnings_pence"`

	BaseFarePence   int64    `json:"base_fare_pence"`
	PerDropFeePence int64    `json:"per_drop_fee_pence"`
	MileageFeePence int64    `json:"mileage_fee_pence"`
	TimeFees        TimeFees `json:"time_fees"`

	UrgencyMultiplier float64 `json:"urgency_multiplier"`
	TierMultiplier    float64 `json:"tier_multiplier"`

	Bonuses        EarningsBonuses `json:"bonuses"`
	UKDeductions   UKDeductions    `json:"uk_deductions"`
	Reimbursements Reimbursements  `json:"reimbursements"`

	HelperPaymentPence int64 `json:"helper_payment_pence"`

	NetEarningsBeforeTaxPence int64 `json:"net_earnings_before_tax_pence"`
	NetEarningsAfterTaxPence  int64 `json:"net_earnings_after_tax_pence"`

	Compliance ComplianceSnapshot `json:"compliance"`
	DriverTier DriverTier         `json:"driver_tier"`
}
