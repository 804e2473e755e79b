package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/swifthaul/swifthaul-api/constants"
	"github.com/swifthaul/swifthaul-api/db"
	"github.com/swifthaul/swifthaul-api/helpers"
	"github.com/swifthaul/swifthaul-api/interfaces"
	"github.com/swifthaul/swifthaul-api/logger"
	"github.com/swifthaul/swifthaul-api/types/api/params"
	"github.com/swifthaul/swifthaul-api/types/api/responses"
	"github.com/swifthaul/swifthaul-api/types/business"
)

// UK regulatory figures. Rates are fractions of gross; wage and cap figures
// are pence. Update these when HMRC or DfT publish new values.
const (
	vatRate               = 0.20
	nationalInsuranceRate = 0.09
	insuranceLevyRate     = 0.12

	minimumWagePencePerHour = 1144 // National Living Wage, April 2024
	maxWorkingHoursPerDay   = 11.0
	dailyEarningsCapPence   = 50000 // £500.00

	fuelDutyPencePerLitre          = 52.95
	fuelReimbursementPencePerLitre = 150
)

const (
	maxRealisticDistanceMiles = 500
	maxJobDurationMinutes     = 720
	maxDropCount              = 20
)

// EarningsService computes the itemized, compliance-checked payout for a
// single job settlement.
type EarningsService struct {
	queries    db.Querier
	logger     *zap.Logger
	rateConfig *RateConfigService
	tiers      *DriverTierService
	milestones interfaces.WeeklyMilestoneProvider
}

var _ interfaces.EarningsCalculator = (*EarningsService)(nil)

// NewEarningsService creates a new earnings service. milestones may be nil;
// the weekly milestone bonus is then always zero.
func NewEarningsService(queries db.Querier, milestones interfaces.WeeklyMilestoneProvider) *EarningsService {
	return &EarningsService{
		queries:    queries,
		logger:     logger.Log,
		rateConfig: NewRateConfigService(queries),
		tiers:      NewDriverTierService(queries),
		milestones: milestones,
	}
}

// CalculateEarnings runs the full settlement pipeline for one job: validate
// the job facts, check the daily cap headroom, price the job against the
// active rate config and the driver's tier, apply bonuses, reimbursements,
// helper pay and UK deductions, then evaluate compliance on the final amount.
//
// Business rejections (invalid facts, exhausted daily cap) come back as a
// Success=false result; only collaborator failures return a Go error.
func (s *EarningsService) CalculateEarnings(ctx context.Context, calcParams params.EarningsCalculationParams) (*responses.EarningsCalculationResult, error) {
	if errs := validateJobFacts(calcParams); len(errs) > 0 {
		s.logger.Warn("Earnings calculation rejected",
			zap.String("assignment_id", calcParams.AssignmentID.String()),
			zap.Strings("errors", errs))
		return rejected(errs), nil
	}

	tier := s.tiers.ResolveTier(ctx, calcParams.DriverID)

	earnedToday, err := s.getDailyEarnings(ctx, calcParams)
	if err != nil {
		s.logger.Error("Failed to get daily earnings",
			zap.String("driver_id", calcParams.DriverID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get daily earnings: %w", err)
	}

	remaining := dailyEarningsCapPence - earnedToday
	if remaining <= 0 {
		return rejected([]string{"Driver has reached daily earnings cap of £500"}), nil
	}

	cfg, err := s.rateConfig.GetActiveConfig(ctx)
	if err != nil {
		return nil, err
	}

	milestoneBonus := s.weeklyMilestoneBonus(ctx, calcParams)

	breakdown, warnings := computeBreakdown(calcParams, cfg, tier, earnedToday, milestoneBonus)

	status := constants.ComplianceStatusCompliant
	if !breakdown.Compliance.MeetsMinimumWage || !breakdown.Compliance.WithinDailyHoursLimit {
		status = constants.ComplianceStatusWarning
	}
	if !breakdown.Compliance.WithinDailyCap {
		status = constants.ComplianceStatusNonCompliant
	}

	s.logger.Info("Earnings calculated",
		zap.String("assignment_id", calcParams.AssignmentID.String()),
		zap.String("driver_id", calcParams.DriverID.String()),
		zap.Int64("net_earnings_pence", breakdown.NetEarningsAfterTaxPence),
		zap.String("compliance_status", status))

	return &responses.EarningsCalculationResult{
		Success:          true,
		Breakdown:        breakdown,
		Warnings:         warnings,
		ComplianceStatus: status,
		Currency:         constants.GBPCurrency,
		CalculatedAt:     time.Now().UTC(),
	}, nil
}

// validateJobFacts collects every violation rather than stopping at the
// first, so the caller sees the complete list in one pass.
func validateJobFacts(calcParams params.EarningsCalculationParams) []string {
	var errs []string
	if calcParams.DistanceMiles < 0 {
		errs = append(errs, "Distance cannot be negative")
	}
	if calcParams.DurationMinutes < 0 {
		errs = append(errs, "Duration cannot be negative")
	}
	if calcParams.DropCount < 1 {
		errs = append(errs, "Drop count must be at least 1")
	}
	if calcParams.CustomerPaymentPence < 0 {
		errs = append(errs, "Customer payment cannot be negative")
	}
	if calcParams.DistanceMiles > maxRealisticDistanceMiles {
		errs = append(errs, "Distance exceeds realistic limit (500 miles)")
	}
	if calcParams.DurationMinutes > maxJobDurationMinutes {
		errs = append(errs, "Duration exceeds 12 hours")
	}
	if calcParams.DropCount > maxDropCount {
		errs = append(errs, "Drop count exceeds maximum (20)")
	}
	return errs
}

func rejected(errs []string) *responses.EarningsCalculationResult {
	return &responses.EarningsCalculationResult{
		Success:          false,
		Warnings:         []string{},
		Errors:           errs,
		ComplianceStatus: constants.ComplianceStatusNonCompliant,
		Currency:         constants.GBPCurrency,
		CalculatedAt:     time.Now().UTC(),
	}
}

// getDailyEarnings sums the driver's already-recorded payouts inside the
// calendar day containing the job date, in the job date's own timezone.
func (s *EarningsService) getDailyEarnings(ctx context.Context, calcParams params.EarningsCalculationParams) (int64, error) {
	jobDate := calcParams.JobDate
	dayStart := time.Date(jobDate.Year(), jobDate.Month(), jobDate.Day(), 0, 0, 0, 0, jobDate.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	return s.queries.SumDriverNetEarnings(ctx, db.SumDriverNetEarningsParams{
		DriverID: calcParams.DriverID,
		DayStart: pgtype.Timestamptz{Time: dayStart, Valid: true},
		DayEnd:   pgtype.Timestamptz{Time: dayEnd, Valid: true},
	})
}

// weeklyMilestoneBonus asks the optional milestone collaborator for the
// driver's weekly bonus. Failures degrade to zero; a missed bonus is
// recoverable, a blocked settlement is not.
func (s *EarningsService) weeklyMilestoneBonus(ctx context.Context, calcParams params.EarningsCalculationParams) int64 {
	if s.milestones == nil {
		return 0
	}
	bonus, err := s.milestones.WeeklyMilestoneBonus(ctx, calcParams.DriverID, calcParams.JobDate)
	if err != nil {
		s.logger.Warn("Failed to get weekly milestone bonus, omitting it",
			zap.String("driver_id", calcParams.DriverID.String()),
			zap.Error(err))
		return 0
	}
	if bonus < 0 {
		return 0
	}
	return bonus
}

func computeBreakdown(calcParams params.EarningsCalculationParams, cfg business.RateConfig, tier business.DriverTier, earnedToday int64, milestoneBonus int64) (*business.EarningsBreakdown, []string) {
	warnings := []string{}

	baseFare := cfg.BaseFarePerRoutePence
	perDropFee := cfg.PerDropFeePence * int64(calcParams.DropCount)
	mileageFee := roundPence(calcParams.DistanceMiles * float64(cfg.MileageRatePerMilePence))

	timeFees := business.TimeFees{
		DrivingPence:   roundPence(calcParams.DrivingMinutes * float64(cfg.DrivingRatePerMinutePence)),
		LoadingPence:   roundPence(calcParams.LoadingMinutes * float64(cfg.LoadingRatePerMinutePence)),
		UnloadingPence: roundPence(calcParams.UnloadingMinutes * float64(cfg.UnloadingRatePerMinutePence)),
		WaitingPence:   roundPence(calcParams.WaitingMinutes * float64(cfg.WaitingRatePerMinutePence)),
	}

	subtotal := baseFare + perDropFee + mileageFee + timeFees.Total()

	urgencyMultiplier := urgencyMultiplierFor(calcParams.UrgencyLevel)
	// Both multipliers apply in a single rounding step so the result does not
	// depend on the order they are written in.
	adjusted := roundPence(float64(subtotal) * urgencyMultiplier * tier.Multiplier)

	bonuses := business.EarningsBonuses{
		OnTimeBonusPence:       onTimeBonus(calcParams.OnTimeDelivery, cfg),
		RatingBonusPence:       ratingBonus(calcParams.CustomerRating),
		MultiDropBonusPence:    multiDropBonus(calcParams.DropCount, cfg),
		LongDistanceBonusPence: longDistanceBonus(calcParams.DistanceMiles, cfg),
		WeeklyMilestonePence:   milestoneBonus,
	}

	gross := adjusted + bonuses.Total()

	reimbursements := business.Reimbursements{
		TollCostsPence:    penceOrZero(calcParams.TollCostsPence),
		ParkingCostsPence: penceOrZero(calcParams.ParkingCostsPence),
	}
	litres := 0.0
	if calcParams.FuelUsedLitres != nil && *calcParams.FuelUsedLitres > 0 {
		litres = *calcParams.FuelUsedLitres
		reimbursements.FuelCostsPence = roundPence(litres * fuelReimbursementPencePerLitre)
	}

	helperPayment := int64(0)
	if calcParams.HasHelper && calcParams.HelperHours != nil && *calcParams.HelperHours > 0 {
		helperPayment = roundPence(*calcParams.HelperHours * minimumWagePencePerHour)
	}

	deductions := business.UKDeductions{
		VATAmountPence:         roundPence(float64(gross) * vatRate),
		NationalInsurancePence: roundPence(float64(gross) * nationalInsuranceRate),
		InsuranceLevyPence:     roundPence(float64(gross) * insuranceLevyRate),
		FuelDutyPence:          roundPence(litres * fuelDutyPencePerLitre),
	}

	netBeforeTax := gross + reimbursements.Total() - helperPayment
	netAfterTax := netBeforeTax - deductions.NationalInsurancePence - deductions.InsuranceLevyPence

	finalNet := netAfterTax
	if earnedToday+netAfterTax > dailyEarningsCapPence {
		finalNet = dailyEarningsCapPence - earnedToday
		warnings = append(warnings, fmt.Sprintf(
			"Earnings capped at %s to comply with daily limit of £500",
			helpers.FormatPence(finalNet)))
	}
	if finalNet < 0 {
		finalNet = 0
	}

	// Evaluated on the post-cap payout, so a capped job still complies.
	withinDailyCap := earnedToday+finalNet <= dailyEarningsCapPence

	hoursWorked := calcParams.DurationMinutes / 60

	effectiveHourlyRate := 0.0
	meetsMinimumWage := true
	if hoursWorked > 0 {
		effectiveHourlyRate = (float64(finalNet) / 100) / hoursWorked
		meetsMinimumWage = effectiveHourlyRate >= float64(minimumWagePencePerHour)/100
	}
	if !meetsMinimumWage {
		warnings = append(warnings, fmt.Sprintf(
			"Effective hourly rate (£%.2f/hr) is below National Living Wage (£11.44/hr)",
			effectiveHourlyRate))
	}

	withinDailyHoursLimit := hoursWorked <= maxWorkingHoursPerDay
	if !withinDailyHoursLimit {
		warnings = append(warnings, fmt.Sprintf(
			"Job duration (%.1f hours) exceeds recommended daily limit of 11 hours",
			hoursWorked))
	}

	breakdown := &business.EarningsBreakdown{
		GrossEarningsPence:        gross,
		BaseFarePence:             baseFare,
		PerDropFeePence:           perDropFee,
		MileageFeePence:           mileageFee,
		TimeFees:                  timeFees,
		UrgencyMultiplier:         urgencyMultiplier,
		TierMultiplier:            tier.Multiplier,
		Bonuses:                   bonuses,
		UKDeductions:              deductions,
		Reimbursements:            reimbursements,
		HelperPaymentPence:        helperPayment,
		NetEarningsBeforeTaxPence: netBeforeTax,
		NetEarningsAfterTaxPence:  finalNet,
		Compliance: business.ComplianceSnapshot{
			MeetsMinimumWage:       meetsMinimumWage,
			WithinDailyHoursLimit:  withinDailyHoursLimit,
			WithinDailyCap:         withinDailyCap,
			EffectiveHourlyRate:    effectiveHourlyRate,
			HoursWorked:            hoursWorked,
			RemainingDailyCapacity: dailyEarningsCapPence - earnedToday,
		},
		DriverTier: tier,
	}

	return breakdown, warnings
}

func urgencyMultiplierFor(urgencyLevel string) float64 {
	switch urgencyLevel {
	case constants.UrgencyExpress:
		return 1.3
	case constants.UrgencyPremium:
		return 1.6
	default:
		return 1.0
	}
}

func onTimeBonus(onTime bool, cfg business.RateConfig) int64 {
	if !onTime {
		return 0
	}
	return cfg.RouteExcellenceBonusPence
}

func ratingBonus(rating *float64) int64 {
	if rating == nil {
		return 0
	}
	switch {
	case *rating >= 4.8:
		return 1000
	case *rating >= 4.5:
		return 500
	default:
		return 0
	}
}

func multiDropBonus(dropCount int, cfg business.RateConfig) int64 {
	if dropCount < cfg.MultiDropBonusThreshold {
		return 0
	}
	return int64(dropCount-cfg.MultiDropBonusThreshold) * cfg.MultiDropBonusPerExtraDropPence
}

func longDistanceBonus(distanceMiles float64, cfg business.RateConfig) int64 {
	if distanceMiles < cfg.LongDistanceBonusThresholdMiles {
		return 0
	}
	return roundPence((distanceMiles - cfg.LongDistanceBonusThresholdMiles) * float64(cfg.LongDistanceBonusPerExtraMilePence))
}

func penceOrZero(pence *int64) int64 {
	if pence == nil || *pence < 0 {
		return 0
	}
	return *pence
}

// roundPence rounds half away from zero, matching how the rate tables were
// priced.
func roundPence(v float64) int64 {
	return int64(math.Round(v))
}
