package business

// RateConfig holds the active per-unit rates used for payout calculation.
// All monetary fields are integer pence; thresholds are unit counts.
type RateConfig struct {
	BaseFarePerRoutePence       int64 `json:"base_fare_per_route_pence"`
	PerDropFeePence             int64 `json:"per_drop_fee_pence"`
	MileageRatePerMilePence     int64 `json:"mileage_rate_per_mile_pence"`
	DrivingRatePerMinutePence   int64 `json:"driving_rate_per_minute_pence"`
	LoadingRatePerMinutePence   int64 `json:"loading_rate_per_minute_pence"`
	UnloadingRatePerMinutePence int64 `json:"unloading_rate_per_minute_pence"`
	WaitingRatePerMinutePence   int64 `json:"waiting_rate_per_minute_pence"`

	RouteExcellenceBonusPence int64 `json:"route_excellence_bonus_pence"`

	MultiDropBonusThreshold         int   `json:"multi_drop_bonus_threshold"`
	MultiDropBonusPerExtraDropPence int64 `json:"multi_drop_bonus_per_extra_drop_pence"`

	LongDistanceBonusThresholdMiles    float64 `json:"long_distance_bonus_threshold_miles"`
	LongDistanceBonusPerExtraMilePence int64   `json:"long_distance_bonus_per_extra_mile_pence"`
}

// DefaultRateConfig returns the built-in rate table used when no pricing
// config is marked active.
func DefaultRateConfig() RateConfig {
	return RateConfig{
		BaseFarePerRoutePence:              2500, // £25.00
		PerDropFeePence:                    1200, // £12.00 per drop
		MileageRatePerMilePence:            55,   // £0.55 per mile
		DrivingRatePerMinutePence:          30,
		LoadingRatePerMinutePence:          40,
		UnloadingRatePerMinutePence:        40,
		WaitingRatePerMinutePence:          25,
		RouteExcellenceBonusPence:          500, // £5.00
		MultiDropBonusThreshold:            5,
		MultiDropBonusPerExtraDropPence:    300,
		LongDistanceBonusThresholdMiles:    50,
		LongDistanceBonusPerExtraMilePence: 10,
	}
}
