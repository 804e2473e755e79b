package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/swifthaul/swifthaul-api/db"
	"github.com/swifthaul/swifthaul-api/interfaces"
	"github.com/swifthaul/swifthaul-api/logger"
	"github.com/swifthaul/swifthaul-api/types/business"
)

// RateConfigService resolves the per-unit rates used for payout calculation
type RateConfigService struct {
	queries db.Querier
	logger  *zap.Logger
}

var _ interfaces.RateConfigProvider = (*RateConfigService)(nil)

// NewRateConfigService creates a new rate config service
func NewRateConfigService(queries db.Querier) *RateConfigService {
	return &RateConfigService{
		queries: queries,
		logger:  logger.Log,
	}
}

// GetActiveConfig returns the pricing config currently marked active. When no
// config is marked active the built-in default table is used. A fetch failure
// is returned as-is: substituting defaults for a transient outage could
// silently misprice every job until someone notices.
func (s *RateConfigService) GetActiveConfig(ctx context.Context) (business.RateConfig, error) {
	row, err := s.queries.GetActivePricingConfig(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("No active pricing config found, using default rates")
			return business.DefaultRateConfig(), nil
		}
		s.logger.Error("Failed to fetch active pricing config", zap.Error(err))
		return business.RateConfig{}, fmt.Errorf("failed to get active pricing config: %w", err)
	}

	return business.RateConfig{
		BaseFarePerRoutePence:              row.BaseFarePerRoutePence,
		PerDropFeePence:                    row.PerDropFeePence,
		MileageRatePerMilePence:            row.MileageRatePerMilePence,
		DrivingRatePerMinutePence:          row.DrivingRatePerMinutePence,
		LoadingRatePerMinutePence:          row.LoadingRatePerMinutePence,
		UnloadingRatePerMinutePence:        row.UnloadingRatePerMinutePence,
		WaitingRatePerMinutePence:          row.WaitingRatePerMinutePence,
		RouteExcellenceBonusPence:          row.RouteExcellenceBonusPence,
		MultiDropBonusThreshold:            int(row.MultiDropBonusThreshold),
		MultiDropBonusPerExtraDropPence:    row.MultiDropBonusPerExtraDropPence,
		LongDistanceBonusThresholdMiles:    row.LongDistanceBonusThresholdMiles,
		LongDistanceBonusPerExtraMilePence: row.LongDistanceBonusPerExtraMilePence,
	}, nil
}
