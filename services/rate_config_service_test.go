package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"

	"github.com/swifthaul/swifthaul-api/db"
	"github.com/swifthaul/swifthaul-api/mocks"
	"github.com/swifthaul/swifthaul-api/services"
	"github.com/swifthaul/swifthaul-api/types/business"
)

func TestRateConfigService_GetActiveConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("maps the active row", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		service := services.NewRateConfigService(mockQuerier)

		mockQuerier.EXPECT().GetActivePricingConfig(ctx).Return(db.PricingConfig{
			ID:                                 uuid.New(),
			BaseFarePerRoutePence:              3000,
			PerDropFeePence:                    1500,
			MileageRatePerMilePence:            60,
			DrivingRatePerMinutePence:          35,
			LoadingRatePerMinutePence:          45,
			UnloadingRatePerMinutePence:        45,
			WaitingRatePerMinutePence:          30,
			RouteExcellenceBonusPence:          600,
			MultiDropBonusThreshold:            4,
			MultiDropBonusPerExtraDropPence:    350,
			LongDistanceBonusThresholdMiles:    40,
			LongDistanceBonusPerExtraMilePence: 12,
		}, nil)

		cfg, err := service.GetActiveConfig(ctx)

		assert.NoError(t, err)
		assert.Equal(t, business.RateConfig{
			BaseFarePerRoutePence:              3000,
			PerDropFeePence:                    1500,
			MileageRatePerMilePence:            60,
			DrivingRatePerMinutePence:          35,
			LoadingRatePerMinutePence:          45,
			UnloadingRatePerMinutePence:        45,
			WaitingRatePerMinutePence:          30,
			RouteExcellenceBonusPence:          600,
			MultiDropBonusThreshold:            4,
			MultiDropBonusPerExtraDropPence:    350,
			LongDistanceBonusThresholdMiles:    40,
			LongDistanceBonusPerExtraMilePence: 12,
		}, cfg)
	})

	t.Run("no active row falls back to default rates", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		service := services.NewRateConfigService(mockQuerier)

		mockQuerier.EXPECT().GetActivePricingConfig(ctx).Return(db.PricingConfig{}, pgx.ErrNoRows)

		cfg, err := service.GetActiveConfig(ctx)

		assert.NoError(t, err)
		assert.Equal(t, business.DefaultRateConfig(), cfg)
	})

	t.Run("fetch failure is surfaced", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		service := services.NewRateConfigService(mockQuerier)

		mockQuerier.EXPECT().GetActivePricingConfig(ctx).Return(db.PricingConfig{}, errors.New("connection refused"))

		_, err := service.GetActiveConfig(ctx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get active pricing config")
	})
}
