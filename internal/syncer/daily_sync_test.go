package syncer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/domain"
	metaclientmocks "github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-insights-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-insights-engine/internal/config"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Meta: config.Meta{
			ConversionActionType: "purchase",
		},
		Backfill: config.Backfill{
			DefaultDelaySeconds: 0,
			MaxRangeDays:        90,
		},
	}
}

func TestDailySyncService_SyncDay(t *testing.T) {
	syncDate := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		level    domain.EntityLevel
		setup    func(metaClient *metaclientmocks.MockClient, dailyRepo *mocks.MockDailyMetricRepository, attemptRepo *mocks.MockSyncAttemptRepository)
		validate func(t *testing.T, result *domain.SyncDayResult, err error)
	}{
		{
			name:  "Dia com insights - persiste todas as entidades e finaliza a tentativa",
			level: domain.LevelCampaign,
			setup: func(metaClient *metaclientmocks.MockClient, dailyRepo *mocks.MockDailyMetricRepository, attemptRepo *mocks.MockSyncAttemptRepository) {
				attemptRepo.EXPECT().
					Create(gomock.Any()).
					Return("attempt1", nil)

				metaClient.EXPECT().
					GetInsights(domain.LevelCampaign, gomock.Any(), gomock.Nil()).
					Return([]metadomain.RawInsight{
						{AccountID: "acc1", CampaignID: "camp1", Spend: "100.00", Impressions: "1000", Clicks: "20"},
						{AccountID: "acc1", CampaignID: "camp2", Spend: "50.00", Impressions: "500", Clicks: "5"},
					}, nil)

				dailyRepo.EXPECT().
					ReplaceDay(gomock.Any(), syncDate, domain.LevelCampaign, gomock.Len(2)).
					DoAndReturn(func(_ context.Context, _ time.Time, _ domain.EntityLevel, entries []*domain.DailyMetricEntry) error {
						assert.Equal(t, "camp1", entries[0].EntityID)
						assert.Equal(t, "acc1", entries[0].ParentID)
						assert.Equal(t, 100.00, entries[0].Metrics.Spend)
						assert.Equal(t, 2.0, entries[0].Metrics.CTR)
						return nil
					})

				attemptRepo.EXPECT().
					Finish("attempt1", domain.SyncStatusSucceeded, 2, nil).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.SyncDayResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.SyncStatusSucceeded, result.Status)
				assert.Equal(t, 2, result.EntitiesSynced)
			},
		},
		{
			name:  "Erro na API da Meta - nada é gravado e a tentativa falha",
			level: domain.LevelAccount,
			setup: func(metaClient *metaclientmocks.MockClient, dailyRepo *mocks.MockDailyMetricRepository, attemptRepo *mocks.MockSyncAttemptRepository) {
				attemptRepo.EXPECT().
					Create(gomock.Any()).
					Return("attempt2", nil)

				metaClient.EXPECT().
					GetInsights(domain.LevelAccount, gomock.Any(), gomock.Nil()).
					Return(nil, &metadomain.FetchError{Err: assert.AnError})

				// Nenhuma chamada a ReplaceDay: snapshot anterior preservado

				attemptRepo.EXPECT().
					Finish("attempt2", domain.SyncStatusFailed, 0, gomock.Len(1)).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.SyncDayResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:  "Dia sem entrega - sucesso com zero entidades, sem escrita",
			level: domain.LevelAd,
			setup: func(metaClient *metaclientmocks.MockClient, dailyRepo *mocks.MockDailyMetricRepository, attemptRepo *mocks.MockSyncAttemptRepository) {
				attemptRepo.EXPECT().
					Create(gomock.Any()).
					Return("attempt3", nil)

				metaClient.EXPECT().
					GetInsights(domain.LevelAd, gomock.Any(), gomock.Nil()).
					Return([]metadomain.RawInsight{}, nil)

				attemptRepo.EXPECT().
					Finish("attempt3", domain.SyncStatusSucceeded, 0, nil).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.SyncDayResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.SyncStatusSucceeded, result.Status)
				assert.Zero(t, result.EntitiesSynced)
			},
		},
		{
			name:  "Erro ao persistir - tentativa falha e erro é propagado",
			level: domain.LevelCampaign,
			setup: func(metaClient *metaclientmocks.MockClient, dailyRepo *mocks.MockDailyMetricRepository, attemptRepo *mocks.MockSyncAttemptRepository) {
				attemptRepo.EXPECT().
					Create(gomock.Any()).
					Return("attempt4", nil)

				metaClient.EXPECT().
					GetInsights(domain.LevelCampaign, gomock.Any(), gomock.Nil()).
					Return([]metadomain.RawInsight{
						{AccountID: "acc1", CampaignID: "camp1", Spend: "10.00"},
					}, nil)

				dailyRepo.EXPECT().
					ReplaceDay(gomock.Any(), syncDate, domain.LevelCampaign, gomock.Any()).
					Return(assert.AnError)

				attemptRepo.EXPECT().
					Finish("attempt4", domain.SyncStatusFailed, 0, gomock.Len(1)).
					Return(nil)
			},
			validate: func(t *testing.T, result *domain.SyncDayResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			metaClient := metaclientmocks.NewMockClient(ctrl)
			dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
			attemptRepo := mocks.NewMockSyncAttemptRepository(ctrl)

			tt.setup(metaClient, dailyRepo, attemptRepo)

			service := NewDailySyncService(metaClient, dailyRepo, attemptRepo, testConfig())
			result, err := service.SyncDay(context.Background(), syncDate, tt.level)
			tt.validate(t, result, err)
		})
	}
}

// Duas execuções com a mesma resposta da API produzem linhas persistidas
// idênticas.
func TestDailySyncService_SyncDay_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaClient := metaclientmocks.NewMockClient(ctrl)
	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	attemptRepo := mocks.NewMockSyncAttemptRepository(ctrl)

	syncDate := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	raw := []metadomain.RawInsight{
		{AccountID: "acc1", CampaignID: "camp1", Spend: "100.00", Impressions: "1000", Clicks: "20"},
		{AccountID: "acc1", CampaignID: "camp2", Spend: "33.33", Impressions: "777", Clicks: "7"},
	}

	attemptRepo.EXPECT().Create(gomock.Any()).Return("attempt", nil).Times(2)
	attemptRepo.EXPECT().Finish("attempt", domain.SyncStatusSucceeded, 2, nil).Return(nil).Times(2)

	metaClient.EXPECT().
		GetInsights(domain.LevelCampaign, gomock.Any(), gomock.Nil()).
		Return(raw, nil).
		Times(2)

	var persisted [][]*domain.DailyMetricEntry
	dailyRepo.EXPECT().
		ReplaceDay(gomock.Any(), syncDate, domain.LevelCampaign, gomock.Len(2)).
		DoAndReturn(func(_ context.Context, _ time.Time, _ domain.EntityLevel, entries []*domain.DailyMetricEntry) error {
			persisted = append(persisted, entries)
			return nil
		}).
		Times(2)

	service := NewDailySyncService(metaClient, dailyRepo, attemptRepo, testConfig())

	for i := 0; i < 2; i++ {
		result, err := service.SyncDay(context.Background(), syncDate, domain.LevelCampaign)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.EntitiesSynced)
	}

	assert.Len(t, persisted, 2)
	assert.Equal(t, persisted[0], persisted[1])
}

func TestDailySyncService_SyncDay_InvalidLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewDailySyncService(
		metaclientmocks.NewMockClient(ctrl),
		mocks.NewMockDailyMetricRepository(ctrl),
		mocks.NewMockSyncAttemptRepository(ctrl),
		testConfig(),
	)

	result, err := service.SyncDay(context.Background(), time.Now(), domain.EntityLevel("adset"))
	assert.Error(t, err)
	assert.Nil(t, result)
}
