package syncer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/metaclient"
	metaclientmocks "github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/ads-insights-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBackfillOrchestrator_Start_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := NewBackfillOrchestrator(
		nil,
		mocks.NewMockDailyMetricRepository(ctrl),
		mocks.NewMockSyncAttemptRepository(ctrl),
		nil,
		testConfig(),
	)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  BackfillRequest
	}{
		{
			name: "Nível de entidade desconhecido",
			req: BackfillRequest{
				StartDate: start,
				EndDate:   start.AddDate(0, 0, 5),
				Level:     domain.EntityLevel("adset"),
			},
		},
		{
			name: "Data final anterior à inicial",
			req: BackfillRequest{
				StartDate: start,
				EndDate:   start.AddDate(0, 0, -1),
				Level:     domain.LevelAccount,
			},
		},
		{
			name: "Intervalo maior que o limite por solicitação",
			req: BackfillRequest{
				StartDate: start,
				EndDate:   start.AddDate(0, 0, 120),
				Level:     domain.LevelAccount,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := orchestrator.Start(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrBackfillRangeInvalid)
		})
	}
}

func TestBackfillOrchestrator_Start_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orchestrator := NewBackfillOrchestrator(
		nil,
		mocks.NewMockDailyMetricRepository(ctrl),
		mocks.NewMockSyncAttemptRepository(ctrl),
		nil,
		testConfig(),
	)
	orchestrator.running = true

	err := orchestrator.Start(context.Background(), BackfillRequest{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		Level:     domain.LevelAccount,
	})

	assert.ErrorIs(t, err, ErrBackfillAlreadyRunning)
}

func TestBackfillOrchestrator_DayErrorDoesNotStopRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaClient := metaclientmocks.NewMockClient(ctrl)
	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	attemptRepo := mocks.NewMockSyncAttemptRepository(ctrl)

	day1 := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	// Nenhum dia previamente sincronizado
	dailyRepo.EXPECT().ExistsForDate(gomock.Any(), domain.LevelAccount).Return(false, nil).Times(3)

	// Uma tentativa por dia mais a tentativa do backfill
	attemptRepo.EXPECT().Create(gomock.Any()).Return("attempt", nil).Times(4)

	metaClient.EXPECT().
		GetInsights(domain.LevelAccount, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ domain.EntityLevel, filters *domain.InsightFilters, _ *metaclient.InsightOptions) ([]metadomain.RawInsight, error) {
			if filters.StartDate.Equal(day2) {
				return nil, &metadomain.FetchError{Err: assert.AnError}
			}
			return []metadomain.RawInsight{
				{AccountID: "acc1", Spend: "10.00", Impressions: "100", Clicks: "2"},
			}, nil
		}).
		Times(3)

	// Apenas os dias 1 e 3 são gravados
	dailyRepo.EXPECT().ReplaceDay(gomock.Any(), day1, domain.LevelAccount, gomock.Len(1)).Return(nil)
	dailyRepo.EXPECT().ReplaceDay(gomock.Any(), day3, domain.LevelAccount, gomock.Len(1)).Return(nil)

	attemptRepo.EXPECT().
		Finish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ string, status domain.SyncStatus, _ int, errs []string) error {
			if status == domain.SyncStatusPartial {
				assert.Len(t, errs, 1)
				assert.True(t, strings.HasPrefix(errs[0], day2.Format(time.DateOnly)+": "))
			}
			return nil
		}).
		Times(4)

	cfg := testConfig()
	syncService := NewDailySyncService(metaClient, dailyRepo, attemptRepo, cfg)
	orchestrator := NewBackfillOrchestrator(syncService, dailyRepo, attemptRepo, nil, cfg)

	err := orchestrator.Start(context.Background(), BackfillRequest{
		StartDate: day1,
		EndDate:   day3,
		Level:     domain.LevelAccount,
	})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return orchestrator.Status().Status == domain.BackfillStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)

	progress := orchestrator.Status()
	assert.Equal(t, 3, progress.TotalDays)
	assert.Equal(t, 3, progress.CompletedDays)
	assert.Len(t, progress.Errors, 1)
}

// Um contexto já cancelado interrompe o backfill antes do primeiro dia, mesmo
// sem intervalo configurado entre dias, e o motivo aparece no snapshot de
// progresso.
func TestBackfillOrchestrator_CancelamentoFalhaComMotivo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	attemptRepo := mocks.NewMockSyncAttemptRepository(ctrl)

	attemptRepo.EXPECT().Create(gomock.Any()).Return("attempt", nil)
	attemptRepo.EXPECT().
		Finish("attempt", domain.SyncStatusFailed, 0, gomock.Len(1)).
		DoAndReturn(func(_ string, _ domain.SyncStatus, _ int, errs []string) error {
			assert.Contains(t, errs[0], "backfill cancelado")
			return nil
		})

	orchestrator := NewBackfillOrchestrator(nil, dailyRepo, attemptRepo, nil, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := orchestrator.Start(ctx, BackfillRequest{
		StartDate: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
		Level:     domain.LevelAccount,
	})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return orchestrator.Status().Status == domain.BackfillStatusFailed
	}, 5*time.Second, 10*time.Millisecond)

	progress := orchestrator.Status()
	assert.Zero(t, progress.CompletedDays)
	assert.Len(t, progress.Errors, 1)
	assert.Contains(t, progress.Errors[0], "backfill cancelado")
}

func TestBackfillOrchestrator_SkipsExistingDaysUnlessForced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	metaClient := metaclientmocks.NewMockClient(ctrl)
	dailyRepo := mocks.NewMockDailyMetricRepository(ctrl)
	attemptRepo := mocks.NewMockSyncAttemptRepository(ctrl)

	day1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	// Dia 1 já sincronizado, dia 2 não
	dailyRepo.EXPECT().ExistsForDate(day1, domain.LevelCampaign).Return(true, nil)
	dailyRepo.EXPECT().ExistsForDate(day2, domain.LevelCampaign).Return(false, nil)

	// Tentativa do backfill + tentativa do único dia sincronizado
	attemptRepo.EXPECT().Create(gomock.Any()).Return("attempt", nil).Times(2)

	metaClient.EXPECT().
		GetInsights(domain.LevelCampaign, gomock.Any(), gomock.Nil()).
		Return([]metadomain.RawInsight{}, nil).
		Times(1)

	attemptRepo.EXPECT().
		Finish(gomock.Any(), domain.SyncStatusSucceeded, gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	cfg := testConfig()
	syncService := NewDailySyncService(metaClient, dailyRepo, attemptRepo, cfg)
	orchestrator := NewBackfillOrchestrator(syncService, dailyRepo, attemptRepo, nil, cfg)

	err := orchestrator.Start(context.Background(), BackfillRequest{
		StartDate: day1,
		EndDate:   day2,
		Level:     domain.LevelCampaign,
	})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		return orchestrator.Status().Status == domain.BackfillStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)
}
