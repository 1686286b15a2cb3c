package syncer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-insights-engine/infrastructure/repository"
	"github.com/vfg2006/ads-insights-engine/internal/config"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"github.com/vfg2006/ads-insights-engine/pkg/metrics"
)

// DailySyncService sincroniza o snapshot diário de métricas de um nível de
// entidade a partir da API de insights da Meta.
type DailySyncService struct {
	metaClient  metaclient.Client
	dailyRepo   repository.DailyMetricRepository
	attemptRepo repository.SyncAttemptRepository
	appConfig   *config.Config
}

func NewDailySyncService(
	metaClient metaclient.Client,
	dailyRepo repository.DailyMetricRepository,
	attemptRepo repository.SyncAttemptRepository,
	appConfig *config.Config,
) *DailySyncService {
	return &DailySyncService{
		metaClient:  metaClient,
		dailyRepo:   dailyRepo,
		attemptRepo: attemptRepo,
		appConfig:   appConfig,
	}
}

// SyncDay busca, normaliza e persiste as métricas de todas as entidades de um
// nível para uma data. A escrita é transacional: em caso de erro nenhuma linha
// do dia é gravada e o snapshot anterior permanece intacto.
func (s *DailySyncService) SyncDay(ctx context.Context, date time.Time, level domain.EntityLevel) (*domain.SyncDayResult, error) {
	if !domain.ValidLevel(level) {
		return nil, fmt.Errorf("nível de entidade inválido: %s", level)
	}

	attemptID, err := s.attemptRepo.Create(&domain.SyncAttempt{
		SyncType:  domain.SyncTypeDaily,
		Level:     level,
		StartDate: date,
		EndDate:   date,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao registrar tentativa de sincronização: %w", err)
	}

	result, syncErr := s.syncDay(ctx, date, level)

	if syncErr != nil {
		metrics.SyncDaysTotal.WithLabelValues(string(domain.SyncStatusFailed)).Inc()
		if err := s.attemptRepo.Finish(attemptID, domain.SyncStatusFailed, 0, []string{syncErr.Error()}); err != nil {
			logrus.WithError(err).Error("Erro ao finalizar tentativa de sincronização")
		}
		return nil, syncErr
	}

	metrics.SyncDaysTotal.WithLabelValues(string(domain.SyncStatusSucceeded)).Inc()
	if err := s.attemptRepo.Finish(attemptID, domain.SyncStatusSucceeded, result.EntitiesSynced, nil); err != nil {
		logrus.WithError(err).Error("Erro ao finalizar tentativa de sincronização")
	}

	return result, nil
}

func (s *DailySyncService) syncDay(ctx context.Context, date time.Time, level domain.EntityLevel) (*domain.SyncDayResult, error) {
	logrus.WithFields(logrus.Fields{
		"date":  date.Format(time.DateOnly),
		"level": level,
	}).Info("Iniciando sincronização diária de métricas")

	filters := &domain.InsightFilters{
		StartDate: &date,
		EndDate:   &date,
	}

	rawInsights, err := s.metaClient.GetInsights(level, filters, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar insights da Meta: %w", err)
	}

	// Dia sem entrega é um resultado válido: nada a gravar, snapshot anterior
	// permanece.
	if len(rawInsights) == 0 {
		logrus.WithFields(logrus.Fields{
			"date":  date.Format(time.DateOnly),
			"level": level,
		}).Info("Nenhum insight retornado para a data, nada a persistir")

		return &domain.SyncDayResult{
			Date:   date,
			Level:  level,
			Status: domain.SyncStatusSucceeded,
		}, nil
	}

	entries := make([]*domain.DailyMetricEntry, 0, len(rawInsights))
	for i := range rawInsights {
		raw := &rawInsights[i]
		entries = append(entries, &domain.DailyMetricEntry{
			EntityID: meta.EntityID(raw, level),
			ParentID: meta.ParentID(raw, level),
			Level:    level,
			Date:     date,
			Metrics:  meta.FactoryCanonicalMetrics(raw, s.appConfig.Meta.ConversionActionType),
		})
	}

	if err := s.dailyRepo.ReplaceDay(ctx, date, level, entries); err != nil {
		return nil, fmt.Errorf("erro ao persistir métricas diárias: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"date":     date.Format(time.DateOnly),
		"level":    level,
		"entities": len(entries),
	}).Info("Sincronização diária concluída com sucesso")

	return &domain.SyncDayResult{
		Date:           date,
		Level:          level,
		Status:         domain.SyncStatusSucceeded,
		EntitiesSynced: len(entries),
	}, nil
}
