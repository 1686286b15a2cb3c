package aggregating

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-engine/infrastructure/repository"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"github.com/vfg2006/ads-insights-engine/pkg/metrics"
	"github.com/vfg2006/ads-insights-engine/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/aggregator.go -package=mocks

// Aggregator define a interface do serviço de agregação de métricas
type Aggregator interface {
	// AggregateWeek materializa os agregados semanais de todas as entidades de
	// um nível para a semana iniciada em weekStart (segunda-feira)
	AggregateWeek(ctx context.Context, weekStart time.Time, level domain.EntityLevel) (int, error)

	// AggregateMonth materializa os agregados mensais de todas as entidades de
	// um nível para o mês-calendário informado
	AggregateMonth(ctx context.Context, year int, month time.Month, level domain.EntityLevel) (int, error)

	// AggregateRange reduz, sem persistir, as métricas diárias de uma entidade
	// em um intervalo arbitrário de datas
	AggregateRange(entityID string, startDate, endDate time.Time) (*domain.CanonicalMetrics, error)

	// AggregatePeriodsInRange materializa todas as semanas e meses que
	// intersectam o intervalo informado
	AggregatePeriodsInRange(ctx context.Context, startDate, endDate time.Time, level domain.EntityLevel) error
}

// Service reduz snapshots diários em agregados semanais e mensais. Somatórios
// são acumulados campo a campo e as razões são recalculadas a partir dos
// totais, nunca pela média das razões diárias.
type Service struct {
	dailyRepo   repository.DailyMetricRepository
	weeklyRepo  repository.WeeklyMetricRepository
	monthlyRepo repository.MonthlyMetricRepository
	attemptRepo repository.SyncAttemptRepository
}

func NewService(
	dailyRepo repository.DailyMetricRepository,
	weeklyRepo repository.WeeklyMetricRepository,
	monthlyRepo repository.MonthlyMetricRepository,
	attemptRepo repository.SyncAttemptRepository,
) Aggregator {
	return &Service{
		dailyRepo:   dailyRepo,
		weeklyRepo:  weeklyRepo,
		monthlyRepo: monthlyRepo,
		attemptRepo: attemptRepo,
	}
}

func (s *Service) AggregateWeek(ctx context.Context, weekStart time.Time, level domain.EntityLevel) (int, error) {
	if weekStart.Weekday() != time.Monday {
		return 0, fmt.Errorf("a semana deve iniciar em uma segunda-feira, recebido: %s", weekStart.Format(time.DateOnly))
	}

	weekEnd := utils.WeekEnd(weekStart)

	attemptID, err := s.attemptRepo.Create(&domain.SyncAttempt{
		SyncType:  domain.SyncTypeWeekly,
		Level:     level,
		StartDate: weekStart,
		EndDate:   weekEnd,
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao registrar tentativa de agregação semanal: %w", err)
	}

	grouped, err := s.groupDailyEntries(weekStart, weekEnd, level)
	if err != nil {
		s.finishAttempt(attemptID, domain.SyncStatusFailed, 0, []string{err.Error()})
		return 0, err
	}

	entries := make([]*domain.WeeklyMetricEntry, 0, len(grouped))
	for entityID, dailyEntries := range grouped {
		entries = append(entries, &domain.WeeklyMetricEntry{
			EntityID:  entityID,
			ParentID:  dailyEntries[0].ParentID,
			Level:     level,
			WeekStart: weekStart,
			WeekEnd:   weekEnd,
			Metrics:   reduceEntries(dailyEntries),
		})
	}

	if len(entries) > 0 {
		if err := s.weeklyRepo.UpsertMany(ctx, entries); err != nil {
			s.finishAttempt(attemptID, domain.SyncStatusFailed, 0, []string{err.Error()})
			return 0, fmt.Errorf("erro ao persistir agregados semanais: %w", err)
		}
	}

	metrics.AggregationsTotal.WithLabelValues("weekly").Inc()
	s.finishAttempt(attemptID, domain.SyncStatusSucceeded, len(entries), nil)

	logrus.WithFields(logrus.Fields{
		"week_start": weekStart.Format(time.DateOnly),
		"week_end":   weekEnd.Format(time.DateOnly),
		"level":      level,
		"entities":   len(entries),
	}).Info("Agregação semanal concluída")

	return len(entries), nil
}

func (s *Service) AggregateMonth(ctx context.Context, year int, month time.Month, level domain.EntityLevel) (int, error) {
	periodStart, periodEnd := utils.MonthBounds(year, month)

	attemptID, err := s.attemptRepo.Create(&domain.SyncAttempt{
		SyncType:  domain.SyncTypeMonthly,
		Level:     level,
		StartDate: periodStart,
		EndDate:   periodEnd,
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao registrar tentativa de agregação mensal: %w", err)
	}

	grouped, err := s.groupDailyEntries(periodStart, periodEnd, level)
	if err != nil {
		s.finishAttempt(attemptID, domain.SyncStatusFailed, 0, []string{err.Error()})
		return 0, err
	}

	entries := make([]*domain.MonthlyMetricEntry, 0, len(grouped))
	for entityID, dailyEntries := range grouped {
		entries = append(entries, &domain.MonthlyMetricEntry{
			EntityID:    entityID,
			ParentID:    dailyEntries[0].ParentID,
			Level:       level,
			PeriodStart: periodStart,
			PeriodEnd:   periodEnd,
			Metrics:     reduceEntries(dailyEntries),
		})
	}

	if len(entries) > 0 {
		if err := s.monthlyRepo.UpsertMany(ctx, entries); err != nil {
			s.finishAttempt(attemptID, domain.SyncStatusFailed, 0, []string{err.Error()})
			return 0, fmt.Errorf("erro ao persistir agregados mensais: %w", err)
		}
	}

	metrics.AggregationsTotal.WithLabelValues("monthly").Inc()
	s.finishAttempt(attemptID, domain.SyncStatusSucceeded, len(entries), nil)

	logrus.WithFields(logrus.Fields{
		"period_start": periodStart.Format(time.DateOnly),
		"period_end":   periodEnd.Format(time.DateOnly),
		"level":        level,
		"entities":     len(entries),
	}).Info("Agregação mensal concluída")

	return len(entries), nil
}

// AggregateRange reduz as métricas diárias de uma entidade sob demanda.
// Intervalo sem linhas resulta em métricas zeradas, não em erro.
func (s *Service) AggregateRange(entityID string, startDate, endDate time.Time) (*domain.CanonicalMetrics, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	dailyEntries, err := s.dailyRepo.GetByDateRange(entityID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas diárias: %w", err)
	}

	return reduceEntries(dailyEntries), nil
}

func (s *Service) AggregatePeriodsInRange(ctx context.Context, startDate, endDate time.Time, level domain.EntityLevel) error {
	// Semanas completas que intersectam o intervalo
	for weekStart := utils.WeekStart(startDate); !weekStart.After(endDate); weekStart = weekStart.AddDate(0, 0, 7) {
		if _, err := s.AggregateWeek(ctx, weekStart, level); err != nil {
			return err
		}
	}

	// Meses-calendário que intersectam o intervalo
	cursor := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(endDate) {
		if _, err := s.AggregateMonth(ctx, cursor.Year(), cursor.Month(), level); err != nil {
			return err
		}
		cursor = cursor.AddDate(0, 1, 0)
	}

	return nil
}

func (s *Service) groupDailyEntries(startDate, endDate time.Time, level domain.EntityLevel) (map[string][]*domain.DailyMetricEntry, error) {
	dailyEntries, err := s.dailyRepo.ListByDateRange(startDate, endDate, level)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas diárias do período: %w", err)
	}

	grouped := make(map[string][]*domain.DailyMetricEntry)
	for _, entry := range dailyEntries {
		grouped[entry.EntityID] = append(grouped[entry.EntityID], entry)
	}

	return grouped, nil
}

func (s *Service) finishAttempt(attemptID string, status domain.SyncStatus, entities int, errs []string) {
	if err := s.attemptRepo.Finish(attemptID, status, entities, errs); err != nil {
		logrus.WithError(err).Error("Erro ao finalizar tentativa de agregação")
	}
}

func reduceEntries(entries []*domain.DailyMetricEntry) *domain.CanonicalMetrics {
	list := make([]*domain.CanonicalMetrics, 0, len(entries))
	for _, entry := range entries {
		if entry.Metrics != nil {
			list = append(list, entry.Metrics)
		}
	}

	return domain.ReduceMetrics(list)
}
