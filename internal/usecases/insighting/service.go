package insighting

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-insights-engine/infrastructure/repository"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"github.com/vfg2006/ads-insights-engine/internal/usecases/aggregating"
	"github.com/vfg2006/ads-insights-engine/pkg/utils"
)

// Service atende consultas de métricas a partir das tabelas materializadas.
// Intervalos que coincidem exatamente com uma semana ou um mês materializado
// são servidos direto da tabela agregada; os demais são reduzidos sob demanda.
type Service struct {
	dailyRepo   repository.DailyMetricRepository
	weeklyRepo  repository.WeeklyMetricRepository
	monthlyRepo repository.MonthlyMetricRepository
	aggregator  aggregating.Aggregator
}

func NewService(
	dailyRepo repository.DailyMetricRepository,
	weeklyRepo repository.WeeklyMetricRepository,
	monthlyRepo repository.MonthlyMetricRepository,
	aggregator aggregating.Aggregator,
) Insighter {
	return &Service{
		dailyRepo:   dailyRepo,
		weeklyRepo:  weeklyRepo,
		monthlyRepo: monthlyRepo,
		aggregator:  aggregator,
	}
}

func (s *Service) GetDailyMetrics(entityID string, date time.Time) (*domain.DailyMetricEntry, error) {
	entry, err := s.dailyRepo.GetByEntityIDAndDate(entityID, date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar métricas diárias: %w", err)
	}

	return entry, nil
}

func (s *Service) GetAggregate(entityID string, startDate, endDate time.Time) (*domain.CanonicalMetrics, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	// Intervalo exatamente igual a uma semana materializada
	if isExactWeek(startDate, endDate) {
		entry, err := s.weeklyRepo.GetByEntityIDAndWeekStart(entityID, startDate)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar agregado semanal: %w", err)
		}
		if entry != nil && entry.Metrics != nil {
			return entry.Metrics, nil
		}

		logrus.WithFields(logrus.Fields{
			"entity_id":  entityID,
			"week_start": startDate.Format(time.DateOnly),
		}).Debug("Agregado semanal não materializado, reduzindo sob demanda")
	}

	// Intervalo exatamente igual a um mês-calendário materializado
	if isExactMonth(startDate, endDate) {
		entry, err := s.monthlyRepo.GetByEntityIDAndPeriodStart(entityID, startDate)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar agregado mensal: %w", err)
		}
		if entry != nil && entry.Metrics != nil {
			return entry.Metrics, nil
		}

		logrus.WithFields(logrus.Fields{
			"entity_id":    entityID,
			"period_start": startDate.Format(time.DateOnly),
		}).Debug("Agregado mensal não materializado, reduzindo sob demanda")
	}

	return s.aggregator.AggregateRange(entityID, startDate, endDate)
}

func isExactWeek(startDate, endDate time.Time) bool {
	return startDate.Weekday() == time.Monday && endDate.Equal(utils.WeekEnd(startDate))
}

func isExactMonth(startDate, endDate time.Time) bool {
	periodStart, periodEnd := utils.MonthBounds(startDate.Year(), startDate.Month())
	return startDate.Equal(periodStart) && endDate.Equal(periodEnd)
}
