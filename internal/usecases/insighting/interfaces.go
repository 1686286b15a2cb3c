package insighting

import (
	"time"

	"github.com/vfg2006/ads-insights-engine/internal/domain"
)

// Insighter define a interface de leitura de métricas persistidas
type Insighter interface {
	// GetDailyMetrics obtém o snapshot diário de uma entidade para uma data.
	// Retorna nil quando não há snapshot para a data
	GetDailyMetrics(entityID string, date time.Time) (*domain.DailyMetricEntry, error)

	// GetAggregate obtém as métricas agregadas de uma entidade em um intervalo
	// arbitrário de datas
	GetAggregate(entityID string, startDate, endDate time.Time) (*domain.CanonicalMetrics, error)
}
