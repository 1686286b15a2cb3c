package domain

import (
	"time"
)

// EntityLevel identifica o nível da entidade na hierarquia de anúncios
type EntityLevel string

const (
	LevelAccount  EntityLevel = "account"
	LevelCampaign EntityLevel = "campaign"
	LevelAd       EntityLevel = "ad"
)

// ValidLevel verifica se o nível informado é reconhecido
func ValidLevel(level EntityLevel) bool {
	switch level {
	case LevelAccount, LevelCampaign, LevelAd:
		return true
	}
	return false
}

// InsightFilters delimita o período de uma consulta de insights
type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// DailyMetricEntry representa uma linha diária de métricas armazenada no banco.
// Chave natural (entity_id, date); o upsert substitui a linha por completo.
type DailyMetricEntry struct {
	ID        int64             `json:"id"`
	EntityID  string            `json:"entity_id"`
	ParentID  string            `json:"parent_id,omitempty"`
	Level     EntityLevel       `json:"level"`
	Date      time.Time         `json:"date"`
	Metrics   *CanonicalMetrics `json:"metrics"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// WeeklyMetricEntry é o resumo semanal pré-calculado (segunda a domingo)
type WeeklyMetricEntry struct {
	ID        int64             `json:"id"`
	EntityID  string            `json:"entity_id"`
	ParentID  string            `json:"parent_id,omitempty"`
	Level     EntityLevel       `json:"level"`
	WeekStart time.Time         `json:"week_start"`
	WeekEnd   time.Time         `json:"week_end"`
	Metrics   *CanonicalMetrics `json:"metrics"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// MonthlyMetricEntry é o resumo mensal pré-calculado (primeiro ao último dia do mês)
type MonthlyMetricEntry struct {
	ID          int64             `json:"id"`
	EntityID    string            `json:"entity_id"`
	ParentID    string            `json:"parent_id,omitempty"`
	Level       EntityLevel       `json:"level"`
	PeriodStart time.Time         `json:"period_start"`
	PeriodEnd   time.Time         `json:"period_end"`
	Metrics     *CanonicalMetrics `json:"metrics"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
