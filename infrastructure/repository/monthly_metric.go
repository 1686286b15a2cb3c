package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-insights-engine/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
)

//go:generate mockgen -source=monthly_metric.go -destination=mocks/monthly_metric.go -package=mocks

type MonthlyMetricRepository interface {
	GetByEntityIDAndPeriodStart(entityID string, periodStart time.Time) (*domain.MonthlyMetricEntry, error)
	UpsertMany(ctx context.Context, entries []*domain.MonthlyMetricEntry) error
}

type monthlyMetricRepository struct {
	conn *postgres.Connection
}

func NewMonthlyMetricRepository(conn *postgres.Connection) MonthlyMetricRepository {
	return &monthlyMetricRepository{
		conn: conn,
	}
}

func (r *monthlyMetricRepository) GetByEntityIDAndPeriodStart(entityID string, periodStart time.Time) (*domain.MonthlyMetricEntry, error) {
	query, args, err := squirrel.
		Select("mm.id, mm.entity_id, mm.parent_id, mm.level, mm.period_start, mm.period_end, mm.metrics, mm.created_at, mm.updated_at").
		From("monthly_metrics mm").
		Where(squirrel.Eq{"mm.entity_id": entityID, "mm.period_start": periodStart.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.MonthlyMetricEntry{}
	var metricsJSON []byte
	var level string

	err = r.conn.QueryRow(query, args...).Scan(
		&entry.ID,
		&entry.EntityID,
		&entry.ParentID,
		&level,
		&entry.PeriodStart,
		&entry.PeriodEnd,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica mensal: %w", err)
	}

	entry.Level = domain.EntityLevel(level)

	if metricsJSON != nil {
		metrics := &domain.CanonicalMetrics{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		entry.Metrics = metrics
	}

	return entry, nil
}

func (r *monthlyMetricRepository) UpsertMany(ctx context.Context, entries []*domain.MonthlyMetricEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			metricsJSON, err := json.Marshal(entry.Metrics)
			if err != nil {
				return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
			}

			query, args, err := squirrel.StatementBuilder.
				Insert("monthly_metrics").
				Columns("entity_id", "parent_id", "level", "period_start", "period_end", "metrics").
				Values(
					entry.EntityID,
					entry.ParentID,
					string(entry.Level),
					entry.PeriodStart.Format("2006-01-02"),
					entry.PeriodEnd.Format("2006-01-02"),
					metricsJSON,
				).
				Suffix(`
					ON CONFLICT (entity_id, period_start) DO UPDATE SET
						parent_id = EXCLUDED.parent_id,
						level = EXCLUDED.level,
						period_end = EXCLUDED.period_end,
						metrics = EXCLUDED.metrics,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}
