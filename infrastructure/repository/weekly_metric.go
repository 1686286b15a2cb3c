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

//go:generate mockgen -source=weekly_metric.go -destination=mocks/weekly_metric.go -package=mocks

type WeeklyMetricRepository interface {
	GetByEntityIDAndWeekStart(entityID string, weekStart time.Time) (*domain.WeeklyMetricEntry, error)
	UpsertMany(ctx context.Context, entries []*domain.WeeklyMetricEntry) error
}

type weeklyMetricRepository struct {
	conn *postgres.Connection
}

func NewWeeklyMetricRepository(conn *postgres.Connection) WeeklyMetricRepository {
	return &weeklyMetricRepository{
		conn: conn,
	}
}

func (r *weeklyMetricRepository) GetByEntityIDAndWeekStart(entityID string, weekStart time.Time) (*domain.WeeklyMetricEntry, error) {
	query, args, err := squirrel.
		Select("wm.id, wm.entity_id, wm.parent_id, wm.level, wm.week_start, wm.week_end, wm.metrics, wm.created_at, wm.updated_at").
		From("weekly_metrics wm").
		Where(squirrel.Eq{"wm.entity_id": entityID, "wm.week_start": weekStart.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry := &domain.WeeklyMetricEntry{}
	var metricsJSON []byte
	var level string

	err = r.conn.QueryRow(query, args...).Scan(
		&entry.ID,
		&entry.EntityID,
		&entry.ParentID,
		&level,
		&entry.WeekStart,
		&entry.WeekEnd,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica semanal: %w", err)
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

func (r *weeklyMetricRepository) UpsertMany(ctx context.Context, entries []*domain.WeeklyMetricEntry) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			metricsJSON, err := json.Marshal(entry.Metrics)
			if err != nil {
				return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
			}

			query, args, err := squirrel.StatementBuilder.
				Insert("weekly_metrics").
				Columns("entity_id", "parent_id", "level", "week_start", "week_end", "metrics").
				Values(
					entry.EntityID,
					entry.ParentID,
					string(entry.Level),
					entry.WeekStart.Format("2006-01-02"),
					entry.WeekEnd.Format("2006-01-02"),
					metricsJSON,
				).
				Suffix(`
					ON CONFLICT (entity_id, week_start) DO UPDATE SET
						parent_id = EXCLUDED.parent_id,
						level = EXCLUDED.level,
						week_end = EXCLUDED.week_end,
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
