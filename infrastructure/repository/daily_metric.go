package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-insights-engine/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
)

const (
	dailyMetricsTable = "daily_metrics dm"
)

//go:generate mockgen -source=daily_metric.go -destination=mocks/daily_metric.go -package=mocks

type DailyMetricRepository interface {
	GetByEntityIDAndDate(entityID string, date time.Time) (*domain.DailyMetricEntry, error)
	GetByDateRange(entityID string, startDate, endDate time.Time) ([]*domain.DailyMetricEntry, error)
	ListByDateRange(startDate, endDate time.Time, level domain.EntityLevel) ([]*domain.DailyMetricEntry, error)
	ExistsForDate(date time.Time, level domain.EntityLevel) (bool, error)
	ReplaceDay(ctx context.Context, date time.Time, level domain.EntityLevel, entries []*domain.DailyMetricEntry) error
}

type dailyMetricRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

func (r *dailyMetricRepository) GetByEntityIDAndDate(entityID string, date time.Time) (*domain.DailyMetricEntry, error) {
	query, args, err := squirrel.
		Select("dm.id, dm.entity_id, dm.parent_id, dm.level, dm.date, dm.metrics, dm.created_at, dm.updated_at").
		From(dailyMetricsTable).
		Where(squirrel.Eq{"dm.entity_id": entityID, "dm.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := scanDailyEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica diária: %w", err)
	}

	return entry, nil
}

func (r *dailyMetricRepository) GetByDateRange(entityID string, startDate, endDate time.Time) ([]*domain.DailyMetricEntry, error) {
	query, args, err := squirrel.
		Select("dm.id, dm.entity_id, dm.parent_id, dm.level, dm.date, dm.metrics, dm.created_at, dm.updated_at").
		From(dailyMetricsTable).
		Where(squirrel.Eq{"dm.entity_id": entityID}).
		Where(squirrel.GtOrEq{"dm.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"dm.date": endDate.Format("2006-01-02")}).
		OrderBy("dm.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *dailyMetricRepository) ListByDateRange(startDate, endDate time.Time, level domain.EntityLevel) ([]*domain.DailyMetricEntry, error) {
	query, args, err := squirrel.
		Select("dm.id, dm.entity_id, dm.parent_id, dm.level, dm.date, dm.metrics, dm.created_at, dm.updated_at").
		From(dailyMetricsTable).
		Where(squirrel.Eq{"dm.level": string(level)}).
		Where(squirrel.GtOrEq{"dm.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"dm.date": endDate.Format("2006-01-02")}).
		OrderBy("dm.entity_id ASC, dm.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryEntries(query, args)
}

func (r *dailyMetricRepository) ExistsForDate(date time.Time, level domain.EntityLevel) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(dailyMetricsTable).
		Where(squirrel.Eq{"dm.date": date.Format("2006-01-02"), "dm.level": string(level)}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var one int
	err = r.conn.QueryRow(query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return true, nil
}

// ReplaceDay grava todas as linhas de um dia em uma única transação. Ou o dia
// inteiro é persistido, ou nada é: escrita parcial não é um estado aceitável
// para o snapshot diário.
func (r *dailyMetricRepository) ReplaceDay(
	ctx context.Context,
	date time.Time,
	level domain.EntityLevel,
	entries []*domain.DailyMetricEntry,
) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, entry := range entries {
			metricsJSON, err := json.Marshal(entry.Metrics)
			if err != nil {
				return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
			}

			query, args, err := squirrel.StatementBuilder.
				Insert("daily_metrics").
				Columns("entity_id", "parent_id", "level", "date", "metrics").
				Values(
					entry.EntityID,
					entry.ParentID,
					string(level),
					date.Format("2006-01-02"),
					metricsJSON,
				).
				Suffix(`
					ON CONFLICT (entity_id, date) DO UPDATE SET
						parent_id = EXCLUDED.parent_id,
						level = EXCLUDED.level,
						metrics = EXCLUDED.metrics,
						updated_at = NOW()
				`).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				if pqErr, ok := err.(*pq.Error); ok {
					return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
				}
				return fmt.Errorf("erro ao executar a query: %w", err)
			}
		}

		return nil
	})
}

func (r *dailyMetricRepository) queryEntries(query string, args []interface{}) ([]*domain.DailyMetricEntry, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.DailyMetricEntry, 0)
	for rows.Next() {
		entry, err := scanDailyEntryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func scanDailyEntry(row *sql.Row) (*domain.DailyMetricEntry, error) {
	entry := &domain.DailyMetricEntry{}
	var metricsJSON []byte
	var level string

	err := row.Scan(
		&entry.ID,
		&entry.EntityID,
		&entry.ParentID,
		&level,
		&entry.Date,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
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

func scanDailyEntryRows(rows *sql.Rows) (*domain.DailyMetricEntry, error) {
	entry := &domain.DailyMetricEntry{}
	var metricsJSON []byte
	var level string

	err := rows.Scan(
		&entry.ID,
		&entry.EntityID,
		&entry.ParentID,
		&level,
		&entry.Date,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
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
