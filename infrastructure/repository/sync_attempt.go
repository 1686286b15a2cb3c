package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-insights-engine/infrastructure/database/postgres"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"github.com/vfg2006/ads-insights-engine/pkg/utils"
)

//go:generate mockgen -source=sync_attempt.go -destination=mocks/sync_attempt.go -package=mocks

type SyncAttemptRepository interface {
	Create(attempt *domain.SyncAttempt) (string, error)
	Finish(attemptID string, status domain.SyncStatus, entitiesSynced int, errs []string) error
	GetByID(attemptID string) (*domain.SyncAttempt, error)
	ListRecent(syncType string, limit uint64) ([]*domain.SyncAttempt, error)
}

type syncAttemptRepository struct {
	conn *postgres.Connection
}

func NewSyncAttemptRepository(conn *postgres.Connection) SyncAttemptRepository {
	return &syncAttemptRepository{
		conn: conn,
	}
}

// Create registra o início de uma tentativa de sincronização com status
// "running" e devolve o identificador gerado.
func (r *syncAttemptRepository) Create(attempt *domain.SyncAttempt) (string, error) {
	attemptID, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar o ID da tentativa: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("sync_attempts").
		Columns("attempt_id", "sync_type", "level", "start_date", "end_date", "status", "started_at").
		Values(
			attemptID,
			string(attempt.SyncType),
			string(attempt.Level),
			attempt.StartDate.Format("2006-01-02"),
			attempt.EndDate.Format("2006-01-02"),
			string(domain.SyncStatusRunning),
			time.Now().UTC(),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return "", fmt.Errorf("erro ao executar a query: %w", err)
	}

	return attemptID, nil
}

func (r *syncAttemptRepository) Finish(attemptID string, status domain.SyncStatus, entitiesSynced int, errs []string) error {
	query, args, err := squirrel.StatementBuilder.
		Update("sync_attempts").
		Set("status", string(status)).
		Set("entities_synced", entitiesSynced).
		Set("errors", pq.StringArray(errs)).
		Set("completed_at", time.Now().UTC()).
		Where(squirrel.Eq{"attempt_id": attemptID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *syncAttemptRepository) GetByID(attemptID string) (*domain.SyncAttempt, error) {
	query, args, err := squirrel.
		Select("sa.attempt_id, sa.sync_type, sa.level, sa.start_date, sa.end_date, sa.status, sa.entities_synced, sa.errors, sa.started_at, sa.completed_at").
		From("sync_attempts sa").
		Where(squirrel.Eq{"sa.attempt_id": attemptID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	attempt, err := scanSyncAttempt(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear tentativa de sincronização: %w", err)
	}

	return attempt, nil
}

func (r *syncAttemptRepository) ListRecent(syncType string, limit uint64) ([]*domain.SyncAttempt, error) {
	builder := squirrel.
		Select("sa.attempt_id, sa.sync_type, sa.level, sa.start_date, sa.end_date, sa.status, sa.entities_synced, sa.errors, sa.started_at, sa.completed_at").
		From("sync_attempts sa").
		OrderBy("sa.started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	if syncType != "" {
		builder = builder.Where(squirrel.Eq{"sa.sync_type": syncType})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	attempts := make([]*domain.SyncAttempt, 0)
	for rows.Next() {
		attempt := &domain.SyncAttempt{}
		var syncType, level, status string
		var attemptErrs pq.StringArray

		err := rows.Scan(
			&attempt.AttemptID,
			&syncType,
			&level,
			&attempt.StartDate,
			&attempt.EndDate,
			&status,
			&attempt.EntitiesSynced,
			&attemptErrs,
			&attempt.StartedAt,
			&attempt.CompletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear tentativas de sincronização: %w", err)
		}

		attempt.SyncType = syncType
		attempt.Level = domain.EntityLevel(level)
		attempt.Status = domain.SyncStatus(status)
		attempt.Errors = attemptErrs
		attempts = append(attempts, attempt)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return attempts, nil
}

func scanSyncAttempt(row *sql.Row) (*domain.SyncAttempt, error) {
	attempt := &domain.SyncAttempt{}
	var syncType, level, status string
	var attemptErrs pq.StringArray

	err := row.Scan(
		&attempt.AttemptID,
		&syncType,
		&level,
		&attempt.StartDate,
		&attempt.EndDate,
		&status,
		&attempt.EntitiesSynced,
		&attemptErrs,
		&attempt.StartedAt,
		&attempt.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	attempt.SyncType = syncType
	attempt.Level = domain.EntityLevel(level)
	attempt.Status = domain.SyncStatus(status)
	attempt.Errors = attemptErrs

	return attempt, nil
}
