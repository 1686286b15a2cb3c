package domain

import (
	"time"
)

// SyncStatus representa o estado de uma tentativa de sincronização
type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusSucceeded SyncStatus = "succeeded"
	SyncStatusPartial   SyncStatus = "partial"
	SyncStatusFailed    SyncStatus = "failed"
)

// Tipos de sincronização registrados no log de tentativas
const (
	SyncTypeDaily    = "daily"
	SyncTypeBackfill = "backfill"
	SyncTypeWeekly   = "weekly"
	SyncTypeMonthly  = "monthly"
)

// SyncAttempt é uma linha do log de tentativas de sincronização (append-only).
// Após atingir um status terminal a linha não é mais alterada.
type SyncAttempt struct {
	AttemptID      string      `json:"attempt_id"`
	SyncType       string      `json:"sync_type"`
	Level          EntityLevel `json:"level"`
	StartDate      time.Time   `json:"start_date"`
	EndDate        time.Time   `json:"end_date"`
	Status         SyncStatus  `json:"status"`
	EntitiesSynced int         `json:"entities_synced"`
	Errors         []string    `json:"errors,omitempty"`
	StartedAt      time.Time   `json:"started_at"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
}

// SyncDayResult é o resultado estruturado de uma sincronização de um dia
type SyncDayResult struct {
	Date           time.Time   `json:"date"`
	Level          EntityLevel `json:"level"`
	Status         SyncStatus  `json:"status"`
	EntitiesSynced int         `json:"entities_synced"`
	Error          string      `json:"error,omitempty"`
}

// BackfillStatus representa o estado da máquina de estados do backfill
type BackfillStatus string

const (
	BackfillStatusNotStarted BackfillStatus = "not_started"
	BackfillStatusRunning    BackfillStatus = "running"
	BackfillStatusCompleted  BackfillStatus = "completed"
	BackfillStatusFailed     BackfillStatus = "failed"
)

// BackfillProgress é o snapshot de progresso de um backfill. Um backfill que
// termina com erros pontuais reporta status "completed" com a lista de erros
// preenchida; o chamador precisa inspecionar os dois campos.
type BackfillProgress struct {
	Status        BackfillStatus `json:"status"`
	TotalDays     int            `json:"total_days"`
	CompletedDays int            `json:"completed_days"`
	CurrentDate   string         `json:"current_date,omitempty"`
	StartedAt     *time.Time     `json:"started_at,omitempty"`
	Errors        []string       `json:"errors"`
}
