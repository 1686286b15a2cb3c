package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"github.com/vfg2006/ads-insights-engine/internal/syncer"
	"github.com/vfg2006/ads-insights-engine/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-engine/pkg/log"
	"github.com/vfg2006/ads-insights-engine/pkg/utils"
)

type dailySyncRequest struct {
	Date  string `json:"date"`
	Level string `json:"level"`
}

type backfillRequest struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Level        string `json:"level"`
	Force        bool   `json:"force"`
	DelaySeconds int    `json:"delay_seconds"`
}

// RunDailySync dispara a sincronização diária de uma data e nível específicos
func RunDailySync(service *syncer.DailySyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req dailySyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("sync: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		date, err := utils.ParseDate(req.Date)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  req.Date,
				"error": err.Error(),
			}).Warn("sync: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		level := domain.EntityLevel(req.Level)
		if !domain.ValidLevel(level) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nível de entidade inválido. Valores aceitos: account, campaign, ad", nil)
			return
		}

		logger.WithFields(log.Fields{
			"date":  date.Format(time.DateOnly),
			"level": level,
		}).Info("sync: running daily sync")

		result, err := service.SyncDay(r.Context(), *date, level)
		if err != nil {
			logger.WithFields(log.Fields{
				"date":  date.Format(time.DateOnly),
				"level": level,
				"error": err.Error(),
			}).Error("sync: daily sync failed")

			apiErrors.WriteError(w, apiErrors.ErrExternalService, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("sync: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// StartBackfill valida e dispara um backfill histórico em segundo plano
func StartBackfill(orchestrator *syncer.BackfillOrchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req backfillRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("backfill: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		startDate, err := utils.ParseDate(req.StartDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		endDate, err := utils.ParseDate(req.EndDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		level := domain.EntityLevel(req.Level)
		if !domain.ValidLevel(level) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nível de entidade inválido. Valores aceitos: account, campaign, ad", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
			"level":      level,
			"force":      req.Force,
		}).Info("backfill: starting historical backfill")

		// O backfill roda em segundo plano com contexto próprio, desvinculado
		// do ciclo de vida da requisição HTTP
		err = orchestrator.Start(context.Background(), syncer.BackfillRequest{
			StartDate:    *startDate,
			EndDate:      *endDate,
			Level:        level,
			Force:        req.Force,
			DelaySeconds: req.DelaySeconds,
		})
		if err != nil {
			switch {
			case errors.Is(err, syncer.ErrBackfillAlreadyRunning):
				apiErrors.WriteError(w, apiErrors.ErrBackfillConflict, err.Error(), nil)
			case errors.Is(err, syncer.ErrBackfillRangeInvalid):
				apiErrors.WriteError(w, apiErrors.ErrRangeTooLarge, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message":    "Backfill iniciado com sucesso",
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
			"level":      level,
		})
	})
}

// GetBackfillStatus retorna o progresso do backfill em andamento (ou do último)
func GetBackfillStatus(orchestrator *syncer.BackfillOrchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		progress := orchestrator.Status()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(progress); err != nil {
			logger.WithError(err).Error("backfill: failed to encode status response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ListSyncAttempts lista as tentativas de sincronização mais recentes
func ListSyncAttempts(attemptRepo syncAttemptLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := uint64(50)
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.ParseUint(rawLimit, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", nil)
				return
			}
			limit = parsed
		}

		syncType := r.URL.Query().Get("type")

		attempts, err := attemptRepo.ListRecent(syncType, limit)
		if err != nil {
			logger.WithError(err).Error("sync: failed to list sync attempts")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(attempts); err != nil {
			logger.WithError(err).Error("sync: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

type syncAttemptLister interface {
	ListRecent(syncType string, limit uint64) ([]*domain.SyncAttempt, error)
}
