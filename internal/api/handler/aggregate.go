package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"github.com/vfg2006/ads-insights-engine/internal/usecases/aggregating"
	"github.com/vfg2006/ads-insights-engine/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-engine/pkg/log"
	"github.com/vfg2006/ads-insights-engine/pkg/utils"
)

type weeklyAggregationRequest struct {
	WeekStart string `json:"week_start"`
	Level     string `json:"level"`
}

type monthlyAggregationRequest struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Level string `json:"level"`
}

// RunWeeklyAggregation materializa os agregados de uma semana (segunda a domingo)
func RunWeeklyAggregation(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req weeklyAggregationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("aggregate: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		weekStart, err := utils.ParseDate(req.WeekStart)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		level := domain.EntityLevel(req.Level)
		if !domain.ValidLevel(level) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nível de entidade inválido. Valores aceitos: account, campaign, ad", nil)
			return
		}

		entities, err := service.AggregateWeek(r.Context(), *weekStart, level)
		if err != nil {
			logger.WithFields(log.Fields{
				"week_start": weekStart.Format(time.DateOnly),
				"level":      level,
				"error":      err.Error(),
			}).Error("aggregate: weekly aggregation failed")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":    "Agregação semanal concluída",
			"week_start": weekStart.Format(time.DateOnly),
			"level":      level,
			"entities":   entities,
		})
	})
}

// RunMonthlyAggregation materializa os agregados de um mês-calendário
func RunMonthlyAggregation(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req monthlyAggregationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("aggregate: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if req.Year < 2000 || req.Month < 1 || req.Month > 12 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Ano ou mês inválido", nil)
			return
		}

		level := domain.EntityLevel(req.Level)
		if !domain.ValidLevel(level) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nível de entidade inválido. Valores aceitos: account, campaign, ad", nil)
			return
		}

		entities, err := service.AggregateMonth(r.Context(), req.Year, time.Month(req.Month), level)
		if err != nil {
			logger.WithFields(log.Fields{
				"year":  req.Year,
				"month": req.Month,
				"level": level,
				"error": err.Error(),
			}).Error("aggregate: monthly aggregation failed")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":  "Agregação mensal concluída",
			"year":     req.Year,
			"month":    req.Month,
			"level":    level,
			"entities": entities,
		})
	})
}
