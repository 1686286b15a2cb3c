package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-insights-engine/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-engine/pkg/apiErrors"
	"github.com/vfg2006/ads-insights-engine/pkg/log"
	"github.com/vfg2006/ads-insights-engine/pkg/utils"
)

func GetDailyMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("entity_id", id).Info("insights: fetching daily metrics by entity ID")

		date, err := utils.ParseDate(r.URL.Query().Get("date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"date":      r.URL.Query().Get("date"),
				"error":     err.Error(),
			}).Warn("insights: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		entry, err := service.GetDailyMetrics(id, *date)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"date":      date.Format(time.DateOnly),
				"error":     err.Error(),
			}).Error("insights: failed to get daily metrics for entity")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		if entry == nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"date":      date.Format(time.DateOnly),
			}).Info("insights: no daily metrics found for entity and date")

			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhuma métrica encontrada para a entidade e data informadas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("insights: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetAggregateMetrics(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("entity_id", id).Info("insights: fetching aggregate metrics by entity ID")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id":  id,
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("insights: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"end_date":  r.URL.Query().Get("end_date"),
				"error":     err.Error(),
			}).Warn("insights: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"entity_id":  id,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Debug("insights: aggregating metrics for range")

		aggregated, err := service.GetAggregate(id, *startDate, *endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"entity_id":  id,
				"start_date": startDate.Format(time.DateOnly),
				"end_date":   endDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("insights: failed to aggregate metrics for entity")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(aggregated); err != nil {
			logger.WithFields(log.Fields{
				"entity_id": id,
				"error":     err.Error(),
			}).Error("insights: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
