package handler

import (
	"net/http"

	"github.com/vfg2006/ads-insights-engine/infrastructure/repository"
	"github.com/vfg2006/ads-insights-engine/internal/api/handler/router"
	"github.com/vfg2006/ads-insights-engine/internal/syncer"
	"github.com/vfg2006/ads-insights-engine/internal/usecases/aggregating"
	"github.com/vfg2006/ads-insights-engine/internal/usecases/insighting"
	"github.com/vfg2006/ads-insights-engine/pkg/metrics"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/entities/:id/metrics/daily",
			Method:  http.MethodGet,
			Handler: GetDailyMetrics(service),
		},
		{
			Path:    "/v1/entities/:id/metrics/aggregate",
			Method:  http.MethodGet,
			Handler: GetAggregateMetrics(service),
		},
	}
}

func Sync(
	syncService *syncer.DailySyncService,
	orchestrator *syncer.BackfillOrchestrator,
	attemptRepo repository.SyncAttemptRepository,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync/daily",
			Method:  http.MethodPost,
			Handler: RunDailySync(syncService),
		},
		{
			Path:    "/v1/sync/attempts",
			Method:  http.MethodGet,
			Handler: ListSyncAttempts(attemptRepo),
		},
		{
			Path:    "/v1/backfill",
			Method:  http.MethodPost,
			Handler: StartBackfill(orchestrator),
		},
		{
			Path:    "/v1/backfill/status",
			Method:  http.MethodGet,
			Handler: GetBackfillStatus(orchestrator),
		},
	}
}

func Aggregations(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/aggregate/weekly",
			Method:  http.MethodPost,
			Handler: RunWeeklyAggregation(service),
		},
		{
			Path:    "/v1/aggregate/monthly",
			Method:  http.MethodPost,
			Handler: RunMonthlyAggregation(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
