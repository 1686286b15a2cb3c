package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Contadores de operação do motor de sincronização. Registrados no registry
// padrão para serem expostos via Handler().
var (
	FetchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insights_fetch_requests_total",
		Help: "Total de requisições de insights feitas à API da Meta, por nível.",
	}, []string{"level"})

	FetchPagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insights_fetch_pages_total",
		Help: "Total de páginas de insights consumidas da API da Meta.",
	})

	SyncDaysTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insights_sync_days_total",
		Help: "Total de dias sincronizados, por resultado.",
	}, []string{"status"})

	BackfillErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "insights_backfill_errors_total",
		Help: "Total de dias com erro durante operações de backfill.",
	})

	AggregationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "insights_aggregations_total",
		Help: "Total de agregações materializadas, por período.",
	}, []string{"period"})
)

// Handler expõe as métricas no formato do Prometheus.
func Handler() http.Handler {
	return promhttp.Handler()
}
