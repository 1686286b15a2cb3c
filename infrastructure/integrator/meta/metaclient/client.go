package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-engine/internal/config"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// InsightOptions são os parâmetros opcionais de uma consulta de insights
type InsightOptions struct {
	Breakdowns     []string
	FilterEntityID string
}

// Client define a interface de acesso ao endpoint de insights da API do Meta
type Client interface {
	GetInsights(level domain.EntityLevel, filters *domain.InsightFilters, opts *InsightOptions) ([]metadomain.RawInsight, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second,
		},
	}
}
