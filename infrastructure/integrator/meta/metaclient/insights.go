package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
	"github.com/vfg2006/ads-insights-engine/pkg/log"
	"github.com/vfg2006/ads-insights-engine/pkg/metrics"
	"github.com/vfg2006/ads-insights-engine/pkg/utils"
)

const insightFields = "account_id,account_name,campaign_id,campaign_name,ad_id,ad_name," +
	"date_start,date_stop,spend,impressions,reach,frequency,clicks,actions,action_values"

// GetInsights consulta o endpoint de insights para um nível de entidade e período,
// seguindo os cursores de paginação até esgotar as páginas. A lista completa de
// janelas de atribuição é sempre enviada na requisição.
func (c *MetaClient) GetInsights(
	level domain.EntityLevel,
	filters *domain.InsightFilters,
	opts *InsightOptions,
) ([]metadomain.RawInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.Cfg.Meta.URL, c.Cfg.Meta.AccountID)

	params := url.Values{}
	params.Add("fields", insightFields)
	params.Add("level", string(level))
	params.Add("time_increment", "1")
	params.Add("action_attribution_windows", attributionWindowsParam())

	// O filtro de spend > 0 é aplicado no servidor para limitar o tamanho da resposta
	filtering := `[{"field":"spend","operator":"GREATER_THAN","value":0}]`
	if opts != nil && opts.FilterEntityID != "" {
		filtering = fmt.Sprintf(
			`[{"field":"spend","operator":"GREATER_THAN","value":0},{"field":"%s.id","operator":"IN","value":["%s"]}]`,
			string(level), opts.FilterEntityID,
		)
	}
	params.Add("filtering", filtering)
	params.Add("limit", fmt.Sprintf("%d", c.Cfg.Meta.PageSize))
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	timeRange := fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)
	params.Add("time_range", timeRange)

	if opts != nil && len(opts.Breakdowns) > 0 {
		params.Add("breakdowns", strings.Join(opts.Breakdowns, ","))
	}

	requestURL := baseURL + "?" + params.Encode()
	metrics.FetchRequestsTotal.WithLabelValues(string(level)).Inc()

	insights := make([]metadomain.RawInsight, 0)

	for page := 0; ; page++ {
		if page >= c.Cfg.Meta.MaxPages {
			logrus.WithFields(logrus.Fields{
				"level":     level,
				"max_pages": c.Cfg.Meta.MaxPages,
			}).Error("insights: pagination limit reached, aborting fetch")
			return nil, &metadomain.ErrPaginationExceeded{MaxPages: c.Cfg.Meta.MaxPages}
		}

		response, err := c.fetchPage(requestURL)
		if err != nil {
			return nil, err
		}

		metrics.FetchPagesTotal.Inc()
		insights = append(insights, response.Data...)

		if response.Paging.Next == "" {
			break
		}
		requestURL = response.Paging.Next
	}

	logrus.WithFields(logrus.Fields{
		"level":      level,
		"start_date": filters.StartDate.Format(time.DateOnly),
		"end_date":   filters.EndDate.Format(time.DateOnly),
		"records":    len(insights),
	}).Debug("insights: fetch completed")

	return insights, nil
}

// fetchPage executa uma requisição e decodifica uma página de resultados
func (c *MetaClient) fetchPage(requestURL string) (*metadomain.InsightsResponse, error) {
	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, &metadomain.FetchError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, &metadomain.FetchError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &metadomain.FetchError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &metadomain.APIError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}

		var errResponse metadomain.ErrorResponse
		if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Error.Message != "" {
			apiErr.Details = &errResponse.Error
		}

		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"retryable":   apiErr.Retryable(),
		}).Error("insights: api rejected the request")

		if log.IsDevelopment() {
			logrus.Debug("insights: api error body\n" + utils.PrettyJson(body))
		}

		return nil, apiErr
	}

	var response metadomain.InsightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, &metadomain.FetchError{Err: err}
	}

	return &response, nil
}

func attributionWindowsParam() string {
	windows := domain.AttributionWindows()
	out := make([]string, 0, len(windows))
	for _, w := range windows {
		out = append(out, string(w))
	}
	return strings.Join(out, ",")
}
