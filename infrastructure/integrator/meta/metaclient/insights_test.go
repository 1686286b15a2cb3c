package metaclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-engine/internal/config"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
)

func newTestClient(server *httptest.Server) *MetaClient {
	return &MetaClient{
		Cfg: &config.Config{
			Meta: config.Meta{
				URL:         server.URL,
				AccountID:   "123",
				AccessToken: "token",
				PageSize:    25,
				MaxPages:    3,
			},
		},
		httpClient: server.Client(),
	}
}

func testFilters() *domain.InsightFilters {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return &domain.InsightFilters{StartDate: &day, EndDate: &day}
}

func TestGetInsights_SegueCursoresEEnviaJanelasDeAtribuicao(t *testing.T) {
	var requests int
	var firstQuery url.Values

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			firstQuery = r.URL.Query()
		}

		page := metadomain.InsightsResponse{
			Data: []metadomain.RawInsight{
				{AccountID: "acc1", CampaignID: fmt.Sprintf("camp%d", requests)},
			},
		}
		if requests < 3 {
			page.Paging.Next = fmt.Sprintf("%s/?cursor=%d", server.URL, requests+1)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client := newTestClient(server)

	insights, err := client.GetInsights(domain.LevelCampaign, testFilters(), nil)

	assert.NoError(t, err)
	assert.Len(t, insights, 3)
	assert.Equal(t, 3, requests)
	assert.Equal(t, "camp1", insights[0].CampaignID)
	assert.Equal(t, "camp3", insights[2].CampaignID)

	// A lista completa de janelas de atribuição acompanha toda consulta
	assert.Equal(t, "default,1d_click,7d_click,1d_view", firstQuery.Get("action_attribution_windows"))
	assert.Equal(t, "campaign", firstQuery.Get("level"))
	assert.Equal(t, "1", firstQuery.Get("time_increment"))
	assert.Contains(t, firstQuery.Get("filtering"), `"field":"spend"`)
	assert.Equal(t, `{"since":"2024-06-01","until":"2024-06-01"}`, firstQuery.Get("time_range"))
}

func TestGetInsights_LimiteDePaginacao(t *testing.T) {
	// O servidor nunca esgota os cursores; o cliente deve desistir no limite
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := metadomain.InsightsResponse{
			Data: []metadomain.RawInsight{{AccountID: "acc1"}},
		}
		page.Paging.Next = server.URL + "/?cursor=proxima"

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client := newTestClient(server)

	insights, err := client.GetInsights(domain.LevelAccount, testFilters(), nil)

	assert.Nil(t, insights)

	var pagErr *metadomain.ErrPaginationExceeded
	assert.ErrorAs(t, err, &pagErr)
	assert.Equal(t, 3, pagErr.MaxPages)
}

func TestGetInsights_ClassificacaoDeRejeicoes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		retryable  bool
		code       int
	}{
		{
			name:       "Limite de requisições (código 4) permite nova tentativa",
			statusCode: http.StatusBadRequest,
			body:       `{"error":{"message":"Application request limit reached","type":"OAuthException","code":4,"fbtrace_id":"abc"}}`,
			retryable:  true,
			code:       4,
		},
		{
			name:       "Parâmetro inválido (código 100) é rejeição permanente",
			statusCode: http.StatusBadRequest,
			body:       `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100,"fbtrace_id":"def"}}`,
			retryable:  false,
			code:       100,
		},
		{
			name:       "Erro de servidor sem envelope permite nova tentativa",
			statusCode: http.StatusInternalServerError,
			body:       `upstream unavailable`,
			retryable:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(server)

			_, err := client.GetInsights(domain.LevelAd, testFilters(), nil)

			var apiErr *metadomain.APIError
			assert.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.statusCode, apiErr.StatusCode)
			assert.Equal(t, tt.retryable, apiErr.Retryable())

			if tt.code != 0 {
				assert.Equal(t, tt.code, apiErr.Details.Code)
			}
		})
	}
}
