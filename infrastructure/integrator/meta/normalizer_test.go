package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
)

func TestExtractConversions(t *testing.T) {
	tests := []struct {
		name         string
		actions      []metadomain.Action
		actionValues []metadomain.Action
		validate     func(t *testing.T, figures map[domain.AttributionWindow]domain.ConversionFigure)
	}{
		{
			name: "Conversões com todas as janelas preenchidas",
			actions: []metadomain.Action{
				{ActionType: "purchase", Value: "10", OneDayClick: "6", SevenDayClick: "9", OneDayView: "1"},
			},
			actionValues: []metadomain.Action{
				{ActionType: "purchase", Value: "500.50", OneDayClick: "300.00", SevenDayClick: "450.00", OneDayView: "50.50"},
			},
			validate: func(t *testing.T, figures map[domain.AttributionWindow]domain.ConversionFigure) {
				assert.Equal(t, int64(10), figures[domain.AttributionDefault].Count)
				assert.Equal(t, 500.50, figures[domain.AttributionDefault].Value)
				assert.Equal(t, int64(6), figures[domain.AttributionOneDayClick].Count)
				assert.Equal(t, 300.00, figures[domain.AttributionOneDayClick].Value)
				assert.Equal(t, int64(9), figures[domain.AttributionWeekClick].Count)
				assert.Equal(t, int64(1), figures[domain.AttributionOneDayView].Count)
			},
		},
		{
			name:         "Dia sem conversões - todas as janelas presentes e zeradas",
			actions:      nil,
			actionValues: nil,
			validate: func(t *testing.T, figures map[domain.AttributionWindow]domain.ConversionFigure) {
				assert.Len(t, figures, 4)
				for _, w := range domain.AttributionWindows() {
					fig, ok := figures[w]
					assert.True(t, ok, "janela %s ausente", w)
					assert.Zero(t, fig.Count)
					assert.Zero(t, fig.Value)
				}
			},
		},
		{
			name: "Janelas sem sub-campos - apenas a janela default preenchida",
			actions: []metadomain.Action{
				{ActionType: "purchase", Value: "5"},
			},
			actionValues: []metadomain.Action{
				{ActionType: "purchase", Value: "250.00"},
			},
			validate: func(t *testing.T, figures map[domain.AttributionWindow]domain.ConversionFigure) {
				assert.Equal(t, int64(5), figures[domain.AttributionDefault].Count)
				assert.Equal(t, 250.00, figures[domain.AttributionDefault].Value)
				assert.Zero(t, figures[domain.AttributionOneDayClick].Count)
				assert.Zero(t, figures[domain.AttributionWeekClick].Count)
				assert.Zero(t, figures[domain.AttributionOneDayView].Count)
			},
		},
		{
			name: "Outros tipos de ação ignorados",
			actions: []metadomain.Action{
				{ActionType: "link_click", Value: "99"},
				{ActionType: "add_to_cart", Value: "40"},
				{ActionType: "purchase", Value: "3"},
			},
			validate: func(t *testing.T, figures map[domain.AttributionWindow]domain.ConversionFigure) {
				assert.Equal(t, int64(3), figures[domain.AttributionDefault].Count)
			},
		},
		{
			name: "Anomalia upstream - 7d_click maior que default é preservado, não corrigido",
			actions: []metadomain.Action{
				{ActionType: "purchase", Value: "4", SevenDayClick: "7"},
			},
			validate: func(t *testing.T, figures map[domain.AttributionWindow]domain.ConversionFigure) {
				assert.Equal(t, int64(4), figures[domain.AttributionDefault].Count)
				assert.Equal(t, int64(7), figures[domain.AttributionWeekClick].Count)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			figures := ExtractConversions(tt.actions, tt.actionValues, "purchase")
			tt.validate(t, figures)
		})
	}
}

func TestFactoryCanonicalMetrics(t *testing.T) {
	raw := &metadomain.RawInsight{
		AccountID:   "act_123",
		CampaignID:  "camp_1",
		AdID:        "ad_1",
		Spend:       "150.75",
		Impressions: "3000",
		Reach:       "1500",
		Clicks:      "60",
		Actions: []metadomain.Action{
			{ActionType: "link_click", Value: "45"},
			{ActionType: "purchase", Value: "3", OneDayClick: "2"},
		},
		ActionValues: []metadomain.Action{
			{ActionType: "purchase", Value: "301.50", OneDayClick: "200.00"},
		},
	}

	m := FactoryCanonicalMetrics(raw, "purchase")

	assert.Equal(t, 150.75, m.Spend)
	assert.Equal(t, int64(3000), m.Impressions)
	assert.Equal(t, int64(1500), m.Reach)
	assert.Equal(t, int64(60), m.Clicks)
	assert.Equal(t, int64(45), m.LinkClicks)
	assert.Equal(t, int64(3), m.Conversions[domain.AttributionDefault].Count)
	assert.Equal(t, 301.50, m.Conversions[domain.AttributionDefault].Value)

	// Derivados calculados na normalização
	assert.Equal(t, 2.0, m.CTR)
	assert.InDelta(t, 2.51, m.CPC, 1e-9)
	assert.InDelta(t, 50.25, m.CPM, 1e-9)
	assert.Equal(t, 2.0, m.Frequency)
	assert.Equal(t, 2.0, m.ROAS[domain.AttributionDefault])
	assert.InDelta(t, 200.00/150.75, m.ROAS[domain.AttributionOneDayClick], 1e-9)
}

func TestFactoryCanonicalMetrics_MalformedFields(t *testing.T) {
	raw := &metadomain.RawInsight{
		AccountID:   "act_123",
		Spend:       "abc",
		Impressions: "",
		Reach:       "-10",
		Clicks:      "12.0",
	}

	m := FactoryCanonicalMetrics(raw, "purchase")

	// Campo malformado ou negativo vira zero; inteiro com casas decimais é aceito
	assert.Zero(t, m.Spend)
	assert.Zero(t, m.Impressions)
	assert.Zero(t, m.Reach)
	assert.Equal(t, int64(12), m.Clicks)
}

func TestFactoryCanonicalMetrics_NilInsight(t *testing.T) {
	assert.Nil(t, FactoryCanonicalMetrics(nil, "purchase"))
}

func TestEntityAndParentID(t *testing.T) {
	raw := &metadomain.RawInsight{
		AccountID:  "acc",
		CampaignID: "camp",
		AdID:       "ad",
	}

	assert.Equal(t, "acc", EntityID(raw, domain.LevelAccount))
	assert.Equal(t, "camp", EntityID(raw, domain.LevelCampaign))
	assert.Equal(t, "ad", EntityID(raw, domain.LevelAd))

	assert.Equal(t, "", ParentID(raw, domain.LevelAccount))
	assert.Equal(t, "acc", ParentID(raw, domain.LevelCampaign))
	assert.Equal(t, "camp", ParentID(raw, domain.LevelAd))
}
