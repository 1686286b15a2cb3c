package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCanonicalMetrics(t *testing.T) {
	m := NewCanonicalMetrics()

	// Todas as janelas de atribuição presentes e zeradas
	assert.Len(t, m.Conversions, 4)
	assert.Len(t, m.ROAS, 4)
	for _, w := range AttributionWindows() {
		fig, ok := m.Conversions[w]
		assert.True(t, ok, "janela %s ausente", w)
		assert.Zero(t, fig.Count)
		assert.Zero(t, fig.Value)
		assert.Zero(t, m.ROAS[w])
	}
}

func TestDeriveRatios(t *testing.T) {
	tests := []struct {
		name     string
		metrics  *CanonicalMetrics
		validate func(t *testing.T, m *CanonicalMetrics)
	}{
		{
			name: "Métricas completas - deve calcular todas as razões a partir dos totais",
			metrics: func() *CanonicalMetrics {
				m := NewCanonicalMetrics()
				m.Spend = 200.0
				m.Impressions = 10000
				m.Reach = 5000
				m.Clicks = 400
				m.Conversions[AttributionDefault] = ConversionFigure{Count: 20, Value: 800.0}
				m.Conversions[AttributionWeekClick] = ConversionFigure{Count: 15, Value: 600.0}
				return m
			}(),
			validate: func(t *testing.T, m *CanonicalMetrics) {
				assert.Equal(t, 4.0, m.CTR)  // 400/10000*100
				assert.Equal(t, 0.5, m.CPC)  // 200/400
				assert.Equal(t, 20.0, m.CPM) // 200/10000*1000
				assert.Equal(t, 2.0, m.Frequency)
				assert.Equal(t, 5.0, m.ConversionRate) // 20/400*100
				assert.Equal(t, 4.0, m.ROAS[AttributionDefault])
				assert.Equal(t, 3.0, m.ROAS[AttributionWeekClick])
			},
		},
		{
			name: "Gasto zero com conversões - ROAS deve ser zero, nunca erro de divisão",
			metrics: func() *CanonicalMetrics {
				m := NewCanonicalMetrics()
				m.Spend = 0
				m.Impressions = 1000
				m.Clicks = 10
				m.Conversions[AttributionDefault] = ConversionFigure{Count: 3, Value: 150.0}
				return m
			}(),
			validate: func(t *testing.T, m *CanonicalMetrics) {
				for _, w := range AttributionWindows() {
					assert.Zero(t, m.ROAS[w])
				}
				assert.Zero(t, m.CPM)
				assert.Equal(t, 1.0, m.CTR)
			},
		},
		{
			name:    "Métricas totalmente zeradas - todos os derivados zerados",
			metrics: NewCanonicalMetrics(),
			validate: func(t *testing.T, m *CanonicalMetrics) {
				assert.Zero(t, m.CTR)
				assert.Zero(t, m.CPC)
				assert.Zero(t, m.CPM)
				assert.Zero(t, m.Frequency)
				assert.Zero(t, m.ConversionRate)
			},
		},
		{
			name: "Impressões sem cliques - CTR zero e CPC zero",
			metrics: func() *CanonicalMetrics {
				m := NewCanonicalMetrics()
				m.Spend = 50.0
				m.Impressions = 2000
				return m
			}(),
			validate: func(t *testing.T, m *CanonicalMetrics) {
				assert.Zero(t, m.CTR)
				assert.Zero(t, m.CPC)
				assert.Equal(t, 25.0, m.CPM)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.metrics.DeriveRatios()
			tt.validate(t, tt.metrics)
		})
	}
}

func TestReduceMetrics(t *testing.T) {
	// Sete dias idênticos: 100 de gasto, 2000 impressões, 50 cliques e
	// conversões de 200 por dia
	days := make([]*CanonicalMetrics, 0, 7)
	for i := 0; i < 7; i++ {
		m := NewCanonicalMetrics()
		m.Spend = 100.0
		m.Impressions = 2000
		m.Reach = 1000
		m.Clicks = 50
		m.LinkClicks = 30
		m.Conversions[AttributionDefault] = ConversionFigure{Count: 2, Value: 200.0}
		m.DeriveRatios()
		days = append(days, m)
	}

	total := ReduceMetrics(days)

	assert.Equal(t, 700.0, total.Spend)
	assert.Equal(t, int64(14000), total.Impressions)
	assert.Equal(t, int64(7000), total.Reach)
	assert.Equal(t, int64(350), total.Clicks)
	assert.Equal(t, int64(210), total.LinkClicks)
	assert.Equal(t, int64(14), total.Conversions[AttributionDefault].Count)
	assert.Equal(t, 1400.0, total.Conversions[AttributionDefault].Value)

	// Razões recalculadas dos totais, idênticas às diárias neste caso uniforme
	assert.Equal(t, 2.5, total.CTR)
	assert.Equal(t, 2.0, total.CPC)
	assert.Equal(t, 50.0, total.CPM)
	assert.Equal(t, 2.0, total.ROAS[AttributionDefault])
}

func TestReduceMetrics_RatioOfSumsNotAverageOfRatios(t *testing.T) {
	// Dia 1: gasto alto, retorno baixo. Dia 2: gasto baixo, retorno alto.
	day1 := NewCanonicalMetrics()
	day1.Spend = 900.0
	day1.Conversions[AttributionDefault] = ConversionFigure{Count: 1, Value: 90.0}
	day1.DeriveRatios()

	day2 := NewCanonicalMetrics()
	day2.Spend = 100.0
	day2.Conversions[AttributionDefault] = ConversionFigure{Count: 1, Value: 900.0}
	day2.DeriveRatios()

	assert.Equal(t, 0.1, day1.ROAS[AttributionDefault])
	assert.Equal(t, 9.0, day2.ROAS[AttributionDefault])

	total := ReduceMetrics([]*CanonicalMetrics{day1, day2})

	// sum(value)/sum(spend) = 990/1000, não a média das razões diárias (4.55)
	assert.InDelta(t, 0.99, total.ROAS[AttributionDefault], 1e-9)
}

func TestReduceMetrics_EmptyAndNilEntries(t *testing.T) {
	total := ReduceMetrics(nil)
	assert.NotNil(t, total)
	assert.Zero(t, total.Spend)
	assert.Len(t, total.Conversions, 4)

	total = ReduceMetrics([]*CanonicalMetrics{nil, nil})
	assert.Zero(t, total.Impressions)
	for _, w := range AttributionWindows() {
		assert.Zero(t, total.ROAS[w])
	}
}
