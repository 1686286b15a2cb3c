package domain

import (
	"github.com/vfg2006/ads-insights-engine/pkg/utils"
)

// AttributionWindow identifica a janela de atribuição de uma conversão
type AttributionWindow string

const (
	AttributionDefault     AttributionWindow = "default"
	AttributionOneDayClick AttributionWindow = "1d_click"
	AttributionWeekClick   AttributionWindow = "7d_click"
	AttributionOneDayView  AttributionWindow = "1d_view"
)

// AttributionWindows retorna todas as janelas de atribuição reconhecidas pelo sistema
func AttributionWindows() []AttributionWindow {
	return []AttributionWindow{
		AttributionDefault,
		AttributionOneDayClick,
		AttributionWeekClick,
		AttributionOneDayView,
	}
}

// ConversionFigure representa contagem e valor monetário de conversões em uma janela
type ConversionFigure struct {
	Count int64   `json:"count"`
	Value float64 `json:"value"`
}

// CanonicalMetrics é o objeto de valor canônico de métricas de uma entidade em um período.
// Os campos derivados (CTR, CPC, CPM, ROAS, taxa de conversão) são sempre recalculados
// a partir dos campos aditivos, nunca somados ou copiados de outra origem.
type CanonicalMetrics struct {
	Spend          float64                                `json:"spend"`
	Impressions    int64                                  `json:"impressions"`
	Reach          int64                                  `json:"reach"`
	Frequency      float64                                `json:"frequency"`
	Clicks         int64                                  `json:"clicks"`
	LinkClicks     int64                                  `json:"link_clicks"`
	CTR            float64                                `json:"ctr"`
	CPC            float64                                `json:"cpc"`
	CPM            float64                                `json:"cpm"`
	ConversionRate float64                                `json:"conversion_rate"`
	Conversions    map[AttributionWindow]ConversionFigure `json:"conversions"`
	ROAS           map[AttributionWindow]float64          `json:"roas"`
}

// NewCanonicalMetrics cria métricas zeradas com todas as janelas preenchidas
func NewCanonicalMetrics() *CanonicalMetrics {
	m := &CanonicalMetrics{
		Conversions: make(map[AttributionWindow]ConversionFigure, len(AttributionWindows())),
		ROAS:        make(map[AttributionWindow]float64, len(AttributionWindows())),
	}
	for _, w := range AttributionWindows() {
		m.Conversions[w] = ConversionFigure{}
		m.ROAS[w] = 0
	}
	return m
}

// DeriveRatios recalcula todos os campos derivados a partir dos campos aditivos.
// Divisões por zero resultam em zero, nunca em erro.
func (m *CanonicalMetrics) DeriveRatios() {
	if m.Impressions > 0 {
		m.CTR = utils.RoundWithTwoDecimalPlace(float64(m.Clicks) / float64(m.Impressions) * 100)
		m.CPM = utils.RoundWithTwoDecimalPlace(m.Spend / float64(m.Impressions) * 1000)
	} else {
		m.CTR = 0
		m.CPM = 0
	}

	if m.Clicks > 0 {
		m.CPC = utils.RoundWithTwoDecimalPlace(m.Spend / float64(m.Clicks))
		m.ConversionRate = utils.RoundWithTwoDecimalPlace(
			float64(m.Conversions[AttributionDefault].Count) / float64(m.Clicks) * 100,
		)
	} else {
		m.CPC = 0
		m.ConversionRate = 0
	}

	if m.Reach > 0 {
		m.Frequency = utils.RoundWithTwoDecimalPlace(float64(m.Impressions) / float64(m.Reach))
	} else {
		m.Frequency = 0
	}

	for _, w := range AttributionWindows() {
		if m.Spend > 0 {
			m.ROAS[w] = m.Conversions[w].Value / m.Spend
		} else {
			m.ROAS[w] = 0
		}
	}
}

// ReduceMetrics soma os campos aditivos de um conjunto de métricas diárias e
// recalcula os derivados a partir das somas. Somar razões diárias seria um bug
// de corretude: sum(value)/sum(spend) difere da média dos ROAS diários.
func ReduceMetrics(list []*CanonicalMetrics) *CanonicalMetrics {
	total := NewCanonicalMetrics()

	for _, m := range list {
		if m == nil {
			continue
		}

		total.Spend += m.Spend
		total.Impressions += m.Impressions
		total.Reach += m.Reach
		total.Clicks += m.Clicks
		total.LinkClicks += m.LinkClicks

		for _, w := range AttributionWindows() {
			fig := total.Conversions[w]
			fig.Count += m.Conversions[w].Count
			fig.Value += m.Conversions[w].Value
			total.Conversions[w] = fig
		}
	}

	total.DeriveRatios()
	return total
}
