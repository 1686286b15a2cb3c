package meta

import (
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-insights-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-insights-engine/internal/domain"
)

const linkClickActionType = "link_click"

// ExtractConversions localiza a ação de conversão nas listas de actions e
// action_values e devolve contagem e valor por janela de atribuição. Nunca falha
// por campo ausente: toda janela reconhecida sai preenchida, zerada se preciso.
func ExtractConversions(
	actions []metadomain.Action,
	actionValues []metadomain.Action,
	conversionActionType string,
) map[domain.AttributionWindow]domain.ConversionFigure {
	figures := make(map[domain.AttributionWindow]domain.ConversionFigure, len(domain.AttributionWindows()))
	for _, w := range domain.AttributionWindows() {
		figures[w] = domain.ConversionFigure{}
	}

	action := findAction(actions, conversionActionType)
	value := findAction(actionValues, conversionActionType)

	for _, w := range domain.AttributionWindows() {
		fig := domain.ConversionFigure{}

		if action != nil {
			fig.Count = parseInt(windowField(action, w))
		}
		if value != nil {
			fig.Value = parseFloat(windowField(value, w))
		}

		figures[w] = fig
	}

	// Dado upstream anômalo: a janela default é um superconjunto da janela de
	// clique, então count(default) >= count(7d_click) deveria valer sempre.
	// Registrar sem corrigir: a interpretação correta é ambígua.
	if figures[domain.AttributionWeekClick].Count > figures[domain.AttributionDefault].Count {
		logrus.WithFields(logrus.Fields{
			"action_type":   conversionActionType,
			"default_count": figures[domain.AttributionDefault].Count,
			"click_count":   figures[domain.AttributionWeekClick].Count,
		}).Warn("insights: 7d_click conversions exceed default window, upstream data anomaly")
	}

	return figures
}

// FactoryCanonicalMetrics converte um registro bruto de insights no objeto
// canônico de métricas. Este é o único ponto do sistema que transforma conversões
// por janela em ROAS; todos os caminhos (consulta ao vivo, backfill, agregação)
// passam por aqui para que as definições nunca divirjam.
func FactoryCanonicalMetrics(raw *metadomain.RawInsight, conversionActionType string) *domain.CanonicalMetrics {
	if raw == nil {
		return nil
	}

	m := domain.NewCanonicalMetrics()
	m.Spend = parseFloat(raw.Spend)
	m.Impressions = parseInt(raw.Impressions)
	m.Reach = parseInt(raw.Reach)
	m.Clicks = parseInt(raw.Clicks)
	m.LinkClicks = sumActionCount(raw.Actions, linkClickActionType)
	m.Conversions = ExtractConversions(raw.Actions, raw.ActionValues, conversionActionType)
	m.DeriveRatios()

	return m
}

// EntityID devolve o identificador da entidade conforme o nível consultado
func EntityID(raw *metadomain.RawInsight, level domain.EntityLevel) string {
	switch level {
	case domain.LevelAd:
		return raw.AdID
	case domain.LevelCampaign:
		return raw.CampaignID
	default:
		return raw.AccountID
	}
}

// ParentID devolve o identificador do nível imediatamente acima, quando houver
func ParentID(raw *metadomain.RawInsight, level domain.EntityLevel) string {
	switch level {
	case domain.LevelAd:
		return raw.CampaignID
	case domain.LevelCampaign:
		return raw.AccountID
	default:
		return ""
	}
}

func findAction(actions []metadomain.Action, actionType string) *metadomain.Action {
	for i := range actions {
		if actions[i].ActionType == actionType {
			return &actions[i]
		}
	}
	return nil
}

func windowField(action *metadomain.Action, window domain.AttributionWindow) string {
	switch window {
	case domain.AttributionOneDayClick:
		return action.OneDayClick
	case domain.AttributionWeekClick:
		return action.SevenDayClick
	case domain.AttributionOneDayView:
		return action.OneDayView
	default:
		return action.Value
	}
}

func sumActionCount(actions []metadomain.Action, actionType string) int64 {
	var total int64
	for i := range actions {
		if actions[i].ActionType == actionType {
			total += parseInt(actions[i].Value)
		}
	}
	return total
}

// parseFloat converte defensivamente: campo ausente ou malformado vira zero.
// Um campo ruim não pode invalidar a sincronização do dia inteiro.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logrus.WithField("value", s).Warn("insights: malformed numeric field, defaulting to zero")
		return 0
	}

	if v < 0 {
		return 0
	}
	return v
}

func parseInt(s string) int64 {
	if s == "" {
		return 0
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// A API ocasionalmente devolve inteiros com casas decimais
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			logrus.WithField("value", s).Warn("insights: malformed numeric field, defaulting to zero")
			return 0
		}
		v = int64(f)
	}

	if v < 0 {
		return 0
	}
	return v
}
