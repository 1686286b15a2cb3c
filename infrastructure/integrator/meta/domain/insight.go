package metadomain

// Action representa uma entrada das listas "actions" / "action_values" da API do
// Meta. Os subcampos de janela de atribuição só aparecem quando a requisição pede
// action_attribution_windows; todos os valores chegam como strings.
type Action struct {
	ActionType    string `json:"action_type"`
	Value         string `json:"value"`
	OneDayClick   string `json:"1d_click,omitempty"`
	SevenDayClick string `json:"7d_click,omitempty"`
	OneDayView    string `json:"1d_view,omitempty"`
}

// RawInsight é a forma bruta de um registro de insights retornado pela API.
// Efêmero: nunca é persistido como está, apenas normalizado.
type RawInsight struct {
	AccountID    string   `json:"account_id"`
	AccountName  string   `json:"account_name"`
	CampaignID   string   `json:"campaign_id"`
	CampaignName string   `json:"campaign_name"`
	AdID         string   `json:"ad_id"`
	AdName       string   `json:"ad_name"`
	DateStart    string   `json:"date_start"`
	DateStop     string   `json:"date_stop"`
	Spend        string   `json:"spend"`
	Impressions  string   `json:"impressions"`
	Reach        string   `json:"reach"`
	Frequency    string   `json:"frequency"`
	Clicks       string   `json:"clicks"`
	Actions      []Action `json:"actions"`
	ActionValues []Action `json:"action_values"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// InsightsResponse é a página de resposta do endpoint de insights
type InsightsResponse struct {
	Data   []RawInsight `json:"data"`
	Paging Paging       `json:"paging"`
}
