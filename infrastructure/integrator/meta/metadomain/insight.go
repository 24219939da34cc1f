package metadomain

// InsightsResponse é a resposta do endpoint de insights do Meta com nível
// de campanha, breakdown por país e incremento diário
type InsightsResponse struct {
	Data   []CampaignInsight `json:"data"`
	Paging Paging            `json:"paging"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// CampaignInsight é uma linha de insight; o Meta serializa as métricas
// numéricas como string
type CampaignInsight struct {
	DateStart    string `json:"date_start"`
	DateStop     string `json:"date_stop"`
	Country      string `json:"country"`
	CampaignID   string `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Spend        string `json:"spend"`
	Impressions  string `json:"impressions"`
	Clicks       string `json:"clicks"`
}
