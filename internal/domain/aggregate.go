package domain

import "time"

// MetricsSummary é o bloco de totais do dashboard. TotalProfit considera
// apenas receita menos gasto de anúncio; NetProfit desconta também os custos
// customizados prorrateados.
type MetricsSummary struct {
	TotalSpend       float64 `json:"total_spend"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalProfit      float64 `json:"total_profit"`
	NetProfit        float64 `json:"net_profit"`
	ROAS             float64 `json:"roas"`
	TotalPurchases   int64   `json:"total_purchases"`
	TotalImpressions int64   `json:"total_impressions"`
	TotalClicks      int64   `json:"total_clicks"`
}

type CountrySummary struct {
	CountryCode string  `json:"country_code"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Profit      float64 `json:"profit"`
	ROAS        float64 `json:"roas"`
	Purchases   int64   `json:"purchases"`
}

type CampaignSummary struct {
	CampaignID   string  `json:"campaign_id"`
	CampaignName string  `json:"campaign_name"`
	Spend        float64 `json:"spend"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
}

// PlatformBreakdown mantém o total da plataforma sempre visível; a lista de
// campanhas é esvaziada com Gated=true quando o plano não inclui P&L por
// campanha
type PlatformBreakdown struct {
	Platform   Platform          `json:"platform"`
	TotalSpend float64           `json:"total_spend"`
	Campaigns  []CampaignSummary `json:"campaigns"`
	Gated      bool              `json:"gated"`
}

type TimeSeriesPoint struct {
	Date    time.Time `json:"date"`
	Spend   float64   `json:"spend"`
	Revenue float64   `json:"revenue"`
	Profit  float64   `json:"profit"`
}

// MetricsResponse é o payload completo do dashboard para uma janela
type MetricsResponse struct {
	Summary            MetricsSummary                 `json:"summary"`
	Platforms          map[Platform]PlatformBreakdown `json:"platforms"`
	Countries          []CountrySummary               `json:"countries"`
	CountryCampaigns   map[string][]CampaignSummary   `json:"country_campaigns"`
	TimeSeries         []TimeSeriesPoint              `json:"time_series"`
	CustomCosts        CostProration                  `json:"custom_costs"`
	UnattributedSpend  float64                        `json:"unattributed_spend"`
	DataRetentionLimit *time.Time                     `json:"data_retention_limit,omitempty"`
	StartDate          time.Time                      `json:"start_date"`
	EndDate            time.Time                      `json:"end_date"`
}
