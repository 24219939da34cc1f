package tiktokdomain

// ReportResponse é o envelope padrão da API de relatórios do TikTok.
// Code diferente de zero indica falha (auth, permissão, parâmetros).
type ReportResponse struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    ReportData `json:"data"`
}

type ReportData struct {
	List     []ReportRow `json:"list"`
	PageInfo PageInfo    `json:"page_info"`
}

type PageInfo struct {
	Page        int `json:"page"`
	TotalPage   int `json:"total_page"`
	TotalNumber int `json:"total_number"`
}

// ReportRow é uma linha do relatório integrado por campanha+país+dia.
// As métricas numéricas vêm como string.
type ReportRow struct {
	Dimensions ReportDimensions `json:"dimensions"`
	Metrics    ReportMetrics    `json:"metrics"`
}

type ReportDimensions struct {
	CampaignID  string `json:"campaign_id"`
	CountryCode string `json:"country_code"`
	StatTimeDay string `json:"stat_time_day"`
}

type ReportMetrics struct {
	CampaignName string `json:"campaign_name"`
	Spend        string `json:"spend"`
	Impressions  string `json:"impressions"`
	Clicks       string `json:"clicks"`
}
