package domain

import (
	"strings"
	"time"
)

// RawMetricRow é a linha normalizada devolvida pelos adaptadores de origem.
// Plataformas de anúncio preenchem Spend/Impressions/Clicks por campanha,
// país e dia; origens de receita preenchem Revenue/Purchases por país e dia
// sem dimensão de campanha (CampaignID vazio).
type RawMetricRow struct {
	Date         time.Time
	CountryCode  string
	CampaignID   string
	CampaignName string
	Spend        float64
	Impressions  int64
	Clicks       int64
	Revenue      float64
	Purchases    int64
}

// HasCampaign indica se a linha participa da tabela de detalhe por campanha
func (r RawMetricRow) HasCampaign() bool {
	return r.CampaignID != ""
}

// NormalizeCountryCode padroniza o código de país em ISO-2 maiúsculo.
// Valores ausentes ou fora do padrão viram vazio (gasto sem atribuição).
func NormalizeCountryCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 {
		return ""
	}
	return code
}

// DailyCountryMetric é o cache diário por país, acumulado entre campanhas.
// Chave única: (tenant, country_code, date, platform).
type DailyCountryMetric struct {
	ID          int       `json:"id"`
	TenantID    int       `json:"tenant_id"`
	CountryCode string    `json:"country_code"`
	Date        time.Time `json:"date"`
	Platform    Platform  `json:"platform"`
	Spend       float64   `json:"spend"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Revenue     float64   `json:"revenue"`
	Purchases   int64     `json:"purchases"`
}

// SyncWindow é o intervalo contíguo de datas buscado ou agregado
type SyncWindow struct {
	Start time.Time
	End   time.Time
}

// Days devolve a quantidade de dias do intervalo, inclusivo nas pontas
func (w SyncWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// DateOnly trunca o instante para o dia em UTC; todas as datas do pipeline
// são tratadas nessa granularidade
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
