package domain

import "time"

type CostType string

const (
	CostTypeFixed    CostType = "fixed"
	CostTypeVariable CostType = "variable"
)

type RepeatInterval string

const (
	RepeatDaily   RepeatInterval = "daily"
	RepeatWeekly  RepeatInterval = "weekly"
	RepeatMonthly RepeatInterval = "monthly"
)

// BaseMetric é a métrica de referência de um custo variável. Custos variáveis
// derivam de totais já agregados da janela, nunca são recalculados à parte.
type BaseMetric string

const (
	BaseMetricRevenue      BaseMetric = "revenue"
	BaseMetricProfit       BaseMetric = "profit"
	BaseMetricTotalAdSpend BaseMetric = "total_ad_spend"
	BaseMetricTikTokSpend  BaseMetric = "tiktok_spend"
	BaseMetricMetaSpend    BaseMetric = "meta_spend"
)

// CustomCost é uma definição de custo do tenant (fixo único, fixo recorrente
// ou percentual sobre uma métrica). Mantida pelo CRUD externo; aqui é
// somente leitura.
type CustomCost struct {
	ID             int             `json:"id"`
	TenantID       int             `json:"tenant_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	CostType       CostType        `json:"cost_type"`
	Currency       string          `json:"currency"`
	Amount         float64         `json:"amount"`
	Percentage     float64         `json:"percentage"`
	BaseMetric     *BaseMetric     `json:"base_metric"`
	Repeat         bool            `json:"repeat"`
	RepeatInterval *RepeatInterval `json:"repeat_interval"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CostContribution é a parcela de um custo dentro de uma janela consultada,
// com os metadados de exibição do valor configurado
type CostContribution struct {
	CostID         int             `json:"cost_id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	CostType       CostType        `json:"cost_type"`
	Currency       string          `json:"currency"`
	ConfiguredAmt  float64         `json:"configured_amount"`
	Percentage     float64         `json:"percentage,omitempty"`
	BaseMetric     *BaseMetric     `json:"base_metric,omitempty"`
	RepeatInterval *RepeatInterval `json:"repeat_interval,omitempty"`
	Contribution   float64         `json:"contribution"`
}

// CostProration é o resultado do cálculo de proração para uma janela
type CostProration struct {
	Total     float64            `json:"total"`
	Breakdown []CostContribution `json:"breakdown"`
}
