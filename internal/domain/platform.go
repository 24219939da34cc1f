package domain

import "time"

// Platform identifica a origem externa de métricas
type Platform string

const (
	PlatformTikTok  Platform = "tiktok"
	PlatformMeta    Platform = "meta"
	PlatformPostHog Platform = "posthog"
)

// IsRevenueSource distingue fontes de receita das plataformas de anúncio
// (o PostHog reporta apenas receita, sem gasto nem dimensão de campanha)
func (p Platform) IsRevenueSource() bool {
	return p == PlatformPostHog
}

type ConnectionStatus string

const (
	ConnectionStatusActive   ConnectionStatus = "active"
	ConnectionStatusDisabled ConnectionStatus = "disabled"
)

// PlatformConnection vincula um tenant a uma conta externa de uma plataforma.
// Criada e mantida pela superfície de integrações; o pipeline apenas lê.
type PlatformConnection struct {
	ID          int               `json:"id"`
	TenantID    int               `json:"tenant_id"`
	Platform    Platform          `json:"platform"`
	AccessToken string            `json:"-"`
	AccountRef  string            `json:"account_ref"`
	Settings    map[string]string `json:"settings"`
	Status      ConnectionStatus  `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// Tenant é a unidade de conta que possui conexões, custos e métricas em cache
type Tenant struct {
	ID          int       `json:"id"`
	ExternalRef string    `json:"external_ref"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
}
