package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Subscription é a assinatura corrente do tenant (colaborador externo de
// billing; o pipeline só consulta)
type Subscription struct {
	TenantID  int                `json:"tenant_id"`
	Plan      string             `json:"plan"`
	Status    SubscriptionStatus `json:"status"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func (s *Subscription) IsActive() bool {
	return s != nil && s.Status == SubscriptionActive
}

// PlanLimits são os limites do plano aplicados no caminho de leitura.
// DataRetentionDays = 0 significa retenção ilimitada (nunca aplica clamp).
type PlanLimits struct {
	Plan              string `json:"plan"`
	MaxAdPlatforms    int    `json:"max_ad_platforms"`
	DataRetentionDays int    `json:"data_retention_days"`
	CampaignPL        bool   `json:"campaign_pl"`
	TeamAccess        bool   `json:"team_access"`
}

func (l PlanLimits) UnlimitedRetention() bool {
	return l.DataRetentionDays == 0
}

type TeamMemberStatus string

const (
	TeamMemberPending  TeamMemberStatus = "pending"
	TeamMemberAccepted TeamMemberStatus = "accepted"
	TeamMemberRevoked  TeamMemberStatus = "revoked"
)

// TeamMember relaciona o tenant membro ao tenant dono do time; usado apenas
// na resolução de propriedade do caminho de leitura
type TeamMember struct {
	MemberTenantID int              `json:"member_tenant_id"`
	OwnerTenantID  int              `json:"owner_tenant_id"`
	Status         TeamMemberStatus `json:"status"`
	CreatedAt      time.Time        `json:"created_at"`
}
