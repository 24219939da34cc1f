package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/adtrackr/profit-sync-api/infrastructure/database/postgres"
	"github.com/adtrackr/profit-sync-api/internal/domain"
)

const (
	subscriptionsTable = "subscriptions s"
)

// Limites por plano. O billing (colaborador externo) mantém a assinatura;
// o mapeamento plano → limites é fixo no código.
var planLimits = map[string]domain.PlanLimits{
	"free": {
		Plan:              "free",
		MaxAdPlatforms:    1,
		DataRetentionDays: 30,
		CampaignPL:        false,
		TeamAccess:        false,
	},
	"pro": {
		Plan:              "pro",
		MaxAdPlatforms:    3,
		DataRetentionDays: 90,
		CampaignPL:        true,
		TeamAccess:        false,
	},
	"business": {
		Plan:              "business",
		MaxAdPlatforms:    10,
		DataRetentionDays: 0, // retenção ilimitada
		CampaignPL:        true,
		TeamAccess:        true,
	},
}

type SubscriptionRepository interface {
	GetByTenant(ctx context.Context, tenantID int) (*domain.Subscription, error)
	// GetLimits resolve os limites do plano corrente do tenant. Tenant sem
	// assinatura cai no plano free.
	GetLimits(ctx context.Context, tenantID int) (domain.PlanLimits, error)
}

type subscriptionRepository struct {
	conn *postgres.Connection
}

func NewSubscriptionRepository(conn *postgres.Connection) SubscriptionRepository {
	return &subscriptionRepository{
		conn: conn,
	}
}

func (r *subscriptionRepository) GetByTenant(ctx context.Context, tenantID int) (*domain.Subscription, error) {
	query, args, err := squirrel.
		Select("s.tenant_id, s.plan, s.status, s.updated_at").
		From(subscriptionsTable).
		Where(squirrel.Eq{"s.tenant_id": tenantID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	subscription := &domain.Subscription{}
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&subscription.TenantID, &subscription.Plan, &subscription.Status, &subscription.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear assinatura: %w", err)
	}

	return subscription, nil
}

func (r *subscriptionRepository) GetLimits(ctx context.Context, tenantID int) (domain.PlanLimits, error) {
	subscription, err := r.GetByTenant(ctx, tenantID)
	if err != nil {
		return domain.PlanLimits{}, err
	}

	return ResolvePlanLimits(subscription), nil
}

// ResolvePlanLimits mapeia uma assinatura para os limites do plano.
// Assinatura ausente ou inativa equivale ao plano free.
func ResolvePlanLimits(subscription *domain.Subscription) domain.PlanLimits {
	if !subscription.IsActive() {
		return planLimits["free"]
	}

	limits, ok := planLimits[subscription.Plan]
	if !ok {
		return planLimits["free"]
	}

	return limits
}
