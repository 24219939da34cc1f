package authorizing

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/adtrackr/profit-sync-api/infrastructure/repository"
)

// ErrOwnerPlanBlocked indica que o vínculo de time existe e está aceito,
// mas o plano atual do dono não libera acesso de time. O chamador deve
// responder 403, nunca 404: o vínculo é válido, só está bloqueado.
var ErrOwnerPlanBlocked = errors.New("plano do dono do time não permite acesso de membros")

// Resolver mapeia o tenant autenticado para o tenant cujos dados ele deve
// enxergar: o dono do time quando há vínculo aceito, o próprio tenant caso
// contrário. Precisa ser consultado antes de toda leitura ou escrita que
// toque dados compartilhados.
type Resolver interface {
	ResolveOwner(ctx context.Context, actingTenantID int) (int, error)
}

type Service struct {
	teamRepository         repository.TeamRepository
	subscriptionRepository repository.SubscriptionRepository
}

func NewService(
	teamRepo repository.TeamRepository,
	subscriptionRepo repository.SubscriptionRepository,
) Resolver {
	return &Service{
		teamRepository:         teamRepo,
		subscriptionRepository: subscriptionRepo,
	}
}

func (s *Service) ResolveOwner(ctx context.Context, actingTenantID int) (int, error) {
	membership, err := s.teamRepository.GetAcceptedMembership(ctx, actingTenantID)
	if err != nil {
		return 0, err
	}

	if membership == nil {
		return actingTenantID, nil
	}

	subscription, err := s.subscriptionRepository.GetByTenant(ctx, membership.OwnerTenantID)
	if err != nil {
		return 0, err
	}

	limits := repository.ResolvePlanLimits(subscription)
	if !subscription.IsActive() || !limits.TeamAccess {
		logrus.WithFields(logrus.Fields{
			"member_tenant_id": actingTenantID,
			"owner_tenant_id":  membership.OwnerTenantID,
			"plan":             limits.Plan,
		}).Info("Acesso de membro bloqueado pelo plano do dono do time")

		return 0, ErrOwnerPlanBlocked
	}

	return membership.OwnerTenantID, nil
}
