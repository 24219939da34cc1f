package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/adtrackr/profit-sync-api/internal/domain"
	"github.com/adtrackr/profit-sync-api/internal/usecases/authorizing"
	"github.com/adtrackr/profit-sync-api/pkg/apiErrors"
	"github.com/adtrackr/profit-sync-api/pkg/middleware"
)

// resolveTenant descobre o tenant efetivo da requisição: o dono do time
// quando o usuário é membro aceito, o próprio tenant caso contrário. Escreve
// a resposta de erro e devolve false quando o acesso está bloqueado.
func resolveTenant(w http.ResponseWriter, r *http.Request, resolver authorizing.Resolver) (int, bool) {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return 0, false
	}

	tenantID, err := resolver.ResolveOwner(r.Context(), userClaims.TenantID)
	if err != nil {
		if errors.Is(err, authorizing.ErrOwnerPlanBlocked) {
			// 403, não 404: o vínculo de time é válido, só está bloqueado
			// pelo plano do dono
			apiErrors.WriteError(w, apiErrors.ErrOwnerPlanBlocked, "O plano do dono do time não permite acesso de membros", nil)
			return 0, false
		}

		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao resolver o tenant da requisição", nil)
		return 0, false
	}

	return tenantID, true
}
