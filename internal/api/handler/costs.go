package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adtrackr/profit-sync-api/internal/usecases/aggregating"
	"github.com/adtrackr/profit-sync-api/internal/usecases/authorizing"
	"github.com/adtrackr/profit-sync-api/pkg/apiErrors"
	"github.com/adtrackr/profit-sync-api/pkg/log"
)

// CostsPreview devolve só a proração de custos customizados da janela, para
// o formulário de custos mostrar a parcela antes de salvar
func CostsPreview(service aggregating.Aggregator, resolver authorizing.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, ok := resolveTenant(w, r, resolver)
		if !ok {
			return
		}

		startDate, endDate, ok := parseWindow(w, r)
		if !ok {
			return
		}

		proration, err := service.PreviewCosts(r.Context(), tenantID, startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Error("costs: failed to compute cost preview")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular custos do período", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(proration); err != nil {
			logger.WithField("error", err.Error()).Error("costs: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
