package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/adtrackr/profit-sync-api/internal/usecases/authorizing"
	"github.com/adtrackr/profit-sync-api/internal/usecases/syncing"
	"github.com/adtrackr/profit-sync-api/pkg/apiErrors"
	"github.com/adtrackr/profit-sync-api/pkg/log"
)

// TriggerSync dispara a sincronização do tenant em background e responde
// 202; o progresso é acompanhado pelo endpoint de status
func TriggerSync(service syncing.Syncer, resolver authorizing.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, ok := resolveTenant(w, r, resolver)
		if !ok {
			return
		}

		logger.WithField("tenant_id", tenantID).Info("sync: manual sync requested")

		if err := service.TriggerSync(r.Context(), tenantID); err != nil {
			if errors.Is(err, syncing.ErrNoActiveConnections) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Nenhuma conexão de plataforma ativa para sincronizar", nil)
				return
			}

			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Error("sync: failed to trigger sync")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao disparar sincronização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "accepted",
		})
	})
}

// GetSyncStatus devolve o ledger de sincronização por plataforma do tenant
func GetSyncStatus(service syncing.Syncer, resolver authorizing.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		tenantID, ok := resolveTenant(w, r, resolver)
		if !ok {
			return
		}

		status, err := service.GetSyncStatus(r.Context(), tenantID)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Error("sync: failed to fetch sync status")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar status de sincronização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithField("error", err.Error()).Error("sync: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
