package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/adtrackr/profit-sync-api/internal/scheduler"
	"github.com/adtrackr/profit-sync-api/pkg/log"
)

// RunFullSync dispara o ciclo completo de sincronização fora do horário do
// cron, para operação e suporte
func RunFullSync(syncService *scheduler.MetricsSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("admin: full sync cycle requested")

		// O ciclo roda em background; o contexto do request não serve
		// porque é cancelado assim que a resposta 202 sai
		syncService.RunNow(context.Background())

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "accepted",
		})
	})
}
