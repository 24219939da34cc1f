package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/adtrackr/profit-sync-api/internal/usecases/aggregating"
	"github.com/adtrackr/profit-sync-api/internal/usecases/authorizing"
	"github.com/adtrackr/profit-sync-api/pkg/apiErrors"
	"github.com/adtrackr/profit-sync-api/pkg/log"
	"github.com/adtrackr/profit-sync-api/pkg/utils"
)

// GetMetrics monta o payload completo do dashboard para a janela pedida
func GetMetrics(service aggregating.Aggregator, resolver authorizing.Resolver) http.Handler {
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

		logger.WithFields(log.Fields{
			"tenant_id":  tenantID,
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Info("metrics: fetching aggregated metrics")

		response, err := service.Aggregate(r.Context(), tenantID, startDate, endDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"tenant_id": tenantID,
				"error":     err.Error(),
			}).Error("metrics: failed to aggregate metrics")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("metrics: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// parseWindow lê start_date e end_date da query. Sem parâmetros, a janela
// padrão é os últimos 30 dias.
func parseWindow(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -30)

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "start_date inválido, use YYYY-MM-DD", nil)
			return time.Time{}, time.Time{}, false
		}
		startDate = *parsed
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "end_date inválido, use YYYY-MM-DD", nil)
			return time.Time{}, time.Time{}, false
		}
		endDate = *parsed
	}

	if startDate.After(endDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "A data de início não pode ser posterior à data de fim", nil)
		return time.Time{}, time.Time{}, false
	}

	return startDate, endDate, true
}
