package handler

import (
	"net/http"

	"github.com/adtrackr/profit-sync-api/internal/api/handler/router"
	"github.com/adtrackr/profit-sync-api/internal/scheduler"
	"github.com/adtrackr/profit-sync-api/internal/usecases/aggregating"
	"github.com/adtrackr/profit-sync-api/internal/usecases/authenticating"
	"github.com/adtrackr/profit-sync-api/internal/usecases/authorizing"
	"github.com/adtrackr/profit-sync-api/internal/usecases/syncing"
	"github.com/adtrackr/profit-sync-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Metrics(service aggregating.Aggregator, resolver authorizing.Resolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/metrics",
			Method:      http.MethodGet,
			Handler:     GetMetrics(service, resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Sync(service syncing.Syncer, resolver authorizing.Resolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync",
			Method:      http.MethodPost,
			Handler:     TriggerSync(service, resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(service, resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Costs(service aggregating.Aggregator, resolver authorizing.Resolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/costs/preview",
			Method:      http.MethodGet,
			Handler:     CostsPreview(service, resolver),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Admin(syncService *scheduler.MetricsSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/sync-all",
			Method:      http.MethodPost,
			Handler:     RunFullSync(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
