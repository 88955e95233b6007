package handler

import (
	"net/http"

	"github.com/vfg2006/partner-revenue-api/internal/api/handler/router"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/authenticating"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/partnering"
	"github.com/vfg2006/partner-revenue-api/internal/usecases/reconciling"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
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
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/v1/session",
			Method:  http.MethodGet,
			Handler: GetSession(),
		},
	}
}

func Partners(service partnering.PartnerService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/partners",
			Method:  http.MethodGet,
			Handler: ListPartners(service),
		},
		{
			Path:    "/v1/partners",
			Method:  http.MethodPost,
			Handler: CreatePartner(service),
		},
		{
			Path:    "/v1/partners/:id",
			Method:  http.MethodGet,
			Handler: GetPartner(service),
		},
		{
			Path:    "/v1/partners/:id",
			Method:  http.MethodPut,
			Handler: UpdatePartner(service),
		},
		{
			Path:    "/v1/partners/:id",
			Method:  http.MethodDelete,
			Handler: DeletePartner(service),
		},
		{
			Path:    "/v1/partners/:id/status",
			Method:  http.MethodPost,
			Handler: TogglePartnerStatus(service),
		},
		{
			Path:    "/v1/partners/:id/revenue/:month",
			Method:  http.MethodPut,
			Handler: SetMonthlyRevenue(service),
		},
		{
			Path:    "/v1/partners/:id/revenue/:month",
			Method:  http.MethodDelete,
			Handler: ClearMonthlyRevenue(service),
		},
	}
}

func Revenue(reconciler reconciling.Reconciler, refresher RevenueRefresher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/partners/:id/revenue/fetch",
			Method:  http.MethodPost,
			Handler: FetchPartnerRevenue(reconciler),
		},
		{
			Path:    "/v1/revenue/refresh",
			Method:  http.MethodPost,
			Handler: RefreshAllRevenue(refresher),
		},
		{
			Path:    "/v1/revenue/sync/status",
			Method:  http.MethodGet,
			Handler: GetRevenueSyncStatus(refresher),
		},
	}
}
