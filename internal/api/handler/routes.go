package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/dashfy/client-dashboard-api/internal/api/handler/router"
	"github.com/dashfy/client-dashboard-api/internal/usecases/authenticating"
	"github.com/dashfy/client-dashboard-api/internal/usecases/importing"
	"github.com/dashfy/client-dashboard-api/internal/usecases/managing"
	"github.com/dashfy/client-dashboard-api/internal/usecases/reporting"
	"github.com/dashfy/client-dashboard-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

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
			Path:    "/v1/public/dashboards/:id/auth",
			Method:  http.MethodPost,
			Handler: ClientLogin(service),
		},
	}
}

func Dashboards(
	authService authenticating.Authenticator,
	manageService managing.Manager,
	reportService reporting.Reporter,
) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminAuth(authService)}

	return []router.Route{
		{
			Path:        "/v1/dashboards",
			Method:      http.MethodPost,
			Handler:     CreateDashboard(manageService),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/dashboards",
			Method:      http.MethodGet,
			Handler:     ListDashboards(manageService),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/dashboards/:id",
			Method:      http.MethodGet,
			Handler:     GetDashboard(reportService),
			Middlewares: adminOnly,
		},
		{
			Path:        "/v1/dashboards/:id/costs",
			Method:      http.MethodPost,
			Handler:     AddOperationalCost(manageService),
			Middlewares: adminOnly,
		},
	}
}

func Importing(authService authenticating.Authenticator, importService importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboards/:id/import",
			Method:      http.MethodPost,
			Handler:     ImportSheets(importService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminAuth(authService)},
		},
	}
}

func PublicDashboards(authService authenticating.Authenticator, reportService reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/public/dashboards/:id",
			Method:      http.MethodGet,
			Handler:     GetPublicDashboard(reportService),
			Middlewares: []func(http.Handler) http.Handler{middleware.ClientAuth(authService)},
		},
	}
}
