package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/dashfy/client-dashboard-api/internal/usecases/authenticating"
	"github.com/dashfy/client-dashboard-api/internal/usecases/reporting"
	"github.com/dashfy/client-dashboard-api/pkg/apiErrors"
	"github.com/dashfy/client-dashboard-api/pkg/log"
	"github.com/dashfy/client-dashboard-api/pkg/middleware"
)

// GetPublicDashboard retorna a visão do cliente. As claims verificadas pelo
// middleware são repassadas explicitamente ao serviço, que rejeita tokens de
// outro dashboard mesmo com assinatura válida.
func GetPublicDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := middleware.ClientClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
			return
		}

		dashboardID, err := dashboardIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do dashboard inválido", nil)
			return
		}

		dateRange, err := dateRangeFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas do filtro inválidas", nil)
			return
		}

		report, err := service.GetPublicDashboard(r.Context(), claims, dashboardID, dateRange)
		if err != nil {
			switch {
			case errors.Is(err, authenticating.ErrScopeMismatch):
				apiErrors.WriteError(w, apiErrors.ErrScopeMismatch, "Acesso negado", nil)
			case errors.Is(err, authenticating.ErrInvalidToken):
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
			case errors.Is(err, reporting.ErrDashboardNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Dashboard não encontrado", nil)
			default:
				logger.WithError(err).WithField("dashboard_id", dashboardID).
					Error("public: falha ao montar relatório do cliente")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar dashboard", nil)
			}
			return
		}

		writeJSON(w, logger, report)
	})
}
