package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/dashfy/client-dashboard-api/infrastructure/integrator/sheets"
	"github.com/dashfy/client-dashboard-api/internal/usecases/importing"
	"github.com/dashfy/client-dashboard-api/pkg/apiErrors"
	"github.com/dashfy/client-dashboard-api/pkg/log"
)

type ImportResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Warnings int    `json:"warnings"`
}

// ImportSheets dispara a importação da planilha do dashboard, substituindo
// toda a série histórica pelo estado atual da planilha
func ImportSheets(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dashboardID, err := dashboardIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do dashboard inválido", nil)
			return
		}

		result, err := service.ImportFromSheets(r.Context(), dashboardID)
		if err != nil {
			switch {
			case errors.Is(err, importing.ErrDashboardNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Dashboard não encontrado", nil)
			case errors.Is(err, importing.ErrNoSheetsURL), errors.Is(err, sheets.ErrInvalidSheetsURL):
				apiErrors.WriteError(w, apiErrors.ErrInvalidSourceReference, "URL da planilha ausente ou inválida", nil)
			case errors.Is(err, sheets.ErrSheetUnavailable), errors.Is(err, importing.ErrEmptySheet):
				apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, "Não foi possível obter os dados da planilha", nil)
			default:
				logger.WithError(err).WithField("dashboard_id", dashboardID).
					Error("import: falha ao importar planilha")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao importar dados", nil)
			}
			return
		}

		writeJSON(w, logger, ImportResponse{
			Message:  "Dados importados com sucesso",
			Imported: result.Imported,
			Skipped:  result.Skipped,
			Warnings: result.Warnings,
		})
	})
}
