package handler

import (
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/dashfy/client-dashboard-api/internal/domain"
	"github.com/dashfy/client-dashboard-api/internal/usecases/managing"
	"github.com/dashfy/client-dashboard-api/internal/usecases/reporting"
	"github.com/dashfy/client-dashboard-api/pkg/apiErrors"
	"github.com/dashfy/client-dashboard-api/pkg/log"
	"github.com/dashfy/client-dashboard-api/pkg/utils"
)

type AddCostRequest struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DateFrom    string  `json:"date_from"`
	DateTo      string  `json:"date_to"`
}

// CreateDashboard cria um dashboard com modelo de negócio fixo e senha de
// cliente protegida por hash
func CreateDashboard(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req managing.CreateDashboardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		response, err := service.CreateDashboard(&req)
		if err != nil {
			switch {
			case errors.Is(err, managing.ErrMissingRequiredData):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do dashboard é obrigatório", nil)
			case errors.Is(err, managing.ErrInvalidBusinessModel):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Modelo de negócio inválido", nil)
			default:
				logger.WithError(err).Error("dashboards: falha ao criar dashboard")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao criar dashboard", nil)
			}
			return
		}

		logger.WithField("dashboard_id", response.Dashboard.ID).Info("dashboards: dashboard criado")
		writeJSON(w, logger, response)
	})
}

func ListDashboards(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dashboards, err := service.ListDashboards()
		if err != nil {
			logger.WithError(err).Error("dashboards: falha ao listar dashboards")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar dashboards", nil)
			return
		}

		if dashboards == nil {
			dashboards = []*domain.Dashboard{}
		}

		writeJSON(w, logger, dashboards)
	})
}

// GetDashboard retorna a visão administrativa: série filtrada pela janela de
// datas, custos operacionais sobrepostos e métricas completas
func GetDashboard(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

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

		report, err := service.GetDashboard(r.Context(), dashboardID, dateRange)
		if err != nil {
			if errors.Is(err, reporting.ErrDashboardNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Dashboard não encontrado", nil)
				return
			}

			logger.WithError(err).WithField("dashboard_id", dashboardID).
				Error("dashboards: falha ao montar relatório")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar dashboard", nil)
			return
		}

		writeJSON(w, logger, report)
	})
}

// AddOperationalCost registra um custo avulso com vigência [date_from, date_to]
func AddOperationalCost(service managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dashboardID, err := dashboardIDFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do dashboard inválido", nil)
			return
		}

		var req AddCostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		dateFrom, err := time.Parse(time.DateOnly, req.DateFrom)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida", nil)
			return
		}

		dateTo, err := time.Parse(time.DateOnly, req.DateTo)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida", nil)
			return
		}

		cost, err := service.AddOperationalCost(&domain.OperationalCost{
			DashboardID: dashboardID,
			Description: req.Description,
			Amount:      req.Amount,
			DateFrom:    dateFrom,
			DateTo:      dateTo,
		})
		if err != nil {
			switch {
			case errors.Is(err, managing.ErrDashboardNotFound):
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Dashboard não encontrado", nil)
			case errors.Is(err, managing.ErrInvalidCostInterval):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial posterior à data final", nil)
			case errors.Is(err, managing.ErrInvalidCostDescription):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Descrição do custo é obrigatória", nil)
			default:
				logger.WithError(err).WithField("dashboard_id", dashboardID).
					Error("dashboards: falha ao adicionar custo operacional")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao adicionar custo operacional", nil)
			}
			return
		}

		writeJSON(w, logger, cost)
	})
}

// dateRangeFromQuery interpreta os parâmetros opcionais startDate/endDate.
// Ausência de ambos significa a série completa.
func dateRangeFromQuery(r *http.Request) (domain.DateRange, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		return domain.DateRange{}, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		return domain.DateRange{}, err
	}

	return domain.DateRange{From: startDate, To: endDate}, nil
}
