package reporting

import (
	"context"
	"errors"

	"github.com/dashfy/client-dashboard-api/infrastructure/repository"
	"github.com/dashfy/client-dashboard-api/internal/domain"
	"github.com/dashfy/client-dashboard-api/internal/usecases/authenticating"
)

var ErrDashboardNotFound = errors.New("dashboard não encontrado")

// DashboardReport é a visão administrativa: série filtrada, custos
// operacionais sobrepostos à janela e métricas completas, incluindo ROI.
type DashboardReport struct {
	Dashboard        *domain.Dashboard         `json:"dashboard"`
	Data             []*domain.DataPoint       `json:"data"`
	OperationalCosts []*domain.OperationalCost `json:"operational_costs"`
	Metrics          *domain.Metrics           `json:"metrics"`
}

// PublicDashboardReport é a visão do cliente: sem custos operacionais e sem
// ROI, que dependem de dados que o cliente não enxerga.
type PublicDashboardReport struct {
	Dashboard *domain.PublicDashboard `json:"dashboard"`
	Data      []*domain.DataPoint     `json:"data"`
	Metrics   *domain.Metrics         `json:"metrics"`
}

type Reporter interface {
	GetDashboard(ctx context.Context, dashboardID int, dateRange domain.DateRange) (*DashboardReport, error)

	// GetPublicDashboard exige as claims do token de cliente como argumento
	// explícito e rejeita qualquer token cujo dashboardId não seja o
	// solicitado, mesmo com assinatura válida.
	GetPublicDashboard(ctx context.Context, claims *domain.ClientClaims, dashboardID int, dateRange domain.DateRange) (*PublicDashboardReport, error)
}

type Service struct {
	dashboardRepo repository.DashboardRepository
	dataPointRepo repository.DataPointRepository
	costRepo      repository.OperationalCostRepository
}

func NewService(
	dashboardRepo repository.DashboardRepository,
	dataPointRepo repository.DataPointRepository,
	costRepo repository.OperationalCostRepository,
) Reporter {
	return &Service{
		dashboardRepo: dashboardRepo,
		dataPointRepo: dataPointRepo,
		costRepo:      costRepo,
	}
}

func (s *Service) GetDashboard(ctx context.Context, dashboardID int, dateRange domain.DateRange) (*DashboardReport, error) {
	dashboard, err := s.dashboardRepo.GetDashboardByID(dashboardID)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, ErrDashboardNotFound
	}

	points, err := s.dataPointRepo.GetByDashboard(dashboardID, dateRange)
	if err != nil {
		return nil, err
	}

	costs, err := s.costRepo.GetByDashboard(dashboardID, dateRange)
	if err != nil {
		return nil, err
	}

	// A regra de interseção vale independente de quanto o repositório já
	// filtrou no SQL
	costs = domain.FilterCosts(costs, dateRange)

	return &DashboardReport{
		Dashboard:        dashboard,
		Data:             points,
		OperationalCosts: costs,
		Metrics:          domain.Aggregate(points, costs, dashboard.BusinessModel),
	}, nil
}

func (s *Service) GetPublicDashboard(ctx context.Context, claims *domain.ClientClaims, dashboardID int, dateRange domain.DateRange) (*PublicDashboardReport, error) {
	if claims == nil || claims.Type != domain.ClientTokenType {
		return nil, authenticating.ErrInvalidToken
	}

	// Vinculação de escopo verificada explicitamente, nunca inferida da rota
	if claims.DashboardID != dashboardID {
		return nil, authenticating.ErrScopeMismatch
	}

	dashboard, err := s.dashboardRepo.GetDashboardByID(dashboardID)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, ErrDashboardNotFound
	}

	points, err := s.dataPointRepo.GetByDashboard(dashboardID, dateRange)
	if err != nil {
		return nil, err
	}

	// Agregação sem custos; o ROI resultante seria enganoso e é omitido
	metrics := domain.Aggregate(points, nil, dashboard.BusinessModel)
	metrics.Derived.ROI = nil

	return &PublicDashboardReport{
		Dashboard: dashboard.PublicView(),
		Data:      points,
		Metrics:   metrics,
	}, nil
}
