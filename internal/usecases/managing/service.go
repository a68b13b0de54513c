package managing

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/dashfy/client-dashboard-api/infrastructure/repository"
	"github.com/dashfy/client-dashboard-api/internal/domain"
	"github.com/dashfy/client-dashboard-api/pkg/utils"
)

var (
	ErrDashboardNotFound      = errors.New("dashboard não encontrado")
	ErrMissingRequiredData    = errors.New("dados obrigatórios ausentes")
	ErrInvalidBusinessModel   = errors.New("modelo de negócio inválido")
	ErrInvalidCostInterval    = errors.New("data inicial posterior à data final")
	ErrInvalidCostDescription = errors.New("descrição do custo é obrigatória")
)

// CreateDashboardRequest carrega os dados de criação. ClientPassword vazio faz
// o serviço gerar uma senha, devolvida uma única vez na resposta.
type CreateDashboardRequest struct {
	Name           string               `json:"name"`
	BusinessModel  domain.BusinessModel `json:"business_model"`
	SheetsURL      *string              `json:"sheets_url,omitempty"`
	ClientPassword string               `json:"client_password,omitempty"`
}

type CreateDashboardResponse struct {
	Dashboard      *domain.Dashboard `json:"dashboard"`
	ClientPassword string            `json:"client_password,omitempty"`
}

type Manager interface {
	CreateDashboard(req *CreateDashboardRequest) (*CreateDashboardResponse, error)
	ListDashboards() ([]*domain.Dashboard, error)
	AddOperationalCost(cost *domain.OperationalCost) (*domain.OperationalCost, error)
}

type Service struct {
	dashboardRepo repository.DashboardRepository
	costRepo      repository.OperationalCostRepository
}

func NewService(
	dashboardRepo repository.DashboardRepository,
	costRepo repository.OperationalCostRepository,
) Manager {
	return &Service{
		dashboardRepo: dashboardRepo,
		costRepo:      costRepo,
	}
}

func (s *Service) CreateDashboard(req *CreateDashboardRequest) (*CreateDashboardResponse, error) {
	if req.Name == "" {
		return nil, ErrMissingRequiredData
	}

	// O modelo de negócio é imutável após a criação, então precisa nascer
	// válido
	if !req.BusinessModel.IsValid() {
		return nil, ErrInvalidBusinessModel
	}

	password := req.ClientPassword
	generated := false
	if password == "" {
		var err error
		password, err = utils.GenerateClientPassword()
		if err != nil {
			return nil, err
		}
		generated = true
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	dashboard, err := s.dashboardRepo.CreateDashboard(&domain.Dashboard{
		Name:               req.Name,
		BusinessModel:      req.BusinessModel,
		SheetsURL:          req.SheetsURL,
		ClientPasswordHash: string(hashedPassword),
	})
	if err != nil {
		return nil, err
	}

	response := &CreateDashboardResponse{Dashboard: dashboard}
	if generated {
		response.ClientPassword = password
	}

	return response, nil
}

func (s *Service) ListDashboards() ([]*domain.Dashboard, error) {
	return s.dashboardRepo.ListDashboards()
}

func (s *Service) AddOperationalCost(cost *domain.OperationalCost) (*domain.OperationalCost, error) {
	if cost.Description == "" {
		return nil, ErrInvalidCostDescription
	}

	if cost.DateFrom.After(cost.DateTo) {
		return nil, ErrInvalidCostInterval
	}

	dashboard, err := s.dashboardRepo.GetDashboardByID(cost.DashboardID)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, ErrDashboardNotFound
	}

	return s.costRepo.CreateCost(cost)
}
