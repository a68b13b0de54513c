package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dashfy/client-dashboard-api/infrastructure/repository/mocks"
	"github.com/dashfy/client-dashboard-api/internal/domain"
	"github.com/dashfy/client-dashboard-api/internal/usecases/authenticating"
)

func TestService_GetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboardRepo := mocks.NewMockDashboardRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)
	mockCostRepo := mocks.NewMockOperationalCostRepository(ctrl)

	service := NewService(mockDashboardRepo, mockDataPointRepo, mockCostRepo)

	dashboard := &domain.Dashboard{
		ID:            1,
		Name:          "Loja A",
		BusinessModel: domain.BusinessModelLeadParaVendedor,
	}

	points := []*domain.DataPoint{
		{
			Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Investment: 1000,
			Clicks:     100,
			Sales:      4,
			Revenue:    5000,
		},
	}

	costs := []*domain.OperationalCost{
		{
			Description: "Ferramentas",
			Amount:      250,
			DateFrom:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DateTo:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	t.Run("Relatório administrativo inclui custos e ROI", func(t *testing.T) {
		mockDashboardRepo.EXPECT().GetDashboardByID(1).Return(dashboard, nil)
		mockDataPointRepo.EXPECT().GetByDashboard(1, gomock.Any()).Return(points, nil)
		mockCostRepo.EXPECT().GetByDashboard(1, gomock.Any()).Return(costs, nil)

		report, err := service.GetDashboard(context.Background(), 1, domain.DateRange{})

		assert.NoError(t, err)
		assert.Equal(t, dashboard, report.Dashboard)
		assert.Equal(t, points, report.Data)
		assert.Equal(t, costs, report.OperationalCosts)
		assert.Equal(t, 250.0, report.Metrics.Totals.OperationalCosts)
		assert.NotNil(t, report.Metrics.Derived.ROI)
		assert.Equal(t, 300.0, *report.Metrics.Derived.ROI) // (5000-1250)/1250 * 100
	})

	t.Run("Custo fora da janela não entra no relatório", func(t *testing.T) {
		from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
		window := domain.DateRange{From: &from, To: &to}

		outsideCost := &domain.OperationalCost{
			Description: "Consultoria de fevereiro",
			Amount:      900,
			DateFrom:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			DateTo:      time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
		}

		mockDashboardRepo.EXPECT().GetDashboardByID(1).Return(dashboard, nil)
		mockDataPointRepo.EXPECT().GetByDashboard(1, window).Return(points, nil)
		mockCostRepo.EXPECT().GetByDashboard(1, window).
			Return(append([]*domain.OperationalCost{outsideCost}, costs...), nil)

		report, err := service.GetDashboard(context.Background(), 1, window)

		assert.NoError(t, err)
		assert.Equal(t, costs, report.OperationalCosts)
		assert.Equal(t, 250.0, report.Metrics.Totals.OperationalCosts)
	})

	t.Run("Dashboard inexistente", func(t *testing.T) {
		mockDashboardRepo.EXPECT().GetDashboardByID(99).Return(nil, nil)

		report, err := service.GetDashboard(context.Background(), 99, domain.DateRange{})

		assert.ErrorIs(t, err, ErrDashboardNotFound)
		assert.Nil(t, report)
	})
}

func TestService_GetPublicDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboardRepo := mocks.NewMockDashboardRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)
	mockCostRepo := mocks.NewMockOperationalCostRepository(ctrl)

	service := NewService(mockDashboardRepo, mockDataPointRepo, mockCostRepo)

	dashboard := &domain.Dashboard{
		ID:                 7,
		Name:               "Loja A",
		BusinessModel:      domain.BusinessModelVendaDireta,
		ClientPasswordHash: "hash-que-nunca-vaza",
	}

	points := []*domain.DataPoint{
		{
			Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Investment: 1000,
			Clicks:     100,
			Sales:      4,
			Revenue:    5000,
		},
	}

	validClaims := &domain.ClientClaims{
		DashboardID: 7,
		Type:        domain.ClientTokenType,
	}

	t.Run("Token com escopo correto recebe a visão pública", func(t *testing.T) {
		mockDashboardRepo.EXPECT().GetDashboardByID(7).Return(dashboard, nil)
		mockDataPointRepo.EXPECT().GetByDashboard(7, gomock.Any()).Return(points, nil)

		report, err := service.GetPublicDashboard(context.Background(), validClaims, 7, domain.DateRange{})

		assert.NoError(t, err)
		assert.Equal(t, 7, report.Dashboard.ID)
		assert.Equal(t, points, report.Data)

		// A visão pública não carrega custos nem ROI
		assert.Nil(t, report.Metrics.Derived.ROI)
		assert.Equal(t, 0.0, report.Metrics.Totals.OperationalCosts)
	})

	t.Run("Token de outro dashboard é rejeitado mesmo com assinatura válida", func(t *testing.T) {
		otherClaims := &domain.ClientClaims{
			DashboardID: 8,
			Type:        domain.ClientTokenType,
		}

		report, err := service.GetPublicDashboard(context.Background(), otherClaims, 7, domain.DateRange{})

		assert.ErrorIs(t, err, authenticating.ErrScopeMismatch)
		assert.Nil(t, report)
	})

	t.Run("Claims ausentes são rejeitadas antes de tocar o banco", func(t *testing.T) {
		report, err := service.GetPublicDashboard(context.Background(), nil, 7, domain.DateRange{})

		assert.ErrorIs(t, err, authenticating.ErrInvalidToken)
		assert.Nil(t, report)
	})

	t.Run("Claims sem o tipo de cliente são rejeitadas", func(t *testing.T) {
		badClaims := &domain.ClientClaims{DashboardID: 7, Type: "admin"}

		report, err := service.GetPublicDashboard(context.Background(), badClaims, 7, domain.DateRange{})

		assert.ErrorIs(t, err, authenticating.ErrInvalidToken)
		assert.Nil(t, report)
	})

	t.Run("Dashboard inexistente", func(t *testing.T) {
		mockDashboardRepo.EXPECT().GetDashboardByID(7).Return(nil, nil)

		report, err := service.GetPublicDashboard(context.Background(), validClaims, 7, domain.DateRange{})

		assert.ErrorIs(t, err, ErrDashboardNotFound)
		assert.Nil(t, report)
	})
}
