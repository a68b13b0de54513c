package importing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	sheetsmocks "github.com/dashfy/client-dashboard-api/infrastructure/integrator/sheets/mocks"
	"github.com/dashfy/client-dashboard-api/infrastructure/repository/mocks"
	"github.com/dashfy/client-dashboard-api/internal/domain"
	"github.com/dashfy/client-dashboard-api/pkg/log"
)

func TestService_ImportFromSheets(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboardRepo := mocks.NewMockDashboardRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)
	mockSheets := sheetsmocks.NewMockSheetsIntegrator(ctrl)

	service := NewService(mockDashboardRepo, mockDataPointRepo, mockSheets)

	sheetsURL := "https://docs.google.com/spreadsheets/d/abc123/edit"
	dashboard := &domain.Dashboard{
		ID:            1,
		Name:          "Loja A",
		BusinessModel: domain.BusinessModelLeadParaVendedor,
		SheetsURL:     &sheetsURL,
	}

	tests := []struct {
		name        string
		dashboardID int
		setup       func()
		expected    *ImportResult
		expectedErr error
		validate    func(t *testing.T, points []*domain.DataPoint)
	}{
		{
			name:        "Importação completa substitui a série e conta as linhas",
			dashboardID: 1,
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(1).Return(dashboard, nil)

				mockSheets.EXPECT().
					FetchRows(gomock.Any(), sheetsURL).
					Return([][]string{
						{"Data", "Investimento", "Cliques", "Vendas"},
						{"2024-01-01", "R$ 100,00", "50", "2"},
						{"2024-01-02", "R$ 150,00", "70", "3"},
					}, nil)

				mockDataPointRepo.EXPECT().
					ReplaceForDashboard(gomock.Any(), 1, gomock.Len(2)).
					Return(nil)
			},
			expected: &ImportResult{Imported: 2, Skipped: 0, Warnings: 0},
		},
		{
			name:        "Linhas sem data são puladas sem abortar",
			dashboardID: 1,
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(1).Return(dashboard, nil)

				mockSheets.EXPECT().
					FetchRows(gomock.Any(), sheetsURL).
					Return([][]string{
						{"Data", "Cliques"},
						{"2024-01-01", "50"},
						{"", "70"},
						{"Total", "120"},
					}, nil)

				mockDataPointRepo.EXPECT().
					ReplaceForDashboard(gomock.Any(), 1, gomock.Len(1)).
					Return(nil)
			},
			expected: &ImportResult{Imported: 1, Skipped: 2, Warnings: 0},
		},
		{
			name:        "Datas duplicadas mantêm a última ocorrência",
			dashboardID: 1,
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(1).Return(dashboard, nil)

				mockSheets.EXPECT().
					FetchRows(gomock.Any(), sheetsURL).
					Return([][]string{
						{"Data", "Cliques"},
						{"2024-01-01", "50"},
						{"2024-01-02", "60"},
						{"2024-01-01", "99"},
					}, nil)

				mockDataPointRepo.EXPECT().
					ReplaceForDashboard(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, points []*domain.DataPoint) error {
						assert.Len(t, points, 2)
						assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), points[0].Date)
						assert.Equal(t, 99, points[0].Clicks)
						assert.Equal(t, 60, points[1].Clicks)
						return nil
					})
			},
			expected: &ImportResult{Imported: 2, Skipped: 0, Warnings: 0},
		},
		{
			name:        "Células ilegíveis são contabilizadas como warnings",
			dashboardID: 1,
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(1).Return(dashboard, nil)

				mockSheets.EXPECT().
					FetchRows(gomock.Any(), sheetsURL).
					Return([][]string{
						{"Data", "Investimento"},
						{"2024-01-01", "#REF!"},
					}, nil)

				mockDataPointRepo.EXPECT().
					ReplaceForDashboard(gomock.Any(), 1, gomock.Len(1)).
					Return(nil)
			},
			expected: &ImportResult{Imported: 1, Skipped: 0, Warnings: 1},
		},
		{
			name:        "Dashboard inexistente",
			dashboardID: 99,
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(99).Return(nil, nil)
			},
			expectedErr: ErrDashboardNotFound,
		},
		{
			name:        "Dashboard sem planilha configurada",
			dashboardID: 2,
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(2).Return(&domain.Dashboard{
					ID:            2,
					Name:          "Sem planilha",
					BusinessModel: domain.BusinessModelVendaDireta,
				}, nil)
			},
			expectedErr: ErrNoSheetsURL,
		},
		{
			name:        "Planilha vazia",
			dashboardID: 1,
			setup: func() {
				mockDashboardRepo.EXPECT().GetDashboardByID(1).Return(dashboard, nil)
				mockSheets.EXPECT().FetchRows(gomock.Any(), sheetsURL).Return([][]string{}, nil)
			},
			expectedErr: ErrEmptySheet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.ImportFromSheets(context.Background(), tt.dashboardID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestService_ImportFromSheets_Idempotente(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDashboardRepo := mocks.NewMockDashboardRepository(ctrl)
	mockDataPointRepo := mocks.NewMockDataPointRepository(ctrl)
	mockSheets := sheetsmocks.NewMockSheetsIntegrator(ctrl)

	service := NewService(mockDashboardRepo, mockDataPointRepo, mockSheets)

	sheetsURL := "https://docs.google.com/spreadsheets/d/abc123/edit"
	dashboard := &domain.Dashboard{ID: 1, SheetsURL: &sheetsURL}

	records := [][]string{
		{"Data", "Cliques", "Vendas"},
		{"2024-01-01", "50", "2"},
		{"2024-01-02", "70", "3"},
	}

	mockDashboardRepo.EXPECT().GetDashboardByID(1).Return(dashboard, nil).Times(2)
	mockSheets.EXPECT().FetchRows(gomock.Any(), sheetsURL).Return(records, nil).Times(2)

	var firstPoints []*domain.DataPoint
	mockDataPointRepo.EXPECT().
		ReplaceForDashboard(gomock.Any(), 1, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int, points []*domain.DataPoint) error {
			if firstPoints == nil {
				firstPoints = points
			} else {
				assert.Equal(t, firstPoints, points)
			}
			return nil
		}).Times(2)

	first, err := service.ImportFromSheets(context.Background(), 1)
	assert.NoError(t, err)

	second, err := service.ImportFromSheets(context.Background(), 1)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
