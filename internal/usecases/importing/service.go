package importing

import (
	"context"
	"sync"
	"time"

	"github.com/dashfy/client-dashboard-api/infrastructure/integrator/sheets"
	"github.com/dashfy/client-dashboard-api/infrastructure/repository"
	"github.com/dashfy/client-dashboard-api/internal/domain"
	"github.com/dashfy/client-dashboard-api/pkg/log"
)

// ImportResult resume uma execução de importação. Linhas sem data são apenas
// contabilizadas em Skipped; não há relatório de falha parcial além disso.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Warnings int `json:"warnings"`
}

type Importer interface {
	// ImportFromSheets busca o export da planilha do dashboard e substitui
	// atomicamente toda a série histórica pelos dados mapeados. Reimportar uma
	// planilha inalterada produz o mesmo conjunto de pontos e o mesmo
	// contador de importados.
	ImportFromSheets(ctx context.Context, dashboardID int) (*ImportResult, error)
}

type Service struct {
	dashboardRepo repository.DashboardRepository
	dataPointRepo repository.DataPointRepository
	sheetsService sheets.SheetsIntegrator

	// Serializa importações concorrentes do mesmo dashboard. Sem isso, dois
	// replaces simultâneos poderiam intercalar delete e insert e um leitor
	// observar a série pela metade.
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewService(
	dashboardRepo repository.DashboardRepository,
	dataPointRepo repository.DataPointRepository,
	sheetsService sheets.SheetsIntegrator,
) *Service {
	return &Service{
		dashboardRepo: dashboardRepo,
		dataPointRepo: dataPointRepo,
		sheetsService: sheetsService,
		locks:         make(map[int]*sync.Mutex),
	}
}

func (s *Service) lockFor(dashboardID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[dashboardID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[dashboardID] = lock
	}

	return lock
}

func (s *Service) ImportFromSheets(ctx context.Context, dashboardID int) (*ImportResult, error) {
	lock := s.lockFor(dashboardID)
	lock.Lock()
	defer lock.Unlock()

	logger := log.ForContext(ctx).WithField("dashboard_id", dashboardID)

	dashboard, err := s.dashboardRepo.GetDashboardByID(dashboardID)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, ErrDashboardNotFound
	}
	if dashboard.SheetsURL == nil || *dashboard.SheetsURL == "" {
		return nil, ErrNoSheetsURL
	}

	records, err := s.sheetsService.FetchRows(ctx, *dashboard.SheetsURL)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptySheet
	}

	headers := records[0]
	points, result := s.mapRecords(logger, headers, records[1:])

	if err := s.dataPointRepo.ReplaceForDashboard(ctx, dashboardID, points); err != nil {
		return nil, err
	}

	logger.WithFields(log.Fields{
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"warnings": result.Warnings,
	}).Info("Importação de planilha concluída")

	return result, nil
}

// mapRecords converte as linhas de dados e resolve datas duplicadas: a linha
// mais abaixo na planilha prevalece, já que edições manuais costumam ser
// acrescentadas no fim.
func (s *Service) mapRecords(logger log.Logger, headers []string, records [][]string) ([]*domain.DataPoint, *ImportResult) {
	result := &ImportResult{}

	byDate := make(map[time.Time]int)
	points := make([]*domain.DataPoint, 0, len(records))

	for i, record := range records {
		point, warnings, ok := MapRow(headers, record)

		if len(warnings) > 0 {
			result.Warnings += len(warnings)
			logger.WithFields(log.Fields{
				"row":      i + 2, // 1-based, pulando o cabeçalho
				"warnings": warnings,
			}).Warn("Linha importada com campos assumidos como 0")
		}

		if !ok {
			result.Skipped++
			continue
		}

		if existing, seen := byDate[point.Date]; seen {
			points[existing] = point
			continue
		}

		byDate[point.Date] = len(points)
		points = append(points, point)
	}

	result.Imported = len(points)
	return points, result
}
