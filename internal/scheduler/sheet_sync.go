package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/dashfy/client-dashboard-api/infrastructure/repository"
	"github.com/dashfy/client-dashboard-api/internal/config"
	"github.com/dashfy/client-dashboard-api/internal/usecases/importing"
)

// SheetSyncService agenda a reimportação periódica das planilhas de todos os
// dashboards que têm uma planilha configurada. O disparo manual pela rota de
// importação continua sendo o caminho principal; o agendador só garante que
// dashboards esquecidos não fiquem com dados velhos.
type SheetSyncService struct {
	scheduler     *gocron.Scheduler
	cronSchedule  string
	enabled       bool
	dashboardRepo repository.DashboardRepository
	importService importing.Importer

	syncMutex   sync.Mutex
	syncRunning bool
}

func NewSheetSyncService(
	dashboardRepo repository.DashboardRepository,
	importService importing.Importer,
	appConfig *config.Config,
) *SheetSyncService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.SheetSync.CronSchedule,
		"sync_enabled":  appConfig.SheetSync.Enabled,
	}).Info("Configuração do agendador de sincronização de planilhas carregada")

	return &SheetSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		cronSchedule:  appConfig.SheetSync.CronSchedule,
		enabled:       appConfig.SheetSync.Enabled,
		dashboardRepo: dashboardRepo,
		importService: importService,
	}
}

func (s *SheetSyncService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Sincronização de planilhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de sincronização de planilhas")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		s.syncAllDashboards(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SheetSyncService) syncAllDashboards(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de planilhas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := time.Now()

	dashboards, err := s.dashboardRepo.ListDashboards()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar dashboards para sincronização")
		return
	}

	var synced, failed, skipped int
	for _, dashboard := range dashboards {
		if dashboard.SheetsURL == nil || *dashboard.SheetsURL == "" {
			skipped++
			continue
		}

		result, err := s.importService.ImportFromSheets(ctx, dashboard.ID)
		if err != nil {
			failed++
			logrus.WithError(err).WithField("dashboard_id", dashboard.ID).
				Warn("Falha ao sincronizar planilha do dashboard")
			continue
		}

		synced++
		logrus.WithFields(logrus.Fields{
			"dashboard_id": dashboard.ID,
			"imported":     result.Imported,
			"skipped_rows": result.Skipped,
		}).Debug("Planilha do dashboard sincronizada")
	}

	logrus.WithFields(logrus.Fields{
		"synced":   synced,
		"failed":   failed,
		"skipped":  skipped,
		"duration": time.Since(startTime).String(),
	}).Info("Sincronização de planilhas concluída")
}
