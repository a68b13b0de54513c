package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dashfy/client-dashboard-api/infrastructure/database/postgres"
	"github.com/dashfy/client-dashboard-api/infrastructure/integrator/sheets"
	"github.com/dashfy/client-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/dashfy/client-dashboard-api/infrastructure/repository"
	"github.com/dashfy/client-dashboard-api/internal/api"
	"github.com/dashfy/client-dashboard-api/internal/config"
	"github.com/dashfy/client-dashboard-api/internal/scheduler"
	"github.com/dashfy/client-dashboard-api/internal/usecases/authenticating"
	"github.com/dashfy/client-dashboard-api/internal/usecases/importing"
	"github.com/dashfy/client-dashboard-api/internal/usecases/managing"
	"github.com/dashfy/client-dashboard-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	dashboardRepo := repository.NewDashboardRepository(pgConn)
	dataPointRepo := repository.NewDataPointRepository(pgConn)
	costRepo := repository.NewOperationalCostRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, dashboardRepo, cfg)
	if err := authenticator.EnsureAdminUser(cfg.Bootstrap.AdminUsername, cfg.Bootstrap.AdminPassword); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar usuário administrador inicial")
	}

	sheetsClient := sheetsclient.NewClient(cfg)
	sheetsIntegrator := sheets.New(sheetsClient)

	importService := importing.NewService(dashboardRepo, dataPointRepo, sheetsIntegrator)
	manageService := managing.NewService(dashboardRepo, costRepo)
	reportService := reporting.NewService(dashboardRepo, dataPointRepo, costRepo)

	sheetSyncService := scheduler.NewSheetSyncService(dashboardRepo, importService, cfg)
	if err := sheetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de planilhas")
	}

	server, err := api.New(
		cfg,
		authenticator,
		manageService,
		reportService,
		importService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
