package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/dashfy/client-dashboard-api/internal/api/handler"
	"github.com/dashfy/client-dashboard-api/internal/api/handler/router"
	"github.com/dashfy/client-dashboard-api/internal/config"
	"github.com/dashfy/client-dashboard-api/internal/usecases/authenticating"
	"github.com/dashfy/client-dashboard-api/internal/usecases/importing"
	"github.com/dashfy/client-dashboard-api/internal/usecases/managing"
	"github.com/dashfy/client-dashboard-api/internal/usecases/reporting"
	"github.com/dashfy/client-dashboard-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	manageService managing.Manager,
	reportService reporting.Reporter,
	importService importing.Importer,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Dashboards(authenticator, manageService, reportService)...),
		router.WithRoutes(handler.Importing(authenticator, importService)...),
		router.WithRoutes(handler.PublicDashboards(authenticator, reportService)...),
	)

	// Autenticação fica nos middlewares por rota: cada escopo de token protege
	// apenas as rotas do próprio escopo
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}
