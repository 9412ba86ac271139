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
	"github.com/vfg2006/po-console/internal/api/handler"
	"github.com/vfg2006/po-console/internal/api/handler/router"
	"github.com/vfg2006/po-console/internal/config"
	"github.com/vfg2006/po-console/internal/usecases/creating"
	"github.com/vfg2006/po-console/internal/usecases/dashboard"
	"github.com/vfg2006/po-console/internal/usecases/managing"
	"github.com/vfg2006/po-console/internal/view"
	"github.com/vfg2006/po-console/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso servidos pelo console.
type Services struct {
	Creator   creating.FormCreator
	Dashboard dashboard.Dashboard
	RFMSource dashboard.RFMSource
	Manager   managing.Manager
	CronJobs  handler.CronJobServices
}

func New(config *config.Config, renderer *view.Renderer, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, renderer, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta o roteador com a cadeia de middlewares.
func NewHandler(config *config.Config, renderer *view.Renderer, services Services) http.Handler {
	deps := handler.Deps{Renderer: renderer}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.CronJobs.BackendProbe)...),
		router.WithRoutes(handler.Static()...),
		router.WithRoutes(handler.Dashboard(deps, services.Dashboard, services.RFMSource)...),
		router.WithRoutes(handler.Forms(deps, services.Creator)...),
		router.WithRoutes(handler.Manage(deps, services.Manager)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
		router.WithNotFound(handler.NotFound(deps)),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Metrics(),
		middleware.Cors(config.Server.AllowedOrigins),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Console iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do console")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	// Sessões de gestão e visualizações ficam só em memória e são descartadas aqui
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
