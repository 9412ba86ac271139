package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/po-console/infrastructure/integrator/backoffice"
	"github.com/vfg2006/po-console/infrastructure/integrator/backoffice/backofficeclient"
	"github.com/vfg2006/po-console/internal/api"
	"github.com/vfg2006/po-console/internal/api/handler"
	"github.com/vfg2006/po-console/internal/config"
	"github.com/vfg2006/po-console/internal/scheduler"
	"github.com/vfg2006/po-console/internal/usecases/creating"
	"github.com/vfg2006/po-console/internal/usecases/dashboard"
	"github.com/vfg2006/po-console/internal/usecases/managing"
	"github.com/vfg2006/po-console/internal/usecases/scoring"
	"github.com/vfg2006/po-console/internal/view"
)

func main() {
	// Inicializa configuração de logs
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
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backofficeClient := backofficeclient.NewClient(cfg)
	backofficeIntegrator := backoffice.New(cfg, backofficeClient)

	sequencer := dashboard.NewSequencer(cfg.Sessions.DashboardViewTTL)
	sessions := managing.NewSessionStore(cfg.Sessions.ManageTTL)

	rfm := rfmSource(cfg, backofficeIntegrator)
	dashboardService := dashboard.NewService(cfg.Analytics.ChartBaseURL, sequencer, rfm)
	creatingService := creating.NewService(backofficeIntegrator)
	managingService := managing.NewService(backofficeIntegrator, sessions)

	janitorService := scheduler.NewJanitorService(map[string]scheduler.Pruner{
		"manage_sessions": sessions,
		"dashboard_views": sequencer,
	}, cfg)
	backendProbeService := scheduler.NewBackendProbeService(backofficeIntegrator, cfg)

	if err := janitorService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o janitor de sessões")
	} else {
		logrus.Info("Janitor de sessões iniciado com sucesso")
	}

	if err := backendProbeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a verificação do back-office")
	} else {
		logrus.Info("Verificação do back-office iniciada com sucesso")
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar templates")
	}

	server, err := api.New(cfg, renderer, api.Services{
		Creator:   creatingService,
		Dashboard: dashboardService,
		RFMSource: rfm,
		Manager:   managingService,
		CronJobs: handler.CronJobServices{
			Janitor:      janitorService,
			BackendProbe: backendProbeService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// rfmSource escolhe entre o serviço analítico remoto e o cálculo local sobre /all-data
func rfmSource(cfg *config.Config, integrator backoffice.Integrator) dashboard.RFMSource {
	if cfg.Analytics.RFMSource == config.RFMSourceLocal {
		return scoring.NewService(integrator)
	}
	return integrator
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
