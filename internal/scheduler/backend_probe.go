package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/po-console/internal/config"
)

const probeTimeout = 10 * time.Second

type Pinger interface {
	Ping(ctx context.Context) (time.Duration, error)
}

type BackendProbeConfig struct {
	CronSchedule string
	Enabled      bool
}

// ProbeStatus é o último resultado da verificação do back-office.
type ProbeStatus struct {
	Enabled   bool      `json:"enabled"`
	Checked   bool      `json:"checked"`
	Reachable bool      `json:"reachable"`
	LatencyMs int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// BackendProbeService verifica periodicamente se o back-office responde
type BackendProbeService struct {
	scheduler *gocron.Scheduler
	config    BackendProbeConfig
	backend   Pinger
	mu        sync.RWMutex
	status    ProbeStatus
}

func NewBackendProbeService(backend Pinger, cfg *config.Config) *BackendProbeService {
	probeConfig := BackendProbeConfig{
		CronSchedule: cfg.BackendProbe.CronSchedule,
		Enabled:      cfg.BackendProbe.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"enabled":       probeConfig.Enabled,
	}).Info("Configuração da verificação do back-office carregada")

	return &BackendProbeService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    probeConfig,
		backend:   backend,
		status:    ProbeStatus{Enabled: probeConfig.Enabled},
	}
}

func (s *BackendProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação do back-office desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando verificação do back-office")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do back-office: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando verificação do back-office")
		s.scheduler.Stop()
	}()

	return nil
}

// Check consulta o back-office uma vez e registra o resultado.
func (s *BackendProbeService) Check(ctx context.Context) ProbeStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	latency, err := s.backend.Ping(ctx)

	status := ProbeStatus{
		Enabled:   s.config.Enabled,
		Checked:   true,
		Reachable: err == nil,
		LatencyMs: latency.Milliseconds(),
		CheckedAt: time.Now(),
	}
	if err != nil {
		status.Error = err.Error()
		logrus.WithError(err).Warn("Back-office inacessível")
	}

	s.mu.Lock()
	s.status = status
	s.mu.Unlock()

	return status
}

func (s *BackendProbeService) GetStatus() ProbeStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}
