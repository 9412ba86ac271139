// Package scheduler contém os jobs periódicos do console
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

// Pruner é qualquer estado em memória com expiração.
type Pruner interface {
	Prune() int
}

type JanitorConfig struct {
	CronSchedule string
	Enabled      bool
}

// JanitorService remove sessões de gestão e visualizações do dashboard expiradas
type JanitorService struct {
	scheduler        *gocron.Scheduler
	config           JanitorConfig
	targets          map[string]Pruner
	runMutex         sync.Mutex
	running          bool
	lastRunAt        time.Time
	lastRemovedCount map[string]int
}

func NewJanitorService(targets map[string]Pruner, cfg *config.Config) *JanitorService {
	janitorConfig := JanitorConfig{
		CronSchedule: cfg.Janitor.CronSchedule,
		Enabled:      cfg.Janitor.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": janitorConfig.CronSchedule,
		"enabled":       janitorConfig.Enabled,
	}).Info("Configuração do janitor de sessões carregada")

	return &JanitorService{
		scheduler:        gocron.NewScheduler(time.Local),
		config:           janitorConfig,
		targets:          targets,
		lastRemovedCount: map[string]int{},
	}
}

// Start inicia o agendador
func (s *JanitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Janitor de sessões desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando janitor de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Run()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar janitor de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando janitor de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa uma varredura. Execuções sobrepostas são ignoradas e o
// panic de um alvo não impede os demais nem as próximas execuções.
func (s *JanitorService) Run() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Janitor de sessões já em andamento, ignorando")
		return
	}
	s.running = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	removed := make(map[string]int, len(s.targets))
	for name, target := range s.targets {
		removed[name] = prune(name, target)
	}

	s.runMutex.Lock()
	s.lastRunAt = time.Now()
	s.lastRemovedCount = removed
	s.runMutex.Unlock()

	fields := logrus.Fields{}
	for name, count := range removed {
		fields[name] = count
	}
	logrus.WithFields(fields).Debug("Janitor de sessões concluído")
}

func prune(name string, target Pruner) (removed int) {
	defer func() {
		if err := recover(); err != nil {
			logrus.WithFields(logrus.Fields{
				"target":      name,
				"panic_error": err,
			}).Error("Erro não tratado durante a limpeza")
		}
	}()

	return target.Prune()
}

// GetStatus retorna o status atual do agendador
func (s *JanitorService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"enabled":      s.config.Enabled,
		"cron":         s.config.CronSchedule,
		"last_run_at":  s.lastRunAt,
		"last_removed": s.lastRemovedCount,
	}
}
