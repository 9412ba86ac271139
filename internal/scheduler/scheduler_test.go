package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/po-console/infrastructure/integrator/backoffice/mocks"
	"github.com/vfg2006/po-console/internal/config"
	"github.com/vfg2006/po-console/internal/usecases/managing"
	"go.uber.org/mock/gomock"
)

type countingPruner struct {
	calls   int
	removed int
}

func (p *countingPruner) Prune() int {
	p.calls++
	return p.removed
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Janitor.CronSchedule = "*/10 * * * *"
	cfg.Janitor.Enabled = true
	cfg.BackendProbe.CronSchedule = "* * * * *"
	cfg.BackendProbe.Enabled = true
	return cfg
}

func TestJanitorService_Run(t *testing.T) {
	sessions := &countingPruner{removed: 3}
	views := &countingPruner{}

	service := NewJanitorService(map[string]Pruner{"sessions": sessions, "views": views}, testConfig())
	service.Run()

	assert.Equal(t, 1, sessions.calls)
	assert.Equal(t, 1, views.calls)

	status := service.GetStatus()
	assert.Equal(t, map[string]int{"sessions": 3, "views": 0}, status["last_removed"])
	assert.False(t, status["last_run_at"].(time.Time).IsZero())
}

type panickingPruner struct {
	calls int
}

func (p *panickingPruner) Prune() int {
	p.calls++
	panic("mapa corrompido")
}

func TestJanitorService_RunSurvivesPanic(t *testing.T) {
	broken := &panickingPruner{}
	sessions := &countingPruner{removed: 1}

	service := NewJanitorService(map[string]Pruner{"broken": broken, "sessions": sessions}, testConfig())

	assert.NotPanics(t, service.Run)
	assert.NotPanics(t, service.Run)

	assert.Equal(t, 2, broken.calls)
	assert.Equal(t, 2, sessions.calls)

	status := service.GetStatus()
	assert.Equal(t, map[string]int{"broken": 0, "sessions": 1}, status["last_removed"])
}

func TestJanitorService_PrunesExpiredSessions(t *testing.T) {
	store := managing.NewSessionStore(0)
	_, err := store.Create(nil, nil)
	assert.NoError(t, err)

	time.Sleep(time.Millisecond)

	service := NewJanitorService(map[string]Pruner{"sessions": store}, testConfig())
	service.Run()

	assert.Equal(t, 0, store.Len())
}

func TestJanitorService_StartDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Janitor.Enabled = false

	service := NewJanitorService(nil, cfg)
	assert.NoError(t, service.Start(context.Background()))
}

func TestJanitorService_StartInvalidCron(t *testing.T) {
	cfg := testConfig()
	cfg.Janitor.CronSchedule = "não é cron"

	service := NewJanitorService(nil, cfg)
	assert.Error(t, service.Start(context.Background()))
}

func TestBackendProbeService_Check(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackoffice := mocks.NewMockIntegrator(ctrl)
	service := NewBackendProbeService(mockBackoffice, testConfig())

	assert.False(t, service.GetStatus().Checked)

	t.Run("Back-office acessível", func(t *testing.T) {
		mockBackoffice.EXPECT().Ping(gomock.Any()).Return(120*time.Millisecond, nil)

		status := service.Check(context.Background())
		assert.True(t, status.Reachable)
		assert.Equal(t, int64(120), status.LatencyMs)
		assert.Empty(t, status.Error)
		assert.Equal(t, status, service.GetStatus())
	})

	t.Run("Back-office inacessível", func(t *testing.T) {
		mockBackoffice.EXPECT().Ping(gomock.Any()).Return(time.Duration(0), errors.New("connection refused"))

		status := service.Check(context.Background())
		assert.False(t, status.Reachable)
		assert.Equal(t, "connection refused", status.Error)
		assert.True(t, service.GetStatus().Checked)
	})
}
