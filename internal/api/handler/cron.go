package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/po-console/internal/scheduler"
	"github.com/vfg2006/po-console/pkg/apiErrors"
)

// CronJobType define qual tarefa agendada será executada manualmente
const (
	CronJobTypeJanitor      = "janitor"
	CronJobTypeBackendProbe = "backend-probe"
	CronJobTypeAll          = "all"
)

type Janitor interface {
	Run()
	GetStatus() map[string]any
}

type BackendProber interface {
	BackendStatuser
	Check(ctx context.Context) scheduler.ProbeStatus
}

// CronJobServices contém as tarefas que podem ser disparadas pela API
type CronJobServices struct {
	Janitor      Janitor
	BackendProbe BackendProber
}

// RunCronJob executa manualmente uma tarefa agendada
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		response := map[string]any{
			"message": "Cron job executada com sucesso",
			"type":    cronType,
		}

		switch cronType {
		case CronJobTypeJanitor:
			if services.Janitor == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de sessões não disponível", nil)
				return
			}
			services.Janitor.Run()

		case CronJobTypeBackendProbe:
			if services.BackendProbe == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação do back-office não disponível", nil)
				return
			}
			response["backend"] = services.BackendProbe.Check(r.Context())

		case CronJobTypeAll:
			if services.Janitor != nil {
				services.Janitor.Run()
			}
			if services.BackendProbe != nil {
				response["backend"] = services.BackendProbe.Check(r.Context())
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: janitor, backend-probe, all", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das tarefas agendadas
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.Janitor != nil {
			status[CronJobTypeJanitor] = services.Janitor.GetStatus()
		}
		if services.BackendProbe != nil {
			status[CronJobTypeBackendProbe] = services.BackendProbe.GetStatus()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
