package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/po-console/internal/scheduler"
)

type BackendStatuser interface {
	GetStatus() scheduler.ProbeStatus
}

type healthcheckResponse struct {
	Time    time.Time             `json:"time"`
	Backend scheduler.ProbeStatus `json:"backend"`
}

// HealthcheckHandler responde sempre 200; a situação do back-office é informativa.
func HealthcheckHandler(probe BackendStatuser) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(healthcheckResponse{
			Time:    time.Now(),
			Backend: probe.GetStatus(),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
