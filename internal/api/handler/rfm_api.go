package handler

import (
	"net/http"

	"github.com/pkg/errors"
	backofficedomain "github.com/vfg2006/po-console/infrastructure/integrator/backoffice/domain"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/internal/usecases/dashboard"
	"github.com/vfg2006/po-console/internal/usecases/scoring"
	"github.com/vfg2006/po-console/pkg/apiErrors"
	"github.com/vfg2006/po-console/pkg/log"
)

// RFMData expõe a tabela RFM em JSON no mesmo formato do serviço analítico.
func RFMData(source dashboard.RFMSource) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters := dashboard.FilterParams(r.URL.Query())

		resp, err := source.RFM(r.Context(), filters)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("rfm api: failed to load rfm data")

			switch {
			case errors.Is(err, scoring.ErrInvalidFilter):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), filters)
			case backofficedomain.IsRejection(err):
				apiErrors.WriteError(w, apiErrors.ErrExternalService, backofficedomain.UserMessage(err, dashboard.MsgRFMLoadFailed), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrCommunication, dashboard.MsgRFMLoadFailed, nil)
			}
			return
		}

		if resp.Data == nil {
			resp.Data = []domain.RFMRow{}
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
