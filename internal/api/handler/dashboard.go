package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/internal/notify"
	"github.com/vfg2006/po-console/internal/usecases/dashboard"
	"github.com/vfg2006/po-console/internal/view"
	"github.com/vfg2006/po-console/pkg/htmx"
	"github.com/vfg2006/po-console/pkg/log"
)

const titleDashboard = "Dashboard"

// DashboardPage abre uma nova visualização sem filtros.
func DashboardPage(d Deps, service dashboard.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewID, err := service.NewView()
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to open view")
			http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
			return
		}

		refresh := service.Update(viewID, domain.FilterParams{})
		d.page(w, r, http.StatusOK, view.PageDashboard, titleDashboard, view.NewDashboard(refresh), notify.NewCollector())
	})
}

// DashboardRefresh aplica os filtros enviados e devolve gráficos e container RFM.
func DashboardRefresh(d Deps, service dashboard.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		params := dashboard.FilterParams(query)

		viewID := query.Get("view")
		if viewID == "" {
			var err error
			if viewID, err = service.NewView(); err != nil {
				log.ForContext(r.Context()).WithError(err).Error("dashboard: failed to open view")
				http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
				return
			}
		}

		content := view.NewDashboard(service.Update(viewID, params))
		if !htmx.IsHxRequest(r) {
			d.page(w, r, http.StatusOK, view.PageDashboard, titleDashboard, content, notify.NewCollector())
			return
		}

		d.partial(w, r, http.StatusOK, view.PartialDashboardUpdate, content, nil)
	})
}

// DashboardRFM carrega a tabela RFM de uma atualização. Respostas de
// atualizações já substituídas saem como 204 e o htmx não as troca.
func DashboardRFM(d Deps, service dashboard.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		notices := notify.NewCollector()

		token, err := strconv.ParseUint(params.ByName("seq"), 10, 64)
		if err != nil {
			notices.Notify("Lỗi tải dữ liệu RFM: "+dashboard.MsgRFMLoadFailed, true)
			noContent(w, r, http.StatusBadRequest, notices)
			return
		}

		table, err := service.LoadRFM(r.Context(), params.ByName("view"), token, dashboard.FilterParams(r.URL.Query()))
		switch {
		case errors.Is(err, dashboard.ErrStaleResponse):
			noContent(w, r, http.StatusNoContent, nil)
			return
		case err != nil:
			message := dashboard.ErrorMessage(err)
			notices.Notify("Lỗi tải dữ liệu RFM: "+message, true)
			d.partial(w, r, http.StatusOK, view.PartialRFM, view.RFM{Error: message}, notices)
			return
		}

		if !table.Empty() {
			notices.Notify(table.Notice(), false)
		}
		d.partial(w, r, http.StatusOK, view.PartialRFM, view.RFM{Table: table}, notices)
	})
}
