package handler

import (
	"net/http"

	"github.com/vfg2006/po-console/internal/notify"
	"github.com/vfg2006/po-console/internal/view"
	"github.com/vfg2006/po-console/pkg/htmx"
)

const msgNotFound = "Không tìm thấy trang."

// NotFound responde caminhos sem rota. Requisições htmx recebem só a notificação.
func NotFound(d Deps) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notices := notify.NewCollector()
		notices.Notify(msgNotFound, true)

		if htmx.IsHxRequest(r) {
			noContent(w, r, http.StatusNotFound, notices)
			return
		}

		d.page(w, r, http.StatusNotFound, view.PageNotFound, msgNotFound, view.NotFound{Path: r.URL.Path}, notices)
	})
}
