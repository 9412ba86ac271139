package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/po-console/internal/view"
)

// StaticHandler serve console.js e console.css embutidos no binário.
func StaticHandler() http.Handler {
	files := http.FileServer(http.FS(view.Static()))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := r.Clone(r.Context())
		req.URL.Path = httprouter.ParamsFromContext(r.Context()).ByName("filepath")
		files.ServeHTTP(w, req)
	})
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
