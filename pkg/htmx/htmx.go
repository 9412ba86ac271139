// Package htmx reúne os cabeçalhos do protocolo htmx usados pelo console.
package htmx

import "net/http"

const (
	HeaderRequest = "HX-Request"
	HeaderTarget  = "HX-Target"
	HeaderTrigger = "HX-Trigger"
	HeaderRefresh = "HX-Refresh"
)

// IsHxRequest indica se a requisição veio do htmx (troca parcial de HTML).
func IsHxRequest(r *http.Request) bool {
	return r.Header.Get(HeaderRequest) == "true"
}

// Target devolve o id do elemento alvo da troca.
func Target(r *http.Request) string {
	return r.Header.Get(HeaderTarget)
}

func SetTrigger(w http.ResponseWriter, value string) {
	w.Header().Set(HeaderTrigger, value)
}

// SetRefresh pede ao navegador que recarregue a página inteira.
func SetRefresh(w http.ResponseWriter) {
	w.Header().Set(HeaderRefresh, "true")
}
