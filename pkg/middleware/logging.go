package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/vfg2006/po-console/pkg/htmx"
	"github.com/vfg2006/po-console/pkg/log"
)

// slowRequest é o limite a partir do qual a requisição é marcada como lenta
const slowRequest = 500 * time.Millisecond

// Caminhos de alto volume que só aparecem no log em caso de erro
var quietPrefixes = []string{"/static/", "/metrics", "/healthcheck"}

func isQuiet(path string) bool {
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// requestFields descreve a requisição; fora de desenvolvimento inclui os cabeçalhos htmx.
func requestFields(r *http.Request, correlationID string, isDev bool) log.Fields {
	fields := log.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"htmx":   htmx.IsHxRequest(r),
	}
	if isDev {
		return fields
	}

	fields["correlation_id"] = correlationID
	fields["remote_addr"] = r.RemoteAddr
	fields["query"] = r.URL.RawQuery
	fields["user_agent"] = r.UserAgent()
	fields["htmx_target"] = htmx.Target(r)
	return fields
}

// LoggingMiddleware registra o início e o fim de cada requisição do console
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)
			lrw := newLoggingResponseWriter(w)

			if isQuiet(r.URL.Path) {
				next.ServeHTTP(lrw, r)
				if lrw.statusCode >= 500 {
					log.L.WithFields(log.Fields{
						"correlation_id": correlationID,
						"path":           r.URL.Path,
						"status_code":    lrw.statusCode,
					}).Error("Requisição finalizada com erro")
				}
				return
			}

			isDev := log.IsDevelopment()
			fields := requestFields(r, correlationID, isDev)
			log.L.WithFields(fields).Info("→ Iniciando requisição")

			startTime := time.Now()
			next.ServeHTTP(lrw, r)
			elapsed := time.Since(startTime)

			logCompletion(fields, lrw.statusCode, elapsed, isDev)
		})
	}
}

func logCompletion(fields log.Fields, status int, elapsed time.Duration, isDev bool) {
	fields["status_code"] = status
	fields["duration_ms"] = elapsed.Milliseconds()
	logger := log.L.WithFields(fields)

	message := "Requisição finalizada"
	if isDev {
		symbol := "✓"
		if status >= 400 {
			symbol = "✗"
		}
		message = fmt.Sprintf("%s Completada em %s", symbol, formatDuration(elapsed))
	}

	switch {
	case status >= 500:
		logger.Error(message)
	case status >= 400:
		logger.Warn(message)
	default:
		logger.Info(message)
	}

	if elapsed > slowRequest {
		logger.Warnf("⚠ Requisição lenta: %s", formatDuration(elapsed))
	}
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// loggingResponseWriter captura o status code para logs e métricas
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware recupera panics dos handlers e responde 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				err := recover()
				if err == nil {
					return
				}

				stack := make([]byte, 4096)
				stackTrace := string(stack[:runtime.Stack(stack, false)])

				logger := log.L.WithFields(log.Fields{
					"correlation_id": log.GetCorrelationID(r.Context()),
					"panic_error":    err,
					"method":         r.Method,
					"path":           r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stackTrace)
				} else {
					logger.WithField("stack_trace", stackTrace).Error("Erro não tratado na aplicação")
				}

				http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
