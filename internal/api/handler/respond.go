package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/go-playground/form"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/po-console/internal/notify"
	"github.com/vfg2006/po-console/internal/view"
	"github.com/vfg2006/po-console/pkg/htmx"
	"github.com/vfg2006/po-console/pkg/log"
)

var (
	json        = jsoniter.ConfigCompatibleWithStandardLibrary
	formDecoder = form.NewDecoder()
)

const contentTypeHTML = "text/html; charset=utf-8"

// Deps reúne o que os handlers HTML precisam para responder.
type Deps struct {
	Renderer *view.Renderer
}

// page renderiza a página completa com as notificações dentro de #message-container.
func (d Deps) page(w http.ResponseWriter, r *http.Request, status int, page, title string, content any, notices *notify.Collector) {
	d.write(w, r, status, func(out io.Writer) error {
		return d.Renderer.Page(out, page, view.Layout{
			Title:   title,
			Notices: notices.Notices(),
			Content: content,
		})
	})
}

// partial renderiza um fragmento htmx com as notificações no HX-Trigger.
func (d Deps) partial(w http.ResponseWriter, r *http.Request, status int, name string, data any, notices *notify.Collector) {
	setTrigger(w, r, notices)
	d.write(w, r, status, func(out io.Writer) error {
		return d.Renderer.Partial(out, name, data)
	})
}

// noContent responde sem corpo; o htmx não troca nada mas dispara as notificações.
func noContent(w http.ResponseWriter, r *http.Request, status int, notices *notify.Collector) {
	setTrigger(w, r, notices)
	w.WriteHeader(status)
}

func setTrigger(w http.ResponseWriter, r *http.Request, notices *notify.Collector) {
	if notices == nil || notices.Empty() {
		return
	}

	header, err := notices.TriggerHeader()
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: failed to encode notices")
		return
	}
	htmx.SetTrigger(w, header)
}

func (d Deps) write(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("handler: failed to render view")
		http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("handler: failed to write response")
	}
}
