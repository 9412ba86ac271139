package handler

import (
	"net/http"

	"github.com/vfg2006/po-console/internal/notify"
	"github.com/vfg2006/po-console/internal/usecases/creating"
	"github.com/vfg2006/po-console/internal/view"
	"github.com/vfg2006/po-console/pkg/htmx"
	"github.com/vfg2006/po-console/pkg/log"
)

const (
	titlePublisher = "Khai báo Pháp nhân"
	titlePO        = "Khai báo PO"
	msgInvalidForm = "Dữ liệu gửi lên không hợp lệ."
)

func decodeForm(r *http.Request, v any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	return formDecoder.Decode(v, r.PostForm)
}

// respondForm troca só o formulário em requisições htmx e devolve a página
// inteira quando o envio veio de um formulário comum.
func (d Deps) respondForm(w http.ResponseWriter, r *http.Request, status int, page, partial, title string, form any, notices *notify.Collector) {
	if htmx.IsHxRequest(r) {
		d.partial(w, r, status, partial, form, notices)
		return
	}
	d.page(w, r, status, page, title, form, notices)
}

func PublisherFormPage(d Deps) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		form := view.NewPublisherForm(creating.PublisherInput{})
		d.page(w, r, http.StatusOK, view.PagePublisher, titlePublisher, form, notify.NewCollector())
	})
}

func PublisherSubmit(d Deps, creator creating.FormCreator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notices := notify.NewCollector()

		var input creating.PublisherInput
		if err := decodeForm(r, &input); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("forms: invalid publisher form")
			notices.Notify(msgInvalidForm, true)
			d.respondForm(w, r, http.StatusBadRequest, view.PagePublisher, view.PartialPublisherForm, titlePublisher, view.NewPublisherForm(input), notices)
			return
		}

		result, err := creator.CreatePublisher(r.Context(), input)
		if err != nil {
			notices.Notify(creating.Message(err), true)
			d.respondForm(w, r, http.StatusOK, view.PagePublisher, view.PartialPublisherForm, titlePublisher, view.NewPublisherForm(input), notices)
			return
		}

		notices.Notify(result.Message, false)
		d.respondForm(w, r, http.StatusOK, view.PagePublisher, view.PartialPublisherForm, titlePublisher, view.NewPublisherForm(creating.PublisherInput{}), notices)
	})
}

// poForm carrega a lista de publishers; a falha vira notificação e desabilita o envio.
func poForm(r *http.Request, creator creating.FormCreator, input creating.POInput, notices *notify.Collector) view.POForm {
	options, err := creator.PublisherOptions(r.Context())
	if err != nil {
		notices.Notify(creating.Message(err), true)
		return view.NewPOForm(input, nil, true)
	}
	return view.NewPOForm(input, options, false)
}

func POFormPage(d Deps, creator creating.FormCreator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notices := notify.NewCollector()
		form := poForm(r, creator, creating.POInput{}, notices)
		d.page(w, r, http.StatusOK, view.PagePO, titlePO, form, notices)
	})
}

func POSubmit(d Deps, creator creating.FormCreator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notices := notify.NewCollector()

		var input creating.POInput
		if err := decodeForm(r, &input); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("forms: invalid po form")
			notices.Notify(msgInvalidForm, true)
			d.respondForm(w, r, http.StatusBadRequest, view.PagePO, view.PartialPOForm, titlePO, poForm(r, creator, input, notices), notices)
			return
		}

		result, err := creator.CreatePO(r.Context(), input)
		if err != nil {
			notices.Notify(creating.Message(err), true)
			d.respondForm(w, r, http.StatusOK, view.PagePO, view.PartialPOForm, titlePO, poForm(r, creator, input, notices), notices)
			return
		}

		notices.Notify(result.Message, false)
		d.respondForm(w, r, http.StatusOK, view.PagePO, view.PartialPOForm, titlePO, poForm(r, creator, creating.POInput{}, notices), notices)
	})
}
