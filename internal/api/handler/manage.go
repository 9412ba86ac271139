package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/internal/notify"
	"github.com/vfg2006/po-console/internal/usecases/managing"
	"github.com/vfg2006/po-console/internal/view"
	"github.com/vfg2006/po-console/pkg/htmx"
	"github.com/vfg2006/po-console/pkg/log"
)

const titleManage = "Quản lý"

func ManagePage(d Deps, manager managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notices := notify.NewCollector()

		page, err := manager.Load(r.Context())
		if err != nil {
			notices.Notify(managing.LoadErrorMessage(err), true)
		}

		d.page(w, r, http.StatusOK, view.PageManage, titleManage, view.NewManage(page), notices)
	})
}

func parseManageRequest(r *http.Request) (managing.Request, error) {
	params := httprouter.ParamsFromContext(r.Context())

	kind, err := domain.ParseRecordKind(params.ByName("kind"))
	if err != nil {
		return managing.Request{}, err
	}

	id, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		return managing.Request{}, errors.Wrap(err, "id inválido")
	}

	action, err := managing.ParseAction(params.ByName("action"))
	if err != nil {
		return managing.Request{}, err
	}

	if err := r.ParseForm(); err != nil {
		return managing.Request{}, err
	}
	values := make(map[string]string, len(r.PostForm))
	for field := range r.PostForm {
		values[field] = r.PostForm.Get(field)
	}

	return managing.Request{
		SessionID: params.ByName("session"),
		Kind:      kind,
		ID:        domain.ID(id),
		Action:    action,
		Values:    values,
	}, nil
}

// ManageAction é o controlador de tabela: aplica Edit, Save ou Cancel e
// devolve a linha re-renderizada.
func ManageAction(d Deps, manager managing.Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		notices := notify.NewCollector()
		logger := log.ForContext(r.Context())

		req, err := parseManageRequest(r)
		if err != nil {
			logger.WithError(err).Warn("manage: invalid table action")
			notices.Notify(managing.MsgInvalidAction, true)
			noContent(w, r, http.StatusBadRequest, notices)
			return
		}

		outcome, err := manager.Dispatch(r.Context(), req)
		switch {
		case errors.Is(err, managing.ErrSessionExpired), errors.Is(err, managing.ErrRowNotFound):
			logger.WithError(err).Info("manage: session expired")
			notices.Notify(managing.MsgSessionExpired, true)
			htmx.SetRefresh(w)
			noContent(w, r, http.StatusOK, notices)
			return
		case errors.Is(err, managing.ErrInvalidTransition):
			logger.WithError(err).Warn("manage: rejected transition")
			notices.Notify(managing.MsgInvalidAction, true)
		case err != nil:
			logger.WithError(err).Error("manage: failed to dispatch action")
			notices.Notify(managing.MsgInvalidAction, true)
			noContent(w, r, http.StatusInternalServerError, notices)
			return
		}

		if outcome.Notice != "" {
			notices.Notify(outcome.Notice, outcome.IsError)
		}
		d.partial(w, r, http.StatusOK, view.PartialManageRow, outcome.Row, notices)
	})
}
