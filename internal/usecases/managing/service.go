package managing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/po-console/infrastructure/integrator/backoffice"
	backofficedomain "github.com/vfg2006/po-console/infrastructure/integrator/backoffice/domain"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/pkg/log"
	"golang.org/x/sync/errgroup"
)

const (
	MsgLoadFailed      = "Lỗi tải dữ liệu trang quản lý: "
	MsgLoadFailedCause = "Lỗi khi tải dữ liệu từ server"
	MsgSaveFailed      = "Lỗi lưu dữ liệu"
	MsgSaved           = "Cập nhật thành công."
	MsgSessionExpired  = "Phiên làm việc đã hết hạn, vui lòng tải lại trang."
	MsgInvalidAction   = "Thao tác không hợp lệ."
)

// Page é o conteúdo da página de gestão.
type Page struct {
	SessionID  string
	Publishers []RowView
	POs        []RowView
	Failed     bool
}

// Request é um comando vindo do controlador de tabela.
type Request struct {
	SessionID string
	Kind      domain.RecordKind
	ID        domain.ID
	Action    Action
	Values    map[string]string
}

// Outcome é a linha re-renderizada e a notificação resultante.
type Outcome struct {
	Row     RowView
	Notice  string
	IsError bool
}

type Manager interface {
	Load(ctx context.Context) (*Page, error)
	Dispatch(ctx context.Context, req Request) (*Outcome, error)
}

type Service struct {
	backoffice backoffice.Integrator
	sessions   *SessionStore
}

func NewService(integrator backoffice.Integrator, sessions *SessionStore) Manager {
	return &Service{backoffice: integrator, sessions: sessions}
}

// Load busca publishers e POs em paralelo e abre uma sessão de edição.
// Em falha a página volta marcada como Failed junto com o erro.
func (s *Service) Load(ctx context.Context) (*Page, error) {
	var (
		publishers []domain.Publisher
		pos        []domain.PO
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		publishers, err = s.backoffice.Publishers(gctx)
		return errors.Wrap(err, "publishers")
	})
	g.Go(func() error {
		var err error
		pos, err = s.backoffice.POs(gctx)
		return errors.Wrap(err, "pos")
	})

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("managing: failed to load tables")
		return &Page{Failed: true}, err
	}

	session, err := s.sessions.Create(publishers, pos)
	if err != nil {
		return &Page{Failed: true}, err
	}

	return &Page{
		SessionID:  session.ID,
		Publishers: session.Publishers.Views(),
		POs:        session.POs.Views(),
	}, nil
}

// LoadErrorMessage monta a notificação de falha de carga.
func LoadErrorMessage(err error) string {
	return MsgLoadFailed + backofficedomain.UserMessage(err, MsgLoadFailedCause)
}

// Dispatch aplica a ação à linha. Transições inválidas devolvem a linha
// inalterada junto com ErrInvalidTransition.
func (s *Service) Dispatch(ctx context.Context, req Request) (*Outcome, error) {
	session, err := s.sessions.Get(req.SessionID)
	if err != nil {
		return nil, err
	}

	row, ok := session.Table(req.Kind).Row(req.ID)
	if !ok {
		return nil, errors.Wrapf(ErrRowNotFound, "%s %s", req.Kind, req.ID)
	}

	switch req.Action {
	case ActionEdit:
		view, err := row.Edit()
		return &Outcome{Row: view}, err
	case ActionCancel:
		view, err := row.Cancel()
		return &Outcome{Row: view}, err
	case ActionSave:
		return s.save(ctx, row, req)
	default:
		return &Outcome{Row: row.View()}, errors.Wrapf(ErrUnknownAction, "%d", req.Action)
	}
}

// save não segura o lock da linha durante o PUT.
func (s *Service) save(ctx context.Context, row *Row, req Request) (*Outcome, error) {
	values, err := row.BeginSave(req.Values)
	if err != nil {
		return &Outcome{Row: row.View()}, err
	}

	result, err := s.backoffice.UpdateRecord(ctx, req.Kind, req.ID, values)
	if err != nil {
		log.ForContext(ctx).WithError(err).
			WithField("kind", req.Kind).
			WithField("id", req.ID).
			Warn("managing: save failed")

		return &Outcome{
			Row:     row.CompleteSave(false),
			Notice:  backofficedomain.UserMessage(err, MsgSaveFailed),
			IsError: true,
		}, nil
	}

	message := result.Message
	if message == "" {
		message = MsgSaved
	}

	return &Outcome{Row: row.CompleteSave(true), Notice: message}, nil
}
