package managing

import (
	"maps"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/po-console/internal/domain"
)

var ErrInvalidTransition = errors.New("transição de estado inválida")

// Cell é uma célula pronta para o template.
type Cell struct {
	Name     string
	Display  string
	Value    string
	Input    InputKind
	Editable bool
	Options  []domain.Option
}

// RowView é uma cópia imutável da linha para renderização.
type RowView struct {
	SessionID string
	Kind      domain.RecordKind
	ID        string
	Mode      Mode
	Cells     []Cell
}

func (v RowView) Editing() bool {
	return v.Mode == ModeEditing
}

func (v RowView) Saving() bool {
	return v.Mode == ModeSaving
}

// Row guarda o ciclo de edição de um registro: valores confirmados (âncoras),
// rascunho em edição e o modo atual.
type Row struct {
	mu      sync.Mutex
	session string
	kind    domain.RecordKind
	id      domain.ID
	schema  []FieldSpec
	anchors map[string]string
	draft   map[string]string
	mode    Mode
}

func NewRow(session string, kind domain.RecordKind, id domain.ID, anchors map[string]string) *Row {
	return &Row{
		session: session,
		kind:    kind,
		id:      id,
		schema:  Schema(kind),
		anchors: maps.Clone(anchors),
		mode:    ModeView,
	}
}

func (r *Row) ID() domain.ID {
	return r.id
}

func (r *Row) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.mode
}

func (r *Row) View() RowView {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot()
}

// Edit passa de View para Editing com o rascunho igual às âncoras.
func (r *Row) Edit() (RowView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode != ModeView {
		return r.snapshot(), r.invalid(ActionEdit)
	}

	r.draft = maps.Clone(r.anchors)
	r.mode = ModeEditing

	return r.snapshot(), nil
}

// BeginSave coleta os valores editáveis enviados e passa para Saving.
// Campos ausentes no envio mantêm o valor do rascunho.
func (r *Row) BeginSave(submitted map[string]string) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode != ModeEditing {
		return nil, r.invalid(ActionSave)
	}

	values := make(map[string]string)
	for _, f := range r.schema {
		if !f.Editable {
			continue
		}
		if v, ok := submitted[f.Name]; ok {
			values[f.Name] = v
		} else {
			values[f.Name] = r.draft[f.Name]
		}
	}

	r.draft = maps.Clone(values)
	r.mode = ModeSaving

	return values, nil
}

// CompleteSave encerra um Saving. Em sucesso o rascunho vira âncora;
// em falha a linha volta para Editing com o rascunho preservado.
func (r *Row) CompleteSave(saved bool) RowView {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode != ModeSaving {
		return r.snapshot()
	}

	if saved {
		for k, v := range r.draft {
			r.anchors[k] = v
		}
		r.draft = nil
		r.mode = ModeView
	} else {
		r.mode = ModeEditing
	}

	return r.snapshot()
}

// Cancel descarta o rascunho sem chamada de rede.
func (r *Row) Cancel() (RowView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mode != ModeEditing {
		return r.snapshot(), r.invalid(ActionCancel)
	}

	r.draft = nil
	r.mode = ModeView

	return r.snapshot(), nil
}

func (r *Row) invalid(action Action) error {
	return errors.Wrapf(ErrInvalidTransition, "%s em %s (%s %s)", action, r.mode, r.kind, r.id)
}

func (r *Row) snapshot() RowView {
	view := RowView{
		SessionID: r.session,
		Kind:      r.kind,
		ID:        r.id.String(),
		Mode:      r.mode,
		Cells:     make([]Cell, 0, len(r.schema)),
	}

	for _, f := range r.schema {
		anchor := r.anchors[f.Name]
		value := anchor
		if r.draft != nil && f.Editable {
			value = r.draft[f.Name]
		}

		view.Cells = append(view.Cells, Cell{
			Name:     f.Name,
			Display:  f.Display(anchor),
			Value:    value,
			Input:    f.Input,
			Editable: f.Editable,
			Options:  f.Options(),
		})
	}

	return view
}
