package managing

import (
	"github.com/pkg/errors"
)

// Action é um comando do controlador de tabela sobre uma linha.
type Action int

const (
	ActionEdit Action = iota + 1
	ActionSave
	ActionCancel
)

var ErrUnknownAction = errors.New("ação desconhecida")

func ParseAction(s string) (Action, error) {
	switch s {
	case "edit":
		return ActionEdit, nil
	case "save":
		return ActionSave, nil
	case "cancel":
		return ActionCancel, nil
	default:
		return 0, errors.Wrapf(ErrUnknownAction, "%q", s)
	}
}

func (a Action) String() string {
	switch a {
	case ActionEdit:
		return "edit"
	case ActionSave:
		return "save"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Mode é o estado de edição de uma linha.
type Mode int

const (
	ModeView Mode = iota
	ModeEditing
	ModeSaving
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeSaving:
		return "saving"
	default:
		return "view"
	}
}
