package domain

import "fmt"

// RecordKind identifica a tabela de origem de um registro editável.
type RecordKind string

const (
	RecordKindPublisher RecordKind = "publisher"
	RecordKindPO        RecordKind = "po"
)

func ParseRecordKind(s string) (RecordKind, error) {
	switch RecordKind(s) {
	case RecordKindPublisher:
		return RecordKindPublisher, nil
	case RecordKindPO:
		return RecordKindPO, nil
	default:
		return "", fmt.Errorf("tipo de registro desconhecido: %q", s)
	}
}

// IDField devolve o campo identificador do tipo de registro.
func (k RecordKind) IDField() string {
	if k == RecordKindPO {
		return FieldPOID
	}
	return FieldPublisherID
}
