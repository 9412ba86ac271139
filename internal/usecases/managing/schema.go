package managing

import (
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/pkg/utils"
)

type InputKind string

const (
	InputText   InputKind = "text"
	InputNumber InputKind = "number"
	InputSelect InputKind = "select"
)

// FieldSpec descreve uma coluna editável (ou não) da tabela de gestão.
type FieldSpec struct {
	Name     string
	Input    InputKind
	Editable bool
}

func (f FieldSpec) Options() []domain.Option {
	return domain.OptionsFor(f.Name)
}

// Display formata o valor confirmado para exibição.
func (f FieldSpec) Display(anchor string) string {
	if f.Name == domain.FieldPOCreatedAt {
		return utils.FormatViTimestamp(anchor)
	}
	return anchor
}

var publisherSchema = []FieldSpec{
	{Name: domain.FieldPublisherID, Input: InputNumber},
	{Name: domain.FieldPublisherCode, Input: InputText, Editable: true},
	{Name: domain.FieldPublisherName, Input: InputText, Editable: true},
	{Name: domain.FieldLegalType, Input: InputSelect, Editable: true},
	{Name: domain.FieldClientCode, Input: InputText, Editable: true},
}

// O back-office descarta ID_phap_nhan no PUT de PO, por isso o vínculo não é editável.
var poSchema = []FieldSpec{
	{Name: domain.FieldPOID, Input: InputNumber},
	{Name: domain.FieldPOPublisherID, Input: InputNumber},
	{Name: domain.FieldPOCode, Input: InputText, Editable: true},
	{Name: domain.FieldPOAmount, Input: InputNumber, Editable: true},
	{Name: domain.FieldPOAvailableAmount, Input: InputNumber, Editable: true},
	{Name: domain.FieldPOCreatedAt, Input: InputText},
	{Name: domain.FieldPOStatus, Input: InputSelect, Editable: true},
	{Name: domain.FieldProductType, Input: InputSelect, Editable: true},
	{Name: domain.FieldPOType, Input: InputSelect, Editable: true},
}

// Schema devolve as colunas de dados do tipo de registro, na ordem da tabela.
func Schema(kind domain.RecordKind) []FieldSpec {
	if kind == domain.RecordKindPO {
		return poSchema
	}
	return publisherSchema
}

// ColumnCount inclui a coluna de ações.
func ColumnCount(kind domain.RecordKind) int {
	return len(Schema(kind)) + 1
}

func publisherAnchors(p domain.Publisher) map[string]string {
	return map[string]string{
		domain.FieldPublisherID:   p.ID.String(),
		domain.FieldPublisherCode: p.Code.String(),
		domain.FieldPublisherName: p.Name.String(),
		domain.FieldLegalType:     p.LegalType.String(),
		domain.FieldClientCode:    p.ClientCode.String(),
	}
}

func poAnchors(p domain.PO) map[string]string {
	return map[string]string{
		domain.FieldPOID:              p.ID.String(),
		domain.FieldPOPublisherID:     p.PublisherID.String(),
		domain.FieldPOCode:            p.Code.String(),
		domain.FieldPOAmount:          p.Amount.String(),
		domain.FieldPOAvailableAmount: p.AvailableAmount.String(),
		domain.FieldPOCreatedAt:       p.CreatedAt.String(),
		domain.FieldPOStatus:          p.Status.String(),
		domain.FieldProductType:       p.ProductType.String(),
		domain.FieldPOType:            p.Type.String(),
	}
}
