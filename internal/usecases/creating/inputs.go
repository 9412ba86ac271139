package creating

import (
	"github.com/vfg2006/po-console/internal/domain"
)

// PublisherInput é o formulário de cadastro de pháp nhân.
type PublisherInput struct {
	Code       string `form:"ma_phap_nhan"`
	Name       string `form:"ten_phap_nhan"`
	LegalType  string `form:"loai_phap_nhan"`
	ClientCode string `form:"client_code"`
}

// Fields serializa o formulário no mapa plano enviado ao back-office.
func (in PublisherInput) Fields() map[string]string {
	return map[string]string{
		domain.FieldPublisherCode: in.Code,
		domain.FieldPublisherName: in.Name,
		domain.FieldLegalType:     in.LegalType,
		domain.FieldClientCode:    in.ClientCode,
	}
}

// POInput é o formulário de declaração de PO. O client_code exibido é derivado
// do publisher e não faz parte do envio.
type POInput struct {
	PublisherID     string `form:"id_phap_nhan"`
	Amount          string `form:"po_amount"`
	AvailableAmount string `form:"po_available_amount"`
	Status          string `form:"po_status"`
	ProductType     string `form:"loai_sp"`
	Type            string `form:"type_po"`
}

const FieldPOFormPublisherID = "id_phap_nhan"

func (in POInput) Fields() map[string]string {
	available := in.AvailableAmount
	if available == "" {
		available = in.Amount
	}

	return map[string]string{
		FieldPOFormPublisherID:        in.PublisherID,
		domain.FieldPOAmount:          in.Amount,
		domain.FieldPOAvailableAmount: available,
		domain.FieldPOStatus:          in.Status,
		domain.FieldProductType:       in.ProductType,
		domain.FieldPOType:            in.Type,
	}
}

// PublisherOption é uma entrada do seletor de publisher do formulário de PO.
type PublisherOption struct {
	ID         string
	Label      string
	ClientCode string
}

// Result é o desfecho de um envio aceito.
type Result struct {
	Message string
}
