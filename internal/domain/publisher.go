package domain

// Publisher é a pessoa jurídica (pháp nhân) contra a qual os POs são emitidos.
type Publisher struct {
	ID         ID   `json:"ID_phap_nhan"`
	Code       Text `json:"ma_phap_nhan"`
	Name       Text `json:"ten_phap_nhan"`
	LegalType  Text `json:"loai_phap_nhan"`
	ClientCode Text `json:"client_code"`
}

// Campos de publisher conforme o contrato do back-office.
const (
	FieldPublisherID   = "ID_phap_nhan"
	FieldPublisherCode = "ma_phap_nhan"
	FieldPublisherName = "ten_phap_nhan"
	FieldLegalType     = "loai_phap_nhan"
	FieldClientCode    = "client_code"
)
