package domain

// PO (purchase order) é um compromisso de valor vinculado a um publisher.
type PO struct {
	ID              ID     `json:"po_id"`
	PublisherID     ID     `json:"ID_phap_nhan"`
	Code            Text   `json:"po_code"`
	Amount          Number `json:"po_amount"`
	AvailableAmount Number `json:"po_available_amount"`
	CreatedAt       Text   `json:"po_created_at"`
	Status          Text   `json:"po_status"`
	ProductType     Text   `json:"loai_sp"`
	Type            Text   `json:"type_po"`
}

const (
	FieldPOID              = "po_id"
	FieldPOPublisherID     = "ID_phap_nhan"
	FieldPOCode            = "po_code"
	FieldPOAmount          = "po_amount"
	FieldPOAvailableAmount = "po_available_amount"
	FieldPOCreatedAt       = "po_created_at"
	FieldPOStatus          = "po_status"
	FieldProductType       = "loai_sp"
	FieldPOType            = "type_po"
)

// POTimestampLayout é o formato ISO devolvido pelo back-office em po_created_at.
const POTimestampLayout = "2006-01-02T15:04:05"

// POFact é uma linha de /all-data: o PO já unido ao seu publisher.
type POFact struct {
	POID          ID     `json:"po_id"`
	PublisherID   ID     `json:"ID_phap_nhan"`
	PublisherName Text   `json:"ten_phap_nhan"`
	Amount        Number `json:"po_amount"`
	CreatedAt     Text   `json:"po_created_at"`
	ProductType   Text   `json:"loai_sp"`
}
