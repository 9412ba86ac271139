package domain

// Option é um valor possível de um campo enumerado.
type Option struct {
	Value string
	Label string
}

var LegalEntityTypes = []Option{
	{Value: "CÔNG TY TNHH", Label: "CÔNG TY TNHH"},
	{Value: "CÔNG TY CỔ PHẦN", Label: "CÔNG TY CỔ PHẦN"},
	{Value: "CHI NHÁNH", Label: "CHI NHÁNH"},
	{Value: "NGÂN HÀNG", Label: "NGÂN HÀNG"},
	{Value: "KHÁC", Label: "Khác"},
	{Value: "NHÀ NƯỚC", Label: "NHÀ NƯỚC"},
	{Value: "VĂN PHÒNG ĐẠI DIỆN", Label: "VĂN PHÒNG ĐẠI DIỆN"},
}

var ProductTypes = []Option{
	{Value: "Quà vật lý", Label: "Quà vật lý"},
	{Value: "Voucher", Label: "Voucher"},
	{Value: "Others", Label: "Others"},
}

var POTypes = []Option{
	{Value: "normal", Label: "PO thu tiền"},
	{Value: "not-in-revenue", Label: "Không tính doanh thu"},
	{Value: "testing", Label: "PO test"},
}

var POStatuses = []Option{
	{Value: "Pending", Label: "Pending"},
	{Value: "Activate", Label: "Activate"},
	{Value: "Deactivate", Label: "Deactivate"},
}

// OptionsFor devolve as opções de um campo enumerado, ou nil se o campo é livre.
func OptionsFor(field string) []Option {
	switch field {
	case FieldLegalType:
		return LegalEntityTypes
	case FieldProductType:
		return ProductTypes
	case FieldPOType:
		return POTypes
	case FieldPOStatus:
		return POStatuses
	default:
		return nil
	}
}
