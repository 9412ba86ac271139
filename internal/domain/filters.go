package domain

import "net/url"

// Campos do formulário de filtros do dashboard.
const (
	FilterStartDate     = "start_date"
	FilterEndDate       = "end_date"
	FilterProductType   = "loai_sp"
	FilterPublisherName = "ten_phap_nhan"
)

// FilterFields lista os filtros aceitos, na ordem do formulário.
var FilterFields = []string{
	FilterStartDate,
	FilterEndDate,
	FilterProductType,
	FilterPublisherName,
}

// FilterParams contém apenas os filtros preenchidos.
type FilterParams map[string]string

// Encode gera a query string canônica (chaves ordenadas).
func (p FilterParams) Encode() string {
	values := url.Values{}
	for k, v := range p {
		values.Set(k, v)
	}
	return values.Encode()
}

func (p FilterParams) Get(key string) string {
	return p[key]
}
