package dashboard

import (
	"net/url"
	"strings"

	"github.com/vfg2006/po-console/internal/domain"
)

// FilterParams mantém só os filtros conhecidos e preenchidos.
func FilterParams(values url.Values) domain.FilterParams {
	params := domain.FilterParams{}
	for _, field := range domain.FilterFields {
		if v := strings.TrimSpace(values.Get(field)); v != "" {
			params[field] = v
		}
	}
	return params
}
