package scoring

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/pkg/utils"
)

var ErrInvalidFilter = errors.New("filtro inválido")

// Fact é um PO de /all-data já com a data interpretada.
type Fact struct {
	domain.POFact
	Created time.Time
}

// Filter aplica os filtros do dashboard. Datas comparam com a meia-noite do
// dia informado e os filtros de texto são substrings sem distinção de caixa.
// POs sem publisher são descartados. POs sem data válida só saem quando
// há filtro de data; sem ele seguem com Created zero.
func Filter(facts []domain.POFact, filters domain.FilterParams) ([]Fact, error) {
	start, err := utils.ParseDate(filters.Get(domain.FilterStartDate))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFilter, "%s=%q", domain.FilterStartDate, filters.Get(domain.FilterStartDate))
	}
	end, err := utils.ParseDate(filters.Get(domain.FilterEndDate))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidFilter, "%s=%q", domain.FilterEndDate, filters.Get(domain.FilterEndDate))
	}

	dated := !start.IsZero() || !end.IsZero()

	productType := strings.ToLower(filters.Get(domain.FilterProductType))
	publisherName := strings.ToLower(filters.Get(domain.FilterPublisherName))

	out := make([]Fact, 0, len(facts))
	for _, f := range facts {
		if f.PublisherID == 0 {
			continue
		}

		created, ok := utils.ParseTimestamp(f.CreatedAt.String())
		if !ok && dated {
			continue
		}
		if !start.IsZero() && created.Before(*start) {
			continue
		}
		if !end.IsZero() && created.After(*end) {
			continue
		}
		if productType != "" && !strings.Contains(strings.ToLower(f.ProductType.String()), productType) {
			continue
		}
		if publisherName != "" && !strings.Contains(strings.ToLower(f.PublisherName.String()), publisherName) {
			continue
		}

		out = append(out, Fact{POFact: f, Created: created})
	}

	return out, nil
}
