package view

import (
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/internal/notify"
	"github.com/vfg2006/po-console/internal/usecases/creating"
	"github.com/vfg2006/po-console/internal/usecases/dashboard"
	"github.com/vfg2006/po-console/internal/usecases/managing"
)

// Layout envolve qualquer página completa.
type Layout struct {
	Title   string
	Active  string
	Notices []notify.Notice
	Content any
}

type PublisherForm struct {
	Values     creating.PublisherInput
	LegalTypes []domain.Option
}

func NewPublisherForm(values creating.PublisherInput) PublisherForm {
	return PublisherForm{Values: values, LegalTypes: domain.LegalEntityTypes}
}

type POForm struct {
	Values          creating.POInput
	ClientCode      string
	Publishers      []creating.PublisherOption
	ReferenceFailed bool
	Statuses        []domain.Option
	ProductTypes    []domain.Option
	POTypes         []domain.Option
}

func NewPOForm(values creating.POInput, publishers []creating.PublisherOption, referenceFailed bool) POForm {
	return POForm{
		Values:          values,
		ClientCode:      creating.ClientCodeFor(publishers, values.PublisherID),
		Publishers:      publishers,
		ReferenceFailed: referenceFailed,
		Statuses:        domain.POStatuses,
		ProductTypes:    domain.ProductTypes,
		POTypes:         domain.POTypes,
	}
}

type Dashboard struct {
	Refresh      dashboard.Refresh
	ProductTypes []domain.Option
	Placeholder  string
}

func NewDashboard(refresh dashboard.Refresh) Dashboard {
	return Dashboard{Refresh: refresh, ProductTypes: domain.ProductTypes, Placeholder: dashboard.MsgRFMPlaceholder}
}

// RFM é o conteúdo do container da tabela RFM.
type RFM struct {
	Table *dashboard.RFMTable
	Error string
}

type Manage struct {
	Page             *managing.Page
	PublisherColumns int
	POColumns        int
}

func NewManage(page *managing.Page) Manage {
	return Manage{
		Page:             page,
		PublisherColumns: managing.ColumnCount(domain.RecordKindPublisher),
		POColumns:        managing.ColumnCount(domain.RecordKindPO),
	}
}

// NotFound é o conteúdo da página de caminho inexistente.
type NotFound struct {
	Path string
}
