package dashboard

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	backofficedomain "github.com/vfg2006/po-console/infrastructure/integrator/backoffice/domain"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/pkg/log"
	"github.com/vfg2006/po-console/pkg/utils"
)

const (
	MsgRFMEmpty       = "Không tìm thấy Pháp nhân nào khớp với tiêu chí lọc hoặc không có dữ liệu PO hợp lệ."
	MsgRFMLoadFailed  = "Lỗi khi tải dữ liệu RFM."
	MsgRFMPlaceholder = "Đang tải dữ liệu RFM..."
	viewIDSize        = 16
)

var ErrStaleResponse = errors.New("resposta RFM substituída por uma requisição mais nova")

// Chart é um gráfico renderizado pelo serviço analítico.
type Chart struct {
	Name  string
	Title string
	Src   string
}

var charts = []Chart{
	{Name: "monthly", Title: "Doanh thu (Sum) và Số lượng (Count) PO theo tháng"},
	{Name: "campaign", Title: "Tỷ trọng doanh thu theo loại sản phẩm"},
	{Name: "pareto", Title: "Pareto Doanh thu theo Phân khúc RFM"},
}

// Refresh descreve uma atualização do dashboard. Todas as URLs carregam a
// mesma query de filtros.
type Refresh struct {
	ViewID string
	Query  string
	Params domain.FilterParams
	Charts []Chart
	RFMURL string
}

// RFMTable é o conteúdo do container RFM já em formato de exibição.
type RFMTable struct {
	Rows    []domain.RFMRow
	Message string
}

func (t *RFMTable) Empty() bool {
	return len(t.Rows) == 0
}

// Notice é a mensagem de sucesso da carga.
func (t *RFMTable) Notice() string {
	return fmt.Sprintf("Đã tải %d Pháp nhân RFM.", len(t.Rows))
}

type RFMSource interface {
	RFM(ctx context.Context, filters domain.FilterParams) (*domain.RFMResponse, error)
}

type Dashboard interface {
	NewView() (string, error)
	Update(viewID string, params domain.FilterParams) Refresh
	LoadRFM(ctx context.Context, viewID string, token uint64, params domain.FilterParams) (*RFMTable, error)
}

type Service struct {
	chartBaseURL string
	sequencer    *Sequencer
	source       RFMSource
}

func NewService(chartBaseURL string, sequencer *Sequencer, source RFMSource) Dashboard {
	return &Service{
		chartBaseURL: chartBaseURL,
		sequencer:    sequencer,
		source:       source,
	}
}

func (s *Service) NewView() (string, error) {
	id, err := utils.GenerateID(viewIDSize)
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar id da visualização")
	}
	s.sequencer.Register(id)

	return id, nil
}

// Update deriva as fontes dos gráficos e da tabela RFM a partir dos filtros.
func (s *Service) Update(viewID string, params domain.FilterParams) Refresh {
	query := params.Encode()
	token := s.sequencer.Next(viewID)

	refresh := Refresh{
		ViewID: viewID,
		Query:  query,
		Params: params,
		Charts: make([]Chart, 0, len(charts)),
		RFMURL: withQuery(fmt.Sprintf("/dashboard/rfm/%s/%d", url.PathEscape(viewID), token), query),
	}
	for _, c := range charts {
		c.Src = withQuery(fmt.Sprintf("%s/plot/%s.png", s.chartBaseURL, c.Name), query)
		refresh.Charts = append(refresh.Charts, c)
	}

	return refresh
}

// LoadRFM busca a tabela RFM. Se outra atualização foi emitida para a mesma
// visualização enquanto a busca acontecia, devolve ErrStaleResponse.
func (s *Service) LoadRFM(ctx context.Context, viewID string, token uint64, params domain.FilterParams) (*RFMTable, error) {
	if !s.sequencer.IsCurrent(viewID, token) {
		return nil, ErrStaleResponse
	}

	resp, err := s.source.RFM(ctx, params)
	if !s.sequencer.IsCurrent(viewID, token) {
		return nil, ErrStaleResponse
	}
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("filters", params.Encode()).Error("dashboard: failed to load rfm")
		return nil, err
	}

	table := &RFMTable{Rows: resp.Data}
	if table.Empty() {
		table.Message = MsgRFMEmpty
	}

	return table, nil
}

// ErrorMessage devolve o texto da falha de carga RFM para o operador.
func ErrorMessage(err error) string {
	return backofficedomain.UserMessage(err, MsgRFMLoadFailed)
}

func withQuery(base, query string) string {
	if query == "" {
		return base
	}
	return base + "?" + query
}
