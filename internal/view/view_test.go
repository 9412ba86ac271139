package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/internal/notify"
	"github.com/vfg2006/po-console/internal/usecases/creating"
	"github.com/vfg2006/po-console/internal/usecases/dashboard"
	"github.com/vfg2006/po-console/internal/usecases/managing"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	return r
}

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func renderPartial(t *testing.T, name string, data any) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Partial(&buf, name, data))
	// Fragmentos <tr> precisam de uma tabela para o parser HTML não descartá-los
	if name == PartialManageRow {
		return parse(t, "<table><tbody>"+buf.String()+"</tbody></table>")
	}
	return parse(t, buf.String())
}

func renderPage(t *testing.T, page string, data Layout) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, newRenderer(t).Page(&buf, page, data))
	return parse(t, buf.String())
}

func TestRenderer_UnknownPage(t *testing.T) {
	var buf bytes.Buffer
	err := newRenderer(t).Page(&buf, "inexistente", Layout{})
	assert.ErrorIs(t, err, ErrUnknownPage)
	assert.Zero(t, buf.Len())
}

func TestLayout_Notices(t *testing.T) {
	collector := notify.NewCollector()
	collector.Notify("primeira", false)
	collector.Notify("segunda", true)

	doc := renderPage(t, PagePublisher, Layout{
		Title:   "Khai báo Pháp nhân",
		Notices: collector.Notices(),
		Content: NewPublisherForm(creating.PublisherInput{}),
	})

	items := doc.Find("#message-container li")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "segunda", items.Eq(0).Text())
	assert.True(t, items.Eq(0).HasClass("error"))
	assert.True(t, items.Eq(1).HasClass("success"))
	assert.Equal(t, "Khai báo Pháp nhân", doc.Find("nav a.active").Text())
}

func TestPublisherForm(t *testing.T) {
	doc := renderPartial(t, PartialPublisherForm, NewPublisherForm(creating.PublisherInput{
		Code:      "PN01",
		Name:      `Công ty "A" <b>`,
		LegalType: "NGÂN HÀNG",
	}))

	assert.Equal(t, "PN01", doc.Find(`input[name="ma_phap_nhan"]`).AttrOr("value", ""))
	assert.Equal(t, `Công ty "A" <b>`, doc.Find(`input[name="ten_phap_nhan"]`).AttrOr("value", ""))
	assert.Equal(t, "NGÂN HÀNG", doc.Find(`select[name="loai_phap_nhan"] option[selected]`).AttrOr("value", ""))
	assert.Equal(t, "Khác", doc.Find(`option[value="KHÁC"]`).Text())
	assert.Contains(t, doc.Find("button[type=submit]").Text(), "Khai báo Pháp nhân")
	assert.Equal(t, "find button[type=submit]", doc.Find("form").AttrOr("hx-disabled-elt", ""))
}

func TestPOForm(t *testing.T) {
	publishers := []creating.PublisherOption{
		{ID: "2", Label: "Công ty B (ID: 2)", ClientCode: "CB"},
		{ID: "7", Label: "Ngân hàng X (ID: 7)", ClientCode: "NX"},
	}

	t.Run("Mantém seleção e client code", func(t *testing.T) {
		doc := renderPartial(t, PartialPOForm, NewPOForm(creating.POInput{PublisherID: "7", Amount: "1500000"}, publishers, false))

		options := doc.Find("#po-publisher option")
		assert.Equal(t, 3, options.Length())
		assert.Equal(t, "-- Chọn một pháp nhân --", options.First().Text())
		assert.Equal(t, "NX", doc.Find("#po-publisher option[selected]").AttrOr("data-client-code", ""))
		assert.Equal(t, "NX", doc.Find("#po-client-code").AttrOr("value", ""))
		_, hasName := doc.Find("#po-client-code").Attr("name")
		assert.False(t, hasName)
		assert.Equal(t, "po-available-amount", doc.Find("#po-amount").AttrOr("data-mirror", ""))
	})

	t.Run("Falha na lista desabilita o envio", func(t *testing.T) {
		doc := renderPartial(t, PartialPOForm, NewPOForm(creating.POInput{}, nil, true))

		option := doc.Find("#po-publisher option")
		require.Equal(t, 1, option.Length())
		assert.Equal(t, "Lỗi tải danh sách", option.Text())
		_, disabled := option.Attr("disabled")
		assert.True(t, disabled)
		_, submitDisabled := doc.Find("button[type=submit]").Attr("disabled")
		assert.True(t, submitDisabled)
	})
}

func TestDashboardPage(t *testing.T) {
	service := dashboard.NewService("http://charts.local", dashboard.NewSequencer(0), nil)
	refresh := service.Update("view1", domain.FilterParams{"loai_sp": "Voucher"})

	doc := renderPage(t, PageDashboard, Layout{Title: "Dashboard", Content: NewDashboard(refresh)})

	assert.Equal(t, "view1", doc.Find(`input[name="view"]`).AttrOr("value", ""))
	assert.Equal(t, "Voucher", doc.Find(`select[name="loai_sp"] option[selected]`).AttrOr("value", ""))

	imgs := doc.Find(".chart img")
	require.Equal(t, 3, imgs.Length())
	assert.Equal(t, "http://charts.local/plot/monthly.png?loai_sp=Voucher", imgs.Eq(0).AttrOr("src", ""))

	container := doc.Find("#rfm-container")
	assert.Equal(t, "load", container.AttrOr("hx-trigger", ""))
	assert.Equal(t, refresh.RFMURL, container.AttrOr("hx-get", ""))
	assert.Equal(t, "Đang tải dữ liệu RFM...", strings.TrimSpace(container.Text()))

	reset := doc.Find(`button[type="reset"]`)
	assert.Equal(t, "click delay:50ms", reset.AttrOr("hx-trigger", ""))
}

func TestRFMTable(t *testing.T) {
	t.Run("Sem linhas não há tabela", func(t *testing.T) {
		doc := renderPartial(t, PartialRFM, RFM{Table: &dashboard.RFMTable{Message: dashboard.MsgRFMEmpty}})

		assert.Zero(t, doc.Find("table").Length())
		assert.Equal(t, dashboard.MsgRFMEmpty, strings.TrimSpace(doc.Find("p").Text()))
	})

	t.Run("Linhas com colunas numéricas", func(t *testing.T) {
		doc := renderPartial(t, PartialRFM, RFM{Table: &dashboard.RFMTable{Rows: []domain.RFMRow{{
			PublisherID:   3,
			PublisherName: "Công ty <C>",
			Segment:       "Champion",
			RScore:        domain.NumberFromInt(5),
			FScore:        domain.NumberFromInt(4),
			MScore:        domain.NumberFromInt(5),
			Recency:       domain.NumberFromInt(12),
			Frequency:     domain.Number{},
			Monetary:      domain.NewNumber(decimal.NewFromInt(1500000)),
		}}}})

		headers := doc.Find("thead th")
		assert.Equal(t, 9, headers.Length())
		assert.Equal(t, "Monetary (VNĐ)", headers.Last().Text())

		cells := doc.Find("tbody tr").First().Find("td")
		require.Equal(t, 9, cells.Length())
		assert.Equal(t, "3", cells.Eq(0).Text())
		assert.Equal(t, "Công ty <C>", cells.Eq(1).Text())
		assert.Equal(t, "", cells.Eq(7).Text())
		assert.Equal(t, "1.500.000", cells.Eq(8).Text())
		assert.Equal(t, 6, doc.Find("tbody td.num").Length())
	})

	t.Run("Erro substitui a tabela", func(t *testing.T) {
		doc := renderPartial(t, PartialRFM, RFM{Error: "timeout"})

		assert.Zero(t, doc.Find("table").Length())
		assert.Equal(t, "Lỗi tải dữ liệu: timeout", doc.Find("p.error").Text())
	})
}

func TestManagePage(t *testing.T) {
	t.Run("Falha de carga mostra linha de erro", func(t *testing.T) {
		doc := renderPage(t, PageManage, Layout{Title: "Quản lý", Content: NewManage(&managing.Page{Failed: true})})

		assert.Equal(t, "6", doc.Find("#publisher-body td").AttrOr("colspan", ""))
		assert.Equal(t, "10", doc.Find("#po-body td").AttrOr("colspan", ""))
		assert.Equal(t, "Lỗi tải dữ liệu.", doc.Find("#po-body td").Text())
	})

	t.Run("Listas vazias", func(t *testing.T) {
		doc := renderPage(t, PageManage, Layout{Title: "Quản lý", Content: NewManage(&managing.Page{SessionID: "s1"})})

		assert.Equal(t, "Không có dữ liệu.", doc.Find("#publisher-body td").Text())
		assert.Equal(t, "closest tr", doc.Find("#po-body").AttrOr("hx-target", ""))
	})

	t.Run("Campos com HTML são escapados", func(t *testing.T) {
		store := managing.NewSessionStore(0)
		session, err := store.Create([]domain.Publisher{{ID: 1, Name: "<script>alert(1)</script>"}}, nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, newRenderer(t).Page(&buf, PageManage, Layout{
			Title:   "Quản lý",
			Content: NewManage(&managing.Page{SessionID: session.ID, Publishers: session.Publishers.Views()}),
		}))

		assert.Contains(t, buf.String(), "&lt;script&gt;alert(1)&lt;/script&gt;")
		doc := parse(t, buf.String())
		assert.Zero(t, doc.Find("#publisher-body script").Length())
		assert.Equal(t, "<script>alert(1)</script>", doc.Find(`#publisher-body td[data-field="ten_phap_nhan"]`).Text())
	})
}

func TestManageRow(t *testing.T) {
	anchors := map[string]string{
		"po_id":               "9",
		"ID_phap_nhan":        "2",
		"po_code":             "CB_001",
		"po_amount":           "1500000",
		"po_available_amount": "1500000",
		"po_created_at":       "2024-05-01T09:05:00",
		"po_status":           "Activate",
		"loai_sp":             "Voucher",
		"type_po":             "legado",
	}

	t.Run("Modo visualização", func(t *testing.T) {
		row := managing.NewRow("s1", domain.RecordKindPO, 9, anchors)
		doc := renderPartial(t, PartialManageRow, row.View())

		tr := doc.Find("tr#po-9")
		assert.Equal(t, 10, tr.Find("td").Length())
		assert.Equal(t, "09:05:00 1/5/2024", tr.Find(`td[data-field="po_created_at"]`).Text())
		assert.Equal(t, "Sửa", tr.Find(".btn-edit").Text())
		assert.Equal(t, "/manage/s1/po/9/edit", tr.Find(".btn-edit").AttrOr("hx-post", ""))
		assert.Zero(t, tr.Find("input, select").Length())
	})

	t.Run("Modo edição", func(t *testing.T) {
		row := managing.NewRow("s1", domain.RecordKindPO, 9, anchors)
		view, err := row.Edit()
		require.NoError(t, err)

		doc := renderPartial(t, PartialManageRow, view)
		tr := doc.Find("tr#po-9")

		assert.Equal(t, "Activate", tr.Find(`select[name="po_status"] option[selected]`).AttrOr("value", ""))
		assert.Equal(t, "legado", tr.Find(`select[name="type_po"] option[selected]`).AttrOr("value", ""))
		assert.Equal(t, "number", tr.Find(`input[name="po_amount"]`).AttrOr("type", ""))
		assert.Zero(t, tr.Find(`input[name="po_created_at"], input[name="po_id"], input[name="ID_phap_nhan"]`).Length())
		assert.Equal(t, "Lưu", tr.Find(".btn-save").Text())
		assert.Equal(t, "closest tr", tr.Find(".btn-save").AttrOr("hx-include", ""))
		assert.Equal(t, "Hủy", tr.Find(".btn-cancel").Text())
		assert.Equal(t, "Đang lưu...", tr.Find(".btn-saving").Text())
	})
}
