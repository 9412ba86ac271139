package dashboard

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	backofficedomain "github.com/vfg2006/po-console/infrastructure/integrator/backoffice/domain"
	"github.com/vfg2006/po-console/infrastructure/integrator/backoffice/mocks"
	"github.com/vfg2006/po-console/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestFilterParams(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   domain.FilterParams
	}{
		{
			name:   "Formulário vazio",
			values: url.Values{"start_date": {""}, "end_date": {""}, "loai_sp": {""}, "ten_phap_nhan": {"   "}},
			want:   domain.FilterParams{},
		},
		{
			name:   "Mantém apenas os preenchidos",
			values: url.Values{"start_date": {"2024-01-01"}, "loai_sp": {""}, "ten_phap_nhan": {" Công ty A "}},
			want:   domain.FilterParams{"start_date": "2024-01-01", "ten_phap_nhan": "Công ty A"},
		},
		{
			name:   "Ignora campos desconhecidos",
			values: url.Values{"view": {"abc"}, "end_date": {"2024-02-01"}},
			want:   domain.FilterParams{"end_date": "2024-02-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterParams(tt.values))
		})
	}
}

func queryOf(t *testing.T, rawURL string) string {
	t.Helper()
	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	return parsed.RawQuery
}

func TestService_Update(t *testing.T) {
	sequencer := NewSequencer(time.Hour)
	service := NewService("http://127.0.0.1:8000", sequencer, nil)

	viewID, err := service.NewView()
	require.NoError(t, err)

	t.Run("Todas as fontes recebem a mesma query", func(t *testing.T) {
		params := domain.FilterParams{"start_date": "2024-01-01", "loai_sp": "Voucher"}
		refresh := service.Update(viewID, params)

		assert.Equal(t, "loai_sp=Voucher&start_date=2024-01-01", refresh.Query)
		require.Len(t, refresh.Charts, 3)
		assert.Equal(t, "http://127.0.0.1:8000/plot/monthly.png?loai_sp=Voucher&start_date=2024-01-01", refresh.Charts[0].Src)
		assert.Equal(t, "Tỷ trọng doanh thu theo loại sản phẩm", refresh.Charts[1].Title)
		assert.True(t, strings.HasSuffix(strings.Split(refresh.Charts[2].Src, "?")[0], "/plot/pareto.png"))

		for _, c := range refresh.Charts {
			assert.Equal(t, refresh.Query, queryOf(t, c.Src))
		}
		assert.Equal(t, refresh.Query, queryOf(t, refresh.RFMURL))
	})

	t.Run("Filtros vazios não geram parâmetros", func(t *testing.T) {
		refresh := service.Update(viewID, domain.FilterParams{})

		assert.Empty(t, refresh.Query)
		for _, c := range refresh.Charts {
			assert.NotContains(t, c.Src, "?")
		}
		assert.NotContains(t, refresh.RFMURL, "?")
	})

	t.Run("Cada atualização emite um novo token", func(t *testing.T) {
		first := service.Update(viewID, domain.FilterParams{})
		second := service.Update(viewID, domain.FilterParams{})

		assert.NotEqual(t, first.RFMURL, second.RFMURL)
		assert.True(t, strings.HasPrefix(second.RFMURL, "/dashboard/rfm/"+viewID+"/"))
	})
}

func TestService_LoadRFM(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockIntegrator(ctrl)
	sequencer := NewSequencer(time.Hour)
	service := NewService("", sequencer, mockSource)

	viewID, err := service.NewView()
	require.NoError(t, err)
	params := domain.FilterParams{"loai_sp": "Voucher"}

	t.Run("Carga com linhas", func(t *testing.T) {
		token := sequencer.Next(viewID)
		mockSource.EXPECT().RFM(gomock.Any(), params).Return(&domain.RFMResponse{
			Data: []domain.RFMRow{{PublisherID: 1}, {PublisherID: 2}},
		}, nil)

		table, err := service.LoadRFM(context.Background(), viewID, token, params)
		require.NoError(t, err)
		assert.False(t, table.Empty())
		assert.Equal(t, "Đã tải 2 Pháp nhân RFM.", table.Notice())
	})

	t.Run("Sem linhas mostra a mensagem de vazio", func(t *testing.T) {
		token := sequencer.Next(viewID)
		mockSource.EXPECT().RFM(gomock.Any(), params).Return(&domain.RFMResponse{Data: []domain.RFMRow{}}, nil)

		table, err := service.LoadRFM(context.Background(), viewID, token, params)
		require.NoError(t, err)
		assert.True(t, table.Empty())
		assert.Equal(t, MsgRFMEmpty, table.Message)
	})

	t.Run("Token antigo é descartado sem consultar", func(t *testing.T) {
		old := sequencer.Next(viewID)
		sequencer.Next(viewID)

		_, err := service.LoadRFM(context.Background(), viewID, old, params)
		assert.ErrorIs(t, err, ErrStaleResponse)
	})

	t.Run("Atualização durante a consulta descarta a resposta", func(t *testing.T) {
		token := sequencer.Next(viewID)
		mockSource.EXPECT().RFM(gomock.Any(), params).DoAndReturn(
			func(ctx context.Context, _ domain.FilterParams) (*domain.RFMResponse, error) {
				service.Update(viewID, domain.FilterParams{})
				return &domain.RFMResponse{Data: []domain.RFMRow{{PublisherID: 9}}}, nil
			})

		_, err := service.LoadRFM(context.Background(), viewID, token, params)
		assert.ErrorIs(t, err, ErrStaleResponse)
	})

	t.Run("Erro do serviço analítico", func(t *testing.T) {
		token := sequencer.Next(viewID)
		mockSource.EXPECT().RFM(gomock.Any(), params).
			Return(nil, &backofficedomain.Error{StatusCode: 500, Message: "Lỗi xử lý RFM: KeyError"})

		_, err := service.LoadRFM(context.Background(), viewID, token, params)
		require.Error(t, err)
		assert.Equal(t, "Lỗi xử lý RFM: KeyError", ErrorMessage(err))
	})
}

func TestErrorMessage_Fallback(t *testing.T) {
	assert.Equal(t, MsgRFMLoadFailed, ErrorMessage(context.DeadlineExceeded))
}

func TestSequencer(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	sequencer := NewSequencer(time.Hour)
	sequencer.now = func() time.Time { return now }

	t.Run("Visualização desconhecida não bloqueia", func(t *testing.T) {
		assert.True(t, sequencer.IsCurrent("desconhecida", 1))
	})

	t.Run("Somente o último token é atual", func(t *testing.T) {
		first := sequencer.Next("v1")
		second := sequencer.Next("v1")

		assert.False(t, sequencer.IsCurrent("v1", first))
		assert.True(t, sequencer.IsCurrent("v1", second))
	})

	t.Run("Visualizações são independentes", func(t *testing.T) {
		token := sequencer.Next("v2")
		sequencer.Next("v1")

		assert.True(t, sequencer.IsCurrent("v2", token))
	})

	t.Run("Prune remove visualizações inativas", func(t *testing.T) {
		sequencer.Register("antiga")
		now = now.Add(30 * time.Minute)
		sequencer.Next("v1")
		now = now.Add(45 * time.Minute)

		removed := sequencer.Prune()
		assert.Equal(t, 2, removed)
		assert.Equal(t, 1, sequencer.Len())
	})
}
