package backoffice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/po-console/infrastructure/integrator/backoffice/mocks"
	"github.com/vfg2006/po-console/internal/config"
	"github.com/vfg2006/po-console/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestBackofficeService_UpdateRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(&config.Config{}, mockClient)

	tests := []struct {
		name   string
		kind   domain.RecordKind
		id     domain.ID
		fields map[string]string
		setup  func()
	}{
		{
			name:   "Publisher remove o identificador do corpo",
			kind:   domain.RecordKindPublisher,
			id:     4,
			fields: map[string]string{"ID_phap_nhan": "4", "ten_phap_nhan": "Công ty B"},
			setup: func() {
				mockClient.EXPECT().
					UpdatePublisher(gomock.Any(), domain.ID(4), map[string]string{"ten_phap_nhan": "Công ty B"}).
					Return(&domain.MutationResult{Message: "ok"}, nil)
			},
		},
		{
			name:   "PO mantém a FK do publisher e remove po_id",
			kind:   domain.RecordKindPO,
			id:     9,
			fields: map[string]string{"po_id": "9", "ID_phap_nhan": "4", "po_status": "Activate"},
			setup: func() {
				mockClient.EXPECT().
					UpdatePO(gomock.Any(), domain.ID(9), map[string]string{"ID_phap_nhan": "4", "po_status": "Activate"}).
					Return(&domain.MutationResult{Message: "ok"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.UpdateRecord(context.Background(), tt.kind, tt.id, tt.fields)
			require.NoError(t, err)
			assert.Equal(t, "ok", result.Message)
		})
	}
}

func TestBackofficeService_UpdateRecordUnknownKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := New(&config.Config{}, mocks.NewMockClient(ctrl))

	_, err := service.UpdateRecord(context.Background(), domain.RecordKind("user"), 1, nil)
	assert.Error(t, err)
}
