package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "validação", code: ErrInvalidFormat, wantStatus: http.StatusBadRequest},
		{name: "serviço externo", code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{name: "sessão expirada", code: ErrSessionExpired, wantStatus: http.StatusGone},
		{name: "código desconhecido", code: "XYZ", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "falhou", map[string]string{"campo": "start_date"})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "falhou", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrCommunication).Code)

	apiErr := FromError(errors.New("connection refused"), ErrCommunication)
	assert.Equal(t, ErrCommunication, apiErr.Code)
	assert.Equal(t, "connection refused", apiErr.Message)
}
