package backofficedomain

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse é o corpo de erro do back-office. Algumas rotas usam "error" em vez de "message".
type ErrorResponse struct {
	Success *bool  `json:"success,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Error representa uma rejeição do back-office: status não-2xx ou success:false.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("back-office respondeu com status %d", e.StatusCode)
	}
	return fmt.Sprintf("back-office respondeu com status %d: %s", e.StatusCode, e.Message)
}

// NewError monta o erro a partir do corpo da resposta, se ele for JSON.
func NewError(statusCode int, body []byte) *Error {
	e := &Error{StatusCode: statusCode}

	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err == nil {
		e.Message = resp.Message
		if e.Message == "" {
			e.Message = resp.Error
		}
	}

	return e
}

// UserMessage devolve a mensagem do servidor quando existir, senão o fallback.
func UserMessage(err error, fallback string) string {
	var backofficeErr *Error
	if errors.As(err, &backofficeErr) && backofficeErr.Message != "" {
		return backofficeErr.Message
	}
	return fallback
}

// IsRejection indica se o erro veio de uma resposta do back-office (e não de transporte).
func IsRejection(err error) bool {
	var backofficeErr *Error
	return errors.As(err, &backofficeErr)
}
