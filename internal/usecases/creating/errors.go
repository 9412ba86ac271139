package creating

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	backofficedomain "github.com/vfg2006/po-console/infrastructure/integrator/backoffice/domain"
)

// Mensagens exibidas ao operador
const (
	MsgPublisherCreated      = "Tạo pháp nhân thành công!"
	MsgPublisherCreateFailed = "Có lỗi xảy ra khi tạo pháp nhân"
	MsgPOCreateFailed        = "Có lỗi xảy ra khi tạo PO"
	MsgUnreachable           = "Không thể kết nối máy chủ"
)

var (
	ErrReferenceData = errors.New("erro ao carregar a lista de publishers")
	ErrSubmission    = errors.New("erro ao enviar o formulário")
)

// FormError carrega a mensagem que vai para a notificação e o erro original.
type FormError struct {
	Err     error
	Message string
	Cause   error
}

func (e *FormError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Err, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Message)
}

func (e *FormError) Unwrap() error {
	return e.Err
}

func newFormError(kind error, message string, cause error) *FormError {
	return &FormError{Err: kind, Message: message, Cause: cause}
}

// Message extrai a mensagem para o operador de qualquer erro deste pacote.
func Message(err error) string {
	var formErr *FormError
	if errors.As(err, &formErr) {
		return formErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// statusText descreve a falha como o navegador faria (statusText da resposta).
func statusText(err error) string {
	var backofficeErr *backofficedomain.Error
	if errors.As(err, &backofficeErr) {
		if text := http.StatusText(backofficeErr.StatusCode); text != "" {
			return text
		}
		return fmt.Sprintf("HTTP %d", backofficeErr.StatusCode)
	}
	return MsgUnreachable
}
