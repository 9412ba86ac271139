package creating

import (
	"context"
	"fmt"

	"github.com/vfg2006/po-console/infrastructure/integrator/backoffice"
	backofficedomain "github.com/vfg2006/po-console/infrastructure/integrator/backoffice/domain"
	"github.com/vfg2006/po-console/pkg/log"
)

type FormCreator interface {
	PublisherOptions(ctx context.Context) ([]PublisherOption, error)
	CreatePublisher(ctx context.Context, in PublisherInput) (Result, error)
	CreatePO(ctx context.Context, in POInput) (Result, error)
}

type Service struct {
	backoffice backoffice.Integrator
}

func NewService(integrator backoffice.Integrator) FormCreator {
	return &Service{backoffice: integrator}
}

// PublisherOptions carrega os dados de referência do formulário de PO.
func (s *Service) PublisherOptions(ctx context.Context) ([]PublisherOption, error) {
	publishers, err := s.backoffice.Publishers(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("creating: failed to load publishers")
		return nil, newFormError(ErrReferenceData, "Lỗi tải danh sách pháp nhân: "+statusText(err), err)
	}

	options := make([]PublisherOption, 0, len(publishers))
	for _, p := range publishers {
		options = append(options, PublisherOption{
			ID:         p.ID.String(),
			Label:      fmt.Sprintf("%s (ID: %s)", p.Name, p.ID),
			ClientCode: p.ClientCode.String(),
		})
	}

	return options, nil
}

func (s *Service) CreatePublisher(ctx context.Context, in PublisherInput) (Result, error) {
	result, err := s.backoffice.CreatePublisher(ctx, in.Fields())
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("creating: publisher rejected")
		return Result{}, newFormError(ErrSubmission, backofficedomain.UserMessage(err, MsgPublisherCreateFailed), err)
	}

	message := result.Message
	if message == "" {
		message = MsgPublisherCreated
	}

	return Result{Message: message}, nil
}

func (s *Service) CreatePO(ctx context.Context, in POInput) (Result, error) {
	result, err := s.backoffice.CreatePO(ctx, in.Fields())
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("creating: po rejected")
		return Result{}, newFormError(ErrSubmission, backofficedomain.UserMessage(err, MsgPOCreateFailed), err)
	}

	return Result{
		Message: fmt.Sprintf("Tạo PO thành công! ID: %s, Code: %s", result.NewPOID, result.NewPOCode),
	}, nil
}

// ClientCodeFor devolve o client_code do publisher selecionado, ou vazio.
func ClientCodeFor(options []PublisherOption, publisherID string) string {
	for _, o := range options {
		if o.ID == publisherID {
			return o.ClientCode
		}
	}
	return ""
}

