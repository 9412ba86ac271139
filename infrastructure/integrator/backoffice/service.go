package backoffice

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/po-console/infrastructure/integrator/backoffice/backofficeclient"
	"github.com/vfg2006/po-console/internal/config"
	"github.com/vfg2006/po-console/internal/domain"
	"github.com/vfg2006/po-console/pkg/log"
)

// Integrator é a fachada do back-office usada pelos casos de uso do console.
type Integrator interface {
	Publishers(ctx context.Context) ([]domain.Publisher, error)
	POs(ctx context.Context) ([]domain.PO, error)
	CreatePublisher(ctx context.Context, fields map[string]string) (*domain.MutationResult, error)
	CreatePO(ctx context.Context, fields map[string]string) (*domain.MutationResult, error)
	UpdateRecord(ctx context.Context, kind domain.RecordKind, id domain.ID, fields map[string]string) (*domain.MutationResult, error)
	AllData(ctx context.Context) ([]domain.POFact, error)
	RFM(ctx context.Context, filters domain.FilterParams) (*domain.RFMResponse, error)
	Ping(ctx context.Context) (time.Duration, error)
}

type BackofficeService struct {
	cfg    *config.Config
	Client backofficeclient.Client
}

func New(cfg *config.Config, client backofficeclient.Client) Integrator {
	return &BackofficeService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *BackofficeService) Publishers(ctx context.Context) ([]domain.Publisher, error) {
	return s.Client.ListPublishers(ctx)
}

func (s *BackofficeService) POs(ctx context.Context) ([]domain.PO, error) {
	return s.Client.ListPOs(ctx)
}

func (s *BackofficeService) CreatePublisher(ctx context.Context, fields map[string]string) (*domain.MutationResult, error) {
	return s.Client.CreatePublisher(ctx, fields)
}

func (s *BackofficeService) CreatePO(ctx context.Context, fields map[string]string) (*domain.MutationResult, error) {
	return s.Client.CreatePO(ctx, fields)
}

// UpdateRecord envia o PUT para o endpoint do tipo de registro. O identificador
// nunca vai no corpo: ele é imutável e faz parte do caminho.
func (s *BackofficeService) UpdateRecord(ctx context.Context, kind domain.RecordKind, id domain.ID, fields map[string]string) (*domain.MutationResult, error) {
	payload := make(map[string]string, len(fields))
	for k, v := range fields {
		if k == kind.IDField() {
			continue
		}
		payload[k] = v
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"record_kind": kind,
		"record_id":   id,
	}).Debug("backoffice: updating record")

	switch kind {
	case domain.RecordKindPublisher:
		return s.Client.UpdatePublisher(ctx, id, payload)
	case domain.RecordKindPO:
		return s.Client.UpdatePO(ctx, id, payload)
	default:
		return nil, fmt.Errorf("backoffice: tipo de registro não suportado: %q", kind)
	}
}

func (s *BackofficeService) AllData(ctx context.Context) ([]domain.POFact, error) {
	return s.Client.GetAllData(ctx)
}

func (s *BackofficeService) RFM(ctx context.Context, filters domain.FilterParams) (*domain.RFMResponse, error) {
	return s.Client.GetRFMData(ctx, filters)
}

// Ping mede a latência de uma leitura simples no back-office.
func (s *BackofficeService) Ping(ctx context.Context) (time.Duration, error) {
	start := time.Now()
	_, err := s.Client.ListPublishers(ctx)
	return time.Since(start), err
}
