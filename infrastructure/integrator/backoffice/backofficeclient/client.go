package backofficeclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/po-console/internal/config"
	"github.com/vfg2006/po-console/internal/domain"
)

type Client interface {
	ListPublishers(ctx context.Context) ([]domain.Publisher, error)
	CreatePublisher(ctx context.Context, fields map[string]string) (*domain.MutationResult, error)
	UpdatePublisher(ctx context.Context, id domain.ID, fields map[string]string) (*domain.MutationResult, error)
	ListPOs(ctx context.Context) ([]domain.PO, error)
	CreatePO(ctx context.Context, fields map[string]string) (*domain.MutationResult, error)
	UpdatePO(ctx context.Context, id domain.ID, fields map[string]string) (*domain.MutationResult, error)
	GetAllData(ctx context.Context) ([]domain.POFact, error)
	GetRFMData(ctx context.Context, filters domain.FilterParams) (*domain.RFMResponse, error)
}

type BackofficeClient struct {
	httpClient   *http.Client
	backendURL   string
	analyticsURL string
}

// NewClient cria o cliente da API do back-office e do serviço de analytics.
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &BackofficeClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		backendURL:   cfg.Backend.URL,
		analyticsURL: cfg.Analytics.URL,
	}
}
