package backofficeclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vfg2006/po-console/internal/domain"
)

// GetAllData busca os POs unidos aos publishers, base do cálculo RFM local.
func (c *BackofficeClient) GetAllData(ctx context.Context) ([]domain.POFact, error) {
	var facts []domain.POFact

	err := c.do(ctx, request{
		operation: "get_all_data",
		method:    http.MethodGet,
		baseURL:   c.backendURL,
		path:      "/all-data",
	}, &facts)
	if err != nil {
		return nil, err
	}

	return facts, nil
}

// GetRFMData consulta a tabela RFM já calculada pelo serviço de analytics.
func (c *BackofficeClient) GetRFMData(ctx context.Context, filters domain.FilterParams) (*domain.RFMResponse, error) {
	query := url.Values{}
	for k, v := range filters {
		query.Set(k, v)
	}

	var resp domain.RFMResponse
	err := c.do(ctx, request{
		operation: "get_rfm_data",
		method:    http.MethodGet,
		baseURL:   c.analyticsURL,
		path:      "/api/rfm-data",
		query:     query,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}
