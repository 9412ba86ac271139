package backofficeclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/po-console/internal/domain"
)

func (c *BackofficeClient) ListPOs(ctx context.Context) ([]domain.PO, error) {
	var pos []domain.PO

	err := c.do(ctx, request{
		operation: "list_pos",
		method:    http.MethodGet,
		baseURL:   c.backendURL,
		path:      "/pos",
	}, &pos)
	if err != nil {
		return nil, err
	}

	return pos, nil
}

func (c *BackofficeClient) CreatePO(ctx context.Context, fields map[string]string) (*domain.MutationResult, error) {
	return c.mutate(ctx, request{
		operation: "create_po",
		method:    http.MethodPost,
		baseURL:   c.backendURL,
		path:      "/create-po",
		body:      fields,
	})
}

func (c *BackofficeClient) UpdatePO(ctx context.Context, id domain.ID, fields map[string]string) (*domain.MutationResult, error) {
	return c.mutate(ctx, request{
		operation: "update_po",
		method:    http.MethodPut,
		baseURL:   c.backendURL,
		path:      "/po/" + id.String(),
		body:      fields,
	})
}
