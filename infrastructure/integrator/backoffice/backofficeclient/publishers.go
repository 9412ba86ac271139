package backofficeclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/po-console/internal/domain"
)

func (c *BackofficeClient) ListPublishers(ctx context.Context) ([]domain.Publisher, error) {
	var publishers []domain.Publisher

	err := c.do(ctx, request{
		operation: "list_publishers",
		method:    http.MethodGet,
		baseURL:   c.backendURL,
		path:      "/publishers",
	}, &publishers)
	if err != nil {
		return nil, err
	}

	return publishers, nil
}

func (c *BackofficeClient) CreatePublisher(ctx context.Context, fields map[string]string) (*domain.MutationResult, error) {
	return c.mutate(ctx, request{
		operation: "create_publisher",
		method:    http.MethodPost,
		baseURL:   c.backendURL,
		path:      "/create-publisher",
		body:      fields,
	})
}

func (c *BackofficeClient) UpdatePublisher(ctx context.Context, id domain.ID, fields map[string]string) (*domain.MutationResult, error) {
	return c.mutate(ctx, request{
		operation: "update_publisher",
		method:    http.MethodPut,
		baseURL:   c.backendURL,
		path:      "/publisher/" + id.String(),
		body:      fields,
	})
}
