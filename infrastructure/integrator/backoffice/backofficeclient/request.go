package backofficeclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	backofficedomain "github.com/vfg2006/po-console/infrastructure/integrator/backoffice/domain"
	"github.com/vfg2006/po-console/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type request struct {
	operation string
	method    string
	baseURL   string
	path      string
	query     url.Values
	body      any
	// check roda após a decodificação; um erro aqui conta como rejeição
	check func() error
}

func (c *BackofficeClient) do(ctx context.Context, req request, out any) (err error) {
	start := time.Now()
	defer func() {
		observeCall(req.operation, err, time.Since(start))
	}()

	endpoint, err := url.Parse(req.baseURL)
	if err != nil {
		return errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, req.path)
	if len(req.query) > 0 {
		endpoint.RawQuery = req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar o corpo da requisição")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint.String(), body)
	if err != nil {
		return errors.Wrap(err, "erro ao criar a requisição")
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "erro ao executar a requisição %s", req.operation)
	}
	defer resp.Body.Close()

	data, err := HandleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "erro ao decodificar a resposta de %s", req.operation)
	}

	if req.check != nil {
		return req.check()
	}

	return nil
}

// HandleResponse lê o corpo e converte status não-2xx em *backofficedomain.Error.
func HandleResponse(resp *http.Response) ([]byte, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, backofficedomain.NewError(resp.StatusCode, data)
	}

	return data, nil
}

// mutate executa criação/atualização e trata success:false como rejeição.
func (c *BackofficeClient) mutate(ctx context.Context, req request) (*domain.MutationResult, error) {
	var result domain.MutationResult

	req.check = func() error {
		if result.Rejected() {
			return &backofficedomain.Error{
				StatusCode: http.StatusOK,
				Message:    result.Message,
			}
		}
		return nil
	}

	if err := c.do(ctx, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
