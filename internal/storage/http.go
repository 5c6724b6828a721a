package storage

import (
	"context"
	"net/http"
	"time"

	"github.com/nikbrunner/catalog/internal/model"
)

// HTTPSource loads products with a single GET request.
type HTTPSource struct {
	url    string
	client *http.Client
}

// HTTPSourceParams holds parameters for creating a new HTTPSource.
type HTTPSourceParams struct {
	URL     string
	Timeout time.Duration // zero means no timeout
	Client  *http.Client  // optional, overrides Timeout
}

// NewHTTPSource creates an HTTPSource.
func NewHTTPSource(params HTTPSourceParams) *HTTPSource {
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: params.Timeout}
	}
	return &HTTPSource{url: params.URL, client: client}
}

// URL returns the feed URL.
func (s *HTTPSource) URL() string {
	return s.url
}

// Load fetches and decodes the product list. Network errors, non-2xx
// responses and undecodable bodies are all load failures. No retry.
func (s *HTTPSource) Load(ctx context.Context) (*model.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, loadError(s.url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, loadError(s.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{Source: s.url, Status: resp.StatusCode}
	}

	products, err := decodeProducts(resp.Body)
	if err != nil {
		return nil, loadError(s.url, err)
	}
	return model.NewCatalog(products), nil
}
