// Package imagecheck probes product thumbnails so broken ones can be replaced
// with the placeholder before the page is rendered.
package imagecheck

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/nikbrunner/catalog/internal/model"
)

// Status represents the health of a thumbnail URL.
type Status int

const (
	Healthy     Status = iota // 2xx or 3xx response
	Broken                    // 4xx or 5xx response
	Unreachable               // timeout, DNS failure, connection refused, etc.
	Skipped                   // product has no thumbnail of its own
)

func (s Status) String() string {
	switch s {
	case Healthy:
		return "ok"
	case Broken:
		return "broken"
	case Unreachable:
		return "unreachable"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result holds the check result for a single product.
type Result struct {
	ProductID  model.ID
	URL        string
	Status     Status
	StatusCode int    // HTTP status code (0 if connection failed)
	Error      string // Error message for unreachable URLs
}

// ProgressFunc is called after each product is checked.
type ProgressFunc func(completed, total int)

// Params configures CheckImages.
type Params struct {
	Concurrency int
	Timeout     time.Duration
	Client      *http.Client // optional, built from Timeout when nil
	OnProgress  ProgressFunc
}

// CheckImages checks every product thumbnail concurrently. Results keep the
// order of products.
func CheckImages(ctx context.Context, products []model.Product, params Params) []Result {
	if len(products) == 0 {
		return nil
	}

	// Suppress noisy HTTP client logging (protocol errors, unsolicited responses, etc.)
	originalOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(originalOutput)

	concurrency := params.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	client := params.Client
	if client == nil {
		client = &http.Client{
			Timeout: params.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return http.ErrUseLastResponse
				}
				return nil
			},
		}
	}

	results := make([]Result, len(products))
	jobs := make(chan int, len(products))
	var wg sync.WaitGroup

	var progressMu sync.Mutex
	completed := 0

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = checkImage(ctx, client, products[idx])

				if params.OnProgress != nil {
					progressMu.Lock()
					completed++
					params.OnProgress(completed, len(products))
					progressMu.Unlock()
				}
			}
		}()
	}

	for i := range products {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// BrokenIDs returns the IDs of products whose thumbnail failed.
func BrokenIDs(results []Result) map[model.ID]bool {
	broken := make(map[model.ID]bool)
	for _, r := range results {
		if r.Status == Broken || r.Status == Unreachable {
			broken[r.ProductID] = true
		}
	}
	return broken
}

func checkImage(ctx context.Context, client *http.Client, p model.Product) Result {
	result := Result{ProductID: p.ID}

	if len(p.Images) == 0 || strings.TrimSpace(p.Images[0]) == "" {
		result.Status = Skipped
		return result
	}
	result.URL = p.Images[0]

	// HEAD first; some image hosts reject it, so fall back to GET.
	resp, err := do(ctx, client, http.MethodHead, result.URL)
	if err != nil || resp.StatusCode == http.StatusMethodNotAllowed {
		if resp != nil {
			resp.Body.Close()
		}
		resp, err = do(ctx, client, http.MethodGet, result.URL)
		if err != nil {
			result.Status = Unreachable
			result.Error = normalizeError(err.Error())
			return result
		}
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		result.Status = Healthy
	} else {
		result.Status = Broken
		result.Error = http.StatusText(resp.StatusCode)
	}
	return result
}

func do(ctx context.Context, client *http.Client, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}

// normalizeError simplifies verbose error messages into readable categories.
func normalizeError(errStr string) string {
	lower := strings.ToLower(errStr)

	switch {
	case strings.Contains(lower, "no such host"):
		return "DNS failure"
	case strings.Contains(lower, "context deadline exceeded"),
		strings.Contains(lower, "timeout"):
		return "Timeout"
	case strings.Contains(lower, "context canceled"):
		return "Cancelled"
	case strings.Contains(lower, "connection refused"):
		return "Connection refused"
	case strings.Contains(lower, "certificate"):
		return "TLS/certificate error"
	case strings.Contains(lower, "unsupported protocol scheme"),
		strings.Contains(lower, "invalid url"),
		strings.Contains(lower, "missing protocol scheme"):
		return "Invalid URL"
	case strings.Contains(lower, "tls:"):
		return "TLS error"
	default:
		return errStr
	}
}
