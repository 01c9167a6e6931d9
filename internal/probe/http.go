package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// maxRedirects caps the redirect chain the HTTP probe will follow.
const maxRedirects = 10

// HTTPResult holds the final response of an HTTP probe after any
// redirects were followed.
type HTTPResult struct {
	Status  int               `json:"status"`
	Headers map[string]string `json:"headers"`
}

// ProbeHTTP issues a GET to rawURL within timeout, following up to
// maxRedirects redirects. Unlike the DNS and TCP probes, a transport
// failure is returned as an error rather than folded into the result.
func ProbeHTTP(ctx context.Context, rawURL string, timeout time.Duration) (*HTTPResult, error) {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	client := &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid probe url: %w", err)
	}
	req.Header.Set("Accept", "*/*")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http probe failed: %w", err)
	}
	defer resp.Body.Close()

	headers := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		headers[k] = resp.Header.Get(k)
	}

	return &HTTPResult{Status: resp.StatusCode, Headers: headers}, nil
}
