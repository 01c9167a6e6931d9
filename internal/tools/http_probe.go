package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/netcoach-ai/netcoach/internal/probe"
)

// HTTPProbeTool performs a GET against a URL and reports the final
// status and headers after redirects.
type HTTPProbeTool struct {
	timeout time.Duration
}

// NewHTTPProbeTool creates the http_probe tool with a default request
// timeout; the model may override it per call.
func NewHTTPProbeTool(timeout time.Duration) *HTTPProbeTool {
	if timeout <= 0 {
		timeout = probe.DefaultHTTPTimeout
	}
	return &HTTPProbeTool{timeout: timeout}
}

func (t *HTTPProbeTool) Name() string { return "http_probe" }

func (t *HTTPProbeTool) Description() string {
	return "Perform an HTTP GET request, following redirects, and return the final status code and headers."
}

func (t *HTTPProbeTool) Parameters() map[string]any {
	return map[string]any{
		"url": map[string]any{
			"type":        "string",
			"description": "The URL to probe (http or https)",
		},
		"timeout": map[string]any{
			"type":        "number",
			"description": "Request timeout in seconds (default 3)",
		},
	}
}

func (t *HTTPProbeTool) Execute(ctx context.Context, params json.RawMessage) (string, error) {
	var p struct {
		URL     string  `json:"url"`
		Timeout float64 `json:"timeout"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return "", fmt.Errorf("invalid params: %w", err)
	}
	if p.URL == "" {
		return "", fmt.Errorf("url is required")
	}

	timeout := t.timeout
	if p.Timeout > 0 {
		timeout = time.Duration(p.Timeout * float64(time.Second))
	}

	res, err := probe.ProbeHTTP(ctx, p.URL, timeout)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(res)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
