package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/netcoach-ai/netcoach/internal/probe"
)

// TCPCheckTool reports whether host:port accepts TCP connections.
type TCPCheckTool struct {
	timeout time.Duration
}

// NewTCPCheckTool creates the tcp_check tool with a default connect
// timeout; the model may override it per call.
func NewTCPCheckTool(timeout time.Duration) *TCPCheckTool {
	if timeout <= 0 {
		timeout = probe.DefaultTCPTimeout
	}
	return &TCPCheckTool{timeout: timeout}
}

func (t *TCPCheckTool) Name() string { return "tcp_check" }

func (t *TCPCheckTool) Description() string {
	return "Attempt a TCP connect to host:port and report reachability."
}

func (t *TCPCheckTool) Parameters() map[string]any {
	return map[string]any{
		"host": map[string]any{
			"type":        "string",
			"description": "Hostname or IP address to connect to",
		},
		"port": map[string]any{
			"type":        "integer",
			"description": "TCP port number",
		},
		"timeout": map[string]any{
			"type":        "number",
			"description": "Connect timeout in seconds (default 2)",
		},
	}
}

func (t *TCPCheckTool) Execute(ctx context.Context, params json.RawMessage) (string, error) {
	var p struct {
		Host    string  `json:"host"`
		Port    int     `json:"port"`
		Timeout float64 `json:"timeout"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return "", fmt.Errorf("invalid params: %w", err)
	}
	if p.Host == "" {
		return "", fmt.Errorf("host is required")
	}
	if p.Port < 1 || p.Port > 65535 {
		return "", fmt.Errorf("port must be between 1 and 65535")
	}

	timeout := t.timeout
	if p.Timeout > 0 {
		timeout = time.Duration(p.Timeout * float64(time.Second))
	}

	res := probe.CheckTCP(ctx, p.Host, p.Port, timeout)
	out, err := json.Marshal(res)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
