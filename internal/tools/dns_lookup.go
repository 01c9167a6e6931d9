package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/netcoach-ai/netcoach/internal/probe"
)

// DNSLookupTool resolves DNS records for a domain.
type DNSLookupTool struct {
	dns *probe.DNS
}

// NewDNSLookupTool creates the dns_lookup tool with the given overall
// resolver lifetime.
func NewDNSLookupTool(timeout time.Duration) *DNSLookupTool {
	return &DNSLookupTool{dns: probe.NewDNS(timeout)}
}

func (t *DNSLookupTool) Name() string { return "dns_lookup" }

func (t *DNSLookupTool) Description() string {
	return "Resolve DNS records (A, AAAA, MX, CNAME, TXT) for a domain. " +
		"Record types that fail to resolve are omitted from the result."
}

func (t *DNSLookupTool) Parameters() map[string]any {
	return map[string]any{
		"domain": map[string]any{
			"type":        "string",
			"description": "The domain name to resolve, e.g. example.com",
		},
	}
}

func (t *DNSLookupTool) Execute(ctx context.Context, params json.RawMessage) (string, error) {
	var p struct {
		Domain string `json:"domain"`
	}
	if err := json.Unmarshal(params, &p); err != nil {
		return "", fmt.Errorf("invalid params: %w", err)
	}
	if p.Domain == "" {
		return "", fmt.Errorf("domain is required")
	}

	records := t.dns.Lookup(ctx, p.Domain)
	out, err := json.Marshal(records)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
