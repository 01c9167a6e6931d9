// Package probe implements bounded-time network diagnostics: DNS
// resolution, TCP reachability checks, and HTTP probes. DNS and TCP
// report failures as data; the HTTP probe returns transport failures
// as errors so callers can tell "could not probe" from "probed, got a
// bad status".
package probe

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"
)

// Default probe timeouts
const (
	DefaultDNSTimeout  = 2 * time.Second
	DefaultTCPTimeout  = 2 * time.Second
	DefaultHTTPTimeout = 3 * time.Second
)

// resolver is the subset of net.Resolver the DNS probe needs.
type resolver interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupCNAME(ctx context.Context, host string) (string, error)
	LookupTXT(ctx context.Context, name string) ([]string, error)
}

// DNS resolves the common record types for a domain.
type DNS struct {
	timeout time.Duration
	r       resolver
}

// NewDNS creates a DNS probe bounded by timeout per Lookup call.
func NewDNS(timeout time.Duration) *DNS {
	if timeout <= 0 {
		timeout = DefaultDNSTimeout
	}
	return &DNS{timeout: timeout, r: net.DefaultResolver}
}

// Lookup resolves A, AAAA, MX, CNAME and TXT records for domain. Each
// record type is attempted independently; types that fail to resolve
// are omitted from the result. If everything fails the result is an
// empty map, never an error.
func (d *DNS) Lookup(ctx context.Context, domain string) map[string][]string {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	out := make(map[string][]string)

	if ips, err := d.r.LookupIP(ctx, "ip4", domain); err == nil && len(ips) > 0 {
		for _, ip := range ips {
			out["A"] = append(out["A"], ip.String())
		}
	}
	if ips, err := d.r.LookupIP(ctx, "ip6", domain); err == nil && len(ips) > 0 {
		for _, ip := range ips {
			out["AAAA"] = append(out["AAAA"], ip.String())
		}
	}
	if mxs, err := d.r.LookupMX(ctx, domain); err == nil && len(mxs) > 0 {
		for _, mx := range mxs {
			out["MX"] = append(out["MX"], fmt.Sprintf("%d %s", mx.Pref, mx.Host))
		}
	}
	if cname, err := d.r.LookupCNAME(ctx, domain); err == nil && cname != "" {
		// LookupCNAME answers with the queried name itself when no
		// CNAME record exists; only a real alias counts.
		if strings.TrimSuffix(cname, ".") != strings.TrimSuffix(domain, ".") {
			out["CNAME"] = []string{cname}
		}
	}
	if txts, err := d.r.LookupTXT(ctx, domain); err == nil && len(txts) > 0 {
		out["TXT"] = append(out["TXT"], txts...)
	}

	return out
}
