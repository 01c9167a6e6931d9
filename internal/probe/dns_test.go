package probe

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeResolver returns canned answers per record type; nil slices /
// empty strings simulate resolution failures.
type fakeResolver struct {
	ip4   []net.IP
	ip6   []net.IP
	mx    []*net.MX
	cname string
	txt   []string
}

var errNoSuchHost = errors.New("lookup: no such host")

func (f *fakeResolver) LookupIP(_ context.Context, network, _ string) ([]net.IP, error) {
	switch network {
	case "ip4":
		if f.ip4 == nil {
			return nil, errNoSuchHost
		}
		return f.ip4, nil
	case "ip6":
		if f.ip6 == nil {
			return nil, errNoSuchHost
		}
		return f.ip6, nil
	}
	return nil, errNoSuchHost
}

func (f *fakeResolver) LookupMX(_ context.Context, _ string) ([]*net.MX, error) {
	if f.mx == nil {
		return nil, errNoSuchHost
	}
	return f.mx, nil
}

func (f *fakeResolver) LookupCNAME(_ context.Context, _ string) (string, error) {
	if f.cname == "" {
		return "", errNoSuchHost
	}
	return f.cname, nil
}

func (f *fakeResolver) LookupTXT(_ context.Context, _ string) ([]string, error) {
	if f.txt == nil {
		return nil, errNoSuchHost
	}
	return f.txt, nil
}

func TestDNSLookup_OnlyARecord(t *testing.T) {
	t.Parallel()

	d := NewDNS(time.Second)
	d.r = &fakeResolver{ip4: []net.IP{net.ParseIP("93.184.216.34")}}

	out := d.Lookup(context.Background(), "example.com")

	assert.Equal(t, map[string][]string{"A": {"93.184.216.34"}}, out)
	assert.NotContains(t, out, "AAAA")
	assert.NotContains(t, out, "MX")
}

func TestDNSLookup_AllTypes(t *testing.T) {
	t.Parallel()

	d := NewDNS(time.Second)
	d.r = &fakeResolver{
		ip4:   []net.IP{net.ParseIP("1.2.3.4")},
		ip6:   []net.IP{net.ParseIP("2606:2800:220:1::1")},
		mx:    []*net.MX{{Host: "mail.example.com.", Pref: 10}},
		cname: "edge.example.net.",
		txt:   []string{"v=spf1 -all"},
	}

	out := d.Lookup(context.Background(), "example.com")

	assert.Equal(t, []string{"1.2.3.4"}, out["A"])
	assert.Equal(t, []string{"10 mail.example.com."}, out["MX"])
	assert.Equal(t, []string{"edge.example.net."}, out["CNAME"])
	assert.Equal(t, []string{"v=spf1 -all"}, out["TXT"])
	assert.Len(t, out, 5)
}

func TestDNSLookup_AllFail(t *testing.T) {
	t.Parallel()

	d := NewDNS(time.Second)
	d.r = &fakeResolver{}

	out := d.Lookup(context.Background(), "nxdomain.invalid")

	assert.Empty(t, out)
}

func TestDNSLookup_SelfCNAMEOmitted(t *testing.T) {
	t.Parallel()

	// LookupCNAME answers the queried name when no CNAME exists;
	// that must not show up as a CNAME record.
	d := NewDNS(time.Second)
	d.r = &fakeResolver{
		ip4:   []net.IP{net.ParseIP("1.2.3.4")},
		cname: "example.com.",
	}

	out := d.Lookup(context.Background(), "example.com")

	assert.NotContains(t, out, "CNAME")
}
