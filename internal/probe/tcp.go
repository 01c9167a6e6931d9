package probe

import (
	"context"
	"net"
	"strconv"
	"time"
)

// TCPResult reports whether a TCP connect succeeded. A failed connect
// is a result, not an error.
type TCPResult struct {
	Reachable bool   `json:"reachable"`
	Error     string `json:"error,omitempty"`
}

// CheckTCP attempts a TCP connection to host:port within timeout. The
// connection is closed immediately on success; only reachability is
// reported.
func CheckTCP(ctx context.Context, host string, port int, timeout time.Duration) TCPResult {
	if timeout <= 0 {
		timeout = DefaultTCPTimeout
	}

	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return TCPResult{Reachable: false, Error: err.Error()}
	}
	conn.Close()

	return TCPResult{Reachable: true}
}
