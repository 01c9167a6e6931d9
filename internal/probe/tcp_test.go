package probe

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTCP_OpenPort(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	port, _ := strconv.Atoi(portStr)

	res := CheckTCP(context.Background(), "127.0.0.1", port, time.Second)

	assert.True(t, res.Reachable)
	assert.Empty(t, res.Error)
}

func TestCheckTCP_ClosedPort(t *testing.T) {
	t.Parallel()

	// Grab a free port, then close the listener so the port is known
	// to be closed when we dial it.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	_, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	port, _ := strconv.Atoi(portStr)
	ln.Close()

	start := time.Now()
	res := CheckTCP(context.Background(), "127.0.0.1", port, 2*time.Second)

	assert.False(t, res.Reachable)
	assert.NotEmpty(t, res.Error)
	assert.Less(t, time.Since(start), 2*time.Second+500*time.Millisecond)
}

func TestCheckTCP_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := CheckTCP(ctx, "203.0.113.1", 81, 5*time.Second)

	assert.False(t, res.Reachable)
	assert.NotEmpty(t, res.Error)
}
