package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pong() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
}

func TestNewServer_EmptyAddress(t *testing.T) {
	srv, err := NewServer(pong(), "", logger.Nop())

	require.ErrorIs(t, err, errNoAddress)
	assert.Nil(t, srv)
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = busy.Close() })

	_, err = NewServer(pong(), busy.Addr().String(), logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), busy.Addr().String())
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	srv, err := NewServer(pong(), "127.0.0.1:0", logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	resp, err := http.Get("http://" + s.addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + s.addr().String() + "/")
	assert.Error(t, err)
}
