package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeListener(t *testing.T) {
	cfg := newTestConfig()
	router := New(cfg, zerolog.Nop())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- ServeListener(ctx, ln, cfg.Server, router, zerolog.Nop())
	}()

	url := fmt.Sprintf("http://%s/", ln.Addr().String())
	client := &http.Client{Timeout: 2 * time.Second}

	t.Run("serves greetings over the network", func(t *testing.T) {
		resp, err := client.Post(url, "application/json", strings.NewReader(`{"name": "World"}`))
		require.NoError(t, err)
		body := readAllClose(t, resp.Body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"greeting": "Hello,World!"}`, string(body))
	})

	t.Run("keeps serving after a malformed request", func(t *testing.T) {
		resp, err := client.Post(url, "application/json", strings.NewReader(`{"name":`))
		require.NoError(t, err)
		readAllClose(t, resp.Body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		resp, err = client.Post(url, "application/json", strings.NewReader(`{"name": ""}`))
		require.NoError(t, err)
		body := readAllClose(t, resp.Body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"greeting": "Hello,!"}`, string(body))
	})

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}

	_, err = client.Post(url, "application/json", strings.NewReader(`{"name": "World"}`))
	assert.Error(t, err, "server should no longer accept connections")
}

func TestServeListenOnUsedAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := newTestConfig()
	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	cfg.Server.Port = port

	err = Serve(context.Background(), cfg.Server, New(cfg, zerolog.Nop()), zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
