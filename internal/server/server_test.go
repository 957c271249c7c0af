package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-page-guard/internal/config"
	"github.com/MKhiriev/go-page-guard/internal/handler"
	"github.com/MKhiriev/go-page-guard/internal/logger"
	"github.com/MKhiriev/go-page-guard/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }

func newTestServer(h http.Handler, bg *workers.Workers) *server {
	return &server{
		httpServer: newHTTPServer(h, config.Server{RequestTimeout: time.Second}, logger.Nop()),
		workers:    bg,
		logger:     logger.Nop(),
	}
}

func TestNewServer_NoAddress(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NilHandlers(t *testing.T) {
	_, err := NewServer(nil, nil, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServeUntilCancelled(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	workerStopped := make(chan struct{})
	bg := workers.NewWorkers(funcWorker(func(ctx context.Context) error {
		<-ctx.Done()
		close(workerStopped)
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer(h, bg).serve(ctx, l) }()

	resp, err := http.Get("http://" + l.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	<-workerStopped
}

func TestServer_WorkerFailureStopsServer(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	boom := errors.New("boom")
	bg := workers.NewWorkers(funcWorker(func(ctx context.Context) error { return boom }))

	err = newTestServer(http.NotFoundHandler(), bg).serve(context.Background(), l)

	assert.ErrorIs(t, err, boom)
}

func TestNewHTTPServer_AppliesRequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	s := newHTTPServer(slow, config.Server{HTTPAddress: ":0", RequestTimeout: 10 * time.Millisecond}, logger.Nop())

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = s.Serve(l) }()
	defer s.Shutdown()

	resp, err := http.Get("http://" + l.Addr().String())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, ":0", s.server.Addr)
}
