package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/guttosm/vespulse/config"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	// Directly call Shutdown to simulate graceful flow; it must complete
	// without panicking.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	// Use a server that responds immediately
	srv := startServer(dummyHandler{}, "0")

	polled := make(chan struct{}, 1)
	cleaned := make(chan struct{}, 1)
	go func() {
		ctx := context.Background()
		gracefulShutdown(ctx, srv, func() { close(polled) }, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	// Send SIGTERM to current process
	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not invoked after signal")
	}
	select {
	case <-polled:
	case <-time.After(time.Second):
		t.Fatalf("poll cancel not invoked after signal")
	}
}

// TestRunFetch exercises the one-shot fetch mode against a stub feed.
func TestRunFetch(t *testing.T) {
	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"adv":{"price":"36.5","tradableQuantity":"100","minSingleTransAmount":"10","maxSingleTransAmount":"1000","tradeMethods":[{"tradeMethodName":"Banesco"}]},"advertiser":{"nickName":"trader1","userNo":"u1"}}]}`))
	}))
	defer feedSrv.Close()

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Feed: config.FeedConfig{BaseURL: feedSrv.URL, Asset: "USDT", Fiat: "VES", Rows: 20, MaxPages: 2},
	}

	if err := runFetch(context.Background()); err != nil {
		t.Fatalf("runFetch: %v", err)
	}
}
