package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHealthCheck(t *testing.T) {
	srv := New(Config{Port: 0}, nil)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := New(Config{Port: 0, AllowAll: true}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	srv := New(Config{}, zap.New(core))

	req := httptest.NewRequest("GET", "/healthz", nil)
	srv.Router().ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/healthz" {
		t.Errorf("path = %v", fields["path"])
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Errorf("status = %v (%T)", fields["status"], fields["status"])
	}
}

func TestServeAndShutdown(t *testing.T) {
	srv := New(Config{}, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- srv.Serve(ln) }()

	resp, err := waitForHealth("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := <-done; err != nil {
		t.Errorf("Serve returned %v after shutdown", err)
	}
}

func waitForHealth(url string) (*http.Response, error) {
	var lastErr error
	for i := 0; i < 50; i++ {
		resp, err := http.Get(url)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		time.Sleep(20 * time.Millisecond)
	}
	return nil, lastErr
}
