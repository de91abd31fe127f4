package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kanzcollective/storefront-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error {
	return s.err
}

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "dev"}}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	HealthLive(testConfig())(w, httptest.NewRequest("GET", "/health/live", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("X-KanzCollective-Env"); got != "dev" {
		t.Fatalf("expected env header, got %q", got)
	}
}

func TestHealthReadyAllDependenciesUp(t *testing.T) {
	t.Parallel()

	handler := HealthReady(testConfig(), nil, map[string]Pinger{
		"postgres": stubPinger{},
		"redis":    stubPinger{},
	})
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/health/ready", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHealthReadyDependencyDown(t *testing.T) {
	t.Parallel()

	handler := HealthReady(testConfig(), nil, map[string]Pinger{
		"redis": stubPinger{err: errors.New("connection refused")},
	})
	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/health/ready", nil))

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}
