package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/vespulse/internal/domain/dto"
	"github.com/guttosm/vespulse/internal/middleware"
	"github.com/guttosm/vespulse/internal/service"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockMarketService{
		report: &service.MarketReport{ObservedAt: time.Now()},
	}
	r := NewRouter(NewHandler(svc), "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/market", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// RequestID middleware must inject the header.
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.MarketResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
}

func TestNewRouter_AuthGate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockMarketService{report: &service.MarketReport{}}
	r := NewRouter(NewHandler(svc), "s3cret")

	// Without the key the v1 group rejects.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/market", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without key, got %d", w.Code)
	}

	// With the key it passes through to the handler.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/market", nil)
	req.Header.Set(middleware.AuthHeader, "s3cret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with key, got %d", w.Code)
	}
}
