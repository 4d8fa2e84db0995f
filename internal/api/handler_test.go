package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/vespulse/internal/domain/dto"
	"github.com/guttosm/vespulse/internal/domain/models"
	"github.com/guttosm/vespulse/internal/service"
)

type mockMarketService struct {
	report     *service.MarketReport
	depth      *models.DepthBook
	methods    []models.MethodLiquidity
	fill       *models.FillResult
	err        error
	refreshErr error
	ready      bool
}

func (m *mockMarketService) Run(context.Context, time.Duration) {}
func (m *mockMarketService) Refresh(context.Context) error      { return m.refreshErr }
func (m *mockMarketService) Market(context.Context) (*service.MarketReport, error) {
	return m.report, m.err
}
func (m *mockMarketService) Depth(context.Context) (*models.DepthBook, error) {
	return m.depth, m.err
}
func (m *mockMarketService) PaymentMethods(context.Context) ([]models.MethodLiquidity, error) {
	return m.methods, m.err
}
func (m *mockMarketService) Simulate(_ context.Context, side string, _ float64) (*models.FillResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if side != "buy" && side != "sell" {
		return nil, service.ErrInvalidSide
	}
	return m.fill, nil
}
func (m *mockMarketService) Ready() bool { return m.ready }

var _ service.MarketService = (*mockMarketService)(nil)

func setupRouterWithMock(s service.MarketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/market", h.GetMarket)
	v1.GET("/depth", h.GetDepth)
	v1.GET("/payment-methods", h.GetPaymentMethods)
	v1.GET("/simulate", h.Simulate)
	v1.POST("/refresh", h.Refresh)
	return r
}

func TestHandlers_TableDriven(t *testing.T) {
	okSvc := &mockMarketService{
		report: &service.MarketReport{
			Overview:   models.MarketOverview{BestBid: 36.2, BestAsk: 36.5},
			ObservedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		},
		depth: &models.DepthBook{
			Asks:       []models.DepthPoint{{Price: 36.5, CumulativeVolume: 100}},
			ObservedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		},
		methods: []models.MethodLiquidity{{Method: "PagoMovil", Volume: 300}},
		fill:    &models.FillResult{FillCount: 2, TotalCounterAmount: 5425, AvgExecutionPrice: 36.1667},
	}
	emptySvc := &mockMarketService{err: service.ErrNoSnapshot}

	cases := []struct {
		name   string
		svc    service.MarketService
		method string
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "market ok",
			svc:    okSvc,
			method: http.MethodGet,
			query:  "/api/v1/market",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.MarketResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Overview.BestBid != 36.2 || out.Overview.BestAsk != 36.5 {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "market without snapshot",
			svc:    emptySvc,
			method: http.MethodGet,
			query:  "/api/v1/market",
			status: http.StatusServiceUnavailable,
		},
		{
			name:   "depth ok",
			svc:    okSvc,
			method: http.MethodGet,
			query:  "/api/v1/depth",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.DepthResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.Asks) != 1 || out.Asks[0].Price != 36.5 {
					t.Fatalf("unexpected body: %+v", out)
				}
				if out.ObservedAt.IsZero() {
					t.Fatalf("observed_at not set: %+v", out)
				}
			},
		},
		{
			name:   "payment methods ok",
			svc:    okSvc,
			method: http.MethodGet,
			query:  "/api/v1/payment-methods",
			status: http.StatusOK,
		},
		{
			name:   "simulate ok",
			svc:    okSvc,
			method: http.MethodGet,
			query:  "/api/v1/simulate?side=BUY&amount=150",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out dto.SimulateResponse
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Side != "buy" || out.FillCount != 2 || out.TotalCounterAmount != 5425 {
					t.Fatalf("unexpected body: %+v", out)
				}
			},
		},
		{
			name:   "simulate missing amount",
			svc:    okSvc,
			method: http.MethodGet,
			query:  "/api/v1/simulate?side=buy",
			status: http.StatusBadRequest,
		},
		{
			name:   "simulate bad amount",
			svc:    okSvc,
			method: http.MethodGet,
			query:  "/api/v1/simulate?side=buy&amount=abc",
			status: http.StatusBadRequest,
		},
		{
			name:   "simulate non-finite amount",
			svc:    okSvc,
			method: http.MethodGet,
			query:  "/api/v1/simulate?side=buy&amount=NaN",
			status: http.StatusBadRequest,
		},
		{
			name:   "simulate infinite amount",
			svc:    okSvc,
			method: http.MethodGet,
			query:  "/api/v1/simulate?side=buy&amount=%2BInf",
			status: http.StatusBadRequest,
		},
		{
			name:   "simulate bad side",
			svc:    okSvc,
			method: http.MethodGet,
			query:  "/api/v1/simulate?side=short&amount=10",
			status: http.StatusBadRequest,
		},
		{
			name:   "refresh ok",
			svc:    okSvc,
			method: http.MethodPost,
			query:  "/api/v1/refresh",
			status: http.StatusOK,
		},
		{
			name:   "refresh upstream failure",
			svc:    &mockMarketService{refreshErr: assertErr{}},
			method: http.MethodPost,
			query:  "/api/v1/refresh",
			status: http.StatusBadGateway,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMock(tc.svc)
			req := httptest.NewRequest(tc.method, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (body=%s)", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}
