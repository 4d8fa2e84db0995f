package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/vespulse/internal/domain/dto"
	"github.com/guttosm/vespulse/internal/service"
)

// Handler provides HTTP handlers for the market dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// GetMarket handles GET /api/v1/market requests.
//
// GetMarket godoc
// @Summary      Market overview
// @Description  Returns aggregated metrics of the current P2P book plus intraday change percentages
// @Tags         market
// @Produce      json
// @Success      200  {object}  dto.MarketResponse  "Success"
// @Failure      503  {object}  dto.ErrorResponse   "No snapshot yet"
// @Security     ApiKeyAuth
// @Router       /api/v1/market [get]
func (h *Handler) GetMarket(c *gin.Context) {
	report, err := h.svc.Market(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMarketResponse(report.Overview, report.Changes, report.ObservedAt))
}

// GetDepth handles GET /api/v1/depth requests.
//
// GetDepth godoc
// @Summary      Cumulative depth
// @Description  Returns the cumulative volume curve for both sides of the book
// @Tags         market
// @Produce      json
// @Success      200  {object}  dto.DepthResponse  "Success"
// @Failure      503  {object}  dto.ErrorResponse  "No snapshot yet"
// @Security     ApiKeyAuth
// @Router       /api/v1/depth [get]
func (h *Handler) GetDepth(c *gin.Context) {
	book, err := h.svc.Depth(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DepthResponse{Bids: book.Bids, Asks: book.Asks, ObservedAt: book.ObservedAt})
}

// GetPaymentMethods handles GET /api/v1/payment-methods requests.
//
// GetPaymentMethods godoc
// @Summary      Payment method liquidity
// @Description  Returns the top payment methods ranked by reachable volume
// @Tags         market
// @Produce      json
// @Success      200  {object}  dto.PaymentMethodsResponse  "Success"
// @Failure      503  {object}  dto.ErrorResponse           "No snapshot yet"
// @Security     ApiKeyAuth
// @Router       /api/v1/payment-methods [get]
func (h *Handler) GetPaymentMethods(c *gin.Context) {
	methods, err := h.svc.PaymentMethods(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaymentMethodsResponse{Methods: methods})
}

// Simulate handles GET /api/v1/simulate requests.
//
// Query Parameters:
//   - side (string, required): "buy" (walks the sell side) or "sell"
//     (walks the buy side).
//   - amount (number, required): USDT quantity to fill. Non-positive
//     amounts are a defined degenerate case and yield the zero result.
//
// Simulate godoc
// @Summary      Simulate a market order
// @Description  Walks the book from best to worst price and estimates cost, average price and market impact
// @Tags         market
// @Produce      json
// @Param        side    query     string  true  "Order side"     Enums(buy, sell)
// @Param        amount  query     number  true  "USDT quantity"  example(150)
// @Success      200     {object}  dto.SimulateResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse     "Bad Request"
// @Failure      503     {object}  dto.ErrorResponse     "No snapshot yet"
// @Security     ApiKeyAuth
// @Router       /api/v1/simulate [get]
func (h *Handler) Simulate(c *gin.Context) {
	side := strings.ToLower(strings.TrimSpace(c.Query("side")))

	raw := c.Query("amount")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("amount is required", nil))
		return
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid amount", err))
		return
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is a fillable quantity
	// and neither survives JSON encoding.
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid amount", nil))
		return
	}

	result, err := h.svc.Simulate(c.Request.Context(), side, amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SimulateResponse{
		Side:                side,
		Amount:              amount,
		FillCount:           result.FillCount,
		TotalCounterAmount:  result.TotalCounterAmount,
		AvgExecutionPrice:   result.AvgExecutionPrice,
		MarketImpactPercent: result.MarketImpactPercent,
	})
}

// Refresh handles POST /api/v1/refresh requests, the dashboard's manual
// refresh button.
//
// Refresh godoc
// @Summary      Force a snapshot refresh
// @Description  Polls the upstream feed immediately instead of waiting for the next tick
// @Tags         market
// @Produce      json
// @Success      200  {object}  map[string]string  "Refreshed"
// @Failure      502  {object}  dto.ErrorResponse  "Upstream fetch failed"
// @Security     ApiKeyAuth
// @Router       /api/v1/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.svc.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("failed to refresh market data", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

// respondServiceError maps service-level sentinel errors to status codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoSnapshot):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("no snapshot available", nil))
	case errors.Is(err, service.ErrInvalidSide):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("side must be buy or sell", nil))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute market data", err))
	}
}
