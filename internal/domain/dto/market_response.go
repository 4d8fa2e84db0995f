package dto

import (
	"math"
	"time"

	"github.com/guttosm/vespulse/internal/domain/models"
)

// MarketResponse is the payload of GET /api/v1/market.
//
// Daily change values coming from the core may be non-finite when a day
// started with a zero baseline quantity; JSON cannot represent those, so
// they are sanitized to 0 here, at the API boundary only.
type MarketResponse struct {
	Overview   models.MarketOverview `json:"overview"`
	Changes    models.DayChanges     `json:"daily_changes"`
	ObservedAt time.Time             `json:"observed_at"`
}

// NewMarketResponse builds a MarketResponse with sanitized change values.
func NewMarketResponse(overview models.MarketOverview, changes models.DayChanges, observedAt time.Time) MarketResponse {
	return MarketResponse{
		Overview: overview,
		Changes: models.DayChanges{
			SellVolumeChangePercent: finiteOrZero(changes.SellVolumeChangePercent),
			BuyVolumeChangePercent:  finiteOrZero(changes.BuyVolumeChangePercent),
			BuyPriceChangePercent:   finiteOrZero(changes.BuyPriceChangePercent),
			SellPriceChangePercent:  finiteOrZero(changes.SellPriceChangePercent),
		},
		ObservedAt: observedAt,
	}
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// DepthResponse is the payload of GET /api/v1/depth.
type DepthResponse struct {
	Bids       []models.DepthPoint `json:"bids"`
	Asks       []models.DepthPoint `json:"asks"`
	ObservedAt time.Time           `json:"observed_at"`
}

// PaymentMethodsResponse is the payload of GET /api/v1/payment-methods.
type PaymentMethodsResponse struct {
	Methods []models.MethodLiquidity `json:"methods"`
}

// SimulateResponse is the payload of GET /api/v1/simulate.
type SimulateResponse struct {
	Side                string  `json:"side"`
	Amount              float64 `json:"amount"`
	FillCount           int     `json:"fill_count"`
	TotalCounterAmount  float64 `json:"total_counter_amount"`
	AvgExecutionPrice   float64 `json:"avg_execution_price"`
	MarketImpactPercent float64 `json:"market_impact_percent"`
}
