package models

import "time"

// MarketOverview aggregates the headline figures of one snapshot.
//
// BestBid is the highest buy-side price, BestAsk the lowest sell-side
// price. Spread is ask minus bid and may be negative when the book is
// crossed or one side is empty; it is intentionally not clamped.
type MarketOverview struct {
	ActiveBuyAds  int     `json:"active_buy_ads"`
	ActiveSellAds int     `json:"active_sell_ads"`
	BuyVolume     float64 `json:"buy_volume"`
	SellVolume    float64 `json:"sell_volume"`
	TotalVolume   float64 `json:"total_volume"`
	BuyCounter    float64 `json:"buy_counter_value"`
	SellCounter   float64 `json:"sell_counter_value"`
	AvgBuyPrice   float64 `json:"avg_buy_price"`
	AvgSellPrice  float64 `json:"avg_sell_price"`
	BestBid       float64 `json:"best_bid"`
	BestAsk       float64 `json:"best_ask"`
	Spread        float64 `json:"spread"`
	SpreadPercent float64 `json:"spread_percent"`
	MidPrice      float64 `json:"mid_price"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
}

// DepthPoint is one row of a cumulative depth curve: the running USDT
// volume available at or better than Price. Rows are emitted per ad, so
// equal prices repeat.
type DepthPoint struct {
	Price            float64 `json:"price"`
	CumulativeVolume float64 `json:"cumulative_volume"`
}

// MethodLiquidity is the total USDT volume reachable through one payment
// method across both sides of the book.
type MethodLiquidity struct {
	Method string  `json:"method"`
	Volume float64 `json:"volume"`
}

// DepthBook carries the cumulative depth curves for both sides of the
// book, stamped with the snapshot's observation time.
type DepthBook struct {
	Bids       []DepthPoint `json:"bids"`
	Asks       []DepthPoint `json:"asks"`
	ObservedAt time.Time    `json:"observed_at"`
}

// FillResult is the outcome of simulating a market order walked against
// the book from best to worst price.
//
//   - FillCount: number of ads touched, including partial consumption.
//   - TotalCounterAmount: VES paid or received across all touched ads.
//   - AvgExecutionPrice: TotalCounterAmount divided by the requested
//     quantity (not the filled quantity; see market.SimulateFill).
//   - MarketImpactPercent: deviation of AvgExecutionPrice from the best
//     standing price, in percent.
type FillResult struct {
	FillCount           int     `json:"fill_count"`
	TotalCounterAmount  float64 `json:"total_counter_amount"`
	AvgExecutionPrice   float64 `json:"avg_execution_price"`
	MarketImpactPercent float64 `json:"market_impact_percent"`
}
