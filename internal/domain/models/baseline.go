package models

// DayBaseline captures the first-observed aggregate values of a calendar
// day. Exactly one record is valid at any instant: the one whose Date equals
// the current local date. A record with any other date is treated as absent
// and overwritten on the next observation.
//
// Date uses the "2006-01-02" layout in local time.
type DayBaseline struct {
	Date                string  `json:"date"`
	SellVolumeAtStart   float64 `json:"sell_volume_at_start"`
	BuyVolumeAtStart    float64 `json:"buy_volume_at_start"`
	AvgBuyPriceAtStart  float64 `json:"avg_buy_price_at_start"`
	AvgSellPriceAtStart float64 `json:"avg_sell_price_at_start"`
}

// DayChanges holds the percentage drift of the four tracked quantities
// since the start of the current day. All four are zero on the first
// observation of a day.
//
// A zero baseline quantity produces a non-finite value here (division by
// zero is deliberately not guarded); callers that serialize to JSON must
// sanitize.
type DayChanges struct {
	SellVolumeChangePercent float64 `json:"sell_volume_change_percent"`
	BuyVolumeChangePercent  float64 `json:"buy_volume_change_percent"`
	BuyPriceChangePercent   float64 `json:"buy_price_change_percent"`
	SellPriceChangePercent  float64 `json:"sell_price_change_percent"`
}
