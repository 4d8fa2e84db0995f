package models

import "time"

// Ad represents a single P2P marketplace listing for the USDT/VES pair.
//
// Fields:
//   - Price: counter-currency (VES) per unit of USDT. Always > 0 for ads
//     that reach the aggregation layer; the feed drops anything else.
//   - AvailableVolume: USDT quantity still available at this price (>= 0).
//   - MinLimit, MaxLimit: per-transaction VES bounds published by the
//     merchant. Informational only; the fill simulator does not enforce them.
//   - Merchant: advertiser display name. Not unique.
//   - PaymentMethods: accepted payment method labels, de-duplicated per ad.
type Ad struct {
	Price           float64  `json:"price"`
	AvailableVolume float64  `json:"available_volume"`
	MinLimit        float64  `json:"min_limit"`
	MaxLimit        float64  `json:"max_limit"`
	Merchant        string   `json:"merchant"`
	PaymentMethods  []string `json:"payment_methods"`
}

// MarketSnapshot is one observation of the full P2P book, produced by the
// feed on every poll and replaced wholesale by the next poll.
//
//   - BuyAds: listings from counterparties wanting to buy USDT (the price a
//     seller of USDT receives).
//   - SellAds: listings from counterparties selling USDT (the price a buyer
//     of USDT pays).
type MarketSnapshot struct {
	BuyAds     []Ad      `json:"buy_ads"`
	SellAds    []Ad      `json:"sell_ads"`
	ObservedAt time.Time `json:"observed_at"`
}
