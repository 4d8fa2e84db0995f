// Package market implements the aggregation engine and the order execution
// simulator: pure functions that turn a raw list of P2P ads into derived
// market statistics. Every function here is a total function of its inputs.
// Nothing errors and nothing mutates its arguments; degenerate inputs
// (empty books, zero totals) produce documented zero-value sentinels.
package market

import (
	"sort"

	"github.com/guttosm/vespulse/internal/domain/models"
)

// paymentMethodLimit caps the liquidity ranking to the methods that matter
// for the dashboard chart.
const paymentMethodLimit = 8

// TotalVolume returns the sum of available volume over all ads, 0 for an
// empty list.
func TotalVolume(ads []models.Ad) float64 {
	var total float64
	for _, ad := range ads {
		total += ad.AvailableVolume
	}
	return total
}

// WeightedAveragePrice returns the volume-weighted average price of the
// given ads. When total volume is zero there is nothing to weight by and
// the result is defined as 0 rather than an error.
func WeightedAveragePrice(ads []models.Ad) float64 {
	total := TotalVolume(ads)
	if total == 0 {
		return 0
	}
	var weighted float64
	for _, ad := range ads {
		weighted += ad.Price * ad.AvailableVolume
	}
	return weighted / total
}

// CounterValue returns the total counter-currency (VES) value of the given
// ads: the sum of price times available volume.
func CounterValue(ads []models.Ad) float64 {
	var total float64
	for _, ad := range ads {
		total += ad.Price * ad.AvailableVolume
	}
	return total
}

// BestBid returns the highest price among buy-side ads, 0 if there are none.
func BestBid(buyAds []models.Ad) float64 {
	var best float64
	for _, ad := range buyAds {
		if ad.Price > best {
			best = ad.Price
		}
	}
	return best
}

// BestAsk returns the lowest price among sell-side ads, 0 if there are none.
func BestAsk(sellAds []models.Ad) float64 {
	if len(sellAds) == 0 {
		return 0
	}
	best := sellAds[0].Price
	for _, ad := range sellAds[1:] {
		if ad.Price < best {
			best = ad.Price
		}
	}
	return best
}

// Spread is ask minus bid. It may be negative when the book is crossed or
// one side is empty; it is not clamped.
func Spread(bid, ask float64) float64 {
	return ask - bid
}

// SpreadPercent expresses the spread relative to the bid, in percent.
// 0 when the bid is not positive.
func SpreadPercent(spread, bid float64) float64 {
	if bid <= 0 {
		return 0
	}
	return spread / bid * 100
}

// MidPrice is the arithmetic mean of bid and ask.
func MidPrice(bid, ask float64) float64 {
	return (bid + ask) / 2
}

// PriceRange returns the minimum and maximum price observed across all the
// given ad lists. Both are 0 when every list is empty.
func PriceRange(lists ...[]models.Ad) (min, max float64) {
	first := true
	for _, ads := range lists {
		for _, ad := range ads {
			if first {
				min, max = ad.Price, ad.Price
				first = false
				continue
			}
			if ad.Price < min {
				min = ad.Price
			}
			if ad.Price > max {
				max = ad.Price
			}
		}
	}
	return min, max
}

// CumulativeDepth sorts the ads ascending by price (stable, so ads with
// equal prices keep their original relative order) and returns one running
// volume total per ad. Prices are not de-duplicated: two ads at the same
// price produce two rows.
func CumulativeDepth(ads []models.Ad) []models.DepthPoint {
	if len(ads) == 0 {
		return nil
	}
	sorted := make([]models.Ad, len(ads))
	copy(sorted, ads)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })

	points := make([]models.DepthPoint, len(sorted))
	var cum float64
	for i, ad := range sorted {
		cum += ad.AvailableVolume
		points[i] = models.DepthPoint{Price: ad.Price, CumulativeVolume: cum}
	}
	return points
}

// PaymentMethodLiquidity ranks payment methods by the total volume
// reachable through them across both sides of the book, truncated to the
// top 8. An ad listing the same method twice counts it once. Ties keep the
// order in which the methods were first seen.
func PaymentMethodLiquidity(buyAds, sellAds []models.Ad) []models.MethodLiquidity {
	volumes := make(map[string]float64)
	var order []string

	accumulate := func(ads []models.Ad) {
		for _, ad := range ads {
			seen := make(map[string]struct{}, len(ad.PaymentMethods))
			for _, m := range ad.PaymentMethods {
				if _, dup := seen[m]; dup {
					continue
				}
				seen[m] = struct{}{}
				if _, ok := volumes[m]; !ok {
					order = append(order, m)
				}
				volumes[m] += ad.AvailableVolume
			}
		}
	}
	accumulate(buyAds)
	accumulate(sellAds)

	ranking := make([]models.MethodLiquidity, 0, len(order))
	for _, m := range order {
		ranking = append(ranking, models.MethodLiquidity{Method: m, Volume: volumes[m]})
	}
	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Volume > ranking[j].Volume })

	if len(ranking) > paymentMethodLimit {
		ranking = ranking[:paymentMethodLimit]
	}
	return ranking
}

// Overview computes the full set of headline figures for one snapshot.
func Overview(snap models.MarketSnapshot) models.MarketOverview {
	bid := BestBid(snap.BuyAds)
	ask := BestAsk(snap.SellAds)
	spread := Spread(bid, ask)
	buyVolume := TotalVolume(snap.BuyAds)
	sellVolume := TotalVolume(snap.SellAds)
	min, max := PriceRange(snap.BuyAds, snap.SellAds)

	return models.MarketOverview{
		ActiveBuyAds:  len(snap.BuyAds),
		ActiveSellAds: len(snap.SellAds),
		BuyVolume:     buyVolume,
		SellVolume:    sellVolume,
		TotalVolume:   buyVolume + sellVolume,
		BuyCounter:    CounterValue(snap.BuyAds),
		SellCounter:   CounterValue(snap.SellAds),
		AvgBuyPrice:   WeightedAveragePrice(snap.BuyAds),
		AvgSellPrice:  WeightedAveragePrice(snap.SellAds),
		BestBid:       bid,
		BestAsk:       ask,
		Spread:        spread,
		SpreadPercent: SpreadPercent(spread, bid),
		MidPrice:      MidPrice(bid, ask),
		MinPrice:      min,
		MaxPrice:      max,
	}
}
