package market

import (
	"sort"

	"github.com/guttosm/vespulse/internal/domain/models"
)

// SimulateFill models a market order for targetQuantity USDT walked against
// the given ads from best (lowest) to worst price. Each ad's available
// volume is consumed greedily up to the remaining unfilled quantity; every
// ad touched, even partially, counts toward FillCount.
//
// The book is not required to cover targetQuantity: when it runs out the
// simulation stops silently with a partial fill, and the result carries no
// explicit full/partial indicator.
//
// AvgExecutionPrice divides the total counter amount by the requested
// quantity, not the filled quantity, so it under-states the true per-unit
// cost on a partial fill. That matches the dashboard's historical behavior
// and is kept deliberately.
//
// A non-positive targetQuantity or an empty book yields the zero result.
func SimulateFill(targetQuantity float64, ads []models.Ad) models.FillResult {
	if targetQuantity <= 0 || len(ads) == 0 {
		return models.FillResult{}
	}

	sorted := make([]models.Ad, len(ads))
	copy(sorted, ads)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })

	remaining := targetQuantity
	var result models.FillResult
	for _, ad := range sorted {
		if remaining <= 0 {
			break
		}
		consumed := ad.AvailableVolume
		if remaining < consumed {
			consumed = remaining
		}
		result.TotalCounterAmount += ad.Price * consumed
		remaining -= consumed
		result.FillCount++
	}

	result.AvgExecutionPrice = result.TotalCounterAmount / targetQuantity

	if best := sorted[0].Price; best > 0 {
		result.MarketImpactPercent = (result.AvgExecutionPrice - best) / best * 100
	}
	return result
}
