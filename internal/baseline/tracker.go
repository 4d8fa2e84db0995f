// Package baseline tracks the start-of-day aggregate values used to compute
// intraday percentage changes. It persists a single JSON record per
// calendar day through the storage.KV port.
package baseline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/guttosm/vespulse/internal/domain/models"
	"github.com/guttosm/vespulse/internal/market"
	"github.com/guttosm/vespulse/internal/storage"
)

// StorageKey is the fixed key the baseline record lives under.
const StorageKey = "vespulse:day_baseline"

const dateLayout = "2006-01-02"

// Tracker persists and reads the day baseline. A persisted record whose
// date differs from the current local date is treated exactly like an
// absent one: the next observation overwrites it.
type Tracker struct {
	store storage.KV
	key   string
	now   func() time.Time // indirection for tests
}

// NewTracker creates a Tracker backed by the given store.
func NewTracker(store storage.KV) *Tracker {
	return &Tracker{store: store, key: StorageKey, now: time.Now}
}

// DailyChanges returns the percentage drift of the four tracked quantities
// between the given snapshot and the start of the current day.
//
// On the first observation of a day (no record, stale record, or an
// unreadable record) it persists a fresh baseline from the snapshot and
// returns all-zero changes: the first observation has no drift from itself.
// Subsequent calls only read, so repeated calls with the same snapshot are
// idempotent.
//
// A baseline quantity of exactly zero yields a non-finite change value.
func (t *Tracker) DailyChanges(ctx context.Context, snap models.MarketSnapshot) (models.DayChanges, error) {
	today := t.now().Format(dateLayout)

	raw, ok, err := t.store.Get(ctx, t.key)
	if err != nil {
		return models.DayChanges{}, fmt.Errorf("baseline: read: %w", err)
	}
	if ok {
		var b models.DayBaseline
		if err := json.Unmarshal([]byte(raw), &b); err == nil && b.Date == today {
			return changesSince(b, snap), nil
		}
		// Stale date or undecodable payload: fall through and reset.
	}

	b := models.DayBaseline{
		Date:                today,
		SellVolumeAtStart:   market.TotalVolume(snap.SellAds),
		BuyVolumeAtStart:    market.TotalVolume(snap.BuyAds),
		AvgBuyPriceAtStart:  market.WeightedAveragePrice(snap.BuyAds),
		AvgSellPriceAtStart: market.WeightedAveragePrice(snap.SellAds),
	}
	buf, err := json.Marshal(b)
	if err != nil {
		return models.DayChanges{}, fmt.Errorf("baseline: encode: %w", err)
	}
	if err := t.store.Set(ctx, t.key, string(buf)); err != nil {
		return models.DayChanges{}, fmt.Errorf("baseline: persist: %w", err)
	}
	return models.DayChanges{}, nil
}

func changesSince(b models.DayBaseline, snap models.MarketSnapshot) models.DayChanges {
	return models.DayChanges{
		SellVolumeChangePercent: pct(market.TotalVolume(snap.SellAds), b.SellVolumeAtStart),
		BuyVolumeChangePercent:  pct(market.TotalVolume(snap.BuyAds), b.BuyVolumeAtStart),
		BuyPriceChangePercent:   pct(market.WeightedAveragePrice(snap.BuyAds), b.AvgBuyPriceAtStart),
		SellPriceChangePercent:  pct(market.WeightedAveragePrice(snap.SellAds), b.AvgSellPriceAtStart),
	}
}

// pct leaves division by a zero start unguarded; see models.DayChanges.
func pct(current, start float64) float64 {
	return (current - start) / start * 100
}
