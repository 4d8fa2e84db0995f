package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/guttosm/vespulse/internal/baseline"
	"github.com/guttosm/vespulse/internal/domain/models"
	"github.com/guttosm/vespulse/internal/logger"
	"github.com/guttosm/vespulse/internal/market"
)

// ErrNoSnapshot is returned before the first successful poll: there is no
// market data to aggregate yet.
var ErrNoSnapshot = errors.New("no snapshot available")

// ErrInvalidSide is returned for a simulation side other than buy or sell.
var ErrInvalidSide = errors.New("side must be buy or sell")

// Fetcher is the feed dependency: one call, one fresh snapshot.
type Fetcher interface {
	FetchSnapshot(ctx context.Context) (*models.MarketSnapshot, error)
}

// MarketReport bundles everything the dashboard's header and metric cards
// need from one snapshot.
type MarketReport struct {
	Overview   models.MarketOverview `json:"overview"`
	Changes    models.DayChanges     `json:"daily_changes"`
	ObservedAt time.Time             `json:"observed_at"`
}

// MarketService exposes the aggregated market state to the HTTP layer and
// the polling loop that keeps it fresh.
type MarketService interface {
	Run(ctx context.Context, interval time.Duration)
	Refresh(ctx context.Context) error
	Market(ctx context.Context) (*MarketReport, error)
	Depth(ctx context.Context) (*models.DepthBook, error)
	PaymentMethods(ctx context.Context) ([]models.MethodLiquidity, error)
	Simulate(ctx context.Context, side string, amount float64) (*models.FillResult, error)
	Ready() bool
}

type marketService struct {
	feed    Fetcher
	tracker *baseline.Tracker

	mu   sync.RWMutex
	snap *models.MarketSnapshot
}

// NewMarketService creates the service. It holds no snapshot until the
// first successful Refresh.
func NewMarketService(feed Fetcher, tracker *baseline.Tracker) MarketService {
	return &marketService{feed: feed, tracker: tracker}
}

// Refresh pulls a fresh snapshot from the feed and replaces the current
// one. On failure the previous snapshot is kept.
func (s *marketService) Refresh(ctx context.Context) error {
	snap, err := s.feed.FetchSnapshot(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	logger.L().Info().
		Int("buy_ads", len(snap.BuyAds)).
		Int("sell_ads", len(snap.SellAds)).
		Time("observed_at", snap.ObservedAt).
		Msg("snapshot refreshed")
	return nil
}

// Run polls immediately and then on every tick until the context is
// canceled. A failed poll is logged and the loop continues with the
// previous snapshot.
func (s *marketService) Run(ctx context.Context, interval time.Duration) {
	if err := s.Refresh(ctx); err != nil {
		logger.L().Error().Err(err).Msg("initial snapshot failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.L().Info().Msg("poller stopped")
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				logger.L().Error().Err(err).Msg("snapshot refresh failed")
			}
		}
	}
}

func (s *marketService) current() (*models.MarketSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, ErrNoSnapshot
	}
	return s.snap, nil
}

// Market computes the overview and the intraday changes for the current
// snapshot. The baseline tracker may persist a fresh baseline as a side
// effect on the first observation of a day.
func (s *marketService) Market(ctx context.Context) (*MarketReport, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}

	changes, err := s.tracker.DailyChanges(ctx, *snap)
	if err != nil {
		return nil, err
	}

	return &MarketReport{
		Overview:   market.Overview(*snap),
		Changes:    changes,
		ObservedAt: snap.ObservedAt,
	}, nil
}

func (s *marketService) Depth(_ context.Context) (*models.DepthBook, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return &models.DepthBook{
		Bids:       market.CumulativeDepth(snap.BuyAds),
		Asks:       market.CumulativeDepth(snap.SellAds),
		ObservedAt: snap.ObservedAt,
	}, nil
}

func (s *marketService) PaymentMethods(_ context.Context) ([]models.MethodLiquidity, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}
	return market.PaymentMethodLiquidity(snap.BuyAds, snap.SellAds), nil
}

// Simulate walks the opposite side of the book: buying USDT consumes sell
// ads, selling USDT consumes buy ads.
func (s *marketService) Simulate(_ context.Context, side string, amount float64) (*models.FillResult, error) {
	snap, err := s.current()
	if err != nil {
		return nil, err
	}

	var ads []models.Ad
	switch side {
	case "buy":
		ads = snap.SellAds
	case "sell":
		ads = snap.BuyAds
	default:
		return nil, ErrInvalidSide
	}

	result := market.SimulateFill(amount, ads)
	return &result, nil
}

// Ready reports whether at least one snapshot has been observed.
func (s *marketService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap != nil
}
