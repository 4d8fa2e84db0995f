// Package feed pulls the raw P2P ad listings from the marketplace search
// endpoint and normalizes the loose upstream payload into strict models.Ad
// values. Only this package talks to the upstream; everything past it
// receives validated snapshots.
package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/vespulse/internal/domain/models"
	"github.com/guttosm/vespulse/internal/logger"
)

const searchPath = "/bapi/c2c/v2/friendly/c2c/adv/search"

// Config holds the feed endpoint and paging parameters.
type Config struct {
	BaseURL  string
	Asset    string
	Fiat     string
	Rows     int
	MaxPages int
	Timeout  time.Duration
}

// Client fetches and normalizes marketplace snapshots.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a feed client. Zero-valued config fields fall back to
// the marketplace defaults (20 rows per page, up to 50 pages, 15s timeout).
func NewClient(cfg Config) *Client {
	if cfg.Rows <= 0 {
		cfg.Rows = 20
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = 50
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// searchRequest mirrors the upstream POST body. PublisherType is always
// null and PayTypes always empty: the dashboard aggregates the whole book.
type searchRequest struct {
	Asset         string   `json:"asset"`
	Fiat          string   `json:"fiat"`
	TradeType     string   `json:"tradeType"`
	Page          int      `json:"page"`
	Rows          int      `json:"rows"`
	PayTypes      []string `json:"payTypes"`
	PublisherType *string  `json:"publisherType"`
	MerchantCheck bool     `json:"merchantCheck"`
}

// Upstream payload shapes. Numbers arrive as strings.
type searchResponse struct {
	Data []searchRow `json:"data"`
}

type searchRow struct {
	Adv        advPayload        `json:"adv"`
	Advertiser advertiserPayload `json:"advertiser"`
}

type advPayload struct {
	Price                string        `json:"price"`
	SurplusAmount        string        `json:"surplusAmount"`
	TradableQuantity     string        `json:"tradableQuantity"`
	MinSingleTransAmount string        `json:"minSingleTransAmount"`
	MaxSingleTransAmount string        `json:"maxSingleTransAmount"`
	TradeMethods         []tradeMethod `json:"tradeMethods"`
}

type tradeMethod struct {
	TradeMethodName string `json:"tradeMethodName"`
}

type advertiserPayload struct {
	NickName string `json:"nickName"`
	UserNo   string `json:"userNo"`
}

// FetchSnapshot pulls the buy and sell books concurrently and returns one
// immutable snapshot stamped with the observation time. Either side failing
// on its first page fails the whole snapshot.
func (c *Client) FetchSnapshot(ctx context.Context) (*models.MarketSnapshot, error) {
	var buyAds, sellAds []models.Ad

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ads, err := c.fetchSide(gctx, "BUY")
		buyAds = ads
		return err
	})
	g.Go(func() error {
		ads, err := c.fetchSide(gctx, "SELL")
		sellAds = ads
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.MarketSnapshot{
		BuyAds:     buyAds,
		SellAds:    sellAds,
		ObservedAt: time.Now(),
	}, nil
}

// fetchSide pages through one side of the book. Pagination stops on an
// empty page, a short page, or a transport error past the first page (in
// which case the ads collected so far are returned).
func (c *Client) fetchSide(ctx context.Context, tradeType string) ([]models.Ad, error) {
	var ads []models.Ad

	for page := 1; page <= c.cfg.MaxPages; page++ {
		rows, err := c.fetchPage(ctx, tradeType, page)
		if err != nil {
			if page == 1 {
				return nil, fmt.Errorf("feed: %s page 1: %w", tradeType, err)
			}
			logger.L().Warn().Str("side", tradeType).Int("page", page).Err(err).Msg("pagination stopped early")
			break
		}
		if len(rows) == 0 {
			break
		}
		for _, row := range rows {
			if ad, ok := normalizeRow(row); ok {
				ads = append(ads, ad)
			} else {
				logger.L().Warn().Str("side", tradeType).Int("page", page).Msg("skipping malformed ad")
			}
		}
		if len(rows) < c.cfg.Rows {
			break
		}
	}
	return ads, nil
}

func (c *Client) fetchPage(ctx context.Context, tradeType string, page int) ([]searchRow, error) {
	body, err := json.Marshal(searchRequest{
		Asset:     c.cfg.Asset,
		Fiat:      c.cfg.Fiat,
		TradeType: tradeType,
		Page:      page,
		Rows:      c.cfg.Rows,
		PayTypes:  []string{},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	// The endpoint rejects non-browser clients.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X) AppleWebKit/537.36 Chrome/124 Safari/537.36")
	req.Header.Set("Accept-Language", "es-VE,es;q=0.9,en;q=0.8")
	req.Header.Set("Origin", c.cfg.BaseURL)
	req.Header.Set("Referer", c.cfg.BaseURL+"/es")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload.Data, nil
}

// normalizeRow converts one upstream row into a strict Ad. Rows without a
// positive price or a usable volume are rejected here so the aggregation
// layer never sees them.
func normalizeRow(row searchRow) (models.Ad, bool) {
	price, err := strconv.ParseFloat(row.Adv.Price, 64)
	if err != nil || price <= 0 {
		return models.Ad{}, false
	}

	volSrc := row.Adv.SurplusAmount
	if volSrc == "" {
		volSrc = row.Adv.TradableQuantity
	}
	volume, err := strconv.ParseFloat(volSrc, 64)
	if err != nil || volume < 0 {
		return models.Ad{}, false
	}

	merchant := row.Advertiser.NickName
	if merchant == "" {
		merchant = row.Advertiser.UserNo
	}
	if merchant == "" {
		merchant = "Unknown"
	}

	var methods []string
	seen := make(map[string]struct{}, len(row.Adv.TradeMethods))
	for _, m := range row.Adv.TradeMethods {
		name := m.TradeMethodName
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		methods = append(methods, name)
	}

	return models.Ad{
		Price:           price,
		AvailableVolume: volume,
		MinLimit:        parseOrZero(row.Adv.MinSingleTransAmount),
		MaxLimit:        parseOrZero(row.Adv.MaxSingleTransAmount),
		Merchant:        merchant,
		PaymentMethods:  methods,
	}, true
}

func parseOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
