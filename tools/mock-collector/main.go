// Package main implements a mock marketplace collector for local development.
// It reads a product catalog fixture, jitters prices and ranks on every tick
// and pushes the observations to the monitor's ingestion API, so that
// monitoring cycles have data without real marketplace credentials.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	apiclient "github.com/donaldgifford/competitive-price-monitor/internal/api/client"
	"github.com/donaldgifford/competitive-price-monitor/pkg/logger"
)

type catalog struct {
	Products []product `json:"products"`
}

type product struct {
	SellerSKU   string       `json:"seller_sku"`
	ASIN        string       `json:"asin"`
	Price       string       `json:"price"`
	Rank        int64        `json:"rank"`
	Category    string       `json:"category"`
	Competitors []competitor `json:"competitors"`
}

type competitor struct {
	ASIN     string `json:"asin"`
	Price    string `json:"price"`
	Rank     int64  `json:"rank"`
	Priority int    `json:"priority"`
	Reason   string `json:"reason"`
}

func main() {
	server := flag.String("server", "http://localhost:8080", "monitor API URL")
	fixtureFile := flag.String("fixture", "tools/mock-collector/testdata/catalog.json", "path to catalog fixture")
	interval := flag.Duration("interval", 0, "push interval; 0 pushes once and exits")
	jitter := flag.Float64("jitter", 5, "maximum price and rank jitter in percent")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "random seed")
	mappings := flag.Bool("mappings", true, "save competitor mappings from the fixture before pushing")
	flag.Parse()

	log := logger.New("debug", "text")

	cat, err := loadCatalog(*fixtureFile)
	if err != nil {
		log.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	log.Info("loaded fixture", "products", len(cat.Products))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := apiclient.New(*server)
	if *mappings {
		if err := saveMappings(ctx, c, cat, log); err != nil {
			log.Error("saving mappings", "error", err)
			os.Exit(1)
		}
	}

	rng := rand.New(rand.NewPCG(*seed, *seed))
	if err := push(ctx, c, buildBatch(cat, rng, *jitter, time.Now()), log); err != nil {
		log.Error("push failed", "error", err)
		os.Exit(1)
	}
	if *interval <= 0 {
		return
	}

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("collector stopped")
			return
		case now := <-ticker.C:
			if err := push(ctx, c, buildBatch(cat, rng, *jitter, now), log); err != nil {
				log.Warn("push failed", "error", err)
			}
		}
	}
}

func loadCatalog(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var cat catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &cat, nil
}

func saveMappings(ctx context.Context, c *apiclient.Client, cat *catalog, log *slog.Logger) error {
	for _, p := range cat.Products {
		for _, comp := range p.Competitors {
			m, err := c.SaveMapping(ctx, apiclient.MappingRequest{
				OurSellerSKU:   p.SellerSKU,
				OurASIN:        p.ASIN,
				CompetitorASIN: comp.ASIN,
				Priority:       comp.Priority,
				Reason:         comp.Reason,
			})
			if err != nil {
				return fmt.Errorf("mapping %s -> %s: %w", p.SellerSKU, comp.ASIN, err)
			}
			log.Debug("mapping saved", "id", m.ID, "seller_sku", p.SellerSKU, "competitor_asin", comp.ASIN)
		}
	}
	return nil
}

// batch is one tick's worth of observations.
type batch struct {
	prices []apiclient.PriceObservation
	ranks  []apiclient.RankObservation
}

// buildBatch produces one own and one competitor observation per catalog
// entry, each moved by up to pct percent from its fixture value.
func buildBatch(cat *catalog, rng *rand.Rand, pct float64, now time.Time) batch {
	var b batch
	for _, p := range cat.Products {
		b.prices = append(b.prices, apiclient.PriceObservation{
			ASIN:               p.ASIN,
			SellerSKU:          p.SellerSKU,
			Amount:             jitterPrice(rng, p.Price, pct),
			Currency:           "USD",
			Condition:          "new",
			FulfillmentChannel: "FBA",
			BelongsToRequester: true,
			CapturedAt:         now,
		})
		b.ranks = append(b.ranks, apiclient.RankObservation{
			ASIN:       p.ASIN,
			SellerSKU:  p.SellerSKU,
			Rank:       jitterRank(rng, p.Rank, pct),
			Category:   p.Category,
			Side:       "own",
			CapturedAt: now,
		})
		for _, comp := range p.Competitors {
			b.prices = append(b.prices, apiclient.PriceObservation{
				ASIN:       comp.ASIN,
				Amount:     jitterPrice(rng, comp.Price, pct),
				Currency:   "USD",
				Condition:  "new",
				Side:       "competitor",
				CapturedAt: now,
			})
			b.ranks = append(b.ranks, apiclient.RankObservation{
				ASIN:       comp.ASIN,
				Rank:       jitterRank(rng, comp.Rank, pct),
				Category:   p.Category,
				Side:       "competitor",
				CapturedAt: now,
			})
		}
	}
	return b
}

// factor returns a multiplier in [1-pct/100, 1+pct/100].
func factor(rng *rand.Rand, pct float64) float64 {
	return 1 + (rng.Float64()*2-1)*pct/100
}

// jitterPrice moves a decimal price string and rounds it to cents. An
// unparsable price is passed through so the server rejects it.
func jitterPrice(rng *rand.Rand, price string, pct float64) string {
	d, err := decimal.NewFromString(price)
	if err != nil {
		return price
	}
	moved := d.Mul(decimal.NewFromFloat(factor(rng, pct))).Round(2)
	if !moved.IsPositive() {
		moved = decimal.New(1, -2)
	}
	return moved.StringFixed(2)
}

// jitterRank moves a sales rank, keeping it at least 1.
func jitterRank(rng *rand.Rand, rank int64, pct float64) int64 {
	return max(1, int64(float64(rank)*factor(rng, pct)))
}

func push(ctx context.Context, c *apiclient.Client, b batch, log *slog.Logger) error {
	prices, err := c.IngestPrices(ctx, b.prices)
	if err != nil {
		return fmt.Errorf("pushing prices: %w", err)
	}
	ranks, err := c.IngestRanks(ctx, b.ranks)
	if err != nil {
		return fmt.Errorf("pushing ranks: %w", err)
	}
	log.Info("pushed observations",
		"prices_accepted", prices.Accepted,
		"prices_failed", prices.Failed,
		"ranks_accepted", ranks.Accepted,
		"ranks_failed", ranks.Failed,
	)
	return nil
}
