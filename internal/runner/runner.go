package runner

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PuerkitoBio/goquery"

	"denizyil/pricewatch/helpers"
	"denizyil/pricewatch/internal/extract"
	"denizyil/pricewatch/logger"
	"denizyil/pricewatch/services/cache"
	"denizyil/pricewatch/services/publisher"
	"denizyil/pricewatch/services/store"
)

// Renderer yields a DOM-queryable snapshot of one product page.
type Renderer interface {
	Render(ctx context.Context, url string) (*goquery.Document, error)
}

// PriceUpdate is the event published after each successful extraction.
type PriceUpdate struct {
	ProductURLID  int64     `json:"product_url_id"`
	URL           string    `json:"url"`
	Brand         string    `json:"brand"`
	OriginalPrice *float64  `json:"original_price"`
	DiscountPrice *float64  `json:"discount_price"`
	MemberPrice   *float64  `json:"member_price"`
	ScrapedAt     time.Time `json:"scraped_at"`
}

// Runner drives one scrape batch end to end: fan out page rendering over a
// bounded pool, extract prices, persist history and publish updates. The
// extraction engine itself is stateless, so the runner owns all concurrency
// bounding and pacing.
type Runner struct {
	store       store.Store
	renderer    Renderer
	registry    *extract.Registry
	publisher   publisher.Publisher
	cooldowns   cache.CacheService
	concurrency int
	batchDelay  time.Duration
	cooldownTTL time.Duration
}

// Options configures the runner's fan-out behavior.
type Options struct {
	// Concurrency bounds how many pages render at once
	Concurrency int
	// BatchDelay is the pacing pause between consecutive batches
	BatchDelay time.Duration
	// CooldownTTL is how long a failing host is skipped
	CooldownTTL time.Duration
}

// NewRunner creates a runner. The cooldown cache may be nil, which
// disables host cooldowns.
func NewRunner(
	st store.Store,
	renderer Renderer,
	registry *extract.Registry,
	pub publisher.Publisher,
	cooldowns cache.CacheService,
	opts Options,
) *Runner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 10
	}
	if opts.BatchDelay <= 0 {
		opts.BatchDelay = time.Second
	}

	return &Runner{
		store:       st,
		renderer:    renderer,
		registry:    registry,
		publisher:   pub,
		cooldowns:   cooldowns,
		concurrency: opts.Concurrency,
		batchDelay:  opts.BatchDelay,
		cooldownTTL: opts.CooldownTTL,
	}
}

// RunOnce executes one full scrape batch over all active product URLs.
func (r *Runner) RunOnce(ctx context.Context, triggeredBy string) error {
	log := logger.ForRunner()
	start := time.Now()

	urls, err := r.store.ActiveProductURLs()
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		log.Info().Msg("No active product urls to scrape")
		return nil
	}

	log.Info().
		Int("url_count", len(urls)).
		Str("triggered_by", triggeredBy).
		Msg("Starting scrape batch")

	jobID, err := r.store.CreateScrapeJob(len(urls), triggeredBy)
	if err != nil {
		// Bookkeeping only; the batch still runs without a job row.
		log.Warn().Err(err).Msg("Could not create scrape job")
	}

	var scraped, failed atomic.Int64

	for batchStart := 0; batchStart < len(urls); batchStart += r.concurrency {
		if ctx.Err() != nil {
			log.Warn().Msg("Scrape batch cancelled")
			break
		}

		batchEnd := min(batchStart+r.concurrency, len(urls))

		var wg sync.WaitGroup
		for _, pu := range urls[batchStart:batchEnd] {
			wg.Add(1)
			go func(pu store.ProductURL) {
				defer wg.Done()
				if r.scrapeOne(ctx, pu) {
					scraped.Add(1)
				} else {
					failed.Add(1)
				}
			}(pu)
		}
		wg.Wait()

		// Pacing pause between batches to be nice to target servers
		if batchEnd < len(urls) {
			time.Sleep(r.batchDelay)
		}
	}

	if jobID != 0 {
		if err := r.store.CompleteScrapeJob(jobID, int(scraped.Load()), int(failed.Load())); err != nil {
			log.Warn().Err(err).Msg("Could not complete scrape job")
		}
	}

	if r.publisher != nil {
		if err := r.publisher.TrimStreams(); err != nil {
			log.Warn().Err(err).Msg("Stream trimming failed")
		}
	}

	log.Info().
		Int64("scraped", scraped.Load()).
		Int64("failed", failed.Load()).
		Dur("elapsed", time.Since(start)).
		Msg("Scrape batch finished")

	return nil
}

// scrapeOne processes a single product URL and reports whether a price was
// recorded.
func (r *Runner) scrapeOne(ctx context.Context, pu store.ProductURL) bool {
	log := logger.ForBrand(pu.Brand)

	if r.onCooldown(pu.URL) {
		log.Warn().Str("url", pu.URL).Msg("Host on cooldown, skipping")
		return false
	}

	doc, err := r.renderer.Render(ctx, pu.URL)
	if err != nil {
		// Page-level failures are recorded in the same shape as extraction
		// misses so the history stays uniform.
		r.startCooldown(pu.URL)
		result := extract.PriceResult{Error: err.Error()}
		if insertErr := r.store.InsertPriceHistory(pu.ID, result); insertErr != nil {
			log.Error().Err(insertErr).Msg("Could not record failed scrape")
		}
		log.Error().Err(err).Str("url", pu.URL).Msg("Page render failed")
		return false
	}

	result, err := r.registry.Extract(pu.Brand, doc)
	if err != nil {
		// Missing policy or selector table. A setup defect, not a page
		// problem: surface loudly and skip without a history row.
		log.Error().Err(err).Str("url", pu.URL).Msg("Extraction unavailable for brand")
		return false
	}

	if insertErr := r.store.InsertPriceHistory(pu.ID, result); insertErr != nil {
		log.Error().Err(insertErr).Msg("Could not record price history")
	}

	if result.Failed() {
		log.Warn().Str("url", pu.URL).Str("error", result.Error).Msg("No price extracted")
		return false
	}

	if err := r.store.UpdateCurrentPrice(pu.ID, result); err != nil {
		log.Error().Err(err).Msg("Could not update current price")
	}

	r.publish(pu, result)

	log.Debug().
		Str("url", pu.URL).
		Float64("original_price", *result.OriginalPrice).
		Msg("Price recorded")
	return true
}

func (r *Runner) publish(pu store.ProductURL, result extract.PriceResult) {
	if r.publisher == nil {
		return
	}

	update := PriceUpdate{
		ProductURLID:  pu.ID,
		URL:           pu.URL,
		Brand:         pu.Brand,
		OriginalPrice: result.OriginalPrice,
		DiscountPrice: result.DiscountPrice,
		MemberPrice:   result.MemberPrice,
		ScrapedAt:     time.Now(),
	}

	data, err := json.Marshal(update)
	if err != nil {
		logger.ForBrand(pu.Brand).Error().Err(err).Msg("Could not marshal price update")
		return
	}

	if err := r.publisher.Publish(pu.Brand, data); err != nil {
		logger.ForBrand(pu.Brand).Error().Err(err).Msg("Could not publish price update")
	}
}

func (r *Runner) onCooldown(rawURL string) bool {
	if r.cooldowns == nil {
		return false
	}
	key := cooldownKey(rawURL)
	if key == "" {
		return false
	}
	_, err := r.cooldowns.Get(key)
	return err == nil
}

func (r *Runner) startCooldown(rawURL string) {
	if r.cooldowns == nil || r.cooldownTTL <= 0 {
		return
	}
	if key := cooldownKey(rawURL); key != "" {
		if err := r.cooldowns.Set(key, []byte("1"), r.cooldownTTL); err != nil {
			logger.ForRunner().Warn().Err(err).Msg("Could not set cooldown")
		}
	}
}

func cooldownKey(rawURL string) string {
	host, err := helpers.Host(rawURL)
	if err != nil {
		return ""
	}
	return "cooldown:" + host
}
