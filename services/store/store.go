package store

import (
	"time"

	"denizyil/pricewatch/internal/extract"
)

// ProductURL is one active page to scrape: the URL plus the brand whose
// policy knows how to read it.
type ProductURL struct {
	ID            int64
	URL           string
	Brand         string
	LastScrapedAt *time.Time
}

// Store persists extraction results and scrape job bookkeeping.
type Store interface {
	// ActiveProductURLs returns all product URLs flagged for scraping
	ActiveProductURLs() ([]ProductURL, error)

	// BrandSelectorTable loads selector configuration from the brands table
	BrandSelectorTable() (map[string]extract.BrandSelectors, error)

	// InsertPriceHistory appends one extraction result to the history log
	InsertPriceHistory(productURLID int64, result extract.PriceResult) error

	// UpdateCurrentPrice overwrites the current price snapshot on the
	// product URL record
	UpdateCurrentPrice(productURLID int64, result extract.PriceResult) error

	// CreateScrapeJob opens a job row for one batch run
	CreateScrapeJob(totalProducts int, triggeredBy string) (int64, error)

	// CompleteScrapeJob records the outcome of a batch run
	CompleteScrapeJob(jobID int64, scrapedCount, errorCount int) error

	// Close releases the underlying connection pool
	Close() error
}
