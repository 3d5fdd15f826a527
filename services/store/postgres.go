package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"denizyil/pricewatch/internal/extract"
)

// PostgresStore implements Store on a Postgres database
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and verifies the connection
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// CreateTables creates the necessary tables if they don't exist
func (s *PostgresStore) CreateTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS brands (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			original_price_selector TEXT,
			discount_price_selector TEXT,
			member_price_selector TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS product_urls (
			id SERIAL PRIMARY KEY,
			url TEXT NOT NULL UNIQUE,
			brand TEXT NOT NULL,
			is_active BOOLEAN DEFAULT TRUE,
			original_price DECIMAL(10,2),
			discount_price DECIMAL(10,2),
			member_price DECIMAL(10,2),
			last_scraped_at TIMESTAMP,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS price_history (
			id SERIAL PRIMARY KEY,
			product_url_id INTEGER REFERENCES product_urls(id) ON DELETE CASCADE,
			original_price DECIMAL(10,2),
			discount_price DECIMAL(10,2),
			member_price DECIMAL(10,2),
			error TEXT,
			scraped_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS scrape_jobs (
			id SERIAL PRIMARY KEY,
			status VARCHAR(20) NOT NULL CHECK (status IN ('running', 'completed', 'failed')),
			triggered_by TEXT,
			total_products INTEGER DEFAULT 0,
			scraped_count INTEGER DEFAULT 0,
			error_count INTEGER DEFAULT 0,
			started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			completed_at TIMESTAMP
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

// ActiveProductURLs returns all product URLs flagged for scraping
func (s *PostgresStore) ActiveProductURLs() ([]ProductURL, error) {
	query := `
		SELECT id, url, brand, last_scraped_at
		FROM product_urls
		WHERE is_active = true
		ORDER BY id
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active product urls: %w", err)
	}
	defer rows.Close()

	var urls []ProductURL
	for rows.Next() {
		var pu ProductURL
		if err := rows.Scan(&pu.ID, &pu.URL, &pu.Brand, &pu.LastScrapedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product url: %w", err)
		}
		urls = append(urls, pu)
	}

	return urls, rows.Err()
}

// BrandSelectorTable loads per-brand selector specs from the brands table.
// Brands without any selector configured are skipped; they either have a
// custom policy or are not onboarded yet.
func (s *PostgresStore) BrandSelectorTable() (map[string]extract.BrandSelectors, error) {
	query := `
		SELECT name, original_price_selector, discount_price_selector, member_price_selector
		FROM brands
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand selectors: %w", err)
	}
	defer rows.Close()

	table := make(map[string]extract.BrandSelectors)
	for rows.Next() {
		var name string
		var original, discount, member sql.NullString
		if err := rows.Scan(&name, &original, &discount, &member); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		if !original.Valid && !discount.Valid && !member.Valid {
			continue
		}
		table[name] = extract.BrandSelectors{
			Original: original.String,
			Discount: discount.String,
			Member:   member.String,
		}
	}

	return table, rows.Err()
}

// InsertPriceHistory appends one extraction result to the history log
func (s *PostgresStore) InsertPriceHistory(productURLID int64, result extract.PriceResult) error {
	query := `
		INSERT INTO price_history (product_url_id, original_price, discount_price, member_price, error, scraped_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(query,
		productURLID,
		result.OriginalPrice,
		result.DiscountPrice,
		result.MemberPrice,
		nullableString(result.Error),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert price history: %w", err)
	}
	return nil
}

// UpdateCurrentPrice overwrites the current price snapshot on the product
// URL record. Callers only invoke this for results that carry a price.
func (s *PostgresStore) UpdateCurrentPrice(productURLID int64, result extract.PriceResult) error {
	query := `
		UPDATE product_urls
		SET original_price = $2, discount_price = $3, member_price = $4, last_scraped_at = $5
		WHERE id = $1
	`

	_, err := s.db.Exec(query,
		productURLID,
		result.OriginalPrice,
		result.DiscountPrice,
		result.MemberPrice,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update current price: %w", err)
	}
	return nil
}

// CreateScrapeJob opens a job row for one batch run
func (s *PostgresStore) CreateScrapeJob(totalProducts int, triggeredBy string) (int64, error) {
	query := `
		INSERT INTO scrape_jobs (status, triggered_by, total_products, started_at)
		VALUES ('running', $1, $2, $3)
		RETURNING id
	`

	var jobID int64
	err := s.db.QueryRow(query, nullableString(triggeredBy), totalProducts, time.Now()).Scan(&jobID)
	if err != nil {
		return 0, fmt.Errorf("failed to create scrape job: %w", err)
	}
	return jobID, nil
}

// CompleteScrapeJob records the outcome of a batch run. A run where every
// single item failed is marked failed, anything else completed.
func (s *PostgresStore) CompleteScrapeJob(jobID int64, scrapedCount, errorCount int) error {
	status := "completed"
	if scrapedCount == 0 && errorCount > 0 {
		status = "failed"
	}

	query := `
		UPDATE scrape_jobs
		SET status = $2, scraped_count = $3, error_count = $4, completed_at = $5
		WHERE id = $1
	`

	_, err := s.db.Exec(query, jobID, status, scrapedCount, errorCount, time.Now())
	if err != nil {
		return fmt.Errorf("failed to complete scrape job: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
