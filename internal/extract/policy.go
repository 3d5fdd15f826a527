package extract

import "github.com/PuerkitoBio/goquery"

// Policy derives the three-tier price result from one rendered product
// page. Implementations are stateless, hold no per-invocation state, and
// are safe for concurrent use across documents.
type Policy interface {
	// Brand returns the brand name the policy is registered under.
	Brand() string

	// Extract reads the document and decides which combination of candidate
	// prices forms a valid result. A page with no admissible price comes
	// back with PriceResult.Error set, never as a panic or all-null result.
	Extract(doc *goquery.Document) PriceResult
}
