package extract

import "github.com/PuerkitoBio/goquery"

// SAF Nutrition runs a Shopify theme with custom price elements: the
// sale-price element is always present, compare-at-price only during a
// discount.
const (
	safCompareAt = "compare-at-price"
	safSale      = "sale-price"
)

type safPolicy struct{}

func (safPolicy) Brand() string {
	return "Saf"
}

func (safPolicy) Extract(doc *goquery.Document) PriceResult {
	compareAt, hasCompareAt := TrySelectors(doc.Selection, safCompareAt)
	sale, hasSale := TrySelectors(doc.Selection, safSale)

	if !hasSale {
		return failure("no price found on SAF page")
	}

	// A compare-at value equal to or below the sale price implies no real
	// discount, so only a strictly greater one is trusted.
	if hasCompareAt && compareAt > sale {
		return PriceResult{OriginalPrice: price(compareAt), DiscountPrice: price(sale)}
	}

	return PriceResult{OriginalPrice: price(sale)}
}
