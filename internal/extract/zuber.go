package extract

import "github.com/PuerkitoBio/goquery"

// Züber's theme names its price classes backwards: the class literally
// called "original" holds the sale price and "compare" holds the true
// original. When no discount runs, the compare element is empty and the
// sale-classed element carries the regular price.
const (
	zuberOriginal = ".product-price--compare span"
	zuberDiscount = ".product-price--original"
)

type zuberPolicy struct{}

func (zuberPolicy) Brand() string {
	return "Züber"
}

func (zuberPolicy) Extract(doc *goquery.Document) PriceResult {
	original, hasOriginal := TrySelectors(doc.Selection, zuberOriginal)
	sale, hasSale := TrySelectors(doc.Selection, zuberDiscount)

	switch {
	case hasOriginal && hasSale:
		return PriceResult{OriginalPrice: price(original), DiscountPrice: price(sale)}
	case hasSale:
		return PriceResult{OriginalPrice: price(sale)}
	}

	return failure("no prices found on Züber page")
}
