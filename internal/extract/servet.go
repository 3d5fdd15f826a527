package extract

import "github.com/PuerkitoBio/goquery"

// Servet shares Züber's backwards class naming, with a slightly different
// compare element structure.
const (
	servetOriginal = ".product-price--compare span:first-child"
	servetDiscount = ".product-price--original"
)

type servetPolicy struct{}

func (servetPolicy) Brand() string {
	return "Servet"
}

func (servetPolicy) Extract(doc *goquery.Document) PriceResult {
	original, hasOriginal := TrySelectors(doc.Selection, servetOriginal)
	sale, hasSale := TrySelectors(doc.Selection, servetDiscount)

	switch {
	case hasOriginal && hasSale:
		return PriceResult{OriginalPrice: price(original), DiscountPrice: price(sale)}
	case hasSale:
		return PriceResult{OriginalPrice: price(sale)}
	}

	return failure("no prices found on Servet page")
}
