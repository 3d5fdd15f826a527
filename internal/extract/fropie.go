package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// twoSpanPolicy handles themes that render a discount as a container with
// two spans: the first holds the crossed-out original, the last the
// discounted price. The pair is only trusted when the first is strictly
// greater than the last; equal or reversed spans fall back to a single
// generic price selector.
type twoSpanPolicy struct {
	brand     string
	container string
	first     string
	last      string
	single    string
}

func (p *twoSpanPolicy) Brand() string {
	return p.brand
}

func (p *twoSpanPolicy) Extract(doc *goquery.Document) PriceResult {
	if doc.Find(p.container).Length() >= 2 {
		original, hasOriginal := TrySelectors(doc.Selection, p.first)
		discount, hasDiscount := TrySelectors(doc.Selection, p.last)

		if hasOriginal && hasDiscount && original > discount {
			return PriceResult{OriginalPrice: price(original), DiscountPrice: price(discount)}
		}
	}

	single, ok := TrySelectors(doc.Selection, p.single)
	if !ok {
		return failure(fmt.Sprintf("no price found on %s page", p.brand))
	}
	return PriceResult{OriginalPrice: price(single)}
}

func newFropiePolicy() Policy {
	return &twoSpanPolicy{
		brand:     "Fropie",
		container: ".discount-price span",
		first:     ".discount-price span:first-child",
		last:      ".discount-price span:last-child",
		single:    ".price-main, .discount-price",
	}
}
