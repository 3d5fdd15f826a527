package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// defaultPolicy extracts prices purely from a brand's selector table. Most
// brands need nothing more than this.
type defaultPolicy struct {
	brand     string
	selectors BrandSelectors
}

// NewDefaultPolicy builds a selector-table driven policy for a brand
// without custom decision logic.
func NewDefaultPolicy(brand string, selectors BrandSelectors) Policy {
	return &defaultPolicy{brand: brand, selectors: selectors}
}

func (p *defaultPolicy) Brand() string {
	return p.brand
}

func (p *defaultPolicy) Extract(doc *goquery.Document) PriceResult {
	original, hasOriginal := TrySelectors(doc.Selection, p.selectors.Original)
	discount, hasDiscount := TrySelectors(doc.Selection, p.selectors.Discount)
	member, hasMember := TrySelectors(doc.Selection, p.selectors.Member)

	var memberPrice *float64
	if hasMember {
		memberPrice = price(member)
	}

	// A missing crossed-out price alongside a present "discount" usually
	// means no promotion is running and the discount selector holds the
	// only price, so it is promoted to original.
	if !hasOriginal && hasDiscount {
		return PriceResult{OriginalPrice: price(discount), MemberPrice: memberPrice}
	}

	if !hasOriginal {
		return failure(fmt.Sprintf("no price found for %s with selectors: %s", p.brand, p.selectors.Original))
	}

	result := PriceResult{OriginalPrice: price(original), MemberPrice: memberPrice}
	if hasDiscount {
		result.DiscountPrice = price(discount)
	}
	return result
}
