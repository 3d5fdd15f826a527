package extract

import "github.com/PuerkitoBio/goquery"

// Wefood shows a regular price and, during campaigns, a "Sepette %X
// İndirimli" cart discount next to it.
const (
	wefoodOriginal = ".price__regular .price-item--regular"
	wefoodDiscount = ".price-item-discount"
)

type wefoodPolicy struct{}

func (wefoodPolicy) Brand() string {
	return "Wefood"
}

func (wefoodPolicy) Extract(doc *goquery.Document) PriceResult {
	original, hasOriginal := TrySelectors(doc.Selection, wefoodOriginal)
	if !hasOriginal {
		return failure("no price found on Wefood page")
	}

	result := PriceResult{OriginalPrice: price(original)}
	if discount, ok := TrySelectors(doc.Selection, wefoodDiscount); ok {
		result.DiscountPrice = price(discount)
	}
	return result
}
