package extract

import "github.com/PuerkitoBio/goquery"

// Fellas uses straightforward ID-based selectors.
const (
	fellasOriginal = "#fiyat .spanFiyat"
	fellasDiscount = "#indirimliFiyat .spanFiyat"
)

type fellasPolicy struct{}

func (fellasPolicy) Brand() string {
	return "Fellas"
}

func (fellasPolicy) Extract(doc *goquery.Document) PriceResult {
	original, hasOriginal := TrySelectors(doc.Selection, fellasOriginal)
	discount, hasDiscount := TrySelectors(doc.Selection, fellasDiscount)

	if !hasOriginal && hasDiscount {
		return PriceResult{OriginalPrice: price(discount)}
	}

	if !hasOriginal {
		return failure("no price found on Fellas page")
	}

	result := PriceResult{OriginalPrice: price(original)}
	if hasDiscount {
		result.DiscountPrice = price(discount)
	}
	return result
}
