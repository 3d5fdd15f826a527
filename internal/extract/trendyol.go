package extract

import (
	"math"

	"github.com/PuerkitoBio/goquery"
)

// Trendyol mixes several price widgets and has changed their markup over
// time, so every role carries multiple selector candidates. Pages show one
// of four layouts:
//
//	A. a single price
//	B. crossed-out original + discount
//	C. Plus member pricing without a crossed-out price
//	D. crossed-out original + Plus pair
const (
	trendyolScope           = ".productDetailWrapper, #product-detail-app, .pr-in-w"
	trendyolCrossedOut      = "span.prc-org, .original-price, .price-old, .old-price, .original, span.original, .price-view .original"
	trendyolPlusOriginal    = ".ty-plus-price-original-price"
	trendyolPlusMember      = ".ty-plus-price-discounted-price"
	trendyolRegularDiscount = "span.discounted, .discounted, .price-view .discounted, .prc-dsc, .price-current-price, .new-price"
)

type trendyolPolicy struct{}

func (trendyolPolicy) Brand() string {
	return "Trendyol"
}

func (trendyolPolicy) Extract(doc *goquery.Document) PriceResult {
	// Price widgets also appear inside recommendation cards elsewhere on
	// the page, so searches stay inside the main product subtree whenever
	// one exists.
	scope := doc.Find(trendyolScope).First()
	if scope.Length() == 0 {
		scope = doc.Find("body")
	}

	crossedOut, hasCrossedOut := TrySelectors(scope, trendyolCrossedOut)
	plusOriginal, hasPlusOriginal := TrySelectors(scope, trendyolPlusOriginal)
	plusMember, hasPlusMember := TrySelectors(scope, trendyolPlusMember)
	regular, hasRegular := TrySelectors(scope, trendyolRegularDiscount)

	// A Plus pair is only trusted when no regular price competes with it,
	// or when the two are within 50% of each other. A far-off pair usually
	// belongs to an unrelated product card.
	plusValid := hasPlusOriginal && hasPlusMember &&
		(!hasRegular || math.Abs(plusOriginal-regular)/regular < 0.5)

	switch {
	case hasCrossedOut && plusValid:
		return PriceResult{
			OriginalPrice: price(crossedOut),
			DiscountPrice: price(plusOriginal),
			MemberPrice:   price(plusMember),
		}
	case plusValid:
		return PriceResult{
			OriginalPrice: price(plusOriginal),
			MemberPrice:   price(plusMember),
		}
	case hasCrossedOut && hasRegular:
		return PriceResult{
			OriginalPrice: price(crossedOut),
			DiscountPrice: price(regular),
		}
	case hasRegular:
		return PriceResult{OriginalPrice: price(regular)}
	case hasCrossedOut:
		return PriceResult{OriginalPrice: price(crossedOut)}
	case hasPlusOriginal:
		return PriceResult{OriginalPrice: price(plusOriginal)}
	}

	return failure("no price found on Trendyol page")
}
