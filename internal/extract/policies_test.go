package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZuberWithDiscount(t *testing.T) {
	// The theme names its classes backwards: "original" holds the sale
	// price, "compare" the true original.
	doc := docFromHTML(t, `
		<div class="product-price--compare"><span>250 TL</span></div>
		<div class="product-price--original">199 TL</div>
	`)

	result := zuberPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 250.0, *result.OriginalPrice)
	assert.Equal(t, 199.0, *result.DiscountPrice)
}

func TestZuberWithoutDiscount(t *testing.T) {
	doc := docFromHTML(t, `
		<div class="product-price--compare"></div>
		<div class="product-price--original">199 TL</div>
	`)

	result := zuberPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 199.0, *result.OriginalPrice)
	assert.Nil(t, result.DiscountPrice)
}

func TestZuberNoPrices(t *testing.T) {
	doc := docFromHTML(t, `<div class="content">Ürün bulunamadı</div>`)

	result := zuberPolicy{}.Extract(doc)
	assert.True(t, result.Failed())
}

func TestServetWithDiscount(t *testing.T) {
	doc := docFromHTML(t, `
		<div class="product-price--compare"><span>90,50 TL</span><span>extra</span></div>
		<div class="product-price--original">75 TL</div>
	`)

	result := servetPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 90.5, *result.OriginalPrice)
	assert.Equal(t, 75.0, *result.DiscountPrice)
}

func TestFellasDiscounted(t *testing.T) {
	doc := docFromHTML(t, `
		<div id="fiyat"><span class="spanFiyat">320 TL</span></div>
		<div id="indirimliFiyat"><span class="spanFiyat">280 TL</span></div>
	`)

	result := fellasPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 320.0, *result.OriginalPrice)
	assert.Equal(t, 280.0, *result.DiscountPrice)
}

func TestFellasDiscountOnlyPromoted(t *testing.T) {
	doc := docFromHTML(t, `
		<div id="indirimliFiyat"><span class="spanFiyat">280 TL</span></div>
	`)

	result := fellasPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 280.0, *result.OriginalPrice)
	assert.Nil(t, result.DiscountPrice)
}

func TestWefoodRegularOnly(t *testing.T) {
	doc := docFromHTML(t, `
		<div class="price__regular"><span class="price-item--regular">145 TL</span></div>
	`)

	result := wefoodPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 145.0, *result.OriginalPrice)
	assert.Nil(t, result.DiscountPrice)
}

func TestWefoodCampaignDiscount(t *testing.T) {
	doc := docFromHTML(t, `
		<div class="price__regular"><span class="price-item--regular">145 TL</span></div>
		<span class="price-item-discount">Sepette %40 İndirimli 87 TL</span>
	`)

	result := wefoodPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 145.0, *result.OriginalPrice)
	assert.Equal(t, 87.0, *result.DiscountPrice)
}

func TestSafWithCompareAt(t *testing.T) {
	doc := docFromHTML(t, `
		<compare-at-price>₺316,00</compare-at-price>
		<sale-price>₺221,00</sale-price>
	`)

	result := safPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 316.0, *result.OriginalPrice)
	assert.Equal(t, 221.0, *result.DiscountPrice)
}

func TestSafCompareAtNotGreater(t *testing.T) {
	// A compare-at equal to the sale price is not a real discount.
	doc := docFromHTML(t, `
		<compare-at-price>₺221,00</compare-at-price>
		<sale-price>₺221,00</sale-price>
	`)

	result := safPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 221.0, *result.OriginalPrice)
	assert.Nil(t, result.DiscountPrice)
}

func TestSafSaleOnly(t *testing.T) {
	doc := docFromHTML(t, `<sale-price>₺221,00</sale-price>`)

	result := safPolicy{}.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 221.0, *result.OriginalPrice)
	assert.Nil(t, result.DiscountPrice)
}

func TestFropieTwoSpanDiscount(t *testing.T) {
	doc := docFromHTML(t, `
		<div class="discount-price"><span>650 TL</span><span>520 TL</span></div>
	`)

	result := newFropiePolicy().Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 650.0, *result.OriginalPrice)
	assert.Equal(t, 520.0, *result.DiscountPrice)
}

func TestFropieEqualSpansFallBack(t *testing.T) {
	// Both spans holding the same value means no real discount; the
	// container text as a whole becomes the single price.
	doc := docFromHTML(t, `
		<div class="discount-price"><span>100 TL</span><span>100 TL</span></div>
	`)

	result := newFropiePolicy().Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 100.0, *result.OriginalPrice)
	assert.Nil(t, result.DiscountPrice)
}

func TestFropieSinglePrice(t *testing.T) {
	doc := docFromHTML(t, `<div class="price-main">89,90 TL</div>`)

	result := newFropiePolicy().Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 89.9, *result.OriginalPrice)
	assert.Nil(t, result.DiscountPrice)
}

func TestFropieNoPrice(t *testing.T) {
	doc := docFromHTML(t, `<div class="content">yok</div>`)

	result := newFropiePolicy().Extract(doc)
	assert.True(t, result.Failed())
	assert.Contains(t, result.Error, "Fropie")
}

func TestUniq2goSharesTheme(t *testing.T) {
	doc := docFromHTML(t, `
		<div class="discount-price"><span>450 TL</span><span>399 TL</span></div>
	`)

	result := newUniq2goPolicy().Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 450.0, *result.OriginalPrice)
	assert.Equal(t, 399.0, *result.DiscountPrice)
}

func TestDefaultPolicyOriginalOnly(t *testing.T) {
	policy := NewDefaultPolicy("Corny", BrandSelectors{Original: ".price"})
	doc := docFromHTML(t, `<div class="price">59,90 TL</div>`)

	result := policy.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 59.9, *result.OriginalPrice)
}

func TestDefaultPolicyDiscountPromoted(t *testing.T) {
	policy := NewDefaultPolicy("Test", BrandSelectors{
		Original: ".crossed-out",
		Discount: ".sale",
	})
	doc := docFromHTML(t, `<div class="sale">42 TL</div>`)

	result := policy.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 42.0, *result.OriginalPrice)
	assert.Nil(t, result.DiscountPrice, "promoted discount must not repeat as discount")
}

func TestDefaultPolicyAllTiers(t *testing.T) {
	policy := NewDefaultPolicy("Test", BrandSelectors{
		Original: ".orig",
		Discount: ".sale",
		Member:   ".member",
	})
	doc := docFromHTML(t, `
		<div class="orig">100 TL</div>
		<div class="sale">80 TL</div>
		<div class="member">70 TL</div>
	`)

	result := policy.Extract(doc)
	require.False(t, result.Failed())
	assert.Equal(t, 100.0, *result.OriginalPrice)
	assert.Equal(t, 80.0, *result.DiscountPrice)
	assert.Equal(t, 70.0, *result.MemberPrice)
}

func TestDefaultPolicyNoPrice(t *testing.T) {
	policy := NewDefaultPolicy("Corny", BrandSelectors{Original: ".price"})
	doc := docFromHTML(t, `<div class="nothing"></div>`)

	result := policy.Extract(doc)
	assert.True(t, result.Failed())
	assert.Contains(t, result.Error, "Corny")
	assert.Nil(t, result.OriginalPrice)
}
