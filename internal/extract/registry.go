package extract

import (
	"time"

	"github.com/PuerkitoBio/goquery"

	"denizyil/pricewatch/logger"
	apperrors "denizyil/pricewatch/pkg/errors"
)

// Registry maps brand names to their extraction policies. It is built once
// at startup and read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	policies  map[string]Policy
	selectors map[string]BrandSelectors
}

// NewRegistry builds a registry holding the built-in custom policies plus a
// selector table for the brands that only need default extraction.
func NewRegistry(table map[string]BrandSelectors) *Registry {
	policies := make(map[string]Policy)
	for _, p := range []Policy{
		trendyolPolicy{},
		zuberPolicy{},
		servetPolicy{},
		fellasPolicy{},
		wefoodPolicy{},
		safPolicy{},
		newFropiePolicy(),
		newUniq2goPolicy(),
	} {
		policies[p.Brand()] = p
	}

	selectors := make(map[string]BrandSelectors, len(table))
	for brand, sel := range table {
		selectors[brand] = sel
	}

	return &Registry{policies: policies, selectors: selectors}
}

// Brands returns every brand the registry can extract for.
func (r *Registry) Brands() []string {
	brands := make([]string, 0, len(r.policies)+len(r.selectors))
	for brand := range r.policies {
		brands = append(brands, brand)
	}
	for brand := range r.selectors {
		if _, ok := r.policies[brand]; !ok {
			brands = append(brands, brand)
		}
	}
	return brands
}

// Extract runs the policy registered for the brand against the document.
// A page without an admissible price comes back inside PriceResult.Error; a
// brand with neither a custom policy nor a selector table is a
// configuration error and is returned as a Go error instead, since it means
// missing onboarding rather than a bad page.
func (r *Registry) Extract(brand string, doc *goquery.Document) (PriceResult, error) {
	policy, err := r.policyFor(brand)
	if err != nil {
		return PriceResult{}, err
	}

	start := time.Now()
	result := policy.Extract(doc)
	elapsed := time.Since(start)

	log := logger.ForBrand(brand)
	if result.Failed() {
		log.Debug().
			Dur("elapsed", elapsed).
			Str("error", result.Error).
			Msg("Extraction found no price")
	} else {
		log.Debug().
			Dur("elapsed", elapsed).
			Msg("Extraction complete")
	}

	return result, nil
}

func (r *Registry) policyFor(brand string) (Policy, error) {
	if p, ok := r.policies[brand]; ok {
		return p, nil
	}
	if sel, ok := r.selectors[brand]; ok {
		return NewDefaultPolicy(brand, sel), nil
	}
	return nil, apperrors.NewConfiguration("no policy or selectors configured for brand: "+brand, nil)
}

// DefaultSelectorTable holds the selector configuration for the brands
// whose pages need no custom decision logic. It seeds new databases and is
// the fallback when the brands table carries no selectors.
func DefaultSelectorTable() map[string]BrandSelectors {
	return map[string]BrandSelectors{
		"Aroha Çikolata": {Original: ".urun_kdvdahil_fiyati"},
		"bahs":           {Original: ".price"},
		"Bite & More":    {Original: ".price, .product-price"},
		"Corny":          {Original: ".price"},
		"Delly":          {Original: ".spanFiyat"},
		"Kellog's":       {Original: ".price"},
		"Mom's Granola":  {Original: ".text-button-02, .font-medium.text-button-02"},
		"Naturiga":       {Original: ".n9-fbt-product-price-final"},
		"Patiswiss":      {Original: ".price"},
		"Protein Ocean":  {Original: `.font-bold.text-black, div[class*="font-bold"]`},
		"Rawsome":        {Original: ".product-price--original"},
		"Vegeat's":       {Original: ".price"},
		"Waspco":         {Original: ".product-price--original"},
		"Yummate":        {Original: ".price"},
	}
}
