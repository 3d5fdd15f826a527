package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BrandSelectors is the selector configuration for brands without a custom
// policy. Each field is a comma-separated ordered list of CSS selector
// candidates for one price role; empty means the brand does not expose that
// tier.
type BrandSelectors struct {
	Original string
	Discount string
	Member   string
}

// TrySelectors resolves a selector spec against a document scope. The spec
// is split on commas, each candidate trimmed and tried in order; the first
// candidate whose first matching element holds a parseable price wins. An
// empty spec means the policy opted out of this price role.
func TrySelectors(scope *goquery.Selection, spec string) (float64, bool) {
	if scope == nil || spec == "" {
		return 0, false
	}

	for _, sel := range strings.Split(spec, ",") {
		sel = strings.TrimSpace(sel)
		if sel == "" {
			continue
		}

		element := scope.Find(sel).First()
		if element.Length() == 0 {
			continue
		}

		text := strings.TrimSpace(element.Text())
		if text == "" {
			continue
		}

		if v, ok := ParsePrice(text); ok {
			return v, true
		}
	}

	return 0, false
}
