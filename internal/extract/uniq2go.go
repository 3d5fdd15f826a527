package extract

// uniq2go runs the same storefront theme as Fropie, discount pair included.
func newUniq2goPolicy() Policy {
	return &twoSpanPolicy{
		brand:     "uniq2go",
		container: ".discount-price span",
		first:     ".discount-price span:first-child",
		last:      ".discount-price span:last-child",
		single:    ".price-main, .discount-price",
	}
}
