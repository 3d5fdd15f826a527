package extract

// PriceResult is the engine's sole output: the three price tiers a product
// page may carry, or a descriptive error when no price could be read.
// Error and the price fields are mutually exclusive.
type PriceResult struct {
	OriginalPrice *float64 `json:"original_price"`
	DiscountPrice *float64 `json:"discount_price"`
	MemberPrice   *float64 `json:"member_price"`
	Error         string   `json:"error,omitempty"`
}

// Failed reports whether the extraction found no admissible price.
func (r PriceResult) Failed() bool {
	return r.Error != ""
}

func failure(msg string) PriceResult {
	return PriceResult{Error: msg}
}

func price(v float64) *float64 {
	return &v
}
