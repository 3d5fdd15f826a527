package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// pricePattern matches maximal runs of digits with comma/dot separators.
var pricePattern = regexp.MustCompile(`[0-9.,]+`)

// ParsePrice converts a scraped text fragment into a numeric price. The
// fragment may carry currency symbols, labels and several numbers; the
// trailing number is taken, since it is usually the actual price when a
// fragment carries more than one, e.g. "219 TL Sepette 208,05 TL".
//
// Separator handling covers both the Turkish convention (1.234,56) and the
// international one (1,234.56). When both separators appear, whichever
// occurs last is the decimal separator. A lone dot followed by exactly two
// digits is a decimal separator, any other lone dot is a thousands
// separator.
//
// The function never panics; unparseable input reports ok=false.
func ParsePrice(text string) (float64, bool) {
	if text == "" {
		return 0, false
	}

	matches := pricePattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	raw := matches[len(matches)-1]

	hasComma := strings.Contains(raw, ",")
	hasDot := strings.Contains(raw, ".")

	switch {
	case hasComma && hasDot:
		if strings.LastIndex(raw, ",") > strings.LastIndex(raw, ".") {
			// Turkish format: 1.234,56
			raw = strings.ReplaceAll(raw, ".", "")
			raw = strings.Replace(raw, ",", ".", 1)
		} else {
			// International format: 1,234.56
			raw = strings.ReplaceAll(raw, ",", "")
		}
	case hasComma:
		// Only comma: Turkish decimal separator
		raw = strings.Replace(raw, ",", ".", 1)
	case hasDot:
		parts := strings.Split(raw, ".")
		if len(parts) != 2 || len(parts[1]) != 2 {
			raw = strings.ReplaceAll(raw, ".", "")
		}
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
