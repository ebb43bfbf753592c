package search

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

var priceNoise = strings.NewReplacer(
	"đ", "", "Đ", "", "₫", "",
	"vnd", "", "VND", "", "Vnd", "",
	",", "", ".", "",
)

// ParsePriceRange turns strings like "50,000đ-150,000đ" or "300,000đ+" into
// a (min, max) interval in VND. Anything it cannot read comes back as
// (0, +Inf) so the record still matches every price filter.
func ParsePriceRange(text string) (min, max float64) {
	unbounded := math.Inf(1)

	s := priceNoise.Replace(text)
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	if s == "" {
		return 0, unbounded
	}

	if strings.HasSuffix(s, "+") {
		v, ok := parseAmount(strings.TrimSuffix(s, "+"))
		if !ok {
			return 0, unbounded
		}
		return v, unbounded
	}

	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) != 2 {
			return 0, unbounded
		}
		lo, okLo := parseAmount(parts[0])
		hi, okHi := parseAmount(parts[1])
		if !okLo || !okHi {
			return 0, unbounded
		}
		return lo, hi
	}

	v, ok := parseAmount(s)
	if !ok {
		return 0, unbounded
	}
	return v, v
}

func parseAmount(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
