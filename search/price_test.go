package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceRange(t *testing.T) {
	inf := math.Inf(1)

	tests := []struct {
		name    string
		input   string
		wantMin float64
		wantMax float64
	}{
		{name: "range", input: "50,000đ-150,000đ", wantMin: 50000, wantMax: 150000},
		{name: "open_ended", input: "300,000đ+", wantMin: 300000, wantMax: inf},
		{name: "empty", input: "", wantMin: 0, wantMax: inf},
		{name: "garbage", input: "garbage", wantMin: 0, wantMax: inf},
		{name: "single_value", input: "45,000đ", wantMin: 45000, wantMax: 45000},
		{name: "spaces_and_dots", input: "30.000 ₫ - 60.000 ₫", wantMin: 30000, wantMax: 60000},
		{name: "vnd_suffix", input: "100000 VND", wantMin: 100000, wantMax: 100000},
		{name: "reversed_pair_kept_positionally", input: "90,000đ-20,000đ", wantMin: 90000, wantMax: 20000},
		{name: "three_parts", input: "1-2-3", wantMin: 0, wantMax: inf},
		{name: "leading_dash", input: "-5000", wantMin: 0, wantMax: inf},
		{name: "plus_without_number", input: "+", wantMin: 0, wantMax: inf},
		{name: "words_in_range", input: "từ 50k-100k", wantMin: 0, wantMax: inf},
		{name: "nan_literal", input: "NaN", wantMin: 0, wantMax: inf},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			gotMin, gotMax := ParsePriceRange(testCase.input)
			assert.Equal(t, testCase.wantMin, gotMin)
			assert.Equal(t, testCase.wantMax, gotMax)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "phở hà nội", Normalize("  Phở HÀ Nội \n"))
	assert.Equal(t, "", Normalize(""))
	assert.NotEqual(t, "pho", Normalize("Phở"))
}
