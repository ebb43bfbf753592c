package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	hanoi := NewPoint(21.0285, 105.8542)
	hcm := NewPoint(10.8231, 106.6297)

	tests := []struct {
		name   string
		a, b   *Point
		wantOK bool
		want   float64
	}{
		{name: "hanoi_to_hcm", a: hanoi, b: hcm, wantOK: true, want: 1138},
		{name: "same_point", a: NewPoint(16.05, 108.2), b: NewPoint(16.05, 108.2), wantOK: true, want: 0},
		{name: "missing_first", a: nil, b: hcm, wantOK: false},
		{name: "missing_second", a: hanoi, b: nil, wantOK: false},
		{name: "nan_coordinate", a: NewPoint(math.NaN(), 1), b: hcm, wantOK: false},
		{name: "out_of_range", a: NewPoint(91, 0), b: hcm, wantOK: false},
		{name: "zero_is_a_real_coordinate", a: NewPoint(0, 0), b: NewPoint(0, 1), wantOK: true, want: 111.19},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got, ok := DistanceKm(testCase.a, testCase.b)
			assert.Equal(t, testCase.wantOK, ok)
			if testCase.wantOK {
				assert.InDelta(t, testCase.want, got, 2.0)
			}
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	a := NewPoint(21.03, 105.83)
	b := NewPoint(16.07, 108.22)

	ab, ok1 := DistanceKm(a, b)
	ba, ok2 := DistanceKm(b, a)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, ab, ba)
}

func TestDistanceKm_Antipodal(t *testing.T) {
	d, ok := DistanceKm(NewPoint(10, 20), NewPoint(-10, -160))
	assert.True(t, ok)
	assert.InDelta(t, math.Pi*EarthRadiusKm, d, 0.001)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.234))
	assert.Equal(t, 1.24, Round2(1.235001))
	assert.Equal(t, 0.0, Round2(0.001))
}
