package sellergrid

import (
	"math"
	"testing"
)

func TestValidatePrice(t *testing.T) {
	testCases := []struct {
		name          string
		raw           float64
		wantPrice     Price
		wantCorrected bool
	}{
		{name: "valid integer", raw: 5, wantPrice: 5, wantCorrected: false},
		{name: "zero", raw: 0, wantPrice: 0, wantCorrected: false},
		{name: "max price", raw: 100000, wantPrice: 100000, wantCorrected: false},
		{name: "negative", raw: -3, wantPrice: 0, wantCorrected: true},
		{name: "nan", raw: math.NaN(), wantPrice: 0, wantCorrected: true},
		{name: "positive infinity", raw: math.Inf(1), wantPrice: 100000, wantCorrected: true},
		{name: "negative infinity", raw: math.Inf(-1), wantPrice: 0, wantCorrected: true},
		{name: "above max", raw: 100001, wantPrice: 100000, wantCorrected: true},
		{name: "fraction rounds down", raw: 3.4, wantPrice: 3, wantCorrected: true},
		{name: "fraction rounds up", raw: 3.5, wantPrice: 4, wantCorrected: true},
		{name: "tiny fraction", raw: 0.2, wantPrice: 0, wantCorrected: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, corrected := ValidatePrice(tc.raw)
			if price != tc.wantPrice {
				t.Errorf("ValidatePrice(%v) price = %v, want %v", tc.raw, price, tc.wantPrice)
			}
			if corrected != tc.wantCorrected {
				t.Errorf("ValidatePrice(%v) corrected = %v, want %v", tc.raw, corrected, tc.wantCorrected)
			}
			if price < MinPrice || price > MaxPrice {
				t.Errorf("ValidatePrice(%v) = %v, out of [%v, %v]", tc.raw, price, MinPrice, MaxPrice)
			}
		})
	}
}

func TestPriceStringFixed(t *testing.T) {
	if got := Price(5).StringFixed(); got != "5.00" {
		t.Errorf("StringFixed() = %q, want %q", got, "5.00")
	}
	if got := Price(0).StringFixed(); got != "0.00" {
		t.Errorf("StringFixed() = %q, want %q", got, "0.00")
	}
	if got := Price(100000).StringFixed(); got != "100000.00" {
		t.Errorf("StringFixed() = %q, want %q", got, "100000.00")
	}
}

func TestPriceDisplay(t *testing.T) {
	if got := Price(15).Display("USD"); got != "$15.00" {
		t.Errorf("Display(USD) = %q, want %q", got, "$15.00")
	}
}
