package sellergrid

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MaxPrice is the highest accepted price, in whole units.
const MaxPrice Price = 100000

// MinPrice is the lowest accepted price. The grid allows zero-priced items;
// they are kept in the ledger but are not valid for printing.
const MinPrice Price = 0

// Price is a whole-unit monetary value attached to an item.
//
// Prices are always integers between MinPrice and MaxPrice; fractional or
// out-of-range input is silently corrected by ValidatePrice.
type Price int64

// ValidatePrice normalizes a raw price value into a valid Price.
//
// Non-numbers and negatives become MinPrice, values above MaxPrice are
// clamped down, and fractional values are rounded to the nearest whole unit.
// The returned bool reports whether any correction was applied. No error is
// ever raised: correction is silent self-healing, surfaced to the user only
// through the item's transient highlight flag.
func ValidatePrice(raw float64) (Price, bool) {
	if math.IsNaN(raw) || raw < float64(MinPrice) {
		return MinPrice, true
	}
	if raw > float64(MaxPrice) {
		return MaxPrice, true
	}
	d := decimal.NewFromFloat(raw)
	rounded := d.Round(0)
	return Price(rounded.IntPart()), !rounded.Equal(d)
}

// StringFixed returns the price with exactly two decimal places, the form
// used in barcode payloads and export summary rows.
func (p Price) StringFixed() string {
	return decimal.NewFromInt(int64(p)).StringFixed(2)
}

// Display formats the price with the currency symbol and separators of the
// given ISO currency code, for confirmation messages and rendered grids.
func (p Price) Display(code string) string {
	// go-money never returns a nil currency from a constructed value.
	cur := *money.New(0, code).Currency()
	minor := decimal.NewFromInt(int64(p)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}
