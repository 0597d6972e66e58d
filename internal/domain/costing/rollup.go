// Package costing keeps category subtotals and grand totals consistent with
// the line items they summarize.
//
// Rollups are caches: every total produced here can be reproduced by summing
// the items again, so callers recompute after every insert, update or delete
// instead of patching a total in place.
package costing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPlaces is the precision used when a derived amount (tax) has to be
// rounded. Sums are never rounded.
const CurrencyPlaces = 2

// Line is one costed entry of a rollup.
type Line[C ~string] struct {
	Category C
	Amount   decimal.Decimal
}

// Totals holds one subtotal per category seen plus the grand total.
type Totals[C ~string] struct {
	byCategory map[C]decimal.Decimal
	Grand      decimal.Decimal
}

// Of returns the subtotal of a category, zero when the category had no lines.
func (t Totals[C]) Of(c C) decimal.Decimal {
	if v, ok := t.byCategory[c]; ok {
		return v
	}
	return decimal.Zero
}

// Recompute partitions lines by category and sums each partition. The grand
// total is the sum of the category subtotals. An empty input yields zero
// totals.
func Recompute[C ~string](lines []Line[C]) Totals[C] {
	t := Totals[C]{
		byCategory: make(map[C]decimal.Decimal, len(lines)),
		Grand:      decimal.Zero,
	}
	for _, l := range lines {
		t.byCategory[l.Category] = t.Of(l.Category).Add(l.Amount)
	}
	for _, sub := range t.byCategory {
		t.Grand = t.Grand.Add(sub)
	}
	return t
}

// LineTotal is quantity × unit price, unrounded.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// Percent returns base × rate / 100 rounded to currency precision.
func Percent(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(decimal.NewFromInt(100)).Round(CurrencyPlaces)
}

// ParseAmount reads a user-entered number. Anything unparsable is zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
