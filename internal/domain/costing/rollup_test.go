package costing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type bucket string

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestRecompute_Empty(t *testing.T) {
	totals := Recompute[bucket](nil)
	assert.True(t, totals.Grand.IsZero())
	assert.True(t, totals.Of("anything").IsZero())
}

func TestRecompute_PartitionsAndSums(t *testing.T) {
	lines := []Line[bucket]{
		{Category: "a", Amount: d("0.1")},
		{Category: "b", Amount: d("10")},
		{Category: "a", Amount: d("0.2")},
		{Category: "c", Amount: d("0")},
	}

	totals := Recompute(lines)

	assert.True(t, totals.Of("a").Equal(d("0.3")), "no float drift: %s", totals.Of("a"))
	assert.True(t, totals.Of("b").Equal(d("10")))
	assert.True(t, totals.Of("c").IsZero())
	assert.True(t, totals.Grand.Equal(d("10.3")))
}

func TestRecompute_GrandEqualsSumOfLines(t *testing.T) {
	var lines []Line[bucket]
	sum := decimal.Zero
	for i := 0; i < 100; i++ {
		amt := decimal.New(int64(i*37%101), -2)
		cat := bucket([]string{"x", "y", "z"}[i%3])
		lines = append(lines, Line[bucket]{Category: cat, Amount: amt})
		sum = sum.Add(amt)
	}

	totals := Recompute(lines)
	assert.True(t, totals.Grand.Equal(sum))
	assert.True(t, totals.Of("x").Add(totals.Of("y")).Add(totals.Of("z")).Equal(sum))
}

func TestLineTotalAndPercent(t *testing.T) {
	assert.True(t, LineTotal(d("2"), d("50")).Equal(d("100")))
	assert.True(t, LineTotal(d("0.333"), d("3")).Equal(d("0.999")))
	assert.True(t, Percent(d("100"), d("18")).Equal(d("18")))
	assert.True(t, Percent(d("10.05"), d("5")).Equal(d("0.5")))
}

func TestParseAmount(t *testing.T) {
	assert.True(t, ParseAmount("12.50").Equal(d("12.5")))
	assert.True(t, ParseAmount(" 1,250.75 ").Equal(d("1250.75")))
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("abc").IsZero())
	assert.True(t, ParseAmount("NaN").IsZero())
}
