package request

import (
	"strconv"
	"strings"

	"eto_pipeline/internal/domain/costing"

	"github.com/shopspring/decimal"
)

// Amount accepts either a JSON number or a JSON string. Text that does not
// parse as a number reads as zero.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	if s == "null" {
		s = ""
	}
	*a = Amount(s)
	return nil
}

func (a Amount) Decimal() decimal.Decimal {
	return costing.ParseAmount(string(a))
}

func (a *Amount) DecimalPtr() *decimal.Decimal {
	if a == nil {
		return nil
	}
	d := a.Decimal()
	return &d
}
