package entities

import (
	"strings"

	"eto_pipeline/internal/domain/costing"

	"github.com/shopspring/decimal"
)

// CostType tags a quotation line with the cost bucket it rolls up into.
type CostType string

const (
	CostTypeEngineering CostType = "Engineering"
	CostTypeMaterial    CostType = "Material"
	CostTypeLabor       CostType = "Labor"
	CostTypeOverhead    CostType = "Overhead"
	CostTypeProfit      CostType = "Profit"
)

// ParseCostType is case-insensitive; blank defaults to Material.
func ParseCostType(s string) (CostType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "material":
		return CostTypeMaterial, nil
	case "engineering":
		return CostTypeEngineering, nil
	case "labor", "labour":
		return CostTypeLabor, nil
	case "overhead":
		return CostTypeOverhead, nil
	case "profit", "margin":
		return CostTypeProfit, nil
	}
	return "", Validationf("unknown cost type %q", s)
}

// LineItem is one priced row of a quotation.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	CostType    CostType        `json:"cost_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Recalculate derives TotalPrice from quantity and unit price.
func (it *LineItem) Recalculate() {
	if it.CostType == "" {
		it.CostType = CostTypeMaterial
	}
	it.TotalPrice = costing.LineTotal(it.Quantity, it.UnitPrice)
}

// Validate rejects negative quantities and prices.
func (it LineItem) Validate() error {
	return ValidateAmounts(it.Quantity, it.UnitPrice)
}

// ValidateAmounts is the item-mutation boundary check shared by quotation
// and BOQ lines.
func ValidateAmounts(quantity, price decimal.Decimal) error {
	if quantity.IsNegative() {
		return Validationf("quantity must not be negative (got %s)", quantity.String())
	}
	if price.IsNegative() {
		return Validationf("price must not be negative (got %s)", price.String())
	}
	return nil
}
