package entities

import (
	"strings"
	"time"

	"eto_pipeline/internal/domain/costing"

	"github.com/shopspring/decimal"
)

// BOQCategory classifies a bill-of-quantities line.
type BOQCategory string

const (
	BOQCategoryMaterial    BOQCategory = "Material"
	BOQCategoryLabor       BOQCategory = "Labor"
	BOQCategoryEquipment   BOQCategory = "Equipment"
	BOQCategorySubcontract BOQCategory = "Subcontract"
	BOQCategoryOther       BOQCategory = "Other"
)

// ParseBOQCategory is case-insensitive; blank defaults to Other.
func ParseBOQCategory(s string) (BOQCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "material":
		return BOQCategoryMaterial, nil
	case "labor", "labour":
		return BOQCategoryLabor, nil
	case "equipment":
		return BOQCategoryEquipment, nil
	case "subcontract":
		return BOQCategorySubcontract, nil
	case "", "other":
		return BOQCategoryOther, nil
	}
	return "", Validationf("unknown boq category %q", s)
}

// ETOStatus is the engineering progress of a BOQ.
type ETOStatus string

const (
	ETOStatusBOQSubmitted       ETOStatus = "BOQSubmitted"
	ETOStatusEngineeringDesign  ETOStatus = "EngineeringDesign"
	ETOStatusBOMGeneration      ETOStatus = "BOMGeneration"
	ETOStatusManufacturingReady ETOStatus = "ManufacturingReady"
)

// BOQItem is one costed row of a BOQ.
type BOQItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    BOQCategory     `json:"category"`
	Unit        string          `json:"unit,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// Recalculate defaults a blank category to Other and recomputes the line total.
func (it *BOQItem) Recalculate() {
	if it.Category == "" {
		it.Category = BOQCategoryOther
	}
	it.TotalAmount = costing.LineTotal(it.Quantity, it.Rate)
}

// Validate rejects negative quantities and rates.
func (it BOQItem) Validate() error {
	return ValidateAmounts(it.Quantity, it.Rate)
}

// BOQ is the bill of quantities of one order. Its id is derived from the
// order id so an order can never own two BOQs.
//
// Rollup fields are caches of the items; mutate them through SetItems.
type BOQ struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	Items   []BOQItem `json:"items"`

	MaterialCost    decimal.Decimal `json:"material_cost"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
	EquipmentCost   decimal.Decimal `json:"equipment_cost"`
	SubcontractCost decimal.Decimal `json:"subcontract_cost"`
	OtherCost       decimal.Decimal `json:"other_cost"`
	TotalCost       decimal.Decimal `json:"total_cost"`

	ETOStatus           ETOStatus `json:"eto_status"`
	EngineeringProgress int       `json:"engineering_progress"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetItems replaces the items and recomputes every rollup field.
func (b *BOQ) SetItems(items []BOQItem) {
	normalized := make([]BOQItem, len(items))
	lines := make([]costing.Line[BOQCategory], len(items))
	for i, it := range items {
		it.Recalculate()
		normalized[i] = it
		lines[i] = costing.Line[BOQCategory]{Category: it.Category, Amount: it.TotalAmount}
	}
	b.Items = normalized

	totals := costing.Recompute(lines)
	b.MaterialCost = totals.Of(BOQCategoryMaterial)
	b.LaborCost = totals.Of(BOQCategoryLabor)
	b.EquipmentCost = totals.Of(BOQCategoryEquipment)
	b.SubcontractCost = totals.Of(BOQCategorySubcontract)
	b.OtherCost = totals.Of(BOQCategoryOther)
	b.TotalCost = totals.Grand
}

// FindItem returns the index of the item with the given id, or -1.
func (b BOQ) FindItem(itemID string) int {
	for i, it := range b.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// Clone copies the item slice so the result can be mutated independently.
func (b BOQ) Clone() BOQ {
	c := b
	c.Items = append([]BOQItem(nil), b.Items...)
	return c
}
