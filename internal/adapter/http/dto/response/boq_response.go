package response

import (
	"time"

	"eto_pipeline/internal/domain/entities"
)

type BOQItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Unit        string `json:"unit,omitempty"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	TotalAmount string `json:"total_amount"`
}

type BOQResponse struct {
	ID                  string            `json:"id"`
	OrderID             string            `json:"order_id"`
	Items               []BOQItemResponse `json:"items"`
	MaterialCost        string            `json:"material_cost"`
	LaborCost           string            `json:"labor_cost"`
	EquipmentCost       string            `json:"equipment_cost"`
	SubcontractCost     string            `json:"subcontract_cost"`
	OtherCost           string            `json:"other_cost"`
	TotalCost           string            `json:"total_cost"`
	ETOStatus           string            `json:"eto_status"`
	EngineeringProgress int               `json:"engineering_progress"`
	Version             int64             `json:"version"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

func FromBOQ(b entities.BOQ) BOQResponse {
	items := make([]BOQItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BOQItemResponse{
			ID:          it.ID,
			Description: it.Description,
			Category:    string(it.Category),
			Unit:        it.Unit,
			Quantity:    it.Quantity.String(),
			Rate:        money(it.Rate),
			TotalAmount: money(it.TotalAmount),
		})
	}
	return BOQResponse{
		ID:                  b.ID,
		OrderID:             b.OrderID,
		Items:               items,
		MaterialCost:        money(b.MaterialCost),
		LaborCost:           money(b.LaborCost),
		EquipmentCost:       money(b.EquipmentCost),
		SubcontractCost:     money(b.SubcontractCost),
		OtherCost:           money(b.OtherCost),
		TotalCost:           money(b.TotalCost),
		ETOStatus:           string(b.ETOStatus),
		EngineeringProgress: b.EngineeringProgress,
		Version:             b.Version,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// GenerateBOQResponse returns the order too, since generation flips its
// boq flags.
type GenerateBOQResponse struct {
	BOQ   BOQResponse   `json:"boq"`
	Order OrderResponse `json:"order"`
}
