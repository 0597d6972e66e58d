package response

import (
	"time"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/usecase"
)

type StepResponse struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func fromSteps(steps []entities.Step) []StepResponse {
	out := make([]StepResponse, 0, len(steps))
	for _, s := range steps {
		out = append(out, StepResponse{Name: s.Name, Status: string(s.Status)})
	}
	return out
}

type WorkOrderResponse struct {
	ID           string         `json:"id"`
	SalesOrderID string         `json:"sales_order_id"`
	OrderID      string         `json:"order_id"`
	Status       string         `json:"status"`
	Progress     int            `json:"progress"`
	Steps        []StepResponse `json:"steps"`
	Version      int64          `json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:           w.ID,
		SalesOrderID: w.SalesOrderID,
		OrderID:      w.OrderID,
		Status:       string(w.Status),
		Progress:     w.Progress,
		Steps:        fromSteps(w.Steps),
		Version:      w.Version,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

type JourneyResponse struct {
	ID           string         `json:"id"`
	WorkOrderID  string         `json:"work_order_id"`
	Status       string         `json:"status"`
	Workstations []string       `json:"workstations"`
	Operators    []string       `json:"operators"`
	Steps        []StepResponse `json:"steps"`
	Progress     int            `json:"progress"`
	Version      int64          `json:"version"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// FromJourney expects the journey as returned by the use case, with Setup
// and progress already derived.
func FromJourney(j entities.Journey) JourneyResponse {
	return JourneyResponse{
		ID:           j.ID,
		WorkOrderID:  j.WorkOrderID,
		Status:       string(j.Status),
		Workstations: append([]string{}, j.Workstations...),
		Operators:    append([]string{}, j.Operators...),
		Steps:        fromSteps(j.Steps),
		Progress:     j.Progress,
		Version:      j.Version,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

type PipelineResponse struct {
	Order      OrderResponse       `json:"order"`
	Stage      string              `json:"stage"`
	BOQ        *BOQResponse        `json:"boq,omitempty"`
	Drawing    *DrawingResponse    `json:"drawing,omitempty"`
	SalesOrder *SalesOrderResponse `json:"sales_order,omitempty"`
}

func FromPipeline(p usecase.Pipeline) PipelineResponse {
	out := PipelineResponse{Order: FromOrder(p.Order), Stage: string(p.Stage)}
	if p.BOQ != nil {
		b := FromBOQ(*p.BOQ)
		out.BOQ = &b
	}
	if p.Drawing != nil {
		d := FromDrawing(*p.Drawing)
		out.Drawing = &d
	}
	if p.SalesOrder != nil {
		so := FromSalesOrder(*p.SalesOrder)
		out.SalesOrder = &so
	}
	return out
}

func FromConversion(r usecase.ConversionResult) ConversionResponse {
	return ConversionResponse{
		Order:            FromOrder(r.Order),
		SalesOrder:       FromSalesOrder(r.SalesOrder),
		AlreadyConverted: r.AlreadyConverted,
	}
}
