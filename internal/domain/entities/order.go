package entities

import (
	"time"

	"eto_pipeline/internal/domain/costing"

	"github.com/shopspring/decimal"
)

// OrderStatus is the commercial status of a quotation.
type OrderStatus string

const (
	OrderStatusDraft          OrderStatus = "Draft"
	OrderStatusSent           OrderStatus = "Sent"
	OrderStatusUnderReview    OrderStatus = "UnderReview"
	OrderStatusCustomerReview OrderStatus = "CustomerReview"
	OrderStatusNegotiation    OrderStatus = "Negotiation"
	OrderStatusApproved       OrderStatus = "Approved"
	OrderStatusCompleted      OrderStatus = "Completed"
	OrderStatusRejected       OrderStatus = "Rejected"
	OrderStatusExpired        OrderStatus = "Expired"
)

// Stage is the order's position in the quotation → production pipeline.
type Stage string

const (
	StageDraft          Stage = "Draft"
	StageEngineering    Stage = "Engineering"
	StageBOQPending     Stage = "BOQPending"
	StageReadyToSend    Stage = "ReadyToSend"
	StageCustomerReview Stage = "CustomerReview"
	StagePOReceived     Stage = "POReceived"
	StageCompleted      Stage = "Completed"
)

// EngineeringStatusDrawingComplete is written to the order once every
// reviewer approved its drawing.
const EngineeringStatusDrawingComplete = "Drawing Complete"

// InitialRevision is the revision of a freshly created order.
const InitialRevision = "1.0"

// Order is a quotation moving through the ETO pipeline.
//
// The monetary fields are derived from Items and TaxRate. They are exported
// for serialization only; mutate them through SetItems / SetTaxRate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version guards every update (compare-and-set)
type Order struct {
	ID              string      `json:"id"`
	QuotationNumber string      `json:"quotation_number"`
	CustomerName    string      `json:"customer_name"`
	PaymentTerms    string      `json:"payment_terms"`
	ValidUntil      *time.Time  `json:"valid_until,omitempty"`
	Status          OrderStatus `json:"status"`
	Revision        string      `json:"revision"`

	Items   []LineItem      `json:"items"`
	TaxRate decimal.Decimal `json:"tax_rate"`

	Subtotal        decimal.Decimal `json:"subtotal"`
	EngineeringCost decimal.Decimal `json:"engineering_cost"`
	MaterialCost    decimal.Decimal `json:"material_cost"`
	LaborCost       decimal.Decimal `json:"labor_cost"`
	OverheadCost    decimal.Decimal `json:"overhead_cost"`
	ProfitMargin    decimal.Decimal `json:"profit_margin"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`

	EngineeringProjectID      string `json:"engineering_project_id,omitempty"`
	EngineeringDrawingID      string `json:"engineering_drawing_id,omitempty"`
	EngineeringDrawingCreated bool   `json:"engineering_drawing_created"`
	EngineeringStatus         string `json:"engineering_status,omitempty"`
	BOQID                     string `json:"boq_id,omitempty"`
	BOQGenerated              bool   `json:"boq_generated"`
	SentToCustomer            bool   `json:"sent_to_customer"`

	POReceived   bool             `json:"po_received"`
	PONumber     string           `json:"po_number,omitempty"`
	POAmount     *decimal.Decimal `json:"po_amount,omitempty"`
	POFileRef    string           `json:"po_file_ref,omitempty"`
	POReceivedAt *time.Time       `json:"po_received_at,omitempty"`

	ConvertedToSO bool   `json:"converted_to_so"`
	SOID          string `json:"so_id,omitempty"`

	// WorkflowStage overrides the derived stage when set.
	WorkflowStage Stage `json:"workflow_stage,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewOrder returns a Draft order at the initial revision with zero totals.
func NewOrder(id, customerName string, taxRate decimal.Decimal, now time.Time) Order {
	o := Order{
		ID:           id,
		CustomerName: customerName,
		Status:       OrderStatusDraft,
		Revision:     InitialRevision,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	o.TaxRate = taxRate
	o.SetItems(nil)
	return o
}

// SetItems replaces the line items and recomputes every derived amount.
func (o *Order) SetItems(items []LineItem) {
	normalized := make([]LineItem, len(items))
	lines := make([]costing.Line[CostType], len(items))
	for i, it := range items {
		it.Recalculate()
		normalized[i] = it
		lines[i] = costing.Line[CostType]{Category: it.CostType, Amount: it.TotalPrice}
	}
	o.Items = normalized

	totals := costing.Recompute(lines)
	o.EngineeringCost = totals.Of(CostTypeEngineering)
	o.MaterialCost = totals.Of(CostTypeMaterial)
	o.LaborCost = totals.Of(CostTypeLabor)
	o.OverheadCost = totals.Of(CostTypeOverhead)
	o.ProfitMargin = totals.Of(CostTypeProfit)
	o.Subtotal = totals.Grand
	o.applyTax()
}

// SetTaxRate changes the tax rate and recomputes tax and total.
func (o *Order) SetTaxRate(rate decimal.Decimal) {
	o.TaxRate = rate
	o.applyTax()
}

func (o *Order) applyTax() {
	o.Tax = costing.Percent(o.Subtotal, o.TaxRate)
	o.Total = o.Subtotal.Add(o.Tax)
}

// FindItem returns the index of the item with the given id, or -1.
func (o Order) FindItem(itemID string) int {
	for i, it := range o.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy safe to mutate without touching the receiver.
func (o Order) Clone() Order {
	c := o
	c.Items = append([]LineItem(nil), o.Items...)
	if o.ValidUntil != nil {
		v := *o.ValidUntil
		c.ValidUntil = &v
	}
	if o.POAmount != nil {
		v := *o.POAmount
		c.POAmount = &v
	}
	if o.POReceivedAt != nil {
		v := *o.POReceivedAt
		c.POReceivedAt = &v
	}
	return c
}
