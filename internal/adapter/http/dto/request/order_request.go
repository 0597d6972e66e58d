package request

import (
	"strings"
	"time"

	"eto_pipeline/internal/usecase"
)

type LineItemRequest struct {
	Description string `json:"description"`
	CostType    string `json:"cost_type"`
	Quantity    Amount `json:"quantity" swaggertype:"string" example:"2"`
	UnitPrice   Amount `json:"unit_price" swaggertype:"string" example:"150.00"`
}

func (r LineItemRequest) ToInput() usecase.LineItemInput {
	return usecase.LineItemInput{
		Description: strings.TrimSpace(r.Description),
		CostType:    r.CostType,
		Quantity:    r.Quantity.Decimal(),
		UnitPrice:   r.UnitPrice.Decimal(),
	}
}

type LineItemPatchRequest struct {
	Description *string `json:"description"`
	CostType    *string `json:"cost_type"`
	Quantity    *Amount `json:"quantity" swaggertype:"string"`
	UnitPrice   *Amount `json:"unit_price" swaggertype:"string"`
}

func (r LineItemPatchRequest) ToPatch() usecase.LineItemPatch {
	return usecase.LineItemPatch{
		Description: r.Description,
		CostType:    r.CostType,
		Quantity:    r.Quantity.DecimalPtr(),
		UnitPrice:   r.UnitPrice.DecimalPtr(),
	}
}

type CreateOrderRequest struct {
	QuotationNumber string            `json:"quotation_number"`
	CustomerName    string            `json:"customer_name" binding:"required"`
	PaymentTerms    string            `json:"payment_terms"`
	ValidUntil      *time.Time        `json:"valid_until"`
	TaxRate         *Amount           `json:"tax_rate" swaggertype:"string" example:"10"`
	Items           []LineItemRequest `json:"items"`
}

func (r CreateOrderRequest) ToInput() usecase.CreateOrderInput {
	items := make([]usecase.LineItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.ToInput())
	}
	return usecase.CreateOrderInput{
		QuotationNumber: strings.TrimSpace(r.QuotationNumber),
		CustomerName:    strings.TrimSpace(r.CustomerName),
		PaymentTerms:    r.PaymentTerms,
		ValidUntil:      r.ValidUntil,
		TaxRate:         r.TaxRate.DecimalPtr(),
		Items:           items,
	}
}

// OrderHeaderRequest carries the editable quotation header. Omitted fields
// keep their stored value.
type OrderHeaderRequest struct {
	CustomerName *string    `json:"customer_name"`
	PaymentTerms *string    `json:"payment_terms"`
	ValidUntil   *time.Time `json:"valid_until"`
	TaxRate      *Amount    `json:"tax_rate" swaggertype:"string"`
}

func (r OrderHeaderRequest) ToInput() usecase.OrderHeaderInput {
	return usecase.OrderHeaderInput{
		CustomerName: r.CustomerName,
		PaymentTerms: r.PaymentTerms,
		ValidUntil:   r.ValidUntil,
		TaxRate:      r.TaxRate.DecimalPtr(),
	}
}

type AttachEngineeringRequest struct {
	EngineeringProjectID string `json:"engineering_project_id" binding:"required"`
}

type CustomerDecisionRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

type PORequest struct {
	PONumber  string  `json:"po_number"`
	POAmount  *Amount `json:"po_amount" swaggertype:"string"`
	POFileRef string  `json:"po_file_ref"`
}

func (r PORequest) ToInput() usecase.POInput {
	return usecase.POInput{
		Number:  strings.TrimSpace(r.PONumber),
		Amount:  r.POAmount.DecimalPtr(),
		FileRef: strings.TrimSpace(r.POFileRef),
	}
}

// ConvertRequest is optional; an empty body converts with the PO on file.
type ConvertRequest struct {
	PONumber string `json:"po_number"`
}
