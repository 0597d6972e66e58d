package response

import (
	"time"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/domain/workflow"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func moneyPtr(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}

type LineItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	CostType    string `json:"cost_type"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ID:          it.ID,
			Description: it.Description,
			CostType:    string(it.CostType),
			Quantity:    it.Quantity.String(),
			UnitPrice:   money(it.UnitPrice),
			TotalPrice:  money(it.TotalPrice),
		})
	}
	return out
}

type OrderResponse struct {
	ID              string             `json:"id"`
	QuotationNumber string             `json:"quotation_number"`
	CustomerName    string             `json:"customer_name"`
	PaymentTerms    string             `json:"payment_terms,omitempty"`
	ValidUntil      *time.Time         `json:"valid_until,omitempty"`
	Status          string             `json:"status"`
	Revision        string             `json:"revision"`
	Stage           string             `json:"workflow_stage"`
	Items           []LineItemResponse `json:"items"`

	TaxRate         string `json:"tax_rate"`
	Subtotal        string `json:"subtotal"`
	EngineeringCost string `json:"engineering_cost"`
	MaterialCost    string `json:"material_cost"`
	LaborCost       string `json:"labor_cost"`
	OverheadCost    string `json:"overhead_cost"`
	ProfitMargin    string `json:"profit_margin"`
	Tax             string `json:"tax"`
	Total           string `json:"total"`

	EngineeringProjectID      string `json:"engineering_project_id,omitempty"`
	EngineeringDrawingID      string `json:"engineering_drawing_id,omitempty"`
	EngineeringDrawingCreated bool   `json:"engineering_drawing_created"`
	EngineeringStatus         string `json:"engineering_status,omitempty"`
	BOQID                     string `json:"boq_id,omitempty"`
	BOQGenerated              bool   `json:"boq_generated"`
	SentToCustomer            bool   `json:"sent_to_customer"`

	POReceived   bool       `json:"po_received"`
	PONumber     string     `json:"po_number,omitempty"`
	POAmount     *string    `json:"po_amount,omitempty"`
	POFileRef    string     `json:"po_file_ref,omitempty"`
	POReceivedAt *time.Time `json:"po_received_at,omitempty"`

	ConvertedToSO bool   `json:"converted_to_so"`
	SOID          string `json:"so_id,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromOrder reports the resolved stage, not only an explicitly stored one.
func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                        o.ID,
		QuotationNumber:           o.QuotationNumber,
		CustomerName:              o.CustomerName,
		PaymentTerms:              o.PaymentTerms,
		ValidUntil:                o.ValidUntil,
		Status:                    string(o.Status),
		Revision:                  o.Revision,
		Stage:                     string(workflow.Resolve(o)),
		Items:                     FromLineItems(o.Items),
		TaxRate:                   o.TaxRate.String(),
		Subtotal:                  money(o.Subtotal),
		EngineeringCost:           money(o.EngineeringCost),
		MaterialCost:              money(o.MaterialCost),
		LaborCost:                 money(o.LaborCost),
		OverheadCost:              money(o.OverheadCost),
		ProfitMargin:              money(o.ProfitMargin),
		Tax:                       money(o.Tax),
		Total:                     money(o.Total),
		EngineeringProjectID:      o.EngineeringProjectID,
		EngineeringDrawingID:      o.EngineeringDrawingID,
		EngineeringDrawingCreated: o.EngineeringDrawingCreated,
		EngineeringStatus:         o.EngineeringStatus,
		BOQID:                     o.BOQID,
		BOQGenerated:              o.BOQGenerated,
		SentToCustomer:            o.SentToCustomer,
		POReceived:                o.POReceived,
		PONumber:                  o.PONumber,
		POAmount:                  moneyPtr(o.POAmount),
		POFileRef:                 o.POFileRef,
		POReceivedAt:              o.POReceivedAt,
		ConvertedToSO:             o.ConvertedToSO,
		SOID:                      o.SOID,
		Version:                   o.Version,
		CreatedAt:                 o.CreatedAt,
		UpdatedAt:                 o.UpdatedAt,
	}
}

type StageResponse struct {
	OrderID string `json:"order_id"`
	Stage   string `json:"stage"`
}

type RevisionResponse struct {
	Current string `json:"current"`
	Kind    string `json:"kind"`
	Next    string `json:"next"`
}

type SalesOrderResponse struct {
	ID           string             `json:"id"`
	SONumber     string             `json:"so_number"`
	QuotationID  string             `json:"quotation_id"`
	CustomerName string             `json:"customer_name"`
	Items        []LineItemResponse `json:"items"`
	Subtotal     string             `json:"subtotal"`
	Tax          string             `json:"tax"`
	Total        string             `json:"total"`
	PaymentTerms string             `json:"payment_terms,omitempty"`
	CustomerPO   string             `json:"customer_po"`
	CreatedAt    time.Time          `json:"created_at"`
}

func FromSalesOrder(so entities.SalesOrder) SalesOrderResponse {
	return SalesOrderResponse{
		ID:           so.ID,
		SONumber:     so.SONumber,
		QuotationID:  so.QuotationID,
		CustomerName: so.CustomerName,
		Items:        FromLineItems(so.Items),
		Subtotal:     money(so.Subtotal),
		Tax:          money(so.Tax),
		Total:        money(so.Total),
		PaymentTerms: so.PaymentTerms,
		CustomerPO:   so.CustomerPO,
		CreatedAt:    so.CreatedAt,
	}
}

type ConversionResponse struct {
	Order            OrderResponse      `json:"order"`
	SalesOrder       SalesOrderResponse `json:"sales_order"`
	AlreadyConverted bool               `json:"already_converted"`
}
