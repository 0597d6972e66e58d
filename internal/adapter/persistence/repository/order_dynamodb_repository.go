package repository

import (
	"context"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/usecase/interfaces"
)

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	CostType    string `dynamodbav:"cost_type"`
	Quantity    string `dynamodbav:"quantity"`
	UnitPrice   string `dynamodbav:"unit_price"`
	TotalPrice  string `dynamodbav:"total_price"`
}

type orderItem struct {
	ID              string         `dynamodbav:"id"`
	QuotationNumber string         `dynamodbav:"quotation_number"`
	CustomerName    string         `dynamodbav:"customer_name"`
	PaymentTerms    string         `dynamodbav:"payment_terms,omitempty"`
	ValidUntil      string         `dynamodbav:"valid_until,omitempty"`
	Status          string         `dynamodbav:"status"`
	Revision        string         `dynamodbav:"revision"`
	Items           []lineItemItem `dynamodbav:"items"`
	TaxRate         string         `dynamodbav:"tax_rate"`

	Subtotal        string `dynamodbav:"subtotal"`
	EngineeringCost string `dynamodbav:"engineering_cost"`
	MaterialCost    string `dynamodbav:"material_cost"`
	LaborCost       string `dynamodbav:"labor_cost"`
	OverheadCost    string `dynamodbav:"overhead_cost"`
	ProfitMargin    string `dynamodbav:"profit_margin"`
	Tax             string `dynamodbav:"tax"`
	Total           string `dynamodbav:"total"`

	EngineeringProjectID      string `dynamodbav:"engineering_project_id,omitempty"`
	EngineeringDrawingID      string `dynamodbav:"engineering_drawing_id,omitempty"`
	EngineeringDrawingCreated bool   `dynamodbav:"engineering_drawing_created"`
	EngineeringStatus         string `dynamodbav:"engineering_status,omitempty"`
	BOQID                     string `dynamodbav:"boq_id,omitempty"`
	BOQGenerated              bool   `dynamodbav:"boq_generated"`
	SentToCustomer            bool   `dynamodbav:"sent_to_customer"`

	POReceived   bool   `dynamodbav:"po_received"`
	PONumber     string `dynamodbav:"po_number,omitempty"`
	POAmount     string `dynamodbav:"po_amount,omitempty"`
	POFileRef    string `dynamodbav:"po_file_ref,omitempty"`
	POReceivedAt string `dynamodbav:"po_received_at,omitempty"`

	ConvertedToSO bool   `dynamodbav:"converted_to_so"`
	SOID          string `dynamodbav:"so_id,omitempty"`
	WorkflowStage string `dynamodbav:"workflow_stage,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists quotations in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Updates replace the whole item under a version condition, so a writer
// holding a stale copy fails instead of overwriting a newer one.
type OrderDynamoRepository struct {
	t table
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.Version = 1
	if err := r.t.create(ctx, toOrderItem(o)); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var it orderItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	o.Version = expectedVersion + 1
	if err := r.t.replace(ctx, toOrderItem(o), expectedVersion); err != nil {
		return entities.Order{}, err
	}
	return o, nil
}

func toLineItemItems(items []entities.LineItem) []lineItemItem {
	out := make([]lineItemItem, len(items))
	for i, it := range items {
		out[i] = lineItemItem{
			ID:          it.ID,
			Description: it.Description,
			CostType:    string(it.CostType),
			Quantity:    decToString(it.Quantity),
			UnitPrice:   decToString(it.UnitPrice),
			TotalPrice:  decToString(it.TotalPrice),
		}
	}
	return out
}

func fromLineItemItems(items []lineItemItem) []entities.LineItem {
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		out[i] = entities.LineItem{
			ID:          it.ID,
			Description: it.Description,
			CostType:    entities.CostType(it.CostType),
			Quantity:    parseDec(it.Quantity),
			UnitPrice:   parseDec(it.UnitPrice),
			TotalPrice:  parseDec(it.TotalPrice),
		}
	}
	return out
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:                        o.ID,
		QuotationNumber:           o.QuotationNumber,
		CustomerName:              o.CustomerName,
		PaymentTerms:              o.PaymentTerms,
		ValidUntil:                formatTimePtr(o.ValidUntil),
		Status:                    string(o.Status),
		Revision:                  o.Revision,
		Items:                     toLineItemItems(o.Items),
		TaxRate:                   decToString(o.TaxRate),
		Subtotal:                  decToString(o.Subtotal),
		EngineeringCost:           decToString(o.EngineeringCost),
		MaterialCost:              decToString(o.MaterialCost),
		LaborCost:                 decToString(o.LaborCost),
		OverheadCost:              decToString(o.OverheadCost),
		ProfitMargin:              decToString(o.ProfitMargin),
		Tax:                       decToString(o.Tax),
		Total:                     decToString(o.Total),
		EngineeringProjectID:      o.EngineeringProjectID,
		EngineeringDrawingID:      o.EngineeringDrawingID,
		EngineeringDrawingCreated: o.EngineeringDrawingCreated,
		EngineeringStatus:         o.EngineeringStatus,
		BOQID:                     o.BOQID,
		BOQGenerated:              o.BOQGenerated,
		SentToCustomer:            o.SentToCustomer,
		POReceived:                o.POReceived,
		PONumber:                  o.PONumber,
		POAmount:                  decPtrToString(o.POAmount),
		POFileRef:                 o.POFileRef,
		POReceivedAt:              formatTimePtr(o.POReceivedAt),
		ConvertedToSO:             o.ConvertedToSO,
		SOID:                      o.SOID,
		WorkflowStage:             string(o.WorkflowStage),
		Version:                   o.Version,
		CreatedAt:                 formatTime(o.CreatedAt),
		UpdatedAt:                 formatTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:                        it.ID,
		QuotationNumber:           it.QuotationNumber,
		CustomerName:              it.CustomerName,
		PaymentTerms:              it.PaymentTerms,
		ValidUntil:                parseTimePtr(it.ValidUntil),
		Status:                    entities.OrderStatus(it.Status),
		Revision:                  it.Revision,
		Items:                     fromLineItemItems(it.Items),
		TaxRate:                   parseDec(it.TaxRate),
		Subtotal:                  parseDec(it.Subtotal),
		EngineeringCost:           parseDec(it.EngineeringCost),
		MaterialCost:              parseDec(it.MaterialCost),
		LaborCost:                 parseDec(it.LaborCost),
		OverheadCost:              parseDec(it.OverheadCost),
		ProfitMargin:              parseDec(it.ProfitMargin),
		Tax:                       parseDec(it.Tax),
		Total:                     parseDec(it.Total),
		EngineeringProjectID:      it.EngineeringProjectID,
		EngineeringDrawingID:      it.EngineeringDrawingID,
		EngineeringDrawingCreated: it.EngineeringDrawingCreated,
		EngineeringStatus:         it.EngineeringStatus,
		BOQID:                     it.BOQID,
		BOQGenerated:              it.BOQGenerated,
		SentToCustomer:            it.SentToCustomer,
		POReceived:                it.POReceived,
		PONumber:                  it.PONumber,
		POAmount:                  parseDecPtr(it.POAmount),
		POFileRef:                 it.POFileRef,
		POReceivedAt:              parseTimePtr(it.POReceivedAt),
		ConvertedToSO:             it.ConvertedToSO,
		SOID:                      it.SOID,
		WorkflowStage:             entities.Stage(it.WorkflowStage),
		Version:                   it.Version,
		CreatedAt:                 parseTime(it.CreatedAt),
		UpdatedAt:                 parseTime(it.UpdatedAt),
	}
}
