package repository

import (
	"context"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/usecase/interfaces"
)

type salesOrderItem struct {
	ID           string         `dynamodbav:"id"`
	SONumber     string         `dynamodbav:"so_number"`
	QuotationID  string         `dynamodbav:"quotation_id"`
	CustomerName string         `dynamodbav:"customer_name"`
	Items        []lineItemItem `dynamodbav:"items"`
	Subtotal     string         `dynamodbav:"subtotal"`
	Tax          string         `dynamodbav:"tax"`
	Total        string         `dynamodbav:"total"`
	PaymentTerms string         `dynamodbav:"payment_terms,omitempty"`
	CustomerPO   string         `dynamodbav:"customer_po"`
	CreatedAt    string         `dynamodbav:"created_at"`
}

// SalesOrderDynamoRepository persists sales orders in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Sales orders are insert-only. The conditional put on id is what keeps a
// quotation from converting twice.
type SalesOrderDynamoRepository struct {
	t table
}

var _ interfaces.ISalesOrderRepository = (*SalesOrderDynamoRepository)(nil)

func NewSalesOrderDynamoRepository(ddb DynamoAPI, tableName string) *SalesOrderDynamoRepository {
	return &SalesOrderDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *SalesOrderDynamoRepository) Create(ctx context.Context, so entities.SalesOrder) (entities.SalesOrder, error) {
	it := salesOrderItem{
		ID:           so.ID,
		SONumber:     so.SONumber,
		QuotationID:  so.QuotationID,
		CustomerName: so.CustomerName,
		Items:        toLineItemItems(so.Items),
		Subtotal:     decToString(so.Subtotal),
		Tax:          decToString(so.Tax),
		Total:        decToString(so.Total),
		PaymentTerms: so.PaymentTerms,
		CustomerPO:   so.CustomerPO,
		CreatedAt:    formatTime(so.CreatedAt),
	}
	if err := r.t.create(ctx, it); err != nil {
		return entities.SalesOrder{}, err
	}
	return so, nil
}

func (r *SalesOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.SalesOrder, error) {
	var it salesOrderItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.SalesOrder{}, err
	}
	return entities.SalesOrder{
		ID:           it.ID,
		SONumber:     it.SONumber,
		QuotationID:  it.QuotationID,
		CustomerName: it.CustomerName,
		Items:        fromLineItemItems(it.Items),
		Subtotal:     parseDec(it.Subtotal),
		Tax:          parseDec(it.Tax),
		Total:        parseDec(it.Total),
		PaymentTerms: it.PaymentTerms,
		CustomerPO:   it.CustomerPO,
		CreatedAt:    parseTime(it.CreatedAt),
	}, nil
}
