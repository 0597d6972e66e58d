package repository

import (
	"context"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/usecase/interfaces"
)

type boqLineItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Category    string `dynamodbav:"category"`
	Unit        string `dynamodbav:"unit,omitempty"`
	Quantity    string `dynamodbav:"quantity"`
	Rate        string `dynamodbav:"rate"`
	TotalAmount string `dynamodbav:"total_amount"`
}

type boqItem struct {
	ID      string        `dynamodbav:"id"`
	OrderID string        `dynamodbav:"order_id"`
	Items   []boqLineItem `dynamodbav:"items"`

	MaterialCost    string `dynamodbav:"material_cost"`
	LaborCost       string `dynamodbav:"labor_cost"`
	EquipmentCost   string `dynamodbav:"equipment_cost"`
	SubcontractCost string `dynamodbav:"subcontract_cost"`
	OtherCost       string `dynamodbav:"other_cost"`
	TotalCost       string `dynamodbav:"total_cost"`

	ETOStatus           string `dynamodbav:"eto_status"`
	EngineeringProgress int    `dynamodbav:"engineering_progress"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// BOQDynamoRepository persists bills of quantities in DynamoDB.
//
// Table requirements:
//   - PK: id (string), derived from the order id
type BOQDynamoRepository struct {
	t table
}

var _ interfaces.IBOQRepository = (*BOQDynamoRepository)(nil)

func NewBOQDynamoRepository(ddb DynamoAPI, tableName string) *BOQDynamoRepository {
	return &BOQDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *BOQDynamoRepository) Create(ctx context.Context, b entities.BOQ) (entities.BOQ, error) {
	b.Version = 1
	if err := r.t.create(ctx, toBOQItem(b)); err != nil {
		return entities.BOQ{}, err
	}
	return b, nil
}

func (r *BOQDynamoRepository) GetByID(ctx context.Context, id string) (entities.BOQ, error) {
	var it boqItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.BOQ{}, err
	}
	return fromBOQItem(it), nil
}

func (r *BOQDynamoRepository) Update(ctx context.Context, b entities.BOQ, expectedVersion int64) (entities.BOQ, error) {
	b.Version = expectedVersion + 1
	if err := r.t.replace(ctx, toBOQItem(b), expectedVersion); err != nil {
		return entities.BOQ{}, err
	}
	return b, nil
}

func toBOQItem(b entities.BOQ) boqItem {
	lines := make([]boqLineItem, len(b.Items))
	for i, it := range b.Items {
		lines[i] = boqLineItem{
			ID:          it.ID,
			Description: it.Description,
			Category:    string(it.Category),
			Unit:        it.Unit,
			Quantity:    decToString(it.Quantity),
			Rate:        decToString(it.Rate),
			TotalAmount: decToString(it.TotalAmount),
		}
	}
	return boqItem{
		ID:                  b.ID,
		OrderID:             b.OrderID,
		Items:               lines,
		MaterialCost:        decToString(b.MaterialCost),
		LaborCost:           decToString(b.LaborCost),
		EquipmentCost:       decToString(b.EquipmentCost),
		SubcontractCost:     decToString(b.SubcontractCost),
		OtherCost:           decToString(b.OtherCost),
		TotalCost:           decToString(b.TotalCost),
		ETOStatus:           string(b.ETOStatus),
		EngineeringProgress: b.EngineeringProgress,
		Version:             b.Version,
		CreatedAt:           formatTime(b.CreatedAt),
		UpdatedAt:           formatTime(b.UpdatedAt),
	}
}

func fromBOQItem(it boqItem) entities.BOQ {
	items := make([]entities.BOQItem, len(it.Items))
	for i, l := range it.Items {
		items[i] = entities.BOQItem{
			ID:          l.ID,
			Description: l.Description,
			Category:    entities.BOQCategory(l.Category),
			Unit:        l.Unit,
			Quantity:    parseDec(l.Quantity),
			Rate:        parseDec(l.Rate),
			TotalAmount: parseDec(l.TotalAmount),
		}
	}
	return entities.BOQ{
		ID:                  it.ID,
		OrderID:             it.OrderID,
		Items:               items,
		MaterialCost:        parseDec(it.MaterialCost),
		LaborCost:           parseDec(it.LaborCost),
		EquipmentCost:       parseDec(it.EquipmentCost),
		SubcontractCost:     parseDec(it.SubcontractCost),
		OtherCost:           parseDec(it.OtherCost),
		TotalCost:           parseDec(it.TotalCost),
		ETOStatus:           entities.ETOStatus(it.ETOStatus),
		EngineeringProgress: it.EngineeringProgress,
		Version:             it.Version,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
