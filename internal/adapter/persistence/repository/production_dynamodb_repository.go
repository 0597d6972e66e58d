package repository

import (
	"context"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/usecase/interfaces"
)

type stepItem struct {
	Name   string `dynamodbav:"name"`
	Status string `dynamodbav:"status"`
}

type workOrderItem struct {
	ID           string     `dynamodbav:"id"`
	SalesOrderID string     `dynamodbav:"sales_order_id"`
	OrderID      string     `dynamodbav:"order_id"`
	Status       string     `dynamodbav:"status"`
	Progress     int        `dynamodbav:"progress"`
	Steps        []stepItem `dynamodbav:"steps"`
	Version      int64      `dynamodbav:"version"`
	CreatedAt    string     `dynamodbav:"created_at"`
	UpdatedAt    string     `dynamodbav:"updated_at"`
}

type journeyItem struct {
	ID           string     `dynamodbav:"id"`
	WorkOrderID  string     `dynamodbav:"work_order_id"`
	Status       string     `dynamodbav:"status"`
	Workstations []string   `dynamodbav:"workstations"`
	Operators    []string   `dynamodbav:"operators"`
	Steps        []stepItem `dynamodbav:"steps"`
	Progress     int        `dynamodbav:"progress"`
	Version      int64      `dynamodbav:"version"`
	CreatedAt    string     `dynamodbav:"created_at"`
	UpdatedAt    string     `dynamodbav:"updated_at"`
}

type WorkOrderDynamoRepository struct {
	t table
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoAPI, tableName string) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	w.Version = 1
	if err := r.t.create(ctx, toWorkOrderItem(w)); err != nil {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	var it workOrderItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.WorkOrder{}, err
	}
	return entities.WorkOrder{
		ID:           it.ID,
		SalesOrderID: it.SalesOrderID,
		OrderID:      it.OrderID,
		Status:       entities.WorkOrderStatus(it.Status),
		Progress:     it.Progress,
		Steps:        fromStepItems(it.Steps),
		Version:      it.Version,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}, nil
}

func (r *WorkOrderDynamoRepository) Update(ctx context.Context, w entities.WorkOrder, expectedVersion int64) (entities.WorkOrder, error) {
	w.Version = expectedVersion + 1
	if err := r.t.replace(ctx, toWorkOrderItem(w), expectedVersion); err != nil {
		return entities.WorkOrder{}, err
	}
	return w, nil
}

// JourneyDynamoRepository stores journeys as given; the Setup step and
// progress are re-derived by the use case on every read.
type JourneyDynamoRepository struct {
	t table
}

var _ interfaces.IJourneyRepository = (*JourneyDynamoRepository)(nil)

func NewJourneyDynamoRepository(ddb DynamoAPI, tableName string) *JourneyDynamoRepository {
	return &JourneyDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *JourneyDynamoRepository) Create(ctx context.Context, j entities.Journey) (entities.Journey, error) {
	j.Version = 1
	if err := r.t.create(ctx, toJourneyItem(j)); err != nil {
		return entities.Journey{}, err
	}
	return j, nil
}

func (r *JourneyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Journey, error) {
	var it journeyItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.Journey{}, err
	}
	return entities.Journey{
		ID:           it.ID,
		WorkOrderID:  it.WorkOrderID,
		Status:       entities.JourneyStatus(it.Status),
		Workstations: append([]string{}, it.Workstations...),
		Operators:    append([]string{}, it.Operators...),
		Steps:        fromStepItems(it.Steps),
		Progress:     it.Progress,
		Version:      it.Version,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}, nil
}

func (r *JourneyDynamoRepository) Update(ctx context.Context, j entities.Journey, expectedVersion int64) (entities.Journey, error) {
	j.Version = expectedVersion + 1
	if err := r.t.replace(ctx, toJourneyItem(j), expectedVersion); err != nil {
		return entities.Journey{}, err
	}
	return j, nil
}

func toWorkOrderItem(w entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:           w.ID,
		SalesOrderID: w.SalesOrderID,
		OrderID:      w.OrderID,
		Status:       string(w.Status),
		Progress:     w.Progress,
		Steps:        toStepItems(w.Steps),
		Version:      w.Version,
		CreatedAt:    formatTime(w.CreatedAt),
		UpdatedAt:    formatTime(w.UpdatedAt),
	}
}

func toJourneyItem(j entities.Journey) journeyItem {
	return journeyItem{
		ID:           j.ID,
		WorkOrderID:  j.WorkOrderID,
		Status:       string(j.Status),
		Workstations: j.Workstations,
		Operators:    j.Operators,
		Steps:        toStepItems(j.Steps),
		Progress:     j.Progress,
		Version:      j.Version,
		CreatedAt:    formatTime(j.CreatedAt),
		UpdatedAt:    formatTime(j.UpdatedAt),
	}
}

func toStepItems(steps []entities.Step) []stepItem {
	out := make([]stepItem, len(steps))
	for i, s := range steps {
		out[i] = stepItem{Name: s.Name, Status: string(s.Status)}
	}
	return out
}

func fromStepItems(steps []stepItem) []entities.Step {
	out := make([]entities.Step, len(steps))
	for i, s := range steps {
		out[i] = entities.Step{Name: s.Name, Status: entities.StepStatus(s.Status)}
	}
	return out
}
