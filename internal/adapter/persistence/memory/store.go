// Package memory holds process-local repositories with the same
// compare-and-set semantics as the DynamoDB ones. It backs local runs and
// tests that need real concurrency behaviour.
package memory

import (
	"context"
	"fmt"
	"sync"

	"eto_pipeline/internal/domain/entities"
)

type table[T any] struct {
	name string
	mu   sync.RWMutex
	rows map[string]T

	id      func(T) string
	version func(T) int64
	stamp   func(*T, int64)
	clone   func(T) T
}

func newTable[T any](name string, id func(T) string, version func(T) int64, stamp func(*T, int64), clone func(T) T) *table[T] {
	return &table[T]{name: name, rows: map[string]T{}, id: id, version: version, stamp: stamp, clone: clone}
}

func (t *table[T]) create(ctx context.Context, v T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	id := t.id(v)
	if id == "" {
		return zero, fmt.Errorf("%s: empty id: %w", t.name, entities.ErrValidation)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; ok {
		return zero, fmt.Errorf("%s %s already exists: %w", t.name, id, entities.ErrConcurrencyConflict)
	}
	stored := t.clone(v)
	t.stamp(&stored, 1)
	t.rows[id] = stored
	return t.clone(stored), nil
}

func (t *table[T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.rows[id]
	if !ok {
		return zero, nil
	}
	return t.clone(v), nil
}

func (t *table[T]) update(ctx context.Context, v T, expected int64) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	id := t.id(v)
	t.mu.Lock()
	defer t.mu.Unlock()
	cur, ok := t.rows[id]
	if !ok || t.version(cur) != expected {
		return zero, fmt.Errorf("%s %s at version %d: %w", t.name, id, expected, entities.ErrConcurrencyConflict)
	}
	stored := t.clone(v)
	t.stamp(&stored, expected+1)
	t.rows[id] = stored
	return t.clone(stored), nil
}

type OrderRepository struct{ t *table[entities.Order] }

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{t: newTable("order",
		func(o entities.Order) string { return o.ID },
		func(o entities.Order) int64 { return o.Version },
		func(o *entities.Order, v int64) { o.Version = v },
		entities.Order.Clone,
	)}
}

func (r *OrderRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	return r.t.create(ctx, o)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	return r.t.get(ctx, id)
}

func (r *OrderRepository) Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	return r.t.update(ctx, o, expectedVersion)
}

type BOQRepository struct{ t *table[entities.BOQ] }

func NewBOQRepository() *BOQRepository {
	return &BOQRepository{t: newTable("boq",
		func(b entities.BOQ) string { return b.ID },
		func(b entities.BOQ) int64 { return b.Version },
		func(b *entities.BOQ, v int64) { b.Version = v },
		entities.BOQ.Clone,
	)}
}

func (r *BOQRepository) Create(ctx context.Context, b entities.BOQ) (entities.BOQ, error) {
	return r.t.create(ctx, b)
}

func (r *BOQRepository) GetByID(ctx context.Context, id string) (entities.BOQ, error) {
	return r.t.get(ctx, id)
}

func (r *BOQRepository) Update(ctx context.Context, b entities.BOQ, expectedVersion int64) (entities.BOQ, error) {
	return r.t.update(ctx, b, expectedVersion)
}

type DrawingRepository struct{ t *table[entities.EngineeringDrawing] }

func NewDrawingRepository() *DrawingRepository {
	return &DrawingRepository{t: newTable("drawing",
		func(d entities.EngineeringDrawing) string { return d.ID },
		func(d entities.EngineeringDrawing) int64 { return d.Version },
		func(d *entities.EngineeringDrawing, v int64) { d.Version = v },
		entities.EngineeringDrawing.Clone,
	)}
}

func (r *DrawingRepository) Create(ctx context.Context, d entities.EngineeringDrawing) (entities.EngineeringDrawing, error) {
	return r.t.create(ctx, d)
}

func (r *DrawingRepository) GetByID(ctx context.Context, id string) (entities.EngineeringDrawing, error) {
	return r.t.get(ctx, id)
}

func (r *DrawingRepository) Update(ctx context.Context, d entities.EngineeringDrawing, expectedVersion int64) (entities.EngineeringDrawing, error) {
	return r.t.update(ctx, d, expectedVersion)
}

// SalesOrderRepository is insert-only; sales orders carry no version.
type SalesOrderRepository struct{ t *table[entities.SalesOrder] }

func NewSalesOrderRepository() *SalesOrderRepository {
	return &SalesOrderRepository{t: newTable("sales order",
		func(so entities.SalesOrder) string { return so.ID },
		func(entities.SalesOrder) int64 { return 0 },
		func(*entities.SalesOrder, int64) {},
		func(so entities.SalesOrder) entities.SalesOrder {
			so.Items = append([]entities.LineItem(nil), so.Items...)
			return so
		},
	)}
}

func (r *SalesOrderRepository) Create(ctx context.Context, so entities.SalesOrder) (entities.SalesOrder, error) {
	return r.t.create(ctx, so)
}

func (r *SalesOrderRepository) GetByID(ctx context.Context, id string) (entities.SalesOrder, error) {
	return r.t.get(ctx, id)
}

type WorkOrderRepository struct{ t *table[entities.WorkOrder] }

func NewWorkOrderRepository() *WorkOrderRepository {
	return &WorkOrderRepository{t: newTable("work order",
		func(w entities.WorkOrder) string { return w.ID },
		func(w entities.WorkOrder) int64 { return w.Version },
		func(w *entities.WorkOrder, v int64) { w.Version = v },
		entities.WorkOrder.Clone,
	)}
}

func (r *WorkOrderRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	return r.t.create(ctx, w)
}

func (r *WorkOrderRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	return r.t.get(ctx, id)
}

func (r *WorkOrderRepository) Update(ctx context.Context, w entities.WorkOrder, expectedVersion int64) (entities.WorkOrder, error) {
	return r.t.update(ctx, w, expectedVersion)
}

type JourneyRepository struct{ t *table[entities.Journey] }

func NewJourneyRepository() *JourneyRepository {
	return &JourneyRepository{t: newTable("journey",
		func(j entities.Journey) string { return j.ID },
		func(j entities.Journey) int64 { return j.Version },
		func(j *entities.Journey, v int64) { j.Version = v },
		entities.Journey.Clone,
	)}
}

func (r *JourneyRepository) Create(ctx context.Context, j entities.Journey) (entities.Journey, error) {
	return r.t.create(ctx, j)
}

func (r *JourneyRepository) GetByID(ctx context.Context, id string) (entities.Journey, error) {
	return r.t.get(ctx, id)
}

func (r *JourneyRepository) Update(ctx context.Context, j entities.Journey, expectedVersion int64) (entities.Journey, error) {
	return r.t.update(ctx, j, expectedVersion)
}
