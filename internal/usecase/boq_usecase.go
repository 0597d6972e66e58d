package usecase

//go:generate mockgen -source=boq_usecase.go -destination=../adapter/http/handlers/mocks/boq_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/domain/workflow"
	"eto_pipeline/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BOQItemInput struct {
	Description string
	Category    string
	Unit        string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

type BOQItemPatch struct {
	Description *string
	Category    *string
	Unit        *string
	Quantity    *decimal.Decimal
	Rate        *decimal.Decimal
}

// IBOQUseCase manages the bill of quantities of an order. Item mutations
// always recompute the category rollups before the write.
type IBOQUseCase interface {
	GenerateBOQ(ctx context.Context, orderID string, items []BOQItemInput) (entities.BOQ, entities.Order, error)
	GetBOQ(ctx context.Context, id string) (entities.BOQ, error)
	AddItem(ctx context.Context, boqID string, in BOQItemInput) (entities.BOQ, error)
	UpdateItem(ctx context.Context, boqID, itemID string, in BOQItemPatch) (entities.BOQ, error)
	RemoveItem(ctx context.Context, boqID, itemID string) (entities.BOQ, error)
	SetETOStatus(ctx context.Context, boqID string, status entities.ETOStatus) (entities.BOQ, error)
}

type BOQUseCase struct {
	boqs   interfaces.IBOQRepository
	orders interfaces.IOrderRepository
}

var _ IBOQUseCase = (*BOQUseCase)(nil)

func NewBOQUseCase(boqs interfaces.IBOQRepository, orders interfaces.IOrderRepository) *BOQUseCase {
	return &BOQUseCase{boqs: boqs, orders: orders}
}

// GenerateBOQ creates the order's single BOQ and marks the order
// boqGenerated. The BOQ id is derived from the order id, so a retry after a
// failed order write adopts the stored BOQ instead of creating another.
func (u *BOQUseCase) GenerateBOQ(ctx context.Context, orderID string, items []BOQItemInput) (entities.BOQ, entities.Order, error) {
	built := make([]entities.BOQItem, 0, len(items))
	for _, in := range items {
		it, err := newBOQItem(in)
		if err != nil {
			return entities.BOQ{}, entities.Order{}, err
		}
		built = append(built, it)
	}

	o, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return entities.BOQ{}, entities.Order{}, err
	}
	if o.BOQGenerated {
		return entities.BOQ{}, entities.Order{}, entities.NewTransitionError("generate boq", "order already has a boq; edit its items instead")
	}
	if err := ensureEditable(o, "generate boq"); err != nil {
		return entities.BOQ{}, entities.Order{}, err
	}

	now := time.Now().UTC()
	b := entities.BOQ{ID: BOQIDFor(o.ID), OrderID: o.ID, CreatedAt: now, UpdatedAt: now}
	b.SetItems(built)
	if _, err := workflow.ApplyETOStatus(&b, entities.ETOStatusBOQSubmitted); err != nil {
		return entities.BOQ{}, entities.Order{}, err
	}

	stored, err := u.boqs.Create(ctx, b)
	if errors.Is(err, entities.ErrConcurrencyConflict) {
		stored, err = u.boqs.GetByID(ctx, b.ID)
		if err == nil && stored.ID == "" {
			err = ErrBOQNotFound
		}
		if err == nil {
			log.Printf("[boq][usecase] adopting existing boq order_id=%s boq_id=%s", o.ID, stored.ID)
		}
	}
	if err != nil {
		log.Printf("[boq][usecase] create failed order_id=%s err=%v", o.ID, err)
		return entities.BOQ{}, entities.Order{}, err
	}

	updated, err := mutateOrder(ctx, u.orders, o.ID, func(o *entities.Order) (bool, error) {
		if o.BOQGenerated && o.BOQID == stored.ID {
			return false, nil
		}
		o.BOQGenerated = true
		o.BOQID = stored.ID
		return true, nil
	})
	if err != nil {
		log.Printf("[boq][usecase] flag order failed order_id=%s boq_id=%s err=%v", o.ID, stored.ID, err)
		return entities.BOQ{}, entities.Order{}, err
	}
	log.Printf("[boq][usecase] generated order_id=%s boq_id=%s items=%d total_cost=%s", o.ID, stored.ID, len(stored.Items), stored.TotalCost.String())
	return stored, updated, nil
}

func (u *BOQUseCase) GetBOQ(ctx context.Context, id string) (entities.BOQ, error) {
	return u.load(ctx, id)
}

func (u *BOQUseCase) AddItem(ctx context.Context, boqID string, in BOQItemInput) (entities.BOQ, error) {
	it, err := newBOQItem(in)
	if err != nil {
		return entities.BOQ{}, err
	}
	return u.mutate(ctx, boqID, func(b *entities.BOQ) (bool, error) {
		b.SetItems(append(b.Items, it))
		return true, nil
	})
}

func (u *BOQUseCase) UpdateItem(ctx context.Context, boqID, itemID string, in BOQItemPatch) (entities.BOQ, error) {
	return u.mutate(ctx, boqID, func(b *entities.BOQ) (bool, error) {
		i := b.FindItem(itemID)
		if i < 0 {
			return false, ErrLineItemNotFound
		}
		it := b.Items[i]
		if in.Description != nil {
			it.Description = strings.TrimSpace(*in.Description)
		}
		if in.Category != nil {
			c, err := entities.ParseBOQCategory(*in.Category)
			if err != nil {
				return false, err
			}
			it.Category = c
		}
		if in.Unit != nil {
			it.Unit = strings.TrimSpace(*in.Unit)
		}
		if in.Quantity != nil {
			it.Quantity = *in.Quantity
		}
		if in.Rate != nil {
			it.Rate = *in.Rate
		}
		if err := it.Validate(); err != nil {
			return false, err
		}
		items := append([]entities.BOQItem(nil), b.Items...)
		items[i] = it
		b.SetItems(items)
		return true, nil
	})
}

func (u *BOQUseCase) RemoveItem(ctx context.Context, boqID, itemID string) (entities.BOQ, error) {
	return u.mutate(ctx, boqID, func(b *entities.BOQ) (bool, error) {
		i := b.FindItem(itemID)
		if i < 0 {
			return false, ErrLineItemNotFound
		}
		items := append([]entities.BOQItem(nil), b.Items[:i]...)
		b.SetItems(append(items, b.Items[i+1:]...))
		return true, nil
	})
}

func (u *BOQUseCase) SetETOStatus(ctx context.Context, boqID string, status entities.ETOStatus) (entities.BOQ, error) {
	updated, err := u.mutate(ctx, boqID, func(b *entities.BOQ) (bool, error) {
		return workflow.ApplyETOStatus(b, status)
	})
	if err != nil {
		return entities.BOQ{}, err
	}
	log.Printf("[boq][usecase] eto status boq_id=%s status=%s progress=%d", updated.ID, updated.ETOStatus, updated.EngineeringProgress)
	return updated, nil
}

func (u *BOQUseCase) load(ctx context.Context, id string) (entities.BOQ, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BOQ{}, ErrInvalidID
	}
	b, err := u.boqs.GetByID(ctx, id)
	if err != nil {
		return entities.BOQ{}, err
	}
	if b.ID == "" {
		return entities.BOQ{}, ErrBOQNotFound
	}
	return b, nil
}

func (u *BOQUseCase) mutate(ctx context.Context, id string, fn func(b *entities.BOQ) (bool, error)) (entities.BOQ, error) {
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.BOQ{}, err
	}
	next := current.Clone()
	changed, err := fn(&next)
	if err != nil {
		return entities.BOQ{}, err
	}
	if !changed {
		return current, nil
	}
	next.UpdatedAt = time.Now().UTC()
	return u.boqs.Update(ctx, next, current.Version)
}

func newBOQItem(in BOQItemInput) (entities.BOQItem, error) {
	c, err := entities.ParseBOQCategory(in.Category)
	if err != nil {
		return entities.BOQItem{}, err
	}
	it := entities.BOQItem{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(in.Description),
		Category:    c,
		Unit:        strings.TrimSpace(in.Unit),
		Quantity:    in.Quantity,
		Rate:        in.Rate,
	}
	if err := it.Validate(); err != nil {
		return entities.BOQItem{}, err
	}
	it.Recalculate()
	return it, nil
}
