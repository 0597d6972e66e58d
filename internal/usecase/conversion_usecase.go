package usecase

//go:generate mockgen -source=conversion_usecase.go -destination=../adapter/http/handlers/mocks/conversion_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/domain/revision"
	"eto_pipeline/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const maxConvertAttempts = 3

// POInput is the purchase order the customer placed against a quotation.
// Amount and file reference are informational only.
type POInput struct {
	Number  string
	Amount  *decimal.Decimal
	FileRef string
}

// ConversionResult reports the outcome of ConvertToSalesOrder.
// AlreadyConverted is set when the call found the work already done.
type ConversionResult struct {
	Order            entities.Order
	SalesOrder       entities.SalesOrder
	AlreadyConverted bool
}

// IConversionUseCase coordinates the gated, one-way order transitions.
//
// Every transition is idempotent: repeating a completed one returns the
// current state without writing. Unmet preconditions return an
// entities.ErrInvalidTransition error naming the missing condition.
type IConversionUseCase interface {
	SendToCustomer(ctx context.Context, orderID string) (entities.Order, error)
	RecordCustomerDecision(ctx context.Context, orderID string, approved bool) (entities.Order, error)
	MarkPOReceived(ctx context.Context, orderID string, po POInput) (entities.Order, error)
	ConvertToSalesOrder(ctx context.Context, orderID, poNumber string) (ConversionResult, error)
	GetSalesOrder(ctx context.Context, id string) (entities.SalesOrder, error)
}

type ConversionUseCase struct {
	orders      interfaces.IOrderRepository
	salesOrders interfaces.ISalesOrderRepository
}

var _ IConversionUseCase = (*ConversionUseCase)(nil)

func NewConversionUseCase(orders interfaces.IOrderRepository, salesOrders interfaces.ISalesOrderRepository) *ConversionUseCase {
	return &ConversionUseCase{orders: orders, salesOrders: salesOrders}
}

func (u *ConversionUseCase) SendToCustomer(ctx context.Context, orderID string) (entities.Order, error) {
	updated, err := mutateOrder(ctx, u.orders, orderID, func(o *entities.Order) (bool, error) {
		if o.SentToCustomer {
			return false, nil
		}
		if !o.BOQGenerated {
			return false, entities.NewTransitionError("send to customer", "boq must be generated first")
		}
		o.Status = entities.OrderStatusSent
		o.SentToCustomer = true
		o.WorkflowStage = entities.StageCustomerReview
		o.Revision = revision.Next(o.Revision, revision.Major)
		return true, nil
	})
	if err != nil {
		log.Printf("[conversion][usecase] send failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}
	log.Printf("[conversion][usecase] sent order_id=%s revision=%s", updated.ID, updated.Revision)
	return updated, nil
}

func (u *ConversionUseCase) RecordCustomerDecision(ctx context.Context, orderID string, approved bool) (entities.Order, error) {
	target := entities.OrderStatusRejected
	if approved {
		target = entities.OrderStatusApproved
	}
	return mutateOrder(ctx, u.orders, orderID, func(o *entities.Order) (bool, error) {
		if o.Status == target {
			return false, nil
		}
		if o.ConvertedToSO {
			return false, entities.NewTransitionError("record customer decision", "order already converted to a sales order")
		}
		if !o.SentToCustomer {
			return false, entities.NewTransitionError("record customer decision", "order must be sent to the customer first")
		}
		o.Status = target
		return true, nil
	})
}

func (u *ConversionUseCase) MarkPOReceived(ctx context.Context, orderID string, po POInput) (entities.Order, error) {
	number := strings.TrimSpace(po.Number)
	updated, err := mutateOrder(ctx, u.orders, orderID, func(o *entities.Order) (bool, error) {
		if o.POReceived {
			return false, nil
		}
		if number == "" {
			return false, ErrInvalidPONumber
		}
		if po.Amount != nil && po.Amount.IsNegative() {
			return false, entities.Validationf("po amount must not be negative")
		}
		if !o.SentToCustomer {
			return false, entities.NewTransitionError("mark po received", "order must be sent to the customer first")
		}
		now := time.Now().UTC()
		o.POReceived = true
		o.PONumber = number
		o.POAmount = po.Amount
		o.POFileRef = strings.TrimSpace(po.FileRef)
		o.POReceivedAt = &now
		o.WorkflowStage = entities.StagePOReceived
		return true, nil
	})
	if err != nil {
		log.Printf("[conversion][usecase] po failed order_id=%s err=%v", orderID, err)
		return entities.Order{}, err
	}
	log.Printf("[conversion][usecase] po received order_id=%s po=%s", updated.ID, updated.PONumber)
	return updated, nil
}

// ConvertToSalesOrder creates the sales order first and only then flips the
// order's flags, so the order never points at a sales order that was not
// stored. The sales order id is derived from the order id: a concurrent or
// retried call collides on create and adopts the existing sales order.
func (u *ConversionUseCase) ConvertToSalesOrder(ctx context.Context, orderID, poNumber string) (ConversionResult, error) {
	o, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return ConversionResult{}, err
	}
	if o.ConvertedToSO {
		return u.alreadyConverted(ctx, o)
	}
	if !o.POReceived {
		return ConversionResult{}, entities.NewTransitionError("convert to sales order", "purchase order must be received first")
	}

	so, err := u.createOrAdoptSalesOrder(ctx, o, poNumber)
	if err != nil {
		log.Printf("[conversion][usecase] sales order create failed order_id=%s err=%v", o.ID, err)
		return ConversionResult{}, err
	}

	for attempt := 0; attempt < maxConvertAttempts; attempt++ {
		if o.ConvertedToSO {
			return u.alreadyConverted(ctx, o)
		}
		next := o.Clone()
		next.Status = entities.OrderStatusCompleted
		next.ConvertedToSO = true
		next.SOID = so.ID
		next.WorkflowStage = entities.StageCompleted
		next.UpdatedAt = time.Now().UTC()

		updated, err := u.orders.Update(ctx, next, o.Version)
		if err == nil {
			log.Printf("[conversion][usecase] converted order_id=%s so_id=%s so_number=%s", updated.ID, so.ID, so.SONumber)
			return ConversionResult{Order: updated, SalesOrder: so}, nil
		}
		if !errors.Is(err, entities.ErrConcurrencyConflict) {
			return ConversionResult{}, err
		}
		log.Printf("[conversion][usecase] order changed during conversion order_id=%s attempt=%d", o.ID, attempt+1)
		if o, err = loadOrder(ctx, u.orders, orderID); err != nil {
			return ConversionResult{}, err
		}
	}
	return ConversionResult{}, fmt.Errorf("convert order %s: %w", orderID, entities.ErrConcurrencyConflict)
}

func (u *ConversionUseCase) GetSalesOrder(ctx context.Context, id string) (entities.SalesOrder, error) {
	if strings.TrimSpace(id) == "" {
		return entities.SalesOrder{}, ErrInvalidID
	}
	so, err := u.salesOrders.GetByID(ctx, id)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if so.ID == "" {
		return entities.SalesOrder{}, ErrSalesOrderNotFound
	}
	return so, nil
}

func (u *ConversionUseCase) createOrAdoptSalesOrder(ctx context.Context, o entities.Order, poNumber string) (entities.SalesOrder, error) {
	customerPO := strings.TrimSpace(poNumber)
	if customerPO == "" {
		customerPO = o.PONumber
	}
	if customerPO == "" {
		customerPO = "PO-PENDING-" + shortRef(o.ID)
	}

	now := time.Now().UTC()
	id := SalesOrderIDFor(o.ID)
	draft := entities.SalesOrder{
		ID:           id,
		SONumber:     fmt.Sprintf("SO-%s-%s", now.Format("2006"), shortRef(id)),
		QuotationID:  o.ID,
		CustomerName: o.CustomerName,
		Items:        append([]entities.LineItem(nil), o.Items...),
		Subtotal:     o.Subtotal,
		Tax:          o.Tax,
		Total:        o.Total,
		PaymentTerms: o.PaymentTerms,
		CustomerPO:   customerPO,
		CreatedAt:    now,
	}

	created, err := u.salesOrders.Create(ctx, draft)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, entities.ErrConcurrencyConflict) {
		return entities.SalesOrder{}, err
	}
	existing, gerr := u.salesOrders.GetByID(ctx, id)
	if gerr != nil {
		return entities.SalesOrder{}, gerr
	}
	if existing.ID == "" {
		return entities.SalesOrder{}, err
	}
	log.Printf("[conversion][usecase] adopting existing sales order order_id=%s so_id=%s", o.ID, existing.ID)
	return existing, nil
}

func (u *ConversionUseCase) alreadyConverted(ctx context.Context, o entities.Order) (ConversionResult, error) {
	log.Printf("[conversion][usecase] already converted order_id=%s so_id=%s", o.ID, o.SOID)
	res := ConversionResult{Order: o, AlreadyConverted: true, SalesOrder: entities.SalesOrder{ID: o.SOID}}
	so, err := u.salesOrders.GetByID(ctx, o.SOID)
	if err == nil && so.ID != "" {
		res.SalesOrder = so
	}
	return res, nil
}
