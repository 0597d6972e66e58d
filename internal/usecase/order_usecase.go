package usecase

//go:generate mockgen -source=order_usecase.go -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/domain/revision"
	"eto_pipeline/internal/domain/workflow"
	"eto_pipeline/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CreateOrderInput carries the header of a new quotation.
type CreateOrderInput struct {
	QuotationNumber string
	CustomerName    string
	PaymentTerms    string
	ValidUntil      *time.Time
	TaxRate         *decimal.Decimal
	Items           []LineItemInput
}

// OrderHeaderInput patches the editable header fields; nil leaves a field
// unchanged.
type OrderHeaderInput struct {
	CustomerName *string
	PaymentTerms *string
	ValidUntil   *time.Time
	TaxRate      *decimal.Decimal
}

// LineItemInput describes a new quotation line.
type LineItemInput struct {
	Description string
	CostType    string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// LineItemPatch updates a quotation line; nil leaves a field unchanged.
type LineItemPatch struct {
	Description *string
	CostType    *string
	Quantity    *decimal.Decimal
	UnitPrice   *decimal.Decimal
}

// Pipeline is the aggregated view of an order and its related records.
type Pipeline struct {
	Order      entities.Order
	Stage      entities.Stage
	BOQ        *entities.BOQ
	Drawing    *entities.EngineeringDrawing
	SalesOrder *entities.SalesOrder
}

// IOrderUseCase exposes quotation editing and stage resolution.
//
// Every item mutation recomputes the order totals in the same write; callers
// never patch a total directly.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	AddItem(ctx context.Context, orderID string, in LineItemInput) (entities.Order, error)
	UpdateItem(ctx context.Context, orderID, itemID string, in LineItemPatch) (entities.Order, error)
	RemoveItem(ctx context.Context, orderID, itemID string) (entities.Order, error)
	SaveDraft(ctx context.Context, orderID string, in OrderHeaderInput) (entities.Order, error)
	UpdateOrder(ctx context.Context, orderID string, in OrderHeaderInput) (entities.Order, error)
	AttachEngineering(ctx context.Context, orderID, engineeringProjectID string) (entities.Order, error)
	ResolveStage(ctx context.Context, orderID string) (entities.Stage, error)
	NextRevision(current string, kind revision.Kind) string
	GetPipeline(ctx context.Context, orderID string) (Pipeline, error)
}

type OrderUseCase struct {
	orders         interfaces.IOrderRepository
	boqs           interfaces.IBOQRepository
	drawings       interfaces.IDrawingRepository
	salesOrders    interfaces.ISalesOrderRepository
	defaultTaxRate decimal.Decimal
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	boqs interfaces.IBOQRepository,
	drawings interfaces.IDrawingRepository,
	salesOrders interfaces.ISalesOrderRepository,
	defaultTaxRate decimal.Decimal,
) *OrderUseCase {
	return &OrderUseCase{
		orders:         orders,
		boqs:           boqs,
		drawings:       drawings,
		salesOrders:    salesOrders,
		defaultTaxRate: defaultTaxRate,
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	customer := strings.TrimSpace(in.CustomerName)
	if customer == "" {
		return entities.Order{}, ErrInvalidCustomerName
	}
	taxRate := u.defaultTaxRate
	if in.TaxRate != nil {
		taxRate = *in.TaxRate
	}
	if taxRate.IsNegative() {
		return entities.Order{}, entities.Validationf("tax rate must not be negative")
	}

	items := make([]entities.LineItem, 0, len(in.Items))
	for _, li := range in.Items {
		it, err := newLineItem(li)
		if err != nil {
			return entities.Order{}, err
		}
		items = append(items, it)
	}

	id := uuid.NewString()
	o := entities.NewOrder(id, customer, taxRate, time.Now().UTC())
	o.QuotationNumber = strings.TrimSpace(in.QuotationNumber)
	if o.QuotationNumber == "" {
		o.QuotationNumber = "QT-" + shortRef(id)
	}
	o.PaymentTerms = strings.TrimSpace(in.PaymentTerms)
	o.ValidUntil = in.ValidUntil
	o.SetItems(items)

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed customer=%q err=%v", customer, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created order_id=%s quotation=%s items=%d total=%s", created.ID, created.QuotationNumber, len(created.Items), created.Total.String())
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	return loadOrder(ctx, u.orders, id)
}

func (u *OrderUseCase) AddItem(ctx context.Context, orderID string, in LineItemInput) (entities.Order, error) {
	it, err := newLineItem(in)
	if err != nil {
		return entities.Order{}, err
	}
	return mutateOrder(ctx, u.orders, orderID, func(o *entities.Order) (bool, error) {
		if err := ensureEditable(*o, "add line item"); err != nil {
			return false, err
		}
		o.SetItems(append(o.Items, it))
		return true, nil
	})
}

func (u *OrderUseCase) UpdateItem(ctx context.Context, orderID, itemID string, in LineItemPatch) (entities.Order, error) {
	return mutateOrder(ctx, u.orders, orderID, func(o *entities.Order) (bool, error) {
		if err := ensureEditable(*o, "update line item"); err != nil {
			return false, err
		}
		i := o.FindItem(itemID)
		if i < 0 {
			return false, ErrLineItemNotFound
		}
		it := o.Items[i]
		if in.Description != nil {
			it.Description = strings.TrimSpace(*in.Description)
		}
		if in.CostType != nil {
			ct, err := entities.ParseCostType(*in.CostType)
			if err != nil {
				return false, err
			}
			it.CostType = ct
		}
		if in.Quantity != nil {
			it.Quantity = *in.Quantity
		}
		if in.UnitPrice != nil {
			it.UnitPrice = *in.UnitPrice
		}
		if err := it.Validate(); err != nil {
			return false, err
		}
		items := append([]entities.LineItem(nil), o.Items...)
		items[i] = it
		o.SetItems(items)
		return true, nil
	})
}

func (u *OrderUseCase) RemoveItem(ctx context.Context, orderID, itemID string) (entities.Order, error) {
	return mutateOrder(ctx, u.orders, orderID, func(o *entities.Order) (bool, error) {
		if err := ensureEditable(*o, "remove line item"); err != nil {
			return false, err
		}
		i := o.FindItem(itemID)
		if i < 0 {
			return false, ErrLineItemNotFound
		}
		items := append([]entities.LineItem(nil), o.Items[:i]...)
		o.SetItems(append(items, o.Items[i+1:]...))
		return true, nil
	})
}

// SaveDraft applies header changes and advances the minor revision.
func (u *OrderUseCase) SaveDraft(ctx context.Context, orderID string, in OrderHeaderInput) (entities.Order, error) {
	return u.saveRevision(ctx, orderID, in, revision.Minor, "save draft")
}

// UpdateOrder applies header changes and advances the major revision.
func (u *OrderUseCase) UpdateOrder(ctx context.Context, orderID string, in OrderHeaderInput) (entities.Order, error) {
	return u.saveRevision(ctx, orderID, in, revision.Major, "update order")
}

func (u *OrderUseCase) saveRevision(ctx context.Context, orderID string, in OrderHeaderInput, kind revision.Kind, op string) (entities.Order, error) {
	if in.CustomerName != nil && strings.TrimSpace(*in.CustomerName) == "" {
		return entities.Order{}, ErrInvalidCustomerName
	}
	if in.TaxRate != nil && in.TaxRate.IsNegative() {
		return entities.Order{}, entities.Validationf("tax rate must not be negative")
	}
	updated, err := mutateOrder(ctx, u.orders, orderID, func(o *entities.Order) (bool, error) {
		if err := ensureEditable(*o, op); err != nil {
			return false, err
		}
		if in.CustomerName != nil {
			o.CustomerName = strings.TrimSpace(*in.CustomerName)
		}
		if in.PaymentTerms != nil {
			o.PaymentTerms = strings.TrimSpace(*in.PaymentTerms)
		}
		if in.ValidUntil != nil {
			v := *in.ValidUntil
			o.ValidUntil = &v
		}
		if in.TaxRate != nil {
			o.SetTaxRate(*in.TaxRate)
		}
		o.Revision = revision.Next(o.Revision, kind)
		return true, nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] %s order_id=%s revision=%s", op, updated.ID, updated.Revision)
	return updated, nil
}

func (u *OrderUseCase) AttachEngineering(ctx context.Context, orderID, engineeringProjectID string) (entities.Order, error) {
	engineeringProjectID = strings.TrimSpace(engineeringProjectID)
	if engineeringProjectID == "" {
		return entities.Order{}, entities.Validationf("engineering project id must not be empty")
	}
	return mutateOrder(ctx, u.orders, orderID, func(o *entities.Order) (bool, error) {
		if o.EngineeringProjectID == engineeringProjectID {
			return false, nil
		}
		if o.ConvertedToSO {
			return false, entities.NewTransitionError("attach engineering", "order already converted to a sales order")
		}
		o.EngineeringProjectID = engineeringProjectID
		return true, nil
	})
}

func (u *OrderUseCase) ResolveStage(ctx context.Context, orderID string) (entities.Stage, error) {
	o, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return "", err
	}
	return workflow.Resolve(o), nil
}

func (u *OrderUseCase) NextRevision(current string, kind revision.Kind) string {
	return revision.Next(current, kind)
}

// GetPipeline loads the order, then its BOQ, drawing and sales order in
// parallel.
func (u *OrderUseCase) GetPipeline(ctx context.Context, orderID string) (Pipeline, error) {
	o, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return Pipeline{}, err
	}
	p := Pipeline{Order: o, Stage: workflow.Resolve(o)}

	g, gctx := errgroup.WithContext(ctx)
	if o.BOQID != "" && u.boqs != nil {
		g.Go(func() error {
			b, err := u.boqs.GetByID(gctx, o.BOQID)
			if err != nil {
				return err
			}
			if b.ID != "" {
				p.BOQ = &b
			}
			return nil
		})
	}
	if o.EngineeringDrawingID != "" && u.drawings != nil {
		g.Go(func() error {
			d, err := u.drawings.GetByID(gctx, o.EngineeringDrawingID)
			if err != nil {
				return err
			}
			if d.ID != "" {
				p.Drawing = &d
			}
			return nil
		})
	}
	if o.SOID != "" && u.salesOrders != nil {
		g.Go(func() error {
			so, err := u.salesOrders.GetByID(gctx, o.SOID)
			if err != nil {
				return err
			}
			if so.ID != "" {
				p.SalesOrder = &so
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[order][usecase] pipeline load failed order_id=%s err=%v", orderID, err)
		return Pipeline{}, err
	}
	return p, nil
}

func newLineItem(in LineItemInput) (entities.LineItem, error) {
	ct, err := entities.ParseCostType(in.CostType)
	if err != nil {
		return entities.LineItem{}, err
	}
	it := entities.LineItem{
		ID:          uuid.NewString(),
		Description: strings.TrimSpace(in.Description),
		CostType:    ct,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
	}
	if err := it.Validate(); err != nil {
		return entities.LineItem{}, err
	}
	it.Recalculate()
	return it, nil
}

// ensureEditable refuses content edits once a PO is on file: the PO was
// placed against the quoted revision.
func ensureEditable(o entities.Order, op string) error {
	if o.ConvertedToSO {
		return entities.NewTransitionError(op, "order already converted to a sales order")
	}
	if o.POReceived {
		return entities.NewTransitionError(op, "order is locked once a purchase order is received")
	}
	return nil
}

func loadOrder(ctx context.Context, repo interfaces.IOrderRepository, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// mutateOrder loads the order, applies fn to a copy and stores the copy with
// a version-conditioned write. When fn reports no change nothing is written
// and the stored order is returned.
func mutateOrder(ctx context.Context, repo interfaces.IOrderRepository, id string, fn func(o *entities.Order) (bool, error)) (entities.Order, error) {
	current, err := loadOrder(ctx, repo, id)
	if err != nil {
		return entities.Order{}, err
	}
	next := current.Clone()
	changed, err := fn(&next)
	if err != nil {
		return entities.Order{}, err
	}
	if !changed {
		return current, nil
	}
	next.UpdatedAt = time.Now().UTC()
	updated, err := repo.Update(ctx, next, current.Version)
	if err != nil {
		if errors.Is(err, entities.ErrConcurrencyConflict) {
			log.Printf("[order][usecase] concurrent update lost order_id=%s version=%d", id, current.Version)
		}
		return entities.Order{}, err
	}
	return updated, nil
}
