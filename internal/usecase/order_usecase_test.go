package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/domain/revision"
	mock_interfaces "eto_pipeline/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// storedOrder is an order as a repository would return it.
func storedOrder(id string) entities.Order {
	o := entities.NewOrder(id, "ACME", d("10"), time.Now().UTC())
	o.Version = 3
	return o
}

// expectOrderUpdate makes Update behave like a successful compare-and-set.
func expectOrderUpdate(t *testing.T, repo *mock_interfaces.MockIOrderRepository, expectedVersion int64) *gomock.Call {
	t.Helper()
	return repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{}), expectedVersion).DoAndReturn(
		func(_ context.Context, o entities.Order, v int64) (entities.Order, error) {
			o.Version = v + 1
			return o, nil
		},
	)
}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("blank customer", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, decimal.Zero)
		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{CustomerName: "  "})
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, decimal.Zero)
		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{
			CustomerName: "ACME",
			Items:        []LineItemInput{{Quantity: d("-1"), UnitPrice: d("5")}},
		})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("create success with default tax", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, d("10"))

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.Status != entities.OrderStatusDraft || o.Revision != entities.InitialRevision {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.QuotationNumber == "" {
					t.Fatalf("expected generated quotation number")
				}
				o.Version = 1
				return o, nil
			},
		)

		res, err := uc.CreateOrder(context.Background(), CreateOrderInput{
			CustomerName: " ACME ",
			Items: []LineItemInput{
				{Description: "design", CostType: "engineering", Quantity: d("10"), UnitPrice: d("80")},
				{Description: "steel", Quantity: d("2"), UnitPrice: d("100")},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CustomerName != "ACME" {
			t.Fatalf("expected trimmed customer, got %q", res.CustomerName)
		}
		if !res.EngineeringCost.Equal(d("800")) || !res.MaterialCost.Equal(d("200")) {
			t.Fatalf("unexpected partition: eng=%s mat=%s", res.EngineeringCost, res.MaterialCost)
		}
		if !res.Subtotal.Equal(d("1000")) || !res.Tax.Equal(d("100")) || !res.Total.Equal(d("1100")) {
			t.Fatalf("unexpected totals: %s %s %s", res.Subtotal, res.Tax, res.Total)
		}
	})
}

func TestOrderUseCase_Items(t *testing.T) {
	t.Run("add item recomputes totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder("ord-1"), nil)
		expectOrderUpdate(t, repo, 3)

		res, err := uc.AddItem(context.Background(), "ord-1", LineItemInput{CostType: "labor", Quantity: d("4"), UnitPrice: d("25")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 1 || !res.LaborCost.Equal(d("100")) || !res.Total.Equal(d("110")) {
			t.Fatalf("unexpected order: %+v", res)
		}
		if res.Version != 4 {
			t.Fatalf("expected version 4, got %d", res.Version)
		}
	})

	t.Run("update unknown item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder("ord-1"), nil)

		qty := d("1")
		_, err := uc.UpdateItem(context.Background(), "ord-1", "missing", LineItemPatch{Quantity: &qty})
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("remove item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

		o := storedOrder("ord-1")
		o.SetItems([]entities.LineItem{
			{ID: "a", Quantity: d("1"), UnitPrice: d("10")},
			{ID: "b", Quantity: d("1"), UnitPrice: d("20")},
		})
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		expectOrderUpdate(t, repo, 3)

		res, err := uc.RemoveItem(context.Background(), "ord-1", "a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 1 || res.Items[0].ID != "b" || !res.Subtotal.Equal(d("20")) {
			t.Fatalf("unexpected order: %+v", res)
		}
	})

	t.Run("locked after po", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

		o := storedOrder("ord-1")
		o.POReceived = true
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		_, err := uc.AddItem(context.Background(), "ord-1", LineItemInput{Quantity: d("1"), UnitPrice: d("1")})
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("concurrent update surfaces conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder("ord-1"), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).Return(entities.Order{}, entities.ErrConcurrencyConflict)

		_, err := uc.AddItem(context.Background(), "ord-1", LineItemInput{Quantity: d("1"), UnitPrice: d("1")})
		if !errors.Is(err, entities.ErrConcurrencyConflict) {
			t.Fatalf("expected conflict, got %v", err)
		}
	})
}

func TestOrderUseCase_Revisions(t *testing.T) {
	t.Run("save draft bumps minor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder("ord-1"), nil)
		expectOrderUpdate(t, repo, 3)

		terms := "Net 30"
		res, err := uc.SaveDraft(context.Background(), "ord-1", OrderHeaderInput{PaymentTerms: &terms})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Revision != "1.1" || res.PaymentTerms != "Net 30" {
			t.Fatalf("unexpected order: revision=%s terms=%s", res.Revision, res.PaymentTerms)
		}
	})

	t.Run("update order bumps major and retaxes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

		o := storedOrder("ord-1")
		o.Revision = "1.3"
		o.SetItems([]entities.LineItem{{ID: "a", Quantity: d("1"), UnitPrice: d("200")}})
		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		expectOrderUpdate(t, repo, 3)

		rate := d("5")
		res, err := uc.UpdateOrder(context.Background(), "ord-1", OrderHeaderInput{TaxRate: &rate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Revision != "2.0" || !res.Total.Equal(d("210")) {
			t.Fatalf("unexpected order: revision=%s total=%s", res.Revision, res.Total)
		}
	})

	t.Run("next revision", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, decimal.Zero)
		if got := uc.NextRevision("Rev B", revision.Major); got != "Rev C" {
			t.Fatalf("expected Rev C, got %s", got)
		}
	})
}

func TestOrderUseCase_GetOrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

	_, err := uc.GetOrder(context.Background(), "missing")
	if !errors.Is(err, ErrOrderNotFound) || !errors.Is(err, entities.ErrNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderUseCase_AttachEngineeringIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

	o := storedOrder("ord-1")
	o.EngineeringProjectID = "eng-9"
	repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

	res, err := uc.AttachEngineering(context.Background(), "ord-1", "eng-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Version != 3 {
		t.Fatalf("expected no write, got version %d", res.Version)
	}
}

func TestOrderUseCase_ResolveStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(repo, nil, nil, nil, decimal.Zero)

	o := storedOrder("ord-1")
	o.EngineeringDrawingCreated = true
	repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

	stage, err := uc.ResolveStage(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stage != entities.StageBOQPending {
		t.Fatalf("expected boq pending, got %s", stage)
	}
}

func TestOrderUseCase_GetPipeline(t *testing.T) {
	t.Run("loads related records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		boqs := mock_interfaces.NewMockIBOQRepository(ctrl)
		drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
		sos := mock_interfaces.NewMockISalesOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, boqs, drawings, sos, decimal.Zero)

		o := storedOrder("ord-1")
		o.BOQGenerated, o.BOQID = true, "boq-1"
		o.EngineeringDrawingCreated, o.EngineeringDrawingID = true, "dwg-1"
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		boqs.EXPECT().GetByID(gomock.Any(), "boq-1").Return(entities.BOQ{ID: "boq-1"}, nil)
		drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(entities.EngineeringDrawing{ID: "dwg-1"}, nil)

		p, err := uc.GetPipeline(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.BOQ == nil || p.Drawing == nil || p.SalesOrder != nil {
			t.Fatalf("unexpected pipeline: %+v", p)
		}
		if p.Stage != entities.StageReadyToSend {
			t.Fatalf("expected ready to send, got %s", p.Stage)
		}
	})

	t.Run("related load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		boqs := mock_interfaces.NewMockIBOQRepository(ctrl)
		uc := NewOrderUseCase(orders, boqs, nil, nil, decimal.Zero)

		o := storedOrder("ord-1")
		o.BOQID = "boq-1"
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		boqs.EXPECT().GetByID(gomock.Any(), "boq-1").Return(entities.BOQ{}, errors.New("db"))

		_, err := uc.GetPipeline(context.Background(), "ord-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
