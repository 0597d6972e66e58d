package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"eto_pipeline/internal/adapter/persistence/memory"
	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/usecase/interfaces"
	mock_interfaces "eto_pipeline/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func storedDrawing(statuses ...entities.ApprovalStatus) entities.EngineeringDrawing {
	dw := entities.EngineeringDrawing{
		ID:       "dwg-1",
		OrderID:  "ord-1",
		Title:    "Frame",
		Revision: entities.InitialDrawingRevision,
		Status:   entities.DrawingStatusUnderReview,
		Version:  5,
	}
	for i, s := range statuses {
		dw.Approvals = append(dw.Approvals, entities.ApprovalRecord{
			ID:     []string{"ap-1", "ap-2", "ap-3"}[i],
			Role:   []string{"Design", "QA", "Customer"}[i],
			Status: s,
		})
	}
	return dw
}

func expectDrawingUpdate(repo *mock_interfaces.MockIDrawingRepository, expectedVersion int64) *gomock.Call {
	return repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.EngineeringDrawing{}), expectedVersion).DoAndReturn(
		func(_ context.Context, dw entities.EngineeringDrawing, v int64) (entities.EngineeringDrawing, error) {
			dw.Version = v + 1
			return dw, nil
		},
	)
}

func TestDrawingUseCase_SubmitDrawing(t *testing.T) {
	t.Run("no reviewers", func(t *testing.T) {
		uc := NewDrawingUseCase(nil, nil)
		_, err := uc.SubmitDrawing(context.Background(), "ord-1", SubmitDrawingInput{Title: "Frame"})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("submits and links order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewDrawingUseCase(drawings, orders)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(storedOrder("ord-1"), nil).Times(2)
		drawings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.EngineeringDrawing{})).DoAndReturn(
			func(_ context.Context, dw entities.EngineeringDrawing) (entities.EngineeringDrawing, error) {
				if dw.Revision != "Rev A" || len(dw.Approvals) != 2 || dw.Approvals[0].Status != entities.ApprovalStatusPending {
					t.Fatalf("unexpected drawing: %+v", dw)
				}
				return dw, nil
			},
		)
		orders.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, o entities.Order, v int64) (entities.Order, error) {
				if !o.EngineeringDrawingCreated || o.EngineeringDrawingID == "" || o.EngineeringStatus != EngineeringStatusDrawingUnderReview {
					t.Fatalf("unexpected order: %+v", o)
				}
				o.Version = v + 1
				return o, nil
			},
		)

		dw, err := uc.SubmitDrawing(context.Background(), "ord-1", SubmitDrawingInput{Title: "Frame", ReviewerRoles: []string{"Design", "QA"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dw.Status != entities.DrawingStatusUnderReview {
			t.Fatalf("expected under review, got %s", dw.Status)
		}
	})
}

func TestDrawingUseCase_RecordApprovalDecision(t *testing.T) {
	t.Run("partial approval does not touch order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewDrawingUseCase(drawings, orders)

		drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(storedDrawing(entities.ApprovalStatusPending, entities.ApprovalStatusPending), nil)
		expectDrawingUpdate(drawings, 5)

		dw, err := uc.RecordApprovalDecision(context.Background(), "dwg-1", "ap-1", ApprovalDecisionInput{Approved: true, Reviewer: "ana"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dw.Approvals[0].Status != entities.ApprovalStatusApproved || dw.Status != entities.DrawingStatusUnderReview {
			t.Fatalf("unexpected drawing: %+v", dw)
		}
	})

	t.Run("last approval completes order engineering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewDrawingUseCase(drawings, orders)

		o := storedOrder("ord-1")
		o.EngineeringDrawingID = "dwg-1"
		drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(storedDrawing(entities.ApprovalStatusApproved, entities.ApprovalStatusPending), nil)
		expectDrawingUpdate(drawings, 5)
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
			func(_ context.Context, o entities.Order, v int64) (entities.Order, error) {
				if o.EngineeringStatus != entities.EngineeringStatusDrawingComplete {
					t.Fatalf("expected drawing complete, got %q", o.EngineeringStatus)
				}
				return o, nil
			},
		)

		dw, err := uc.RecordApprovalDecision(context.Background(), "dwg-1", "ap-2", ApprovalDecisionInput{Approved: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dw.Status != entities.DrawingStatusApproved {
			t.Fatalf("expected approved drawing, got %s", dw.Status)
		}
	})

	t.Run("order already complete is not written again", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewDrawingUseCase(drawings, orders)

		o := storedOrder("ord-1")
		o.EngineeringDrawingID = "dwg-1"
		o.EngineeringStatus = entities.EngineeringStatusDrawingComplete
		drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(storedDrawing(entities.ApprovalStatusApproved, entities.ApprovalStatusApproved), nil)
		expectDrawingUpdate(drawings, 5)
		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)

		if _, err := uc.RecordApprovalDecision(context.Background(), "dwg-1", "ap-1", ApprovalDecisionInput{Approved: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
		uc := NewDrawingUseCase(drawings, nil)

		drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(storedDrawing(entities.ApprovalStatusApproved, entities.ApprovalStatusPending), nil)
		expectDrawingUpdate(drawings, 5)

		dw, err := uc.RecordApprovalDecision(context.Background(), "dwg-1", "ap-2", ApprovalDecisionInput{Approved: false, Comments: "tolerances"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dw.Status != entities.DrawingStatusRejected || dw.Approvals[1].Comments != "tolerances" {
			t.Fatalf("unexpected drawing: %+v", dw)
		}
	})

	t.Run("unknown approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
		uc := NewDrawingUseCase(drawings, nil)

		drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(storedDrawing(entities.ApprovalStatusPending), nil)

		_, err := uc.RecordApprovalDecision(context.Background(), "dwg-1", "ap-9", ApprovalDecisionInput{Approved: true})
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestDrawingUseCase_ResubmitApproval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
	uc := NewDrawingUseCase(drawings, nil)

	drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(storedDrawing(entities.ApprovalStatusRejected), nil)
	expectDrawingUpdate(drawings, 5)

	dw, err := uc.ResubmitApproval(context.Background(), "dwg-1", "ap-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dw.Approvals[0].Status != entities.ApprovalStatusPending {
		t.Fatalf("expected pending, got %s", dw.Approvals[0].Status)
	}
}

func TestDrawingUseCase_Comments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
	uc := NewDrawingUseCase(drawings, nil)

	drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(storedDrawing(entities.ApprovalStatusPending), nil)
	expectDrawingUpdate(drawings, 5)

	dw, err := uc.AddComment(context.Background(), "dwg-1", "ana", "check weld symbol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dw.Comments) != 1 || dw.Comments[0].Status != entities.CommentStatusOpen {
		t.Fatalf("unexpected comments: %+v", dw.Comments)
	}

	drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(dw, nil)
	expectDrawingUpdate(drawings, 6)

	dw, err = uc.ResolveComment(context.Background(), "dwg-1", dw.Comments[0].ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dw.Comments[0].Status != entities.CommentStatusResolved {
		t.Fatalf("expected resolved, got %s", dw.Comments[0].Status)
	}
}

func TestDrawingUseCase_ReviseDrawing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	drawings := mock_interfaces.NewMockIDrawingRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewDrawingUseCase(drawings, orders)

	o := storedOrder("ord-1")
	o.EngineeringDrawingID = "dwg-1"
	o.EngineeringStatus = entities.EngineeringStatusDrawingComplete
	drawings.EXPECT().GetByID(gomock.Any(), "dwg-1").Return(storedDrawing(entities.ApprovalStatusApproved, entities.ApprovalStatusApproved), nil)
	expectDrawingUpdate(drawings, 5)
	orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(o, nil)
	orders.EXPECT().Update(gomock.Any(), gomock.Any(), int64(3)).DoAndReturn(
		func(_ context.Context, o entities.Order, v int64) (entities.Order, error) {
			if o.EngineeringStatus != EngineeringStatusDrawingUnderReview {
				t.Fatalf("expected review reopened, got %q", o.EngineeringStatus)
			}
			return o, nil
		},
	)

	dw, err := uc.ReviseDrawing(context.Background(), "dwg-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dw.Revision != "Rev B" {
		t.Fatalf("expected Rev B, got %s", dw.Revision)
	}
	for _, a := range dw.Approvals {
		if a.Status != entities.ApprovalStatusPending {
			t.Fatalf("expected approvals reset, got %+v", dw.Approvals)
		}
	}
}

// flakyOrders fails every order write while err is set.
type flakyOrders struct {
	interfaces.IOrderRepository
	err error
}

func (f *flakyOrders) Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	if f.err != nil {
		return entities.Order{}, f.err
	}
	return f.IOrderRepository.Update(ctx, o, expectedVersion)
}

func TestDrawingUseCase_OrderWriteFailures(t *testing.T) {
	ctx := context.Background()
	storeDown := errors.New("store down")

	orders := memory.NewOrderRepository()
	drawings := memory.NewDrawingRepository()
	flaky := &flakyOrders{IOrderRepository: orders}
	uc := NewDrawingUseCase(drawings, flaky)

	o, err := orders.Create(ctx, entities.NewOrder("ord-1", "ACME", d("0"), time.Now().UTC()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slot := DrawingIDFor(o.ID, o.Version)

	t.Run("failed submit is reused by the retry", func(t *testing.T) {
		flaky.err = storeDown
		if _, err := uc.SubmitDrawing(ctx, o.ID, SubmitDrawingInput{Title: "Frame", ReviewerRoles: []string{"QA"}}); !errors.Is(err, storeDown) {
			t.Fatalf("expected store error, got %v", err)
		}
		stored, _ := orders.GetByID(ctx, o.ID)
		if stored.EngineeringDrawingCreated || stored.EngineeringDrawingID != "" {
			t.Fatalf("order must be untouched: %+v", stored)
		}

		flaky.err = nil
		dw, err := uc.SubmitDrawing(ctx, o.ID, SubmitDrawingInput{Title: "Frame v2", ReviewerRoles: []string{"QA"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dw.ID != slot || dw.Title != "Frame v2" {
			t.Fatalf("expected retry to reuse %s, got %+v", slot, dw)
		}
		stored, _ = orders.GetByID(ctx, o.ID)
		if stored.EngineeringDrawingID != slot {
			t.Fatalf("order links %q, want %q", stored.EngineeringDrawingID, slot)
		}
	})

	t.Run("failed propagation rolls the decision back", func(t *testing.T) {
		dw, _ := drawings.GetByID(ctx, slot)
		approvalID := dw.Approvals[0].ID

		flaky.err = storeDown
		if _, err := uc.RecordApprovalDecision(ctx, slot, approvalID, ApprovalDecisionInput{Approved: true}); !errors.Is(err, storeDown) {
			t.Fatalf("expected store error, got %v", err)
		}
		dw, _ = drawings.GetByID(ctx, slot)
		if dw.Status != entities.DrawingStatusUnderReview || dw.Approvals[0].Status != entities.ApprovalStatusPending {
			t.Fatalf("decision must not stick: %+v", dw)
		}

		flaky.err = nil
		if _, err := uc.RecordApprovalDecision(ctx, slot, approvalID, ApprovalDecisionInput{Approved: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		stored, _ := orders.GetByID(ctx, o.ID)
		if stored.EngineeringStatus != entities.EngineeringStatusDrawingComplete {
			t.Fatalf("expected drawing complete, got %q", stored.EngineeringStatus)
		}
	})

	t.Run("failed reopen rolls the revision back", func(t *testing.T) {
		flaky.err = storeDown
		if _, err := uc.ReviseDrawing(ctx, slot); !errors.Is(err, storeDown) {
			t.Fatalf("expected store error, got %v", err)
		}
		dw, _ := drawings.GetByID(ctx, slot)
		if dw.Revision != entities.InitialDrawingRevision || dw.Status != entities.DrawingStatusApproved {
			t.Fatalf("revision must not stick: %+v", dw)
		}
		flaky.err = nil
	})
}
