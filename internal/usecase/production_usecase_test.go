package usecase

import (
	"context"
	"errors"
	"testing"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/domain/production"
	mock_interfaces "eto_pipeline/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func storedWorkOrder(status entities.WorkOrderStatus, progress int) entities.WorkOrder {
	return entities.WorkOrder{
		ID:           "wo-1",
		SalesOrderID: "so-1",
		OrderID:      "ord-1",
		Status:       status,
		Progress:     progress,
		Steps:        production.NewSteps(entities.DefaultWorkOrderSteps),
		Version:      1,
	}
}

func storedJourney() entities.Journey {
	return entities.Journey{
		ID:          "j-1",
		WorkOrderID: "wo-1",
		Status:      entities.JourneyStatusActive,
		Steps:       production.NewSteps(entities.DefaultJourneySteps),
		Version:     1,
	}
}

func expectWorkOrderUpdate(repo *mock_interfaces.MockIWorkOrderRepository) *gomock.Call {
	return repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{}), int64(1)).DoAndReturn(
		func(_ context.Context, w entities.WorkOrder, v int64) (entities.WorkOrder, error) {
			w.Version = v + 1
			return w, nil
		},
	)
}

func expectJourneyUpdate(repo *mock_interfaces.MockIJourneyRepository) *gomock.Call {
	return repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Journey{}), int64(1)).DoAndReturn(
		func(_ context.Context, j entities.Journey, v int64) (entities.Journey, error) {
			j.Version = v + 1
			return j, nil
		},
	)
}

func TestProductionUseCase_CreateWorkOrder(t *testing.T) {
	t.Run("unknown sales order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sos := mock_interfaces.NewMockISalesOrderRepository(ctrl)
		uc := NewProductionUseCase(sos, nil, nil)

		sos.EXPECT().GetByID(gomock.Any(), "so-x").Return(entities.SalesOrder{}, nil)

		_, err := uc.CreateWorkOrder(context.Background(), "so-x")
		if !errors.Is(err, ErrSalesOrderNotFound) {
			t.Fatalf("expected ErrSalesOrderNotFound, got %v", err)
		}
	})

	t.Run("creates planned work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sos := mock_interfaces.NewMockISalesOrderRepository(ctrl)
		wos := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewProductionUseCase(sos, wos, nil)

		sos.EXPECT().GetByID(gomock.Any(), "so-1").Return(entities.SalesOrder{ID: "so-1", QuotationID: "ord-1"}, nil)
		wos.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) { return w, nil },
		)

		w, err := uc.CreateWorkOrder(context.Background(), "so-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Status != entities.WorkOrderStatusPlanned || w.Progress != 0 || w.OrderID != "ord-1" || len(w.Steps) == 0 {
			t.Fatalf("unexpected work order: %+v", w)
		}
	})
}

func TestProductionUseCase_AdvanceWorkOrderStatus(t *testing.T) {
	cases := []struct {
		name     string
		from     entities.WorkOrderStatus
		progress int
		to       entities.WorkOrderStatus
		want     int
	}{
		{name: "start", from: entities.WorkOrderStatusPlanned, progress: 0, to: entities.WorkOrderStatusInProgress, want: 10},
		{name: "start keeps higher progress", from: entities.WorkOrderStatusPlanned, progress: 40, to: entities.WorkOrderStatusInProgress, want: 40},
		{name: "complete", from: entities.WorkOrderStatusInProgress, progress: 55, to: entities.WorkOrderStatusCompleted, want: 90},
		{name: "quality approve", from: entities.WorkOrderStatusCompleted, progress: 90, to: entities.WorkOrderStatusQualityApproved, want: 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			wos := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
			uc := NewProductionUseCase(nil, wos, nil)

			wos.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedWorkOrder(tc.from, tc.progress), nil)
			expectWorkOrderUpdate(wos)

			w, err := uc.AdvanceWorkOrderStatus(context.Background(), "wo-1", tc.to)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w.Status != tc.to || w.Progress != tc.want {
				t.Fatalf("expected %s/%d, got %s/%d", tc.to, tc.want, w.Status, w.Progress)
			}
		})
	}

	t.Run("skipping a stage is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wos := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewProductionUseCase(nil, wos, nil)

		wos.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedWorkOrder(entities.WorkOrderStatusPlanned, 0), nil)

		_, err := uc.AdvanceWorkOrderStatus(context.Background(), "wo-1", entities.WorkOrderStatusCompleted)
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})
}

func TestProductionUseCase_SetWorkOrderProgressClamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	wos := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	uc := NewProductionUseCase(nil, wos, nil)

	wos.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedWorkOrder(entities.WorkOrderStatusInProgress, 20), nil)
	expectWorkOrderUpdate(wos)

	w, err := uc.SetWorkOrderProgress(context.Background(), "wo-1", 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Progress != 100 {
		t.Fatalf("expected 100, got %d", w.Progress)
	}
}

func TestProductionUseCase_Journeys(t *testing.T) {
	t.Run("create uses default steps", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		wos := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		js := mock_interfaces.NewMockIJourneyRepository(ctrl)
		uc := NewProductionUseCase(nil, wos, js)

		wos.EXPECT().GetByID(gomock.Any(), "wo-1").Return(storedWorkOrder(entities.WorkOrderStatusInProgress, 10), nil)
		js.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Journey{})).DoAndReturn(
			func(_ context.Context, j entities.Journey) (entities.Journey, error) { return j, nil },
		)

		j, err := uc.CreateJourney(context.Background(), "wo-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(j.Steps) != 5 || j.Steps[0].Name != entities.SetupStep || j.Steps[0].Status != entities.StepStatusPending {
			t.Fatalf("unexpected steps: %+v", j.Steps)
		}
	})

	t.Run("setup completes once resources are assigned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		js := mock_interfaces.NewMockIJourneyRepository(ctrl)
		uc := NewProductionUseCase(nil, nil, js)

		js.EXPECT().GetByID(gomock.Any(), "j-1").Return(storedJourney(), nil)
		expectJourneyUpdate(js)

		j, err := uc.AssignJourneyResources(context.Background(), "j-1", []string{"WS-1"}, []string{" op-7 ", ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Steps[0].Status != entities.StepStatusCompleted || j.Progress != 20 {
			t.Fatalf("unexpected journey: %+v", j)
		}
		if len(j.Operators) != 1 || j.Operators[0] != "op-7" {
			t.Fatalf("expected trimmed operators, got %v", j.Operators)
		}
	})

	t.Run("setup without operators stays pending on read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		js := mock_interfaces.NewMockIJourneyRepository(ctrl)
		uc := NewProductionUseCase(nil, nil, js)

		stale := storedJourney()
		stale.Workstations = []string{"WS-1"}
		stale.Steps[0].Status = entities.StepStatusCompleted
		js.EXPECT().GetByID(gomock.Any(), "j-1").Return(stale, nil)

		j, err := uc.GetJourney(context.Background(), "j-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Steps[0].Status != entities.StepStatusPending {
			t.Fatalf("expected derived pending setup, got %s", j.Steps[0].Status)
		}
	})

	t.Run("setup step cannot be set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		js := mock_interfaces.NewMockIJourneyRepository(ctrl)
		uc := NewProductionUseCase(nil, nil, js)

		js.EXPECT().GetByID(gomock.Any(), "j-1").Return(storedJourney(), nil)

		_, err := uc.SetJourneyStepStatus(context.Background(), "j-1", "setup", entities.StepStatusCompleted)
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("complete requires every step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		js := mock_interfaces.NewMockIJourneyRepository(ctrl)
		uc := NewProductionUseCase(nil, nil, js)

		js.EXPECT().GetByID(gomock.Any(), "j-1").Return(storedJourney(), nil)

		_, err := uc.SetJourneyStatus(context.Background(), "j-1", entities.JourneyStatusCompleted)
		if !errors.Is(err, entities.ErrInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("pause", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		js := mock_interfaces.NewMockIJourneyRepository(ctrl)
		uc := NewProductionUseCase(nil, nil, js)

		js.EXPECT().GetByID(gomock.Any(), "j-1").Return(storedJourney(), nil)
		expectJourneyUpdate(js)

		j, err := uc.SetJourneyStatus(context.Background(), "j-1", entities.JourneyStatusPaused)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if j.Status != entities.JourneyStatusPaused {
			t.Fatalf("expected paused, got %s", j.Status)
		}
	})
}
