package usecase

//go:generate mockgen -source=production_usecase.go -destination=../adapter/http/handlers/mocks/production_usecase_mock.go -package=mocks

import (
	"context"
	"log"
	"strings"
	"time"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/domain/production"
	"eto_pipeline/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IProductionUseCase releases work orders from sales orders and tracks them
// and their journeys on the shop floor. Journeys are always returned with the
// Setup step and progress derived.
type IProductionUseCase interface {
	CreateWorkOrder(ctx context.Context, salesOrderID string) (entities.WorkOrder, error)
	GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error)
	AdvanceWorkOrderStatus(ctx context.Context, id string, to entities.WorkOrderStatus) (entities.WorkOrder, error)
	SetWorkOrderProgress(ctx context.Context, id string, progress int) (entities.WorkOrder, error)
	CreateJourney(ctx context.Context, workOrderID string, steps []string) (entities.Journey, error)
	GetJourney(ctx context.Context, id string) (entities.Journey, error)
	AssignJourneyResources(ctx context.Context, id string, workstations, operators []string) (entities.Journey, error)
	SetJourneyStepStatus(ctx context.Context, id, step string, status entities.StepStatus) (entities.Journey, error)
	SetJourneyStatus(ctx context.Context, id string, to entities.JourneyStatus) (entities.Journey, error)
}

type ProductionUseCase struct {
	salesOrders interfaces.ISalesOrderRepository
	workOrders  interfaces.IWorkOrderRepository
	journeys    interfaces.IJourneyRepository
}

var _ IProductionUseCase = (*ProductionUseCase)(nil)

func NewProductionUseCase(salesOrders interfaces.ISalesOrderRepository, workOrders interfaces.IWorkOrderRepository, journeys interfaces.IJourneyRepository) *ProductionUseCase {
	return &ProductionUseCase{salesOrders: salesOrders, workOrders: workOrders, journeys: journeys}
}

func (u *ProductionUseCase) CreateWorkOrder(ctx context.Context, salesOrderID string) (entities.WorkOrder, error) {
	salesOrderID = strings.TrimSpace(salesOrderID)
	if salesOrderID == "" {
		return entities.WorkOrder{}, ErrInvalidID
	}
	so, err := u.salesOrders.GetByID(ctx, salesOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if so.ID == "" {
		return entities.WorkOrder{}, ErrSalesOrderNotFound
	}

	now := time.Now().UTC()
	w := entities.WorkOrder{
		ID:           uuid.NewString(),
		SalesOrderID: so.ID,
		OrderID:      so.QuotationID,
		Status:       entities.WorkOrderStatusPlanned,
		Steps:        production.NewSteps(entities.DefaultWorkOrderSteps),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.workOrders.Create(ctx, w)
	if err != nil {
		log.Printf("[production][usecase] create work order failed so_id=%s err=%v", so.ID, err)
		return entities.WorkOrder{}, err
	}
	log.Printf("[production][usecase] work order created so_id=%s wo_id=%s", so.ID, created.ID)
	return created, nil
}

func (u *ProductionUseCase) GetWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	return u.loadWorkOrder(ctx, id)
}

func (u *ProductionUseCase) AdvanceWorkOrderStatus(ctx context.Context, id string, to entities.WorkOrderStatus) (entities.WorkOrder, error) {
	updated, err := u.mutateWorkOrder(ctx, id, func(w *entities.WorkOrder) (bool, error) {
		return production.Advance(w, to)
	})
	if err != nil {
		log.Printf("[production][usecase] advance failed wo_id=%s to=%s err=%v", id, to, err)
		return entities.WorkOrder{}, err
	}
	log.Printf("[production][usecase] advanced wo_id=%s status=%s progress=%d", updated.ID, updated.Status, updated.Progress)
	return updated, nil
}

func (u *ProductionUseCase) SetWorkOrderProgress(ctx context.Context, id string, progress int) (entities.WorkOrder, error) {
	return u.mutateWorkOrder(ctx, id, func(w *entities.WorkOrder) (bool, error) {
		before := w.Progress
		production.SetProgress(w, progress)
		return w.Progress != before, nil
	})
}

// CreateJourney starts an Active journey for a work order. An empty step list
// falls back to the default route.
func (u *ProductionUseCase) CreateJourney(ctx context.Context, workOrderID string, steps []string) (entities.Journey, error) {
	w, err := u.loadWorkOrder(ctx, workOrderID)
	if err != nil {
		return entities.Journey{}, err
	}
	if w.Status == entities.WorkOrderStatusCancelled {
		return entities.Journey{}, entities.NewTransitionError("create journey", "work order is cancelled")
	}

	names, err := journeySteps(steps)
	if err != nil {
		return entities.Journey{}, err
	}
	now := time.Now().UTC()
	j := entities.Journey{
		ID:           uuid.NewString(),
		WorkOrderID:  w.ID,
		Status:       entities.JourneyStatusActive,
		Workstations: []string{},
		Operators:    []string{},
		Steps:        production.NewSteps(names),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.journeys.Create(ctx, j)
	if err != nil {
		log.Printf("[production][usecase] create journey failed wo_id=%s err=%v", w.ID, err)
		return entities.Journey{}, err
	}
	log.Printf("[production][usecase] journey created wo_id=%s journey_id=%s steps=%d", w.ID, created.ID, len(names))
	return production.View(created), nil
}

func (u *ProductionUseCase) GetJourney(ctx context.Context, id string) (entities.Journey, error) {
	j, err := u.loadJourney(ctx, id)
	if err != nil {
		return entities.Journey{}, err
	}
	return production.View(j), nil
}

func (u *ProductionUseCase) AssignJourneyResources(ctx context.Context, id string, workstations, operators []string) (entities.Journey, error) {
	ws := compactNames(workstations)
	ops := compactNames(operators)
	return u.mutateJourney(ctx, id, func(j *entities.Journey) (bool, error) {
		if j.Status == entities.JourneyStatusCompleted {
			return false, entities.NewTransitionError("assign resources", "journey is completed")
		}
		j.Workstations = ws
		j.Operators = ops
		return true, nil
	})
}

func (u *ProductionUseCase) SetJourneyStepStatus(ctx context.Context, id, step string, status entities.StepStatus) (entities.Journey, error) {
	return u.mutateJourney(ctx, id, func(j *entities.Journey) (bool, error) {
		if j.Status == entities.JourneyStatusCompleted {
			return false, entities.NewTransitionError("set step status", "journey is completed")
		}
		return true, production.SetStepStatus(j.Steps, strings.TrimSpace(step), status)
	})
}

func (u *ProductionUseCase) SetJourneyStatus(ctx context.Context, id string, to entities.JourneyStatus) (entities.Journey, error) {
	updated, err := u.mutateJourney(ctx, id, func(j *entities.Journey) (bool, error) {
		return production.SetJourneyStatus(j, to)
	})
	if err != nil {
		log.Printf("[production][usecase] journey status failed journey_id=%s to=%s err=%v", id, to, err)
		return entities.Journey{}, err
	}
	return updated, nil
}

func (u *ProductionUseCase) loadWorkOrder(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidID
	}
	w, err := u.workOrders.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return w, nil
}

func (u *ProductionUseCase) mutateWorkOrder(ctx context.Context, id string, fn func(w *entities.WorkOrder) (bool, error)) (entities.WorkOrder, error) {
	current, err := u.loadWorkOrder(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	next := current.Clone()
	changed, err := fn(&next)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !changed {
		return current, nil
	}
	next.UpdatedAt = time.Now().UTC()
	return u.workOrders.Update(ctx, next, current.Version)
}

func (u *ProductionUseCase) loadJourney(ctx context.Context, id string) (entities.Journey, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Journey{}, ErrInvalidID
	}
	j, err := u.journeys.GetByID(ctx, id)
	if err != nil {
		return entities.Journey{}, err
	}
	if j.ID == "" {
		return entities.Journey{}, ErrJourneyNotFound
	}
	return j, nil
}

// mutateJourney stores the journey with Setup and progress derived, and
// returns the same view.
func (u *ProductionUseCase) mutateJourney(ctx context.Context, id string, fn func(j *entities.Journey) (bool, error)) (entities.Journey, error) {
	current, err := u.loadJourney(ctx, id)
	if err != nil {
		return entities.Journey{}, err
	}
	next := current.Clone()
	changed, err := fn(&next)
	if err != nil {
		return entities.Journey{}, err
	}
	if !changed {
		return production.View(current), nil
	}
	next = production.View(next)
	next.UpdatedAt = time.Now().UTC()
	stored, err := u.journeys.Update(ctx, next, current.Version)
	if err != nil {
		return entities.Journey{}, err
	}
	return production.View(stored), nil
}

func journeySteps(steps []string) ([]string, error) {
	if len(steps) == 0 {
		return entities.DefaultJourneySteps, nil
	}
	names := compactNames(steps)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		key := strings.ToLower(n)
		if seen[key] {
			return nil, entities.Validationf("duplicate journey step %q", n)
		}
		seen[key] = true
	}
	if len(names) == 0 {
		return nil, entities.Validationf("journey needs at least one step")
	}
	return names, nil
}

func compactNames(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
