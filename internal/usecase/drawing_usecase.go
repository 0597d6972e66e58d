package usecase

//go:generate mockgen -source=drawing_usecase.go -destination=../adapter/http/handlers/mocks/drawing_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"eto_pipeline/internal/domain/approval"
	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/domain/revision"
	"eto_pipeline/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// EngineeringStatusDrawingUnderReview marks an order whose current drawing
// is waiting for reviewers.
const EngineeringStatusDrawingUnderReview = "Drawing Under Review"

type SubmitDrawingInput struct {
	Title         string
	DrawingNumber string
	ReviewerRoles []string
}

type ApprovalDecisionInput struct {
	Approved bool
	Reviewer string
	Comments string
}

// IDrawingUseCase runs the review of engineering drawings and propagates a
// completed approval into the parent order.
type IDrawingUseCase interface {
	SubmitDrawing(ctx context.Context, orderID string, in SubmitDrawingInput) (entities.EngineeringDrawing, error)
	GetDrawing(ctx context.Context, id string) (entities.EngineeringDrawing, error)
	RecordApprovalDecision(ctx context.Context, drawingID, approvalID string, in ApprovalDecisionInput) (entities.EngineeringDrawing, error)
	ResubmitApproval(ctx context.Context, drawingID, approvalID string) (entities.EngineeringDrawing, error)
	AddComment(ctx context.Context, drawingID, author, text string) (entities.EngineeringDrawing, error)
	ResolveComment(ctx context.Context, drawingID, commentID string) (entities.EngineeringDrawing, error)
	ReviseDrawing(ctx context.Context, drawingID string) (entities.EngineeringDrawing, error)
}

type DrawingUseCase struct {
	drawings interfaces.IDrawingRepository
	orders   interfaces.IOrderRepository
}

var _ IDrawingUseCase = (*DrawingUseCase)(nil)

func NewDrawingUseCase(drawings interfaces.IDrawingRepository, orders interfaces.IOrderRepository) *DrawingUseCase {
	return &DrawingUseCase{drawings: drawings, orders: orders}
}

// SubmitDrawing stores a drawing with one Pending approval per reviewer role
// and records it on the order as the current drawing.
func (u *DrawingUseCase) SubmitDrawing(ctx context.Context, orderID string, in SubmitDrawingInput) (entities.EngineeringDrawing, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return entities.EngineeringDrawing{}, entities.Validationf("drawing title must not be empty")
	}
	records, err := approval.NewRecords(in.ReviewerRoles, uuid.NewString)
	if err != nil {
		return entities.EngineeringDrawing{}, err
	}

	o, err := loadOrder(ctx, u.orders, orderID)
	if err != nil {
		return entities.EngineeringDrawing{}, err
	}
	if o.ConvertedToSO {
		return entities.EngineeringDrawing{}, entities.NewTransitionError("submit drawing", "order already converted to a sales order")
	}

	now := time.Now().UTC()
	d := entities.EngineeringDrawing{
		ID:                   DrawingIDFor(o.ID, o.Version),
		OrderID:              o.ID,
		EngineeringProjectID: o.EngineeringProjectID,
		Title:                title,
		DrawingNumber:        strings.TrimSpace(in.DrawingNumber),
		Revision:             entities.InitialDrawingRevision,
		Status:               approval.Status(records),
		Approvals:            records,
		Comments:             []entities.ReviewComment{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	created, err := u.createPending(ctx, d)
	if err != nil {
		log.Printf("[drawing][usecase] create failed order_id=%s err=%v", o.ID, err)
		return entities.EngineeringDrawing{}, err
	}

	_, err = mutateOrder(ctx, u.orders, o.ID, func(cur *entities.Order) (bool, error) {
		if cur.Version != o.Version {
			return false, fmt.Errorf("order %s changed while submitting a drawing: %w", o.ID, entities.ErrConcurrencyConflict)
		}
		cur.EngineeringDrawingCreated = true
		cur.EngineeringDrawingID = created.ID
		cur.EngineeringStatus = EngineeringStatusDrawingUnderReview
		return true, nil
	})
	if err != nil {
		log.Printf("[drawing][usecase] flag order failed order_id=%s drawing_id=%s err=%v", o.ID, created.ID, err)
		return entities.EngineeringDrawing{}, err
	}
	log.Printf("[drawing][usecase] submitted order_id=%s drawing_id=%s reviewers=%d", o.ID, created.ID, len(records))
	return created, nil
}

// createPending stores a drawing under an id derived from the order version
// it was submitted against. A drawing already in that slot was left by a
// submit whose order write failed; nothing references it, so it is replaced.
func (u *DrawingUseCase) createPending(ctx context.Context, d entities.EngineeringDrawing) (entities.EngineeringDrawing, error) {
	created, err := u.drawings.Create(ctx, d)
	if err == nil || !errors.Is(err, entities.ErrConcurrencyConflict) {
		return created, err
	}
	existing, getErr := u.drawings.GetByID(ctx, d.ID)
	if getErr != nil {
		return entities.EngineeringDrawing{}, getErr
	}
	if existing.ID == "" || existing.OrderID != d.OrderID {
		return entities.EngineeringDrawing{}, err
	}
	log.Printf("[drawing][usecase] reusing unlinked drawing drawing_id=%s order_id=%s", d.ID, d.OrderID)
	d.CreatedAt = existing.CreatedAt
	return u.drawings.Update(ctx, d, existing.Version)
}

func (u *DrawingUseCase) GetDrawing(ctx context.Context, id string) (entities.EngineeringDrawing, error) {
	return u.load(ctx, id)
}

// RecordApprovalDecision stores one reviewer's decision. When the drawing is
// fully approved afterwards the parent order is marked "Drawing Complete";
// that write is skipped when the order already carries the status, so the
// side effect happens once no matter how often it is re-evaluated.
func (u *DrawingUseCase) RecordApprovalDecision(ctx context.Context, drawingID, approvalID string, in ApprovalDecisionInput) (entities.EngineeringDrawing, error) {
	var before entities.EngineeringDrawing
	updated, err := u.mutate(ctx, drawingID, func(d *entities.EngineeringDrawing) (bool, error) {
		before = d.Clone()
		return true, approval.RecordDecision(d, approvalID, in.Approved, strings.TrimSpace(in.Reviewer), strings.TrimSpace(in.Comments), time.Now().UTC())
	})
	if err != nil {
		log.Printf("[drawing][usecase] decision failed drawing_id=%s approval_id=%s err=%v", drawingID, approvalID, err)
		return entities.EngineeringDrawing{}, err
	}
	log.Printf("[drawing][usecase] decision drawing_id=%s approval_id=%s approved=%t status=%s", updated.ID, approvalID, in.Approved, updated.Status)

	if approval.IsFullyApproved(updated.Approvals) {
		if !approval.IsFullyApproved(before.Approvals) {
			log.Printf("[drawing][usecase] fully approved drawing_id=%s order_id=%s", updated.ID, updated.OrderID)
		}
		if err := u.markDrawingComplete(ctx, updated); err != nil {
			u.restore(ctx, before, updated)
			return entities.EngineeringDrawing{}, err
		}
	}
	return updated, nil
}

func (u *DrawingUseCase) markDrawingComplete(ctx context.Context, d entities.EngineeringDrawing) error {
	_, err := mutateOrder(ctx, u.orders, d.OrderID, func(o *entities.Order) (bool, error) {
		if o.EngineeringDrawingID != "" && o.EngineeringDrawingID != d.ID {
			return false, nil
		}
		if o.EngineeringStatus == entities.EngineeringStatusDrawingComplete {
			return false, nil
		}
		o.EngineeringStatus = entities.EngineeringStatusDrawingComplete
		return true, nil
	})
	if err != nil {
		log.Printf("[drawing][usecase] propagate approval failed drawing_id=%s order_id=%s err=%v", d.ID, d.OrderID, err)
	}
	return err
}

func (u *DrawingUseCase) ResubmitApproval(ctx context.Context, drawingID, approvalID string) (entities.EngineeringDrawing, error) {
	return u.mutate(ctx, drawingID, func(d *entities.EngineeringDrawing) (bool, error) {
		return true, approval.Resubmit(d, approvalID)
	})
}

func (u *DrawingUseCase) AddComment(ctx context.Context, drawingID, author, text string) (entities.EngineeringDrawing, error) {
	return u.mutate(ctx, drawingID, func(d *entities.EngineeringDrawing) (bool, error) {
		_, err := approval.AddComment(d, uuid.NewString(), author, text, time.Now().UTC())
		return true, err
	})
}

func (u *DrawingUseCase) ResolveComment(ctx context.Context, drawingID, commentID string) (entities.EngineeringDrawing, error) {
	return u.mutate(ctx, drawingID, func(d *entities.EngineeringDrawing) (bool, error) {
		return true, approval.ResolveComment(d, commentID, time.Now().UTC())
	})
}

// ReviseDrawing advances the lettered revision and sends every approval back
// to Pending. An order that considered this drawing complete goes back to
// review.
func (u *DrawingUseCase) ReviseDrawing(ctx context.Context, drawingID string) (entities.EngineeringDrawing, error) {
	var before entities.EngineeringDrawing
	updated, err := u.mutate(ctx, drawingID, func(d *entities.EngineeringDrawing) (bool, error) {
		before = d.Clone()
		d.Revision = revision.Next(d.Revision, revision.Major)
		approval.ResetAll(d)
		return true, nil
	})
	if err != nil {
		return entities.EngineeringDrawing{}, err
	}
	_, err = mutateOrder(ctx, u.orders, updated.OrderID, func(o *entities.Order) (bool, error) {
		if o.EngineeringDrawingID != updated.ID || o.EngineeringStatus != entities.EngineeringStatusDrawingComplete {
			return false, nil
		}
		if o.ConvertedToSO {
			return false, nil
		}
		o.EngineeringStatus = EngineeringStatusDrawingUnderReview
		return true, nil
	})
	if err != nil {
		log.Printf("[drawing][usecase] reopen review failed drawing_id=%s order_id=%s err=%v", updated.ID, updated.OrderID, err)
		u.restore(ctx, before, updated)
		return entities.EngineeringDrawing{}, err
	}
	log.Printf("[drawing][usecase] revised drawing_id=%s revision=%s", updated.ID, updated.Revision)
	return updated, nil
}

// restore writes back the drawing as it was before a change whose order
// follow-up failed. The decision can then be retried from a clean state.
func (u *DrawingUseCase) restore(ctx context.Context, before, written entities.EngineeringDrawing) {
	before.UpdatedAt = time.Now().UTC()
	if _, err := u.drawings.Update(ctx, before, written.Version); err != nil {
		log.Printf("[drawing][usecase] rollback failed drawing_id=%s version=%d err=%v", written.ID, written.Version, err)
		return
	}
	log.Printf("[drawing][usecase] rolled back drawing_id=%s", written.ID)
}

func (u *DrawingUseCase) load(ctx context.Context, id string) (entities.EngineeringDrawing, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EngineeringDrawing{}, ErrInvalidID
	}
	d, err := u.drawings.GetByID(ctx, id)
	if err != nil {
		return entities.EngineeringDrawing{}, err
	}
	if d.ID == "" {
		return entities.EngineeringDrawing{}, ErrDrawingNotFound
	}
	return d, nil
}

func (u *DrawingUseCase) mutate(ctx context.Context, id string, fn func(d *entities.EngineeringDrawing) (bool, error)) (entities.EngineeringDrawing, error) {
	current, err := u.load(ctx, id)
	if err != nil {
		return entities.EngineeringDrawing{}, err
	}
	next := current.Clone()
	changed, err := fn(&next)
	if err != nil {
		return entities.EngineeringDrawing{}, err
	}
	if !changed {
		return current, nil
	}
	next.UpdatedAt = time.Now().UTC()
	return u.drawings.Update(ctx, next, current.Version)
}
