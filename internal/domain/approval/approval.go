// Package approval tracks the per-reviewer decisions on an engineering
// drawing.
//
// A rejection is terminal for its record until a human re-submits it; other
// records keep their decisions. Propagating a completed approval into the
// parent order is left to the caller, which compares IsFullyApproved before
// and after a decision.
package approval

import (
	"fmt"
	"strings"
	"time"

	"eto_pipeline/internal/domain/entities"
)

// IsFullyApproved is true iff there is at least one record and every record
// is Approved.
func IsFullyApproved(records []entities.ApprovalRecord) bool {
	if len(records) == 0 {
		return false
	}
	for _, r := range records {
		if r.Status != entities.ApprovalStatusApproved {
			return false
		}
	}
	return true
}

// NewRecords creates one Pending record per reviewer role.
func NewRecords(roles []string, newID func() string) ([]entities.ApprovalRecord, error) {
	seen := make(map[string]struct{}, len(roles))
	out := make([]entities.ApprovalRecord, 0, len(roles))
	for _, role := range roles {
		role = strings.TrimSpace(role)
		if role == "" {
			return nil, entities.Validationf("reviewer role must not be empty")
		}
		key := strings.ToLower(role)
		if _, dup := seen[key]; dup {
			return nil, entities.Validationf("duplicate reviewer role %q", role)
		}
		seen[key] = struct{}{}
		out = append(out, entities.ApprovalRecord{
			ID:     newID(),
			Role:   role,
			Status: entities.ApprovalStatusPending,
		})
	}
	if len(out) == 0 {
		return nil, entities.Validationf("at least one reviewer role is required")
	}
	return out, nil
}

// RecordDecision sets the matching record to Approved or Rejected and stamps
// the decision time and comment.
func RecordDecision(d *entities.EngineeringDrawing, approvalID string, approved bool, reviewer, comments string, now time.Time) error {
	i := indexOf(d.Approvals, approvalID)
	if i < 0 {
		return fmt.Errorf("approval %q: %w", approvalID, entities.ErrNotFound)
	}
	status := entities.ApprovalStatusRejected
	if approved {
		status = entities.ApprovalStatusApproved
	}
	at := now
	d.Approvals[i].Status = status
	d.Approvals[i].Comments = comments
	d.Approvals[i].DecidedAt = &at
	if reviewer != "" {
		d.Approvals[i].Reviewer = reviewer
	}
	d.Status = Status(d.Approvals)
	return nil
}

// Resubmit puts a rejected record back to Pending.
func Resubmit(d *entities.EngineeringDrawing, approvalID string) error {
	i := indexOf(d.Approvals, approvalID)
	if i < 0 {
		return fmt.Errorf("approval %q: %w", approvalID, entities.ErrNotFound)
	}
	if d.Approvals[i].Status != entities.ApprovalStatusRejected {
		return entities.NewTransitionError("resubmit approval", "only rejected approvals can be re-submitted")
	}
	d.Approvals[i].Status = entities.ApprovalStatusPending
	d.Approvals[i].DecidedAt = nil
	d.Status = Status(d.Approvals)
	return nil
}

// ResetAll returns every record to Pending; used when the drawing itself is
// revised.
func ResetAll(d *entities.EngineeringDrawing) {
	for i := range d.Approvals {
		d.Approvals[i].Status = entities.ApprovalStatusPending
		d.Approvals[i].Comments = ""
		d.Approvals[i].DecidedAt = nil
	}
	d.Status = Status(d.Approvals)
}

// Status summarizes the records: any rejection wins, then full approval.
func Status(records []entities.ApprovalRecord) entities.DrawingStatus {
	for _, r := range records {
		if r.Status == entities.ApprovalStatusRejected {
			return entities.DrawingStatusRejected
		}
	}
	if IsFullyApproved(records) {
		return entities.DrawingStatusApproved
	}
	return entities.DrawingStatusUnderReview
}

// AddComment appends an open review comment.
func AddComment(d *entities.EngineeringDrawing, id, author, text string, now time.Time) (entities.ReviewComment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ReviewComment{}, entities.Validationf("comment text must not be empty")
	}
	c := entities.ReviewComment{
		ID:        id,
		Author:    strings.TrimSpace(author),
		Text:      text,
		Status:    entities.CommentStatusOpen,
		CreatedAt: now,
	}
	d.Comments = append(d.Comments, c)
	return c, nil
}

// ResolveComment marks a comment resolved. Resolving twice is a no-op.
func ResolveComment(d *entities.EngineeringDrawing, commentID string, now time.Time) error {
	for i := range d.Comments {
		if d.Comments[i].ID != commentID {
			continue
		}
		if d.Comments[i].Status == entities.CommentStatusResolved {
			return nil
		}
		at := now
		d.Comments[i].Status = entities.CommentStatusResolved
		d.Comments[i].ResolvedAt = &at
		return nil
	}
	return fmt.Errorf("comment %q: %w", commentID, entities.ErrNotFound)
}

// OpenComments counts unresolved comments.
func OpenComments(comments []entities.ReviewComment) int {
	n := 0
	for _, c := range comments {
		if c.Status == entities.CommentStatusOpen {
			n++
		}
	}
	return n
}

func indexOf(records []entities.ApprovalRecord, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
