package entities

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "Pending"
	ApprovalStatusApproved ApprovalStatus = "Approved"
	ApprovalStatusRejected ApprovalStatus = "Rejected"
)

type CommentStatus string

const (
	CommentStatusOpen     CommentStatus = "Open"
	CommentStatusResolved CommentStatus = "Resolved"
)

type DrawingStatus string

const (
	DrawingStatusUnderReview DrawingStatus = "UnderReview"
	DrawingStatusApproved    DrawingStatus = "Approved"
	DrawingStatusRejected    DrawingStatus = "Rejected"
)

// InitialDrawingRevision is the revision of a newly submitted drawing.
const InitialDrawingRevision = "Rev A"

// ApprovalRecord is one reviewer's decision on a drawing.
type ApprovalRecord struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Reviewer  string         `json:"reviewer,omitempty"`
	Status    ApprovalStatus `json:"status"`
	Comments  string         `json:"comments,omitempty"`
	DecidedAt *time.Time     `json:"decided_at,omitempty"`
}

type ReviewComment struct {
	ID         string        `json:"id"`
	Author     string        `json:"author"`
	Text       string        `json:"text"`
	Status     CommentStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	ResolvedAt *time.Time    `json:"resolved_at,omitempty"`
}

// EngineeringDrawing is a drawing under review for one order.
//
// OrderID always references the originating quotation; the engineering
// project is kept in its own field.
type EngineeringDrawing struct {
	ID                   string           `json:"id"`
	OrderID              string           `json:"order_id"`
	EngineeringProjectID string           `json:"engineering_project_id,omitempty"`
	Title                string           `json:"title"`
	DrawingNumber        string           `json:"drawing_number,omitempty"`
	Revision             string           `json:"revision"`
	Status               DrawingStatus    `json:"status"`
	Approvals            []ApprovalRecord `json:"approvals"`
	Comments             []ReviewComment  `json:"comments"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d EngineeringDrawing) Clone() EngineeringDrawing {
	c := d
	c.Approvals = append([]ApprovalRecord(nil), d.Approvals...)
	c.Comments = append([]ReviewComment(nil), d.Comments...)
	return c
}
