package response

import (
	"time"

	"eto_pipeline/internal/domain/approval"
	"eto_pipeline/internal/domain/entities"
)

type ApprovalResponse struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"`
	Reviewer  string     `json:"reviewer,omitempty"`
	Status    string     `json:"status"`
	Comments  string     `json:"comments,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

type CommentResponse struct {
	ID         string     `json:"id"`
	Author     string     `json:"author"`
	Text       string     `json:"text"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

type DrawingResponse struct {
	ID                   string             `json:"id"`
	OrderID              string             `json:"order_id"`
	EngineeringProjectID string             `json:"engineering_project_id,omitempty"`
	Title                string             `json:"title"`
	DrawingNumber        string             `json:"drawing_number,omitempty"`
	Revision             string             `json:"revision"`
	Status               string             `json:"status"`
	FullyApproved        bool               `json:"fully_approved"`
	OpenComments         int                `json:"open_comments"`
	Approvals            []ApprovalResponse `json:"approvals"`
	Comments             []CommentResponse  `json:"comments"`
	Version              int64              `json:"version"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

func FromDrawing(d entities.EngineeringDrawing) DrawingResponse {
	approvals := make([]ApprovalResponse, 0, len(d.Approvals))
	for _, a := range d.Approvals {
		approvals = append(approvals, ApprovalResponse{
			ID:        a.ID,
			Role:      a.Role,
			Reviewer:  a.Reviewer,
			Status:    string(a.Status),
			Comments:  a.Comments,
			DecidedAt: a.DecidedAt,
		})
	}
	comments := make([]CommentResponse, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, CommentResponse{
			ID:         c.ID,
			Author:     c.Author,
			Text:       c.Text,
			Status:     string(c.Status),
			CreatedAt:  c.CreatedAt,
			ResolvedAt: c.ResolvedAt,
		})
	}
	return DrawingResponse{
		ID:                   d.ID,
		OrderID:              d.OrderID,
		EngineeringProjectID: d.EngineeringProjectID,
		Title:                d.Title,
		DrawingNumber:        d.DrawingNumber,
		Revision:             d.Revision,
		Status:               string(d.Status),
		FullyApproved:        approval.IsFullyApproved(d.Approvals),
		OpenComments:         approval.OpenComments(d.Comments),
		Approvals:            approvals,
		Comments:             comments,
		Version:              d.Version,
		CreatedAt:            d.CreatedAt,
		UpdatedAt:            d.UpdatedAt,
	}
}
