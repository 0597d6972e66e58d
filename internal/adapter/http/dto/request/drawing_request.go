package request

import "eto_pipeline/internal/usecase"

type SubmitDrawingRequest struct {
	Title         string   `json:"title" binding:"required"`
	DrawingNumber string   `json:"drawing_number"`
	ReviewerRoles []string `json:"reviewer_roles"`
}

func (r SubmitDrawingRequest) ToInput() usecase.SubmitDrawingInput {
	return usecase.SubmitDrawingInput{
		Title:         r.Title,
		DrawingNumber: r.DrawingNumber,
		ReviewerRoles: r.ReviewerRoles,
	}
}

type ApprovalDecisionRequest struct {
	Approved *bool  `json:"approved" binding:"required"`
	Reviewer string `json:"reviewer"`
	Comments string `json:"comments"`
}

func (r ApprovalDecisionRequest) ToInput() usecase.ApprovalDecisionInput {
	return usecase.ApprovalDecisionInput{
		Approved: r.Approved != nil && *r.Approved,
		Reviewer: r.Reviewer,
		Comments: r.Comments,
	}
}

type CommentRequest struct {
	Author string `json:"author" binding:"required"`
	Text   string `json:"text" binding:"required"`
}
