package repository

import (
	"context"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/usecase/interfaces"
)

type approvalItem struct {
	ID        string `dynamodbav:"id"`
	Role      string `dynamodbav:"role"`
	Reviewer  string `dynamodbav:"reviewer,omitempty"`
	Status    string `dynamodbav:"status"`
	Comments  string `dynamodbav:"comments,omitempty"`
	DecidedAt string `dynamodbav:"decided_at,omitempty"`
}

type commentItem struct {
	ID         string `dynamodbav:"id"`
	Author     string `dynamodbav:"author"`
	Text       string `dynamodbav:"text"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	ResolvedAt string `dynamodbav:"resolved_at,omitempty"`
}

type drawingItem struct {
	ID                   string         `dynamodbav:"id"`
	OrderID              string         `dynamodbav:"order_id"`
	EngineeringProjectID string         `dynamodbav:"engineering_project_id,omitempty"`
	Title                string         `dynamodbav:"title"`
	DrawingNumber        string         `dynamodbav:"drawing_number,omitempty"`
	Revision             string         `dynamodbav:"revision"`
	Status               string         `dynamodbav:"status"`
	Approvals            []approvalItem `dynamodbav:"approvals"`
	Comments             []commentItem  `dynamodbav:"comments"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DrawingDynamoRepository persists engineering drawings, with their
// approvals and comments embedded, in DynamoDB.
type DrawingDynamoRepository struct {
	t table
}

var _ interfaces.IDrawingRepository = (*DrawingDynamoRepository)(nil)

func NewDrawingDynamoRepository(ddb DynamoAPI, tableName string) *DrawingDynamoRepository {
	return &DrawingDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *DrawingDynamoRepository) Create(ctx context.Context, d entities.EngineeringDrawing) (entities.EngineeringDrawing, error) {
	d.Version = 1
	if err := r.t.create(ctx, toDrawingItem(d)); err != nil {
		return entities.EngineeringDrawing{}, err
	}
	return d, nil
}

func (r *DrawingDynamoRepository) GetByID(ctx context.Context, id string) (entities.EngineeringDrawing, error) {
	var it drawingItem
	found, err := r.t.get(ctx, id, &it)
	if err != nil || !found {
		return entities.EngineeringDrawing{}, err
	}
	return fromDrawingItem(it), nil
}

func (r *DrawingDynamoRepository) Update(ctx context.Context, d entities.EngineeringDrawing, expectedVersion int64) (entities.EngineeringDrawing, error) {
	d.Version = expectedVersion + 1
	if err := r.t.replace(ctx, toDrawingItem(d), expectedVersion); err != nil {
		return entities.EngineeringDrawing{}, err
	}
	return d, nil
}

func toDrawingItem(d entities.EngineeringDrawing) drawingItem {
	approvals := make([]approvalItem, len(d.Approvals))
	for i, a := range d.Approvals {
		approvals[i] = approvalItem{
			ID:        a.ID,
			Role:      a.Role,
			Reviewer:  a.Reviewer,
			Status:    string(a.Status),
			Comments:  a.Comments,
			DecidedAt: formatTimePtr(a.DecidedAt),
		}
	}
	comments := make([]commentItem, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = commentItem{
			ID:         c.ID,
			Author:     c.Author,
			Text:       c.Text,
			Status:     string(c.Status),
			CreatedAt:  formatTime(c.CreatedAt),
			ResolvedAt: formatTimePtr(c.ResolvedAt),
		}
	}
	return drawingItem{
		ID:                   d.ID,
		OrderID:              d.OrderID,
		EngineeringProjectID: d.EngineeringProjectID,
		Title:                d.Title,
		DrawingNumber:        d.DrawingNumber,
		Revision:             d.Revision,
		Status:               string(d.Status),
		Approvals:            approvals,
		Comments:             comments,
		Version:              d.Version,
		CreatedAt:            formatTime(d.CreatedAt),
		UpdatedAt:            formatTime(d.UpdatedAt),
	}
}

func fromDrawingItem(it drawingItem) entities.EngineeringDrawing {
	approvals := make([]entities.ApprovalRecord, len(it.Approvals))
	for i, a := range it.Approvals {
		approvals[i] = entities.ApprovalRecord{
			ID:        a.ID,
			Role:      a.Role,
			Reviewer:  a.Reviewer,
			Status:    entities.ApprovalStatus(a.Status),
			Comments:  a.Comments,
			DecidedAt: parseTimePtr(a.DecidedAt),
		}
	}
	comments := make([]entities.ReviewComment, len(it.Comments))
	for i, c := range it.Comments {
		comments[i] = entities.ReviewComment{
			ID:         c.ID,
			Author:     c.Author,
			Text:       c.Text,
			Status:     entities.CommentStatus(c.Status),
			CreatedAt:  parseTime(c.CreatedAt),
			ResolvedAt: parseTimePtr(c.ResolvedAt),
		}
	}
	return entities.EngineeringDrawing{
		ID:                   it.ID,
		OrderID:              it.OrderID,
		EngineeringProjectID: it.EngineeringProjectID,
		Title:                it.Title,
		DrawingNumber:        it.DrawingNumber,
		Revision:             it.Revision,
		Status:               entities.DrawingStatus(it.Status),
		Approvals:            approvals,
		Comments:             comments,
		Version:              it.Version,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
