package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"eto_pipeline/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo evaluates the two condition expressions the repositories use.
type fakeDynamo struct {
	mu     sync.Mutex
	items  map[string]map[string]types.AttributeValue
	putErr error
	puts   []*dynamodb.PutItemInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, in)
	if f.putErr != nil {
		return nil, f.putErr
	}
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	stored, exists := f.items[id]
	cond := ""
	if in.ConditionExpression != nil {
		cond = *in.ConditionExpression
	}
	switch {
	case strings.HasPrefix(cond, "attribute_not_exists"):
		if exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
	case strings.HasPrefix(cond, "attribute_exists"):
		if !exists {
			return nil, &types.ConditionalCheckFailedException{}
		}
		want := in.ExpressionAttributeValues[":expected"].(*types.AttributeValueMemberN).Value
		got := stored["version"].(*types.AttributeValueMemberN).Value
		if want != got {
			return nil, &types.ConditionalCheckFailedException{}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	return &dynamodb.GetItemOutput{Item: f.items[id]}, nil
}

func TestOrderDynamoRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewOrderDynamoRepository(ddb, "eto_orders")

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	po := decimal.RequireFromString("110.00")
	o := entities.Order{
		ID:              "o-1",
		QuotationNumber: "QTN-0001",
		CustomerName:    "Acme",
		Status:          entities.OrderStatusDraft,
		Revision:        "1.0",
		TaxRate:         decimal.NewFromInt(10),
		Items: []entities.LineItem{{
			ID: "li-1", Description: "steel", CostType: entities.CostTypeMaterial,
			Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50), TotalPrice: decimal.NewFromInt(100),
		}},
		MaterialCost: decimal.NewFromInt(100),
		Subtotal:     decimal.NewFromInt(100),
		Tax:          decimal.NewFromInt(10),
		Total:        decimal.NewFromInt(110),
		POAmount:     &po,
		POReceivedAt: &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := repo.Create(ctx, o)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.Version)
	assert.Equal(t, "eto_orders", *ddb.puts[0].TableName)

	_, err = repo.Create(ctx, o)
	assert.ErrorIs(t, err, entities.ErrConcurrencyConflict)

	got, err := repo.GetByID(ctx, "o-1")
	require.NoError(t, err)
	assert.Equal(t, "QTN-0001", got.QuotationNumber)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(110)))
	assert.True(t, got.POAmount.Equal(po))
	assert.True(t, got.CreatedAt.Equal(now))
	require.Len(t, got.Items, 1)
	assert.Equal(t, entities.CostTypeMaterial, got.Items[0].CostType)
	assert.Nil(t, got.ValidUntil)

	got.CustomerName = "Acme Ltd"
	updated, err := repo.Update(ctx, got, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	_, err = repo.Update(ctx, got, 1)
	assert.ErrorIs(t, err, entities.ErrConcurrencyConflict)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestDrawingDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewDrawingDynamoRepository(newFakeDynamo(), "eto_drawings")
	decided := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, entities.EngineeringDrawing{
		ID: "d-1", OrderID: "o-1", Title: "GA", Revision: "A",
		Status: entities.DrawingStatusUnderReview,
		Approvals: []entities.ApprovalRecord{
			{ID: "a-1", Role: "Engineering", Status: entities.ApprovalStatusApproved, Reviewer: "kim", DecidedAt: &decided},
			{ID: "a-2", Role: "Quality", Status: entities.ApprovalStatusPending},
		},
		Comments: []entities.ReviewComment{{ID: "c-1", Author: "kim", Text: "check welds", Status: entities.CommentStatusOpen, CreatedAt: decided}},
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "d-1")
	require.NoError(t, err)
	require.Len(t, got.Approvals, 2)
	assert.True(t, got.Approvals[0].DecidedAt.Equal(decided))
	assert.Nil(t, got.Approvals[1].DecidedAt)
	assert.Equal(t, entities.CommentStatusOpen, got.Comments[0].Status)
	assert.Equal(t, int64(1), got.Version)
}

func TestBOQAndSalesOrderDynamoRepositories(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	boqs := NewBOQDynamoRepository(ddb, "eto_boqs")
	sos := NewSalesOrderDynamoRepository(ddb, "eto_sales_orders")

	_, err := boqs.Create(ctx, entities.BOQ{
		ID: "b-1", OrderID: "o-1", ETOStatus: entities.ETOStatusBOQSubmitted,
		Items:     []entities.BOQItem{{ID: "i-1", Category: entities.BOQCategoryLabor, Quantity: decimal.NewFromInt(4), Rate: decimal.RequireFromString("12.5"), TotalAmount: decimal.NewFromInt(50)}},
		LaborCost: decimal.NewFromInt(50), TotalCost: decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	b, err := boqs.GetByID(ctx, "b-1")
	require.NoError(t, err)
	assert.True(t, b.Items[0].Rate.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, entities.ETOStatusBOQSubmitted, b.ETOStatus)

	so := entities.SalesOrder{ID: "so-1", SONumber: "SO-0001", QuotationID: "o-1", Total: decimal.NewFromInt(110), CustomerPO: "PO-9"}
	_, err = sos.Create(ctx, so)
	require.NoError(t, err)
	_, err = sos.Create(ctx, so)
	assert.ErrorIs(t, err, entities.ErrConcurrencyConflict)

	got, err := sos.GetByID(ctx, "so-1")
	require.NoError(t, err)
	assert.Equal(t, "PO-9", got.CustomerPO)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(110)))
}

func TestJourneyDynamoRepository_UpdateUnknownConflicts(t *testing.T) {
	ctx := context.Background()
	repo := NewJourneyDynamoRepository(newFakeDynamo(), "eto_journeys")

	_, err := repo.Update(ctx, entities.Journey{ID: "j-x"}, 1)
	assert.ErrorIs(t, err, entities.ErrConcurrencyConflict)

	_, err = repo.Create(ctx, entities.Journey{
		ID: "j-1", WorkOrderID: "w-1", Status: entities.JourneyStatusActive,
		Steps: []entities.Step{{Name: entities.SetupStep, Status: entities.StepStatusPending}},
	})
	require.NoError(t, err)
	got, err := repo.GetByID(ctx, "j-1")
	require.NoError(t, err)
	assert.NotNil(t, got.Workstations)
	assert.Equal(t, entities.StepStatusPending, got.Steps[0].Status)
}

func TestTable_PassesThroughOtherErrors(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.putErr = errors.New("throttled")
	repo := NewWorkOrderDynamoRepository(ddb, "eto_work_orders")

	_, err := repo.Create(context.Background(), entities.WorkOrder{ID: "w-1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrConcurrencyConflict)
}
