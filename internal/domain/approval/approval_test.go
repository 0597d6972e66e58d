package approval

import (
	"fmt"
	"testing"
	"time"

	"eto_pipeline/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records(statuses ...entities.ApprovalStatus) []entities.ApprovalRecord {
	out := make([]entities.ApprovalRecord, len(statuses))
	for i, s := range statuses {
		out[i] = entities.ApprovalRecord{ID: fmt.Sprintf("ap-%d", i+1), Role: fmt.Sprintf("role-%d", i+1), Status: s}
	}
	return out
}

func TestIsFullyApproved(t *testing.T) {
	assert.True(t, IsFullyApproved(records(entities.ApprovalStatusApproved, entities.ApprovalStatusApproved)))
	assert.False(t, IsFullyApproved(records(entities.ApprovalStatusApproved, entities.ApprovalStatusRejected)))
	assert.False(t, IsFullyApproved(records(entities.ApprovalStatusApproved, entities.ApprovalStatusPending)))
	assert.False(t, IsFullyApproved(nil))
	assert.False(t, IsFullyApproved([]entities.ApprovalRecord{}))
}

func TestRecordDecision(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d := entities.EngineeringDrawing{Approvals: records(entities.ApprovalStatusPending, entities.ApprovalStatusPending)}

	require.NoError(t, RecordDecision(&d, "ap-1", true, "alice", "looks good", now))
	assert.Equal(t, entities.ApprovalStatusApproved, d.Approvals[0].Status)
	assert.Equal(t, "looks good", d.Approvals[0].Comments)
	assert.Equal(t, "alice", d.Approvals[0].Reviewer)
	require.NotNil(t, d.Approvals[0].DecidedAt)
	assert.True(t, d.Approvals[0].DecidedAt.Equal(now))
	assert.Equal(t, entities.DrawingStatusUnderReview, d.Status)

	require.NoError(t, RecordDecision(&d, "ap-2", false, "", "weld symbol missing", now))
	assert.Equal(t, entities.DrawingStatusRejected, d.Status)
	assert.Equal(t, entities.ApprovalStatusApproved, d.Approvals[0].Status, "rejection keeps other approvals")
	assert.False(t, IsFullyApproved(d.Approvals))

	require.NoError(t, RecordDecision(&d, "ap-2", true, "", "fixed", now))
	assert.True(t, IsFullyApproved(d.Approvals))
	assert.Equal(t, entities.DrawingStatusApproved, d.Status)

	err := RecordDecision(&d, "missing", true, "", "", now)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestResubmit(t *testing.T) {
	d := entities.EngineeringDrawing{Approvals: records(entities.ApprovalStatusApproved, entities.ApprovalStatusRejected)}

	err := Resubmit(&d, "ap-1")
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	require.NoError(t, Resubmit(&d, "ap-2"))
	assert.Equal(t, entities.ApprovalStatusPending, d.Approvals[1].Status)
	assert.Nil(t, d.Approvals[1].DecidedAt)
	assert.Equal(t, entities.DrawingStatusUnderReview, d.Status)

	assert.ErrorIs(t, Resubmit(&d, "nope"), entities.ErrNotFound)
}

func TestNewRecords(t *testing.T) {
	n := 0
	newID := func() string { n++; return fmt.Sprintf("id-%d", n) }

	recs, err := NewRecords([]string{"Design Lead", " QA "}, newID)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "QA", recs[1].Role)
	assert.Equal(t, entities.ApprovalStatusPending, recs[0].Status)

	_, err = NewRecords([]string{"QA", "qa"}, newID)
	assert.ErrorIs(t, err, entities.ErrValidation)

	_, err = NewRecords(nil, newID)
	assert.ErrorIs(t, err, entities.ErrValidation)
}

func TestComments(t *testing.T) {
	now := time.Now().UTC()
	d := entities.EngineeringDrawing{}

	_, err := AddComment(&d, "c-1", "bob", "  ", now)
	assert.ErrorIs(t, err, entities.ErrValidation)

	c, err := AddComment(&d, "c-1", "bob", "check flange thickness", now)
	require.NoError(t, err)
	assert.Equal(t, entities.CommentStatusOpen, c.Status)
	assert.Equal(t, 1, OpenComments(d.Comments))

	require.NoError(t, ResolveComment(&d, "c-1", now))
	require.NoError(t, ResolveComment(&d, "c-1", now))
	assert.Equal(t, 0, OpenComments(d.Comments))

	assert.ErrorIs(t, ResolveComment(&d, "c-9", now), entities.ErrNotFound)
}

func TestResetAll(t *testing.T) {
	d := entities.EngineeringDrawing{Approvals: records(entities.ApprovalStatusApproved, entities.ApprovalStatusRejected)}
	ResetAll(&d)
	for _, r := range d.Approvals {
		assert.Equal(t, entities.ApprovalStatusPending, r.Status)
	}
	assert.Equal(t, entities.DrawingStatusUnderReview, d.Status)
}
