package production

import (
	"testing"

	"eto_pipeline/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_ProgressBumps(t *testing.T) {
	w := entities.WorkOrder{Status: entities.WorkOrderStatusPlanned}

	changed, err := Advance(&w, entities.WorkOrderStatusInProgress)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 10, w.Progress)

	SetProgress(&w, 40)
	_, err = Advance(&w, entities.WorkOrderStatusOnHold)
	require.NoError(t, err)
	_, err = Advance(&w, entities.WorkOrderStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, 40, w.Progress, "resuming from hold keeps progress")

	_, err = Advance(&w, entities.WorkOrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 90, w.Progress)

	_, err = Advance(&w, entities.WorkOrderStatusQualityApproved)
	require.NoError(t, err)
	assert.Equal(t, 100, w.Progress)
}

func TestAdvance_KeepsHigherProgress(t *testing.T) {
	w := entities.WorkOrder{Status: entities.WorkOrderStatusPlanned, Progress: 25}
	_, err := Advance(&w, entities.WorkOrderStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, 25, w.Progress)

	SetProgress(&w, 95)
	_, err = Advance(&w, entities.WorkOrderStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 95, w.Progress)
}

func TestAdvance_Refusals(t *testing.T) {
	cases := []struct {
		from, to entities.WorkOrderStatus
	}{
		{entities.WorkOrderStatusPlanned, entities.WorkOrderStatusCompleted},
		{entities.WorkOrderStatusPlanned, entities.WorkOrderStatusQualityApproved},
		{entities.WorkOrderStatusOnHold, entities.WorkOrderStatusCompleted},
		{entities.WorkOrderStatusCompleted, entities.WorkOrderStatusInProgress},
		{entities.WorkOrderStatusQualityApproved, entities.WorkOrderStatusCancelled},
		{entities.WorkOrderStatusCancelled, entities.WorkOrderStatusPlanned},
	}
	for _, tc := range cases {
		w := entities.WorkOrder{Status: tc.from, Progress: 33}
		_, err := Advance(&w, tc.to)
		assert.ErrorIs(t, err, entities.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, tc.from, w.Status)
		assert.Equal(t, 33, w.Progress)
	}
}

func TestAdvance_SameStatusIsNoop(t *testing.T) {
	w := entities.WorkOrder{Status: entities.WorkOrderStatusOnHold, Progress: 50}
	changed, err := Advance(&w, entities.WorkOrderStatusOnHold)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSetProgress_Clamps(t *testing.T) {
	w := entities.WorkOrder{}
	SetProgress(&w, 150)
	assert.Equal(t, 100, w.Progress)
	SetProgress(&w, -5)
	assert.Equal(t, 0, w.Progress)
	SetProgress(&w, 42)
	assert.Equal(t, 42, w.Progress)
}

func TestView_SetupStepFollowsResources(t *testing.T) {
	j := entities.Journey{Steps: NewSteps(entities.DefaultJourneySteps)}
	j.Steps[0].Status = entities.StepStatusCompleted

	v := View(j)
	assert.Equal(t, entities.StepStatusPending, v.Steps[0].Status)
	assert.Equal(t, 0, v.Progress)

	j.Workstations = []string{"WS-1"}
	assert.Equal(t, entities.StepStatusPending, View(j).Steps[0].Status)

	j.Operators = []string{"op-7"}
	v = View(j)
	assert.Equal(t, entities.StepStatusCompleted, v.Steps[0].Status)
	assert.Equal(t, 20, v.Progress)

	j.Operators = nil
	assert.Equal(t, entities.StepStatusPending, View(j).Steps[0].Status)
}

func TestView_LowercaseSetupStepCompletesJourney(t *testing.T) {
	j := entities.Journey{
		Status:       entities.JourneyStatusActive,
		Steps:        NewSteps([]string{"setup", "Weld"}),
		Workstations: []string{"WS-1"},
		Operators:    []string{"op-7"},
	}

	v := View(j)
	assert.Equal(t, entities.StepStatusCompleted, v.Steps[0].Status)
	assert.Equal(t, 50, v.Progress)

	assert.ErrorIs(t, SetStepStatus(j.Steps, "setup", entities.StepStatusCompleted), entities.ErrInvalidTransition)
	require.NoError(t, SetStepStatus(j.Steps, "Weld", entities.StepStatusCompleted))

	changed, err := SetJourneyStatus(&j, entities.JourneyStatusCompleted)
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestSetStepStatus(t *testing.T) {
	steps := NewSteps(entities.DefaultJourneySteps)
	require.NoError(t, SetStepStatus(steps, "assembly", entities.StepStatusInProgress))
	assert.Equal(t, entities.StepStatusInProgress, steps[2].Status)

	assert.ErrorIs(t, SetStepStatus(steps, "Setup", entities.StepStatusCompleted), entities.ErrInvalidTransition)
	assert.ErrorIs(t, SetStepStatus(steps, "Painting", entities.StepStatusCompleted), entities.ErrNotFound)
}

func TestSetJourneyStatus(t *testing.T) {
	j := entities.Journey{Status: entities.JourneyStatusActive, Steps: NewSteps(entities.DefaultJourneySteps)}

	_, err := SetJourneyStatus(&j, entities.JourneyStatusCompleted)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	changed, err := SetJourneyStatus(&j, entities.JourneyStatusPaused)
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = SetJourneyStatus(&j, entities.JourneyStatusCompleted)
	assert.ErrorIs(t, err, entities.ErrInvalidTransition)

	_, err = SetJourneyStatus(&j, entities.JourneyStatusActive)
	require.NoError(t, err)

	j.Workstations = []string{"WS-1"}
	j.Operators = []string{"op-1"}
	for _, s := range entities.DefaultJourneySteps[1:] {
		require.NoError(t, SetStepStatus(j.Steps, s, entities.StepStatusCompleted))
	}
	_, err = SetJourneyStatus(&j, entities.JourneyStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entities.JourneyStatusCompleted, j.Status)
}

func TestParsers(t *testing.T) {
	s, err := ParseWorkOrderStatus("inprogress")
	require.NoError(t, err)
	assert.Equal(t, entities.WorkOrderStatusInProgress, s)
	_, err = ParseWorkOrderStatus("Active")
	assert.ErrorIs(t, err, entities.ErrValidation)

	st, err := ParseStepStatus("In_Progress")
	require.NoError(t, err)
	assert.Equal(t, entities.StepStatusInProgress, st)

	js, err := ParseJourneyStatus("paused")
	require.NoError(t, err)
	assert.Equal(t, entities.JourneyStatusPaused, js)
}
