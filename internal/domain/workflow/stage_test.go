package workflow

import (
	"errors"
	"testing"

	"eto_pipeline/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_PriorityLadder(t *testing.T) {
	cases := []struct {
		name  string
		order entities.Order
		want  entities.Stage
	}{
		{"empty order is draft", entities.Order{}, entities.StageDraft},
		{"engineering id", entities.Order{EngineeringProjectID: "eng-1"}, entities.StageEngineering},
		{"drawing without engineering id", entities.Order{EngineeringDrawingCreated: true}, entities.StageBOQPending},
		{"boq generated", entities.Order{EngineeringProjectID: "eng-1", EngineeringDrawingCreated: true, BOQGenerated: true}, entities.StageReadyToSend},
		{"sent wins over boq", entities.Order{SentToCustomer: true, BOQGenerated: true}, entities.StageCustomerReview},
		{"po without approval stays in review", entities.Order{SentToCustomer: true, POReceived: true}, entities.StageCustomerReview},
		{"approved with po", entities.Order{Status: entities.OrderStatusApproved, POReceived: true, SentToCustomer: true}, entities.StagePOReceived},
		{"approved without po", entities.Order{Status: entities.OrderStatusApproved, BOQGenerated: true}, entities.StageReadyToSend},
		{"explicit stage overrides flags", entities.Order{WorkflowStage: entities.StageCompleted}, entities.StageCompleted},
		{"explicit stage wins even if behind flags", entities.Order{WorkflowStage: entities.StageEngineering, SentToCustomer: true}, entities.StageEngineering},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.order))
		})
	}
}

func TestProgressFor(t *testing.T) {
	want := map[entities.ETOStatus]int{
		entities.ETOStatusBOQSubmitted:       0,
		entities.ETOStatusEngineeringDesign:  50,
		entities.ETOStatusBOMGeneration:      75,
		entities.ETOStatusManufacturingReady: 100,
	}
	for s, p := range want {
		got, ok := ProgressFor(s)
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
	_, ok := ProgressFor("Unknown")
	assert.False(t, ok)
}

func TestApplyETOStatus(t *testing.T) {
	b := entities.BOQ{}

	changed, err := ApplyETOStatus(&b, entities.ETOStatusBOQSubmitted)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 0, b.EngineeringProgress)

	changed, err = ApplyETOStatus(&b, entities.ETOStatusBOMGeneration)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, entities.ETOStatusBOMGeneration, b.ETOStatus)
	assert.Equal(t, 75, b.EngineeringProgress)

	changed, err = ApplyETOStatus(&b, entities.ETOStatusBOMGeneration)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = ApplyETOStatus(&b, entities.ETOStatusEngineeringDesign)
	assert.True(t, errors.Is(err, entities.ErrInvalidTransition))
	assert.Equal(t, entities.ETOStatusBOMGeneration, b.ETOStatus)
	assert.Equal(t, 75, b.EngineeringProgress)

	_, err = ApplyETOStatus(&b, "Bogus")
	assert.True(t, errors.Is(err, entities.ErrValidation))
}

func TestParseETOStatus(t *testing.T) {
	s, err := ParseETOStatus("ManufacturingReady")
	require.NoError(t, err)
	assert.Equal(t, entities.ETOStatusManufacturingReady, s)

	_, err = ParseETOStatus("ready")
	assert.ErrorIs(t, err, entities.ErrValidation)
}
