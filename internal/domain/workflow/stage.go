// Package workflow derives an order's pipeline stage from its completion
// flags and keeps a BOQ's engineering progress in step with its ETO status.
package workflow

import (
	"eto_pipeline/internal/domain/entities"
)

// Resolve returns the stored stage when one was set explicitly. Otherwise
// the flags are evaluated as a priority ladder, first match wins. Flags set
// out of order degrade to the highest-priority match.
func Resolve(o entities.Order) entities.Stage {
	if o.WorkflowStage != "" {
		return o.WorkflowStage
	}
	switch {
	case o.Status == entities.OrderStatusApproved && o.POReceived:
		return entities.StagePOReceived
	case o.SentToCustomer:
		return entities.StageCustomerReview
	case o.BOQGenerated:
		return entities.StageReadyToSend
	case o.EngineeringDrawingCreated:
		return entities.StageBOQPending
	case o.EngineeringProjectID != "":
		return entities.StageEngineering
	default:
		return entities.StageDraft
	}
}

var etoProgress = map[entities.ETOStatus]int{
	entities.ETOStatusBOQSubmitted:       0,
	entities.ETOStatusEngineeringDesign:  50,
	entities.ETOStatusBOMGeneration:      75,
	entities.ETOStatusManufacturingReady: 100,
}

// ProgressFor maps an ETO status to its engineering progress.
func ProgressFor(s entities.ETOStatus) (int, bool) {
	p, ok := etoProgress[s]
	return p, ok
}

// ParseETOStatus accepts the canonical status names only.
func ParseETOStatus(s string) (entities.ETOStatus, error) {
	st := entities.ETOStatus(s)
	if _, ok := etoProgress[st]; !ok {
		return "", entities.Validationf("unknown eto status %q", s)
	}
	return st, nil
}

// ApplyETOStatus sets the status and its mapped progress together. Progress
// never decreases: a status mapped below the current one is refused, and
// the current status is a no-op (changed=false).
func ApplyETOStatus(b *entities.BOQ, s entities.ETOStatus) (changed bool, err error) {
	p, ok := ProgressFor(s)
	if !ok {
		return false, entities.Validationf("unknown eto status %q", s)
	}
	if b.ETOStatus == s {
		return false, nil
	}
	if b.ETOStatus != "" && p < b.EngineeringProgress {
		return false, entities.NewTransitionError("set eto status",
			"cannot move from "+string(b.ETOStatus)+" back to "+string(s))
	}
	b.ETOStatus = s
	b.EngineeringProgress = p
	return true, nil
}
