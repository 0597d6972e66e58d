// Package production tracks work order status, progress and the step list of
// production journeys.
package production

import (
	"fmt"
	"strings"

	"eto_pipeline/internal/domain/entities"
)

const (
	startedProgress   = 10
	completedProgress = 90
	approvedProgress  = 100
)

var workOrderTransitions = map[entities.WorkOrderStatus][]entities.WorkOrderStatus{
	entities.WorkOrderStatusPlanned:    {entities.WorkOrderStatusInProgress, entities.WorkOrderStatusCancelled},
	entities.WorkOrderStatusInProgress: {entities.WorkOrderStatusCompleted, entities.WorkOrderStatusOnHold, entities.WorkOrderStatusCancelled},
	entities.WorkOrderStatusOnHold:     {entities.WorkOrderStatusInProgress, entities.WorkOrderStatusCancelled},
	entities.WorkOrderStatusCompleted:  {entities.WorkOrderStatusQualityApproved},
}

// ParseWorkOrderStatus matches the status names case-insensitively.
func ParseWorkOrderStatus(s string) (entities.WorkOrderStatus, error) {
	for _, st := range []entities.WorkOrderStatus{
		entities.WorkOrderStatusPlanned,
		entities.WorkOrderStatusInProgress,
		entities.WorkOrderStatusOnHold,
		entities.WorkOrderStatusCompleted,
		entities.WorkOrderStatusQualityApproved,
		entities.WorkOrderStatusCancelled,
	} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", entities.Validationf("unknown work order status %q", s)
}

// CanTransition reports whether from → to is an allowed work order move.
func CanTransition(from, to entities.WorkOrderStatus) bool {
	for _, next := range workOrderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Advance moves the work order to a new status and applies the progress bump
// tied to the transition. Requesting the current status is a no-op.
func Advance(w *entities.WorkOrder, to entities.WorkOrderStatus) (changed bool, err error) {
	if w.Status == to {
		return false, nil
	}
	if !CanTransition(w.Status, to) {
		return false, entities.NewTransitionError("advance work order",
			fmt.Sprintf("%s cannot move to %s", w.Status, to))
	}
	from := w.Status
	w.Status = to
	switch {
	case to == entities.WorkOrderStatusInProgress && from == entities.WorkOrderStatusPlanned:
		w.Progress = max(w.Progress, startedProgress)
	case to == entities.WorkOrderStatusCompleted:
		w.Progress = max(w.Progress, completedProgress)
	case to == entities.WorkOrderStatusQualityApproved:
		w.Progress = approvedProgress
	}
	return true, nil
}

// SetProgress is the manual override; out-of-range values are clamped.
func SetProgress(w *entities.WorkOrder, p int) {
	w.Progress = Clamp(p)
}

// Clamp bounds a progress value to 0..100.
func Clamp(p int) int {
	return min(max(p, 0), 100)
}

// NewSteps builds a pending step list.
func NewSteps(names []string) []entities.Step {
	steps := make([]entities.Step, len(names))
	for i, n := range names {
		steps[i] = entities.Step{Name: n, Status: entities.StepStatusPending}
	}
	return steps
}

// ParseStepStatus accepts "pending", "in-progress" and "completed".
func ParseStepStatus(s string) (entities.StepStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(entities.StepStatusPending):
		return entities.StepStatusPending, nil
	case string(entities.StepStatusInProgress), "in_progress", "inprogress":
		return entities.StepStatusInProgress, nil
	case string(entities.StepStatusCompleted):
		return entities.StepStatusCompleted, nil
	}
	return "", entities.Validationf("unknown step status %q", s)
}

// SetStepStatus updates a named step. The setup step of a journey is derived
// and cannot be set.
func SetStepStatus(steps []entities.Step, name string, status entities.StepStatus) error {
	if strings.EqualFold(name, entities.SetupStep) {
		return entities.NewTransitionError("set step status", "the Setup step follows resource assignment")
	}
	for i := range steps {
		if strings.EqualFold(steps[i].Name, name) {
			steps[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("step %q: %w", name, entities.ErrNotFound)
}

// View returns the journey as callers see it: Setup derived from the
// assigned resources, progress derived from the steps.
func View(j entities.Journey) entities.Journey {
	v := j.Clone()
	for i := range v.Steps {
		if !strings.EqualFold(v.Steps[i].Name, entities.SetupStep) {
			continue
		}
		if len(v.Workstations) > 0 && len(v.Operators) > 0 {
			v.Steps[i].Status = entities.StepStatusCompleted
		} else {
			v.Steps[i].Status = entities.StepStatusPending
		}
	}
	v.Progress = StepProgress(v.Steps)
	return v
}

// StepProgress is the share of completed steps, rounded down.
func StepProgress(steps []entities.Step) int {
	if len(steps) == 0 {
		return 0
	}
	done := 0
	for _, s := range steps {
		if s.Status == entities.StepStatusCompleted {
			done++
		}
	}
	return done * 100 / len(steps)
}

// ParseJourneyStatus matches the status names case-insensitively.
func ParseJourneyStatus(s string) (entities.JourneyStatus, error) {
	for _, st := range []entities.JourneyStatus{
		entities.JourneyStatusActive,
		entities.JourneyStatusPaused,
		entities.JourneyStatusCompleted,
	} {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", entities.Validationf("unknown journey status %q", s)
}

// SetJourneyStatus allows Active↔Paused and Active→Completed; completion
// needs every step (as viewed) completed.
func SetJourneyStatus(j *entities.Journey, to entities.JourneyStatus) (changed bool, err error) {
	if j.Status == to {
		return false, nil
	}
	switch {
	case j.Status == entities.JourneyStatusActive && to == entities.JourneyStatusPaused,
		j.Status == entities.JourneyStatusPaused && to == entities.JourneyStatusActive:
	case j.Status == entities.JourneyStatusActive && to == entities.JourneyStatusCompleted:
		if StepProgress(View(*j).Steps) < 100 {
			return false, entities.NewTransitionError("complete journey", "all steps must be completed")
		}
	default:
		return false, entities.NewTransitionError("set journey status",
			fmt.Sprintf("%s cannot move to %s", j.Status, to))
	}
	j.Status = to
	return true, nil
}
