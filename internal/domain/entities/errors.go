package entities

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the domain packages and the use cases.
//
// Callers classify failures with errors.Is:
//   - ErrValidation: malformed input, rejected before any mutation
//   - ErrInvalidTransition: a stage/conversion precondition is not met
//   - ErrNotFound: a referenced id is absent
//   - ErrConcurrencyConflict: an optimistic-concurrency write lost a race
//
// A repeated conversion is not an error; it reports AlreadyConverted on the
// conversion result instead.
var (
	ErrValidation          = errors.New("validation error")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrNotFound            = errors.New("not found")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// TransitionError carries the unmet precondition of a refused transition.
type TransitionError struct {
	Op        string
	Condition string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidTransition.Error(), e.Op, e.Condition)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

func NewTransitionError(op, condition string) error {
	return &TransitionError{Op: op, Condition: condition}
}

// Validationf builds an ErrValidation-classified error.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
