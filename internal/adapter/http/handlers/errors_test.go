package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"eto_pipeline/internal/domain/entities"
	"eto_pipeline/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", usecase.ErrInvalidPONumber, http.StatusBadRequest, "INVALID_REQUEST"},
		{"order not found", usecase.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{"wrapped journey not found", fmt.Errorf("load: %w", usecase.ErrJourneyNotFound), http.StatusNotFound, "JOURNEY_NOT_FOUND"},
		{"bare not found", fmt.Errorf("step %q: %w", "Paint", entities.ErrNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"transition", entities.NewTransitionError("send to customer", "boq must be generated first"), http.StatusConflict, "INVALID_TRANSITION"},
		{"conflict", entities.ErrConcurrencyConflict, http.StatusConflict, "CONCURRENCY_CONFLICT"},
		{"other", errors.New("x"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}

	if got := mapError(entities.NewTransitionError("send to customer", "boq must be generated first")); got.Message != "send to customer: boq must be generated first" {
		t.Fatalf("expected the unmet condition in the message, got %q", got.Message)
	}
}
