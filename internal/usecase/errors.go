package usecase

import (
	"fmt"

	"eto_pipeline/internal/domain/entities"
)

var (
	ErrOrderNotFound      = fmt.Errorf("order %w", entities.ErrNotFound)
	ErrBOQNotFound        = fmt.Errorf("boq %w", entities.ErrNotFound)
	ErrDrawingNotFound    = fmt.Errorf("drawing %w", entities.ErrNotFound)
	ErrSalesOrderNotFound = fmt.Errorf("sales order %w", entities.ErrNotFound)
	ErrWorkOrderNotFound  = fmt.Errorf("work order %w", entities.ErrNotFound)
	ErrJourneyNotFound    = fmt.Errorf("journey %w", entities.ErrNotFound)
	ErrLineItemNotFound   = fmt.Errorf("line item %w", entities.ErrNotFound)

	ErrInvalidOrderID      = fmt.Errorf("%w: invalid order id", entities.ErrValidation)
	ErrInvalidID           = fmt.Errorf("%w: invalid id", entities.ErrValidation)
	ErrInvalidPONumber     = fmt.Errorf("%w: po number must not be empty", entities.ErrValidation)
	ErrInvalidCustomerName = fmt.Errorf("%w: customer name must not be empty", entities.ErrValidation)
)
