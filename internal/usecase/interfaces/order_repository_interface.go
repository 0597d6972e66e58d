package interfaces

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"eto_pipeline/internal/domain/entities"
)

// IOrderRepository abstracts persistence for quotations (orders).
//
// Reads of an absent id return a zero Order (empty ID) and a nil error.
// Update is a compare-and-set: it stores o with Version = expectedVersion+1
// only if the stored version still equals expectedVersion, and returns
// entities.ErrConcurrencyConflict otherwise.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error)
}
