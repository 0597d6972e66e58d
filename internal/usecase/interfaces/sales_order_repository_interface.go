package interfaces

//go:generate mockgen -source=sales_order_repository_interface.go -destination=mocks/sales_order_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"eto_pipeline/internal/domain/entities"
)

// ISalesOrderRepository abstracts persistence for sales orders.
//
// Create fails with entities.ErrConcurrencyConflict when a sales order with
// the same id already exists; ids are derived from the quotation id, so this
// is what keeps a quotation from being converted twice.
type ISalesOrderRepository interface {
	Create(ctx context.Context, so entities.SalesOrder) (entities.SalesOrder, error)
	GetByID(ctx context.Context, id string) (entities.SalesOrder, error)
}
