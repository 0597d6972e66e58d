package interfaces

//go:generate mockgen -source=production_repository_interface.go -destination=mocks/production_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"eto_pipeline/internal/domain/entities"
)

type IWorkOrderRepository interface {
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Update(ctx context.Context, w entities.WorkOrder, expectedVersion int64) (entities.WorkOrder, error)
}

type IJourneyRepository interface {
	Create(ctx context.Context, j entities.Journey) (entities.Journey, error)
	GetByID(ctx context.Context, id string) (entities.Journey, error)
	Update(ctx context.Context, j entities.Journey, expectedVersion int64) (entities.Journey, error)
}
