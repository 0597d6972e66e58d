package interfaces

//go:generate mockgen -source=boq_repository_interface.go -destination=mocks/boq_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"eto_pipeline/internal/domain/entities"
)

// IBOQRepository abstracts persistence for bills of quantities. Same
// conventions as IOrderRepository; Create refuses an existing id.
type IBOQRepository interface {
	Create(ctx context.Context, b entities.BOQ) (entities.BOQ, error)
	GetByID(ctx context.Context, id string) (entities.BOQ, error)
	Update(ctx context.Context, b entities.BOQ, expectedVersion int64) (entities.BOQ, error)
}
