package interfaces

//go:generate mockgen -source=drawing_repository_interface.go -destination=mocks/drawing_repository_interface_mock.go -package=mock_interfaces

import (
	"context"

	"eto_pipeline/internal/domain/entities"
)

type IDrawingRepository interface {
	Create(ctx context.Context, d entities.EngineeringDrawing) (entities.EngineeringDrawing, error)
	GetByID(ctx context.Context, id string) (entities.EngineeringDrawing, error)
	Update(ctx context.Context, d entities.EngineeringDrawing, expectedVersion int64) (entities.EngineeringDrawing, error)
}
