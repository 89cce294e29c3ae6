package interfaces

import (
	"context"

	"tsmit_os/internal/domain/entities"
)

// IProvidedServiceRepository abstracts DynamoDB persistence for the
// provided-services catalog.

type IProvidedServiceRepository interface {
	List(ctx context.Context) ([]entities.ProvidedService, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.ProvidedService, error)
	Create(ctx context.Context, s entities.ProvidedService) (entities.ProvidedService, error)
	Delete(ctx context.Context, id string) error
}
