package interfaces

import (
	"context"

	"tsmit_os/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for clients.
//
// AddContractedService appends a service id to each listed client's
// contracted set (idempotent per client).

type IClientRepository interface {
	List(ctx context.Context) ([]entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	Update(ctx context.Context, id string, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	AddContractedService(ctx context.Context, clientIDs []string, serviceID string) error
}
