package interfaces

import (
	"context"

	"tsmit_os/internal/domain/entities"
)

// IStatusRepository abstracts DynamoDB persistence for workflow statuses.
//
// GetByID returns a zero-value Status (empty ID) when the document does not
// exist; it never fabricates default data. Deciding to substitute the
// Unknown sentinel is the caller's job.

type IStatusRepository interface {
	List(ctx context.Context) ([]entities.Status, error)
	GetByID(ctx context.Context, id string) (entities.Status, error)
	Create(ctx context.Context, s entities.Status) (entities.Status, error)
	Update(ctx context.Context, id string, s entities.Status) (entities.Status, error)
	Delete(ctx context.Context, id string) error
}
