package interfaces

import (
	"context"

	"tsmit_os/internal/domain/entities"
)

// ServiceOrderUpdate is a partial update applied to an order document.
// Pointer fields are only written when non-nil; slice fields are only
// written when non-nil (an empty non-nil slice clears the attribute).
// AppendLog and AppendEditLog must be applied with the store's atomic
// list-append primitive so concurrent writers never drop entries.
type ServiceOrderUpdate struct {
	StatusID            *string
	TechnicalSolution   *string
	Attachments         []string
	ConfirmedServiceIDs []string

	ClientID               *string
	ReportedProblem        *string
	CollaboratorName       *string
	CollaboratorEmail      *string
	CollaboratorPhone      *string
	EquipmentType          *string
	EquipmentBrand         *string
	EquipmentModel         *string
	EquipmentSerialNumber  *string

	AppendLog     *entities.LogEntry
	AppendEditLog *entities.EditLogEntry
}

// IServiceOrderRepository abstracts DynamoDB persistence for service
// orders. Reads return the raw document: status and client name resolution
// happens in the use case layer.
//
// NextOrderNumber atomically increments and returns the sequential order
// counter; it must be safe under concurrent order creation.

type IServiceOrderRepository interface {
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Create(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, id string, upd ServiceOrderUpdate) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	NextOrderNumber(ctx context.Context) (int, error)
}
