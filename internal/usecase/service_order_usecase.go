package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/domain/workflow"
	"tsmit_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceOrderNotFound       = errors.New("service order not found")
	ErrInvalidServiceOrderID      = errors.New("invalid service order id")
	ErrInvalidClientID            = errors.New("invalid client id")
	ErrClientNotFound             = errors.New("client not found")
	ErrInvalidAnalyst             = errors.New("invalid analyst")
	ErrInvalidResponsible         = errors.New("invalid responsible")
	ErrInvalidTransition          = errors.New("invalid status transition")
	ErrTechnicalSolutionRequired  = errors.New("technical solution required for pickup status")
	ErrServicesNotConfirmed       = errors.New("contracted services not confirmed")
)

const clientNotFoundName = "Cliente não encontrado"

// CreateOrderCommand carries the fields the intake form collects. Order
// number, initial status, logs and the contracted-services snapshot are
// derived here, never supplied by the caller.
type CreateOrderCommand struct {
	ClientID        string
	Collaborator    entities.Collaborator
	Equipment       entities.Equipment
	ReportedProblem string
	Analyst         string
}

// UpdateStatusCommand is the input to the order update engine. Privileged
// asserts the actor's administrative override; authentication itself is an
// external collaborator, so the capability arrives as a fact, not a token.
// Nil pointer / nil slice fields mean "leave unchanged".
type UpdateStatusCommand struct {
	NewStatusID         string
	Responsible         string
	Privileged          bool
	TechnicalSolution   *string
	Observation         string
	Attachments         []string
	ConfirmedServiceIDs []string
}

// UpdateDetailsCommand is the input to the edit audit engine. Only non-nil
// fields are compared and applied.
type UpdateDetailsCommand struct {
	Responsible       string
	ClientID          *string
	ReportedProblem   *string
	TechnicalSolution *string
	Collaborator      CollaboratorPatch
	Equipment         EquipmentPatch
}

type CollaboratorPatch struct {
	Name  *string
	Email *string
	Phone *string
}

type EquipmentPatch struct {
	Type         *string
	Brand        *string
	Model        *string
	SerialNumber *string
}

// NotificationResult reports each channel's outcome independently. A failed
// channel never rolls back the order mutation.
type NotificationResult struct {
	EmailSent     bool
	EmailError    string
	WhatsappSent  bool
	WhatsappError string
}

// UpdateStatusResult is the engine's response envelope: the refreshed order
// plus per-channel notification outcome.
type UpdateStatusResult struct {
	Order         entities.ServiceOrder
	Notifications NotificationResult
}

// IServiceOrderUseCase exposes the service-order lifecycle: creation with
// atomic numbering, reads with status/client resolution, the status update
// engine and the detail edit audit.

type IServiceOrderUseCase interface {
	Create(ctx context.Context, cmd CreateOrderCommand) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
	Transitions(ctx context.Context, id string, privileged bool) ([]workflow.Candidate, error)
	UpdateStatus(ctx context.Context, id string, cmd UpdateStatusCommand) (UpdateStatusResult, error)
	UpdateDetails(ctx context.Context, id string, cmd UpdateDetailsCommand) (entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	repo        interfaces.IServiceOrderRepository
	statusRepo  interfaces.IStatusRepository
	clientRepo  interfaces.IClientRepository
	serviceRepo interfaces.IProvidedServiceRepository
	email       interfaces.IEmailSender
	whatsapp    interfaces.IWhatsappSender
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	statusRepo interfaces.IStatusRepository,
	clientRepo interfaces.IClientRepository,
	serviceRepo interfaces.IProvidedServiceRepository,
	email interfaces.IEmailSender,
	whatsapp interfaces.IWhatsappSender,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		repo:        repo,
		statusRepo:  statusRepo,
		clientRepo:  clientRepo,
		serviceRepo: serviceRepo,
		email:       email,
		whatsapp:    whatsapp,
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, cmd CreateOrderCommand) (entities.ServiceOrder, error) {
	cmd.ClientID = strings.TrimSpace(cmd.ClientID)
	if cmd.ClientID == "" {
		return entities.ServiceOrder{}, ErrInvalidClientID
	}
	cmd.Analyst = strings.TrimSpace(cmd.Analyst)
	if cmd.Analyst == "" {
		return entities.ServiceOrder{}, ErrInvalidAnalyst
	}

	client, err := u.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if client.ID == "" {
		return entities.ServiceOrder{}, ErrClientNotFound
	}

	initial, err := u.initialStatus(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	seq, err := u.repo.NextOrderNumber(ctx)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	// Snapshot the client's contracted services as they stand now. The
	// order keeps this copy even if the contract changes later.
	var contracted []entities.ProvidedService
	if len(client.ContractedServiceIDs) > 0 {
		contracted, err = u.serviceRepo.GetByIDs(ctx, client.ContractedServiceIDs)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
	}

	now := time.Now().UTC()
	order := entities.ServiceOrder{
		ID:              uuid.NewString(),
		OrderNumber:     fmt.Sprintf("OS-%03d", seq),
		ClientID:        client.ID,
		Collaborator:    cmd.Collaborator,
		Equipment:       cmd.Equipment,
		ReportedProblem: cmd.ReportedProblem,
		Analyst:         cmd.Analyst,
		StatusID:        initial.ID,
		CreatedAt:       now,
		Attachments:     []string{},
		ContractedServices:  contracted,
		ConfirmedServiceIDs: []string{},
		Logs: []entities.LogEntry{{
			Timestamp:   now,
			Responsible: cmd.Analyst,
			FromStatus:  initial.ID,
			ToStatus:    initial.ID,
			Observation: "OS criada no sistema.",
		}},
		EditLogs: []entities.EditLogEntry{},
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	log.Printf("[os][usecase] create success order_id=%s order_number=%s status_id=%s", created.ID, created.OrderNumber, created.StatusID)

	return u.resolve(ctx, created), nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	statuses, err := u.statusRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	statusByID := make(map[string]entities.Status, len(statuses))
	for _, s := range statuses {
		statusByID[s.ID] = s
	}
	clientByID := make(map[string]entities.Client, len(clients))
	for _, c := range clients {
		clientByID[c.ID] = c
	}

	for i := range orders {
		if s, ok := statusByID[orders[i].StatusID]; ok {
			orders[i].Status = s
		} else {
			orders[i].Status = entities.UnknownStatus()
		}
		if c, ok := clientByID[orders[i].ClientID]; ok {
			orders[i].ClientName = c.Name
		} else {
			orders[i].ClientName = clientNotFoundName
		}
	}
	return orders, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidServiceOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == "" {
		return entities.ServiceOrder{}, ErrServiceOrderNotFound
	}
	return u.resolve(ctx, order), nil
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceOrderID
	}
	return u.repo.Delete(ctx, id)
}

// Transitions returns the candidate target statuses for the order's current
// status, ordered for presentation (backward moves first).
func (u *ServiceOrderUseCase) Transitions(ctx context.Context, id string, privileged bool) ([]workflow.Candidate, error) {
	order, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	statuses, err := u.statusRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return workflow.ComputeCandidates(order.Status, statuses, privileged), nil
}

// resolve joins the status and client name onto a raw order document. A
// dangling status reference resolves to the Unknown sentinel instead of
// failing.
func (u *ServiceOrderUseCase) resolve(ctx context.Context, order entities.ServiceOrder) entities.ServiceOrder {
	status, err := u.statusRepo.GetByID(ctx, order.StatusID)
	if err != nil || status.ID == "" {
		if err != nil {
			log.Printf("[os][usecase] status lookup failed order_id=%s status_id=%s err=%v", order.ID, order.StatusID, err)
		}
		order.Status = entities.UnknownStatus()
	} else {
		order.Status = status
	}

	client, err := u.clientRepo.GetByID(ctx, order.ClientID)
	if err != nil || client.ID == "" {
		order.ClientName = clientNotFoundName
	} else {
		order.ClientName = client.Name
	}
	return order
}

func (u *ServiceOrderUseCase) initialStatus(ctx context.Context) (entities.Status, error) {
	statuses, err := u.statusRepo.List(ctx)
	if err != nil {
		return entities.Status{}, err
	}
	var found *entities.Status
	for i := range statuses {
		s := statuses[i]
		if s.IsInitial && (found == nil || s.Order < found.Order) {
			found = &statuses[i]
		}
	}
	if found == nil {
		return entities.Status{}, ErrNoInitialStatus
	}
	return *found, nil
}
