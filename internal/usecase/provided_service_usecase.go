package usecase

import (
	"context"
	"errors"
	"strings"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceID   = errors.New("invalid service id")
	ErrInvalidServiceName = errors.New("invalid service name")
	ErrNoClientsSelected  = errors.New("no clients selected")
)

// IProvidedServiceUseCase manages the service catalog, including the bulk
// assignment of a service to a set of clients.

type IProvidedServiceUseCase interface {
	List(ctx context.Context) ([]entities.ProvidedService, error)
	Create(ctx context.Context, s entities.ProvidedService) (entities.ProvidedService, error)
	Delete(ctx context.Context, id string) error
	AssignToClients(ctx context.Context, serviceID string, clientIDs []string) error
}

type ProvidedServiceUseCase struct {
	repo       interfaces.IProvidedServiceRepository
	clientRepo interfaces.IClientRepository
}

var _ IProvidedServiceUseCase = (*ProvidedServiceUseCase)(nil)

func NewProvidedServiceUseCase(repo interfaces.IProvidedServiceRepository, clientRepo interfaces.IClientRepository) *ProvidedServiceUseCase {
	return &ProvidedServiceUseCase{repo: repo, clientRepo: clientRepo}
}

func (u *ProvidedServiceUseCase) List(ctx context.Context) ([]entities.ProvidedService, error) {
	return u.repo.List(ctx)
}

func (u *ProvidedServiceUseCase) Create(ctx context.Context, s entities.ProvidedService) (entities.ProvidedService, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.ProvidedService{}, ErrInvalidServiceName
	}

	s.ID = uuid.NewString()
	return u.repo.Create(ctx, s)
}

func (u *ProvidedServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}
	return u.repo.Delete(ctx, id)
}

// AssignToClients adds the service to each client's contracted set. New
// orders for those clients will include it in their snapshot; existing
// orders keep the snapshot taken at their creation.
func (u *ProvidedServiceUseCase) AssignToClients(ctx context.Context, serviceID string, clientIDs []string) error {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return ErrInvalidServiceID
	}
	if len(clientIDs) == 0 {
		return ErrNoClientsSelected
	}
	return u.clientRepo.AddContractedService(ctx, clientIDs, serviceID)
}
