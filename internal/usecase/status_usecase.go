package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"tsmit_os/internal/domain/entities"
	"tsmit_os/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrStatusNotFound    = errors.New("status not found")
	ErrInvalidStatusID   = errors.New("invalid status id")
	ErrInvalidStatusName = errors.New("invalid status name")
	ErrNoInitialStatus   = errors.New("no initial status configured")
)

// IStatusUseCase exposes the status registry: the ordered set of workflow
// statuses plus the admin CRUD surface over it.

type IStatusUseCase interface {
	List(ctx context.Context) ([]entities.Status, error)
	GetByID(ctx context.Context, id string) (entities.Status, error)
	Create(ctx context.Context, s entities.Status) (entities.Status, error)
	Update(ctx context.Context, id string, s entities.Status) (entities.Status, error)
	Delete(ctx context.Context, id string) error
	InitialStatus(ctx context.Context) (entities.Status, error)
}

type StatusUseCase struct {
	repo interfaces.IStatusRepository
}

var _ IStatusUseCase = (*StatusUseCase)(nil)

func NewStatusUseCase(repo interfaces.IStatusRepository) *StatusUseCase {
	return &StatusUseCase{repo: repo}
}

// List returns all statuses ascending by their order field.
func (u *StatusUseCase) List(ctx context.Context) ([]entities.Status, error) {
	statuses, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Order < statuses[j].Order
	})
	return statuses, nil
}

func (u *StatusUseCase) GetByID(ctx context.Context, id string) (entities.Status, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Status{}, ErrInvalidStatusID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Status{}, err
	}
	if s.ID == "" {
		return entities.Status{}, ErrStatusNotFound
	}
	return s, nil
}

func (u *StatusUseCase) Create(ctx context.Context, s entities.Status) (entities.Status, error) {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.Status{}, ErrInvalidStatusName
	}

	s.ID = uuid.NewString()
	return u.repo.Create(ctx, s)
}

func (u *StatusUseCase) Update(ctx context.Context, id string, s entities.Status) (entities.Status, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Status{}, ErrInvalidStatusID
	}
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return entities.Status{}, ErrInvalidStatusName
	}

	s.ID = id
	updated, err := u.repo.Update(ctx, id, s)
	if err != nil {
		return entities.Status{}, err
	}
	if updated.ID == "" {
		return entities.Status{}, ErrStatusNotFound
	}
	return updated, nil
}

// Delete removes a status. Orders still referencing it resolve to the
// Unknown sentinel on read.
func (u *StatusUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidStatusID
	}
	return u.repo.Delete(ctx, id)
}

// InitialStatus returns the starting point for newly created orders: the
// lowest-ordered status flagged as initial. Its absence is an error, not a
// silent default.
func (u *StatusUseCase) InitialStatus(ctx context.Context) (entities.Status, error) {
	statuses, err := u.List(ctx)
	if err != nil {
		return entities.Status{}, err
	}
	for _, s := range statuses {
		if s.IsInitial {
			return s, nil
		}
	}
	return entities.Status{}, ErrNoInitialStatus
}
