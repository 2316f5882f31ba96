package users

import (
	"context"
	"errors"
	"strings"

	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/apperror"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/models"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/observability"
	"github.com/PCPJ19/boilerplate-project-exercisetracker/internal/store"
)

// Store defines the interface for user persistence.
type Store interface {
	CreateUser(ctx context.Context, username string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Service registers and lists users.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create registers username. A blank name is a validation error and a taken
// one a conflict.
func (s *Service) Create(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperror.NewValidationError("username is required", nil)
	}

	u, err := s.store.CreateUser(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUsername) {
			return nil, apperror.NewConflictError("Username already taken", err)
		}
		return nil, apperror.NewDatabaseError("create user", err)
	}
	observability.RecordUserCreated()
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, apperror.NewDatabaseError("list users", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}
