package users

import (
	"context"
	"errors"
	"time"

	"github.com/ahmedkhaled2030/bedir-group/internal/auth"
	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

// ErrInvalidCredentials is returned for both unknown email and wrong
// password so login failures are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Service encapsulates account business logic
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Register creates an account. The very first account ever created is
// promoted to admin; everyone else gets the regular user role.
func (s *Service) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	return s.repo.Create(ctx, u)
}

// Login verifies credentials and returns the matching user.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}
