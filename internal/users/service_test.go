package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedkhaled2030/bedir-group/internal/models"
)

func TestRegister_FirstUserBecomesAdmin(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	first, err := svc.Register(ctx, "owner@example.com", "Owner", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)
	assert.False(t, first.ID.IsZero())
	assert.False(t, first.CreatedAt.IsZero())

	second, err := svc.Register(ctx, "editor@example.com", "Editor", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, second.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, "owner@example.com", "Owner", "secret123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "owner@example.com", "Impostor", "other-pass")
	require.ErrorIs(t, err, ErrEmailTaken)

	// no second record was created
	repo := NewMemoryRepository()
	svc2 := NewService(repo)
	_, _ = svc2.Register(ctx, "owner@example.com", "Owner", "secret123")
	_, _ = svc2.Register(ctx, "owner@example.com", "Impostor", "other-pass")
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestLogin(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.Register(ctx, "owner@example.com", "Owner", "secret123")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "owner@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = svc.Login(ctx, "owner@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestPasswordIsStoredHashed(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Register(ctx, "owner@example.com", "Owner", "secret123")
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}
