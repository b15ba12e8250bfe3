package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelhub/padel-booking-backend/internal/auth"
	"github.com/padelhub/padel-booking-backend/internal/user"
)

func newService() user.Service {
	// MinCost keeps the suite fast; the hashing contract is the same.
	return user.NewService(user.NewMemoryRepository(), auth.NewBcryptPasswordHasherWithCost(4))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	s := newService()

	u, err := s.Register(ctx, user.RegisterRequest{
		Email:     "  Ana@Example.com ",
		Password:  "secret-password",
		FirstName: "Ana",
		LastName:  "García",
		Phone:     "+34600000000",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email, "email is normalized")
	assert.True(t, u.IsActive)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "secret-password", u.PasswordHash)

	t.Run("duplicate email", func(t *testing.T) {
		_, err := s.Register(ctx, user.RegisterRequest{
			Email:    "ana@example.com",
			Password: "another-password",
		})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})

	t.Run("duplicate email differing only in case", func(t *testing.T) {
		_, err := s.Register(ctx, user.RegisterRequest{
			Email:    "ANA@EXAMPLE.COM",
			Password: "another-password",
		})
		assert.ErrorIs(t, err, user.ErrEmailAlreadyUsed)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := s.Register(ctx, user.RegisterRequest{
			Email:    "bob@example.com",
			Password: "short",
		})
		assert.Error(t, err)
	})

	t.Run("missing email", func(t *testing.T) {
		_, err := s.Register(ctx, user.RegisterRequest{Password: "secret-password"})
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	s := newService()

	_, err := s.Register(ctx, user.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := s.Login(ctx, "Ana@Example.com", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(ctx, "ana@example.com", "wrong-password")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := s.Login(ctx, "nobody@example.com", "secret-password")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := s.Login(ctx, "ana@example.com", "")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})
}
