package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafnalights-dot/stock/internal/application/auth"
	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/infrastructure/memory"
	"github.com/bafnalights-dot/stock/pkg/jwt"
)

func newUseCase(t *testing.T) *auth.UseCase {
	t.Helper()
	store := memory.New()
	return auth.NewUseCase(store.Admins(), auth.TokenConfig{
		Secret:     "test-secret",
		Issuer:     "stock-test",
		ExpMinutes: 15,
	})
}

func TestRegisterAndLogin(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	reg, err := uc.Register(ctx, dto.RegisterRequest{Email: "Admin@Example.com", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", reg.Email)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "secret-password"})
	require.NoError(t, err)

	adminID, email, err := jwt.Parse("test-secret", resp.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, adminID)
	assert.Equal(t, "admin@example.com", email)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret-password"})
	require.NoError(t, err)
	_, err = uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret-password"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_WeakPassword(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@b.com", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_BadCredentials(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Email: "a@b.com", Password: "secret-password"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "a@b.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ghost@b.com", Password: "secret-password"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
