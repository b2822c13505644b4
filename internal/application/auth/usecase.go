package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bafnalights-dot/stock/internal/application/dto"
	"github.com/bafnalights-dot/stock/internal/domain"
	"github.com/bafnalights-dot/stock/internal/domain/entity"
	"github.com/bafnalights-dot/stock/internal/domain/repository"
	"github.com/bafnalights-dot/stock/pkg/jwt"
)

// TokenConfig carries the signing parameters for issued tokens.
type TokenConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase handles admin registration and login.
type UseCase struct {
	admins repository.AdminRepository
	tokens TokenConfig
}

// NewUseCase builds the use case.
func NewUseCase(admins repository.AdminRepository, tokens TokenConfig) *UseCase {
	return &UseCase{admins: admins, tokens: tokens}
}

// Register creates an admin account. Duplicate emails are rejected.
func (uc *UseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return uc.issue(admin)
}

// Login verifies credentials and issues a token. Wrong email and wrong
// password are indistinguishable to the caller.
func (uc *UseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	admin, err := uc.admins.GetByEmail(ctx, email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issue(admin)
}

func (uc *UseCase) issue(admin *entity.Admin) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.tokens.Secret, admin.ID, admin.Email, uc.tokens.Issuer, uc.tokens.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, Email: admin.Email}, nil
}
