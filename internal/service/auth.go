package service

import (
	"context"
	"errors"

	"github.com/tenantly/noteboard/internal/auth"
	"github.com/tenantly/noteboard/internal/domain"
	"github.com/tenantly/noteboard/internal/store"
	"go.uber.org/zap"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users   domain.UserStore
	tenants domain.TenantStore
	tokens  *auth.TokenService
	logger  *zap.Logger
}

func NewAuthService(users domain.UserStore, tenants domain.TenantStore, tokens *auth.TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tenants: tenants, tokens: tokens, logger: logger}
}

// Login verifies the credentials and issues a token. Unknown email and
// wrong password produce the same error so the response does not reveal
// which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.Identity, error) {
	if email == "" || password == "" {
		return "", domain.Identity{}, ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", domain.Identity{}, ErrInvalidCredentials
		}
		return "", domain.Identity{}, err
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", domain.Identity{}, ErrInvalidCredentials
	}

	tenant, err := s.tenants.GetByID(ctx, user.TenantID)
	if err != nil {
		return "", domain.Identity{}, err
	}

	identity := domain.Identity{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		TenantID:   user.TenantID,
		TenantSlug: tenant.Slug,
	}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return "", domain.Identity{}, err
	}

	return token, identity, nil
}
