package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/tenantly/noteboard/internal/domain"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken covers every verification failure: bad format, wrong
// signature, expired, unknown signing method. Callers must not be able to
// tell these apart.
var ErrInvalidToken = errors.New("invalid token")

type identityClaims struct {
	jwt.RegisteredClaims
	Email      string `json:"email"`
	Role       string `json:"role"`
	TenantID   string `json:"tenant_id"`
	TenantSlug string `json:"tenant_slug"`
}

// TokenService issues and verifies signed identity tokens (HS256).
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), now: time.Now}
}

func (s *TokenService) Issue(id domain.Identity) (string, error) {
	now := s.now()
	claims := identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Email:      id.Email,
		Role:       string(id.Role),
		TenantID:   id.TenantID.String(),
		TenantSlug: id.TenantSlug,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) Verify(token string) (domain.Identity, error) {
	var claims identityClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Identity{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Identity{}, ErrInvalidToken
	}
	tenantID, err := uuid.Parse(claims.TenantID)
	if err != nil {
		return domain.Identity{}, ErrInvalidToken
	}
	if !domain.ValidRole(claims.Role) {
		return domain.Identity{}, ErrInvalidToken
	}

	return domain.Identity{
		UserID:     userID,
		Email:      claims.Email,
		Role:       domain.Role(claims.Role),
		TenantID:   tenantID,
		TenantSlug: claims.TenantSlug,
	}, nil
}
