package ports

import (
	"context"
	"time"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

type RegisterInput struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     domain.Role `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenIssuer owns password hashing and the session token envelope.
type TokenIssuer interface {
	HashPassword(plain string) (string, error)
	VerifyPassword(plain, hash string) bool
	Issue(subject string, role domain.Role, ttl time.Duration) (string, *domain.Session, error)
	Verify(token string) (*domain.Session, error)
}

// Authenticator resolves a bearer token to a live principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Principal, *domain.Session, error)
}

type AuthService interface {
	Authenticator
	Register(ctx context.Context, in RegisterInput) (*domain.AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*domain.AuthResult, error)
	Logout(ctx context.Context, session *domain.Session) error
}
