package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

const tokenTypeBearer = "bearer"

// AuthService implements registration, login, caller resolution and logout.
type AuthService struct {
	repo      ports.PrincipalRepository
	tokens    ports.TokenIssuer
	revoked   ports.RevocationStore
	validator ports.Validator
	logger    zerolog.Logger
	now       func() time.Time

	// dummyHash keeps login timing flat when the email is unknown.
	dummyHash string
}

func NewAuthService(
	repo ports.PrincipalRepository,
	tokens ports.TokenIssuer,
	revoked ports.RevocationStore,
	validator ports.Validator,
	logger zerolog.Logger,
) *AuthService {
	dummy, _ := tokens.HashPassword("timing-equalizer")
	return &AuthService{
		repo:      repo,
		tokens:    tokens,
		revoked:   revoked,
		validator: validator,
		logger:    logger,
		now:       time.Now,
		dummyHash: dummy,
	}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.AuthResult, error) {
	principal, err := s.create(ctx, uuid.NewString(), in)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("principal_id", principal.ID).Str("role", string(principal.Role)).Msg("principal registered")
	return s.issue(principal)
}

// Provision creates a principal with a fixed id and issues no token. Used to load
// fixture accounts; a taken email yields domain.ErrEmailTaken.
func (s *AuthService) Provision(ctx context.Context, id string, in ports.RegisterInput) (*domain.Principal, error) {
	return s.create(ctx, id, in)
}

func (s *AuthService) create(ctx context.Context, id string, in ports.RegisterInput) (*domain.Principal, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}
	if in.Role == "" {
		in.Role = domain.RoleStaff
	}
	if !in.Role.Valid() {
		return nil, &domain.ValidationError{Reason: fmt.Sprintf("role %q is not a known role", in.Role)}
	}

	email := domain.NormalizeEmail(in.Email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.tokens.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	avatar := domain.AvatarURL(in.Name)
	principal := &domain.Principal{
		ID:           id,
		Name:         in.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		Avatar:       &avatar,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, principal); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, fmt.Errorf("create principal: %w", err)
	}
	return principal, nil
}

func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*domain.AuthResult, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, err
	}

	principal, err := s.repo.FindByEmail(ctx, domain.NormalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.tokens.VerifyPassword(in.Password, s.dummyHash)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if !s.tokens.VerifyPassword(in.Password, principal.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(principal)
}

// Authenticate resolves a bearer token to the principal as currently stored.
// The stored role wins over the role embedded in the token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, *domain.Session, error) {
	if token == "" {
		return nil, nil, domain.ErrUnauthenticated
	}

	session, err := s.tokens.Verify(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	if s.revoked != nil && session.TokenID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, session.TokenID)
		if err != nil {
			return nil, nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, nil, fmt.Errorf("%w: token revoked", domain.ErrUnauthenticated)
		}
	}

	principal, err := s.repo.FindByID(ctx, session.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: unknown subject", domain.ErrUnauthenticated)
		}
		return nil, nil, fmt.Errorf("lookup principal: %w", err)
	}
	return principal, session, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, session *domain.Session) error {
	if s.revoked == nil || session == nil || session.TokenID == "" {
		return nil
	}
	if err := s.revoked.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	s.logger.Info().Str("principal_id", session.Subject).Msg("session revoked")
	return nil
}

func (s *AuthService) issue(p *domain.Principal) (*domain.AuthResult, error) {
	token, _, err := s.tokens.Issue(p.ID, p.Role, 0)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{AccessToken: token, TokenType: tokenTypeBearer, User: p}, nil
}
