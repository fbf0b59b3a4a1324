package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

func newTestAuthService(t *testing.T) (*AuthService, *stubPrincipalRepo, *stubRevocations) {
	t.Helper()
	repo := newStubPrincipalRepo()
	revoked := newStubRevocations()
	return NewAuthService(repo, newTestTokenService(t), revoked, testValidator, zerolog.Nop()), repo, revoked
}

func TestAuthService_RegisterDefaultsAndToken(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	res, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "Alice Moreau",
		Email:    "Alice@Example.com",
		Password: "s3cret!",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.TokenType != "bearer" || res.AccessToken == "" {
		t.Fatalf("unexpected token envelope: %+v", res)
	}
	if res.User.Role != domain.RoleStaff {
		t.Fatalf("expected default role Staff, got %q", res.User.Role)
	}
	if res.User.Email != "alice@example.com" {
		t.Fatalf("expected normalized email, got %q", res.User.Email)
	}
	if res.User.Avatar == nil || !strings.Contains(*res.User.Avatar, "name=Alice+Moreau") {
		t.Fatalf("unexpected avatar: %v", res.User.Avatar)
	}
	if res.User.PasswordHash == "s3cret!" {
		t.Fatalf("password stored in clear")
	}
}

func TestAuthService_RegisterDuplicateEmailConflicts(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()
	in := ports.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "pw"}

	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	in.Email = "ALICE@Example.com"
	_, err := svc.Register(ctx, in)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthService_RegisterRejectsBadInput(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()

	cases := map[string]ports.RegisterInput{
		"bad email":    {Name: "A", Email: "not-an-email", Password: "pw"},
		"no password":  {Name: "A", Email: "a@example.com"},
		"unknown role": {Name: "A", Email: "a@example.com", Password: "pw", Role: "Janitor"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Register(ctx, in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	ctx := context.Background()
	if _, err := svc.Register(ctx, ports.RegisterInput{Name: "Admin", Email: "admin@nexushealth.com", Password: "admin123", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(ctx, ports.LoginInput{Email: "admin@nexushealth.com", Password: "admin123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role %q", res.User.Role)
	}

	if _, err := svc.Login(ctx, ports.LoginInput{Email: "admin@nexushealth.com", Password: "wrong"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, ports.LoginInput{Email: "nobody@nexushealth.com", Password: "admin123"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_AuthenticateStates(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()
	res, err := svc.Register(ctx, ports.RegisterInput{Name: "Nurse Joy", Email: "joy@example.com", Password: "pw", Role: domain.RoleNurse})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	principal, session, err := svc.Authenticate(ctx, res.AccessToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if principal.ID != res.User.ID || session.Subject != res.User.ID {
		t.Fatalf("resolved wrong principal")
	}

	if _, _, err := svc.Authenticate(ctx, ""); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("no token: expected ErrUnauthenticated, got %v", err)
	}
	if _, _, err := svc.Authenticate(ctx, "garbage"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("bad token: expected ErrUnauthenticated, got %v", err)
	}

	repo.remove(res.User.ID)
	if _, _, err := svc.Authenticate(ctx, res.AccessToken); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("deleted subject: expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_AuthenticateUsesStoredRole(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()
	res, err := svc.Register(ctx, ports.RegisterInput{Name: "Dr. House", Email: "house@example.com", Password: "pw", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	repo.mu.Lock()
	repo.byID[res.User.ID].Role = domain.RoleDoctor
	repo.mu.Unlock()

	principal, _, err := svc.Authenticate(ctx, res.AccessToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if principal.Role != domain.RoleDoctor {
		t.Fatalf("expected demoted role from store, got %q", principal.Role)
	}
}

func TestAuthService_LogoutRevokesToken(t *testing.T) {
	svc, _, revoked := newTestAuthService(t)
	ctx := context.Background()
	res, err := svc.Register(ctx, ports.RegisterInput{Name: "Temp", Email: "temp@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	_, session, err := svc.Authenticate(ctx, res.AccessToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if err := svc.Logout(ctx, session); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if until, ok := revoked.revoked[session.TokenID]; !ok || !until.Equal(session.ExpiresAt) {
		t.Fatalf("token not revoked until expiry: %v %v", ok, until)
	}
	if _, _, err := svc.Authenticate(ctx, res.AccessToken); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("revoked token: expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuthService_ProvisionKeepsFixedID(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()
	in := ports.RegisterInput{Name: "Admin", Email: "admin@nexushealth.com", Password: "admin123", Role: domain.RoleAdmin}

	p, err := svc.Provision(ctx, "admin-001", in)
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if p.ID != "admin-001" {
		t.Fatalf("expected fixed id, got %q", p.ID)
	}
	if _, err := repo.FindByID(ctx, "admin-001"); err != nil {
		t.Fatalf("principal not stored: %v", err)
	}
	if _, err := svc.Login(ctx, ports.LoginInput{Email: in.Email, Password: in.Password}); err != nil {
		t.Fatalf("login with provisioned account: %v", err)
	}

	if _, err := svc.Provision(ctx, "admin-002", in); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken on second provision, got %v", err)
	}
}
