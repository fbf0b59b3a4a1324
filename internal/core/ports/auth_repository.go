package ports

import (
	"context"
	"time"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

// PrincipalRepository is the credential store. Lookups of unknown principals
// return domain.ErrNotFound; Create returns domain.ErrEmailTaken on a duplicate email.
type PrincipalRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Principal, error)
	FindByEmail(ctx context.Context, email string) (*domain.Principal, error)
	Create(ctx context.Context, p *domain.Principal) error
}

// RevocationStore is a deny-list of session token ids kept until the token would expire anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
