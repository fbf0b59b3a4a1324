package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

func TestUserInsertErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"id collision", &pgconn.PgError{Code: uniqueViolation, ConstraintName: usersPrimaryKey}, domain.ErrDuplicateID},
		{"email taken", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"}, domain.ErrEmailTaken},
		{"wrapped", fmt.Errorf("exec: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: usersPrimaryKey}), domain.ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userInsertErr(tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	other := userInsertErr(&pgconn.PgError{Code: "23502"})
	if errors.Is(other, domain.ErrEmailTaken) || errors.Is(other, domain.ErrDuplicateID) {
		t.Fatalf("unexpected mapping for not-null violation: %v", other)
	}
}
