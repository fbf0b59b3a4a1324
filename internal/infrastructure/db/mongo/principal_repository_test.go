package mongo

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

func TestUserInsertErr(t *testing.T) {
	dup := func(msg string) error {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: duplicateKeyCode, Message: msg}}}
	}

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"id collision", dup(`E11000 duplicate key error collection: hms.users index: _id_ dup key: { _id: "admin-001" }`), domain.ErrDuplicateID},
		{"email taken", dup(`E11000 duplicate key error collection: hms.users index: email_1 dup key: { email: "admin@nexushealth.com" }`), domain.ErrEmailTaken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userInsertErr(tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	other := userInsertErr(errors.New("connection reset"))
	if errors.Is(other, domain.ErrEmailTaken) || errors.Is(other, domain.ErrDuplicateID) {
		t.Fatalf("unexpected mapping for transport error: %v", other)
	}
}
