package postgres

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

// testPool needs POSTGRES_TEST_URL; the tests are skipped otherwise.
func testPool(t *testing.T) *RecordStore[domain.Task] {
	t.Helper()
	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}

	ctx := context.Background()
	pool, err := NewPool(ctx, url, 2, 1)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	table := "tasks_test_" + uuid.NewString()[:8]
	s := NewRecordStore[domain.Task](pool, table)
	if err := s.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `DROP TABLE IF EXISTS `+s.table)
		pool.Close()
	})
	return s
}

func TestRecordStore_Lifecycle(t *testing.T) {
	s := testPool(t)
	ctx := context.Background()

	for _, id := range []string{"t-3", "t-1", "t-2"} {
		if err := s.Insert(ctx, id, domain.Task{ID: id, Title: "Round " + id}); err != nil {
			t.Fatalf("insert %s: %v", id, err)
		}
	}
	if err := s.Insert(ctx, "t-1", domain.Task{ID: "t-1"}); !errors.Is(err, domain.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}

	recs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 || recs[0].ID != "t-3" || recs[1].ID != "t-1" {
		t.Fatalf("unexpected order %+v", recs)
	}

	if err := s.Replace(ctx, "t-1", domain.Task{ID: "t-1", Title: "Done", Status: "Completed"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, err := s.Get(ctx, "t-1")
	if err != nil || got.Status != "Completed" {
		t.Fatalf("unexpected record %+v (%v)", got, err)
	}

	if err := s.Delete(ctx, "t-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "t-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPrincipalRepository_UniqueEmail(t *testing.T) {
	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL not set")
	}
	ctx := context.Background()
	pool, err := NewPool(ctx, url, 2, 1)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	repo := NewPrincipalRepository(pool)
	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	email := uuid.NewString()[:8] + "@nexus.com"
	p := &domain.Principal{ID: uuid.NewString(), Name: "Nurse Joy", Email: email, PasswordHash: "x", Role: domain.RoleNurse, CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	t.Cleanup(func() { _, _ = pool.Exec(ctx, `DELETE FROM users WHERE email = $1`, email) })

	dup := *p
	dup.ID = uuid.NewString()
	if err := repo.Create(ctx, &dup); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	got, err := repo.FindByEmail(ctx, email)
	if err != nil || got.ID != p.ID || got.Role != domain.RoleNurse {
		t.Fatalf("unexpected principal %+v (%v)", got, err)
	}
}
