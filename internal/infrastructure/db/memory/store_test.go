package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestRecordStore_InsertionOrderAndLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore[domain.Bed]()

	require.NoError(t, s.Insert(ctx, "B-2", domain.Bed{ID: "B-2", Ward: "ICU", Number: "2"}))
	require.NoError(t, s.Insert(ctx, "B-1", domain.Bed{ID: "B-1", Ward: "General", Number: "1"}))
	require.NoError(t, s.Insert(ctx, "B-3", domain.Bed{ID: "B-3", Ward: "General", Number: "3"}))

	recs, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, []string{"B-2", "B-1", "B-3"}, []string{recs[0].ID, recs[1].ID, recs[2].ID})

	require.NoError(t, s.Delete(ctx, "B-1"))
	recs, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B-3", recs[1].ID)

	_, err = s.Get(ctx, "B-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "B-1"), domain.ErrNotFound)
	assert.ErrorIs(t, s.Replace(ctx, "B-1", domain.Bed{ID: "B-1"}), domain.ErrNotFound)
}

func TestRecordStore_DuplicateID(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore[domain.Bed]()

	require.NoError(t, s.Insert(ctx, "B-1", domain.Bed{ID: "B-1"}))
	assert.ErrorIs(t, s.Insert(ctx, "B-1", domain.Bed{ID: "B-1"}), domain.ErrDuplicateID)
}

func TestRecordStore_DoesNotAliasCallerMemory(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore[domain.Bed]()

	bed := domain.Bed{ID: "B-1", PatientName: strPtr("Ada")}
	require.NoError(t, s.Insert(ctx, bed.ID, bed))
	*bed.PatientName = "Grace"

	got, err := s.Get(ctx, "B-1")
	require.NoError(t, err)
	require.NotNil(t, got.PatientName)
	assert.Equal(t, "Ada", *got.PatientName)

	got.Ward = "ICU"
	again, err := s.Get(ctx, "B-1")
	require.NoError(t, err)
	assert.Empty(t, again.Ward)
}

func TestRecordStore_ReplaceKeepsPosition(t *testing.T) {
	ctx := context.Background()
	s := NewRecordStore[domain.Bed]()
	require.NoError(t, s.Insert(ctx, "B-1", domain.Bed{ID: "B-1"}))
	require.NoError(t, s.Insert(ctx, "B-2", domain.Bed{ID: "B-2"}))

	require.NoError(t, s.Replace(ctx, "B-1", domain.Bed{ID: "B-1", Status: domain.BedOccupied}))

	recs, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B-1", recs[0].ID)
	assert.Equal(t, domain.BedOccupied, recs[0].Status)
}

func TestPrincipalRepository(t *testing.T) {
	ctx := context.Background()
	r := NewPrincipalRepository()

	p := &domain.Principal{ID: "doc-001", Name: "Dr. Sarah Wilson", Email: "doctor@nexus.com", Role: domain.RoleDoctor}
	require.NoError(t, r.Create(ctx, p))

	byEmail, err := r.FindByEmail(ctx, " Doctor@Nexus.com")
	require.NoError(t, err)
	assert.Equal(t, "doc-001", byEmail.ID)

	byID, err := r.FindByID(ctx, "doc-001")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleDoctor, byID.Role)

	err = r.Create(ctx, &domain.Principal{ID: "other", Email: "DOCTOR@nexus.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = r.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.FindByEmail(ctx, "missing@nexus.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
