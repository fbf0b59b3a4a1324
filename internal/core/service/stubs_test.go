package service

import (
	"context"
	"sync"
	"time"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/pkg/validation"
)

// ---------------------------------------------------------------------------
// In-memory stub record store
// ---------------------------------------------------------------------------

type stubStore[T any] struct {
	mu      sync.Mutex
	order   []string
	byID    map[string]T
	inserts int
	// takenIDs makes Insert report a collision for these ids once.
	takenIDs map[string]bool
	failWith error
}

func newStubStore[T any]() *stubStore[T] {
	return &stubStore[T]{byID: make(map[string]T), takenIDs: make(map[string]bool)}
}

func (s *stubStore[T]) List(_ context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

func (s *stubStore[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[id]
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	return rec, nil
}

func (s *stubStore[T]) Insert(_ context.Context, id string, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserts++
	if s.failWith != nil {
		return s.failWith
	}
	if s.takenIDs[id] {
		delete(s.takenIDs, id)
		return domain.ErrDuplicateID
	}
	if _, ok := s.byID[id]; ok {
		return domain.ErrDuplicateID
	}
	s.byID[id] = rec
	s.order = append(s.order, id)
	return nil
}

func (s *stubStore[T]) Replace(_ context.Context, id string, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	s.byID[id] = rec
	return nil
}

func (s *stubStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Stub principal repository and revocation store
// ---------------------------------------------------------------------------

type stubPrincipalRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.Principal
	byEmail map[string]*domain.Principal
}

func newStubPrincipalRepo() *stubPrincipalRepo {
	return &stubPrincipalRepo{
		byID:    make(map[string]*domain.Principal),
		byEmail: make(map[string]*domain.Principal),
	}
}

func (r *stubPrincipalRepo) FindByID(_ context.Context, id string) (*domain.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPrincipalRepo) FindByEmail(_ context.Context, email string) (*domain.Principal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPrincipalRepo) Create(_ context.Context, p *domain.Principal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[p.Email]; ok {
		return domain.ErrEmailTaken
	}
	clone := *p
	r.byID[p.ID] = &clone
	r.byEmail[p.Email] = &clone
	return nil
}

func (r *stubPrincipalRepo) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.byID[id]; ok {
		delete(r.byEmail, p.Email)
		delete(r.byID, id)
	}
}

type stubRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newStubRevocations() *stubRevocations {
	return &stubRevocations{revoked: make(map[string]time.Time)}
}

func (s *stubRevocations) Revoke(_ context.Context, id string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[id] = until
	return nil
}

func (s *stubRevocations) IsRevoked(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.revoked[id]
	return ok, nil
}

var testValidator = validation.New()

func ptr[T any](v T) *T { return &v }
