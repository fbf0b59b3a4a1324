package memory

import (
	"context"
	"sync"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

type PrincipalRepository struct {
	mu      sync.RWMutex
	byID    map[string]domain.Principal
	byEmail map[string]string
}

func NewPrincipalRepository() *PrincipalRepository {
	return &PrincipalRepository{
		byID:    make(map[string]domain.Principal),
		byEmail: make(map[string]string),
	}
}

func (r *PrincipalRepository) FindByID(_ context.Context, id string) (*domain.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *PrincipalRepository) FindByEmail(_ context.Context, email string) (*domain.Principal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.byID[id]
	return &p, nil
}

func (r *PrincipalRepository) Create(_ context.Context, p *domain.Principal) error {
	email := domain.NormalizeEmail(p.Email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return domain.ErrEmailTaken
	}
	if _, ok := r.byID[p.ID]; ok {
		return domain.ErrDuplicateID
	}
	r.byID[p.ID] = *p
	r.byEmail[email] = p.ID
	return nil
}
