// Package memory holds process-local datastores used in development and tests.
// Records are kept as encoded JSON so callers never share memory with the store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

type RecordStore[T any] struct {
	mu    sync.RWMutex
	order []string
	docs  map[string][]byte
}

func NewRecordStore[T any]() *RecordStore[T] {
	return &RecordStore[T]{docs: make(map[string][]byte)}
}

func (s *RecordStore[T]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		rec, err := decode[T](s.docs[id])
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *RecordStore[T]) Get(_ context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	return decode[T](doc)
}

func (s *RecordStore[T]) Insert(_ context.Context, id string, rec T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; ok {
		return domain.ErrDuplicateID
	}
	s.docs[id] = doc
	s.order = append(s.order, id)
	return nil
}

func (s *RecordStore[T]) Replace(_ context.Context, id string, rec T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	s.docs[id] = doc
	return nil
}

func (s *RecordStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func decode[T any](doc []byte) (T, error) {
	var rec T
	if err := json.Unmarshal(doc, &rec); err != nil {
		return rec, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
