package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/internal/core/ports"
)

const (
	// shortIDLength is the number of hex characters appended to a prefix.
	shortIDLength = 6
	// maxIDAttempts bounds retries when a generated identifier is already taken.
	maxIDAttempts = 5
)

// ResourceEngine implements list/get/create/update/delete for one descriptor.
// Concurrent updates of the same record are last-write-wins.
type ResourceEngine[T domain.Record, C any, P any] struct {
	desc      domain.Descriptor[T, C, P]
	store     ports.RecordStore[T]
	validator ports.Validator
	logger    zerolog.Logger
	newID     func(prefix string) string
}

func NewResourceEngine[T domain.Record, C any, P any](
	desc domain.Descriptor[T, C, P],
	store ports.RecordStore[T],
	validator ports.Validator,
	logger zerolog.Logger,
) *ResourceEngine[T, C, P] {
	return &ResourceEngine[T, C, P]{
		desc:      desc,
		store:     store,
		validator: validator,
		logger:    logger.With().Str("resource", desc.Path).Logger(),
		newID:     GenerateID,
	}
}

// Descriptor returns the descriptor the engine was built from.
func (e *ResourceEngine[T, C, P]) Descriptor() domain.Descriptor[T, C, P] {
	return e.desc
}

func (e *ResourceEngine[T, C, P]) List(ctx context.Context) ([]T, error) {
	recs, err := e.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", e.desc.Path, err)
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

func (e *ResourceEngine[T, C, P]) Get(ctx context.Context, id string) (T, error) {
	rec, err := e.store.Get(ctx, id)
	if err != nil {
		var zero T
		return zero, e.storeErr("get", id, err)
	}
	return rec, nil
}

// Create validates in, assigns a fresh identifier and stores the built record.
func (e *ResourceEngine[T, C, P]) Create(ctx context.Context, in C) (T, error) {
	var zero T
	if err := e.validator.Validate(in); err != nil {
		return zero, err
	}

	for attempt := 1; attempt <= maxIDAttempts; attempt++ {
		id := e.newID(e.desc.IDPrefix)
		rec := e.desc.Build(id, in)

		err := e.store.Insert(ctx, id, rec)
		if err == nil {
			e.logger.Info().Str("id", id).Msg("record created")
			return rec, nil
		}
		if !errors.Is(err, domain.ErrDuplicateID) {
			return zero, fmt.Errorf("create %s: %w", e.desc.Path, err)
		}
		e.logger.Warn().Str("id", id).Int("attempt", attempt).Msg("identifier collision, retrying")
	}
	return zero, fmt.Errorf("create %s: %w after %d attempts", e.desc.Path, domain.ErrDuplicateID, maxIDAttempts)
}

// Import stores a record under its own identifier; used to load fixtures.
func (e *ResourceEngine[T, C, P]) Import(ctx context.Context, recs ...T) error {
	for _, rec := range recs {
		if err := e.store.Insert(ctx, rec.RecordID(), rec); err != nil {
			return fmt.Errorf("import %s %s: %w", e.desc.Path, rec.RecordID(), err)
		}
	}
	return nil
}

// Update applies a merge-patch: only fields present in p change.
func (e *ResourceEngine[T, C, P]) Update(ctx context.Context, id string, p P) (T, error) {
	var zero T
	if err := e.validator.Validate(p); err != nil {
		return zero, err
	}
	return e.Modify(ctx, id, func(rec *T) { e.desc.Merge(rec, p) })
}

// Modify loads the record, applies fn to a copy and replaces the stored document in one write.
func (e *ResourceEngine[T, C, P]) Modify(ctx context.Context, id string, fn func(rec *T)) (T, error) {
	var zero T
	rec, err := e.store.Get(ctx, id)
	if err != nil {
		return zero, e.storeErr("update", id, err)
	}

	fn(&rec)

	if err := e.store.Replace(ctx, id, rec); err != nil {
		return zero, e.storeErr("update", id, err)
	}
	e.logger.Info().Str("id", id).Msg("record updated")
	return rec, nil
}

func (e *ResourceEngine[T, C, P]) Delete(ctx context.Context, id string) error {
	if err := e.store.Delete(ctx, id); err != nil {
		return e.storeErr("delete", id, err)
	}
	e.logger.Info().Str("id", id).Msg("record deleted")
	return nil
}

func (e *ResourceEngine[T, C, P]) storeErr(op, id string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.NotFoundError{Tag: e.desc.Tag, ID: id}
	}
	return fmt.Errorf("%s %s %s: %w", op, e.desc.Path, id, err)
}

// GenerateID returns prefix plus six uppercase hex characters of a random UUID,
// or a full UUID when prefix is empty.
func GenerateID(prefix string) string {
	u := uuid.New()
	if prefix == "" {
		return u.String()
	}
	hex := strings.ReplaceAll(u.String(), "-", "")
	return prefix + strings.ToUpper(hex[:shortIDLength])
}
