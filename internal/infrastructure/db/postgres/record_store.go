package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexushealth/hms-api/internal/core/domain"
)

// RecordStore keeps one resource as JSONB documents in its own table.
// The seq column preserves insertion order.
type RecordStore[T any] struct {
	pool  *pgxpool.Pool
	table string
}

func NewRecordStore[T any](pool *pgxpool.Pool, table string) *RecordStore[T] {
	return &RecordStore[T]{pool: pool, table: pgx.Identifier{table}.Sanitize()}
}

// Migrate creates the backing table when it does not exist.
func (s *RecordStore[T]) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+s.table+` (
    id  TEXT PRIMARY KEY,
    seq BIGSERIAL NOT NULL,
    doc JSONB NOT NULL
)`)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", s.table, err)
	}
	return nil
}

func (s *RecordStore[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.pool.Query(ctx, `SELECT doc FROM `+s.table+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.table, err)
	}

	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var rec T
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.table, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *RecordStore[T]) Get(ctx context.Context, id string) (T, error) {
	var (
		rec T
		doc []byte
	)
	err := s.pool.QueryRow(ctx, `SELECT doc FROM `+s.table+` WHERE id = $1`, id).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return rec, domain.ErrNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("get %s: %w", s.table, err)
	}
	if err := json.Unmarshal(doc, &rec); err != nil {
		return rec, fmt.Errorf("decode %s: %w", s.table, err)
	}
	return rec, nil
}

func (s *RecordStore[T]) Insert(ctx context.Context, id string, rec T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.table, err)
	}
	if _, err := s.pool.Exec(ctx, `INSERT INTO `+s.table+` (id, doc) VALUES ($1, $2)`, id, doc); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateID
		}
		return fmt.Errorf("insert %s: %w", s.table, err)
	}
	return nil
}

func (s *RecordStore[T]) Replace(ctx context.Context, id string, rec T) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.table, err)
	}
	tag, err := s.pool.Exec(ctx, `UPDATE `+s.table+` SET doc = $2 WHERE id = $1`, id, doc)
	if err != nil {
		return fmt.Errorf("update %s: %w", s.table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *RecordStore[T]) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM `+s.table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.table, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
