package ports

import "context"

// RecordStore persists one resource collection. List returns records in
// insertion order. Get, Replace and Delete return domain.ErrNotFound for an
// unknown id; Insert returns domain.ErrDuplicateID when the id is taken.
// Replace swaps the whole stored document in a single write.
type RecordStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Insert(ctx context.Context, id string, rec T) error
	Replace(ctx context.Context, id string, rec T) error
	Delete(ctx context.Context, id string) error
}
