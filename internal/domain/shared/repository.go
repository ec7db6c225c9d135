package shared

import "context"

// Repository is the record-store contract shared by every entity type.
//
// Save inserts when the entity has no ID yet and updates otherwise.
// DeleteByID is idempotent: removing a missing id is not an error.
type Repository[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Save(ctx context.Context, entity *T) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
