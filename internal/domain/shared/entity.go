package shared

import "time"

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() int64
	IsNew() bool
}

// BaseEntity provides common fields for all entities.
// ID is assigned by the record store on first save; zero means not yet persisted.
type BaseEntity struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() int64 {
	return e.ID
}

// IsNew reports whether the entity has not been persisted yet
func (e *BaseEntity) IsNew() bool {
	return e.ID == 0
}

// Touch updates the modification timestamp, setting CreatedAt on first call
func (e *BaseEntity) Touch() {
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	e.UpdatedAt = now
}
