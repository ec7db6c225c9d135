package persistence

import (
	"errors"
	"fmt"

	"github.com/erp/orderflow/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps GORM errors to domain errors. Not-found becomes a
// NOT_FOUND error naming the entity; unique and foreign key violations become
// CONFLICT. Anything else is wrapped with the operation name.
func translateError(err error, entity string, id any, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NewNotFoundError(entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return shared.NewConflictError("%s already exists", entity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return shared.NewConflictError("%s is still referenced by other records", entity)
	default:
		return fmt.Errorf("%s %s: %w", op, entity, err)
	}
}
