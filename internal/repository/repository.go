package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested aggregate does not exist. The id
// zero is never a valid identifier and always maps to this error.
var ErrNotFound = errors.New("not found")

// notFound translates gorm lookup failures into the domain error. Other
// database failures are wrapped and treated as persistence failures by the
// caller.
func notFound(err error, what string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("load %s %d: %w", what, id, err)
}
