package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by every repository implementation. Handlers match
// on these with errors.Is to pick the response status.
var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint,
	// e.g. a second rating for the same (user, movie) pair.
	ErrDuplicate = errors.New("duplicate record")
)

// translateGormError maps GORM's error values onto the repository sentinels.
// Requires gorm.Config.TranslateError so driver-specific duplicate-key errors
// arrive as gorm.ErrDuplicatedKey.
func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
