package persistence

import (
	"errors"

	"github.com/energyservice/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// isDuplicateKey reports whether err is a unique constraint violation.
// Requires the connection to be opened with TranslateError.
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// notFoundOr maps gorm.ErrRecordNotFound to shared.ErrNotFound
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}
