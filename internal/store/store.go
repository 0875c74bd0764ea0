// Package store provides the per-entity repositories over the relational
// database. Every mutation is a single transaction; multi-step updates are
// wrapped explicitly. Stores return ErrNotFound instead of leaking gorm
// sentinels to callers.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when the referenced row does not exist.
var ErrNotFound = errors.New("record not found")

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
