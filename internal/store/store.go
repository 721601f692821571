// Package store implements the personnel and leave data model: entity
// lifecycle operations, their uniqueness and referential invariants, and
// the filtered queries that drive dashboards and reports. Handlers call
// into this package; it owns every transaction boundary.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// Failure kinds surfaced to the route layer. Every failed write leaves
// the database exactly as it was before the call.
var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrNotFound            = errors.New("record not found")
	ErrReferentialConflict = errors.New("record has dependents")
	ErrDuplicateAttendance = errors.New("attendance already recorded for this date")
	ErrValidation          = errors.New("invalid input")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for route-layer queries that need no
// invariant enforcement.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// translate maps GORM sentinel errors onto the store's failure kinds.
// Duplicate detection relies on TranslateError being enabled on the
// connection so unique violations are caught at the storage layer, not
// only by pre-checks.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	}
	return err
}
