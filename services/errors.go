package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means the referenced entity id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden means the requester is authenticated but not authorized
	// for this record.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is a concurrent modification on a still-existing row. It
	// is fatal; callers must not retry.
	ErrConflict = errors.New("concurrent modification conflict")
	// ErrDuplicate is a unique-constraint violation (room number, email).
	ErrDuplicate = errors.New("duplicate entry")
)

// ValidationError carries the human-readable messages shown back on the
// form. Handlers echo the submitted entity alongside them for re-display.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func isDuplicateKeyErr(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite (used by the tests) reports unique violations by message only
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
