// internal/services/errors.go
package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a term or id resolves to no row. It is
// surfaced to the caller as-is.
var ErrNotFound = errors.New("product not found")

// ErrInvalidCredentials covers both unknown-email and bad-password logins
// so the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("credentials are not valid")

// DuplicateKeyError signals a slug or title uniqueness violation. Detail
// carries the conflicting value reported by the store so the caller can
// surface it. Not transient; never retried.
type DuplicateKeyError struct {
	Detail string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %s", e.Detail)
}

// StorageError wraps any persistence failure the service does not
// specifically recognize. The underlying error is logged server-side; the
// message exposed to callers stays generic.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "unexpected storage error, check server logs"
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// translateStorageError maps raw storage errors onto the service taxonomy.
// Unique violations come through as *pgconn.PgError against Postgres and as
// gorm.ErrDuplicatedKey when the dialect translates them; everything else is
// logged in full and surfaced generically.
func translateStorageError(logger logrus.FieldLogger, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return &DuplicateKeyError{Detail: pgErr.Detail}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateKeyError{Detail: err.Error()}
	}

	logger.WithError(err).Error("Unexpected storage error")
	return &StorageError{Err: err}
}
