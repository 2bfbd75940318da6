package repository

import (
	"context"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes the repositories react to
const (
	SQLStateUniqueViolation      = "23505"
	SQLStateForeignKeyViolation  = "23503"
	SQLStateCheckViolation       = "23514"
	SQLStateSerializationFailure = "40001"
	SQLStateDeadlockDetected     = "40P01"
	SQLStateLockNotAvailable     = "55P03"
	SQLStateTooManyConnections   = "53300"
	SQLStateAdminShutdown        = "57P01"
	SQLStateCannotConnectNow     = "57P03"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	ConstraintError   ErrorType = "constraint"
	ConflictError     ErrorType = "conflict"
	ConnectionError   ErrorType = "connection"
)

// ErrorClassifier classifies driver errors by SQLSTATE
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// SQLState returns the SQLSTATE of err, or "" when err did not come from the server
func (c *ErrorClassifier) SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return ConnectionError
	}

	code := c.SQLState(err)
	switch code {
	case SQLStateUniqueViolation:
		return DuplicateKeyError
	case SQLStateForeignKeyViolation:
		return ForeignKeyError
	case SQLStateCheckViolation:
		return ConstraintError
	case SQLStateSerializationFailure, SQLStateDeadlockDetected, SQLStateLockNotAvailable:
		return ConflictError
	case SQLStateTooManyConnections, SQLStateAdminShutdown, SQLStateCannotConnectNow:
		return ConnectionError
	}
	// class 08: connection exception
	if len(code) == 5 && code[:2] == "08" {
		return ConnectionError
	}
	if code == "" && pgconn.SafeToRetry(err) {
		return ConnectionError
	}
	return ""
}

// IsTransient reports whether retrying the same statement may succeed
func (c *ErrorClassifier) IsTransient(err error) bool {
	switch c.Classify(err) {
	case ConflictError, ConnectionError:
		return true
	}
	return false
}

// MapError converts a gorm or driver error into a domain error.
// notFound is returned for gorm.ErrRecordNotFound.
func MapError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}

	classifier := NewErrorClassifier()
	switch classifier.Classify(err) {
	case ConflictError:
		return fmt.Errorf("%w: %v", errs.ErrConflict, err)
	case DuplicateKeyError:
		return fmt.Errorf("%w: %v", errs.ErrDuplicateKey, err)
	case ForeignKeyError, ConstraintError:
		return fmt.Errorf("%w: %v", errs.ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
	}
}
