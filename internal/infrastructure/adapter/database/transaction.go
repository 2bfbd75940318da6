package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

type txKey struct{}

// UnitOfWork implements the unit of work pattern for database transactions
type UnitOfWork struct {
	db           *gorm.DB
	isolation    sql.IsolationLevel
	lockTimeout  coreport.Duration
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// UnitOfWorkOption customises a UnitOfWork
type UnitOfWorkOption func(*UnitOfWork)

// WithIsolation sets the isolation level of every transaction
func WithIsolation(level sql.IsolationLevel) UnitOfWorkOption {
	return func(u *UnitOfWork) { u.isolation = level }
}

// WithLockTimeout bounds how long a row lock may be waited for; 0 leaves the server default
func WithLockTimeout(d coreport.Duration) UnitOfWorkOption {
	return func(u *UnitOfWork) { u.lockTimeout = d }
}

// NewUnitOfWork creates a new UnitOfWork running SERIALIZABLE transactions unless configured otherwise
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...UnitOfWorkOption) persistence.UnitOfWork {
	u := &UnitOfWork{
		db:           db,
		isolation:    sql.LevelSerializable,
		logger:       logger,
		timeProvider: timeProvider,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Begin starts a new database transaction and stores it in the returned context
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return ctx, errors.New("transaction already in progress in this context")
	}

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: u.isolation})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("failed to begin transaction: %w", repository.MapError(tx.Error, errs.ErrNotFound))
	}

	if u.lockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Std().Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			tx.Rollback()
			return ctx, fmt.Errorf("failed to set lock timeout: %w", repository.MapError(err, errs.ErrNotFound))
		}
	}

	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit commits the current transaction; a serialization failure at commit surfaces as ErrConflict
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		mapped := repository.MapError(err, errs.ErrNotFound)
		if errs.IsConflictError(mapped) {
			u.logger.Warn("Transaction aborted at commit", map[string]any{"error": err.Error()})
		} else {
			u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		}
		return fmt.Errorf("failed to commit transaction: %w", mapped)
	}
	return nil
}

// Rollback rolls back the current transaction; rolling back a finished transaction is a no-op
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err == nil || errors.Is(err, sql.ErrTxDone) {
		return nil
	}

	u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
	return fmt.Errorf("failed to rollback transaction: %w", err)
}

// GetCardRepository returns a card repository in the current transaction
func (u *UnitOfWork) GetCardRepository(ctx context.Context) persistence.CardRepository {
	return repository.NewCardRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// GetUserRepository returns a user repository in the current transaction
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// GetTransferRepository returns a transfer repository in the current transaction
func (u *UnitOfWork) GetTransferRepository(ctx context.Context) persistence.TransferRepository {
	return repository.NewTransferRepository(u.dbFromContext(ctx), u.logger)
}

func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
