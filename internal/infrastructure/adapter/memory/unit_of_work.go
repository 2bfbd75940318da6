package memory

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
)

type txKey struct{}

// tx is an open unit of work holding the writer slot
type tx struct {
	data *dataset
	done bool
}

var errNoTransaction = errors.New("no transaction found in context")

// UnitOfWork implements persistence.UnitOfWork over a Store
type UnitOfWork struct {
	store *Store
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(store *Store) persistence.UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin takes the writer slot and opens a private working copy
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if t, ok := ctx.Value(txKey{}).(*tx); ok && !t.done {
		return ctx, errors.New("transaction already in progress")
	}
	if err := u.store.acquire(ctx); err != nil {
		return ctx, err
	}
	t := &tx{data: u.store.snapshot().clone()}
	return context.WithValue(ctx, txKey{}, t), nil
}

// Commit publishes the working copy and releases the writer slot
func (u *UnitOfWork) Commit(ctx context.Context) error {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok {
		return errNoTransaction
	}
	if t.done {
		return errors.New("transaction has already been committed or rolled back")
	}
	t.done = true
	u.store.publish(t.data)
	u.store.release()
	return nil
}

// Rollback discards the working copy; rolling back a finished transaction is a no-op
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok {
		return errNoTransaction
	}
	if t.done {
		return nil
	}
	t.done = true
	u.store.release()
	return nil
}

// GetCardRepository returns a card repository bound to the transaction in ctx, if any
func (u *UnitOfWork) GetCardRepository(ctx context.Context) persistence.CardRepository {
	return &CardRepository{session: u.session(ctx)}
}

// GetUserRepository returns a user repository bound to the transaction in ctx, if any
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return &UserRepository{session: u.session(ctx)}
}

// GetTransferRepository returns a transfer repository bound to the transaction in ctx, if any
func (u *UnitOfWork) GetTransferRepository(ctx context.Context) persistence.TransferRepository {
	return &TransferRepository{session: u.session(ctx)}
}

func (u *UnitOfWork) session(ctx context.Context) session {
	t, _ := ctx.Value(txKey{}).(*tx)
	return session{store: u.store, tx: t}
}

// session routes repository calls either to an open transaction or to the committed store
type session struct {
	store *Store
	tx    *tx
}

func (s session) read(fn func(d *dataset) error) error {
	if s.tx != nil {
		if s.tx.done {
			return errors.New("transaction has already been committed or rolled back")
		}
		return fn(s.tx.data)
	}
	return fn(s.store.snapshot())
}

func (s session) write(ctx context.Context, fn func(d *dataset) error) error {
	if s.tx != nil {
		if s.tx.done {
			return errors.New("transaction has already been committed or rolled back")
		}
		return fn(s.tx.data)
	}
	return s.store.autocommit(ctx, fn)
}
