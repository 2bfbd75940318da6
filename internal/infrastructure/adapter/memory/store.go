package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
)

// dataset is one immutable committed version of the store, or the private
// working copy of an open transaction
type dataset struct {
	users          map[uint64]*entity.User
	cards          map[uint64]*entity.Card
	transfers      []*entity.Transfer
	nextUserID     uint64
	nextCardID     uint64
	nextTransferID uint64
}

func newDataset() *dataset {
	return &dataset{
		users:          make(map[uint64]*entity.User),
		cards:          make(map[uint64]*entity.Card),
		nextUserID:     1,
		nextCardID:     1,
		nextTransferID: 1,
	}
}

func (d *dataset) clone() *dataset {
	c := &dataset{
		users:          make(map[uint64]*entity.User, len(d.users)),
		cards:          make(map[uint64]*entity.Card, len(d.cards)),
		transfers:      append([]*entity.Transfer(nil), d.transfers...),
		nextUserID:     d.nextUserID,
		nextCardID:     d.nextCardID,
		nextTransferID: d.nextTransferID,
	}
	for id, u := range d.users {
		userCopy := *u
		c.users[id] = &userCopy
	}
	for id, card := range d.cards {
		c.cards[id] = card.Clone()
	}
	return c
}

func (d *dataset) sortedCardIDs() []uint64 {
	ids := make([]uint64, 0, len(d.cards))
	for id := range d.cards {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Store is an in-process card store. Committed data is published as immutable
// snapshots; writers are serialized by a single-slot semaphore and work on a private
// copy, so readers never observe a half-applied unit of work.
type Store struct {
	writer      chan struct{}
	mu          sync.RWMutex
	data        *dataset
	lockTimeout time.Duration
}

// NewStore creates an empty store. lockTimeout bounds how long a writer waits for
// another unit of work; zero waits until the context is done.
func NewStore(lockTimeout time.Duration) *Store {
	return &Store{
		writer:      make(chan struct{}, 1),
		data:        newDataset(),
		lockTimeout: lockTimeout,
	}
}

func (s *Store) snapshot() *dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

func (s *Store) publish(d *dataset) {
	s.mu.Lock()
	s.data = d
	s.mu.Unlock()
}

// acquire takes the writer slot, failing with ErrConflict when it stays busy past the lock timeout
func (s *Store) acquire(ctx context.Context) error {
	var timeout <-chan time.Time
	if s.lockTimeout > 0 {
		timer := time.NewTimer(s.lockTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case s.writer <- struct{}{}:
		return nil
	case <-timeout:
		return fmt.Errorf("%w: lock wait exceeded %s", errs.ErrConflict, s.lockTimeout)
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", errs.ErrConflict, ctx.Err())
	}
}

func (s *Store) release() {
	<-s.writer
}

// autocommit applies fn as a single-statement unit of work
func (s *Store) autocommit(ctx context.Context, fn func(d *dataset) error) error {
	if err := s.acquire(ctx); err != nil {
		return err
	}
	defer s.release()

	working := s.snapshot().clone()
	if err := fn(working); err != nil {
		return err
	}
	s.publish(working)
	return nil
}

// Ping always succeeds; it lets the store stand in for a database in health checks
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}
