package transfer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/cardbank/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/cardbank/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

type recordingMetrics struct {
	mu            sync.Mutex
	outcomes      []string
	retries       int
	statusChanges []string
}

func (m *recordingMetrics) ObserveTransfer(outcome string, _ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) IncTransferRetry() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.retries++
}

func (m *recordingMetrics) IncCardStatusChange(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusChanges = append(m.statusChanges, from+"->"+to)
}

type engineFixture struct {
	uow       *persistencemocks.MockUnitOfWork
	users     *persistencemocks.MockUserRepository
	cards     *persistencemocks.MockCardRepository
	transfers *persistencemocks.MockTransferRepository
	metrics   *recordingMetrics
	engine    *Engine
	txCtx     context.Context
}

func newEngineFixture(t *testing.T, retry RetryConfig) *engineFixture {
	clock := newClock(t)
	clock.EXPECT().Since(mock.Anything).Return(coreport.Duration(time.Millisecond)).Maybe()
	clock.EXPECT().Sleep(mock.Anything, mock.Anything).Return(nil).Maybe()

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f := &engineFixture{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		users:     persistencemocks.NewMockUserRepository(t),
		cards:     persistencemocks.NewMockCardRepository(t),
		transfers: persistencemocks.NewMockTransferRepository(t),
		metrics:   &recordingMetrics{},
		txCtx:     context.WithValue(context.Background(), txKey{}, "tx"),
	}
	f.engine = NewEngine(f.uow, entity.NewLifecyclePolicy(clock), clock, logger, f.metrics, retry)

	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetCardRepository(mock.Anything).Return(f.cards).Maybe()
	f.uow.EXPECT().GetTransferRepository(mock.Anything).Return(f.transfers).Maybe()
	return f
}

func (f *engineFixture) expectUser(id uint64) {
	f.users.EXPECT().GetByUsername(mock.Anything, "john").Return(&entity.User{ID: id, Username: "john", Role: entity.RoleUser, Enabled: true}, nil)
}

func (f *engineFixture) expectCards(from, to func() *entity.Card) {
	f.cards.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).RunAndReturn(func(context.Context, uint64) (*entity.Card, error) {
		return from(), nil
	}).Maybe()
	f.cards.EXPECT().GetByIDForUpdate(mock.Anything, uint64(2)).RunAndReturn(func(context.Context, uint64) (*entity.Card, error) {
		return to(), nil
	}).Maybe()
}

func TestTransferRejectsBeforeTouchingStore(t *testing.T) {
	f := newEngineFixture(t, DefaultRetryConfig())

	_, err := f.engine.Transfer(context.Background(), "john", usecase.TransferRequest{FromCardID: 1, ToCardID: 2, Amount: "0"})
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = f.engine.Transfer(context.Background(), "john", usecase.TransferRequest{FromCardID: 3, ToCardID: 3, Amount: "10"})
	assert.ErrorIs(t, err, errs.ErrSameCard)

	assert.Equal(t, []string{"invalid_amount", "invalid_request"}, f.metrics.outcomes)
}

func TestTransferRetriesOnConflict(t *testing.T) {
	f := newEngineFixture(t, RetryConfig{MaxRetries: 3, RetryInterval: time.Millisecond})
	f.expectUser(7)
	f.expectCards(func() *entity.Card { return activeCard(1, 7, "100.00") }, func() *entity.Card { return activeCard(2, 7, "10.00") })

	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Times(2)
	f.cards.EXPECT().Update(mock.Anything, mock.Anything).Return(fmt.Errorf("%w: could not serialize access", errs.ErrConflict)).Once()
	f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()
	f.cards.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.transfers.EXPECT().Create(mock.Anything, mock.MatchedBy(func(tr *entity.Transfer) bool {
		return tr.FromCardID == 1 && tr.ToCardID == 2 && tr.OwnerID == 7 && entity.FormatAmount(tr.Amount) == "40.00"
	})).Return(nil).Once()
	f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

	resp, err := f.engine.Transfer(context.Background(), "john", usecase.TransferRequest{FromCardID: 1, ToCardID: 2, Amount: "40.00"})

	require.NoError(t, err)
	assert.Equal(t, "60.00", resp.FromBalance)
	assert.Equal(t, "50.00", resp.ToBalance)
	assert.Equal(t, 1, f.metrics.retries)
	assert.Equal(t, []string{"success"}, f.metrics.outcomes)
}

func TestTransferSurfacesConflictAfterRetries(t *testing.T) {
	f := newEngineFixture(t, RetryConfig{MaxRetries: 2, RetryInterval: time.Millisecond})
	f.expectUser(7)

	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Times(3)
	f.cards.EXPECT().GetByIDForUpdate(mock.Anything, uint64(1)).Return(nil, fmt.Errorf("%w: deadlock detected", errs.ErrConflict)).Times(3)
	f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Times(3)

	_, err := f.engine.Transfer(context.Background(), "john", usecase.TransferRequest{FromCardID: 2, ToCardID: 1, Amount: "1"})

	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	assert.Equal(t, 2, f.metrics.retries)
}

func TestTransferRollsBackWhenRecordFails(t *testing.T) {
	f := newEngineFixture(t, DefaultRetryConfig())
	f.expectUser(7)
	f.expectCards(func() *entity.Card { return activeCard(1, 7, "100.00") }, func() *entity.Card { return activeCard(2, 7, "10.00") })

	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
	f.cards.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Times(2)
	f.transfers.EXPECT().Create(mock.Anything, mock.Anything).Return(fmt.Errorf("%w: connection reset", errs.ErrDatabaseConnection)).Once()
	f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()

	_, err := f.engine.Transfer(context.Background(), "john", usecase.TransferRequest{FromCardID: 1, ToCardID: 2, Amount: "5"})

	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.False(t, errs.IsBusinessError(err))
	assert.Equal(t, []string{"internal"}, f.metrics.outcomes)
}

func TestTransferCommitsExpiryCorrection(t *testing.T) {
	f := newEngineFixture(t, DefaultRetryConfig())
	f.expectUser(7)
	f.expectCards(func() *entity.Card {
		c := activeCard(1, 7, "100.00")
		c.ExpirationDate = lastMonth()
		return c
	}, func() *entity.Card { return activeCard(2, 7, "10.00") })

	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
	f.cards.EXPECT().Update(mock.Anything, mock.MatchedBy(func(c *entity.Card) bool {
		return c.ID == 1 && c.Status == entity.CardStatusExpired && c.Balance.Equal(activeCard(1, 7, "100.00").Balance)
	})).Return(nil).Once()
	f.uow.EXPECT().Commit(f.txCtx).Return(nil).Once()

	_, err := f.engine.Transfer(context.Background(), "john", usecase.TransferRequest{FromCardID: 1, ToCardID: 2, Amount: "5"})

	assert.ErrorIs(t, err, errs.ErrCardExpired)
	assert.Equal(t, []string{"ACTIVE->EXPIRED"}, f.metrics.statusChanges)
	f.transfers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTransferUnknownUser(t *testing.T) {
	f := newEngineFixture(t, DefaultRetryConfig())
	f.users.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound)

	_, err := f.engine.Transfer(context.Background(), "ghost", usecase.TransferRequest{FromCardID: 1, ToCardID: 2, Amount: "5"})
	assert.True(t, errors.Is(err, errs.ErrUserNotFound))
}
