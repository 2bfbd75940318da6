package memory

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func day(offset int) *time.Time {
	d := today.AddDate(0, 0, offset)
	return &d
}

func seed(t *testing.T, uow persistence.UnitOfWork) (*entity.User, []*entity.Card) {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{Username: "john", Role: entity.RoleUser, Enabled: true}
	require.NoError(t, uow.GetUserRepository(ctx).Create(ctx, user))

	cards := []*entity.Card{
		{Number: "4000000000000001", OwnerID: user.ID, ExpirationDate: day(365), Status: entity.CardStatusActive, Balance: decimal.NewFromInt(100)},
		{Number: "4000000000000002", OwnerID: user.ID, ExpirationDate: day(365), Status: entity.CardStatusBlocked, Balance: decimal.NewFromInt(10)},
		{Number: "4000000000000003", OwnerID: user.ID, ExpirationDate: day(-1), Status: entity.CardStatusActive, Balance: decimal.Zero},
	}
	for _, c := range cards {
		require.NoError(t, uow.GetCardRepository(ctx).Create(ctx, c))
	}
	return user, cards
}

func TestUnitOfWorkCommitAndRollback(t *testing.T) {
	uow := NewUnitOfWork(NewStore(time.Second))
	ctx := context.Background()
	_, cards := seed(t, uow)

	t.Run("Rollback discards staged writes", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		card, err := uow.GetCardRepository(txCtx).GetByIDForUpdate(txCtx, cards[0].ID)
		require.NoError(t, err)
		card.Balance = decimal.NewFromInt(1)
		require.NoError(t, uow.GetCardRepository(txCtx).Update(txCtx, card))

		outside, err := uow.GetCardRepository(ctx).GetByID(ctx, cards[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "100.00", entity.FormatAmount(outside.Balance), "staged write must not be visible")

		require.NoError(t, uow.Rollback(txCtx))
		require.NoError(t, uow.Rollback(txCtx), "second rollback is a no-op")

		after, err := uow.GetCardRepository(ctx).GetByID(ctx, cards[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "100.00", entity.FormatAmount(after.Balance))
	})

	t.Run("Commit publishes staged writes", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)

		card, err := uow.GetCardRepository(txCtx).GetByIDForUpdate(txCtx, cards[0].ID)
		require.NoError(t, err)
		card.Balance = decimal.RequireFromString("99.99")
		require.NoError(t, uow.GetCardRepository(txCtx).Update(txCtx, card))
		require.NoError(t, uow.Commit(txCtx))

		assert.Error(t, uow.Commit(txCtx))

		after, err := uow.GetCardRepository(ctx).GetByID(ctx, cards[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "99.99", entity.FormatAmount(after.Balance))
	})
}

func TestUnitOfWorkLockTimeout(t *testing.T) {
	uow := NewUnitOfWork(NewStore(20 * time.Millisecond))
	ctx := context.Background()

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	defer func() { _ = uow.Rollback(txCtx) }()

	_, err = uow.Begin(context.Background())
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestReturnedEntitiesAreCopies(t *testing.T) {
	uow := NewUnitOfWork(NewStore(time.Second))
	ctx := context.Background()
	_, cards := seed(t, uow)

	card, err := uow.GetCardRepository(ctx).GetByID(ctx, cards[0].ID)
	require.NoError(t, err)
	card.Status = entity.CardStatusBlocked

	again, err := uow.GetCardRepository(ctx).GetByID(ctx, cards[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusActive, again.Status)
}

func TestCardRepositoryList(t *testing.T) {
	uow := NewUnitOfWork(NewStore(time.Second))
	ctx := context.Background()
	user, cards := seed(t, uow)
	repo := uow.GetCardRepository(ctx)

	all, total, err := repo.List(ctx, persistence.CardFilter{AsOf: today}, entity.PageRequest{Page: 0, Size: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, all, 2)
	assert.Equal(t, cards[0].ID, all[0].ID)
	assert.Equal(t, cards[1].ID, all[1].ID)

	second, _, err := repo.List(ctx, persistence.CardFilter{AsOf: today}, entity.PageRequest{Page: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, cards[2].ID, second[0].ID)

	expired := entity.CardStatusExpired
	lapsed, total, err := repo.List(ctx, persistence.CardFilter{OwnerID: &user.ID, Status: &expired, AsOf: today}, entity.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, cards[2].ID, lapsed[0].ID)

	other := uint64(999)
	none, total, err := repo.List(ctx, persistence.CardFilter{OwnerID: &other, AsOf: today}, entity.PageRequest{Size: 10})
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Zero(t, total)
}

func TestCardRepositoryExpireLapsed(t *testing.T) {
	uow := NewUnitOfWork(NewStore(time.Second))
	ctx := context.Background()
	_, cards := seed(t, uow)
	repo := uow.GetCardRepository(ctx)

	changed, err := repo.ExpireLapsed(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), changed)

	card, err := repo.GetByID(ctx, cards[2].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusExpired, card.Status)

	changed, err = repo.ExpireLapsed(ctx, today)
	require.NoError(t, err)
	assert.Zero(t, changed)
}

func TestCardRepositoryConstraints(t *testing.T) {
	uow := NewUnitOfWork(NewStore(time.Second))
	ctx := context.Background()
	user, cards := seed(t, uow)
	repo := uow.GetCardRepository(ctx)

	err := repo.Create(ctx, &entity.Card{Number: cards[0].Number, OwnerID: user.ID})
	assert.ErrorIs(t, err, errs.ErrDuplicateKey)

	err = repo.Create(ctx, &entity.Card{Number: "4000000000000099", OwnerID: 12345})
	assert.ErrorIs(t, err, errs.ErrConstraintViolation)

	exists, err := repo.NumberExists(ctx, cards[1].Number)
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, repo.Delete(ctx, 9999), errs.ErrCardNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &entity.Card{ID: 9999}), errs.ErrCardNotFound)
}

func TestUserRepository(t *testing.T) {
	uow := NewUnitOfWork(NewStore(time.Second))
	ctx := context.Background()
	user, cards := seed(t, uow)
	repo := uow.GetUserRepository(ctx)

	err := repo.Create(ctx, &entity.User{Username: "john", Role: entity.RoleUser})
	assert.ErrorIs(t, err, errs.ErrUsernameTaken)

	exists, err := repo.ExistsByUsername(ctx, "john")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, repo.Delete(ctx, user.ID), errs.ErrUserHasCards)

	for _, c := range cards {
		require.NoError(t, uow.GetCardRepository(ctx).Delete(ctx, c.ID))
	}
	require.NoError(t, repo.Delete(ctx, user.ID))

	_, err = repo.GetByUsername(ctx, "john")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestTransferRepositoryListByCard(t *testing.T) {
	uow := NewUnitOfWork(NewStore(time.Second))
	ctx := context.Background()
	repo := uow.GetTransferRepository(ctx)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Transfer{FromCardID: 1, ToCardID: 2, Amount: decimal.NewFromInt(int64(i + 1))}))
	}
	require.NoError(t, repo.Create(ctx, &entity.Transfer{FromCardID: 3, ToCardID: 4, Amount: decimal.NewFromInt(9)}))

	list, err := repo.ListByCard(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "3.00", entity.FormatAmount(list[0].Amount), "newest first")
	assert.Equal(t, uint64(3), list[0].ID)
}
