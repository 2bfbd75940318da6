package card_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cardbank/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cardbank/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/cardbank/internal/domain/usecase/card"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/memory"
	coremocks "github.com/amirhossein-jamali/cardbank/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

// sequenceGenerator hands out fixed numbers in order
type sequenceGenerator struct {
	mu      sync.Mutex
	numbers []string
}

func (g *sequenceGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	next := g.numbers[0]
	if len(g.numbers) > 1 {
		g.numbers = g.numbers[1:]
	}
	return next, nil
}

func luhn(payload string) string {
	return payload + string(entity.LuhnCheckDigit(payload))
}

type recordingMetrics struct {
	coreport.NoopMetrics
	mu      sync.Mutex
	changes []string
}

func (m *recordingMetrics) IncCardStatusChange(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, from+"->"+to)
}

type bank struct {
	uow     persistence.UnitOfWork
	cards   *card.CardUseCase
	metrics *recordingMetrics
	john    uint64
	jane    uint64
}

func newBank(t *testing.T) *bank {
	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(today.Add(9 * time.Hour)).Maybe()
	clock.EXPECT().Today().Return(today).Maybe()

	uow := memory.NewUnitOfWork(memory.NewStore(time.Second))
	numbers := &sequenceGenerator{numbers: []string{
		luhn("400000000000001"), luhn("400000000000002"), luhn("400000000000003"),
		luhn("400000000000004"), luhn("400000000000005"), luhn("400000000000006"),
	}}
	metrics := &recordingMetrics{}

	b := &bank{
		uow:     uow,
		cards:   card.NewCardUseCase(uow, entity.NewLifecyclePolicy(clock), numbers, clock, logger.NewNoopLogger(), metrics),
		metrics: metrics,
	}

	ctx := context.Background()
	for _, name := range []string{"john", "jane"} {
		user := &entity.User{Username: name, Role: entity.RoleUser, Enabled: true}
		require.NoError(t, uow.GetUserRepository(ctx).Create(ctx, user))
		if name == "john" {
			b.john = user.ID
		} else {
			b.jane = user.ID
		}
	}
	return b
}

func (b *bank) create(t *testing.T, username string, exp *time.Time, balance string) *entity.CardResponse {
	t.Helper()
	resp, err := b.cards.CreateCardForUser(context.Background(), username, usecase.CreateCardParams{
		ExpirationDate: exp,
		Balance:        balance,
	})
	require.NoError(t, err)
	return resp
}

// insert stores a card directly, bypassing the lifecycle policy
func (b *bank) insert(t *testing.T, owner uint64, number string, status entity.CardStatus, exp time.Time) uint64 {
	t.Helper()
	c := &entity.Card{Number: number, OwnerID: owner, ExpirationDate: &exp, Status: status, Balance: decimal.RequireFromString("10")}
	require.NoError(t, b.uow.GetCardRepository(context.Background()).Create(context.Background(), c))
	return c.ID
}

func (b *bank) stored(t *testing.T, id uint64) *entity.Card {
	t.Helper()
	c, err := b.uow.GetCardRepository(context.Background()).GetByID(context.Background(), id)
	require.NoError(t, err)
	return c
}

func date(t time.Time) *time.Time { return &t }

func TestCreateCardForUser(t *testing.T) {
	b := newBank(t)

	resp := b.create(t, "john", date(today.AddDate(3, 0, 0)), "100.5")

	assert.Equal(t, entity.CardStatusActive, resp.Status)
	assert.Equal(t, "100.50", resp.Balance)
	assert.Equal(t, b.john, resp.OwnerID)
	assert.Equal(t, "**** **** **** "+luhn("400000000000001")[12:], resp.MaskedNumber)
	require.NotNil(t, resp.ExpirationDate)
	assert.Equal(t, "2028-06-15", *resp.ExpirationDate)

	stored := b.stored(t, resp.ID)
	assert.True(t, entity.PassesLuhn(stored.Number))
}

func TestCreateCardInitialStatus(t *testing.T) {
	b := newBank(t)

	assert.Equal(t, entity.CardStatusExpired, b.create(t, "john", nil, "").Status)
	assert.Equal(t, entity.CardStatusExpired, b.create(t, "john", date(today.AddDate(0, 0, -1)), "").Status)
	assert.Equal(t, entity.CardStatusActive, b.create(t, "john", date(today), "0").Status)
}

func TestCreateCardSkipsTakenNumbers(t *testing.T) {
	b := newBank(t)
	taken := luhn("400000000000001")
	b.insert(t, b.jane, taken, entity.CardStatusActive, today.AddDate(1, 0, 0))

	resp := b.create(t, "john", date(today.AddDate(1, 0, 0)), "1")

	assert.NotEqual(t, taken, b.stored(t, resp.ID).Number)
}

func TestCreateCardFailures(t *testing.T) {
	b := newBank(t)
	ctx := context.Background()
	exp := date(today.AddDate(1, 0, 0))

	_, err := b.cards.CreateCardForUser(ctx, "ghost", usecase.CreateCardParams{ExpirationDate: exp})
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	_, err = b.cards.CreateCardForUser(ctx, "john", usecase.CreateCardParams{ExpirationDate: exp, Balance: "-5"})
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	_, err = b.cards.CreateCardForUser(ctx, "john", usecase.CreateCardParams{ExpirationDate: exp, Balance: "1.234"})
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestAdminBlockAndActivate(t *testing.T) {
	b := newBank(t)
	ctx := context.Background()
	id := b.create(t, "john", date(today.AddDate(1, 0, 0)), "1").ID

	resp, err := b.cards.BlockCard(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusBlocked, resp.Status)

	// blocking twice is a no-op for admins
	resp, err = b.cards.BlockCard(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusBlocked, resp.Status)

	resp, err = b.cards.ActivateCard(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusActive, resp.Status)

	assert.Equal(t, []string{"ACTIVE->BLOCKED", "BLOCKED->ACTIVE"}, b.metrics.changes)

	_, err = b.cards.BlockCard(ctx, 999)
	assert.ErrorIs(t, err, errs.ErrCardNotFound)
}

func TestActivateLapsedCardPersistsExpiry(t *testing.T) {
	b := newBank(t)
	ctx := context.Background()
	id := b.insert(t, b.john, luhn("499999999999991"), entity.CardStatusBlocked, today.AddDate(0, 0, -1))

	_, err := b.cards.ActivateCard(ctx, id)
	assert.ErrorIs(t, err, errs.ErrCardExpired)
	assert.Equal(t, entity.CardStatusExpired, b.stored(t, id).Status)

	_, err = b.cards.ActivateCard(ctx, id)
	assert.ErrorIs(t, err, errs.ErrCardExpired)

	_, err = b.cards.BlockCard(ctx, id)
	assert.ErrorIs(t, err, errs.ErrCardExpired)
	assert.Equal(t, entity.CardStatusExpired, b.stored(t, id).Status)
}

func TestRequestBlockCard(t *testing.T) {
	b := newBank(t)
	ctx := context.Background()
	id := b.create(t, "john", date(today.AddDate(1, 0, 0)), "1").ID

	_, err := b.cards.RequestBlockCard(ctx, "jane", id)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)
	assert.Equal(t, entity.CardStatusActive, b.stored(t, id).Status)

	resp, err := b.cards.RequestBlockCard(ctx, "john", id)
	require.NoError(t, err)
	assert.Equal(t, entity.CardStatusBlocked, resp.Status)

	_, err = b.cards.RequestBlockCard(ctx, "john", id)
	assert.ErrorIs(t, err, errs.ErrAlreadyBlocked)

	_, err = b.cards.RequestBlockCard(ctx, "ghost", id)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestRequestBlockLapsedCard(t *testing.T) {
	b := newBank(t)
	id := b.insert(t, b.john, luhn("499999999999992"), entity.CardStatusActive, today.AddDate(0, 0, -3))

	_, err := b.cards.RequestBlockCard(context.Background(), "john", id)

	assert.ErrorIs(t, err, errs.ErrCardExpired)
	assert.Equal(t, entity.CardStatusExpired, b.stored(t, id).Status)
}

func TestGetBalance(t *testing.T) {
	b := newBank(t)
	ctx := context.Background()
	id := b.create(t, "john", date(today.AddDate(1, 0, 0)), "42.1").ID

	resp, err := b.cards.GetBalance(ctx, "john", id)
	require.NoError(t, err)
	assert.Equal(t, entity.BalanceResponse{CardID: id, Balance: "42.10"}, *resp)

	_, err = b.cards.GetBalance(ctx, "jane", id)
	assert.ErrorIs(t, err, errs.ErrAccessDenied)

	_, err = b.cards.GetBalance(ctx, "john", 999)
	assert.ErrorIs(t, err, errs.ErrCardNotFound)
}

func TestListCardsUsesEffectiveStatus(t *testing.T) {
	b := newBank(t)
	ctx := context.Background()

	active := b.create(t, "john", date(today.AddDate(1, 0, 0)), "1").ID
	lapsed := b.insert(t, b.john, luhn("499999999999993"), entity.CardStatusActive, today.AddDate(0, 0, -1))
	b.create(t, "jane", date(today.AddDate(1, 0, 0)), "1")

	page, err := b.cards.ListUserCards(ctx, "john", "", entity.PageRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalItems)
	assert.Equal(t, entity.DefaultPageSize, page.Size)

	page, err = b.cards.ListUserCards(ctx, "john", "expired", entity.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, lapsed, page.Items[0].ID)
	assert.Equal(t, entity.CardStatusExpired, page.Items[0].Status)

	page, err = b.cards.ListUserCards(ctx, "john", "Active", entity.PageRequest{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, active, page.Items[0].ID)

	_, err = b.cards.ListUserCards(ctx, "john", "frozen", entity.PageRequest{})
	assert.ErrorIs(t, err, errs.ErrInvalidStatus)

	all, err := b.cards.ListAllCards(ctx, "", entity.PageRequest{Page: 0, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.TotalItems)
	assert.Equal(t, 2, all.TotalPages)
	assert.Len(t, all.Items, 2)
}

func TestExpireLapsedCardsAndDelete(t *testing.T) {
	b := newBank(t)
	ctx := context.Background()

	lapsed := b.insert(t, b.john, luhn("499999999999994"), entity.CardStatusActive, today.AddDate(0, 0, -1))
	b.create(t, "john", date(today.AddDate(1, 0, 0)), "1")

	changed, err := b.cards.ExpireLapsedCards(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, changed)
	assert.Equal(t, entity.CardStatusExpired, b.stored(t, lapsed).Status)

	changed, err = b.cards.ExpireLapsedCards(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)

	require.NoError(t, b.cards.DeleteCard(ctx, lapsed))
	assert.ErrorIs(t, b.cards.DeleteCard(ctx, lapsed), errs.ErrCardNotFound)
}
