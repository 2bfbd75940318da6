package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
)

type countingExpirer struct {
	calls atomic.Int32
	err   error
}

func (c *countingExpirer) ExpireLapsedCards(context.Context) (int64, error) {
	c.calls.Add(1)
	return 1, c.err
}

func TestExpirySweeperRunsUntilStopped(t *testing.T) {
	cards := &countingExpirer{}
	s := NewExpirySweeper(cards, 5*time.Millisecond, logger.NewNoopLogger())

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return cards.calls.Load() >= 3 }, time.Second, time.Millisecond)
	s.Stop()

	stopped := cards.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, cards.calls.Load())
}

func TestExpirySweeperKeepsGoingAfterErrors(t *testing.T) {
	cards := &countingExpirer{err: errors.New("database unavailable")}
	s := NewExpirySweeper(cards, 5*time.Millisecond, logger.NewNoopLogger())

	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool { return cards.calls.Load() >= 2 }, time.Second, time.Millisecond)
}

func TestExpirySweeperDisabled(t *testing.T) {
	cards := &countingExpirer{}
	s := NewExpirySweeper(cards, 0, logger.NewNoopLogger())

	s.Start(context.Background())
	s.Stop()

	assert.Zero(t, cards.calls.Load())
}
