package worker

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
)

// CardExpirer persists EXPIRED for lapsed cards
type CardExpirer interface {
	ExpireLapsedCards(ctx context.Context) (int64, error)
}

// ExpirySweeper periodically persists the EXPIRED status of lapsed cards so that
// stored statuses catch up with expiration dates even for cards nobody touches
type ExpirySweeper struct {
	cards    CardExpirer
	interval time.Duration
	logger   coreport.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpirySweeper creates a sweeper running every interval
func NewExpirySweeper(cards CardExpirer, interval time.Duration, logger coreport.Logger) *ExpirySweeper {
	return &ExpirySweeper{
		cards:    cards,
		interval: interval,
		logger:   logger,
	}
}

// Start sweeps once immediately and then on every tick until Stop or ctx is done.
// A non-positive interval disables the sweeper.
func (s *ExpirySweeper) Start(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("Card expiry sweeper disabled", nil)
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()

	s.logger.Info("Card expiry sweeper started", map[string]any{"interval": s.interval.String()})
}

// Stop cancels the loop and waits for an in-flight sweep to finish
func (s *ExpirySweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
}

func (s *ExpirySweeper) sweep(ctx context.Context) {
	if _, err := s.cards.ExpireLapsedCards(ctx); err != nil && ctx.Err() == nil {
		s.logger.Warn("Card expiry sweep failed", map[string]any{"error": err.Error()})
	}
}
