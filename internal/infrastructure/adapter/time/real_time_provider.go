package time

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cardbank/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the wall clock
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a provider whose calendar day is computed in UTC
func NewRealTimeProvider() core.TimeProvider {
	return &RealTimeProvider{location: time.UTC}
}

// NewRealTimeProviderIn creates a provider whose calendar day is computed in loc
func NewRealTimeProviderIn(loc *time.Location) core.TimeProvider {
	if loc == nil {
		loc = time.UTC
	}
	return &RealTimeProvider{location: loc}
}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Today returns the current calendar date in the provider's zone, as midnight UTC
func (p *RealTimeProvider) Today() time.Time {
	y, m, d := time.Now().In(p.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// Sleep pauses for d, returning early with ctx.Err() if ctx is cancelled
func (p *RealTimeProvider) Sleep(ctx context.Context, d core.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d.Std())
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
