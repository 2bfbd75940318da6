package core

import (
	"context"
	"time"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Nanosecond  Duration = Duration(time.Nanosecond)
	Microsecond          = Duration(time.Microsecond)
	Millisecond          = Duration(time.Millisecond)
	Second               = Duration(time.Second)
	Minute               = Duration(time.Minute)
	Hour                 = Duration(time.Hour)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts time operations for the domain
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Today returns the current calendar date as midnight UTC
	Today() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) Duration
	// Sleep waits for d or until ctx is done, whichever comes first
	Sleep(ctx context.Context, d Duration) error
}
