package core

// Metrics records domain-level counters and timings
type Metrics interface {
	// ObserveTransfer records the outcome ("success" or an error kind) and duration of a transfer
	ObserveTransfer(outcome string, seconds float64)
	// IncTransferRetry counts a transfer attempt retried after a store conflict
	IncTransferRetry()
	// IncCardStatusChange counts a persisted card status transition
	IncCardStatusChange(from, to string)
}

// NoopMetrics discards every observation
type NoopMetrics struct{}

func (NoopMetrics) ObserveTransfer(string, float64) {}
func (NoopMetrics) IncTransferRetry() {}
func (NoopMetrics) IncCardStatusChange(string, string) {}
