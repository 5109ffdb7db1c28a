package metrics

// Package metrics defines the sink consumed by the run pipeline.
// Implementations live in infra/metrics.

// Run outcomes reported by the pipeline.
const (
	OutcomeUnchanged   = "unchanged"
	OutcomeEmpty       = "empty"
	OutcomeSent        = "sent"
	OutcomeSendFailed  = "send_failed"
	OutcomeNoChannel   = "no_channel"
	OutcomeFetchFailed = "fetch_failed"
)

// Sink receives run observations.
type Sink interface {
	// RecordFetch counts one source fetch attempt.
	RecordFetch(source string, ok bool)
	// RecordRun records the run outcome and its duration in seconds.
	RecordRun(outcome string, seconds float64)
	// Close flushes buffered observations.
	Close() error
}

// NopSink discards all observations.
type NopSink struct{}

func (NopSink) RecordFetch(string, bool)  {}
func (NopSink) RecordRun(string, float64) {}
func (NopSink) Close() error              { return nil }
