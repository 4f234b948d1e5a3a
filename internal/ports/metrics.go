package ports

import "time"

// Metrics records pipeline events. observability.Metrics implements it.
type Metrics interface {
	RecordDecision(decision string)
	RecordExtraction(outcome string)
	RecordLoginFailure(reason string)
	RecordIndexRefresh(status string)
	ObserveGenerate(decision string, elapsed time.Duration)
}

type NoopMetrics struct{}

func (NoopMetrics) RecordDecision(string)                 {}
func (NoopMetrics) RecordExtraction(string)               {}
func (NoopMetrics) RecordLoginFailure(string)             {}
func (NoopMetrics) RecordIndexRefresh(string)             {}
func (NoopMetrics) ObserveGenerate(string, time.Duration) {}
