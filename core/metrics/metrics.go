// Package metrics defines the small instrumentation vocabulary shared by
// the core packages, so they stay decoupled from any concrete backend
// (Prometheus, StatsD, ...).
package metrics

// Timer measures the duration of one operation. Call ObserveDuration when
// the operation completes to record the elapsed time.
type Timer interface {
	ObserveDuration()
}

// TimerFunc creates a Timer per operation, enabling the deferred pattern:
//
//	defer m.ReceiveWait().ObserveDuration()
type TimerFunc func() Timer
