package actor

import "github.com/jvantuyl/extra-enum/core/metrics"

// ActorMetrics is the instrumentation hook for the actor pillar.
// All methods are thread-safe.
type ActorMetrics interface {
	// Selective receive
	ReceiveWait() metrics.Timer
	ReceiveResult(procID string, matched bool)
	ItemYielded(msgType string)

	// Mailbox
	MailboxDepth(procID string, depth int)

	// Scheduler
	SchedulerInflight(procID string, count int)
	SchedulerTaskCompleted(success bool)
}

// nopActorMetrics is a no-op implementation of ActorMetrics.
type nopActorMetrics struct{}

func (nopActorMetrics) ReceiveWait() metrics.Timer    { return metrics.NopTimer() }
func (nopActorMetrics) ReceiveResult(string, bool)    {}
func (nopActorMetrics) ItemYielded(string)            {}
func (nopActorMetrics) MailboxDepth(string, int)      {}
func (nopActorMetrics) SchedulerInflight(string, int) {}
func (nopActorMetrics) SchedulerTaskCompleted(bool)   {}

// NopActorMetrics returns a no-op ActorMetrics implementation.
func NopActorMetrics() ActorMetrics { return nopActorMetrics{} }
