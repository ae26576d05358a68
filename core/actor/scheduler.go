package actor

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Scheduler runs background tasks on behalf of a process, bounded by a
// concurrency limit.
type Scheduler interface {
	Schedule(f func())
	// Wait blocks until all in-flight tasks complete.
	Wait()
}

type scheduler struct {
	ctx      context.Context
	log      *slog.Logger
	sem      chan struct{}
	inflight atomic.Int32
	wg       sync.WaitGroup

	procID  string
	metrics ActorMetrics
}

// NewScheduler creates a scheduler limiting concurrently running tasks to
// max (unlimited if max <= 0). Tasks still queued when ctx is cancelled
// are dropped.
func NewScheduler(ctx context.Context, max int, procID string, m ActorMetrics) Scheduler {
	var sem chan struct{}
	if max > 0 {
		sem = make(chan struct{}, max)
	}
	if m == nil {
		m = NopActorMetrics()
	}
	return &scheduler{
		ctx:     ctx,
		log:     slog.Default(),
		sem:     sem,
		procID:  procID,
		metrics: m,
	}
}

func (s *scheduler) Schedule(f func()) {
	select {
	case <-s.ctx.Done():
		return
	default:
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if s.sem != nil {
			select {
			case <-s.ctx.Done():
				return
			case s.sem <- struct{}{}:
			}
			defer func() { <-s.sem }()
		}

		s.metrics.SchedulerInflight(s.procID, int(s.inflight.Add(1)))
		defer func() {
			s.metrics.SchedulerInflight(s.procID, int(s.inflight.Add(-1)))
		}()

		s.runTask(f)
	}()
}

func (s *scheduler) runTask(f func()) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.SchedulerTaskCompleted(false)
			// log the panic but don't re-panic
			s.log.Error("scheduled task panicked", slog.String("proc", s.procID), slog.Any("recovered", r))
			return
		}
		s.metrics.SchedulerTaskCompleted(true)
	}()
	f()
}

func (s *scheduler) Wait() { s.wg.Wait() }
