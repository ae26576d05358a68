package actor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/jvantuyl/extra-enum/core/mailbox"
)

// ErrStopped is returned by Send after the process has stopped.
var ErrStopped = errors.New("actor: process stopped")

type (
	// OnPanic is invoked when the process body panics.
	OnPanic func(recovered any, stack []byte)

	// RunFunc is the process body. The process stops when it returns.
	RunFunc func(c *Ctx) error
)

type Options struct {
	// ID identifies the process in logs and metrics. Generated if empty.
	ID      string
	Context context.Context
	Logger  *slog.Logger
	OnPanic OnPanic
	Metrics ActorMetrics
	// MaxConcurrentTasks caps the number of tasks run via [Ctx.Schedule].
	// Defaults to 32; negative means unlimited.
	MaxConcurrentTasks int
}

// Proc is a running process: a goroutine bound to a private inbox.
type Proc struct {
	id      string
	ctx     context.Context
	cancel  context.CancelFunc
	log     *slog.Logger
	inbox   *mailbox.Inbox
	sched   Scheduler
	metrics ActorMetrics

	stop chan struct{}
	done chan struct{}

	mu     sync.Mutex
	closed bool
	err    error

	onPanic OnPanic
}

// Spawn starts a process running the given body and returns immediately.
func Spawn(opt Options, run RunFunc) *Proc {
	if opt.ID == "" {
		opt.ID = fmt.Sprintf("proc-%s", gonanoid.Must(6))
	}
	if opt.Context == nil {
		opt.Context = context.Background()
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	if opt.Metrics == nil {
		opt.Metrics = NopActorMetrics()
	}
	if opt.MaxConcurrentTasks == 0 {
		opt.MaxConcurrentTasks = 32
	}

	log := opt.Logger.With(slog.String("proc", opt.ID))
	if opt.OnPanic == nil {
		opt.OnPanic = func(recovered any, stack []byte) {
			log.Error("process panicked", slog.Any("recovered", recovered), slog.String("stack", string(stack)))
		}
	}

	ctx, cancel := context.WithCancel(opt.Context)

	p := &Proc{
		id:      opt.ID,
		ctx:     ctx,
		cancel:  cancel,
		log:     log,
		metrics: opt.Metrics,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		onPanic: opt.OnPanic,
	}
	p.inbox = mailbox.New(mailbox.Options{
		OnDepth: func(depth int) { opt.Metrics.MailboxDepth(opt.ID, depth) },
	})
	p.sched = NewScheduler(ctx, opt.MaxConcurrentTasks, opt.ID, opt.Metrics)

	go p.run(run)
	return p
}

// ID returns the process identifier.
func (p *Proc) ID() string { return p.id }

// Inbox exposes the process's inbox for delivery and inspection.
func (p *Proc) Inbox() *mailbox.Inbox { return p.inbox }

// Done is closed once the process body has returned and all scheduled
// tasks have completed.
func (p *Proc) Done() <-chan struct{} { return p.done }

// Err returns the process body's result. Valid after Done is closed.
func (p *Proc) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Send delivers a message into the process's inbox. It fails once the
// process has stopped or ctx is cancelled; delivery itself never blocks.
func (p *Proc) Send(ctx context.Context, msg any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	select {
	case <-p.stop:
		return ErrStopped
	default:
	}
	if err := p.inbox.Push(msg); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	return nil
}

// Stop requests shutdown and waits for completion. A body blocked in a
// receive wakes up via the closed inbox. Idempotent.
func (p *Proc) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		<-p.done
		return
	}
	p.closed = true
	p.mu.Unlock()

	close(p.stop)
	p.inbox.Close()
	p.cancel()
	<-p.done
}

func (p *Proc) run(run RunFunc) {
	defer close(p.done)
	defer p.sched.Wait()
	defer p.inbox.Close()

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				p.onPanic(r, debug.Stack())
				err = fmt.Errorf("process panicked: %v", r)
			}
		}()
		return run(&Ctx{Context: p.ctx, proc: p})
	}()

	p.mu.Lock()
	p.err = err
	p.mu.Unlock()

	if err != nil {
		p.log.Error("process exited", slog.Any("error", err))
	}
}
