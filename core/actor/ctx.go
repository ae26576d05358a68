package actor

import (
	"context"
	"log/slog"

	"github.com/jvantuyl/extra-enum/core/mailbox"
	"github.com/jvantuyl/extra-enum/core/recv"
	"github.com/jvantuyl/extra-enum/core/seq"
	"github.com/jvantuyl/extra-enum/internal/reflector"
)

// Ctx is handed to the process body. It carries the process's context,
// logger, inbox and background scheduler.
type Ctx struct {
	context.Context
	proc *Proc
}

func (c *Ctx) Log() *slog.Logger     { return c.proc.log }
func (c *Ctx) ID() string            { return c.proc.id }
func (c *Ctx) Inbox() *mailbox.Inbox { return c.proc.inbox }

// Receive binds a match specification to the process's own inbox.
func (c *Ctx) Receive(spec *recv.Spec) *recv.Bound {
	return spec.Bind(c.proc.inbox)
}

// Sequence binds spec to the process's own inbox and instruments every
// pull with the process metrics: receive wait time, match/timeout
// outcome, and yielded item type.
func (c *Ctx) Sequence(spec *recv.Spec) seq.Source {
	return &measuredSource{b: spec.Bind(c.proc.inbox), p: c.proc}
}

// Schedule runs f asynchronously via the process's bounded scheduler.
// The process waits for scheduled tasks during shutdown.
func (c *Ctx) Schedule(f func()) { c.proc.sched.Schedule(f) }

type measuredSource struct {
	b *recv.Bound
	p *Proc
}

func (m *measuredSource) Next(token any) any {
	t := m.p.metrics.ReceiveWait()
	item := m.b.Next(token)
	t.ObserveDuration()

	matched := item != token
	m.p.metrics.ReceiveResult(m.p.id, matched)
	if matched {
		m.p.metrics.ItemYielded(reflector.TypeInfoOf(item).Name)
	}
	return item
}

var _ seq.Source = (*measuredSource)(nil)
