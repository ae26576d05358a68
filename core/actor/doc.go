// Package actor hosts process-style actors around selective-receive
// inboxes.
//
// A process is a goroutine with a private [mailbox.Inbox]. Unlike
// dispatch-table actors, the process body decides what to consume and
// when, using compiled match specifications:
//
//	p := actor.Spawn(actor.Options{}, func(c *actor.Ctx) error {
//	    orders, _ := recv.Single(isOrder, recv.WithDelay(time.Second))
//	    for _, o := range seq.Collect(c.Sequence(orders)) {
//	        c.Log().Info("order", slog.Any("msg", o))
//	    }
//	    return nil
//	})
//	defer p.Stop()
//
//	p.Send(ctx, orderPlaced{ID: "o-1"})
//
// Messages the body never asks for stay queued; a later receive with a
// different specification can still observe them, in arrival order.
//
// The process body runs with crash containment: a panic is routed to the
// [Options.OnPanic] hook and surfaces as an error from [Proc.Err] instead
// of taking down the program. Background work started via [Ctx.Schedule]
// is bounded and waited for during shutdown.
package actor
