package seq

import (
	"errors"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ErrUnsupported is reported by capability queries that cannot be
// answered for an inbox-backed sequence. This is a permanent, by-design
// limitation, not a transient failure.
var ErrUnsupported = errors.New("seq: not supported for inbox-backed sequences")

// Source yields one item per pull. Next blocks for up to the source's
// configured delay and returns either the next item or the given token
// (same identity) when nothing arrived in time. [recv.Bound] is the
// canonical implementation.
type Source interface {
	Next(token any) any
}

// token marks a timed-out pull. A fresh token is allocated per pull so a
// stale one can never be mistaken for a later timeout; identity of the
// pointer is the only thing that matters, the id exists for log output.
type token struct{ id string }

func newToken() *token { return &token{id: gonanoid.Must(8)} }

func (t *token) String() string { return "timeout-token/" + t.id }

type cmdKind int

const (
	cmdContinue cmdKind = iota
	cmdSuspend
	cmdHalt
)

// Command is a consumer's instruction to the reduction: keep going, pause
// here, or stop for good. Each carries the accumulator.
type Command[A any] struct {
	kind cmdKind
	acc  A
}

// Continue instructs the reduction to pull the next item.
func Continue[A any](acc A) Command[A] { return Command[A]{kind: cmdContinue, acc: acc} }

// Suspend instructs the reduction to pause and hand back a resumption.
func Suspend[A any](acc A) Command[A] { return Command[A]{kind: cmdSuspend, acc: acc} }

// Halt instructs the reduction to terminate without further pulls.
func Halt[A any](acc A) Command[A] { return Command[A]{kind: cmdHalt, acc: acc} }

// Acc returns the accumulator the command carries.
func (c Command[A]) Acc() A { return c.acc }

// State classifies how a reduction came to rest.
type State int

const (
	// Done: the source reported exhaustion (a pull timed out).
	Done State = iota
	// Halted: the consumer issued Halt.
	Halted
	// Suspended: the consumer issued Suspend; Result.Resume continues.
	Suspended
)

func (s State) String() string {
	switch s {
	case Done:
		return "done"
	case Halted:
		return "halted"
	case Suspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// Resumption continues a suspended reduction from exactly where it left
// off. Invoke it at most once, from one goroutine; it hands control
// forward serially.
type Resumption[A any] func(cmd Command[A]) Result[A]

// Result is the outcome of a reduction. Resume is non-nil only when
// State is Suspended.
type Result[A any] struct {
	State  State
	Acc    A
	Resume Resumption[A]
}

// StepFunc computes the next protocol command from a received item and
// the current accumulator.
type StepFunc[A any] func(item any, acc A) Command[A]

// Reduce drives src with the three-state protocol, starting from cmd.
//
// Halt returns immediately with the carried accumulator; no pull happens.
// Suspend returns a Suspended result whose Resume picks up the same
// reduction. Continue allocates a fresh timeout token, pulls once, and
// either finishes with Done (the pull returned the token) or applies step
// and repeats with its command.
//
// Reduce removes at most one message from the underlying inbox per
// Continue and never re-delivers an item. Errors and panics raised by
// step propagate to the caller untouched.
func Reduce[A any](src Source, cmd Command[A], step StepFunc[A]) Result[A] {
	for {
		switch cmd.kind {
		case cmdHalt:
			return Result[A]{State: Halted, Acc: cmd.acc}
		case cmdSuspend:
			return Result[A]{
				State: Suspended,
				Acc:   cmd.acc,
				Resume: func(next Command[A]) Result[A] {
					return Reduce(src, next, step)
				},
			}
		}

		tok := newToken()
		item := src.Next(tok)
		if item == any(tok) {
			return Result[A]{State: Done, Acc: cmd.acc}
		}
		cmd = step(item, cmd.acc)
	}
}

// Count always reports ErrUnsupported: inbox contents are unbounded and
// unknowable ahead of time.
func Count(Source) (int, error) { return 0, ErrUnsupported }

// At always reports ErrUnsupported: positional access would require
// consuming and discarding messages.
func At(Source, int) (any, error) { return nil, ErrUnsupported }
