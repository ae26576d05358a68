package mailbox

import (
	"errors"
	"sync"
	"time"
)

// NoTimeout makes [Inbox.TakeMatch] wait indefinitely for a match.
// Any other negative timeout is invalid.
const NoTimeout time.Duration = -1

// ErrClosed is returned by Push after the inbox has been closed.
var ErrClosed = errors.New("inbox closed")

type (
	// MatchFunc reports whether a message qualifies for removal.
	MatchFunc func(msg any) bool

	// DepthFunc observes the queue depth after every push and removal.
	DepthFunc func(depth int)
)

// Options configures an Inbox. The zero value is usable.
type Options struct {
	// OnDepth, if set, is called with the queue depth after every
	// mutation. Called with the inbox lock held; must not block.
	OnDepth DepthFunc
}

// Inbox is an ordered queue of messages supporting atomic selective
// removal. See the package documentation for the contract.
type Inbox struct {
	mu      sync.Mutex
	items   []any
	arrived chan struct{} // closed and replaced on every push
	closed  bool
	onDepth DepthFunc
}

func New(opt Options) *Inbox {
	return &Inbox{
		arrived: make(chan struct{}),
		onDepth: opt.OnDepth,
	}
}

// Push appends a message to the inbox and wakes any waiting receiver.
// Safe for concurrent use by multiple producers.
func (in *Inbox) Push(msg any) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.closed {
		return ErrClosed
	}

	in.items = append(in.items, msg)
	close(in.arrived)
	in.arrived = make(chan struct{})
	in.notifyDepth()
	return nil
}

// TakeMatch removes and returns the first message (in arrival order)
// satisfying any of the given predicates, together with the index of the
// first predicate it satisfies. Messages matching no predicate are left in
// place and in order.
//
// timeout semantics:
//   - 0: poll; return immediately unless a match is already queued.
//   - >0: block up to timeout for a qualifying message.
//   - NoTimeout: block until a qualifying message arrives.
//
// If no match is found before the timeout elapses, ok is false and the
// inbox is unchanged. On a closed inbox, queued messages may still be
// matched; once none qualify, TakeMatch returns immediately.
func (in *Inbox) TakeMatch(clauses []MatchFunc, timeout time.Duration) (msg any, clause int, ok bool) {
	if len(clauses) == 0 {
		return nil, 0, false
	}

	var expired <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}

	// Messages scanned once cannot match later: predicates are fixed and
	// removals only happen from this call. Resume scanning at the first
	// unseen message after each wakeup.
	scanned := 0
	for {
		in.mu.Lock()
		for i := scanned; i < len(in.items); i++ {
			for c, match := range clauses {
				if match(in.items[i]) {
					msg = in.items[i]
					in.items = append(in.items[:i], in.items[i+1:]...)
					in.notifyDepth()
					in.mu.Unlock()
					return msg, c, true
				}
			}
		}
		scanned = len(in.items)
		closed := in.closed
		wait := in.arrived
		in.mu.Unlock()

		if closed || timeout == 0 {
			return nil, 0, false
		}

		if timeout == NoTimeout {
			<-wait
			continue
		}

		select {
		case <-wait:
		case <-expired:
			return nil, 0, false
		}
	}
}

// Len returns the current number of queued messages.
func (in *Inbox) Len() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.items)
}

// Snapshot returns a copy of the queued messages in arrival order.
// Intended for tests and diagnostics.
func (in *Inbox) Snapshot() []any {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := make([]any, len(in.items))
	copy(out, in.items)
	return out
}

// Close rejects further pushes and unblocks waiting receivers. Queued
// messages stay receivable until drained. Idempotent.
func (in *Inbox) Close() {
	in.mu.Lock()
	defer in.mu.Unlock()
	if in.closed {
		return
	}
	in.closed = true
	close(in.arrived)
	in.arrived = make(chan struct{})
}

func (in *Inbox) notifyDepth() {
	if in.onDepth != nil {
		in.onDepth(len(in.items))
	}
}
