package recv

import (
	"errors"
	"fmt"
	"time"

	"github.com/jvantuyl/extra-enum/core/mailbox"
)

// NoTimeout configures a receive that waits indefinitely. This is a
// distinct configuration value, not a very large delay.
const NoTimeout = mailbox.NoTimeout

var (
	// ErrBothForms is returned when a Config carries both a single
	// pattern and a clause list.
	ErrBothForms = errors.New("recv: both single pattern and clause list configured")

	// ErrNoPattern is returned when a Config carries neither form.
	ErrNoPattern = errors.New("recv: no pattern configured")
)

type (
	// MatchFunc reports whether a message qualifies.
	MatchFunc = mailbox.MatchFunc

	// TransformFunc computes a clause's result from the matched message.
	TransformFunc func(msg any) any

	// Clause pairs a predicate with an optional result transform.
	// A nil Map returns the matched message unchanged.
	Clause struct {
		Match MatchFunc
		Map   TransformFunc
	}
)

// Config describes a match specification. Exactly one of Match (the
// single-pattern form) or Clauses (the multi-clause form) must be set.
type Config struct {
	Match   MatchFunc
	Clauses []Clause

	// Delay bounds each receive. 0 polls without blocking, NoTimeout
	// waits forever. Defaults to 0.
	Delay time.Duration
}

// Option adjusts a Config built by [Single] or [Select].
type Option func(*Config)

// WithDelay sets the per-receive timeout.
func WithDelay(d time.Duration) Option {
	return func(c *Config) { c.Delay = d }
}

// Spec is a compiled, reusable match specification. Building a Spec has
// no effect on any inbox.
type Spec struct {
	clauses []Clause
	preds   []mailbox.MatchFunc
	delay   time.Duration
}

// New validates cfg and compiles it into a Spec. Configuration errors are
// reported here, never deferred to the first receive.
func New(cfg Config) (*Spec, error) {
	if cfg.Match != nil && len(cfg.Clauses) > 0 {
		return nil, ErrBothForms
	}
	if cfg.Match == nil && len(cfg.Clauses) == 0 {
		return nil, ErrNoPattern
	}
	if cfg.Delay < 0 && cfg.Delay != NoTimeout {
		return nil, fmt.Errorf("recv: invalid delay %v", cfg.Delay)
	}

	clauses := cfg.Clauses
	if cfg.Match != nil {
		clauses = []Clause{{Match: cfg.Match}}
	}

	s := &Spec{
		clauses: make([]Clause, len(clauses)),
		preds:   make([]mailbox.MatchFunc, len(clauses)),
		delay:   cfg.Delay,
	}
	for i, cl := range clauses {
		if cl.Match == nil {
			return nil, fmt.Errorf("recv: clause %d has no predicate", i)
		}
		s.clauses[i] = cl
		s.preds[i] = cl.Match
	}
	return s, nil
}

// Single builds a single-pattern Spec: matched messages are returned
// unchanged.
func Single(match MatchFunc, opts ...Option) (*Spec, error) {
	cfg := Config{Match: match}
	for _, o := range opts {
		o(&cfg)
	}
	return New(cfg)
}

// Select builds a multi-clause Spec. Clause order is significant: a
// message satisfying several clauses is handled by the earliest one.
func Select(clauses []Clause, opts ...Option) (*Spec, error) {
	cfg := Config{Clauses: clauses}
	for _, o := range opts {
		o(&cfg)
	}
	return New(cfg)
}

// Delay returns the configured per-receive timeout.
func (s *Spec) Delay() time.Duration { return s.delay }

// Len returns the number of clauses.
func (s *Spec) Len() int { return len(s.clauses) }

// Bind attaches the Spec to an inbox, producing a fresh single-use pull
// handle. Bind itself touches no inbox state.
func (s *Spec) Bind(in *mailbox.Inbox) *Bound {
	return &Bound{spec: s, in: in}
}

// Bound is a single-use pull handle over one inbox. It is not safe for
// concurrent use; one goroutine drives a Bound at a time.
type Bound struct {
	spec      *Spec
	in        *mailbox.Inbox
	exhausted bool
}

// Next performs one selective receive. It blocks for up to the Spec's
// delay and returns the matched clause's result, or token if nothing
// qualified in time. Callers must compare the return value against token
// by identity: a fresh token per call can never equal a real message.
//
// The first timeout exhausts the Bound; afterwards Next returns token
// immediately without touching the inbox.
func (b *Bound) Next(token any) any {
	if b.exhausted {
		return token
	}

	msg, clause, ok := b.in.TakeMatch(b.spec.preds, b.spec.delay)
	if !ok {
		b.exhausted = true
		return token
	}
	if m := b.spec.clauses[clause].Map; m != nil {
		return m(msg)
	}
	return msg
}

// Exhausted reports whether a previous Next timed out.
func (b *Bound) Exhausted() bool { return b.exhausted }
