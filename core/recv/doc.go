// Package recv compiles match specifications for selective receives.
//
// A [Spec] describes what to accept from an inbox: one or more match
// clauses plus a receive delay. Building a Spec is pure, it touches no
// inbox. Binding a Spec to an inbox yields a [Bound], a single-use pull
// handle whose Next method performs one selective receive per call.
//
// The single-pattern form accepts a message unchanged:
//
//	spec, err := recv.Single(func(m any) bool {
//	    _, ok := m.(orderPlaced)
//	    return ok
//	}, recv.WithDelay(100*time.Millisecond))
//
// The multi-clause form pairs each predicate with a transform; for a
// message satisfying several clauses the earliest declared clause wins:
//
//	spec, err := recv.Select([]recv.Clause{
//	    {Match: isUrgent, Map: func(m any) any { return tagUrgent(m) }},
//	    {Match: isOrder},
//	})
//
// A Bound draws from the live inbox: every Next removes at most one
// message, and independently bound Specs over the same inbox compete for
// the same messages. After a receive times out the Bound is exhausted and
// further Next calls return the timeout token without touching the inbox.
package recv
