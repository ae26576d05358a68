// Package mailbox provides the ordered, selectively-consumable message
// queue that backs a process's inbox.
//
// An [Inbox] is a FIFO queue of arbitrary messages with one distinguishing
// operation: [Inbox.TakeMatch], a blocking selective receive. TakeMatch
// scans the queue in arrival order for the first message satisfying any of
// a set of predicates, removes exactly that message, and returns it
// together with the index of the matching predicate. Messages that match
// no predicate stay in the queue, in order, and remain visible to later
// receives with different predicates.
//
// The match-and-remove step is atomic: either a message is removed and
// returned, or the timeout elapses and the inbox is untouched. All higher
// layers (core/recv, core/seq) are built strictly on that guarantee.
//
// Delivery ([Inbox.Push]) is safe for any number of concurrent producers.
// Extraction is intended to be driven from a single goroutine at a time,
// the owning process.
package mailbox
