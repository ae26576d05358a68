// Package seq drives pull-based reductions over inbox-backed sources.
//
// A [Source] yields one item per pull and signals exhaustion by returning
// the caller-supplied timeout token (compared by identity). [Reduce]
// layers the standard three-state consumption protocol on top:
//
//   - [Continue]: pull the next item and feed it to the step function.
//   - [Halt]: stop now; no further pulls happen.
//   - [Suspend]: stop for now; the result carries a resumption that
//     continues the same reduction later, over the same source, with no
//     item skipped or repeated.
//
// Pulls are destructive and non-repeatable: each Continue removes at most
// one message from the underlying inbox, and a message handed to the step
// function is never re-delivered. A panic in the step function propagates
// to the caller unmodified; the message that triggered it is already gone
// from the inbox and is not restored.
//
// Because exhaustion is a timeout policy rather than a real end-of-data
// signal, [Count] and [At] are permanently unsupported and report
// [ErrUnsupported] instead of approximating.
package seq
