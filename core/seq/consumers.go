package seq

// Convenience consumers built strictly on [Reduce]. They exist so common
// consumption shapes don't each reimplement the protocol; none of them
// reach around it.

// Collect pulls until exhaustion and returns every item in arrival order.
func Collect(src Source) []any {
	res := Reduce(src, Continue[[]any](nil), func(item any, acc []any) Command[[]any] {
		return Continue(append(acc, item))
	})
	return res.Acc
}

// Each applies f to every item until exhaustion.
func Each(src Source, f func(item any)) {
	Reduce(src, Continue(struct{}{}), func(item any, acc struct{}) Command[struct{}] {
		f(item)
		return Continue(acc)
	})
}

// Take pulls at most n items, halting early once it has them. With n <= 0
// it halts before the first pull and removes nothing.
func Take(src Source, n int) []any {
	start := Continue[[]any](nil)
	if n <= 0 {
		start = Halt[[]any](nil)
	}
	res := Reduce(src, start, func(item any, acc []any) Command[[]any] {
		acc = append(acc, item)
		if len(acc) >= n {
			return Halt(acc)
		}
		return Continue(acc)
	})
	return res.Acc
}

// Fold reduces all items into a single value, starting from init.
func Fold[A any](src Source, init A, f func(acc A, item any) A) A {
	res := Reduce(src, Continue(init), func(item any, acc A) Command[A] {
		return Continue(f(acc, item))
	})
	return res.Acc
}
