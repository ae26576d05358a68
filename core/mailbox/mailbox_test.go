package mailbox

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isInt(m any) bool {
	_, ok := m.(int)
	return ok
}

func TestInbox_take_in_arrival_order(t *testing.T) {
	in := New(Options{})
	require.NoError(t, in.Push(1))
	require.NoError(t, in.Push(2))
	require.NoError(t, in.Push(3))

	for want := 1; want <= 3; want++ {
		msg, clause, ok := in.TakeMatch([]MatchFunc{isInt}, 0)
		require.True(t, ok)
		require.Equal(t, 0, clause)
		require.Equal(t, want, msg)
	}
	require.Equal(t, 0, in.Len())
}

func TestInbox_unmatched_left_in_place(t *testing.T) {
	in := New(Options{})
	for _, m := range []any{"a", 1, "b", 2, "c"} {
		require.NoError(t, in.Push(m))
	}

	msg, _, ok := in.TakeMatch([]MatchFunc{isInt}, 0)
	require.True(t, ok)
	require.Equal(t, 1, msg)

	msg, _, ok = in.TakeMatch([]MatchFunc{isInt}, 0)
	require.True(t, ok)
	require.Equal(t, 2, msg)

	require.Equal(t, []any{"a", "b", "c"}, in.Snapshot())
}

func TestInbox_first_clause_wins(t *testing.T) {
	in := New(Options{})
	require.NoError(t, in.Push(7)) // matches both clauses

	any7 := func(m any) bool { return true }
	_, clause, ok := in.TakeMatch([]MatchFunc{isInt, any7}, 0)
	require.True(t, ok)
	require.Equal(t, 0, clause)
}

func TestInbox_poll_returns_immediately(t *testing.T) {
	in := New(Options{})
	require.NoError(t, in.Push("nope"))

	start := time.Now()
	_, _, ok := in.TakeMatch([]MatchFunc{isInt}, 0)
	require.False(t, ok)
	require.Less(t, time.Since(start), 100*time.Millisecond)
	require.Equal(t, []any{"nope"}, in.Snapshot())
}

func TestInbox_timeout_unchanged(t *testing.T) {
	in := New(Options{})
	require.NoError(t, in.Push("nope"))

	_, _, ok := in.TakeMatch([]MatchFunc{isInt}, 20*time.Millisecond)
	require.False(t, ok)
	require.Equal(t, []any{"nope"}, in.Snapshot())
}

func TestInbox_wakes_on_late_arrival(t *testing.T) {
	in := New(Options{})

	go func() {
		time.Sleep(10 * time.Millisecond)
		_ = in.Push("ignored")
		_ = in.Push(42)
	}()

	msg, _, ok := in.TakeMatch([]MatchFunc{isInt}, time.Second)
	require.True(t, ok)
	require.Equal(t, 42, msg)
	require.Equal(t, []any{"ignored"}, in.Snapshot())
}

func TestInbox_no_timeout_blocks_until_match(t *testing.T) {
	in := New(Options{})

	go func() {
		time.Sleep(10 * time.Millisecond)
		_ = in.Push(1)
	}()

	msg, _, ok := in.TakeMatch([]MatchFunc{isInt}, NoTimeout)
	require.True(t, ok)
	require.Equal(t, 1, msg)
}

func TestInbox_close(t *testing.T) {
	t.Run("push rejected", func(t *testing.T) {
		in := New(Options{})
		in.Close()
		require.ErrorIs(t, in.Push(1), ErrClosed)
	})

	t.Run("unblocks waiter", func(t *testing.T) {
		in := New(Options{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _, ok := in.TakeMatch([]MatchFunc{isInt}, NoTimeout)
			require.False(t, ok)
		}()
		time.Sleep(10 * time.Millisecond)
		in.Close()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("waiter not unblocked")
		}
	})

	t.Run("drains queued messages", func(t *testing.T) {
		in := New(Options{})
		require.NoError(t, in.Push(1))
		in.Close()

		msg, _, ok := in.TakeMatch([]MatchFunc{isInt}, NoTimeout)
		require.True(t, ok)
		require.Equal(t, 1, msg)

		_, _, ok = in.TakeMatch([]MatchFunc{isInt}, NoTimeout)
		require.False(t, ok)
	})
}

func TestInbox_concurrent_producers(t *testing.T) {
	in := New(Options{})

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			require.NoError(t, in.Push(i))
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for i := 0; i < n; i++ {
		msg, _, ok := in.TakeMatch([]MatchFunc{isInt}, 0)
		require.True(t, ok)
		seen[msg.(int)] = true
	}
	require.Len(t, seen, n)
	require.Equal(t, 0, in.Len())
}

func TestInbox_depth_callback(t *testing.T) {
	var depths []int
	in := New(Options{OnDepth: func(d int) { depths = append(depths, d) }})

	require.NoError(t, in.Push(1))
	require.NoError(t, in.Push(2))
	_, _, ok := in.TakeMatch([]MatchFunc{isInt}, 0)
	require.True(t, ok)

	require.Equal(t, []int{1, 2, 1}, depths)
}
