package toast_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusmart/campusmart/internal/core/toast"
	"github.com/campusmart/campusmart/internal/core/toast/toasttest"
)

func titles(ts []toast.Toast) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.Title)
	}
	return out
}

func TestStore_Add(t *testing.T) {
	t.Run("keeps call order", func(t *testing.T) {
		s, _ := toasttest.NewStore()

		for i := range 5 {
			s.Add(fmt.Sprintf("t%d", i), "")
		}

		assert.Equal(t, []string{"t0", "t1", "t2", "t3", "t4"}, titles(s.Toasts()))
	})

	t.Run("returns unique ids", func(t *testing.T) {
		s, _ := toasttest.NewStore()

		seen := make(map[string]bool)
		for range 50 {
			id := s.Add("x", "y")
			require.NotEmpty(t, id)
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})

	t.Run("regenerates colliding ids", func(t *testing.T) {
		ids := []string{"a", "a", "b"}
		s, _ := toasttest.NewStore(toast.WithIDFunc(func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		}))

		first := s.Add("one", "")
		second := s.Add("two", "")

		assert.Equal(t, "a", first)
		assert.Equal(t, "b", second)
	})

	t.Run("accepts empty strings", func(t *testing.T) {
		s, _ := toasttest.NewStore()

		id := s.Add("", "")

		require.Len(t, s.Toasts(), 1)
		assert.Equal(t, id, s.Toasts()[0].ID)
		assert.Empty(t, s.Toasts()[0].Title)
	})

	t.Run("stamps creation time", func(t *testing.T) {
		now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		s, _ := toasttest.NewStore(toast.WithClock(func() time.Time { return now }))

		s.Add("x", "")

		assert.Equal(t, now, s.Toasts()[0].CreatedAt)
	})

	t.Run("present immediately after return", func(t *testing.T) {
		s, _ := toasttest.NewStore()

		id := s.Add("Message Sent", "desc")

		ts := s.Toasts()
		require.Len(t, ts, 1)
		assert.Equal(t, id, ts[0].ID)
		assert.Equal(t, "desc", ts[0].Description)
	})
}

func TestStore_Expiry(t *testing.T) {
	t.Run("removed after ttl", func(t *testing.T) {
		s, sched := toasttest.NewStore()

		s.Add("x", "")

		sched.Advance(toast.DefaultTTL - time.Millisecond)
		assert.Equal(t, 1, s.Len())

		sched.Advance(time.Millisecond)
		assert.Equal(t, 0, s.Len())
		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("expires in insertion order", func(t *testing.T) {
		s, sched := toasttest.NewStore()

		s.Add("first", "")
		sched.Advance(2 * time.Second)
		s.Add("second", "")

		sched.Advance(3 * time.Second)
		assert.Equal(t, []string{"second"}, titles(s.Toasts()))

		sched.Advance(2 * time.Second)
		assert.Empty(t, s.Toasts())
	})

	t.Run("custom ttl", func(t *testing.T) {
		s, sched := toasttest.NewStore(toast.WithTTL(time.Second))

		s.Add("x", "")
		sched.Advance(time.Second)

		assert.Empty(t, s.Toasts())
	})

	t.Run("real timer", func(t *testing.T) {
		s := toast.NewStore(toast.WithTTL(10 * time.Millisecond))
		t.Cleanup(s.Close)

		s.Add("x", "")
		assert.Equal(t, 1, s.Len())

		assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	})
}

func TestStore_Remove(t *testing.T) {
	t.Run("removes only the matching entry", func(t *testing.T) {
		s, _ := toasttest.NewStore()

		s.Add("a", "")
		id := s.Add("b", "")
		s.Add("c", "")

		s.Remove(id)

		assert.Equal(t, []string{"a", "c"}, titles(s.Toasts()))
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		s, _ := toasttest.NewStore()
		s.Add("a", "")

		assert.NotPanics(t, func() { s.Remove("missing") })
		assert.Equal(t, []string{"a"}, titles(s.Toasts()))
	})

	t.Run("twice equals once", func(t *testing.T) {
		s, _ := toasttest.NewStore()
		s.Add("a", "")
		id := s.Add("b", "")

		s.Remove(id)
		once := s.Toasts()
		s.Remove(id)

		assert.Equal(t, once, s.Toasts())
	})

	t.Run("cancels pending expiry", func(t *testing.T) {
		s, sched := toasttest.NewStore()
		id := s.Add("a", "")
		require.Equal(t, 1, sched.Pending())

		s.Remove(id)

		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("late timer after dismiss is harmless", func(t *testing.T) {
		s, sched := toasttest.NewStore()
		id := s.Add("a", "")
		s.Add("b", "")
		s.Remove(id)

		sched.FireAll()

		assert.Empty(t, s.Toasts())
	})

	t.Run("stale timer does not remove a reused id", func(t *testing.T) {
		s, sched := toasttest.NewStore(toast.WithIDFunc(func() string { return "same" }))

		s.Add("old", "")
		s.Remove("same")
		s.Add("new", "")

		// Fires the cancelled task for "old" as well as the live one.
		sched.FireAll()
		assert.Empty(t, s.Toasts())

		s.Add("newer", "")
		sched.Advance(time.Second)
		assert.Equal(t, []string{"newer"}, titles(s.Toasts()))
	})
}

func TestStore_Subscribe(t *testing.T) {
	s, sched := toasttest.NewStore()

	calls := 0
	s.Subscribe(func() { calls++ })

	id := s.Add("a", "")
	assert.Equal(t, 1, calls)

	s.Remove("missing")
	assert.Equal(t, 1, calls, "no-op removal should not notify")

	s.Remove(id)
	assert.Equal(t, 2, calls)

	s.Add("b", "")
	sched.Advance(toast.DefaultTTL)
	assert.Equal(t, 4, calls)
}

func TestStore_Subscriber_reads_latest_state(t *testing.T) {
	s, _ := toasttest.NewStore()

	var seen []int
	s.Subscribe(func() { seen = append(seen, s.Len()) })

	s.Add("a", "")
	s.Add("b", "")

	assert.Equal(t, []int{1, 2}, seen)
}

func TestStore_Close(t *testing.T) {
	s, sched := toasttest.NewStore()
	s.Add("a", "")
	s.Add("b", "")

	s.Close()

	assert.Empty(t, s.Toasts())
	assert.Equal(t, 0, sched.Pending())
}

func TestStore_Newest(t *testing.T) {
	s, _ := toasttest.NewStore()

	_, ok := s.Newest()
	assert.False(t, ok)

	s.Add("a", "")
	s.Add("b", "")

	newest, ok := s.Newest()
	require.True(t, ok)
	assert.Equal(t, "b", newest.Title)
}

func TestStore_Toasts_returns_copy(t *testing.T) {
	s, _ := toasttest.NewStore()
	s.Add("a", "")

	ts := s.Toasts()
	ts[0].Title = "mutated"

	assert.Equal(t, "a", s.Toasts()[0].Title)
}
