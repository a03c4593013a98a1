// Package toasttest provides test helpers for code that depends on the
// toast store.
package toasttest

import (
	"sort"
	"sync"
	"time"

	"github.com/campusmart/campusmart/internal/core/toast"
)

type task struct {
	at        time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// Scheduler is a toast.Scheduler driven by a manual clock. Tasks only run
// when Advance moves the clock past their deadline.
type Scheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*task
}

var _ toast.Scheduler = (*Scheduler)(nil)

// NewScheduler returns a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Schedule(d time.Duration, fn func()) toast.Cancel {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &task{at: s.now + d, fn: fn}
	s.tasks = append(s.tasks, t)

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if t.fired || t.cancelled {
			return false
		}
		t.cancelled = true
		return true
	}
}

// Advance moves the clock forward by d and runs every task that became due,
// in deadline order.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d

	var due []*task
	for _, t := range s.tasks {
		if !t.fired && !t.cancelled && t.at <= s.now {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of tasks that have neither fired nor been
// cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, t := range s.tasks {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}

// FireAll runs every scheduled task, including cancelled ones. It models a
// runtime whose timers cannot be cancelled.
func (s *Scheduler) FireAll() {
	s.mu.Lock()
	all := append([]*task(nil), s.tasks...)
	for _, t := range all {
		t.fired = true
	}
	s.mu.Unlock()

	for _, t := range all {
		t.fn()
	}
}

// NewStore returns a toast store wired to a manual scheduler.
func NewStore(opts ...toast.Option) (*toast.Store, *Scheduler) {
	sched := NewScheduler()
	opts = append([]toast.Option{toast.WithScheduler(sched)}, opts...)
	return toast.NewStore(opts...), sched
}
