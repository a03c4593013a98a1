package toast

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// expiry is the pending removal task for one toast. seq distinguishes tasks
// scheduled for the same id so a late timer never removes a newer toast.
type expiry struct {
	seq    uint64
	cancel Cancel
}

// Store is the authoritative holder of the active toasts and the only thing
// that mutates them. Expiry timers fire on their own goroutine, so the store
// serializes access with a mutex. Subscribers are called outside the lock.
type Store struct {
	mu          sync.Mutex
	toasts      []Toast
	pending     map[string]expiry
	seq         uint64
	subscribers []func()

	ttl       time.Duration
	scheduler Scheduler
	newID     func() string
	now       func() time.Time
	logger    zerolog.Logger
}

var _ Notifier = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithScheduler replaces the timer used for expiry.
func WithScheduler(s Scheduler) Option {
	return func(st *Store) { st.scheduler = s }
}

// WithTTL overrides DefaultTTL.
func WithTTL(d time.Duration) Option {
	return func(st *Store) { st.ttl = d }
}

// WithIDFunc replaces the id generator.
func WithIDFunc(fn func() string) Option {
	return func(st *Store) { st.newID = fn }
}

// WithClock replaces the source of CreatedAt timestamps.
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// WithLogger attaches a logger for lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(st *Store) { st.logger = l }
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		pending:   make(map[string]expiry),
		ttl:       DefaultTTL,
		scheduler: TimerScheduler{},
		newID:     uuid.NewString,
		now:       time.Now,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after every change to the sequence.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Add appends a toast, schedules its expiry, and returns the new id.
func (s *Store) Add(title, description string) string {
	s.mu.Lock()

	id := s.newID()
	for s.indexOf(id) >= 0 {
		id = s.newID()
	}

	s.toasts = append(s.toasts, Toast{
		ID:          id,
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	})

	s.seq++
	seq := s.seq
	s.pending[id] = expiry{
		seq:    seq,
		cancel: s.scheduler.Schedule(s.ttl, func() { s.expire(id, seq) }),
	}

	subs := s.subscribersLocked()
	s.mu.Unlock()

	s.logger.Debug().Str("id", id).Str("title", title).Msg("toast added")
	notifyAll(subs)
	return id
}

// Remove deletes the toast with the given id and cancels its expiry.
// Removing an unknown id is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	if e, ok := s.pending[id]; ok {
		e.cancel()
		delete(s.pending, id)
	}
	removed := s.removeLocked(id)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if removed {
		s.logger.Debug().Str("id", id).Msg("toast dismissed")
		notifyAll(subs)
	}
}

// Notify is Add under the Notifier name.
func (s *Store) Notify(title, description string) string {
	return s.Add(title, description)
}

// Dismiss is Remove under the Notifier name.
func (s *Store) Dismiss(id string) {
	s.Remove(id)
}

// Toasts returns a copy of the active toasts, oldest first.
func (s *Store) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.toasts)
}

// Len returns the number of active toasts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.toasts)
}

// Newest returns the most recently added toast.
func (s *Store) Newest() (Toast, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.toasts) == 0 {
		return Toast{}, false
	}
	return s.toasts[len(s.toasts)-1], true
}

// Close cancels every pending expiry and drops all toasts. Subscribers are
// not notified; the owning scope is going away.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.pending {
		e.cancel()
		delete(s.pending, id)
	}
	s.toasts = nil
}

func (s *Store) expire(id string, seq uint64) {
	s.mu.Lock()
	e, ok := s.pending[id]
	if !ok || e.seq != seq {
		s.mu.Unlock()
		return
	}
	delete(s.pending, id)
	removed := s.removeLocked(id)
	subs := s.subscribersLocked()
	s.mu.Unlock()

	if removed {
		s.logger.Debug().Str("id", id).Msg("toast expired")
		notifyAll(subs)
	}
}

func (s *Store) removeLocked(id string) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.toasts = slices.Delete(s.toasts, i, i+1)
	return true
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.toasts, func(t Toast) bool { return t.ID == id })
}

func (s *Store) subscribersLocked() []func() {
	return slices.Clone(s.subscribers)
}

func notifyAll(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}
