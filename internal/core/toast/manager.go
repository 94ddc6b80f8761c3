package toast

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Subscriber is invoked with a snapshot of the toast list after every change.
type Subscriber func([]Toast)

type subscription struct {
	id int
	fn Subscriber
}

// Manager owns an ordered list of toasts for one UI surface. Identifiers are
// minted from a per-manager counter and never reused.
//
// Subscribers are called synchronously after each mutation, outside the
// internal lock, so they may call back into the Manager. Snapshots are queued
// and delivered in mutation order: a mutation made from inside a subscriber
// is delivered once the current snapshot has reached every subscriber, so the
// last snapshot each subscriber sees always matches the list.
type Manager struct {
	mu      sync.Mutex
	toasts  []Toast
	counter int
	subs    []subscription
	nextSub int

	pending    [][]Toast
	delivering bool

	defaultDuration time.Duration
	errorDuration   time.Duration
	maxToasts       int
	log             zerolog.Logger
	now             func() time.Time
}

// NewManager creates an empty Manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		defaultDuration: DefaultDuration,
		errorDuration:   ErrorDuration,
		log:             log.With().Str("cmp", "toast").Logger(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add appends a new toast and returns its identifier.
func (m *Manager) Add(category Category, message string, opts ...AddOption) string {
	if !category.Valid() {
		m.log.Warn().Str("category", string(category)).Msg("unknown toast category, using info")
		category = CategoryInfo
	}
	if message == "" {
		m.log.Warn().Str("category", string(category)).Msg("toast added with empty message")
	}

	m.mu.Lock()
	t := Toast{
		ID:        fmt.Sprintf("toast-%d", m.counter),
		Category:  category,
		Message:   message,
		Duration:  m.defaultDuration,
		CreatedAt: m.now(),
		owner:     m,
	}
	m.counter++

	for _, opt := range opts {
		opt(&t)
	}
	t.Duration = max(t.Duration, 0)

	m.toasts = append(m.toasts, t)

	var evicted []string
	if m.maxToasts > 0 && len(m.toasts) > m.maxToasts {
		drop := len(m.toasts) - m.maxToasts
		for _, old := range m.toasts[:drop] {
			evicted = append(evicted, old.ID)
		}
		m.toasts = slices.Clone(m.toasts[drop:])
	}

	m.enqueueLocked()
	m.mu.Unlock()

	m.log.Debug().
		Str("id", t.ID).
		Str("category", string(t.Category)).
		Dur("duration", t.Duration).
		Strs("evicted", evicted).
		Msg("toast added")

	m.deliver()
	return t.ID
}

// Remove deletes the toast with the given identifier. Unknown identifiers are
// ignored so late or duplicate dismiss signals are harmless.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	idx := slices.IndexFunc(m.toasts, func(t Toast) bool { return t.ID == id })
	if idx < 0 {
		m.mu.Unlock()
		m.log.Debug().Str("id", id).Msg("remove ignored, toast not present")
		return
	}

	m.toasts = slices.Delete(m.toasts, idx, idx+1)
	m.enqueueLocked()
	m.mu.Unlock()

	m.log.Debug().Str("id", id).Msg("toast removed")
	m.deliver()
}

// Clear removes every toast.
func (m *Manager) Clear() {
	m.mu.Lock()
	if len(m.toasts) == 0 {
		m.mu.Unlock()
		return
	}
	n := len(m.toasts)
	m.toasts = nil
	m.enqueueLocked()
	m.mu.Unlock()

	m.log.Debug().Int("count", n).Msg("toasts cleared")
	m.deliver()
}

// Success adds a success toast with the default duration.
func (m *Manager) Success(message, description string) string {
	return m.Add(CategorySuccess, message, WithDescription(description))
}

// Error adds an error toast. Errors stay on screen longer than other
// categories.
func (m *Manager) Error(message, description string) string {
	return m.Add(CategoryError, message, WithDescription(description), WithDuration(m.errorDuration))
}

// Info adds an info toast with the default duration.
func (m *Manager) Info(message, description string) string {
	return m.Add(CategoryInfo, message, WithDescription(description))
}

// Warning adds a warning toast with the default duration.
func (m *Manager) Warning(message, description string) string {
	return m.Add(CategoryWarning, message, WithDescription(description))
}

// Toasts returns a copy of the current list in insertion order.
func (m *Manager) Toasts() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.toasts)
}

// Get returns the toast with the given identifier.
func (m *Manager) Get(id string) (Toast, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	idx := slices.IndexFunc(m.toasts, func(t Toast) bool { return t.ID == id })
	if idx < 0 {
		return Toast{}, false
	}
	return m.toasts[idx], true
}

// Len returns the number of toasts currently held.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.toasts)
}

// Subscribe registers fn to be called after every change to the list. The
// returned function removes the subscription.
func (m *Manager) Subscribe(fn Subscriber) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs = append(m.subs, subscription{id: id, fn: fn})
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.subs = slices.DeleteFunc(m.subs, func(s subscription) bool { return s.id == id })
	}
}

func (m *Manager) enqueueLocked() {
	if len(m.subs) == 0 {
		return
	}
	m.pending = append(m.pending, slices.Clone(m.toasts))
}

// deliver drains the pending queue. Only one call drains at a time; calls
// made while a drain is running return immediately and their snapshots are
// picked up by the running drain.
func (m *Manager) deliver() {
	m.mu.Lock()
	if m.delivering {
		m.mu.Unlock()
		return
	}
	m.delivering = true

	drained := false
	defer func() {
		if !drained {
			// A subscriber panicked; drop the rest so later mutations still
			// get delivered.
			m.mu.Lock()
			m.pending = nil
			m.delivering = false
			m.mu.Unlock()
		}
	}()

	for len(m.pending) > 0 {
		snap := m.pending[0]
		m.pending = m.pending[1:]
		subs := make([]Subscriber, len(m.subs))
		for i, s := range m.subs {
			subs[i] = s.fn
		}
		m.mu.Unlock()

		for _, fn := range subs {
			fn(slices.Clone(snap))
		}

		m.mu.Lock()
	}
	m.pending = nil
	m.delivering = false
	drained = true
	m.mu.Unlock()
}
