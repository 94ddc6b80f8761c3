package tui

import (
	"sync"
	"time"

	"github.com/colonyops/toasts/internal/core/toast"
)

const (
	toastTickInterval = 100 * time.Millisecond
	toastWidth        = 48
)

// ToastController drives auto-dismissal. It mirrors the manager's list,
// tracks the remaining TTL of every timed toast, and removes toasts from the
// manager once their TTL runs out. Persistent toasts (zero duration) are
// never tracked.
//
// The manager may be mutated from any goroutine (a Toast.Dismiss from a timer,
// for example), so the TTL table is guarded by its own lock.
type ToastController struct {
	manager     *toast.Manager
	mu          sync.Mutex
	remaining   map[string]time.Duration
	ticking     bool
	unsubscribe func()
}

// NewToastController creates a controller subscribed to m.
func NewToastController(m *toast.Manager) *ToastController {
	c := &ToastController{
		manager:   m,
		remaining: make(map[string]time.Duration),
	}
	c.sync(m.Toasts())
	c.unsubscribe = m.Subscribe(c.sync)
	return c
}

// sync starts tracking new timed toasts and forgets toasts that are gone.
func (c *ToastController) sync(toasts []toast.Toast) {
	c.mu.Lock()
	defer c.mu.Unlock()

	present := make(map[string]struct{}, len(toasts))
	for _, t := range toasts {
		present[t.ID] = struct{}{}
		if t.Persistent() {
			continue
		}
		if _, ok := c.remaining[t.ID]; !ok {
			c.remaining[t.ID] = t.Duration
		}
	}

	for id := range c.remaining {
		if _, ok := present[id]; !ok {
			delete(c.remaining, id)
		}
	}
}

// Tick decrements the remaining TTL of every timed toast by d and removes
// the ones that expired. It returns the expired identifiers.
func (c *ToastController) Tick(d time.Duration) []string {
	c.mu.Lock()
	var expired []string
	for id, left := range c.remaining {
		left -= d
		if left <= 0 {
			expired = append(expired, id)
			delete(c.remaining, id)
			continue
		}
		c.remaining[id] = left
	}
	c.mu.Unlock()

	// Remove re-enters sync through the subscription, so it runs unlocked.
	for _, id := range expired {
		c.manager.Remove(id)
	}
	return expired
}

// Remaining returns the TTL left for id. ok is false for persistent or
// unknown toasts.
func (c *ToastController) Remaining(id string) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.remaining[id]
	return d, ok
}

// Pending returns the number of toasts waiting to expire.
func (c *ToastController) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.remaining)
}

// Ticking returns whether the tick timer is currently running.
func (c *ToastController) Ticking() bool {
	return c.ticking
}

// SetTicking sets the tick timer state.
func (c *ToastController) SetTicking(v bool) {
	c.ticking = v
}

// Close detaches the controller from the manager.
func (c *ToastController) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}
