package toast

import (
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Manager.
type Option func(*Manager)

// WithDefaultDuration sets the display duration used by Add, Success, Info
// and Warning when no explicit duration is given.
func WithDefaultDuration(d time.Duration) Option {
	return func(m *Manager) {
		m.defaultDuration = max(d, 0)
	}
}

// WithErrorDuration sets the display duration used by Error.
func WithErrorDuration(d time.Duration) Option {
	return func(m *Manager) {
		m.errorDuration = max(d, 0)
	}
}

// WithMaxToasts caps the number of retained toasts. When the cap is exceeded
// the oldest toasts are evicted. Zero means unlimited.
func WithMaxToasts(n int) Option {
	return func(m *Manager) {
		m.maxToasts = max(n, 0)
	}
}

// WithLogger sets the logger used by the manager.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Manager) {
		m.log = l
	}
}

// WithClock overrides the time source used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// AddOption customizes a single Add call.
type AddOption func(*Toast)

// WithDescription attaches a secondary description line.
func WithDescription(s string) AddOption {
	return func(t *Toast) {
		t.Description = s
	}
}

// WithDuration overrides the display duration. Zero disables auto-dismiss.
func WithDuration(d time.Duration) AddOption {
	return func(t *Toast) {
		t.Duration = d
	}
}
