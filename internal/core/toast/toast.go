// Package toast manages the in-memory list of transient notifications shown
// by a user interface.
package toast

import "time"

// Category represents the semantic type of a toast.
type Category string

const (
	CategorySuccess Category = "success"
	CategoryError   Category = "error"
	CategoryInfo    Category = "info"
	CategoryWarning Category = "warning"
)

// Categories returns every supported category in a stable order.
func Categories() []Category {
	return []Category{CategorySuccess, CategoryError, CategoryInfo, CategoryWarning}
}

// Valid reports whether c is one of the supported categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySuccess, CategoryError, CategoryInfo, CategoryWarning:
		return true
	}
	return false
}

const (
	// DefaultDuration is how long success, info and warning toasts are displayed.
	DefaultDuration = 5 * time.Second
	// ErrorDuration is how long error toasts are displayed.
	ErrorDuration = 7 * time.Second
)

// Toast is a single notification record. A zero Duration means the toast is
// never auto-dismissed.
type Toast struct {
	ID          string
	Category    Category
	Message     string
	Description string
	Duration    time.Duration
	CreatedAt   time.Time

	owner *Manager
}

// Persistent reports whether the toast stays until dismissed explicitly.
func (t Toast) Persistent() bool {
	return t.Duration == 0
}

// Dismiss removes this toast from the manager that created it. Calling it
// after the toast is already gone is a no-op.
func (t Toast) Dismiss() {
	if t.owner == nil {
		return
	}
	t.owner.Remove(t.ID)
}
