package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/toasts/internal/core/toast"
)

// ToastRequest asks for a toast to be added from outside the Update loop.
type ToastRequest struct {
	Category    toast.Category
	Message     string
	Description string
}

type drainToastsMsg struct{}

// ToastInbox buffers toast requests from other goroutines and emits
// coalesced drain signals, so the manager is only mutated from the Update loop.
type ToastInbox struct {
	mu       sync.Mutex
	requests []ToastRequest
	signal   chan struct{}
}

// NewToastInbox constructs an empty inbox.
func NewToastInbox() *ToastInbox {
	return &ToastInbox{
		signal: make(chan struct{}, 1),
	}
}

// Push appends a request and emits a non-blocking drain signal.
func (b *ToastInbox) Push(r ToastRequest) {
	b.mu.Lock()
	b.requests = append(b.requests, r)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns all buffered requests and clears the buffer.
func (b *ToastInbox) Drain() []ToastRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.requests) == 0 {
		return nil
	}

	out := make([]ToastRequest, len(b.requests))
	copy(out, b.requests)
	b.requests = b.requests[:0]
	return out
}

// WaitForSignal blocks until there are requests ready to drain.
func (b *ToastInbox) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return drainToastsMsg{}
	}
}

// apply adds r to m through the typed helper for its category.
func (r ToastRequest) apply(m *toast.Manager) string {
	switch r.Category {
	case toast.CategorySuccess:
		return m.Success(r.Message, r.Description)
	case toast.CategoryError:
		return m.Error(r.Message, r.Description)
	case toast.CategoryWarning:
		return m.Warning(r.Message, r.Description)
	default:
		return m.Info(r.Message, r.Description)
	}
}
