package tui

import (
	"context"
	"time"

	"github.com/colonyops/toasts/internal/core/toast"
)

// Simulate pushes a rotating sample toast into inbox every interval until ctx
// is cancelled. It is meant to run on its own goroutine.
func Simulate(ctx context.Context, inbox *ToastInbox, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	cats := toast.Categories()
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c := cats[i%len(cats)]
			s := samples[c][(i/len(cats))%len(samples[c])]
			inbox.Push(ToastRequest{Category: c, Message: s.message, Description: s.description})
		}
	}
}
