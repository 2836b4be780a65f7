//go:build unit || e2e

package notifytest

import (
	"context"
	"sync"

	"grab-service/internal/usecase/shared"
)

// Recorder is a shared.Notifier that keeps every notification it receives.
type Recorder struct {
	mu   sync.Mutex
	sent []shared.Notification
	Err  error
}

func (r *Recorder) Notify(_ context.Context, n shared.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return r.Err
}

func (r *Recorder) Sent() []shared.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]shared.Notification, len(r.sent))
	copy(out, r.sent)
	return out
}

func (r *Recorder) Count(event string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, s := range r.sent {
		if s.Event == event {
			n++
		}
	}
	return n
}
