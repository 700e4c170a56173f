package hub

import (
	"context"
	"sync"

	"github.com/sarkarshuvojit/ecg-playback/pkg/render"
)

// Hub keeps the most recent frame and hands every new one to live
// subscribers. A subscriber that has not consumed its previous frame gets
// the newer one instead; frames are never queued.
type Hub struct {
	mu     sync.RWMutex
	latest *render.Frame
	subs   map[chan render.Frame]struct{}
}

func New() *Hub {
	return &Hub{
		subs: make(map[chan render.Frame]struct{}),
	}
}

func (h *Hub) Publish(ctx context.Context, f render.Frame) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = &f
	for ch := range h.subs {
		select {
		case ch <- f:
		default:
			// drop the stale frame so the subscriber sees the newest one
			select {
			case <-ch:
			default:
			}
			ch <- f
		}
	}
	return nil
}

// Latest returns the last published frame.
func (h *Hub) Latest() (render.Frame, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.latest == nil {
		return render.Frame{}, false
	}
	return *h.latest, true
}

// Subscribe registers a new listener. The returned cancel func must be called
// to release it.
func (h *Hub) Subscribe() (<-chan render.Frame, func()) {
	ch := make(chan render.Frame, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
		})
	}
	return ch, cancel
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
