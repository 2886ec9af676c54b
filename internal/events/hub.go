// Package events is a minimal in-process publish/subscribe hub. The catalog
// store publishes on it when the active language changes so that every open
// view re-projects before serving stale text.
package events

import "sync"

// LanguageChanged is published after a successful language switch.
const LanguageChanged = "language.changed"

// Event is one broadcast notification.
type Event struct {
	Name     string `json:"name"`
	Language string `json:"language,omitempty"`
}

type Hub struct {
	mu      sync.Mutex
	clients map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan Event]struct{})}
}

func (h *Hub) Subscribe() chan Event {
	ch := make(chan Event, 10)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan Event) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Publish(evt Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
			// drop if slow
		}
	}
}
