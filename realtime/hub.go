package realtime

import "sync"

const EventScreeningsUpdated = "screenings_updated"

// Event is the tagged payload pushed to subscribers. The only event type
// today is screenings_updated, whose payload is the full screening list.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type Broadcaster interface {
	Broadcast(Event)
}

// Subscriber is what the hub needs from a connected client. Websocket
// connections satisfy it directly.
type Subscriber interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub fans events out to every registered subscriber. Delivery is
// best-effort: a subscriber whose write fails is closed and dropped.
type Hub struct {
	mu   sync.Mutex
	subs map[Subscriber]bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[Subscriber]bool)}
}

func (h *Hub) Register(s Subscriber) {
	h.mu.Lock()
	h.subs[s] = true
	h.mu.Unlock()
}

// RegisterWithSnapshot writes an initial event to s and adds it to the
// subscriber set in one locked step. Holding the lock across both means the
// snapshot can never trail a broadcast delivered to s, and no two writes to
// the same connection ever run concurrently. A failed snapshot write leaves
// s unregistered.
func (h *Hub) RegisterWithSnapshot(s Subscriber, event Event) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := s.WriteJSON(event); err != nil {
		return err
	}
	h.subs[s] = true
	return nil
}

func (h *Hub) Unregister(s Subscriber) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) Broadcast(event Event) {
	h.mu.Lock()
	for sub := range h.subs {
		if err := sub.WriteJSON(event); err != nil {
			sub.Close()
			delete(h.subs, sub)
		}
	}
	h.mu.Unlock()
}
