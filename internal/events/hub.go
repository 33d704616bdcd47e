// Package events carries best-effort complaint lifecycle notifications
// to connected staff dashboards. Delivery is advisory: the database is
// the source of truth and a dropped event is never an error.
package events

import (
	"sync"

	"github.com/improvemycity/portal-go/models"
)

const (
	EventComplaintCreated  = "complaint.created"
	EventComplaintAssigned = "complaint.assigned"
	EventComplaintResolved = "complaint.resolved"
)

type Event struct {
	Type        string                 `json:"event"`
	ComplaintID uint                   `json:"complaintId"`
	CategoryID  uint                   `json:"categoryId"`
	Status      models.ComplaintStatus `json:"status"`
}

type Hub struct {
	mu   sync.RWMutex
	subs map[uint]map[chan Event]struct{} // keyed by category ID
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[uint]map[chan Event]struct{}),
	}
}

// Subscribe registers a listener for one category. The returned cancel
// func must be called when the consumer goes away.
func (h *Hub) Subscribe(categoryID uint) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	h.mu.Lock()
	if h.subs[categoryID] == nil {
		h.subs[categoryID] = make(map[chan Event]struct{})
	}
	h.subs[categoryID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[categoryID]; ok {
			if _, ok := set[ch]; ok {
				delete(set, ch)
				close(ch)
			}
			if len(set) == 0 {
				delete(h.subs, categoryID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish fans the event out to the category's subscribers. Slow
// consumers get dropped events, never a blocked publisher.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subs[ev.CategoryID] {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount returns the number of listeners for a category.
func (h *Hub) SubscriberCount(categoryID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[categoryID])
}
