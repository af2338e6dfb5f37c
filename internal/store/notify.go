package store

import (
	"sync"
)

// NoteChangeHub fans out per-owner change notifications from the write path
// of the record store to its live subscriptions. A notification carries no
// payload: subscribers react by re-reading the full note set, so the stream
// they produce is always a fresh snapshot of the latest committed state.
//
// Notifications coalesce. Each subscriber channel has a buffer of one; a
// publish into a full buffer is dropped because the pending notification
// already implies a re-read.
type NoteChangeHub struct {
	mu   sync.Mutex
	subs map[int64]map[chan struct{}]struct{}
}

// NewNoteChangeHub constructs an empty hub.
func NewNoteChangeHub() *NoteChangeHub {
	return &NoteChangeHub{
		subs: make(map[int64]map[chan struct{}]struct{}),
	}
}

// Subscribe registers interest in changes to ownerID's note set. The
// returned channel receives a signal after every committed write; cancel
// must be called exactly once to release the registration.
func (h *NoteChangeHub) Subscribe(ownerID int64) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[ownerID] == nil {
		h.subs[ownerID] = make(map[chan struct{}]struct{})
	}
	h.subs[ownerID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[ownerID]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, ownerID)
			}
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish signals every subscriber of ownerID that the note set changed.
// Never blocks: a subscriber that has not consumed its pending signal will
// re-read anyway.
func (h *NoteChangeHub) Publish(ownerID int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs[ownerID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
