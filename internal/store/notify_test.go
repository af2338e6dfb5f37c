package store

import (
	"testing"
	"time"
)

func drained(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-time.After(100 * time.Millisecond):
		return false
	}
}

func TestNoteChangeHub_PublishReachesSubscriber(t *testing.T) {
	hub := NewNoteChangeHub()

	ch, cancel := hub.Subscribe(1)
	defer cancel()

	hub.Publish(1)

	if !drained(ch) {
		t.Fatal("expected a change signal")
	}
}

func TestNoteChangeHub_PublishIsOwnerScoped(t *testing.T) {
	hub := NewNoteChangeHub()

	ch, cancel := hub.Subscribe(1)
	defer cancel()

	hub.Publish(2)

	select {
	case <-ch:
		t.Fatal("subscriber of owner 1 must not see owner 2 changes")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNoteChangeHub_PublishFansOut(t *testing.T) {
	hub := NewNoteChangeHub()

	first, cancelFirst := hub.Subscribe(1)
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe(1)
	defer cancelSecond()

	hub.Publish(1)

	if !drained(first) || !drained(second) {
		t.Fatal("expected every subscriber to receive the signal")
	}
}

func TestNoteChangeHub_PublishCoalesces(t *testing.T) {
	hub := NewNoteChangeHub()

	ch, cancel := hub.Subscribe(1)
	defer cancel()

	// None of these may block even though nothing is reading.
	hub.Publish(1)
	hub.Publish(1)
	hub.Publish(1)

	if !drained(ch) {
		t.Fatal("expected one pending signal")
	}

	select {
	case <-ch:
		t.Fatal("expected repeated publishes to coalesce into one signal")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNoteChangeHub_CancelStopsDelivery(t *testing.T) {
	hub := NewNoteChangeHub()

	ch, cancel := hub.Subscribe(1)
	cancel()

	hub.Publish(1)

	select {
	case <-ch:
		t.Fatal("cancelled subscription must not receive signals")
	case <-time.After(50 * time.Millisecond):
	}
}
