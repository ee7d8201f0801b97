package broker

import (
	"testing"

	"volleyhub/internal/ports/output"
)

func TestHubDeliversToEverySubscriber(t *testing.T) {
	h := NewHub()
	a, releaseA := h.Subscribe()
	b, releaseB := h.Subscribe()
	defer releaseA()
	defer releaseB()

	h.Publish(output.Change{Topic: output.TopicEvents, EventID: "e1"})

	for name, ch := range map[string]<-chan output.Change{"a": a, "b": b} {
		got := <-ch
		if got.Topic != output.TopicEvents || got.EventID != "e1" {
			t.Fatalf("%s: got %+v", name, got)
		}
	}
}

func TestHubReleaseClosesChannel(t *testing.T) {
	h := NewHub()
	ch, release := h.Subscribe()
	release()
	release()

	if _, ok := <-ch; ok {
		t.Fatal("expected closed channel")
	}
	if n := h.Subscribers(); n != 0 {
		t.Fatalf("subscribers = %d, want 0", n)
	}
	h.Publish(output.Change{Topic: output.TopicEvents})
}

func TestHubOverflowLeavesResyncMarker(t *testing.T) {
	h := NewHub()
	ch, release := h.Subscribe()
	defer release()

	for i := 0; i < subscriberBuffer+5; i++ {
		h.Publish(output.Change{Topic: output.TopicFeedback})
	}

	var last output.Change
	for i := 0; i < subscriberBuffer; i++ {
		last = <-ch
	}
	if last.Topic != "" {
		t.Fatalf("last change = %+v, want resync marker", last)
	}
}
