package wizard

import (
	"testing"
	"time"
)

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry()

	s := r.GetOrCreate("")
	if s == nil || s.ID == "" {
		t.Fatal("expected a fresh session with an id")
	}
	if got := r.GetOrCreate(s.ID); got != s {
		t.Error("known id should return the same session")
	}
	if got := r.GetOrCreate("unknown-id"); got == s || got.ID == "unknown-id" {
		t.Error("unknown id should create a fresh session with a new id")
	}
	if r.Len() != 2 {
		t.Errorf("len = %d, want 2", r.Len())
	}
}

func TestRegistrySweep(t *testing.T) {
	r := NewRegistry()
	r.ttl = time.Millisecond

	stale := r.GetOrCreate("")
	time.Sleep(5 * time.Millisecond)
	fresh := r.GetOrCreate("")

	if removed := r.Sweep(); removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if got := r.GetOrCreate(fresh.ID); got != fresh {
		t.Error("fresh session swept")
	}
	if got := r.GetOrCreate(stale.ID); got == stale {
		t.Error("stale session survived the sweep")
	}
}
