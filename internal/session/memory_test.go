package session

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	st, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.SelectedIDs) != 0 || st.SubmissionInFlight {
		t.Fatalf("unknown session must be zero state, got %+v", st)
	}

	want := State{SelectedIDs: []string{"sofa-1"}, SubmissionInFlight: true}
	if err := store.Put(ctx, "s1", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.SelectedIDs) != 1 || got.SelectedIDs[0] != "sofa-1" || !got.SubmissionInFlight {
		t.Fatalf("unexpected state %+v", got)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	if err := store.Put(ctx, "s1", State{SelectedIDs: []string{"a"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	st, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.SelectedIDs) != 0 {
		t.Fatalf("deleted session must be gone, got %+v", st)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	if err := store.Put(ctx, "s1", State{SelectedIDs: []string{"a"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	st, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.SelectedIDs) != 0 {
		t.Fatalf("expired session must read as zero state, got %+v", st)
	}
}
