package mirror

import (
	"context"
	"testing"
)

type sample struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func TestTypedRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	typed := NewTyped[[]sample](store, KeyEvents)
	ctx := context.Background()

	in := []sample{{ID: "a", Title: "One"}, {ID: "b", Title: "Two"}}
	if err := typed.Save(ctx, in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	out, ok := typed.Load(ctx)
	if !ok {
		t.Fatal("Load() ok = false, want true")
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].Title != "Two" {
		t.Errorf("Load() = %v, want %v", out, in)
	}
}

func TestTypedMissingKey(t *testing.T) {
	typed := NewTyped[[]sample](NewMemoryStore(), "absent")

	if _, ok := typed.Load(context.Background()); ok {
		t.Error("Load() ok = true for absent key, want false")
	}
}

func TestTypedCorruptPayloadIsMiss(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	// A corrupt payload is indistinguishable from a miss by contract:
	// callers fall back to defaults rather than failing.
	if err := store.Save(ctx, KeyEvents, []byte(`{not json`)); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	typed := NewTyped[[]sample](store, KeyEvents)
	if _, ok := typed.Load(ctx); ok {
		t.Error("Load() ok = true for corrupt payload, want false")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := []byte("immutable")
	_ = store.Save(ctx, "k", original)
	original[0] = 'X'

	got, err := store.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != "immutable" {
		t.Errorf("Load() = %q, stored value was mutated through the caller's slice", got)
	}

	got[0] = 'Y'
	again, _ := store.Load(ctx, "k")
	if string(again) != "immutable" {
		t.Errorf("Load() = %q, stored value was mutated through a loaded slice", again)
	}
}
