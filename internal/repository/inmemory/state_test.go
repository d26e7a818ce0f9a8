package inmemory

import (
	"context"
	"errors"
	"testing"

	"family-organizer/internal/storage"
)

func TestStateBackendRoundTrip(t *testing.T) {
	backend := NewStateBackend()
	ctx := context.Background()

	if _, err := backend.Load(ctx, "mealPlans"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	payload := []byte(`[{"id":"1"}]`)
	if err := backend.Save(ctx, "mealPlans", payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	payload[0] = 'x'

	got, err := backend.Load(ctx, "mealPlans")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("expected stored copy to be isolated, got %s", got)
	}
}

func TestStateBackendClear(t *testing.T) {
	backend := NewStateBackend()
	backend.Put("activities", []byte("[]"))
	backend.Clear()
	if _, err := backend.Load(context.Background(), "activities"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected cleared backend, got %v", err)
	}
}
