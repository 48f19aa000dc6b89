package memory

import (
	"context"
	"testing"

	"github.com/stitchworks/matreq/pkg/domain/entities"
)

func TestRequestStore_SaveAssignsDistinctIDs(t *testing.T) {
	store := NewRequestStore()
	ctx := context.Background()

	first, err := store.Save(ctx, entities.MaterialRequest{RequestID: "MR-1", Status: entities.StatusValidated})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := store.Save(ctx, entities.MaterialRequest{RequestID: "MR-2", Status: entities.StatusValidated})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if first == "" || second == "" {
		t.Fatal("expected non-empty durable ids")
	}
	if first == second {
		t.Error("expected distinct durable ids")
	}
}

func TestRequestStore_GetAndList(t *testing.T) {
	store := NewRequestStore()
	ctx := context.Background()

	id, err := store.Save(ctx, entities.MaterialRequest{RequestID: "MR-1", Status: entities.StatusPartialStock})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Save(ctx, entities.MaterialRequest{RequestID: "MR-2", Status: entities.StatusValidated}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.RequestID != "MR-1" {
		t.Errorf("Get returned %q, want MR-1", got.RequestID)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].RequestID != "MR-1" || all[1].RequestID != "MR-2" {
		t.Errorf("List not in insertion order: %q, %q", all[0].RequestID, all[1].RequestID)
	}
}

func TestRequestStore_GetUnknownID(t *testing.T) {
	store := NewRequestStore()
	if _, err := store.Get(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}
