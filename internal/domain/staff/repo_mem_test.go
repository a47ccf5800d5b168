package staff

import (
	"context"
	"testing"
	"time"
)

func TestMemoryRepository_CreateThenGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, CreateUser{
		Username:  "schen",
		Email:     "schen@practice.example",
		FirstName: "Sarah",
		LastName:  "Chen",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Error("expected id to be assigned")
	}
	if created.Role != DefaultRole {
		t.Errorf("expected default role %q, got %q", DefaultRole, created.Role)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be populated")
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected user, got nil")
	}
	if got.Username != "schen" || got.Email != "schen@practice.example" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestMemoryRepository_GetMissing(t *testing.T) {
	repo := NewMemoryRepository()

	got, err := repo.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing id, got %+v", got)
	}
}

func TestMemoryRepository_GetByUsername(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	repo.Create(ctx, CreateUser{Username: "schen", Email: "a@x", FirstName: "S", LastName: "C"})

	got, err := repo.GetByUsername(ctx, "schen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected user by username")
	}

	missing, err := repo.GetByUsername(ctx, "other")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown username")
	}
}

func TestMemoryRepository_UpdateMergesFields(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, CreateUser{Username: "schen", Email: "a@x", FirstName: "Sarah", LastName: "Chen"})

	time.Sleep(2 * time.Millisecond)
	specialty := "Cardiology"
	updated, err := repo.Update(ctx, created.ID, UpdateUser{Specialization: &specialty})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated user")
	}
	if updated.Specialization == nil || *updated.Specialization != "Cardiology" {
		t.Error("expected specialization to be set")
	}
	// Untouched fields survive
	if updated.Username != "schen" || updated.FirstName != "Sarah" {
		t.Errorf("merge clobbered fields: %+v", updated)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Error("expected updatedAt to strictly increase")
	}
}

func TestMemoryRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryRepository()

	got, err := repo.Update(context.Background(), "nope", UpdateUser{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected nil for update of missing id")
	}
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, CreateUser{Username: "schen", Email: "a@x", FirstName: "S", LastName: "C"})

	got, _ := repo.Get(ctx, created.ID)
	got.Username = "mutated"

	again, _ := repo.Get(ctx, created.ID)
	if again.Username != "schen" {
		t.Error("store contents must not be mutable through returned values")
	}
}
