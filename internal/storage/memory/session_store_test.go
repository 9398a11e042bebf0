package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
	"recruiting-lab/internal/storage"
)

var t0 = time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

func record(id string, created time.Time) *storage.SessionRecord {
	return &storage.SessionRecord{
		ID:        id,
		Seed:      42,
		CreatedAt: created,
		UpdatedAt: created,
		Dataset: &generation.Dataset{
			GeneratedAt: created,
			Candidates: []domain.Candidate{
				{ID: "REC0001", Name: "김민준", Skills: []string{"Go"}},
			},
		},
	}
}

func TestSessionStore_InsertAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	if err := store.Insert(ctx, record("s1", t0)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Seed != 42 {
		t.Errorf("Seed mismatch: got %d, want 42", got.Seed)
	}
	if len(got.Dataset.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got.Dataset.Candidates))
	}
}

func TestSessionStore_CopyOnReadAndWrite(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	r := record("s1", t0)
	if err := store.Insert(ctx, r); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	r.Dataset.Candidates[0].Skills[0] = "mutated after insert"

	got, _ := store.Get(ctx, "s1")
	got.Dataset.Candidates[0].Name = "mutated after get"

	again, _ := store.Get(ctx, "s1")
	if again.Dataset.Candidates[0].Skills[0] != "Go" {
		t.Errorf("store aliased caller slice: %q", again.Dataset.Candidates[0].Skills[0])
	}
	if again.Dataset.Candidates[0].Name != "김민준" {
		t.Errorf("store aliased returned record: %q", again.Dataset.Candidates[0].Name)
	}
}

func TestSessionStore_DuplicateKey(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	if err := store.Insert(ctx, record("s1", t0)); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}
	if err := store.Insert(ctx, record("s1", t0)); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestSessionStore_InvalidInput(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	if err := store.Insert(ctx, nil); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil, got %v", err)
	}
	if err := store.Insert(ctx, record("", t0)); !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for empty ID, got %v", err)
	}
}

func TestSessionStore_NotFound(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if err := store.Update(ctx, record("missing", t0)); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if err := store.Delete(ctx, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestSessionStore_UpdateAndDelete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	if err := store.Insert(ctx, record("s1", t0)); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	r := record("s1", t0)
	r.Pass = 3
	if err := store.Update(ctx, r); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, _ := store.Get(ctx, "s1")
	if got.Pass != 3 {
		t.Errorf("Pass mismatch: got %d, want 3", got.Pass)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSessionStore_ListOrdered(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	_ = store.Insert(ctx, record("c", t0.Add(time.Minute)))
	_ = store.Insert(ctx, record("b", t0))
	_ = store.Insert(ctx, record("a", t0))

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(list) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(list))
	}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("list[%d] = %s, want %s", i, list[i].ID, id)
		}
	}
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", i)
			_ = store.Insert(ctx, record(id, t0))
			_, _ = store.Get(ctx, id)
			_, _ = store.List(ctx)
		}(i)
	}
	wg.Wait()

	list, _ := store.List(ctx)
	if len(list) != 50 {
		t.Errorf("expected 50 sessions, got %d", len(list))
	}
}
