package history

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func seedRecord(t *testing.T, store Store, i int, category Category) {
	t.Helper()

	err := store.Append(context.Background(), &Record{
		ID:         fmt.Sprintf("id-%d", i),
		Expression: fmt.Sprintf("expr-%d", i),
		Result:     "1",
		Category:   category,
		Timestamp:  time.Date(2026, 1, 1, 0, 0, i, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
}

func TestInMemoryStore_ListNewestFirst(t *testing.T) {
	store := NewInMemoryStore()
	for i := 0; i < 3; i++ {
		seedRecord(t, store, i, CategoryBasic)
	}

	records, err := store.List(context.Background(), "", DefaultLimit)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"id-2", "id-1", "id-0"} {
		if records[i].ID != want {
			t.Errorf("records[%d].ID = %s, want %s", i, records[i].ID, want)
		}
	}
}

func TestInMemoryStore_CategoryFilter(t *testing.T) {
	store := NewInMemoryStore()
	seedRecord(t, store, 0, CategoryBasic)
	seedRecord(t, store, 1, CategoryLoan)
	seedRecord(t, store, 2, CategoryLoan)

	records, err := store.List(context.Background(), CategoryLoan, DefaultLimit)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	for _, r := range records {
		if r.Category != CategoryLoan {
			t.Errorf("Unexpected category %q", r.Category)
		}
	}
}

func TestInMemoryStore_Limit(t *testing.T) {
	store := NewInMemoryStore()
	for i := 0; i < 10; i++ {
		seedRecord(t, store, i, CategoryBasic)
	}

	records, err := store.List(context.Background(), "", 5)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 5 {
		t.Fatalf("Expected 5 records, got %d", len(records))
	}
	if records[0].ID != "id-9" {
		t.Errorf("Expected newest record first, got %s", records[0].ID)
	}

	// non-positive limit falls back to the default
	records, err = store.List(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 10 {
		t.Errorf("Expected 10 records with default limit, got %d", len(records))
	}
}

func TestInMemoryStore_CopiesOnAppend(t *testing.T) {
	store := NewInMemoryStore()
	record := &Record{ID: "id-0", Expression: "1 + 1", Result: "2", Category: CategoryBasic, Timestamp: time.Now()}
	if err := store.Append(context.Background(), record); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	record.Result = "mutated"

	records, err := store.List(context.Background(), "", DefaultLimit)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if records[0].Result != "2" {
		t.Errorf("Stored record was mutated through the caller's pointer: %q", records[0].Result)
	}
}
