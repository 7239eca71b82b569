package search

import (
	"errors"
	"fmt"
	"testing"
)

type memoryStore struct {
	data    map[string][]string
	failGet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string][]string)}
}

func (m *memoryStore) Get(key string) ([]string, error) {
	if m.failGet {
		return nil, errors.New("store unavailable")
	}
	return m.data[key], nil
}

func (m *memoryStore) Set(key string, values []string) error {
	m.data[key] = values
	return nil
}

func (m *memoryStore) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func TestHistoryAddMostRecentFirst(t *testing.T) {
	history := NewHistory(newMemoryStore(), 20)

	for _, q := range []string{"koltuk", "yatak", "masa"} {
		if err := history.Add("session-1", q); err != nil {
			t.Fatalf("Add(%q): %v", q, err)
		}
	}

	got, err := history.Get("session-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := []string{"masa", "yatak", "koltuk"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestHistoryAddDeduplicates(t *testing.T) {
	history := NewHistory(newMemoryStore(), 20)

	for _, q := range []string{"koltuk", "yatak", "koltuk"} {
		if err := history.Add("session-1", q); err != nil {
			t.Fatalf("Add(%q): %v", q, err)
		}
	}

	got, _ := history.Get("session-1")
	if len(got) != 2 || got[0] != "koltuk" || got[1] != "yatak" {
		t.Fatalf("got %v, want [koltuk yatak]", got)
	}
}

func TestHistoryAddIgnoresBlank(t *testing.T) {
	store := newMemoryStore()
	history := NewHistory(store, 20)

	if err := history.Add("session-1", "   "); err != nil {
		t.Fatalf("Add blank: %v", err)
	}
	if len(store.data) != 0 {
		t.Errorf("blank query must not be stored, got %v", store.data)
	}
}

func TestHistoryCap(t *testing.T) {
	history := NewHistory(newMemoryStore(), 5)

	for i := 0; i < 12; i++ {
		if err := history.Add("session-1", fmt.Sprintf("sorgu-%d", i)); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	got, _ := history.Get("session-1")
	if len(got) != 5 {
		t.Fatalf("got %d entries, want 5", len(got))
	}
	if got[0] != "sorgu-11" {
		t.Errorf("newest entry = %q, want sorgu-11", got[0])
	}
}

func TestHistorySessionsIsolated(t *testing.T) {
	history := NewHistory(newMemoryStore(), 20)

	if err := history.Add("session-1", "koltuk"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	got, _ := history.Get("session-2")
	if len(got) != 0 {
		t.Errorf("session-2 history = %v, want empty", got)
	}
}

func TestHistoryClear(t *testing.T) {
	history := NewHistory(newMemoryStore(), 20)

	if err := history.Add("session-1", "koltuk"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := history.Clear("session-1"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, _ := history.Get("session-1")
	if len(got) != 0 {
		t.Errorf("history after clear = %v, want empty", got)
	}
}

func TestHistoryStoreErrorsAreWrapped(t *testing.T) {
	store := newMemoryStore()
	store.failGet = true
	history := NewHistory(store, 20)

	if err := history.Add("session-1", "koltuk"); err == nil {
		t.Error("expected error when the store fails")
	}
	if _, err := history.Get("session-1"); err == nil {
		t.Error("expected error when the store fails")
	}
}

func TestHistoryDefaultCap(t *testing.T) {
	history := NewHistory(newMemoryStore(), 0)
	if history.limit != DefaultHistoryCap {
		t.Errorf("limit = %d, want %d", history.limit, DefaultHistoryCap)
	}
}
