package search

import (
	"fmt"
	"strings"
)

const (
	historyNamespace  = "search_history"
	DefaultHistoryCap = 20
)

// HistoryStore is the key-value backend for query history. Get returns an
// empty list (not an error) when the key is absent.
type HistoryStore interface {
	Get(key string) ([]string, error)
	Set(key string, values []string) error
	Delete(key string) error
}

// History keeps a bounded, de-duplicated, most-recent-first list of past
// search queries per session key. The store serializes each update; in a
// multi-user deployment each session key is its own critical section.
type History struct {
	store HistoryStore
	limit int
}

func NewHistory(store HistoryStore, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryCap
	}
	return &History{store: store, limit: limit}
}

func (h *History) key(sessionKey string) string {
	return historyNamespace + ":" + sessionKey
}

// Add prepends the query, dropping any earlier occurrence and trimming the
// list to the cap. Blank queries are ignored.
func (h *History) Add(sessionKey, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	entries, err := h.store.Get(h.key(sessionKey))
	if err != nil {
		return fmt.Errorf("failed to read search history: %w", err)
	}

	updated := make([]string, 0, len(entries)+1)
	updated = append(updated, query)
	for _, entry := range entries {
		if entry != query {
			updated = append(updated, entry)
		}
	}
	if len(updated) > h.limit {
		updated = updated[:h.limit]
	}

	if err := h.store.Set(h.key(sessionKey), updated); err != nil {
		return fmt.Errorf("failed to write search history: %w", err)
	}
	return nil
}

func (h *History) Get(sessionKey string) ([]string, error) {
	entries, err := h.store.Get(h.key(sessionKey))
	if err != nil {
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}
	return entries, nil
}

func (h *History) Clear(sessionKey string) error {
	if err := h.store.Delete(h.key(sessionKey)); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	return nil
}
