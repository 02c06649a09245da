package agent

import (
	"sync"
	"time"
)

// Entry is one processed query
type Entry struct {
	Query  string      `json:"query"`
	Result QueryResult `json:"result"`
	At     time.Time   `json:"at"`
}

// History keeps the most recent entries in memory, newest first
type History struct {
	mu      sync.Mutex
	entries []Entry
	size    int
}

// NewHistory creates a history holding at most size entries. Size 0 disables it.
func NewHistory(size int) *History {
	if size < 0 {
		size = 0
	}
	return &History{size: size}
}

// Add records an entry, evicting the oldest when full
func (h *History) Add(e Entry) {
	if h.size == 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append([]Entry{e}, h.entries...)
	if len(h.entries) > h.size {
		h.entries = h.entries[:h.size]
	}
}

// Entries returns a copy, newest first
func (h *History) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Entry(nil), h.entries...)
}

// Len returns the number of stored entries
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.entries)
}

// Clear drops every entry
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = nil
}
