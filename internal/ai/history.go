package ai

import "sync"

// History is the append-only in-memory log of question/answer exchanges.
// Records are never mutated or deleted; they live as long as the process.
type History struct {
	mu      sync.RWMutex
	records []Record
}

// NewHistory constructs an empty History.
func NewHistory() *History {
	return &History{}
}

// Append adds one record to the log.
func (h *History) Append(rec Record) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, rec)
}

// List returns all records in insertion order.
func (h *History) List() []Record {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// Len reports the number of records.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records)
}
