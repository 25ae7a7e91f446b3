package calc

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultHistoryCapacity is the number of completed calculations retained.
const DefaultHistoryCapacity = 10

// Entry is one completed calculation record.
type Entry struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"` // e.g. "7 + 3 = 10"
	RecordedAt time.Time `json:"recorded_at"`
}

// History is a fixed-capacity FIFO log of completed calculations. When the
// capacity is exceeded the oldest entry is evicted. It lives in memory only
// and is lost on exit.
type History struct {
	capacity int
	entries  []Entry
	mu       sync.RWMutex
}

// NewHistory creates a History with the given capacity.
// Capacities less than 1 fall back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		capacity: capacity,
		entries:  make([]Entry, 0, capacity),
	}
}

// Append records a completed calculation, evicting the oldest entry if the
// log is full. It returns the recorded entry.
func (h *History) Append(text string) Entry {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry := Entry{
		ID:         uuid.New().String(),
		Text:       text,
		RecordedAt: time.Now(),
	}

	if len(h.entries) >= h.capacity {
		// Shift left by one, dropping the oldest entry
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:h.capacity-1]
	}
	h.entries = append(h.entries, entry)

	return entry
}

// Clear removes all entries.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = h.entries[:0]
}

// Recent returns up to n entries, oldest first and most recent last.
// A non-positive n returns all entries.
func (h *History) Recent(n int) []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n <= 0 || n > len(h.entries) {
		n = len(h.entries)
	}

	out := make([]Entry, n)
	copy(out, h.entries[len(h.entries)-n:])
	return out
}

// Len returns the number of entries currently held.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// Capacity returns the maximum number of entries retained.
func (h *History) Capacity() int {
	return h.capacity
}
