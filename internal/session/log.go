package session

import (
	"fmt"
	"sync"
	"time"
)

// EntryKind classifies an activity log entry for display styling.
type EntryKind string

const (
	EntryGameEvent    EntryKind = "game_event"
	EntryPlayerAction EntryKind = "player_action"
	EntryAIAction     EntryKind = "ai_action"
	EntryError        EntryKind = "error"
)

// LogEntry is one line of session activity.
type LogEntry struct {
	Kind EntryKind
	Text string
	At   time.Time
}

// ActivityLog keeps a bounded history of session events. When the capacity
// is reached the oldest entry is evicted.
type ActivityLog struct {
	mu       sync.Mutex
	capacity int
	entries  []LogEntry
	now      func() time.Time
}

// NewActivityLog creates a log holding at most capacity entries.
func NewActivityLog(capacity int) *ActivityLog {
	if capacity < 1 {
		capacity = 1
	}
	return &ActivityLog{
		capacity: capacity,
		now:      time.Now,
	}
}

// Add appends a formatted entry, evicting the oldest when full.
func (l *ActivityLog) Add(kind EntryKind, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{
		Kind: kind,
		Text: fmt.Sprintf(format, args...),
		At:   l.now(),
	})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Entries returns a copy of the log, most recent first.
func (l *ActivityLog) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LogEntry, len(l.entries))
	for i, e := range l.entries {
		out[len(l.entries)-1-i] = e
	}
	return out
}

// Len reports the number of retained entries.
func (l *ActivityLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear discards all entries.
func (l *ActivityLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
