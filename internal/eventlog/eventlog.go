package eventlog

import (
	"fmt"
	"sync"
	"time"
)

// Severity levels for feed entries. The strings double as keys into
// theme.Theme.LevelColors.
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelSuccess = "success"
	LevelWarn    = "warn"
	LevelError   = "error"
)

// Event is one timestamped feed entry.
type Event struct {
	Time    time.Time
	Level   string
	Message string
}

// Log is a fixed-capacity ring of events. Once full, the oldest entry is
// dropped for each new one. Safe for concurrent use.
type Log struct {
	mu    sync.RWMutex
	ring  []Event
	idx   int
	count int
}

// New returns a log holding at most capacity events.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = 1
	}
	return &Log{ring: make([]Event, capacity)}
}

// Add appends a formatted event at the given level.
func (l *Log) Add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ring[l.idx] = Event{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	}
	l.idx = (l.idx + 1) % len(l.ring)
	if l.count < len(l.ring) {
		l.count++
	}
}

// Events returns a copy of the buffered events, oldest first.
func (l *Log) Events() []Event {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.count == 0 {
		return nil
	}
	events := make([]Event, l.count)
	if l.count == len(l.ring) {
		for i := 0; i < l.count; i++ {
			events[i] = l.ring[(l.idx+i)%len(l.ring)]
		}
	} else {
		copy(events, l.ring[:l.count])
	}
	return events
}

// Len returns the number of buffered events.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.count
}

// Clear empties the log.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.idx = 0
	l.count = 0
}
