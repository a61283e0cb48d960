package events

import (
	"sync"
)

// InMemoryRunLog records pipeline events per run. Runs for different boards
// may execute concurrently, so access is guarded.
type InMemoryRunLog struct {
	runs  map[string][]Event
	mutex sync.RWMutex
}

// NewInMemoryRunLog creates a new in-memory run log
func NewInMemoryRunLog() *InMemoryRunLog {
	return &InMemoryRunLog{
		runs: make(map[string][]Event),
	}
}

// Append records an event at the end of a run's stream
func (l *InMemoryRunLog) Append(runID string, event Event) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	sequenced := BaseEvent{
		EventType:     event.Type(),
		Run:           runID,
		EventData:     event.Data(),
		EventTime:     event.Timestamp(),
		EventSequence: len(l.runs[runID]) + 1,
	}
	l.runs[runID] = append(l.runs[runID], sequenced)
}

// Read returns all events recorded for a run, in append order
func (l *InMemoryRunLog) Read(runID string) []Event {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	events := l.runs[runID]
	out := make([]Event, len(events))
	copy(out, events)
	return out
}
