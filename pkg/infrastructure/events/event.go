package events

import (
	"time"
)

// Event is one entry in a pipeline run log
type Event interface {
	Type() string
	RunID() string
	Data() interface{}
	Timestamp() time.Time
	Sequence() int
}

// BaseEvent is the standard Event implementation
type BaseEvent struct {
	EventType     string
	Run           string
	EventData     interface{}
	EventTime     time.Time
	EventSequence int
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) RunID() string        { return e.Run }
func (e BaseEvent) Data() interface{}    { return e.EventData }
func (e BaseEvent) Timestamp() time.Time { return e.EventTime }
func (e BaseEvent) Sequence() int        { return e.EventSequence }

// NewEvent creates an event for a pipeline run. The sequence number is
// assigned when the event is appended to a log.
func NewEvent(eventType, runID string, data interface{}) Event {
	return BaseEvent{
		EventType: eventType,
		Run:       runID,
		EventData: data,
		EventTime: time.Now(),
	}
}
