package models

type EventLevel string

const (
	EventLevelInfo EventLevel = "INFO"
	EventLevelWarn EventLevel = "WARN"
)

// EventFields carries the structured part of an event. Unset fields are
// left out when the event is logged.
type EventFields struct {
	Param          string
	Result         *int
	ElapsedSeconds *float64
	RoundID        string
	Worker         string
}

// Event is a structured record emitted for every task completion and
// every round summary.
type Event struct {
	Level   EventLevel
	Message string
	Fields  EventFields
}
