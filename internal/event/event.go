package event

import "time"

// Type identifies the kind of event.
type Type int

const (
	StateChanged Type = iota + 1
	PathVisited
	EstimateComplete
	FileHashed
	HashComplete
	RunFailed
)

var typeNames = [...]string{
	StateChanged:     "StateChanged",
	PathVisited:      "PathVisited",
	EstimateComplete: "EstimateComplete",
	FileHashed:       "FileHashed",
	HashComplete:     "HashComplete",
	RunFailed:        "RunFailed",
}

func (t Type) String() string {
	if t > 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Event represents a single step of a checksum run.
type Event struct {
	Type      Type
	Timestamp time.Time
	State     string // new state (StateChanged)
	Path      string
	Size      int64 // bytes hashed (FileHashed, HashComplete)
	Total     int64 // estimated total bytes (EstimateComplete)
	Digest    string
	Error     error
}

// Sink receives events synchronously on the run's goroutine.
type Sink interface {
	Emit(ev Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ev Event)

// Emit calls f(ev).
func (f SinkFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Emit stamps ev and delivers it to s. A nil sink drops the event.
func Emit(s Sink, ev Event) {
	if s == nil {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	s.Emit(ev)
}
