package events

// EventType represents the type of resolution event
type EventType string

// Event is the base interface for all resolution events
type Event interface {
	GetType() EventType
	GetActionID() string
	GetSourceID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events. Source and
// target are actor ids so listeners never hold live documents.
type BaseEvent struct {
	Type      EventType
	ActionID  string
	SourceID  string
	TargetID  string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType  { return e.Type }
func (e *BaseEvent) GetActionID() string { return e.ActionID }
func (e *BaseEvent) GetSourceID() string { return e.SourceID }
func (e *BaseEvent) IsCancelled() bool   { return e.Cancelled }
func (e *BaseEvent) Cancel()             { e.Cancelled = true }

// ListenerFunc adapts a function into an EventListener
type ListenerFunc struct {
	Name   string
	Order  int
	Handle func(Event) error
}

func (l *ListenerFunc) ID() string                { return l.Name }
func (l *ListenerFunc) Priority() int             { return l.Order }
func (l *ListenerFunc) HandleEvent(e Event) error { return l.Handle(e) }
