package input

import "strings"

// Target describes the element an event originated from.
type Target struct {
	TagName string
}

// KeyEvent is a raw key signal delivered by an event source.
type KeyEvent struct {
	KeyCode KeyCode
	Target  Target

	defaultPrevented   bool
	propagationStopped bool
}

// NewKeyEvent creates an event for code with no originating element.
func NewKeyEvent(code KeyCode) *KeyEvent {
	return &KeyEvent{KeyCode: code}
}

// PreventDefault suppresses the host's default action for the event.
func (e *KeyEvent) PreventDefault() {
	e.defaultPrevented = true
}

// StopPropagation stops the event from reaching ancestor listeners.
func (e *KeyEvent) StopPropagation() {
	e.propagationStopped = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *KeyEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PropagationStopped reports whether StopPropagation was called.
func (e *KeyEvent) PropagationStopped() bool {
	return e.propagationStopped
}

// Listener receives raw signals from an EventSource.
type Listener interface {
	KeyDown(ev *KeyEvent)
	KeyUp(ev *KeyEvent)
	Focus()
}

// EventSource is an external collaborator that emits key and focus signals,
// such as a terminal toolkit or a window.
//
//go:generate mockery --name=EventSource --output=mocks --outpkg=mocks --with-expecter
type EventSource interface {
	Subscribe(l Listener)
	Unsubscribe(l Listener)
}

// FocusFilter decides whether an event may be dispatched to handlers.
type FocusFilter func(ev *KeyEvent) bool

// NewTagFilter returns a filter rejecting events whose target tag matches
// one of tags, case-insensitively.
func NewTagFilter(tags ...string) FocusFilter {
	blocked := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		blocked[strings.ToUpper(tag)] = struct{}{}
	}
	return func(ev *KeyEvent) bool {
		_, ok := blocked[strings.ToUpper(ev.Target.TagName)]
		return !ok
	}
}

// DefaultInputTags lists the text-input-capable controls ignored by default.
var DefaultInputTags = []string{"INPUT", "SELECT", "TEXTAREA"}

// DefaultFocusFilter ignores events typed into text-input-capable controls.
var DefaultFocusFilter = NewTagFilter(DefaultInputTags...)
