// Package adapter turns terminal toolkit key events into engine signals.
//
// Terminals report a key press as a single event carrying its modifiers.
// The sources here replay it as the down/up sequence the engine expects:
// modifier key-downs, the key-down, the key-up, then modifier key-ups.
package adapter

import (
	"sync"
	"unicode"

	"github.com/bnema/keymaster/internal/ui/input"
)

// press is a decoded terminal key press.
type press struct {
	key  input.KeyCode
	mods input.Modifier
}

// listenerSet is the subscription half of input.EventSource.
type listenerSet struct {
	mu        sync.RWMutex
	listeners []input.Listener
	target    string
}

// Subscribe implements input.EventSource.
func (s *listenerSet) Subscribe(l input.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.listeners {
		if existing == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

// Unsubscribe implements input.EventSource.
func (s *listenerSet) Unsubscribe(l input.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// SetTarget sets the tag name reported as the events' origin, e.g. "INPUT"
// while a text field has focus. An empty tag means no particular element.
func (s *listenerSet) SetTarget(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = tag
}

func (s *listenerSet) snapshot() ([]input.Listener, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]input.Listener(nil), s.listeners...), s.target
}

// emit replays p to every listener and returns the key-down event, which
// carries the suppression flags set by the handlers.
func (s *listenerSet) emit(p press) *input.KeyEvent {
	listeners, target := s.snapshot()
	mods := p.mods.Codes()

	event := func(code input.KeyCode) *input.KeyEvent {
		ev := input.NewKeyEvent(code)
		ev.Target.TagName = target
		return ev
	}

	for _, code := range mods {
		for _, l := range listeners {
			l.KeyDown(event(code))
		}
	}
	down := event(p.key)
	for _, l := range listeners {
		l.KeyDown(down)
	}
	for _, l := range listeners {
		l.KeyUp(event(p.key))
	}
	for i := len(mods) - 1; i >= 0; i-- {
		for _, l := range listeners {
			l.KeyUp(event(mods[i]))
		}
	}
	return down
}

func (s *listenerSet) focus() {
	listeners, _ := s.snapshot()
	for _, l := range listeners {
		l.Focus()
	}
}

// shiftedSymbols maps US-layout shifted symbols to their base key.
// '+' is absent so that "+" bindings see the plus character itself.
var shiftedSymbols = map[rune]rune{
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
	'_': '-', '{': '[', '}': ']', '|': '\\', ':': ';',
	'"': '\'', '<': ',', '>': '.', '?': '/', '~': '`',
}

// runePress decodes a printable character. Upper-case letters and shifted
// symbols are reported as shift plus the base key.
func runePress(r rune, mods input.Modifier) press {
	if r == ' ' {
		return press{key: input.KeySpace, mods: mods}
	}
	if base, ok := shiftedSymbols[r]; ok {
		return press{key: input.LookupKey(string(base)), mods: mods | input.ModShift}
	}
	if unicode.IsUpper(r) {
		mods |= input.ModShift
	}
	return press{key: input.LookupKey(string(r)), mods: mods}
}
