package input

import "strings"

// Modifier represents a set of held or required modifier keys.
type Modifier uint8

// ModNone indicates no modifier.
const ModNone Modifier = 0

const (
	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Control key.
	ModCtrl
	// ModAlt indicates the Alt/Option key.
	ModAlt
	// ModMeta indicates the Command/Meta key.
	ModMeta
)

// modifierOrder fixes iteration order for rendering and code listing.
var modifierOrder = []struct {
	mod  Modifier
	code KeyCode
	name string
}{
	{ModShift, KeyShift, "shift"},
	{ModAlt, KeyAlt, "alt"},
	{ModCtrl, KeyControl, "ctrl"},
	{ModMeta, KeyCommand, "command"},
}

// modifierForCode maps a canonical modifier key code to its flag.
func modifierForCode(code KeyCode) Modifier {
	switch canonicalKey(code) {
	case KeyShift:
		return ModShift
	case KeyControl:
		return ModCtrl
	case KeyAlt:
		return ModAlt
	case KeyCommand:
		return ModMeta
	default:
		return ModNone
	}
}

// Has returns true if m contains every flag in mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod && mod != ModNone
}

// Codes returns the key codes of the modifiers in m.
func (m Modifier) Codes() []KeyCode {
	var codes []KeyCode
	for _, entry := range modifierOrder {
		if m.Has(entry.mod) {
			codes = append(codes, entry.code)
		}
	}
	return codes
}

// String renders m like "shift+ctrl".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	for _, entry := range modifierOrder {
		if m.Has(entry.mod) {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(parts, "+")
}

// modifierTracker holds the live held/not-held state of the four modifiers.
// Callers serialize access through the engine lock.
type modifierTracker struct {
	held Modifier
}

// keyDown marks a modifier as held. It reports whether code was a modifier,
// in which case the event must not reach any handler.
func (t *modifierTracker) keyDown(code KeyCode) bool {
	mod := modifierForCode(code)
	if mod == ModNone {
		return false
	}
	t.held |= mod
	return true
}

// keyUp releases a modifier. Non-modifier codes are ignored.
func (t *modifierTracker) keyUp(code KeyCode) {
	t.held &^= modifierForCode(code)
}

// reset releases every modifier, covering key-ups missed while unfocused.
func (t *modifierTracker) reset() {
	t.held = ModNone
}

// matches applies the exact-set rule: the held set must equal the required
// set, so a bare binding only fires with no modifier held at all.
func (t *modifierTracker) matches(required Modifier) bool {
	return t.held == required
}
