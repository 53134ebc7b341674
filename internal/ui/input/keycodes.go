// Package input provides keyboard shortcut parsing, modifier tracking and
// scope-aware dispatch of key events to registered handlers.
package input

import (
	"strconv"
	"strings"
)

// KeyCode identifies a physical key using browser-style numeric codes.
type KeyCode int

// KeyInvalid is produced for key names that cannot be resolved.
// No key press ever carries it, so bindings on it never fire.
const KeyInvalid KeyCode = -1

// Modifier key codes.
const (
	KeyShift   KeyCode = 16
	KeyControl KeyCode = 17
	KeyAlt     KeyCode = 18
	KeyCommand KeyCode = 91
)

// Alternate encodings of the command/meta key reported by some environments
// (right command on WebKit, meta on Gecko).
const (
	keyCommandRight KeyCode = 93
	keyCommandGecko KeyCode = 224
)

// Common non-character key codes.
const (
	KeyBackspace KeyCode = 8
	KeyTab       KeyCode = 9
	KeyClear     KeyCode = 12
	KeyEnter     KeyCode = 13
	KeyEscape    KeyCode = 27
	KeySpace     KeyCode = 32
	KeyPageUp    KeyCode = 33
	KeyPageDown  KeyCode = 34
	KeyEnd       KeyCode = 35
	KeyHome      KeyCode = 36
	KeyLeft      KeyCode = 37
	KeyUp        KeyCode = 38
	KeyRight     KeyCode = 39
	KeyDown      KeyCode = 40
	KeyDelete    KeyCode = 46
	KeyF1        KeyCode = 112
	KeyF19       KeyCode = 130
)

var keyCodeByName = map[string]KeyCode{
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"clear":     KeyClear,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"space":     KeySpace,
	"left":      KeyLeft,
	"up":        KeyUp,
	"right":     KeyRight,
	"down":      KeyDown,
	"del":       KeyDelete,
	"delete":    KeyDelete,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pagedown":  KeyPageDown,
	",":         188,
	".":         190,
	"/":         191,
	"`":         192,
	"-":         189,
	"=":         187,
	";":         186,
	"'":         222,
	"[":         219,
	"]":         221,
	`\`:         220,
}

// modifierCodeByName holds the modifier aliases, symbols and words alike.
var modifierCodeByName = map[string]KeyCode{
	"⇧":       KeyShift,
	"shift":   KeyShift,
	"⌥":       KeyAlt,
	"alt":     KeyAlt,
	"option":  KeyAlt,
	"⌃":       KeyControl,
	"ctrl":    KeyControl,
	"control": KeyControl,
	"⌘":       KeyCommand,
	"command": KeyCommand,
}

// canonicalNames is used when rendering key codes back to text.
var canonicalNames = map[KeyCode]string{
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyClear:     "clear",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeySpace:     "space",
	KeyLeft:      "left",
	KeyUp:        "up",
	KeyRight:     "right",
	KeyDown:      "down",
	KeyDelete:    "delete",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pageup",
	KeyPageDown:  "pagedown",
	KeyShift:     "shift",
	KeyControl:   "ctrl",
	KeyAlt:       "alt",
	KeyCommand:   "command",
}

func init() {
	for i := KeyCode(1); i <= KeyF19-KeyF1+1; i++ {
		keyCodeByName["f"+strconv.Itoa(int(i))] = KeyF1 + i - 1
	}
	for name, code := range keyCodeByName {
		if _, ok := canonicalNames[code]; !ok && len(name) == 1 {
			canonicalNames[code] = name
		}
		if code >= KeyF1 && code <= KeyF19 {
			canonicalNames[code] = name
		}
	}
}

// LookupKey resolves a primary key name to its code.
// Names missing from the table fall back to the upper-cased character code
// when they are exactly one character long; anything else is KeyInvalid.
func LookupKey(name string) KeyCode {
	if name == "" {
		return KeyInvalid
	}
	if code, ok := keyCodeByName[strings.ToLower(name)]; ok {
		return code
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return KeyInvalid
	}
	return KeyCode([]rune(strings.ToUpper(name))[0])
}

// LookupModifier resolves a modifier alias to its code.
func LookupModifier(name string) (KeyCode, bool) {
	code, ok := modifierCodeByName[strings.ToLower(name)]
	return code, ok
}

// canonicalKey folds the alternate command encodings into KeyCommand.
func canonicalKey(code KeyCode) KeyCode {
	switch code {
	case keyCommandRight, keyCommandGecko:
		return KeyCommand
	default:
		return code
	}
}

// IsModifier reports whether code is one of the four modifier codes.
func (k KeyCode) IsModifier() bool {
	switch canonicalKey(k) {
	case KeyShift, KeyControl, KeyAlt, KeyCommand:
		return true
	default:
		return false
	}
}

// String returns the table name for the code, or its character.
func (k KeyCode) String() string {
	if k == KeyInvalid {
		return "invalid"
	}
	if name, ok := canonicalNames[k]; ok {
		return name
	}
	if k > KeySpace && k < 127 {
		return strings.ToLower(string(rune(k)))
	}
	return "key(" + strconv.Itoa(int(k)) + ")"
}
