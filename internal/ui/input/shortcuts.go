package input

import (
	"strings"
	"unicode"
)

// Combination is one parsed unit of a shortcut expression, e.g. "ctrl+shift+k".
type Combination struct {
	Text      string   // combination as written, whitespace stripped
	Key       KeyCode  // primary key code
	Modifiers Modifier // required modifiers
}

// Valid reports whether the combination can ever match a key press.
func (c Combination) Valid() bool {
	return c.Key != KeyInvalid
}

// String renders the combination in canonical form.
func (c Combination) String() string {
	if c.Modifiers == ModNone {
		return c.Key.String()
	}
	return c.Modifiers.String() + "+" + c.Key.String()
}

// ParseShortcut splits a shortcut expression such as "a, ctrl+b" into its
// combinations. Unresolvable names produce combinations with KeyInvalid
// rather than an error.
func ParseShortcut(expr string) []Combination {
	parts := splitCombinations(stripSpaces(expr))
	combos := make([]Combination, 0, len(parts))
	for _, part := range parts {
		combos = append(combos, parseCombination(part))
	}
	return combos
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// splitCombinations splits on ',' while keeping ',' usable as a key.
// A trailing empty element re-attaches the comma to the previous element
// when that element is empty or ends in '+' ("a,," and "ctrl+,"); otherwise
// it is a tolerated trailing separator and is dropped.
func splitCombinations(s string) []string {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	if n := len(keys); n > 1 && keys[n-1] == "" {
		prev := keys[n-2]
		if prev == "" || strings.HasSuffix(prev, "+") {
			keys[n-2] = prev + ","
		}
		keys = keys[:n-1]
	}

	out := keys[:0]
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

func parseCombination(text string) Combination {
	combo := Combination{Text: text}

	tokens := strings.Split(text, "+")
	keyName := tokens[len(tokens)-1]
	// "ctrl++" and "+" bind the plus key itself.
	if keyName == "" && (text == "+" || strings.HasSuffix(text, "++")) {
		keyName = "+"
		tokens = tokens[:len(tokens)-1]
		if len(tokens) > 0 && tokens[len(tokens)-1] == "" {
			tokens = tokens[:len(tokens)-1]
		}
		tokens = append(tokens, keyName)
	}

	for _, name := range tokens[:len(tokens)-1] {
		code, ok := LookupModifier(name)
		if !ok {
			combo.Key = KeyInvalid
			return combo
		}
		combo.Modifiers |= modifierForCode(code)
	}

	combo.Key = LookupKey(keyName)
	return combo
}
