package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShortcut(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Combination
	}{
		{
			name:  "single letter",
			input: "a",
			want:  []Combination{{Text: "a", Key: 'A'}},
		},
		{
			name:  "modifier and key",
			input: "ctrl+s",
			want:  []Combination{{Text: "ctrl+s", Key: 'S', Modifiers: ModCtrl}},
		},
		{
			name:  "several modifiers",
			input: "ctrl+shift+k",
			want:  []Combination{{Text: "ctrl+shift+k", Key: 'K', Modifiers: ModCtrl | ModShift}},
		},
		{
			name:  "list with whitespace",
			input: " a , ctrl + b ",
			want: []Combination{
				{Text: "a", Key: 'A'},
				{Text: "ctrl+b", Key: 'B', Modifiers: ModCtrl},
			},
		},
		{
			name:  "symbol modifiers",
			input: "⌘+⌥+⇧+⌃+x",
			want:  []Combination{{Text: "⌘+⌥+⇧+⌃+x", Key: 'X', Modifiers: ModMeta | ModAlt | ModShift | ModCtrl}},
		},
		{
			name:  "modifier aliases are case-insensitive",
			input: "Control+Option+p",
			want:  []Combination{{Text: "Control+Option+p", Key: 'P', Modifiers: ModCtrl | ModAlt}},
		},
		{
			name:  "named keys",
			input: "esc, Enter, f12",
			want: []Combination{
				{Text: "esc", Key: KeyEscape},
				{Text: "Enter", Key: KeyEnter},
				{Text: "f12", Key: KeyF1 + 11},
			},
		},
		{
			name:  "comma as trailing key",
			input: "a,,",
			want: []Combination{
				{Text: "a", Key: 'A'},
				{Text: ",", Key: 188},
			},
		},
		{
			name:  "comma with modifier",
			input: "ctrl+,",
			want:  []Combination{{Text: "ctrl+,", Key: 188, Modifiers: ModCtrl}},
		},
		{
			name:  "lone comma",
			input: ",",
			want:  []Combination{{Text: ",", Key: 188}},
		},
		{
			name:  "trailing separator dropped",
			input: "a,",
			want:  []Combination{{Text: "a", Key: 'A'}},
		},
		{
			name:  "plus key",
			input: "+",
			want:  []Combination{{Text: "+", Key: '+'}},
		},
		{
			name:  "plus key with modifier",
			input: "ctrl++",
			want:  []Combination{{Text: "ctrl++", Key: '+', Modifiers: ModCtrl}},
		},
		{
			name:  "dangling plus is inert",
			input: "ctrl+",
			want:  []Combination{{Text: "ctrl+", Key: KeyInvalid, Modifiers: ModCtrl}},
		},
		{
			name:  "unknown modifier is inert",
			input: "hyper+a",
			want:  []Combination{{Text: "hyper+a", Key: KeyInvalid}},
		},
		{
			name:  "unknown key name is inert",
			input: "ctrl+banana",
			want:  []Combination{{Text: "ctrl+banana", Key: KeyInvalid, Modifiers: ModCtrl}},
		},
		{
			name:  "empty expression",
			input: "  ",
			want:  []Combination{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseShortcut(tt.input))
		})
	}
}

func TestCombination_String(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a", "a"},
		{"ctrl+shift+k", "shift+ctrl+k"},
		{"⌘+s", "command+s"},
		{"ctrl+,", "ctrl+,"},
		{"pageup", "pageup"},
		{"f5", "f5"},
		{"hyper+a", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			combos := ParseShortcut(tt.input)
			if assert.Len(t, combos, 1) {
				assert.Equal(t, tt.want, combos[0].String())
			}
		})
	}
}

func TestCombination_Valid(t *testing.T) {
	assert.True(t, Combination{Key: 'A'}.Valid())
	assert.False(t, Combination{Key: KeyInvalid}.Valid())
}
