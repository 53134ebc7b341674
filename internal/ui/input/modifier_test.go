package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierTracker(t *testing.T) {
	var tr modifierTracker

	assert.True(t, tr.keyDown(KeyControl))
	assert.True(t, tr.keyDown(224))
	assert.False(t, tr.keyDown('A'))
	assert.Equal(t, ModCtrl|ModMeta, tr.held)

	tr.keyUp(KeyCommand)
	assert.Equal(t, ModCtrl, tr.held)

	tr.keyUp('A')
	assert.Equal(t, ModCtrl, tr.held)

	tr.reset()
	assert.Equal(t, ModNone, tr.held)
}

func TestModifierTracker_Matches(t *testing.T) {
	tests := []struct {
		name     string
		held     Modifier
		required Modifier
		want     bool
	}{
		{"bare with nothing held", ModNone, ModNone, true},
		{"bare with ctrl held", ModCtrl, ModNone, false},
		{"exact set", ModCtrl | ModShift, ModCtrl | ModShift, true},
		{"superset held", ModCtrl | ModShift, ModCtrl, false},
		{"subset held", ModCtrl, ModCtrl | ModShift, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := modifierTracker{held: tt.held}
			assert.Equal(t, tt.want, tr.matches(tt.required))
		})
	}
}

func TestModifier_StringAndCodes(t *testing.T) {
	m := ModMeta | ModShift | ModCtrl

	assert.Equal(t, "shift+ctrl+command", m.String())
	assert.Equal(t, []KeyCode{KeyShift, KeyControl, KeyCommand}, m.Codes())
	assert.Equal(t, "", ModNone.String())
	assert.Nil(t, ModNone.Codes())
	assert.True(t, m.Has(ModShift|ModCtrl))
	assert.False(t, m.Has(ModAlt))
	assert.False(t, m.Has(ModNone))
}

func TestModifier_FlagValues(t *testing.T) {
	assert.Equal(t, Modifier(0), ModNone)
	assert.Equal(t, Modifier(1), ModShift)
	assert.Equal(t, Modifier(2), ModCtrl)
	assert.Equal(t, Modifier(4), ModAlt)
	assert.Equal(t, Modifier(8), ModMeta)
}
