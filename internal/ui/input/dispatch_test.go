package input

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects the context of each binding that fires.
type recorder struct {
	fired  []any
	result Result
}

func (r *recorder) HandleKey(_ *KeyEvent, b *Binding) Result {
	r.fired = append(r.fired, b.Context)
	return r.result
}

// press sends key-downs for mods then key, followed by key-ups in reverse.
func press(e *Engine, key KeyCode, mods ...KeyCode) (*KeyEvent, int) {
	for _, m := range mods {
		e.KeyDown(NewKeyEvent(m))
	}
	ev := NewKeyEvent(key)
	n := e.Dispatch(ev)
	e.KeyUp(NewKeyEvent(key))
	for i := len(mods) - 1; i >= 0; i-- {
		e.KeyUp(NewKeyEvent(mods[i]))
	}
	return ev, n
}

func TestDispatch_CtrlSSuppresses(t *testing.T) {
	e := NewEngine(context.Background())
	calls := 0
	e.RegisterFunc("ctrl+s", "", func(ev *KeyEvent, b *Binding) Result {
		calls++
		assert.Equal(t, "ctrl+s", b.Shortcut)
		return Suppress
	})

	ev, n := press(e, 'S', KeyControl)

	assert.Equal(t, 1, n)
	assert.Equal(t, 1, calls)
	assert.True(t, ev.DefaultPrevented())
	assert.True(t, ev.PropagationStopped())
}

func TestDispatch_ContinueLeavesEventUntouched(t *testing.T) {
	e := NewEngine(context.Background())
	rec := &recorder{}
	e.Register("a", "", rec)

	ev, n := press(e, 'A')

	assert.Equal(t, 1, n)
	assert.False(t, ev.DefaultPrevented())
	assert.False(t, ev.PropagationStopped())
}

func TestDispatch_ExactModifierMatch(t *testing.T) {
	tests := []struct {
		name string
		expr string
		key  KeyCode
		mods []KeyCode
		want int
	}{
		{"bare key without modifiers", "a", 'A', nil, 1},
		{"bare key with ctrl held", "a", 'A', []KeyCode{KeyControl}, 0},
		{"bare key with shift held", "a", 'A', []KeyCode{KeyShift}, 0},
		{"exact modifiers", "ctrl+shift+k", 'K', []KeyCode{KeyShift, KeyControl}, 1},
		{"missing modifier", "ctrl+shift+k", 'K', []KeyCode{KeyControl}, 0},
		{"extra modifier", "ctrl+k", 'K', []KeyCode{KeyControl, KeyAlt}, 0},
		{"gecko meta code", "⌘+s", 'S', []KeyCode{224}, 1},
		{"right command code", "command+s", 'S', []KeyCode{93}, 1},
		{"other key", "a", 'B', nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(context.Background())
			rec := &recorder{}
			e.Register(tt.expr, "", rec)

			_, n := press(e, tt.key, tt.mods...)

			assert.Equal(t, tt.want, n)
			assert.Len(t, rec.fired, tt.want)
		})
	}
}

func TestDispatch_ModifierPressFiresNothing(t *testing.T) {
	e := NewEngine(context.Background())
	rec := &recorder{}
	e.Register("ctrl+s", "", rec)

	n := e.Dispatch(NewKeyEvent(KeyControl))

	assert.Equal(t, 0, n)
	assert.Empty(t, rec.fired)
	assert.Equal(t, ModCtrl, e.Modifiers())
	assert.True(t, e.IsPressed(KeyControl))
}

func TestDispatch_InertBindingNeverFires(t *testing.T) {
	e := NewEngine(context.Background())
	rec := &recorder{}
	e.Register("hyper+a, banana", "", rec)

	_, n := press(e, KeyInvalid)
	assert.Equal(t, 0, n)
	_, n = press(e, 'A')
	assert.Equal(t, 0, n)
}

func TestDispatch_ScopeIsolation(t *testing.T) {
	e := NewEngine(context.Background())
	rec := &recorder{}
	e.RegisterWithContext("a", "", rec, "global")
	e.RegisterWithContext("a", "editor", rec, "editor")
	e.RegisterWithContext("a", "browser", rec, "browser")

	press(e, 'A')
	assert.Equal(t, []any{"global"}, rec.fired)

	rec.fired = nil
	e.SetScope("editor")
	press(e, 'A')
	assert.Equal(t, []any{"global", "editor"}, rec.fired)

	rec.fired = nil
	e.SetScope("")
	assert.Equal(t, ScopeAll, e.Scope())
	press(e, 'A')
	assert.Equal(t, []any{"global"}, rec.fired)
}

func TestDispatch_DeletedScopeStopsFiring(t *testing.T) {
	e := NewEngine(context.Background())
	rec := &recorder{}
	e.RegisterWithContext("a", "editor", rec, "editor")
	e.SetScope("editor")

	e.DeleteScope("editor")
	_, n := press(e, 'A')

	assert.Equal(t, 0, n)
	assert.Equal(t, "editor", e.Scope())
}

func TestDispatch_FanOutInRegistrationOrder(t *testing.T) {
	e := NewEngine(context.Background())
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		e.RegisterWithContext("a", "", HandlerFunc(func(*KeyEvent, *Binding) Result {
			order = append(order, i)
			if i == 1 {
				return Suppress
			}
			return Continue
		}), i)
	}

	ev, n := press(e, 'A')

	assert.Equal(t, 3, n)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.True(t, ev.DefaultPrevented())
}

func TestDispatch_FocusFilter(t *testing.T) {
	e := NewEngine(context.Background())
	rec := &recorder{}
	e.Register("a", "", rec)

	for _, tag := range []string{"INPUT", "select", "TextArea"} {
		ev := NewKeyEvent('A')
		ev.Target.TagName = tag
		assert.Equal(t, 0, e.Dispatch(ev), tag)
	}

	ev := NewKeyEvent('A')
	ev.Target.TagName = "DIV"
	assert.Equal(t, 1, e.Dispatch(ev))

	e.SetFocusFilter(nil)
	ev = NewKeyEvent('A')
	ev.Target.TagName = "INPUT"
	assert.Equal(t, 1, e.Dispatch(ev))

	e.SetFocusFilter(func(*KeyEvent) bool { return false })
	assert.Equal(t, 0, e.Dispatch(NewKeyEvent('A')))
}

func TestDispatch_FilteredModifierStillTracked(t *testing.T) {
	e := NewEngine(context.Background())
	ev := NewKeyEvent(KeyShift)
	ev.Target.TagName = "INPUT"

	e.Dispatch(ev)

	assert.Equal(t, ModShift, e.Modifiers())
}

func TestFocus_ResetsModifiers(t *testing.T) {
	e := NewEngine(context.Background())
	rec := &recorder{}
	e.Register("a", "", rec)

	e.KeyDown(NewKeyEvent(KeyControl))
	e.KeyDown(NewKeyEvent('Q'))
	e.Focus()

	assert.Equal(t, ModNone, e.Modifiers())
	assert.Empty(t, e.PressedKeyCodes())

	_, n := press(e, 'A')
	assert.Equal(t, 1, n)
}

func TestPressedKeyCodes(t *testing.T) {
	e := NewEngine(context.Background())

	e.KeyDown(NewKeyEvent('B'))
	e.KeyDown(NewKeyEvent(224))
	e.KeyDown(NewKeyEvent('A'))

	assert.Equal(t, []KeyCode{'A', 'B', KeyCommand}, e.PressedKeyCodes())
	assert.True(t, e.IsPressed(93))

	e.KeyUp(NewKeyEvent('B'))
	e.KeyUp(NewKeyEvent(93))

	assert.Equal(t, []KeyCode{'A'}, e.PressedKeyCodes())
	assert.Equal(t, ModNone, e.Modifiers())
}

func TestDispatch_FilterMayReenterEngine(t *testing.T) {
	e := NewEngine(context.Background())
	rec := &recorder{}
	e.Register("k", "", rec)
	e.SetFocusFilter(func(*KeyEvent) bool {
		return e.Scope() != "typing" && !e.IsPressed(KeyControl)
	})

	done := make(chan int, 1)
	go func() { done <- e.Dispatch(NewKeyEvent('K')) }()

	select {
	case n := <-done:
		assert.Equal(t, 1, n)
	case <-time.After(2 * time.Second):
		t.Fatal("dispatch blocked while running the focus filter")
	}

	e.SetScope("typing")
	assert.Equal(t, 0, e.Dispatch(NewKeyEvent('K')))
	assert.Len(t, rec.fired, 1)
}

func TestDispatch_HandlersMayReenterEngine(t *testing.T) {
	e := NewEngine(context.Background())
	rec := &recorder{}
	e.RegisterWithContext("a", "editor", rec, "editor")
	e.RegisterFunc("ctrl+e", "", func(*KeyEvent, *Binding) Result {
		e.SetScope("editor")
		e.RegisterWithContext("b", "editor", rec, "late")
		e.DeleteScope("nothing")
		return Suppress
	})

	_, n := press(e, 'E', KeyControl)
	require.Equal(t, 1, n)
	assert.Equal(t, "editor", e.Scope())

	press(e, 'A')
	press(e, 'B')
	assert.Equal(t, []any{"editor", "late"}, rec.fired)
}

func TestDispatch_RegistrationDuringDispatchAppliesNextTime(t *testing.T) {
	e := NewEngine(context.Background())
	calls := 0
	var add func(*KeyEvent, *Binding) Result
	add = func(_ *KeyEvent, b *Binding) Result {
		calls++
		e.RegisterWithContext("a", "", HandlerFunc(add), calls)
		return Continue
	}
	e.RegisterWithContext("a", "", HandlerFunc(add), 0)

	_, n := press(e, 'A')
	assert.Equal(t, 1, n)

	_, n = press(e, 'A')
	assert.Equal(t, 2, n)
}

func TestEngines_AreIndependent(t *testing.T) {
	a := NewEngine(context.Background())
	b := NewEngine(context.Background())
	rec := &recorder{}
	a.Register("x", "", rec)

	a.KeyDown(NewKeyEvent(KeyControl))
	a.SetScope("editor")

	assert.Equal(t, ModNone, b.Modifiers())
	assert.Equal(t, ScopeAll, b.Scope())
	_, n := press(b, 'X')
	assert.Equal(t, 0, n)
}
