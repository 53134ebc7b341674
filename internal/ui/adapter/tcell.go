package adapter

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bnema/keymaster/internal/ui/input"
)

// TcellSource feeds tcell screen events to subscribed engines.
type TcellSource struct {
	listenerSet
}

// NewTcellSource creates a source with no subscribers.
func NewTcellSource() *TcellSource {
	return &TcellSource{}
}

// Feed forwards ev to the listeners. It behaves like TeaSource.Feed.
func (s *TcellSource) Feed(ev tcell.Event) (*input.KeyEvent, bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		p, ok := convertTcellKey(e)
		if !ok {
			return nil, false
		}
		return s.emit(p), true
	case *tcell.EventFocus:
		if e.Focused {
			s.focus()
		}
	}
	return nil, false
}

var tcellKeys = map[tcell.Key]input.KeyCode{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyClear:      input.KeyClear,
}

func init() {
	for i := 0; i <= int(input.KeyF19-input.KeyF1); i++ {
		tcellKeys[tcell.KeyF1+tcell.Key(i)] = input.KeyF1 + input.KeyCode(i)
	}
}

// convertTcellMod converts tcell modifiers to engine modifiers.
func convertTcellMod(m tcell.ModMask) input.Modifier {
	var result input.Modifier
	if m&tcell.ModShift != 0 {
		result |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= input.ModMeta
	}
	return result
}

func convertTcellKey(e *tcell.EventKey) (press, bool) {
	mods := convertTcellMod(e.Modifiers())

	switch k := e.Key(); {
	case k == tcell.KeyRune:
		return runePress(e.Rune(), mods), true
	case k == tcell.KeyBacktab:
		return press{key: input.KeyTab, mods: mods | input.ModShift}, true
	default:
		if code, ok := tcellKeys[k]; ok {
			return press{key: code, mods: mods}, true
		}
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return press{key: input.KeyCode('A' + int(k-tcell.KeyCtrlA)), mods: mods | input.ModCtrl}, true
		}
	}
	return press{}, false
}

var _ input.EventSource = (*TcellSource)(nil)
