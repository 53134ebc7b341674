package adapter

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/keymaster/internal/ui/input"
)

// TeaSource feeds bubbletea messages to subscribed engines.
type TeaSource struct {
	listenerSet
}

// NewTeaSource creates a source with no subscribers.
func NewTeaSource() *TeaSource {
	return &TeaSource{}
}

// Feed forwards msg to the listeners. Key messages return the dispatched
// key-down event and true; focus messages reset modifier state. Any other
// message, or a key the engine cannot represent, returns nil and false.
func (s *TeaSource) Feed(msg tea.Msg) (*input.KeyEvent, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		p, ok := convertTeaKey(msg)
		if !ok {
			return nil, false
		}
		return s.emit(p), true
	case tea.FocusMsg:
		s.focus()
	}
	return nil, false
}

var teaKeys = map[tea.KeyType]press{
	tea.KeyEnter:     {key: input.KeyEnter},
	tea.KeyTab:       {key: input.KeyTab},
	tea.KeyShiftTab:  {key: input.KeyTab, mods: input.ModShift},
	tea.KeyBackspace: {key: input.KeyBackspace},
	tea.KeyEsc:       {key: input.KeyEscape},
	tea.KeySpace:     {key: input.KeySpace},
	tea.KeyDelete:    {key: input.KeyDelete},
	tea.KeyHome:      {key: input.KeyHome},
	tea.KeyEnd:       {key: input.KeyEnd},
	tea.KeyPgUp:      {key: input.KeyPageUp},
	tea.KeyPgDown:    {key: input.KeyPageDown},
	tea.KeyUp:        {key: input.KeyUp},
	tea.KeyDown:      {key: input.KeyDown},
	tea.KeyLeft:      {key: input.KeyLeft},
	tea.KeyRight:     {key: input.KeyRight},

	tea.KeyCtrlUp:         {key: input.KeyUp, mods: input.ModCtrl},
	tea.KeyCtrlDown:       {key: input.KeyDown, mods: input.ModCtrl},
	tea.KeyCtrlLeft:       {key: input.KeyLeft, mods: input.ModCtrl},
	tea.KeyCtrlRight:      {key: input.KeyRight, mods: input.ModCtrl},
	tea.KeyCtrlHome:       {key: input.KeyHome, mods: input.ModCtrl},
	tea.KeyCtrlEnd:        {key: input.KeyEnd, mods: input.ModCtrl},
	tea.KeyCtrlPgUp:       {key: input.KeyPageUp, mods: input.ModCtrl},
	tea.KeyCtrlPgDown:     {key: input.KeyPageDown, mods: input.ModCtrl},
	tea.KeyShiftUp:        {key: input.KeyUp, mods: input.ModShift},
	tea.KeyShiftDown:      {key: input.KeyDown, mods: input.ModShift},
	tea.KeyShiftLeft:      {key: input.KeyLeft, mods: input.ModShift},
	tea.KeyShiftRight:     {key: input.KeyRight, mods: input.ModShift},
	tea.KeyShiftHome:      {key: input.KeyHome, mods: input.ModShift},
	tea.KeyShiftEnd:       {key: input.KeyEnd, mods: input.ModShift},
	tea.KeyCtrlShiftUp:    {key: input.KeyUp, mods: input.ModCtrl | input.ModShift},
	tea.KeyCtrlShiftDown:  {key: input.KeyDown, mods: input.ModCtrl | input.ModShift},
	tea.KeyCtrlShiftLeft:  {key: input.KeyLeft, mods: input.ModCtrl | input.ModShift},
	tea.KeyCtrlShiftRight: {key: input.KeyRight, mods: input.ModCtrl | input.ModShift},

	// Terminals send ^_ for ctrl+/ and ^\, ^] for their own keys.
	tea.KeyCtrlUnderscore:   {key: 191, mods: input.ModCtrl},
	tea.KeyCtrlBackslash:    {key: 220, mods: input.ModCtrl},
	tea.KeyCtrlCloseBracket: {key: 221, mods: input.ModCtrl},
}

func init() {
	fkeys := []tea.KeyType{
		tea.KeyF1, tea.KeyF2, tea.KeyF3, tea.KeyF4, tea.KeyF5,
		tea.KeyF6, tea.KeyF7, tea.KeyF8, tea.KeyF9, tea.KeyF10,
		tea.KeyF11, tea.KeyF12, tea.KeyF13, tea.KeyF14, tea.KeyF15,
		tea.KeyF16, tea.KeyF17, tea.KeyF18, tea.KeyF19,
	}
	for i, k := range fkeys {
		teaKeys[k] = press{key: input.KeyF1 + input.KeyCode(i)}
	}
}

func convertTeaKey(msg tea.KeyMsg) (press, bool) {
	var alt input.Modifier
	if msg.Alt {
		alt = input.ModAlt
	}

	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 || msg.Paste {
			return press{}, false
		}
		return runePress(msg.Runes[0], alt), true
	}
	if p, ok := teaKeys[msg.Type]; ok {
		p.mods |= alt
		return p, true
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		code := input.KeyCode('A' + int(msg.Type-tea.KeyCtrlA))
		return press{key: code, mods: input.ModCtrl | alt}, true
	}
	return press{}, false
}

var _ input.EventSource = (*TeaSource)(nil)
