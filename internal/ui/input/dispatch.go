package input

import "github.com/bnema/keymaster/internal/logging"

// Dispatch routes a key-down event to the matching handlers of the active
// scope and returns how many handlers fired.
//
// Modifier presses only update modifier state. Events rejected by the focus
// filter, unknown key codes and non-matching modifier sets fire nothing.
// Every matching handler runs, in registration order; a Suppress result
// prevents the default action and stops propagation without ending the
// fan-out. The focus filter and handlers run without the engine lock and may
// call back into it: changes apply to the next dispatch.
func (e *Engine) Dispatch(ev *KeyEvent) int {
	log := logging.FromContext(e.ctx)
	code := canonicalKey(ev.KeyCode)
	if code < 0 {
		return 0
	}

	e.mu.Lock()
	e.pressed[code] = struct{}{}
	if e.modifiers.keyDown(code) {
		e.mu.Unlock()
		log.Trace().Int("key", int(code)).Msg("modifier held")
		return 0
	}

	var matched []*Binding
	for _, b := range e.registry.candidates(code, e.scope) {
		if e.modifiers.matches(b.Modifiers) {
			matched = append(matched, b)
		}
	}
	held := e.modifiers.held
	scope := e.scope
	filter := e.filter
	e.mu.Unlock()

	if filter != nil && !filter(ev) {
		log.Trace().Int("key", int(code)).Str("target", ev.Target.TagName).Msg("event filtered")
		return 0
	}

	log.Trace().
		Int("key", int(code)).
		Str("mods", held.String()).
		Str("scope", scope).
		Int("matched", len(matched)).
		Msg("key dispatched")

	for _, b := range matched {
		if b.handler == nil {
			continue
		}
		if b.handler.HandleKey(ev, b) == Suppress {
			ev.PreventDefault()
			ev.StopPropagation()
		}
	}
	return len(matched)
}
