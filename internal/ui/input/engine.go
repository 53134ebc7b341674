package input

import (
	"context"
	"sort"
	"sync"

	"github.com/bnema/keymaster/internal/logging"
)

// Engine binds shortcuts to handlers and routes key events to them.
// Each Engine owns its registry, modifier state and active scope.
type Engine struct {
	registry  *registry
	modifiers modifierTracker
	pressed   map[KeyCode]struct{}
	scope     string
	filter    FocusFilter
	sources   []EventSource

	ctx context.Context
	mu  sync.Mutex
}

// NewEngine creates an engine with the "all" scope active and the default
// focus filter. Construction has no side effects; call Attach to listen.
func NewEngine(ctx context.Context) *Engine {
	return &Engine{
		registry: newRegistry(),
		pressed:  make(map[KeyCode]struct{}),
		scope:    ScopeAll,
		filter:   DefaultFocusFilter,
		ctx:      logging.WithComponent(ctx, "keymaster"),
	}
}

// Register binds every combination of expr to h under scope.
// An empty scope means ScopeAll. Identical records are ignored and
// unresolvable keys are registered inert.
func (e *Engine) Register(expr, scope string, h Handler) {
	e.RegisterWithContext(expr, scope, h, nil)
}

// RegisterFunc is Register for plain functions.
func (e *Engine) RegisterFunc(expr, scope string, fn func(ev *KeyEvent, b *Binding) Result) {
	e.RegisterWithContext(expr, scope, HandlerFunc(fn), nil)
}

// RegisterWithContext is Register with caller data exposed as Binding.Context.
func (e *Engine) RegisterWithContext(expr, scope string, h Handler, data any) {
	log := logging.FromContext(e.ctx)
	if scope == "" {
		scope = ScopeAll
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, combo := range ParseShortcut(expr) {
		if !combo.Valid() {
			log.Warn().
				Str("shortcut", combo.Text).
				Str("scope", scope).
				Msg("unresolvable shortcut registered inert")
		}
		b := &Binding{
			Shortcut:  combo.Text,
			Key:       combo.Key,
			Modifiers: combo.Modifiers,
			Scope:     scope,
			Context:   data,
			handler:   h,
		}
		if !e.registry.add(b) {
			log.Trace().Str("shortcut", combo.Text).Str("scope", scope).Msg("duplicate binding ignored")
			continue
		}
		log.Debug().
			Str("shortcut", combo.Text).
			Int("key", int(combo.Key)).
			Str("mods", combo.Modifiers.String()).
			Str("scope", scope).
			Msg("binding registered")
	}
}

// Scope returns the active scope.
func (e *Engine) Scope() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scope
}

// SetScope changes the active scope. An empty name resets it to ScopeAll.
func (e *Engine) SetScope(name string) {
	if name == "" {
		name = ScopeAll
	}
	e.mu.Lock()
	from := e.scope
	e.scope = name
	e.mu.Unlock()

	logging.FromContext(e.ctx).Debug().Str("from", from).Str("to", name).Msg("scope changed")
}

// DeleteScope removes every binding registered under name.
func (e *Engine) DeleteScope(name string) {
	e.mu.Lock()
	removed := e.registry.deleteScope(name)
	e.mu.Unlock()

	logging.FromContext(e.ctx).Debug().Str("scope", name).Int("removed", removed).Msg("scope deleted")
}

// Scopes returns the distinct scopes that currently hold bindings.
func (e *Engine) Scopes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.scopes()
}

// Bindings returns a snapshot of registered bindings, all scopes when scope is empty.
func (e *Engine) Bindings(scope string) []Binding {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.list(scope)
}

// SetFocusFilter overrides the input-focus filter. A nil filter accepts every event.
func (e *Engine) SetFocusFilter(filter FocusFilter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.filter = filter
}

// Modifiers returns the modifiers currently held.
func (e *Engine) Modifiers() Modifier {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.modifiers.held
}

// IsPressed reports whether code is currently held down.
func (e *Engine) IsPressed(code KeyCode) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.pressed[canonicalKey(code)]
	return ok
}

// PressedKeyCodes returns the codes currently held down, ascending.
func (e *Engine) PressedKeyCodes() []KeyCode {
	e.mu.Lock()
	defer e.mu.Unlock()
	codes := make([]KeyCode, 0, len(e.pressed))
	for code := range e.pressed {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Attach subscribes the engine to src. Attaching the same source twice is a no-op.
func (e *Engine) Attach(src EventSource) {
	e.mu.Lock()
	for _, s := range e.sources {
		if s == src {
			e.mu.Unlock()
			return
		}
	}
	e.sources = append(e.sources, src)
	count := len(e.sources)
	e.mu.Unlock()

	src.Subscribe(e)
	logging.FromContext(e.ctx).Debug().Int("sources", count).Msg("engine attached")
}

// Detach unsubscribes the engine from src. Unknown sources are ignored.
func (e *Engine) Detach(src EventSource) {
	e.mu.Lock()
	idx := -1
	for i, s := range e.sources {
		if s == src {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.mu.Unlock()
		return
	}
	e.sources = append(e.sources[:idx], e.sources[idx+1:]...)
	e.mu.Unlock()

	src.Unsubscribe(e)
	logging.FromContext(e.ctx).Debug().Msg("engine detached")
}

// Close detaches the engine from every source.
func (e *Engine) Close() {
	e.mu.Lock()
	sources := append([]EventSource(nil), e.sources...)
	e.mu.Unlock()

	for _, src := range sources {
		e.Detach(src)
	}
}

// KeyDown implements Listener.
func (e *Engine) KeyDown(ev *KeyEvent) {
	e.Dispatch(ev)
}

// KeyUp implements Listener. It releases the key and any modifier it denotes.
func (e *Engine) KeyUp(ev *KeyEvent) {
	code := canonicalKey(ev.KeyCode)
	e.mu.Lock()
	delete(e.pressed, code)
	e.modifiers.keyUp(code)
	e.mu.Unlock()
}

// Focus implements Listener. It releases every modifier and pressed key.
func (e *Engine) Focus() {
	e.mu.Lock()
	e.modifiers.reset()
	clear(e.pressed)
	e.mu.Unlock()

	logging.FromContext(e.ctx).Trace().Msg("window focus: modifiers reset")
}

var _ Listener = (*Engine)(nil)
