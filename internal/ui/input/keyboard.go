package input

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/keymaster/internal/infrastructure/config"
	"github.com/bnema/keymaster/internal/logging"
)

// Action names what a configured binding does.
type Action string

// Built-in actions understood by interactive front ends.
const (
	ActionQuit       Action = "quit"
	ActionScopeNext  Action = "scope-next"
	ActionScopeReset Action = "scope-reset"
)

// ErrNoBindings is returned when a configuration declares no bindings.
var ErrNoBindings = errors.New("no bindings configured")

// ActionHandler is called when a configured binding fires.
// Return an error if the action fails.
type ActionHandler func(ctx context.Context, action Action) error

// KeyboardHandler registers configured bindings on an Engine and forwards
// fired bindings to an ActionHandler.
type KeyboardHandler struct {
	engine *Engine

	onAction ActionHandler
	// scopes loaded by the last Apply, deleted before the next one.
	loaded []string

	ctx context.Context
	mu  sync.RWMutex
}

// NewKeyboardHandler creates a keyboard handler feeding engine.
func NewKeyboardHandler(ctx context.Context, engine *Engine) *KeyboardHandler {
	logging.FromContext(ctx).Debug().Msg("creating keyboard handler")
	return &KeyboardHandler{
		engine: engine,
		ctx:    ctx,
	}
}

// Engine returns the engine the handler registers on.
func (h *KeyboardHandler) Engine() *Engine {
	return h.engine
}

// SetOnAction sets the callback for when actions are triggered.
func (h *KeyboardHandler) SetOnAction(fn ActionHandler) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onAction = fn
}

// Apply replaces the bindings of a previous Apply with those of cfg and
// configures the engine's focus filter and starting scope.
func (h *KeyboardHandler) Apply(cfg *config.Config) error {
	log := logging.FromContext(h.ctx)
	if cfg == nil {
		return fmt.Errorf("apply bindings: nil config: %w", ErrNoBindings)
	}
	if len(cfg.Bindings) == 0 {
		return ErrNoBindings
	}

	h.mu.Lock()
	previous := h.loaded
	h.loaded = nil
	h.mu.Unlock()

	for _, scope := range previous {
		h.engine.DeleteScope(scope)
	}

	seen := make(map[string]struct{})
	var registered, inert int
	for _, b := range cfg.Bindings {
		scope := b.Scope
		if scope == "" {
			scope = ScopeAll
		}
		for _, combo := range ParseShortcut(b.Keys) {
			if !combo.Valid() {
				inert++
			}
		}
		h.engine.RegisterWithContext(b.Keys, scope, h, Action(b.Action))
		registered++
		seen[scope] = struct{}{}
	}

	loaded := make([]string, 0, len(seen))
	for scope := range seen {
		loaded = append(loaded, scope)
	}
	h.mu.Lock()
	h.loaded = loaded
	h.mu.Unlock()

	h.engine.SetFocusFilter(NewTagFilter(cfg.Engine.IgnoreInputTags...))
	h.engine.SetScope(cfg.Engine.DefaultScope)

	if inert > 0 {
		log.Warn().Int("inert", inert).Msg("some configured shortcuts cannot match any key")
	}
	log.Debug().
		Int("bindings", registered).
		Int("scopes", len(loaded)).
		Msg("configured bindings applied")
	return nil
}

// HandleKey forwards a matched binding to the action handler. Errors are
// logged and never stop the remaining handlers.
func (h *KeyboardHandler) HandleKey(_ *KeyEvent, b *Binding) Result {
	action, _ := b.Context.(Action)

	h.mu.RLock()
	handler := h.onAction
	h.mu.RUnlock()

	if handler == nil {
		return Continue
	}
	if err := handler(h.ctx, action); err != nil {
		logging.FromContext(h.ctx).Error().
			Err(err).
			Str("action", string(action)).
			Str("shortcut", b.Shortcut).
			Msg("action handler error")
		return Continue
	}
	return Suppress
}

// DescribeBinding renders a binding for listings, e.g. "ctrl+s → save [all]".
func DescribeBinding(b Binding) string {
	action, _ := b.Context.(Action)
	combo := Combination{Text: b.Shortcut, Key: b.Key, Modifiers: b.Modifiers}
	if action == "" {
		return fmt.Sprintf("%s [%s]", combo, b.Scope)
	}
	return fmt.Sprintf("%s → %s [%s]", combo, action, b.Scope)
}
