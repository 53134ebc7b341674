// Package dispatcher routes fired keyboard actions to their built-in behavior.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/keymaster/internal/logging"
	"github.com/bnema/keymaster/internal/ui/input"
)

// ErrUnknownAction is returned for actions with no built-in behavior.
var ErrUnknownAction = errors.New("unknown action")

// ScopeController is the part of the engine the dispatcher drives.
type ScopeController interface {
	Scope() string
	SetScope(name string)
}

// KeyboardDispatcher performs the built-in actions: quit, scope-next and
// scope-reset.
type KeyboardDispatcher struct {
	scopes ScopeController
	order  []string
	onQuit func()

	mu sync.RWMutex
}

// NewKeyboardDispatcher creates a dispatcher cycling the scopes of ctrl.
func NewKeyboardDispatcher(ctx context.Context, ctrl ScopeController) *KeyboardDispatcher {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating keyboard dispatcher")

	return &KeyboardDispatcher{
		scopes: ctrl,
		order:  []string{input.ScopeAll},
	}
}

// SetOnQuit sets the callback for quit action.
func (d *KeyboardDispatcher) SetOnQuit(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onQuit = fn
}

// SetScopeOrder sets the cycle followed by scope-next. "all" is prepended
// when missing.
func (d *KeyboardDispatcher) SetScopeOrder(order []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.order = append([]string(nil), order...)
	if !slices.Contains(d.order, input.ScopeAll) {
		d.order = append([]string{input.ScopeAll}, d.order...)
	}
}

// ScopeOrder returns the scope cycle.
func (d *KeyboardDispatcher) ScopeOrder() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.order...)
}

// Dispatch performs action. Actions without built-in behavior return an
// error wrapping ErrUnknownAction.
func (d *KeyboardDispatcher) Dispatch(ctx context.Context, action input.Action) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("action", string(action)).Msg("dispatching keyboard action")

	switch action {
	case input.ActionQuit:
		d.mu.RLock()
		onQuit := d.onQuit
		d.mu.RUnlock()
		if onQuit != nil {
			onQuit()
		}
	case input.ActionScopeNext:
		d.scopes.SetScope(d.next(d.scopes.Scope()))
	case input.ActionScopeReset:
		d.scopes.SetScope(input.ScopeAll)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	return nil
}

// next returns the scope after current, wrapping around. A scope outside
// the cycle moves to its start.
func (d *KeyboardDispatcher) next(current string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	idx := slices.Index(d.order, current)
	return d.order[(idx+1)%len(d.order)]
}
