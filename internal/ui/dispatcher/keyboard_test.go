package dispatcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keymaster/internal/ui/input"
)

func TestDispatch_ScopeNextCycles(t *testing.T) {
	ctx := context.Background()
	engine := input.NewEngine(ctx)
	d := NewKeyboardDispatcher(ctx, engine)
	d.SetScopeOrder([]string{"editor", "browser"})

	require.Equal(t, []string{"all", "editor", "browser"}, d.ScopeOrder())

	var visited []string
	for range 4 {
		require.NoError(t, d.Dispatch(ctx, input.ActionScopeNext))
		visited = append(visited, engine.Scope())
	}
	assert.Equal(t, []string{"editor", "browser", "all", "editor"}, visited)

	require.NoError(t, d.Dispatch(ctx, input.ActionScopeReset))
	assert.Equal(t, input.ScopeAll, engine.Scope())
}

func TestDispatch_ScopeOutsideCycle(t *testing.T) {
	ctx := context.Background()
	engine := input.NewEngine(ctx)
	d := NewKeyboardDispatcher(ctx, engine)
	d.SetScopeOrder([]string{"all", "editor"})

	engine.SetScope("orphan")
	require.NoError(t, d.Dispatch(ctx, input.ActionScopeNext))

	assert.Equal(t, "all", engine.Scope())
}

func TestDispatch_Quit(t *testing.T) {
	ctx := context.Background()
	d := NewKeyboardDispatcher(ctx, input.NewEngine(ctx))

	require.NoError(t, d.Dispatch(ctx, input.ActionQuit))

	quit := false
	d.SetOnQuit(func() { quit = true })
	require.NoError(t, d.Dispatch(ctx, input.ActionQuit))
	assert.True(t, quit)
}

func TestDispatch_UnknownAction(t *testing.T) {
	ctx := context.Background()
	d := NewKeyboardDispatcher(ctx, input.NewEngine(ctx))

	err := d.Dispatch(ctx, "save")

	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Contains(t, err.Error(), "save")
}
