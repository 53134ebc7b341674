package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(*KeyEvent, *Binding) Result { return Continue }

type countingHandler struct{ calls int }

func (h *countingHandler) HandleKey(*KeyEvent, *Binding) Result {
	h.calls++
	return Continue
}

type hitCounter struct{ hits int }

func (c *hitCounter) hit(*KeyEvent, *Binding) Result {
	c.hits++
	return Continue
}

func TestRegister_IdenticalRecordIsIgnored(t *testing.T) {
	e := NewEngine(context.Background())
	h := &countingHandler{}

	e.Register("ctrl+s", "", h)
	e.Register("ctrl+s", ScopeAll, h)
	e.RegisterWithContext("ctrl+s", "", h, nil)

	assert.Equal(t, 1, e.registry.size('S'))
}

func TestRegister_DistinctRecordsCoexist(t *testing.T) {
	e := NewEngine(context.Background())
	h1, h2 := &countingHandler{}, &countingHandler{}

	e.Register("a", "", h1)
	e.Register("a", "", h2)
	e.Register("a", "editor", h1)
	e.RegisterWithContext("a", "", h1, "extra")
	e.RegisterFunc("a", "", noop)

	assert.Equal(t, 5, e.registry.size('A'))
}

func TestRegister_FunctionsAreNeverMerged(t *testing.T) {
	t.Run("same function twice", func(t *testing.T) {
		e := NewEngine(context.Background())
		e.RegisterFunc("k", "", noop)
		e.RegisterFunc("k", "", noop)

		assert.Equal(t, 2, e.registry.size('K'))
	})

	t.Run("closures from one literal", func(t *testing.T) {
		e := NewEngine(context.Background())
		var fired []string
		for _, name := range []string{"first", "second"} {
			e.RegisterFunc("k", ScopeAll, func(*KeyEvent, *Binding) Result {
				fired = append(fired, name)
				return Continue
			})
		}

		_, n := press(e, 'K')

		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"first", "second"}, fired)
	})

	t.Run("method values of two receivers", func(t *testing.T) {
		e := NewEngine(context.Background())
		a, b := &hitCounter{}, &hitCounter{}
		e.RegisterFunc("k", ScopeAll, a.hit)
		e.RegisterFunc("k", ScopeAll, b.hit)

		press(e, 'K')

		assert.Equal(t, 1, a.hits)
		assert.Equal(t, 1, b.hits)
		assert.Equal(t, 2, e.registry.size('K'))
	})
}

func TestRegister_ComparesContextsByValue(t *testing.T) {
	e := NewEngine(context.Background())
	h := &countingHandler{}

	e.RegisterWithContext("x", "", h, []string{"a", "b"})
	e.RegisterWithContext("x", "", h, []string{"a", "b"})
	e.RegisterWithContext("x", "", h, map[string]int{"n": 1})
	e.RegisterWithContext("x", "", h, map[string]int{"n": 1})
	e.RegisterWithContext("x", "", h, 7)
	e.RegisterWithContext("x", "", h, 7)

	assert.Equal(t, 3, e.registry.size('X'))
}

func TestRegister_SplitsExpression(t *testing.T) {
	e := NewEngine(context.Background())
	e.RegisterFunc("a, ctrl+a, b", "", noop)

	assert.Equal(t, 2, e.registry.size('A'))
	assert.Equal(t, 1, e.registry.size('B'))
}

func TestRegister_InertBindingsAreStored(t *testing.T) {
	e := NewEngine(context.Background())
	e.RegisterFunc("hyper+a, banana", "", noop)

	bindings := e.Bindings("")
	require.Len(t, bindings, 2)
	for _, b := range bindings {
		assert.Equal(t, KeyInvalid, b.Key)
	}
}

func TestDeleteScope(t *testing.T) {
	e := NewEngine(context.Background())
	e.RegisterWithContext("a", "editor", HandlerFunc(noop), 1)
	e.RegisterWithContext("a", "", HandlerFunc(noop), 2)
	e.RegisterWithContext("a", "editor", HandlerFunc(noop), 3)
	e.RegisterWithContext("a", "browser", HandlerFunc(noop), 4)
	e.RegisterWithContext("b", "editor", HandlerFunc(noop), 5)

	e.DeleteScope("editor")

	var contexts []any
	for _, b := range e.Bindings("") {
		contexts = append(contexts, b.Context)
	}
	assert.Equal(t, []any{2, 4}, contexts)
	assert.Equal(t, []string{"all", "browser"}, e.Scopes())

	e.DeleteScope("missing")
	assert.Len(t, e.Bindings(""), 2)
}

func TestBindings_FilterByScopeAndOrder(t *testing.T) {
	e := NewEngine(context.Background())
	e.RegisterFunc("z", "editor", noop)
	e.RegisterFunc("a", "editor", noop)
	e.RegisterFunc("m", "browser", noop)

	editor := e.Bindings("editor")
	require.Len(t, editor, 2)
	assert.Equal(t, KeyCode('A'), editor[0].Key)
	assert.Equal(t, KeyCode('Z'), editor[1].Key)
	assert.NotNil(t, editor[0].Handler())

	assert.Len(t, e.Bindings(""), 3)
	assert.Empty(t, e.Bindings("nothing"))
}

func TestCandidates(t *testing.T) {
	r := newRegistry()
	r.add(&Binding{Shortcut: "a", Key: 'A', Scope: ScopeAll, Context: 1})
	r.add(&Binding{Shortcut: "a", Key: 'A', Scope: "editor", Context: 2})
	r.add(&Binding{Shortcut: "a", Key: 'A', Scope: "browser", Context: 3})

	got := r.candidates('A', "editor")
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Context)
	assert.Equal(t, 2, got[1].Context)

	assert.Len(t, r.candidates('A', ScopeAll), 1)
	assert.Nil(t, r.candidates('B', ScopeAll))
}
