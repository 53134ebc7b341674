package input

import (
	"reflect"
	"sort"
)

// ScopeAll is the universal scope: its bindings match whatever scope is active.
const ScopeAll = "all"

// Result is returned by a handler to tell the dispatcher what to do with the event.
type Result int

const (
	// Continue leaves the event untouched.
	Continue Result = iota
	// Suppress prevents the default action and stops propagation.
	Suppress
)

// Handler is invoked when a binding matches a key press.
type Handler interface {
	HandleKey(ev *KeyEvent, b *Binding) Result
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ev *KeyEvent, b *Binding) Result

// HandleKey calls f(ev, b).
func (f HandlerFunc) HandleKey(ev *KeyEvent, b *Binding) Result {
	return f(ev, b)
}

// Binding is a registered handler record.
type Binding struct {
	Shortcut  string   // combination text as registered
	Key       KeyCode  // primary key code
	Modifiers Modifier // required modifiers
	Scope     string
	// Context is caller data handed back to the handler through the binding.
	Context any

	handler Handler
}

// Handler returns the callable bound to this record.
func (b *Binding) Handler() Handler {
	return b.handler
}

// sameRecord compares dedup identity: shortcut text, scope, handler and
// context. Records whose handler has no identity are never equal.
func (b *Binding) sameRecord(other *Binding) bool {
	if b.Shortcut != other.Shortcut || b.Scope != other.Scope {
		return false
	}
	id, ok := handlerIdentity(b.handler)
	otherID, otherOK := handlerIdentity(other.handler)
	if !ok || !otherOK || id != otherID {
		return false
	}
	return sameValue(b.Context, other.Context)
}

// handlerIdentity returns a comparable identity for h. Functions have none:
// two closures or method values cannot be told apart safely, so each
// registration of a function is its own record. Use a pointer Handler to get
// deduplication.
func handlerIdentity(h Handler) (any, bool) {
	if h == nil {
		return nil, true
	}
	t := reflect.TypeOf(h)
	if t.Kind() == reflect.Func || !t.Comparable() {
		return nil, false
	}
	return h, true
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// registry maps primary key codes to bindings in registration order.
// Buckets are created on first use and never removed.
type registry struct {
	buckets map[KeyCode][]*Binding
}

func newRegistry() *registry {
	return &registry{buckets: make(map[KeyCode][]*Binding)}
}

// add appends b to its bucket unless an identical record exists.
// It reports whether b was inserted.
func (r *registry) add(b *Binding) bool {
	bucket := r.buckets[b.Key]
	for _, existing := range bucket {
		if existing.sameRecord(b) {
			return false
		}
	}
	r.buckets[b.Key] = append(bucket, b)
	return true
}

// deleteScope removes every binding with the given scope, keeping order.
func (r *registry) deleteScope(scope string) int {
	removed := 0
	for code, bucket := range r.buckets {
		kept := make([]*Binding, 0, len(bucket))
		for _, b := range bucket {
			if b.Scope == scope {
				removed++
				continue
			}
			kept = append(kept, b)
		}
		r.buckets[code] = kept
	}
	return removed
}

// candidates returns a copy of the bindings for code eligible under scope.
// Handlers may mutate the registry while the copy is being dispatched.
func (r *registry) candidates(code KeyCode, scope string) []*Binding {
	bucket := r.buckets[code]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]*Binding, 0, len(bucket))
	for _, b := range bucket {
		if b.Scope == scope || b.Scope == ScopeAll {
			out = append(out, b)
		}
	}
	return out
}

func (r *registry) size(code KeyCode) int {
	return len(r.buckets[code])
}

// list snapshots bindings in key-code order, optionally limited to scope.
func (r *registry) list(scope string) []Binding {
	codes := make([]KeyCode, 0, len(r.buckets))
	for code := range r.buckets {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	var out []Binding
	for _, code := range codes {
		for _, b := range r.buckets[code] {
			if scope == "" || b.Scope == scope {
				out = append(out, *b)
			}
		}
	}
	return out
}

// scopes returns the distinct scopes in use, sorted.
func (r *registry) scopes() []string {
	seen := make(map[string]struct{})
	for _, bucket := range r.buckets {
		for _, b := range bucket {
			seen[b.Scope] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
