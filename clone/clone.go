// Package clone provides the deep-clone collaborator used by snapshot
// capture and restore. The default implementation delegates to
// github.com/huandu/go-clone, which handles cycles and unexported fields;
// the active cloner is swappable at process scope for testing.
package clone

import (
	goclone "github.com/huandu/go-clone"
)

// Cloner produces structural deep copies of arbitrary values.
type Cloner interface {
	Clone(v any) any
}

// Func adapts a plain function to the Cloner interface.
type Func func(v any) any

// Clone implements Cloner.
func (f Func) Clone(v any) any {
	return f(v)
}

var defaultCloner Cloner = Func(func(v any) any {
	return goclone.Slowly(v)
})

var active = defaultCloner

// Deep returns a structural deep copy of v using the active cloner.
// A nil value clones to nil.
func Deep(v any) any {
	if v == nil {
		return nil
	}
	return active.Clone(v)
}

// SetCloner replaces the process-wide cloner. Passing nil restores the
// default.
func SetCloner(c Cloner) {
	if c == nil {
		active = defaultCloner
		return
	}
	active = c
}

// Reset restores the default cloner. Intended for test teardown.
func Reset() {
	active = defaultCloner
}
