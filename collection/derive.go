package collection

import (
	"reflect"

	"github.com/samber/lo"

	"github.com/arkover/tracked/stream"
)

// fieldReader is the accessor surface Where and Pluck use on entity
// elements. entity.Base satisfies it.
type fieldReader interface {
	Get(name string) (any, bool)
}

// derive wraps a transformed sequence in a new collection carrying the same
// configuration. When both snapshots and transactions are enabled, the
// derived collection records one initial snapshot of its own state for
// traceability.
func (c *Collection[T]) derive(items []T) *Collection[T] {
	out := &Collection[T]{
		cfg:    c.cfg,
		items:  items,
		events: stream.New[Event[T]](),
	}
	out.subscribeAll()
	if out.cfg.snapshots && out.cfg.transactions {
		out.pushSnapshot(newToken())
	}
	return out
}

// Map returns a new collection with fn applied to every item.
func (c *Collection[T]) Map(fn func(T) T) *Collection[T] {
	return c.derive(lo.Map(c.items, func(item T, _ int) T {
		return fn(item)
	}))
}

// Filter returns a new collection with the items matching pred. A nil
// predicate keeps truthy items only: nil values, false, numeric zero and
// empty strings are dropped.
func (c *Collection[T]) Filter(pred func(T) bool) *Collection[T] {
	if pred == nil {
		pred = func(item T) bool { return truthy(any(item)) }
	}
	return c.derive(lo.Filter(c.items, func(item T, _ int) bool {
		return pred(item)
	}))
}

// Where returns a new collection with the entity elements whose field
// equals value (deep equality on the value, as a query predicate should).
// Items without the field accessor never match.
func (c *Collection[T]) Where(field string, value any) *Collection[T] {
	return c.Filter(func(item T) bool {
		fr, ok := any(item).(fieldReader)
		if !ok {
			return false
		}
		current, ok := fr.Get(field)
		if !ok {
			return false
		}
		return reflect.DeepEqual(current, value)
	})
}

// Pluck collects the named field from every entity element, skipping items
// without the accessor or the field.
func (c *Collection[T]) Pluck(field string) []any {
	values := make([]any, 0, len(c.items))
	for _, item := range c.items {
		fr, ok := any(item).(fieldReader)
		if !ok {
			continue
		}
		if v, present := fr.Get(field); present {
			values = append(values, v)
		}
	}
	return values
}

// Each applies fn to every item in order.
func (c *Collection[T]) Each(fn func(T)) {
	lo.ForEach(c.items, func(item T, _ int) {
		fn(item)
	})
}

// MapTo maps a collection to a different element type. Methods cannot
// introduce type parameters, so the cross-type variant is a package
// function.
func MapTo[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	out := &Collection[U]{
		cfg:    c.cfg,
		items:  lo.Map(c.items, func(item T, _ int) U { return fn(item) }),
		events: stream.New[Event[U]](),
	}
	out.subscribeAll()
	if out.cfg.snapshots && out.cfg.transactions {
		out.pushSnapshot(newToken())
	}
	return out
}

// Reduce folds the collection into a single value.
func Reduce[T, U any](c *Collection[T], fn func(acc U, item T) U, initial U) U {
	return lo.Reduce(c.items, func(acc U, item T, _ int) U {
		return fn(acc, item)
	}, initial)
}

// truthy implements the falsy-removal semantics of a predicate-less Filter:
// nil, false, numeric zero and the empty string are falsy; everything else,
// including empty containers and structs, is truthy.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return !rv.IsNil()
	}
	return true
}
