// Package transform converts plain field maps into entity instances through
// a process-wide, swappable strategy.
//
// The default strategy validates the plain object against the target's
// declared field rules using go-playground/validator and, only if every
// rule passes, assigns the fields. Transformation is all-or-nothing: a
// validation failure leaves the target untouched and the returned error
// enumerates every failing field.
package transform

import (
	"context"
)

// Target is the entity-side surface a strategy writes through. entity.Base
// satisfies it.
type Target interface {
	Set(name string, value any)
	ValidationRules() map[string]string
}

// Strategy turns a plain field map into state on an existing target
// instance.
type Strategy interface {
	Transform(ctx context.Context, target Target, plain map[string]any) error
}

var defaultStrategy Strategy = NewValidatorStrategy()

var active = defaultStrategy

// SetStrategy replaces the process-wide strategy. Passing nil restores the
// default.
func SetStrategy(s Strategy) {
	if s == nil {
		active = defaultStrategy
		return
	}
	active = s
}

// ResetStrategy restores the default strategy. Intended for test teardown.
func ResetStrategy() {
	active = defaultStrategy
}

// PlainToInstance constructs an instance via factory and populates it from
// plain using the active strategy. On error the zero value is returned and
// the instance is discarded.
func PlainToInstance[T Target](ctx context.Context, factory func() T, plain map[string]any) (T, error) {
	instance := factory()
	if err := active.Transform(ctx, instance, plain); err != nil {
		var zero T
		return zero, err
	}
	return instance, nil
}
