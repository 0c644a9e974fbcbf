package entity

import (
	"sort"
	"strings"

	"github.com/arkover/tracked/internal/ident"
	"github.com/arkover/tracked/stream"
)

// reservedPrefix marks field names that bypass change tracking and snapshot
// capture entirely.
const reservedPrefix = "_"

// FieldID is the name of the identity field.
const FieldID = "id"

// Reserved reports whether name is excluded from tracking and snapshots.
func Reserved(name string) bool {
	return strings.HasPrefix(name, reservedPrefix)
}

// Base is the embeddable core of a change-tracked entity. It owns the field
// table, the lifecycle and property streams, the tracking-suspension flag
// used during restores, and any declared validation rules.
//
// Base follows the library's single-writer execution model; see the package
// documentation for the reentrancy caveats.
type Base struct {
	lifecycle *stream.Stream[LifecycleEvent]
	property  *stream.Stream[PropertyEvent]
	fields    map[string]any
	rules     map[string]string
	suspended bool
}

// NewBase creates an entity core and applies the given options.
func NewBase(opts ...Option) *Base {
	b := &Base{
		lifecycle: stream.New[LifecycleEvent](),
		property:  stream.New[PropertyEvent](),
		fields:    make(map[string]any),
		rules:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Set writes a field, intercepting the write for change tracking.
//
// Reserved names and writes made while tracking is suspended land silently.
// Writes where the new value is identical to the old one (strict identity,
// not deep equality) are also silent, though the assignment still occurs.
// Otherwise the write emits Updating on the lifecycle stream, performs the
// assignment, then emits Updated on the property stream and Updated on the
// lifecycle stream.
func (b *Base) Set(name string, value any) {
	if b.suspended || Reserved(name) {
		b.fields[name] = value
		return
	}

	old := b.fields[name]
	if ident.Same(old, value) {
		b.fields[name] = value
		return
	}

	change := Change{Property: name, OldValue: old, NewValue: value}
	b.lifecycle.Emit(LifecycleEvent{Type: Updating, Change: &change})
	b.fields[name] = value
	b.property.Emit(PropertyEvent{Type: Updated, Change: change})
	b.lifecycle.Emit(LifecycleEvent{Type: Updated, Change: &change})
}

// Get returns the current value of a field and whether it is present.
func (b *Base) Get(name string) (any, bool) {
	v, ok := b.fields[name]
	return v, ok
}

// Has reports whether a field is present.
func (b *Base) Has(name string) bool {
	_, ok := b.fields[name]
	return ok
}

// Fields returns the sorted names of all non-reserved fields.
func (b *Base) Fields() []string {
	names := make([]string, 0, len(b.fields))
	for name := range b.fields {
		if Reserved(name) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ID returns the identity field, or "" if unset.
func (b *Base) ID() string {
	if v, ok := b.fields[FieldID].(string); ok {
		return v
	}
	return ""
}

// ValidationRules returns a copy of the declared per-field validation
// rules. Transform strategies consume these.
func (b *Base) ValidationRules() map[string]string {
	rules := make(map[string]string, len(b.rules))
	for field, rule := range b.rules {
		rules[field] = rule
	}
	return rules
}

// EntityObservable returns the lifecycle stream.
func (b *Base) EntityObservable() *stream.Stream[LifecycleEvent] {
	return b.lifecycle
}

// PropertyObservable returns the property stream.
func (b *Base) PropertyObservable() *stream.Stream[PropertyEvent] {
	return b.property
}

// SubscribeEntityEvents subscribes to the lifecycle stream.
func (b *Base) SubscribeEntityEvents(h stream.Handler[LifecycleEvent]) *stream.Subscription[LifecycleEvent] {
	return b.lifecycle.Subscribe(h)
}

// SubscribePropertyEvents subscribes to the property stream.
func (b *Base) SubscribePropertyEvents(h stream.Handler[PropertyEvent]) *stream.Subscription[PropertyEvent] {
	return b.property.Subscribe(h)
}

// trigger emits a payload-free lifecycle event unless tracking is
// suspended.
func (b *Base) trigger(t EventType) {
	if b.suspended {
		return
	}
	b.lifecycle.Emit(LifecycleEvent{Type: t})
}

// Creating signals that external persistence of a new entity is starting.
func (b *Base) Creating() { b.trigger(Creating) }

// Created signals that external persistence of a new entity completed.
func (b *Base) Created() { b.trigger(Created) }

// Updating signals that an external update is starting.
func (b *Base) Updating() { b.trigger(Updating) }

// Updated signals that an external update completed.
func (b *Base) Updated() { b.trigger(Updated) }

// Deleting signals that an external delete is starting.
func (b *Base) Deleting() { b.trigger(Deleting) }

// Deleted signals that an external delete completed.
func (b *Base) Deleted() { b.trigger(Deleted) }

// Restoring signals that an external restore is starting.
func (b *Base) Restoring() { b.trigger(Restoring) }

// Restored signals that an external restore completed.
func (b *Base) Restored() { b.trigger(Restored) }

// Observable is the capability an item must declare for a collection to
// subscribe to its events.
type Observable interface {
	EntityObservable() *stream.Stream[LifecycleEvent]
	PropertyObservable() *stream.Stream[PropertyEvent]
}

// SnapshotCapable is the capability an item must declare for collection
// snapshots to capture and restore its internal state.
type SnapshotCapable interface {
	CaptureSnapshot() Snapshot
	RestoreSnapshot(Snapshot)
}

var (
	_ Observable      = (*Base)(nil)
	_ SnapshotCapable = (*Base)(nil)
)
