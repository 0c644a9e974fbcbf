package entity

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"

	"github.com/arkover/tracked/clone"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Snapshot is an opaque, deep-cloned capture of an entity's trackable
// fields. It is owned exclusively by whoever captured it; the entity keeps
// no reference to snapshots it produced.
type Snapshot struct {
	fields map[string]any
}

// Len returns the number of captured fields.
func (s Snapshot) Len() int {
	return len(s.fields)
}

// Value returns a deep clone of a captured field value, keeping the
// snapshot itself immutable.
func (s Snapshot) Value(name string) (any, bool) {
	v, ok := s.fields[name]
	if !ok {
		return nil, false
	}
	return clone.Deep(v), true
}

// MarshalJSON encodes the captured fields as a JSON object.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	if s.fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s.fields)
}

// UnmarshalJSON decodes a JSON object into the snapshot, replacing any
// previous contents.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	fields := make(map[string]any)
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	s.fields = fields
	return nil
}

// CaptureSnapshot enumerates the entity's own fields, skips reserved and
// function-valued ones, and deep-clones the rest into a new Snapshot.
func (b *Base) CaptureSnapshot() Snapshot {
	fields := make(map[string]any, len(b.fields))
	for name, value := range b.fields {
		if Reserved(name) {
			continue
		}
		if value != nil && reflect.ValueOf(value).Kind() == reflect.Func {
			continue
		}
		fields[name] = clone.Deep(value)
	}
	return Snapshot{fields: fields}
}

// RestoreSnapshot replaces the entity's trackable fields with the
// snapshot's contents: fields absent from the snapshot are deleted, then
// every snapshot field is set from a fresh deep clone. Tracking is
// suspended for the duration, so no event fires on any stream.
func (b *Base) RestoreSnapshot(snap Snapshot) {
	b.suspended = true
	defer func() { b.suspended = false }()

	for name := range b.fields {
		if Reserved(name) {
			continue
		}
		if _, ok := snap.fields[name]; !ok {
			delete(b.fields, name)
		}
	}
	for name, value := range snap.fields {
		b.fields[name] = clone.Deep(value)
	}
}
