// Package entity implements change-tracked domain objects.
//
// An entity embeds Base, which owns the field table, the two event streams
// and the snapshot machinery:
//
//	type Customer struct {
//	    *entity.Base
//	}
//
//	c := &Customer{Base: entity.NewBase(entity.WithAutoID())}
//	c.Set("name", "Ada")
//
// # Write Interception
//
// Every Set to a non-reserved field whose new value is not identical to the
// old one (strict identity, never deep equality) emits three events: an
// Updating lifecycle event before the write, then an Updated property event
// and an Updated lifecycle event after it. Assigning a field its current
// value is fully silent, as are writes to reserved names (leading "_").
//
// # Snapshots
//
// CaptureSnapshot deep-clones the trackable fields into an opaque Snapshot
// owned by the caller. RestoreSnapshot applies one back with tracking
// suspended: fields missing from the snapshot are deleted, snapshot fields
// are set from fresh clones, and no event fires on any stream. Collections
// rely on that silence to roll back nested entity state without retriggering
// their own snapshot logic.
//
// # Capabilities
//
// The Observable and SnapshotCapable interfaces replace the original
// duck-typed capability checks; Base satisfies both, so any embedding type
// does too.
package entity
