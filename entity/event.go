package entity

// EventType identifies a lifecycle phase or a property change.
type EventType string

// Lifecycle event types. Updating and Updated are also emitted implicitly
// around intercepted field writes; the rest fire only via their explicit
// trigger methods.
const (
	Creating  EventType = "creating"
	Created   EventType = "created"
	Updating  EventType = "updating"
	Updated   EventType = "updated"
	Deleting  EventType = "deleting"
	Deleted   EventType = "deleted"
	Restoring EventType = "restoring"
	Restored  EventType = "restored"
)

// Change describes a single field transition.
type Change struct {
	Property string
	OldValue any
	NewValue any
}

// LifecycleEvent is broadcast on an entity's lifecycle stream. Change is
// nil for explicit trigger events and set for events emitted around an
// intercepted field write.
type LifecycleEvent struct {
	Type   EventType
	Change *Change
}

// PropertyEvent is broadcast on an entity's property stream after a tracked
// field write completes. Type is always Updated.
type PropertyEvent struct {
	Type   EventType
	Change Change
}
