package collection

import "github.com/arkover/tracked/entity"

// snapshot captures a collection state: the token, the item references in
// order, and an entity snapshot for every item that is snapshot-capable at
// capture time. Item references are copied, never cloned, so a restore
// hands back the original instances.
type snapshot[T any] struct {
	token    Token
	items    []T
	entities map[int]entity.Snapshot
}

// capture records the current state of items under the given token.
func capture[T any](items []T, token Token) *snapshot[T] {
	snap := &snapshot[T]{
		token:    token,
		items:    make([]T, len(items)),
		entities: make(map[int]entity.Snapshot),
	}
	copy(snap.items, items)
	for i, item := range items {
		if sc, ok := any(item).(entity.SnapshotCapable); ok {
			snap.entities[i] = sc.CaptureSnapshot()
		}
	}
	return snap
}

// restore rewinds every captured entity's internal state (silently, through
// RestoreSnapshot) and returns the captured item sequence. The same
// references captured are returned; no instance is reconstructed.
func (s *snapshot[T]) restore() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)
	for i, entitySnap := range s.entities {
		if sc, ok := any(items[i]).(entity.SnapshotCapable); ok {
			sc.RestoreSnapshot(entitySnap)
		}
	}
	return items
}
