// Package collection provides an ordered, typed container with snapshot
// history, transaction grouping and a unified event stream.
//
// # Architecture
//
// A Collection wraps an ordered sequence (transformation operations are
// delegated to github.com/samber/lo) and layers three concerns on top:
//
//   - snapshots: a history of captured states, popped by Rollback
//   - transactions: a begin/commit/rollback overlay that suppresses
//     per-mutation snapshots between its boundaries
//   - events: add/remove/commit/rollback notifications plus forwarded
//     property changes from member entities
//
// # Snapshot Coordination
//
// A collection snapshot always captures both the item-reference list and,
// for every item satisfying entity.SnapshotCapable, that entity's own
// snapshot. Restoring never replaces entity instances: surviving items keep
// their reference identity and their internal state is rewound through
// RestoreSnapshot, which emits nothing.
//
// Member entities are subscribed at construction and on Add; Remove and
// every bulk replace trigger full resubscription so no stale forwarding
// survives a structural change. An entity's Updating event is the sole
// trigger for an implicit collection snapshot, taken before the field write
// lands, and only while no transaction is active.
//
// # Transactions
//
//	Inactive --BeginTransaction--> Active
//	Active --CommitTransaction--> Inactive (boundary snapshot if enabled)
//	Active --RollbackTransaction--> Inactive (restored to the anchor)
//
// While a transaction is active, structural mutations accumulate without
// intermediate snapshots; only the begin anchor and the commit boundary are
// recorded.
//
// # Execution Model
//
// All mutation and notification happen synchronously within the call stack
// of the triggering operation. Collections are single-writer structures:
// they are not safe for concurrent mutation without external locking, and a
// handler that mutates the same collection or entity from inside an emitted
// event recurses synchronously. That pattern is undefined behavior.
package collection
