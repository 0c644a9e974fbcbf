// Package tracked is the facade over the library's subpackages: typed
// collections with snapshot history and transactions (collection),
// change-tracked entities (entity), synchronous event streams (stream) and
// the plain-object transform strategy (transform).
package tracked

import (
	"github.com/arkover/tracked/collection"
	"github.com/arkover/tracked/entity"
	"github.com/arkover/tracked/stream"
)

// Re-export commonly used types for convenience.
type (
	// Collection is an ordered, tracked sequence of T.
	Collection[T any] = collection.Collection[T]

	// Event is the discriminated union emitted on a collection stream.
	Event[T any] = collection.Event[T]

	// Option configures a collection.
	Option = collection.Option

	// Token identifies a snapshot or transaction.
	Token = collection.Token

	// Base is the embeddable core of a change-tracked entity.
	Base = entity.Base

	// Change describes a single field transition.
	Change = entity.Change

	// Snapshot is an opaque capture of an entity's fields.
	Snapshot = entity.Snapshot

	// Stream is the synchronous broadcast primitive.
	Stream[T any] = stream.Stream[T]
)

// Re-export the collection event tags.
const (
	EventAdd      = collection.EventAdd
	EventRemove   = collection.EventRemove
	EventCommit   = collection.EventCommit
	EventRollback = collection.EventRollback
)

// New creates a collection over the initial items.
func New[T any](items []T, opts ...Option) *Collection[T] {
	return collection.New(items, opts...)
}

// NewBase creates an entity core.
func NewBase(opts ...entity.Option) *Base {
	return entity.NewBase(opts...)
}

// Convenience re-exports of the collection options.
var (
	WithSnapshots     = collection.WithSnapshots
	WithTransactions  = collection.WithTransactions
	WithSnapshotLimit = collection.WithSnapshotLimit
)
