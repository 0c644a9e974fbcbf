package entity

import "time"

// Field names contributed by the optional field sets.
const (
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
	FieldDeletedAt = "deletedAt"
)

// now is swapped in tests that assert on timestamps.
var now = time.Now

// WithAuditFields adds the audit field set: createdAt and updatedAt,
// initialized to the current UTC time. Composable with other field sets at
// entity-definition time.
func WithAuditFields() Option {
	return func(b *Base) {
		ts := now().UTC()
		b.fields[FieldCreatedAt] = ts
		b.fields[FieldUpdatedAt] = ts
	}
}

// WithSoftDeleteFields adds the soft-delete field set: a deletedAt field
// that is nil while the entity is live.
func WithSoftDeleteFields() Option {
	return func(b *Base) {
		b.fields[FieldDeletedAt] = nil
	}
}

// Touch updates the updatedAt audit field through the tracked write path.
func (b *Base) Touch() {
	b.Set(FieldUpdatedAt, now().UTC())
}

// SoftDelete marks the entity deleted, wrapping the tracked deletedAt write
// in the Deleting/Deleted lifecycle triggers.
func (b *Base) SoftDelete() {
	b.Deleting()
	b.Set(FieldDeletedAt, now().UTC())
	b.Deleted()
}

// Undelete clears the soft-delete marker, wrapping the write in the
// Restoring/Restored lifecycle triggers.
func (b *Base) Undelete() {
	b.Restoring()
	b.Set(FieldDeletedAt, nil)
	b.Restored()
}

// IsDeleted reports whether the soft-delete marker is set.
func (b *Base) IsDeleted() bool {
	v, ok := b.fields[FieldDeletedAt]
	return ok && v != nil
}
