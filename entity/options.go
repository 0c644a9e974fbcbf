package entity

import "github.com/google/uuid"

// Option configures a Base during creation.
type Option func(*Base)

// WithID sets the identity field.
func WithID(id string) Option {
	return func(b *Base) {
		b.fields[FieldID] = id
	}
}

// WithAutoID assigns a generated, time-ordered identity (UUIDv7).
func WithAutoID() Option {
	return func(b *Base) {
		b.fields[FieldID] = uuid.Must(uuid.NewV7()).String()
	}
}

// WithField declares a field with an optional validation rule in
// go-playground/validator syntax (for example "required,email"). The rule
// is consumed by the transform strategy; the field itself is created on
// first write.
func WithField(name, rule string) Option {
	return func(b *Base) {
		if rule != "" {
			b.rules[name] = rule
		}
	}
}

// WithValue pre-populates a field without emitting events. Intended for
// constructor defaults.
func WithValue(name string, value any) Option {
	return func(b *Base) {
		b.fields[name] = value
	}
}
