package collection

import "github.com/google/uuid"

// Token identifies a snapshot or transaction. Tokens are UUIDv7 values:
// time-derived, unique within the process and sortable by creation time.
type Token uuid.UUID

// newToken returns a fresh time-ordered token.
func newToken() Token {
	return Token(uuid.Must(uuid.NewV7()))
}

// String returns the canonical UUID form.
func (t Token) String() string {
	return uuid.UUID(t).String()
}

// IsZero reports whether the token is unset.
func (t Token) IsZero() bool {
	return uuid.UUID(t) == uuid.Nil
}
