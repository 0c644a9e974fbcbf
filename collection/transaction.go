package collection

// transaction is the optional overlay state of a collection: its token and
// the snapshot captured at BeginTransaction, which RollbackTransaction
// restores.
type transaction[T any] struct {
	token  Token
	anchor *snapshot[T]
}
