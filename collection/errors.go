package collection

import "errors"

// Sentinel errors for transaction misuse. Each case has a fixed, matchable
// message; callers either catch these or avoid them via InTransaction.
var (
	// ErrTransactionsDisabled is returned by the transaction methods when
	// the collection was built without WithTransactions.
	ErrTransactionsDisabled = errors.New("transactions are not enabled for this collection")

	// ErrTransactionActive is returned by BeginTransaction while another
	// transaction is active.
	ErrTransactionActive = errors.New("a transaction is already active")

	// ErrNoActiveTransaction is returned by CommitTransaction and
	// RollbackTransaction when no transaction is active.
	ErrNoActiveTransaction = errors.New("no transaction is active")
)
