package collection

// settings is the resolved configuration of a collection. Derived
// collections inherit it verbatim.
type settings struct {
	snapshots     bool
	transactions  bool
	snapshotLimit int
	logger        Logger
}

// Option configures a Collection during creation.
type Option func(*settings)

// WithSnapshots enables snapshot history. Every structural mutation outside
// a transaction captures the prior state first, and Rollback becomes
// available.
func WithSnapshots() Option {
	return func(s *settings) {
		s.snapshots = true
	}
}

// WithTransactions enables the transaction methods.
func WithTransactions() Option {
	return func(s *settings) {
		s.transactions = true
	}
}

// WithSnapshotLimit bounds the snapshot history. When more than limit
// snapshots accumulate, the oldest are evicted first. A limit <= 0 leaves
// the history unbounded.
func WithSnapshotLimit(limit int) Option {
	return func(s *settings) {
		if limit > 0 {
			s.snapshotLimit = limit
		}
	}
}

// WithLogger installs a logger for snapshot and transaction diagnostics.
// Without one the collection never logs.
func WithLogger(l Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
