package collection

import (
	"github.com/arkover/tracked/entity"
	"github.com/arkover/tracked/internal/ident"
	"github.com/arkover/tracked/stream"
)

// Collection is an ordered sequence of T with snapshot history, transaction
// grouping and a unified event stream. See the package documentation for
// the coordination rules and the execution model.
type Collection[T any] struct {
	cfg     settings
	items   []T
	events  *stream.Stream[Event[T]]
	history []*snapshot[T]
	tx      *transaction[T]
	subs    []*itemSubscription
}

// itemSubscription holds a member entity's forwarding subscriptions so a
// bulk replace can cancel them all.
type itemSubscription struct {
	lifecycle *stream.Subscription[entity.LifecycleEvent]
	property  *stream.Subscription[entity.PropertyEvent]
}

// New creates a collection over the initial items and subscribes to every
// one of them that satisfies entity.Observable.
func New[T any](items []T, opts ...Option) *Collection[T] {
	var cfg settings
	for _, opt := range opts {
		opt(&cfg)
	}
	c := &Collection[T]{
		cfg:    cfg,
		items:  append([]T(nil), items...),
		events: stream.New[Event[T]](),
	}
	c.subscribeAll()
	return c
}

// Items returns a copy of the current sequence.
func (c *Collection[T]) Items() []T {
	return append([]T(nil), c.items...)
}

// All is the sequence-library accessor for the current items; identical to
// Items.
func (c *Collection[T]) All() []T {
	return c.Items()
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Contains reports whether item is present, by reference identity.
func (c *Collection[T]) Contains(item T) bool {
	for _, cur := range c.items {
		if ident.Same(any(cur), any(item)) {
			return true
		}
	}
	return false
}

// First returns the first item, or the zero value and false when empty.
func (c *Collection[T]) First() (T, bool) {
	if len(c.items) == 0 {
		var zero T
		return zero, false
	}
	return c.items[0], true
}

// Subscribe registers a handler on the collection's event stream.
func (c *Collection[T]) Subscribe(h stream.Handler[Event[T]]) *stream.Subscription[Event[T]] {
	return c.events.Subscribe(h)
}

// InTransaction reports whether a transaction is active.
func (c *Collection[T]) InTransaction() bool {
	return c.tx != nil
}

// HistoryLen returns the number of snapshots currently held.
func (c *Collection[T]) HistoryLen() int {
	return len(c.history)
}

// Add appends item, emits an add event and subscribes to the item if it is
// observable. Outside a transaction, with snapshots enabled, the prior
// state is captured first.
func (c *Collection[T]) Add(item T) {
	c.maybeSnapshot()
	c.items = append(c.items, item)
	c.events.Emit(Event[T]{Type: EventAdd, Item: item})
	c.subscribeItem(item)
}

// Remove removes every reference identical to item (never value-equal
// copies). Removing an absent item is a pure no-op: no snapshot, no
// emission. A successful removal replaces the sequence, which triggers full
// resubscription of the surviving observable members.
func (c *Collection[T]) Remove(item T) {
	if !c.Contains(item) {
		return
	}
	c.maybeSnapshot()
	next := make([]T, 0, len(c.items))
	for _, cur := range c.items {
		if ident.Same(any(cur), any(item)) {
			continue
		}
		next = append(next, cur)
	}
	c.replace(next)
	c.events.Emit(Event[T]{Type: EventRemove, Item: item})
}

// Commit finalizes the current state. With a transaction active it
// delegates to CommitTransaction; otherwise it clears the snapshot history
// and emits a tokenless commit event.
func (c *Collection[T]) Commit() {
	if c.tx != nil {
		// Cannot fail: a transaction is active and therefore enabled.
		_, _ = c.CommitTransaction()
		return
	}
	c.history = nil
	c.logDebug("collection: committed", "items", len(c.items))
	c.events.Emit(Event[T]{Type: EventCommit, State: c.Items()})
}

// Rollback pops the most recent snapshot and restores it: the sequence is
// replaced with the captured references and every snapshot-capable item's
// internal state is rewound silently. With an empty history it is a true
// no-op and emits nothing.
func (c *Collection[T]) Rollback() {
	if len(c.history) == 0 {
		return
	}
	snap := c.history[len(c.history)-1]
	c.history = c.history[:len(c.history)-1]
	c.replace(snap.restore())
	c.logDebug("collection: rolled back", "token", snap.token.String())
	c.events.Emit(Event[T]{Type: EventRollback, State: c.Items()})
}

// BeginTransaction opens a transaction, capturing the current state as its
// anchor, and returns the transaction token. It fails when transactions are
// disabled or one is already active.
func (c *Collection[T]) BeginTransaction() (Token, error) {
	if !c.cfg.transactions {
		return Token{}, ErrTransactionsDisabled
	}
	if c.tx != nil {
		return Token{}, ErrTransactionActive
	}
	token := newToken()
	c.tx = &transaction[T]{token: token, anchor: capture(c.items, token)}
	c.logDebug("collection: transaction begun", "token", token.String())
	return token, nil
}

// CommitTransaction closes the active transaction. With snapshots enabled
// the final state is appended to history under the transaction's token. The
// commit event carries both state and token.
func (c *Collection[T]) CommitTransaction() (Token, error) {
	if !c.cfg.transactions {
		return Token{}, ErrTransactionsDisabled
	}
	if c.tx == nil {
		return Token{}, ErrNoActiveTransaction
	}
	token := c.tx.token
	c.tx = nil
	if c.cfg.snapshots {
		c.pushSnapshot(token)
	}
	c.logDebug("collection: transaction committed", "token", token.String())
	c.events.Emit(Event[T]{Type: EventCommit, State: c.Items(), Token: &token})
	return token, nil
}

// RollbackTransaction closes the active transaction and restores the state
// captured at BeginTransaction, entity-internal state included.
func (c *Collection[T]) RollbackTransaction() error {
	if !c.cfg.transactions {
		return ErrTransactionsDisabled
	}
	if c.tx == nil {
		return ErrNoActiveTransaction
	}
	anchor := c.tx.anchor
	c.tx = nil
	c.replace(anchor.restore())
	c.logDebug("collection: transaction rolled back", "token", anchor.token.String())
	c.events.Emit(Event[T]{Type: EventRollback, State: c.Items()})
	return nil
}

// maybeSnapshot captures the pre-mutation state when snapshots are enabled
// and no transaction is active.
func (c *Collection[T]) maybeSnapshot() {
	if !c.cfg.snapshots || c.tx != nil {
		return
	}
	c.pushSnapshot(newToken())
}

// pushSnapshot appends a snapshot of the current state, evicting the oldest
// entries beyond the configured limit.
func (c *Collection[T]) pushSnapshot(token Token) {
	c.history = append(c.history, capture(c.items, token))
	if limit := c.cfg.snapshotLimit; limit > 0 && len(c.history) > limit {
		overflow := len(c.history) - limit
		c.history = append([]*snapshot[T](nil), c.history[overflow:]...)
	}
	c.logDebug("collection: snapshot captured", "token", token.String(), "history", len(c.history))
}

// replace swaps the sequence and performs full resubscription: every
// forwarding subscription is cancelled, then the resulting sequence's
// observable members are subscribed fresh. This keeps duplicate or stale
// forwarding from surviving a structural replace.
func (c *Collection[T]) replace(items []T) {
	c.unsubscribeAll()
	c.items = items
	c.subscribeAll()
}

func (c *Collection[T]) subscribeAll() {
	for _, item := range c.items {
		c.subscribeItem(item)
	}
}

func (c *Collection[T]) unsubscribeAll() {
	for _, is := range c.subs {
		is.lifecycle.Cancel()
		is.property.Cancel()
	}
	c.subs = nil
}

// subscribeItem wires a member entity into the collection: property events
// are forwarded onto the collection stream, and the entity's Updating
// lifecycle event triggers the implicit pre-write snapshot.
func (c *Collection[T]) subscribeItem(item T) {
	obs, ok := any(item).(entity.Observable)
	if !ok {
		return
	}
	is := &itemSubscription{}
	is.lifecycle = obs.EntityObservable().Subscribe(func(ev entity.LifecycleEvent) {
		if ev.Type != entity.Updating {
			return
		}
		// Updating is emitted before the field write lands, so this
		// snapshot captures the pre-write state.
		c.maybeSnapshot()
	})
	is.property = obs.PropertyObservable().Subscribe(func(ev entity.PropertyEvent) {
		change := ev.Change
		c.events.Emit(Event[T]{Type: EventType(ev.Type), Item: item, Change: &change})
	})
	c.subs = append(c.subs, is)
}
