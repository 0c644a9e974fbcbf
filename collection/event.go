package collection

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/arkover/tracked/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventType tags a collection event. Structural and snapshot events use the
// constants below; forwarded entity events carry the entity-side event name
// (in practice "updated").
type EventType string

const (
	// EventAdd fires after an item is appended.
	EventAdd EventType = "add"

	// EventRemove fires after matching items are removed.
	EventRemove EventType = "remove"

	// EventCommit fires on Commit and CommitTransaction.
	EventCommit EventType = "commit"

	// EventRollback fires on Rollback and RollbackTransaction.
	EventRollback EventType = "rollback"
)

// Event is the discriminated union emitted on a collection's stream. Which
// fields are set depends on Type:
//
//   - add, remove: Item
//   - commit: State, plus Token when the commit closed a transaction
//   - rollback: State
//   - forwarded entity events: Item and Change
type Event[T any] struct {
	Type   EventType
	Item   T
	State  []T
	Token  *Token
	Change *entity.Change
}

// MarshalJSON encodes the event in its wire shape: a "type" tag and a
// tag-dependent "payload".
func (e Event[T]) MarshalJSON() ([]byte, error) {
	out := map[string]any{"type": string(e.Type)}
	switch e.Type {
	case EventAdd, EventRemove:
		out["payload"] = e.Item
	case EventCommit:
		payload := map[string]any{"state": e.State}
		if e.Token != nil {
			payload["token"] = e.Token.String()
		}
		out["payload"] = payload
	case EventRollback:
		out["payload"] = map[string]any{"state": e.State}
	default:
		out["payload"] = map[string]any{"item": e.Item, "change": e.Change}
	}
	return json.Marshal(out)
}
