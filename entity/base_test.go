package entity

import (
	"testing"
)

// customer is the test entity used throughout the package tests.
type customer struct {
	*Base
}

func newCustomer(opts ...Option) *customer {
	return &customer{Base: NewBase(opts...)}
}

func TestSet_EmitsLifecycleAndPropertyEvents(t *testing.T) {
	c := newCustomer()

	var lifecycle []LifecycleEvent
	var property []PropertyEvent
	c.SubscribeEntityEvents(func(ev LifecycleEvent) { lifecycle = append(lifecycle, ev) })
	c.SubscribePropertyEvents(func(ev PropertyEvent) { property = append(property, ev) })

	c.Set("foo", "a")

	if len(lifecycle) != 2 {
		t.Fatalf("lifecycle stream got %d events, want 2", len(lifecycle))
	}
	if lifecycle[0].Type != Updating || lifecycle[1].Type != Updated {
		t.Errorf("lifecycle sequence = [%s, %s], want [updating, updated]",
			lifecycle[0].Type, lifecycle[1].Type)
	}
	if len(property) != 1 {
		t.Fatalf("property stream got %d events, want 1", len(property))
	}
	if property[0].Type != Updated {
		t.Errorf("property event type = %s, want updated", property[0].Type)
	}

	for i, change := range []*Change{lifecycle[0].Change, lifecycle[1].Change, &property[0].Change} {
		if change == nil {
			t.Fatalf("change payload %d is nil", i)
		}
		if change.Property != "foo" {
			t.Errorf("change %d property = %q, want foo", i, change.Property)
		}
		if change.OldValue != nil {
			t.Errorf("change %d old value = %v, want nil", i, change.OldValue)
		}
		if change.NewValue != "a" {
			t.Errorf("change %d new value = %v, want a", i, change.NewValue)
		}
	}
}

func TestSet_UpdatingEmittedBeforeWrite(t *testing.T) {
	c := newCustomer()
	c.Set("foo", "a")

	var seenDuringUpdating any
	c.SubscribeEntityEvents(func(ev LifecycleEvent) {
		if ev.Type == Updating {
			seenDuringUpdating, _ = c.Get("foo")
		}
	})

	c.Set("foo", "b")
	if seenDuringUpdating != "a" {
		t.Errorf("value during Updating = %v, want pre-write value a", seenDuringUpdating)
	}
}

func TestSet_SameValueIsSilent(t *testing.T) {
	c := newCustomer()
	c.Set("foo", "a")

	var events int
	c.SubscribeEntityEvents(func(LifecycleEvent) { events++ })
	c.SubscribePropertyEvents(func(PropertyEvent) { events++ })

	c.Set("foo", "a")
	if events != 0 {
		t.Errorf("identical write emitted %d events, want 0", events)
	}
	if v, _ := c.Get("foo"); v != "a" {
		t.Errorf("value after silent write = %v, want a", v)
	}
}

func TestSet_IdentityNotDeepEquality(t *testing.T) {
	c := newCustomer()
	first := []string{"x"}
	c.Set("tags", first)

	var events int
	c.SubscribePropertyEvents(func(PropertyEvent) { events++ })

	// Structurally equal but a distinct slice: must emit.
	c.Set("tags", []string{"x"})
	if events != 1 {
		t.Errorf("structurally-equal distinct slice emitted %d events, want 1", events)
	}

	// The exact same reference: silent.
	current, _ := c.Get("tags")
	c.Set("tags", current)
	if events != 1 {
		t.Errorf("same-reference write emitted events (total %d, want 1)", events)
	}
}

func TestSet_ReservedFieldsBypassTracking(t *testing.T) {
	c := newCustomer()

	var events int
	c.SubscribeEntityEvents(func(LifecycleEvent) { events++ })
	c.SubscribePropertyEvents(func(PropertyEvent) { events++ })

	c.Set("_internal", 42)
	if events != 0 {
		t.Errorf("reserved write emitted %d events, want 0", events)
	}
	if v, ok := c.Get("_internal"); !ok || v != 42 {
		t.Errorf("reserved field = %v, %v; want 42, true", v, ok)
	}
	for _, name := range c.Fields() {
		if name == "_internal" {
			t.Error("Fields() listed a reserved name")
		}
	}
}

func TestLifecycleTriggers(t *testing.T) {
	c := newCustomer()

	var got []EventType
	c.SubscribeEntityEvents(func(ev LifecycleEvent) {
		if ev.Change != nil {
			t.Errorf("trigger event %s carried a change payload", ev.Type)
		}
		got = append(got, ev.Type)
	})

	c.Creating()
	c.Created()
	c.Updating()
	c.Updated()
	c.Deleting()
	c.Deleted()
	c.Restoring()
	c.Restored()

	want := []EventType{Creating, Created, Updating, Updated, Deleting, Deleted, Restoring, Restored}
	if len(got) != len(want) {
		t.Fatalf("got %d trigger events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trigger[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestFields_SortedAndNonReserved(t *testing.T) {
	c := newCustomer()
	c.Set("zebra", 1)
	c.Set("alpha", 2)
	c.Set("_hidden", 3)

	fields := c.Fields()
	if len(fields) != 2 || fields[0] != "alpha" || fields[1] != "zebra" {
		t.Errorf("Fields() = %v, want [alpha zebra]", fields)
	}
}

func TestWithID(t *testing.T) {
	c := newCustomer(WithID("c-1"))
	if c.ID() != "c-1" {
		t.Errorf("ID() = %q, want c-1", c.ID())
	}
}

func TestWithAutoID(t *testing.T) {
	a := newCustomer(WithAutoID())
	b := newCustomer(WithAutoID())
	if a.ID() == "" {
		t.Fatal("auto ID is empty")
	}
	if a.ID() == b.ID() {
		t.Error("two auto IDs collided")
	}
}

func TestWithField_DeclaresRules(t *testing.T) {
	c := newCustomer(
		WithField("email", "required,email"),
		WithField("name", "required"),
		WithField("nickname", ""),
	)

	rules := c.ValidationRules()
	if rules["email"] != "required,email" {
		t.Errorf("email rule = %q", rules["email"])
	}
	if rules["name"] != "required" {
		t.Errorf("name rule = %q", rules["name"])
	}
	if _, ok := rules["nickname"]; ok {
		t.Error("empty rule was recorded")
	}

	// Returned map is a copy.
	rules["email"] = "changed"
	if c.ValidationRules()["email"] != "required,email" {
		t.Error("mutating returned rules changed the entity")
	}
}
