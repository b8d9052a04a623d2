package network

import (
	"errors"
	"testing"

	"github.com/automoto/emberveil/shared/messages"
)

func TestSendBeforeConnect(t *testing.T) {
	c := NewClient(4, 4)
	if err := c.SendMessage(messages.PotionAction{}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("SendMessage = %v, want ErrNotConnected", err)
	}
}

func TestSnapshotBacklogIsCollapsed(t *testing.T) {
	c := NewClient(2, 4)
	c.pushSnapshot(messages.SnapshotUpdate{Tick: 1, Fields: messages.FieldCharacter, Character: messages.Character{Level: 2}})
	c.pushSnapshot(messages.SnapshotUpdate{Tick: 2, Fields: messages.FieldEntities, Entities: []messages.Entity{{ID: 7}}})
	c.pushSnapshot(messages.SnapshotUpdate{Tick: 3, Fields: messages.FieldChat, Chat: []messages.ChatLine{{Text: "hi"}}})

	got := c.DrainSnapshots()
	if len(got) != 1 {
		t.Fatalf("drained %d updates, want 1 collapsed update", len(got))
	}
	u := got[0]
	if u.Tick != 3 {
		t.Errorf("tick = %d", u.Tick)
	}
	if !u.Has(messages.FieldCharacter) || !u.Has(messages.FieldEntities) || !u.Has(messages.FieldChat) {
		t.Errorf("fields lost in collapse: %b", u.Fields)
	}
	if u.Character.Level != 2 || len(u.Entities) != 1 || len(u.Chat) != 1 {
		t.Errorf("collapsed update = %+v", u)
	}
}

func TestSnapshotsKeepOrder(t *testing.T) {
	c := NewClient(4, 4)
	c.pushSnapshot(messages.SnapshotUpdate{Tick: 1})
	c.pushSnapshot(messages.SnapshotUpdate{Tick: 2})
	got := c.DrainSnapshots()
	if len(got) != 2 || got[0].Tick != 1 || got[1].Tick != 2 {
		t.Errorf("drained = %+v", got)
	}
	if len(c.DrainSnapshots()) != 0 {
		t.Error("second drain should be empty")
	}
}

func TestEventsDropWhenFull(t *testing.T) {
	c := NewClient(1, 2)
	for range 5 {
		c.pushEvent(messages.FloatingTextEvent{Value: "+1"})
	}
	if got := len(c.DrainEvents()); got != 2 {
		t.Errorf("drained %d events, want 2", got)
	}
	if c.Dropped() != 3 {
		t.Errorf("dropped = %d, want 3", c.Dropped())
	}
}

func TestCharactersIsACopy(t *testing.T) {
	c := NewClient(1, 1)
	c.characters = []messages.CharacterSummary{{ID: 1, Name: "ria"}}
	list := c.Characters()
	list[0].Name = "changed"
	if c.characters[0].Name != "ria" {
		t.Error("Characters exposed internal state")
	}
}
