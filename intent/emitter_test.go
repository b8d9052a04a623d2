package intent

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
)

type recorder struct {
	sent []any
	fail bool
}

func (r *recorder) SendMessage(msg any) error {
	if r.fail {
		return errors.New("not connected")
	}
	r.sent = append(r.sent, msg)
	return nil
}

func TestMovementIsEdgeTriggered(t *testing.T) {
	rec := &recorder{}
	e := NewEmitter(rec)

	for i := 0; i < 10; i++ {
		e.Update(1, 0, false, false)
	}
	if len(rec.sent) != 1 {
		t.Fatalf("sent %d messages for an unchanged intent, want 1", len(rec.sent))
	}
	if got := rec.sent[0].(messages.MoveIntent); got.DX != 1 || got.DY != 0 {
		t.Errorf("sent %+v", got)
	}

	e.Update(1, 0, true, false)
	if len(rec.sent) != 2 {
		t.Errorf("blocking change was not sent")
	}
}

func TestInitialIdleSendsNothing(t *testing.T) {
	rec := &recorder{}
	e := NewEmitter(rec)
	e.Update(0, 0, false, false)
	if len(rec.sent) != 0 {
		t.Errorf("idle input should not emit, sent %v", rec.sent)
	}
}

func TestSuppressionForcesZeroResend(t *testing.T) {
	rec := &recorder{}
	e := NewEmitter(rec)

	e.Update(0, -1, true, false)
	// Chat opens while the key is still held.
	e.Update(0, -1, true, true)
	if len(rec.sent) != 2 {
		t.Fatalf("sent %d, want 2", len(rec.sent))
	}
	got := rec.sent[1].(messages.MoveIntent)
	if got.DX != 0 || got.DY != 0 || !got.Blocking {
		t.Errorf("suppressed intent = %+v, want {0 0 true}", got)
	}

	e.Update(0, -1, true, true)
	if len(rec.sent) != 2 {
		t.Error("suppressed zero intent was re-sent")
	}
}

func TestFailedSendRetriesNextFrame(t *testing.T) {
	rec := &recorder{fail: true}
	e := NewEmitter(rec)

	if e.Update(1, 1, false, false) {
		t.Fatal("Update reported success on a failed send")
	}
	if e.Last() != (Movement{}) {
		t.Errorf("failed send was recorded as last: %+v", e.Last())
	}

	rec.fail = false
	if !e.Update(1, 1, false, false) {
		t.Error("intent not retried after the connection recovered")
	}
}

func TestOneShots(t *testing.T) {
	rec := &recorder{}
	e := NewEmitter(rec)

	e.Attack(1.5)
	e.Skill(2, 0.5)
	e.Dash(3)
	e.Potion()
	e.Equip(4)
	e.Unequip(netconfig.SlotRing)
	e.Drop(1)
	e.Use(2)
	e.AllocateStat(netconfig.StatAgility)
	e.Craft(9)
	e.Socket(1, 2)
	e.Buy("sword")

	want := []any{
		messages.AttackAction{Angle: 1.5},
		messages.SkillAction{Index: 2, Angle: 0.5},
		messages.DashAction{Angle: 3},
		messages.PotionAction{},
		messages.EquipItem{Index: 4},
		messages.UnequipItem{Slot: netconfig.SlotRing},
		messages.DropItem{Index: 1},
		messages.UseItem{Index: 2},
		messages.AllocateStat{Stat: netconfig.StatAgility},
		messages.CraftItem{RecipeID: 9},
		messages.SocketGem{ItemIndex: 1, GemIndex: 2},
		messages.ShopBuy{ItemID: "sword"},
	}
	if len(rec.sent) != len(want) {
		t.Fatalf("sent %d messages, want %d", len(rec.sent), len(want))
	}
	for i := range want {
		if rec.sent[i] != want[i] {
			t.Errorf("message %d = %#v, want %#v", i, rec.sent[i], want[i])
		}
	}
}

func TestChatIsCappedAndTrimmed(t *testing.T) {
	rec := &recorder{}
	e := NewEmitter(rec)

	if e.Chat("   ") {
		t.Error("blank chat should not be sent")
	}

	long := strings.Repeat("é", netconfig.ChatMaxRunes+50)
	if !e.Chat("  " + long) {
		t.Fatal("chat not sent")
	}
	got := rec.sent[0].(messages.ChatSend).Text
	if n := utf8.RuneCountInString(got); n != netconfig.ChatMaxRunes {
		t.Errorf("chat length = %d runes, want %d", n, netconfig.ChatMaxRunes)
	}
	if !utf8.ValidString(got) {
		t.Error("capping split a rune")
	}
}
