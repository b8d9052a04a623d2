package core

import (
	"testing"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/yohamta/donburi"
)

type fakePeer struct {
	sent []any
}

func (f *fakePeer) SendMessage(msg any) error {
	f.sent = append(f.sent, msg)
	return nil
}

func lastOf[T any](f *fakePeer) (T, bool) {
	for i := len(f.sent) - 1; i >= 0; i-- {
		if m, ok := f.sent[i].(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func countOf[T any](f *fakePeer) int {
	n := 0
	for _, m := range f.sent {
		if _, ok := m.(T); ok {
			n++
		}
	}
	return n
}

// join logs p in under account and creates a character, delivering every
// queued message.
func join(s *Server, p *fakePeer, account string) *session {
	s.locked(func() {
		s.login(p, messages.LoginRequest{Account: account})
		s.createCharacter(p, account, "warrior")
	})
	return s.sessions[p]
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		req        messages.LoginRequest
		wantReject bool
	}{
		{"any version", "", messages.LoginRequest{Version: "0.0.1", Account: "ria"}, false},
		{"matching version", "1.0", messages.LoginRequest{Version: "1.0", Account: "ria"}, false},
		{"version mismatch", "1.0", messages.LoginRequest{Version: "0.9", Account: "ria"}, true},
		{"blank account", "", messages.LoginRequest{Account: "  "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(20, "test", tt.version, 6)
			p := &fakePeer{}
			s.locked(func() { s.login(p, tt.req) })

			_, rejected := lastOf[messages.LoginRejected](p)
			if rejected != tt.wantReject {
				t.Fatalf("rejected = %v, want %v (sent %v)", rejected, tt.wantReject, p.sent)
			}
			if tt.wantReject {
				if len(s.sessions) != 0 {
					t.Error("rejected login left a session behind")
				}
				return
			}
			if _, ok := lastOf[messages.Welcome](p); !ok {
				t.Error("no welcome sent")
			}
			list, ok := lastOf[messages.CharacterList](p)
			if !ok || list.Account != "ria" || len(list.Characters) != 0 {
				t.Errorf("character list = %+v", list)
			}
		})
	}
}

func TestDuplicateAccountRejected(t *testing.T) {
	s := NewServer(20, "test", "", 6)
	join(s, &fakePeer{}, "ria")

	second := &fakePeer{}
	s.locked(func() { s.login(second, messages.LoginRequest{Account: "ria"}) })
	if _, ok := lastOf[messages.LoginRejected](second); !ok {
		t.Error("second login on the same account should be rejected")
	}
}

func TestCharacterSurvivesRelogin(t *testing.T) {
	s := NewServer(20, "test", "", 6)
	p := &fakePeer{}
	join(s, p, "ria")
	s.locked(func() { s.leave(p) })

	again := &fakePeer{}
	s.locked(func() { s.login(again, messages.LoginRequest{Account: "ria"}) })
	list, _ := lastOf[messages.CharacterList](again)
	if len(list.Characters) != 1 || list.Characters[0].Class != "warrior" {
		t.Fatalf("characters = %+v", list.Characters)
	}

	s.locked(func() { s.selectCharacter(again, list.Characters[0].ID) })
	if !s.sessions[again].inWorld {
		t.Error("select did not enter the world")
	}
}

func TestFirstSnapshotIsComplete(t *testing.T) {
	s := NewServer(20, "test", "", 6)
	p := &fakePeer{}
	sess := join(s, p, "ria")

	s.locked(s.step)
	first, ok := lastOf[messages.SnapshotUpdate](p)
	if !ok {
		t.Fatal("no snapshot after a tick")
	}
	for _, f := range []messages.Field{messages.FieldCharacter, messages.FieldTiles, messages.FieldExplored, messages.FieldChat, messages.FieldShop} {
		if !first.Has(f) {
			t.Errorf("first snapshot missing field %b", f)
		}
	}
	if first.Tiles.Width != len(areaLayout[0]) {
		t.Errorf("tiles width = %d", first.Tiles.Width)
	}
	if first.Character.EntityID != sess.body().ID {
		t.Error("character does not point at the player entity")
	}
	found := false
	for _, e := range first.Entities {
		if e.ID == first.Character.EntityID && e.Kind == netconfig.EntityPlayer {
			found = true
		}
	}
	if !found {
		t.Error("player entity missing from snapshot")
	}

	s.locked(s.step)
	second, _ := lastOf[messages.SnapshotUpdate](p)
	if second.Has(messages.FieldTiles) || second.Has(messages.FieldChat) {
		t.Errorf("terrain or chat resent without a change: %b", second.Fields)
	}
	if !second.Has(messages.FieldEntities) {
		t.Error("entities should go out every tick")
	}
}

func TestChatRelay(t *testing.T) {
	s := NewServer(20, "test", "", 6)
	a, b := &fakePeer{}, &fakePeer{}
	sa := join(s, a, "ria")
	join(s, b, "tam")
	s.locked(s.step)

	s.locked(func() { s.say(sa, "  hello  ") })
	if n := countOf[messages.ChatNotifyEvent](b); n != 1 {
		t.Errorf("listener got %d notifications, want 1", n)
	}
	if n := countOf[messages.ChatNotifyEvent](a); n != 0 {
		t.Error("speaker notified about their own line")
	}

	s.locked(s.step)
	snap, _ := lastOf[messages.SnapshotUpdate](b)
	if !snap.Has(messages.FieldChat) {
		t.Fatal("chat not resent after a new line")
	}
	last := snap.Chat[len(snap.Chat)-1]
	if last.From != "ria" || last.Text != "hello" {
		t.Errorf("last line = %+v", last)
	}
}

func TestAttackKillsMob(t *testing.T) {
	s := NewServer(20, "test", "", 6)
	p := &fakePeer{}
	sess := join(s, p, "ria")
	player := sess.body()

	var mob *donburi.Entry
	Wander.Each(s.world, func(e *donburi.Entry) {
		if mob == nil {
			mob = e
		}
	})
	s.teleportBody(mob.Entity(), player.X+30, player.Y)
	Body.Get(mob).HP = 1
	level := Wander.Get(mob).Level

	s.locked(func() { s.attack(sess, 0) })

	if !Body.Get(mob).Dead {
		t.Fatal("mob in front of the player survived")
	}
	if got := sess.char.sheet.Gold; got != startingGold+5*level {
		t.Errorf("gold = %d", got)
	}
	if countOf[messages.VisualEffectEvent](p) != 1 {
		t.Error("swing effect not sent")
	}
	gold := false
	for _, m := range p.sent {
		if ft, ok := m.(messages.FloatingTextEvent); ok && ft.Kind == netconfig.TextGold {
			gold = true
		}
	}
	if !gold {
		t.Error("no gold text for the kill")
	}

	// cooldown swallows an immediate second swing
	s.locked(func() { s.attack(sess, 0) })
	if countOf[messages.VisualEffectEvent](p) != 1 {
		t.Error("attack ignored its cooldown")
	}
}

func TestMoveStopsAtWall(t *testing.T) {
	s := NewServer(20, "test", "", 6)
	sess := join(s, &fakePeer{}, "ria")

	s.moveBody(sess.entity, -500, 0)
	if x := sess.body().X; x < netconfig.TileSize+bodySize/2-0.01 {
		t.Errorf("player walked into the wall: x = %v", x)
	}
}

func TestShopOpensNearMerchant(t *testing.T) {
	s := NewServer(20, "test", "", 6)
	p := &fakePeer{}
	sess := join(s, p, "ria")

	s.teleportBody(sess.entity, s.area.Merchant[0]+10, s.area.Merchant[1])
	s.locked(s.step)
	s.locked(s.step)
	if n := countOf[messages.ShopOpenEvent](p); n != 1 {
		t.Errorf("shop opened %d times, want once per approach", n)
	}

	s.locked(func() { s.shopBuy(sess, "potion") })
	if sess.char.sheet.Gold != startingGold-10 {
		t.Errorf("gold after buying = %d", sess.char.sheet.Gold)
	}
}

func TestEmberBoltTravels(t *testing.T) {
	s := NewServer(20, "test", "", 6)
	sess := join(s, &fakePeer{}, "ria")

	s.locked(func() { s.skill(sess, 2, 0) })
	if len(s.projectiles) != 1 {
		t.Fatalf("projectiles = %d", len(s.projectiles))
	}
	x := s.projectiles[0].x
	s.updateProjectiles()
	if len(s.projectiles) == 1 && s.projectiles[0].x <= x {
		t.Error("bolt did not move")
	}
	if sess.char.sheet.MP != sess.char.sheet.MaxMP-skillManaCost {
		t.Errorf("mp = %d", sess.char.sheet.MP)
	}
}
