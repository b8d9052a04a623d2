package systems

import (
	"strings"
	"testing"
	"time"

	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/controls"
	"github.com/automoto/emberveil/feedback"
	"github.com/automoto/emberveil/intent"
	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/automoto/emberveil/systems/factory"
	"github.com/automoto/emberveil/uistate"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeConn struct {
	sent      []any
	snapshots []messages.SnapshotUpdate
	events    []messages.Inbound
}

func (f *fakeConn) SendMessage(msg any) error {
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeConn) DrainSnapshots() []messages.SnapshotUpdate {
	out := f.snapshots
	f.snapshots = nil
	return out
}

func (f *fakeConn) DrainEvents() []messages.Inbound {
	out := f.events
	f.events = nil
	return out
}

func newTestSession(t *testing.T) (*ecs.ECS, *components.SessionData, *fakeConn) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateCamera(e)
	conn := &fakeConn{}
	s := factory.CreateSession(e, conn, nil)
	return e, s, conn
}

func count[T any](e *ecs.ECS, c *donburi.ComponentType[T]) int {
	n := 0
	c.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

var testInventory = []messages.Item{
	{ID: 1, Name: "iron sword", Kind: netconfig.ItemGear},
	{ID: 2, Name: "red potion", Kind: netconfig.ItemConsumable, Quantity: 3},
	{ID: 3, Name: "wolf pelt", Kind: netconfig.ItemMaterial},
}

func TestAppendDraft(t *testing.T) {
	got := appendDraft([]rune("hi"), []rune{' ', 't', '\n', 'h', '\x7f', 'e', 'r', 'e'})
	if string(got) != "hi there" {
		t.Errorf("draft = %q", string(got))
	}

	full := []rune(strings.Repeat("a", netconfig.ChatMaxRunes))
	if got := appendDraft(full, []rune("bc")); len(got) != netconfig.ChatMaxRunes {
		t.Errorf("draft grew past the limit: %d runes", len(got))
	}
}

func TestBeltCommand(t *testing.T) {
	tests := []struct {
		name string
		slot int
		want uistate.Command
	}{
		{"gear equips", 0, uistate.Command{Kind: uistate.CmdEquip, Index: 0}},
		{"consumable is used", 1, uistate.Command{Kind: uistate.CmdUse, Index: 1}},
		{"material does nothing", 2, uistate.Command{}},
		{"empty slot", 5, uistate.Command{}},
		{"outside the belt", BeltSlots, uistate.Command{}},
		{"negative", -1, uistate.Command{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := beltCommand(testInventory, tt.slot); got != tt.want {
				t.Errorf("beltCommand(%d) = %+v, want %+v", tt.slot, got, tt.want)
			}
		})
	}
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		cmd  uistate.Command
		want any
	}{
		{uistate.Command{Kind: uistate.CmdUnequip, Slot: netconfig.EquipSlot(2)}, messages.UnequipItem{Slot: 2}},
		{uistate.Command{Kind: uistate.CmdAllocateStat, Stat: netconfig.StatKind(1)}, messages.AllocateStat{Stat: 1}},
		{uistate.Command{Kind: uistate.CmdEquip, Index: 4}, messages.EquipItem{Index: 4}},
		{uistate.Command{Kind: uistate.CmdUse, Index: 1}, messages.UseItem{Index: 1}},
		{uistate.Command{Kind: uistate.CmdDrop, Index: 3}, messages.DropItem{Index: 3}},
		{uistate.Command{Kind: uistate.CmdBuy, ItemID: "potion"}, messages.ShopBuy{ItemID: "potion"}},
		{uistate.Command{Kind: uistate.CmdCraft, RecipeID: 9}, messages.CraftItem{RecipeID: 9}},
	}
	for _, tt := range tests {
		conn := &fakeConn{}
		if !dispatch(intent.NewEmitter(conn), tt.cmd) {
			t.Errorf("dispatch(%+v) reported nothing sent", tt.cmd)
			continue
		}
		if len(conn.sent) != 1 || conn.sent[0] != tt.want {
			t.Errorf("dispatch(%+v) sent %v, want %v", tt.cmd, conn.sent, tt.want)
		}
	}

	conn := &fakeConn{}
	if dispatch(intent.NewEmitter(conn), uistate.Command{}) || len(conn.sent) != 0 {
		t.Error("empty command should send nothing")
	}
}

func TestSoundForCue(t *testing.T) {
	if SoundForCue(feedback.CueHit) != cfg.SoundHit {
		t.Error("hit cue")
	}
	if SoundForCue(feedback.CueShop) != cfg.SoundShopOpen {
		t.Error("shop cue")
	}
	if SoundForCue(feedback.CueNone) != cfg.SoundNone {
		t.Error("no cue should be silent")
	}
}

func TestUpdateNetwork(t *testing.T) {
	e, s, conn := newTestSession(t)
	s.UI.Open(uistate.PanelInventory)
	s.UI.Focus(2, uistate.Counts{Inventory: 3})

	conn.snapshots = []messages.SnapshotUpdate{
		{Tick: 1, Fields: messages.FieldCharacter, Character: messages.Character{EntityID: 1, Inventory: testInventory}},
		{Tick: 2, Fields: messages.FieldCharacter, Character: messages.Character{EntityID: 1, Inventory: testInventory[:1]}},
	}
	conn.events = []messages.Inbound{
		messages.FloatingTextEvent{Kind: netconfig.TextCrit, Value: "CRIT! 42", X: 10, Y: 10},
		messages.VisualEffectEvent{Kind: netconfig.EffectMeleeSwing},
	}

	UpdateNetwork(e)

	if s.Store.Merges() != 2 {
		t.Errorf("merges = %d", s.Store.Merges())
	}
	if c := s.UI.Cursor(); c.Index != 0 {
		t.Errorf("cursor not clamped after the inventory shrank: %+v", c)
	}
	if !s.HUDDirty {
		t.Error("merge should mark the HUD dirty")
	}
	if n := count(e, components.FloatingText); n != 1 {
		t.Errorf("floating texts = %d", n)
	}
	if n := count(e, components.Effect); n != 1 {
		t.Errorf("effects = %d", n)
	}
	cam, _ := components.Camera.First(e.World)
	if !cam.HasComponent(components.ScreenShake) {
		t.Error("crit should shake the camera")
	}
	pending := GetOrCreateAudio(e).PendingSFX
	if len(pending) != 2 || pending[0] != cfg.SoundHit || pending[1] != cfg.SoundSwing {
		t.Errorf("pending sounds = %v", pending)
	}
}

func TestShopOpenEvent(t *testing.T) {
	e, s, conn := newTestSession(t)
	conn.events = []messages.Inbound{messages.ShopOpenEvent{
		Merchant: "Oren",
		Items:    []messages.ShopItem{{ID: "potion", Price: 10}, {ID: "torch", Price: 4}},
	}}

	UpdateNetwork(e)

	if !s.UI.IsOpen(uistate.PanelShop) {
		t.Fatalf("panel = %v, want shop", s.UI.Panel())
	}
	if len(s.Store.Snapshot().Shop) != 2 {
		t.Errorf("shop stock = %v", s.Store.Snapshot().Shop)
	}
	if c := s.UI.Cursor(); c.Area != uistate.AreaShop || c.Index != 0 {
		t.Errorf("cursor = %+v", c)
	}
}

func TestActivateSlot(t *testing.T) {
	e, s, conn := newTestSession(t)
	s.Store.Merge(messages.SnapshotUpdate{
		Fields:    messages.FieldCharacter,
		Character: messages.Character{Inventory: testInventory},
	}, time.Now())

	ActivateSlot(e, uistate.AreaInventory, 1)
	if len(conn.sent) != 0 {
		t.Fatalf("click with the inventory closed sent %v", conn.sent)
	}

	s.UI.Open(uistate.PanelInventory)
	ActivateSlot(e, uistate.AreaInventory, 1)
	if len(conn.sent) != 1 || conn.sent[0] != (messages.UseItem{Index: 1}) {
		t.Errorf("sent = %v", conn.sent)
	}
	if s.UI.Cursor().Index != 1 {
		t.Errorf("cursor = %+v", s.UI.Cursor())
	}
}

func TestEnterConfirmsWhilePanelOpen(t *testing.T) {
	e, s, conn := newTestSession(t)
	s.Store.Merge(messages.SnapshotUpdate{
		Fields:    messages.FieldCharacter,
		Character: messages.Character{Inventory: testInventory},
	}, time.Now())
	input := getOrCreateInput(e)
	pressEnter := func() {
		input.State.Pressed = [controls.ActionCount]bool{}
		input.State.Pressed[controls.ActionChat] = true
		input.State.Pressed[controls.ActionConfirm] = true
	}

	s.UI.Open(uistate.PanelInventory)
	s.UI.Focus(1, panelView(s.Store.Snapshot()).Counts())
	pressEnter()
	UpdateUI(e)
	if s.UI.ChatOpen() {
		t.Error("enter opened chat over the inventory")
	}
	if len(conn.sent) != 1 || conn.sent[0] != (messages.UseItem{Index: 1}) {
		t.Errorf("sent = %v, want the potion used", conn.sent)
	}

	s.UI.CloseAll()
	conn.sent = nil
	pressEnter()
	UpdateUI(e)
	if !s.UI.ChatOpen() {
		t.Error("enter with no panel open should open chat")
	}
	if len(conn.sent) != 0 {
		t.Errorf("sent = %v with no panel open", conn.sent)
	}
}

func TestUpdateHUDRebuildsOnUIChange(t *testing.T) {
	e, s, _ := newTestSession(t)
	UpdateHUD(e)
	rev := s.HUDRevision

	UpdateHUD(e)
	if s.HUDRevision != rev {
		t.Error("rebuilt without a change")
	}

	s.UI.Toggle(uistate.PanelCharacter)
	UpdateHUD(e)
	if s.HUDRevision != rev+1 || s.HUD.Panel != uistate.PanelCharacter {
		t.Errorf("revision %d panel %v after opening the character panel", s.HUDRevision, s.HUD.Panel)
	}
}

func TestAdjustVolumeStep(t *testing.T) {
	if got := adjustVolumeStep(0.5, 1); got != 0.75 {
		t.Errorf("up = %v", got)
	}
	if got := adjustVolumeStep(1, 1); got != 1 {
		t.Errorf("clamped top = %v", got)
	}
	if got := adjustVolumeStep(0, -1); got != 0 {
		t.Errorf("clamped bottom = %v", got)
	}
	if got := formatVolumeBar(0.5); got != "[|||||.....] 50%" {
		t.Errorf("bar = %q", got)
	}
}

func TestDecodeSettings(t *testing.T) {
	s, err := decodeSettings([]byte(`{"musicVolume":0.3,"resolutionIndex":9,"lastName":"ria"}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.MusicVolume != 0.25 {
		t.Errorf("music volume not snapped: %v", s.MusicVolume)
	}
	if s.SFXVolume != cfg.SnapVolume(cfg.Audio.DefaultSFXVol) {
		t.Errorf("missing sfx volume should default, got %v", s.SFXVolume)
	}
	if s.ResolutionIndex != cfg.Settings.DefaultResolutionIndex {
		t.Errorf("resolution index = %d", s.ResolutionIndex)
	}
	if s.LastName != "ria" {
		t.Errorf("last name = %q", s.LastName)
	}

	if _, err := decodeSettings([]byte(`{`)); err == nil {
		t.Error("expected a parse error")
	}
}

func TestInitials(t *testing.T) {
	for in, want := range map[string]string{
		"Iron Sword":      "IS",
		"Potion":          "P",
		"Big Red Potion":  "BR",
		"":                "",
		"  leading space": "ls",
	} {
		if got := initials(in); got != want {
			t.Errorf("initials(%q) = %q, want %q", in, got, want)
		}
	}
}
