package uistate

import (
	"testing"
	"time"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
)

var t0 = time.Unix(1_000, 0)

// step returns successive timestamps far enough apart to pass the throttle.
func step(n int) time.Time {
	return t0.Add(time.Duration(n) * time.Second)
}

func TestInitialState(t *testing.T) {
	m := New()
	if m.Panel() != PanelNone || m.ChatOpen() {
		t.Errorf("initial panel = %v chat = %v", m.Panel(), m.ChatOpen())
	}
	if m.Cursor() != (Cursor{AreaNone, 0}) {
		t.Errorf("initial cursor = %+v", m.Cursor())
	}
	if m.MovementSuppressed() {
		t.Error("movement suppressed with nothing open")
	}
}

func TestPanelsAreMutuallyExclusive(t *testing.T) {
	m := New()
	m.Toggle(PanelInventory)
	if !m.IsOpen(PanelInventory) || m.Cursor() != (Cursor{AreaInventory, 0}) {
		t.Fatalf("inventory not open: %v %+v", m.Panel(), m.Cursor())
	}

	m.Toggle(PanelCharacter)
	if m.IsOpen(PanelInventory) || !m.IsOpen(PanelCharacter) {
		t.Error("opening character must close inventory")
	}
	if m.Cursor() != (Cursor{AreaEquipment, 0}) {
		t.Errorf("cursor not reset: %+v", m.Cursor())
	}

	m.Toggle(PanelCharacter)
	if m.Panel() != PanelNone || m.Cursor().Area != AreaNone {
		t.Error("toggling the open panel should close it")
	}
}

func TestOpeningResetsCursor(t *testing.T) {
	m := New()
	c := Counts{Inventory: 20}
	m.Open(PanelInventory)
	m.Navigate(Right, step(0), c)
	m.Navigate(Right, step(1), c)
	if m.Cursor().Index != 2 {
		t.Fatalf("index = %d", m.Cursor().Index)
	}
	m.Open(PanelShop)
	m.Open(PanelInventory)
	if m.Cursor() != (Cursor{AreaInventory, 0}) {
		t.Errorf("cursor = %+v, want inventory/0", m.Cursor())
	}
}

func TestChatSuppressesMovementAndEscapePriority(t *testing.T) {
	m := New()
	m.Open(PanelInventory)
	m.SetChat(true)
	if !m.MovementSuppressed() {
		t.Error("chat should suppress movement")
	}

	m.Escape()
	if m.ChatOpen() {
		t.Error("escape should close chat first")
	}
	if !m.IsOpen(PanelInventory) {
		t.Error("escape closed the panel while chat was open")
	}
	if !m.MovementSuppressed() {
		t.Error("open panel should still suppress movement")
	}

	m.Escape()
	if m.Panel() != PanelNone || m.Cursor() != (Cursor{}) {
		t.Errorf("escape should close everything: %v %+v", m.Panel(), m.Cursor())
	}
}

func TestNavigationIsThrottled(t *testing.T) {
	m := New()
	c := Counts{Inventory: 10}
	m.Open(PanelInventory)

	if !m.Navigate(Right, t0, c) {
		t.Fatal("first navigation should move")
	}
	if m.Navigate(Right, t0.Add(100*time.Millisecond), c) {
		t.Error("second navigation within 150ms moved the cursor")
	}
	if m.Cursor().Index != 1 {
		t.Errorf("index = %d, want 1", m.Cursor().Index)
	}
	if !m.Navigate(Right, t0.Add(300*time.Millisecond), c) {
		t.Error("navigation after the interval should move")
	}
}

func TestBlockedStepKeepsInterval(t *testing.T) {
	m := New()
	c := Counts{Inventory: 10}
	m.Open(PanelInventory)

	if m.Navigate(Left, t0, c) {
		t.Fatal("moved left off the grid")
	}
	if !m.Navigate(Right, t0.Add(10*time.Millisecond), c) {
		t.Error("a blocked step should not throttle the next one")
	}
	if m.Cursor().Index != 1 {
		t.Errorf("index = %d, want 1", m.Cursor().Index)
	}
}

func TestInventoryGrid(t *testing.T) {
	c := Counts{Inventory: 19} // rows of 8, 8, 3
	tests := []struct {
		name  string
		start int
		dir   Direction
		want  int
	}{
		{"right", 0, Right, 1},
		{"left at start", 0, Left, 0},
		{"down a row", 2, Down, 10},
		{"up a row", 10, Up, 2},
		{"up from top row", 3, Up, 3},
		{"down into partial row", 13, Down, 18},
		{"down from last row", 17, Down, 17},
		{"right at end", 18, Right, 18},
		{"right wraps into next row", 7, Right, 8},
	}
	for i, tt := range tests {
		m := New()
		m.Open(PanelInventory)
		m.Focus(tt.start, c)
		m.Navigate(tt.dir, step(i), c)
		if got := m.Cursor().Index; got != tt.want {
			t.Errorf("%s: %d -> %d, want %d", tt.name, tt.start, got, tt.want)
		}
	}
}

func TestEquipmentLayout(t *testing.T) {
	tests := []struct {
		start int
		dir   Direction
		want  int
	}{
		{0, Down, 5},
		{1, Down, 6},
		{2, Down, 7},
		{4, Down, 7},
		{5, Up, 0},
		{7, Up, 2},
		{4, Right, 5},
		{5, Left, 4},
		{7, Right, 7},
		{0, Left, 0},
		{6, Down, 6},
		{3, Up, 3},
	}
	for i, tt := range tests {
		m := New()
		m.Open(PanelCharacter)
		m.Focus(tt.start, Counts{})
		m.Navigate(tt.dir, step(i), Counts{})
		if got := m.Cursor().Index; got != tt.want {
			t.Errorf("equipment %d %v -> %d, want %d", tt.start, tt.dir, got, tt.want)
		}
	}
}

func TestCraftingList(t *testing.T) {
	m := New()
	c := Counts{Crafting: 2}
	m.Open(PanelCrafting)
	m.Navigate(Right, step(0), c)
	if m.Cursor().Index != 0 {
		t.Error("left/right should not move in the crafting list")
	}
	m.Navigate(Down, step(1), c)
	m.Navigate(Down, step(2), c)
	if m.Cursor().Index != 1 {
		t.Errorf("index = %d, want 1", m.Cursor().Index)
	}
}

func TestNavigationIgnoredWhileChatOpen(t *testing.T) {
	m := New()
	m.Open(PanelInventory)
	m.SetChat(true)
	if m.Navigate(Right, t0, Counts{Inventory: 5}) {
		t.Error("navigation should be ignored while typing")
	}
}

func TestClampAfterDrop(t *testing.T) {
	m := New()
	m.Open(PanelInventory)
	m.Focus(2, Counts{Inventory: 3})
	if m.Cursor().Index != 2 {
		t.Fatalf("index = %d", m.Cursor().Index)
	}

	m.Clamp(Counts{Inventory: 2})
	if m.Cursor().Index != 1 {
		t.Errorf("index = %d after shrinking to 2, want 1", m.Cursor().Index)
	}

	m.Focus(0, Counts{Inventory: 1})
	m.Clamp(Counts{Inventory: 0})
	if m.Cursor().Index != 0 {
		t.Errorf("index = %d after emptying, want 0", m.Cursor().Index)
	}
}

func TestConfirm(t *testing.T) {
	view := View{
		Inventory: []messages.Item{
			{ID: 1, Kind: netconfig.ItemGear},
			{ID: 2, Kind: netconfig.ItemConsumable},
			{ID: 3, Kind: netconfig.ItemMaterial},
		},
		StatPoints: 1,
		Shop:       []messages.ShopItem{{ID: "bow"}},
		Recipes:    []messages.Recipe{{ID: 4, Craftable: true}, {ID: 5}},
	}
	view.Equipment[netconfig.SlotHelm] = messages.Item{ID: 9}

	tests := []struct {
		name  string
		panel Panel
		index int
		want  Command
	}{
		{"gear equips", PanelInventory, 0, Command{Kind: CmdEquip, Index: 0}},
		{"consumable uses", PanelInventory, 1, Command{Kind: CmdUse, Index: 1}},
		{"material no-op", PanelInventory, 2, Command{}},
		{"occupied slot unequips", PanelCharacter, int(netconfig.SlotHelm), Command{Kind: CmdUnequip, Slot: netconfig.SlotHelm}},
		{"empty slot no-op", PanelCharacter, int(netconfig.SlotWeapon), Command{}},
		{"stat button allocates", PanelCharacter, 6, Command{Kind: CmdAllocateStat, Stat: netconfig.StatAgility}},
		{"shop buys", PanelShop, 0, Command{Kind: CmdBuy, ItemID: "bow"}},
		{"craftable recipe", PanelCrafting, 0, Command{Kind: CmdCraft, RecipeID: 4}},
		{"uncraftable recipe", PanelCrafting, 1, Command{}},
	}
	for _, tt := range tests {
		m := New()
		m.Open(tt.panel)
		m.Focus(tt.index, view.Counts())
		if got := m.Confirm(view); got != tt.want {
			t.Errorf("%s: Confirm = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestAllocateNeedsPoints(t *testing.T) {
	m := New()
	m.Open(PanelCharacter)
	m.Focus(5, Counts{})
	if got := m.Confirm(View{}); got.Kind != CmdNone {
		t.Errorf("Confirm without stat points = %+v", got)
	}
}

func TestSecondaryDrops(t *testing.T) {
	view := View{Inventory: []messages.Item{{ID: 1}, {ID: 2}}}
	m := New()
	m.Open(PanelInventory)
	m.Focus(1, view.Counts())
	if got := m.Secondary(view); got != (Command{Kind: CmdDrop, Index: 1}) {
		t.Errorf("Secondary = %+v", got)
	}

	m.Open(PanelCharacter)
	if got := m.Secondary(view); got.Kind != CmdNone {
		t.Errorf("Secondary outside inventory = %+v", got)
	}
}

func TestVersionChangesOnStateChange(t *testing.T) {
	m := New()
	v := m.Version()
	m.SetChat(false)
	if m.Version() != v {
		t.Error("no-op chat change bumped the version")
	}
	m.Open(PanelShop)
	if m.Version() == v {
		t.Error("opening a panel did not bump the version")
	}
}
