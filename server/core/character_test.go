package core

import (
	"errors"
	"testing"

	"github.com/automoto/emberveil/shared/netconfig"
)

func TestNewCharacterClassBonus(t *testing.T) {
	tests := []struct {
		class string
		stat  netconfig.StatKind
	}{
		{"warrior", netconfig.StatStrength},
		{"ranger", netconfig.StatAgility},
		{"mage", netconfig.StatVitality},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			c := newCharacter(1, "ria", tt.class)
			if c.sheet.Stats[tt.stat] != 7 {
				t.Errorf("%s = %d, want 7", tt.stat, c.sheet.Stats[tt.stat])
			}
			if c.sheet.HP != c.sheet.MaxHP || c.sheet.HP == 0 {
				t.Errorf("hp = %d/%d", c.sheet.HP, c.sheet.MaxHP)
			}
		})
	}
}

func TestEquipSwapsWithWornItem(t *testing.T) {
	c := newCharacter(1, "ria", "warrior")
	before := c.sheet.Attack
	c.sheet.Inventory = append(c.sheet.Inventory, tmplSword.make(1))
	idx := len(c.sheet.Inventory) - 1

	if err := c.equip(idx); err != nil {
		t.Fatalf("equip: %v", err)
	}
	if c.sheet.Equipment[netconfig.SlotWeapon].Name != "iron sword" {
		t.Error("sword not worn")
	}
	if c.sheet.Inventory[idx].Name != "charred stick" {
		t.Errorf("old weapon not swapped into the bag: %+v", c.sheet.Inventory[idx])
	}
	if c.sheet.Attack <= before {
		t.Errorf("attack %d did not improve on %d", c.sheet.Attack, before)
	}

	if err := c.equip(0); !errors.Is(err, errNotGear) {
		t.Errorf("equipping a potion = %v", err)
	}
	if err := c.equip(99); !errors.Is(err, errNoSuchItem) {
		t.Errorf("equipping past the end = %v", err)
	}
}

func TestUnequip(t *testing.T) {
	c := newCharacter(1, "ria", "warrior")
	n := len(c.sheet.Inventory)
	if err := c.unequip(netconfig.SlotWeapon); err != nil {
		t.Fatalf("unequip: %v", err)
	}
	if !c.sheet.Equipment[netconfig.SlotWeapon].Empty() || len(c.sheet.Inventory) != n+1 {
		t.Error("weapon not moved to the bag")
	}
	if err := c.unequip(netconfig.SlotWeapon); !errors.Is(err, errSlotEmpty) {
		t.Errorf("second unequip = %v", err)
	}
}

func TestUseAndDrinkPotion(t *testing.T) {
	c := newCharacter(1, "ria", "warrior")
	c.sheet.HP = 10
	healed, err := c.drinkPotion()
	if err != nil || healed != potionHeal {
		t.Fatalf("drinkPotion = %d, %v", healed, err)
	}
	if c.sheet.Inventory[0].Quantity != 2 {
		t.Errorf("potions left = %d", c.sheet.Inventory[0].Quantity)
	}

	c.sheet.HP = c.sheet.MaxHP
	if healed, _ := c.use(0); healed != 0 {
		t.Errorf("healed %d at full health", healed)
	}
	c.use(0)
	if _, err := c.drinkPotion(); !errors.Is(err, errNoSuchItem) {
		t.Errorf("drinking with no potions = %v", err)
	}
}

func TestAddItemStacks(t *testing.T) {
	c := newCharacter(1, "ria", "warrior")
	n := len(c.sheet.Inventory)
	if err := c.addItem(tmplDust.make(3)); err != nil {
		t.Fatal(err)
	}
	if len(c.sheet.Inventory) != n || c.count("ash dust") != 5 {
		t.Errorf("dust did not stack: %+v", c.sheet.Inventory)
	}

	c.sheet.Inventory = c.sheet.Inventory[:0]
	for range inventorySize {
		c.addItem(tmplCap.make(1))
	}
	if err := c.addItem(tmplCap.make(1)); !errors.Is(err, errInventoryFull) {
		t.Errorf("overfilled bag = %v", err)
	}
}

func TestCraft(t *testing.T) {
	c := newCharacter(1, "ria", "warrior")
	list := c.recipeList()
	if !list[0].Craftable || list[1].Craftable {
		t.Fatalf("craftability = %v, %v", list[0].Craftable, list[1].Craftable)
	}

	it, err := c.craft(1)
	if err != nil || it.Name != "ember tonic" {
		t.Fatalf("craft = %+v, %v", it, err)
	}
	if c.count("ash dust") != 0 || c.count("minor potion") != 2 {
		t.Errorf("ingredients not consumed: %+v", c.sheet.Inventory)
	}
	if _, err := c.craft(1); !errors.Is(err, errMissingParts) {
		t.Errorf("crafting without parts = %v", err)
	}
	if _, err := c.craft(42); !errors.Is(err, errNoSuchRecipe) {
		t.Errorf("unknown recipe = %v", err)
	}
}

func TestBuy(t *testing.T) {
	c := newCharacter(1, "ria", "warrior")
	if _, err := c.buy("cap"); err != nil || c.sheet.Gold != startingGold-25 {
		t.Errorf("buy cap: %v, gold %d", err, c.sheet.Gold)
	}
	if _, err := c.buy("sword"); !errors.Is(err, errNotEnoughGold) {
		t.Errorf("buying past budget = %v", err)
	}
	if c.sheet.Gold != startingGold-25 {
		t.Error("failed purchase still charged gold")
	}
	if _, err := c.buy("dragon"); !errors.Is(err, errNotForSale) {
		t.Errorf("unknown stock = %v", err)
	}
}

func TestLevelUpAndAllocate(t *testing.T) {
	c := newCharacter(1, "ria", "warrior")
	if err := c.allocate(netconfig.StatAgility); !errors.Is(err, errNoStatPoints) {
		t.Errorf("allocate with no points = %v", err)
	}
	if got := c.gainXP(xpPerLevel + 10); got != 1 {
		t.Fatalf("levels gained = %d", got)
	}
	if c.sheet.Level != 2 || c.sheet.XP != 10 || c.sheet.StatPoints != statsPerLevel {
		t.Errorf("sheet after level up = %+v", c.sheet)
	}
	speed := c.sheet.Speed
	if err := c.allocate(netconfig.StatAgility); err != nil {
		t.Fatal(err)
	}
	if c.sheet.Speed <= speed || c.sheet.StatPoints != statsPerLevel-1 {
		t.Error("agility point not applied")
	}
}

func TestSocketGem(t *testing.T) {
	c := newCharacter(1, "ria", "warrior")
	c.sheet.Inventory = append(c.sheet.Inventory, tmplCap.make(1), tmplGem.make(1))
	capIdx := len(c.sheet.Inventory) - 2
	gemIdx := capIdx + 1

	if err := c.socket(capIdx, gemIdx); err != nil {
		t.Fatal(err)
	}
	if c.sheet.Inventory[capIdx].Value != tmplCap.Value+tmplGem.Value {
		t.Errorf("cap value = %d", c.sheet.Inventory[capIdx].Value)
	}
	if c.count("ember gem") != 0 {
		t.Error("gem not consumed")
	}
	if err := c.socket(0, 1); !errors.Is(err, errNotGear) {
		t.Errorf("socketing into a potion = %v", err)
	}
}

func TestAreaLayout(t *testing.T) {
	a := NewArea("test")
	if a.Tiles.At(0, 0) != netconfig.TileWall || a.Tiles.At(1, 1) != netconfig.TileFloor {
		t.Error("border or floor misplaced")
	}
	if a.SpawnX == 0 || len(a.MobHomes) == 0 {
		t.Error("spawn or mob homes missing")
	}

	mask := make([]bool, a.Tiles.Width*a.Tiles.Height)
	if !a.Explore(mask, a.SpawnX, a.SpawnY, 2) {
		t.Error("first look should reveal tiles")
	}
	if a.Explore(mask, a.SpawnX, a.SpawnY, 2) {
		t.Error("second look from the same spot revealed nothing new")
	}
	if !a.NearMerchant(a.Merchant[0], a.Merchant[1]) || a.NearMerchant(a.SpawnX, a.SpawnY) {
		t.Error("merchant range wrong")
	}
}
