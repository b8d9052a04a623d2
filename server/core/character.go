package core

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
)

const (
	inventorySize = 24
	statsPerLevel = 3
	xpPerLevel    = 100
	potionHeal    = 35
	startingGold  = 50
)

var (
	errNoSuchItem    = errors.New("no item at that index")
	errNotGear       = errors.New("item is not gear")
	errNotUsable     = errors.New("item cannot be used")
	errInventoryFull = errors.New("inventory full")
	errNoStatPoints  = errors.New("no unspent stat points")
	errNoSuchRecipe  = errors.New("unknown recipe")
	errMissingParts  = errors.New("missing ingredients")
	errNotEnoughGold = errors.New("not enough gold")
	errNotForSale    = errors.New("item not sold here")
	errSlotEmpty     = errors.New("slot is empty")
)

var itemSeq atomic.Uint32

type itemTemplate struct {
	Name  string
	Kind  netconfig.ItemKind
	Slot  netconfig.EquipSlot
	Value int
}

func (t itemTemplate) make(qty int) messages.Item {
	return messages.Item{
		ID:       itemSeq.Add(1),
		Name:     t.Name,
		Kind:     t.Kind,
		Slot:     t.Slot,
		Quantity: qty,
		Value:    t.Value,
	}
}

var (
	tmplPotion     = itemTemplate{Name: "minor potion", Kind: netconfig.ItemConsumable, Value: 10}
	tmplEmberTonic = itemTemplate{Name: "ember tonic", Kind: netconfig.ItemConsumable, Value: 25}
	tmplDust       = itemTemplate{Name: "ash dust", Kind: netconfig.ItemMaterial, Value: 2}
	tmplGem        = itemTemplate{Name: "ember gem", Kind: netconfig.ItemGem, Value: 30}
	tmplSword      = itemTemplate{Name: "iron sword", Kind: netconfig.ItemGear, Slot: netconfig.SlotWeapon, Value: 40}
	tmplStick      = itemTemplate{Name: "charred stick", Kind: netconfig.ItemGear, Slot: netconfig.SlotWeapon, Value: 10}
	tmplCap        = itemTemplate{Name: "leather cap", Kind: netconfig.ItemGear, Slot: netconfig.SlotHelm, Value: 25}
	tmplBoots      = itemTemplate{Name: "soft boots", Kind: netconfig.ItemGear, Slot: netconfig.SlotBoots, Value: 20}
	tmplRing       = itemTemplate{Name: "ash ring", Kind: netconfig.ItemGear, Slot: netconfig.SlotRing, Value: 35}
)

type shopEntry struct {
	tmpl  itemTemplate
	price int
}

var shopStock = map[string]shopEntry{
	"potion": {tmplPotion, 10},
	"sword":  {tmplSword, 40},
	"cap":    {tmplCap, 25},
	"boots":  {tmplBoots, 20},
	"gem":    {tmplGem, 30},
}

// shopOrder fixes the listing order.
var shopOrder = []string{"potion", "sword", "cap", "boots", "gem"}

func shopListing() []messages.ShopItem {
	out := make([]messages.ShopItem, 0, len(shopOrder))
	for _, id := range shopOrder {
		e := shopStock[id]
		out = append(out, messages.ShopItem{ID: id, Name: e.tmpl.Name, Kind: e.tmpl.Kind, Price: e.price})
	}
	return out
}

type ingredient struct {
	name string
	qty  int
}

type recipe struct {
	id     uint32
	result itemTemplate
	parts  []ingredient
}

var recipes = []recipe{
	{id: 1, result: tmplEmberTonic, parts: []ingredient{{"ash dust", 2}, {"minor potion", 1}}},
	{id: 2, result: tmplRing, parts: []ingredient{{"ash dust", 3}, {"ember gem", 1}}},
}

// character is a server-side character sheet plus the account that owns it.
type character struct {
	sheet messages.Character
	id    uint32
}

func newCharacter(id uint32, name, class string) *character {
	c := &character{id: id}
	c.sheet = messages.Character{
		Name:   name,
		Class:  class,
		Level:  1,
		XPNext: xpPerLevel,
		Gold:   startingGold,
	}
	for i := range c.sheet.Stats {
		c.sheet.Stats[i] = 5
	}
	switch class {
	case "warrior":
		c.sheet.Stats[netconfig.StatStrength] += 2
	case "ranger":
		c.sheet.Stats[netconfig.StatAgility] += 2
	default:
		c.sheet.Stats[netconfig.StatVitality] += 2
	}
	c.sheet.Equipment[netconfig.SlotWeapon] = tmplStick.make(1)
	c.sheet.Inventory = []messages.Item{tmplPotion.make(3), tmplDust.make(2)}
	c.recompute()
	c.sheet.HP = c.sheet.MaxHP
	c.sheet.MP = c.sheet.MaxMP
	return c
}

func (c *character) summary() messages.CharacterSummary {
	return messages.CharacterSummary{ID: c.id, Name: c.sheet.Name, Class: c.sheet.Class, Level: c.sheet.Level}
}

// recompute refreshes the derived stats from attributes and gear.
func (c *character) recompute() {
	ch := &c.sheet
	gear := 0
	for _, it := range ch.Equipment {
		gear += it.Value
	}
	weapon := ch.Equipment[netconfig.SlotWeapon].Value

	ch.MaxHP = 50 + 10*ch.Stats[netconfig.StatVitality]
	ch.MaxMP = 20 + 5*ch.Level
	ch.Attack = 2 + 2*ch.Stats[netconfig.StatStrength] + weapon/5
	ch.Defense = ch.Stats[netconfig.StatVitality] + (gear-weapon)/10
	ch.Speed = 1 + 0.04*float64(ch.Stats[netconfig.StatAgility])
	ch.CritChance = 0.05 + 0.01*float64(ch.Stats[netconfig.StatAgility])
	ch.HP = min(ch.HP, ch.MaxHP)
	ch.MP = min(ch.MP, ch.MaxMP)
}

// gainXP adds experience and reports how many levels were gained.
func (c *character) gainXP(xp int) int {
	ch := &c.sheet
	ch.XP += xp
	levels := 0
	for ch.XP >= ch.XPNext {
		ch.XP -= ch.XPNext
		ch.Level++
		ch.XPNext = xpPerLevel * ch.Level
		ch.StatPoints += statsPerLevel
		levels++
	}
	if levels > 0 {
		c.recompute()
		ch.HP = ch.MaxHP
		ch.MP = ch.MaxMP
	}
	return levels
}

func (c *character) item(index int) (*messages.Item, error) {
	if index < 0 || index >= len(c.sheet.Inventory) {
		return nil, errNoSuchItem
	}
	return &c.sheet.Inventory[index], nil
}

// addItem stacks consumables and materials by name.
func (c *character) addItem(it messages.Item) error {
	inv := c.sheet.Inventory
	if it.Kind == netconfig.ItemConsumable || it.Kind == netconfig.ItemMaterial {
		for i := range inv {
			if inv[i].Name == it.Name {
				inv[i].Quantity += it.Quantity
				return nil
			}
		}
	}
	if len(inv) >= inventorySize {
		return errInventoryFull
	}
	c.sheet.Inventory = append(inv, it)
	return nil
}

func (c *character) removeAt(index int) messages.Item {
	it := c.sheet.Inventory[index]
	c.sheet.Inventory = append(c.sheet.Inventory[:index], c.sheet.Inventory[index+1:]...)
	return it
}

// consume removes qty from the stack at index, dropping the slot when empty.
func (c *character) consume(index, qty int) {
	it := &c.sheet.Inventory[index]
	it.Quantity -= qty
	if it.Quantity <= 0 {
		c.removeAt(index)
	}
}

func (c *character) count(name string) int {
	n := 0
	for _, it := range c.sheet.Inventory {
		if it.Name == name {
			n += max(it.Quantity, 1)
		}
	}
	return n
}

func (c *character) takeByName(name string, qty int) {
	for i := len(c.sheet.Inventory) - 1; i >= 0 && qty > 0; i-- {
		it := &c.sheet.Inventory[i]
		if it.Name != name {
			continue
		}
		n := min(max(it.Quantity, 1), qty)
		qty -= n
		c.consume(i, n)
	}
}

func (c *character) equip(index int) error {
	it, err := c.item(index)
	if err != nil {
		return err
	}
	if it.Kind != netconfig.ItemGear {
		return errNotGear
	}
	slot := it.Slot
	prev := c.sheet.Equipment[slot]
	c.sheet.Equipment[slot] = *it
	if prev.Empty() {
		c.removeAt(index)
	} else {
		c.sheet.Inventory[index] = prev
	}
	c.recompute()
	return nil
}

func (c *character) unequip(slot netconfig.EquipSlot) error {
	if slot < 0 || slot >= netconfig.SlotCount {
		return fmt.Errorf("unequip %d: %w", slot, errSlotEmpty)
	}
	it := c.sheet.Equipment[slot]
	if it.Empty() {
		return errSlotEmpty
	}
	if err := c.addItem(it); err != nil {
		return err
	}
	c.sheet.Equipment[slot] = messages.Item{}
	c.recompute()
	return nil
}

func (c *character) drop(index int) (messages.Item, error) {
	if _, err := c.item(index); err != nil {
		return messages.Item{}, err
	}
	return c.removeAt(index), nil
}

// use consumes one of the item at index and returns the HP healed.
func (c *character) use(index int) (int, error) {
	it, err := c.item(index)
	if err != nil {
		return 0, err
	}
	if it.Kind != netconfig.ItemConsumable {
		return 0, errNotUsable
	}
	heal := potionHeal * it.Value / tmplPotion.Value
	before := c.sheet.HP
	c.sheet.HP = min(c.sheet.HP+heal, c.sheet.MaxHP)
	c.consume(index, 1)
	return c.sheet.HP - before, nil
}

// drinkPotion uses the first consumable in the inventory.
func (c *character) drinkPotion() (int, error) {
	for i, it := range c.sheet.Inventory {
		if it.Kind == netconfig.ItemConsumable {
			return c.use(i)
		}
	}
	return 0, errNoSuchItem
}

func (c *character) allocate(stat netconfig.StatKind) error {
	if stat < 0 || stat >= netconfig.StatCount {
		return fmt.Errorf("allocate %d: unknown stat", stat)
	}
	if c.sheet.StatPoints <= 0 {
		return errNoStatPoints
	}
	c.sheet.StatPoints--
	c.sheet.Stats[stat]++
	c.recompute()
	return nil
}

func findRecipe(id uint32) (recipe, bool) {
	for _, r := range recipes {
		if r.id == id {
			return r, true
		}
	}
	return recipe{}, false
}

func (c *character) canCraft(r recipe) bool {
	for _, p := range r.parts {
		if c.count(p.name) < p.qty {
			return false
		}
	}
	return true
}

func (c *character) craft(id uint32) (messages.Item, error) {
	r, ok := findRecipe(id)
	if !ok {
		return messages.Item{}, errNoSuchRecipe
	}
	if !c.canCraft(r) {
		return messages.Item{}, errMissingParts
	}
	for _, p := range r.parts {
		c.takeByName(p.name, p.qty)
	}
	it := r.result.make(1)
	if err := c.addItem(it); err != nil {
		return messages.Item{}, err
	}
	return it, nil
}

// recipeList reports every recipe with its craftability for this character.
func (c *character) recipeList() []messages.Recipe {
	out := make([]messages.Recipe, 0, len(recipes))
	for _, r := range recipes {
		parts := make([]string, 0, len(r.parts))
		for _, p := range r.parts {
			parts = append(parts, fmt.Sprintf("%dx %s", p.qty, p.name))
		}
		out = append(out, messages.Recipe{ID: r.id, Name: r.result.Name, Ingredients: parts, Craftable: c.canCraft(r)})
	}
	return out
}

func (c *character) buy(itemID string) (messages.Item, error) {
	e, ok := shopStock[itemID]
	if !ok {
		return messages.Item{}, errNotForSale
	}
	if c.sheet.Gold < e.price {
		return messages.Item{}, errNotEnoughGold
	}
	it := e.tmpl.make(1)
	if err := c.addItem(it); err != nil {
		return messages.Item{}, err
	}
	c.sheet.Gold -= e.price
	return it, nil
}

// socket fuses a gem into a piece of gear, adding the gem's value to it.
func (c *character) socket(itemIndex, gemIndex int) error {
	if itemIndex == gemIndex {
		return errNoSuchItem
	}
	it, err := c.item(itemIndex)
	if err != nil {
		return err
	}
	gem, err := c.item(gemIndex)
	if err != nil {
		return err
	}
	if it.Kind != netconfig.ItemGear {
		return errNotGear
	}
	if gem.Kind != netconfig.ItemGem {
		return errNotUsable
	}
	it.Value += gem.Value
	c.consume(gemIndex, 1)
	return nil
}
