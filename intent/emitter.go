// Package intent forwards normalized player intents to the network layer.
// Movement is edge-triggered; everything else is a one-shot message.
package intent

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
)

// Sender delivers one outbound message. network.Client satisfies it.
type Sender interface {
	SendMessage(msg any) error
}

// Movement is the debounced movement state.
type Movement struct {
	DX, DY   float64
	Blocking bool
}

// Emitter tracks the last movement sent and sends only on change.
type Emitter struct {
	sender Sender
	last   Movement
}

func NewEmitter(sender Sender) *Emitter {
	return &Emitter{sender: sender}
}

// Last returns the last movement the server accepted from us.
func (e *Emitter) Last() Movement { return e.last }

// Update recomputes the movement intent and sends it if it differs from the
// last one sent. suppressed zeroes the axes (chat or a panel is open) but
// keeps blocking. It reports whether a message went out.
func (e *Emitter) Update(dx, dy float64, blocking, suppressed bool) bool {
	next := Movement{DX: dx, DY: dy, Blocking: blocking}
	if suppressed {
		next.DX, next.DY = 0, 0
	}
	if next == e.last {
		return false
	}
	if err := e.sender.SendMessage(messages.MoveIntent{
		DX:       next.DX,
		DY:       next.DY,
		Blocking: next.Blocking,
	}); err != nil {
		log.Printf("[intent] move send error: %v", err)
		return false
	}
	e.last = next
	return true
}

// Reset forgets the last movement, e.g. after reconnecting.
func (e *Emitter) Reset() {
	e.last = Movement{}
}

func (e *Emitter) send(name string, msg messages.Outbound) {
	if err := e.sender.SendMessage(msg); err != nil {
		log.Printf("[intent] %s send error: %v", name, err)
	}
}

func (e *Emitter) Attack(angle float64) {
	e.send("attack", messages.AttackAction{Angle: angle})
}

func (e *Emitter) Skill(index int, angle float64) {
	e.send("skill", messages.SkillAction{Index: index, Angle: angle})
}

func (e *Emitter) Dash(angle float64) {
	e.send("dash", messages.DashAction{Angle: angle})
}

func (e *Emitter) Potion() {
	e.send("potion", messages.PotionAction{})
}

func (e *Emitter) Equip(index int) {
	e.send("equip", messages.EquipItem{Index: index})
}

func (e *Emitter) Unequip(slot netconfig.EquipSlot) {
	e.send("unequip", messages.UnequipItem{Slot: slot})
}

func (e *Emitter) Drop(index int) {
	e.send("drop", messages.DropItem{Index: index})
}

func (e *Emitter) Use(index int) {
	e.send("use", messages.UseItem{Index: index})
}

func (e *Emitter) AllocateStat(stat netconfig.StatKind) {
	e.send("allocate", messages.AllocateStat{Stat: stat})
}

func (e *Emitter) Craft(recipeID uint32) {
	e.send("craft", messages.CraftItem{RecipeID: recipeID})
}

func (e *Emitter) Socket(itemIndex, gemIndex int) {
	e.send("socket", messages.SocketGem{ItemIndex: itemIndex, GemIndex: gemIndex})
}

func (e *Emitter) Buy(itemID string) {
	e.send("buy", messages.ShopBuy{ItemID: itemID})
}

// Chat trims and caps the text before sending. Blank lines are dropped.
func (e *Emitter) Chat(text string) bool {
	text = CapChat(text)
	if text == "" {
		return false
	}
	e.send("chat", messages.ChatSend{Text: text})
	return true
}

func (e *Emitter) Login(version, account string) {
	e.send("login", messages.LoginRequest{Version: version, Account: account})
}

func (e *Emitter) SelectCharacter(id uint32) {
	e.send("select", messages.SelectCharacter{CharacterID: id})
}

func (e *Emitter) CreateCharacter(name, class string) {
	e.send("create", messages.CreateCharacter{Name: strings.TrimSpace(name), Class: class})
}

// CapChat trims whitespace and truncates to the chat rune limit.
func CapChat(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= netconfig.ChatMaxRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:netconfig.ChatMaxRunes]))
}
