package systems

import (
	"time"
	"unicode"

	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/controls"
	"github.com/automoto/emberveil/desktop"
	"github.com/automoto/emberveil/intent"
	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/automoto/emberveil/uistate"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// BeltSlots is the number of inventory items reachable from the quick belt.
const BeltSlots = 8

var navActions = [...]struct {
	action controls.Action
	dir    uistate.Direction
}{
	{controls.ActionNavUp, uistate.Up},
	{controls.ActionNavDown, uistate.Down},
	{controls.ActionNavLeft, uistate.Left},
	{controls.ActionNavRight, uistate.Right},
}

// UpdateUI drives the panel and chat state machine from this frame's input.
func UpdateUI(e *ecs.ECS) {
	s, ok := getSession(e)
	if !ok || IsSettingsOpen(e) {
		return
	}
	input := getOrCreateInput(e)
	m := s.UI

	if m.ChatOpen() {
		updateChat(e, s, input)
		return
	}

	switch {
	case GetAction(input, controls.ActionEscape).JustPressed:
		if m.Panel() == uistate.PanelNone {
			break
		}
		m.Escape()
		PlaySFX(e, cfg.SoundMenuSelect)
		return
	case GetAction(input, controls.ActionChat).JustPressed && m.Panel() == uistate.PanelNone:
		m.SetChat(true)
		s.ChatDraft = s.ChatDraft[:0]
		return
	case GetAction(input, controls.ActionInventory).JustPressed:
		m.Toggle(uistate.PanelInventory)
		PlaySFX(e, cfg.SoundMenuSelect)
	case GetAction(input, controls.ActionCharacter).JustPressed:
		m.Toggle(uistate.PanelCharacter)
		PlaySFX(e, cfg.SoundMenuSelect)
	case GetAction(input, controls.ActionCrafting).JustPressed:
		m.Toggle(uistate.PanelCrafting)
		PlaySFX(e, cfg.SoundMenuSelect)
	}

	view := panelView(s.Store.Snapshot())
	counts := view.Counts()
	now := time.Now()
	for _, n := range navActions {
		if GetAction(input, n.action).Pressed && m.Navigate(n.dir, now, counts) {
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
	}

	if GetAction(input, controls.ActionConfirm).JustPressed {
		if dispatch(s.Emitter, m.Confirm(view)) {
			PlaySFX(e, cfg.SoundMenuSelect)
		}
	}
	if GetAction(input, controls.ActionSecondary).JustPressed {
		if dispatch(s.Emitter, m.Secondary(view)) {
			PlaySFX(e, cfg.SoundMenuSelect)
		}
	}

	if slot := input.State.TouchSlot; slot >= 0 {
		if m.IsOpen(uistate.PanelInventory) {
			m.Focus(slot, counts)
		} else if dispatch(s.Emitter, beltCommand(view.Inventory, slot)) {
			PlaySFX(e, cfg.SoundMenuSelect)
		}
	}
}

// updateChat edits the draft line while chat owns the keyboard.
func updateChat(e *ecs.ECS, s *components.SessionData, input *components.InputData) {
	if GetAction(input, controls.ActionEscape).JustPressed {
		s.UI.Escape()
		s.ChatDraft = s.ChatDraft[:0]
		return
	}
	if GetAction(input, controls.ActionChat).JustPressed {
		if s.Emitter.Chat(string(s.ChatDraft)) {
			PlaySFX(e, cfg.SoundChat)
		}
		s.ChatDraft = s.ChatDraft[:0]
		s.UI.SetChat(false)
		return
	}

	if GetAction(input, controls.ActionPaste).JustPressed {
		s.ChatDraft = appendDraft(s.ChatDraft, []rune(desktop.PasteText()))
	} else {
		s.ChatDraft = appendDraft(s.ChatDraft, input.Typed)
	}

	if backspace() && len(s.ChatDraft) > 0 {
		s.ChatDraft = s.ChatDraft[:len(s.ChatDraft)-1]
	}
}

// backspace fires once on press, then repeats while held.
func backspace() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		return true
	}
	d := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	return d > 30 && d%3 == 0
}

// appendDraft adds printable runes to the chat draft up to the chat limit.
func appendDraft(draft, typed []rune) []rune {
	for _, r := range typed {
		if len(draft) >= netconfig.ChatMaxRunes {
			break
		}
		if unicode.IsControl(r) {
			continue
		}
		draft = append(draft, r)
	}
	return draft
}

// beltCommand is the quick action for a belt tap with no panel open.
func beltCommand(inv []messages.Item, slot int) uistate.Command {
	if slot < 0 || slot >= BeltSlots || slot >= len(inv) {
		return uistate.Command{}
	}
	switch inv[slot].Kind {
	case netconfig.ItemGear:
		return uistate.Command{Kind: uistate.CmdEquip, Index: slot}
	case netconfig.ItemConsumable:
		return uistate.Command{Kind: uistate.CmdUse, Index: slot}
	}
	return uistate.Command{}
}

// dispatch sends the intent for a resolved command. It reports whether
// anything was sent.
func dispatch(em *intent.Emitter, c uistate.Command) bool {
	switch c.Kind {
	case uistate.CmdUnequip:
		em.Unequip(c.Slot)
	case uistate.CmdAllocateStat:
		em.AllocateStat(c.Stat)
	case uistate.CmdEquip:
		em.Equip(c.Index)
	case uistate.CmdUse:
		em.Use(c.Index)
	case uistate.CmdDrop:
		em.Drop(c.Index)
	case uistate.CmdBuy:
		em.Buy(c.ItemID)
	case uistate.CmdCraft:
		em.Craft(c.RecipeID)
	default:
		return false
	}
	return true
}

// ActivateSlot focuses a panel element and confirms it, as a click or tap
// on the element does. Clicks on an area that is not focused are ignored.
func ActivateSlot(e *ecs.ECS, area uistate.Area, index int) {
	s, ok := getSession(e)
	if !ok || s.UI.Cursor().Area != area {
		return
	}
	view := panelView(s.Store.Snapshot())
	s.UI.Focus(index, view.Counts())
	if dispatch(s.Emitter, s.UI.Confirm(view)) {
		PlaySFX(e, cfg.SoundMenuSelect)
	}
}
