package systems

import (
	"image/color"
	"strconv"
	"time"

	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/controls"
	"github.com/automoto/emberveil/desktop"
	"github.com/automoto/emberveil/fonts"
	"github.com/automoto/emberveil/hud"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const frameSeconds = 1.0 / 60

// UpdateHUD rebuilds the view model after a merge or a UI state change and
// advances the bar easing.
func UpdateHUD(e *ecs.ECS) {
	s, ok := getSession(e)
	if !ok {
		return
	}
	s.Frame++

	if v := s.UI.Version(); v != s.UIVersion {
		s.UIVersion = v
		s.HUDDirty = true
	}
	if s.HUDDirty {
		s.HUD = hud.Build(s.Store.Snapshot(), s.UI, s.Store.Age(time.Now()))
		s.HUDRevision++
		s.Bars.Set(s.HUD)
		s.HUDDirty = false
	}
	s.Bars.Update(frameSeconds)
}

// CurrentHUD returns the latest model and its revision.
func CurrentHUD(e *ecs.ECS) (hud.Model, int, bool) {
	s, ok := getSession(e)
	if !ok {
		return hud.Model{}, 0, false
	}
	return s.HUD, s.HUDRevision, true
}

// UpdatePresence mirrors the character into the desktop rich presence.
func UpdatePresence(e *ecs.ECS) {
	s, ok := getSession(e)
	if !ok || s.Presence == nil {
		return
	}
	s.Presence.Set(desktop.Detail(s.HUD.Name, s.HUD.Level, s.HUD.Zone))
}

// DrawHUD renders the bars, the chat log, the quick belt and, on touch
// devices, the touch zones.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	s, ok := getSession(e)
	if !ok {
		return
	}
	if _, ok := s.Store.Player(); !ok {
		drawWaiting(screen)
		return
	}
	m := &s.HUD
	face := fonts.HUD.Get()

	x := float32(cfg.UI.BarMargin)
	y := float32(cfg.UI.BarMargin)
	step := float32(cfg.UI.BarHeight + cfg.UI.BarMargin)
	drawBar(screen, x, y, s.Bars.HP.Value(), cfg.UI.HPColor, m.HP.Label)
	drawBar(screen, x, y+step, s.Bars.MP.Value(), cfg.UI.MPColor, m.MP.Label)
	drawBar(screen, x, y+2*step, s.Bars.XP.Value(), cfg.UI.XPColor, "")

	info := "Lv " + strconv.Itoa(m.Level) + "  " + m.Gold + "g"
	if m.StatPoints > 0 {
		info += "  +" + strconv.Itoa(m.StatPoints) + " pts"
	}
	text.Draw(screen, info, face, int(x), int(y+3*step)+10, cfg.UI.TextColor)

	if stale := hud.StaleLabel(s.Store.Age(time.Now())); stale != "" {
		w := text.BoundString(face, stale).Dx()
		text.Draw(screen, stale, face, cfg.C.Width-w-int(cfg.UI.BarMargin), 16, cfg.UI.StaleColor)
	}

	drawChat(screen, s)
	drawBelt(screen, m)

	if getOrCreateInput(e).State.Device == controls.DeviceTouch {
		drawTouchZones(screen)
	}
}

func drawWaiting(screen *ebiten.Image) {
	face := fonts.Large.Get()
	msg := "Entering world..."
	x := cfg.C.Width/2 - text.BoundString(face, msg).Dx()/2
	text.Draw(screen, msg, face, x, cfg.C.Height/2, cfg.UI.DimText)
}

func drawBar(screen *ebiten.Image, x, y float32, fraction float64, c color.RGBA, label string) {
	w := float32(cfg.UI.BarWidth)
	h := float32(cfg.UI.BarHeight)
	vector.DrawFilledRect(screen, x, y, w, h, cfg.UI.BarBgColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(fraction), h, c, false)
	if label != "" {
		text.Draw(screen, label, fonts.HUD.Get(), int(x+w)+6, int(y+h), cfg.UI.DimText)
	}
}

func drawChat(screen *ebiten.Image, s *components.SessionData) {
	face := fonts.HUD.Get()
	lineH := face.Metrics().Height.Ceil()
	x := int(cfg.UI.BarMargin)
	y := cfg.C.Height - 48 - lineH*len(s.HUD.Chat)
	for _, line := range s.HUD.Chat {
		text.Draw(screen, line, face, x, y, cfg.UI.DimText)
		y += lineH
	}
	if s.UI.ChatOpen() {
		cursor := ""
		if s.Frame/30%2 == 0 {
			cursor = "_"
		}
		text.Draw(screen, "> "+string(s.ChatDraft)+cursor, face, x, y, cfg.UI.TextColor)
	}
}

// drawBelt shows the first inventory items in the slot zones of the touch
// layout. Keyboard and gamepad players see it too as a quick reference.
func drawBelt(screen *ebiten.Image, m *hud.Model) {
	face := fonts.HUD.Get()
	for _, z := range TouchZones() {
		if z.Kind != controls.ZoneSlot {
			continue
		}
		bg := cfg.UI.SlotDisabled
		label := ""
		if z.Index < len(m.Inventory) && !m.Inventory[z.Index].Empty {
			bg = cfg.UI.SlotBg
			label = initials(m.Inventory[z.Index].Label)
		}
		vector.DrawFilledRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), bg, false)
		if label != "" {
			cx, cy := z.Center()
			lx := int(cx) - text.BoundString(face, label).Dx()/2
			text.Draw(screen, label, face, lx, int(cy)+4, cfg.UI.TextColor)
		}
	}
}

func drawTouchZones(screen *ebiten.Image) {
	face := fonts.HUD.Get()
	for _, z := range TouchZones() {
		if z.Kind == controls.ZoneSlot {
			continue
		}
		vector.StrokeRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), 1, cfg.UI.DimText, false)
		if z.Kind == controls.ZoneButton {
			cx, cy := z.Center()
			lx := int(cx) - text.BoundString(face, z.Name).Dx()/2
			text.Draw(screen, z.Name, face, lx, int(cy)+4, cfg.UI.DimText)
		}
	}
}

// initials abbreviates an item name to fit a belt slot.
func initials(name string) string {
	out := make([]rune, 0, 2)
	next := true
	for _, r := range name {
		if r == ' ' {
			next = true
			continue
		}
		if next {
			out = append(out, r)
			next = false
			if len(out) == 2 {
				break
			}
		}
	}
	return string(out)
}
