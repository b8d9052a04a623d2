package systems

import (
	"log"
	"time"

	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/desktop"
	"github.com/automoto/emberveil/feedback"
	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/automoto/emberveil/systems/factory"
	"github.com/automoto/emberveil/uistate"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNetwork drains the connection and applies everything the server sent
// since the last frame. It runs first so the rest of the frame sees the
// newest state.
func UpdateNetwork(e *ecs.ECS) {
	s, ok := getSession(e)
	if !ok || s.Conn == nil {
		return
	}

	now := time.Now()
	for _, u := range s.Conn.DrainSnapshots() {
		s.Store.Merge(u, now)
		s.UI.Clamp(panelView(s.Store.Snapshot()).Counts())
		s.HUDDirty = true
	}

	for _, evt := range s.Conn.DrainEvents() {
		handleEvent(e, s, evt)
	}
}

func handleEvent(e *ecs.ECS, s *components.SessionData, evt messages.Inbound) {
	switch evt := evt.(type) {
	case messages.FloatingTextEvent:
		entry := factory.SpawnFloatingText(e, evt)
		style := components.FloatingText.Get(entry).Style
		PlayCue(e, style.Cue)
		if style.Kind == netconfig.TextCrit {
			TriggerScreenShake(e, cfg.ScreenShake.CritIntensity, cfg.ScreenShake.CritDuration)
		}

	case messages.VisualEffectEvent:
		factory.SpawnEffect(e, evt)
		PlayCue(e, feedback.Effect(evt.Kind).Cue)
		if evt.Kind == netconfig.EffectAreaBurst {
			TriggerScreenShake(e, cfg.ScreenShake.BurstIntensity, cfg.ScreenShake.BurstDuration)
		}

	case messages.ShopOpenEvent:
		s.Store.SetShop(evt.Items)
		s.UI.Open(uistate.PanelShop)
		s.UI.Clamp(panelView(s.Store.Snapshot()).Counts())
		s.HUDDirty = true
		PlayCue(e, feedback.CueShop)

	case messages.ChatNotifyEvent:
		PlayCue(e, feedback.CueChat)
		if !s.Focused && cfg.Desktop.Notifications {
			desktop.Notify("Emberveil", evt.From+" sent a message")
		}

	default:
		log.Printf("[client] unexpected event %T", evt)
	}
}
