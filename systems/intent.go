package systems

import (
	"github.com/automoto/emberveil/aim"
	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/controls"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIntent turns this frame's input into outbound intents. Movement is
// always re-evaluated so opening a panel sends the zero movement once.
func UpdateIntent(e *ecs.ECS) {
	s, ok := getSession(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	st := &input.State

	suppressed := s.UI.MovementSuppressed() || IsSettingsOpen(e)
	s.Emitter.Update(st.X, st.Y, st.Blocking(), suppressed)
	if suppressed {
		return
	}

	in := aimInput(s, st)
	if st.JustPressed(controls.ActionAttack) {
		if angle, ok := s.Resolver.AttackAngle(in); ok {
			s.Emitter.Attack(angle)
		}
	}
	if st.JustPressed(controls.ActionSkill) {
		if angle, ok := s.Resolver.AttackAngle(in); ok {
			s.Emitter.Skill(0, angle)
		}
	}
	if st.JustPressed(controls.ActionDash) {
		if angle, ok := s.Resolver.DashAngle(in); ok {
			s.Emitter.Dash(angle)
		}
	}
	if st.JustPressed(controls.ActionPotion) {
		s.Emitter.Potion()
	}
}

// aimInput assembles the resolver input. The camera keeps the player at the
// screen center, so the pointer angle is taken relative to it.
func aimInput(s *components.SessionData, st *controls.State) aim.Input {
	player, hasPlayer := s.Store.Player()
	return aim.Input{
		Device:    st.Device,
		PointerX:  st.PointerX,
		PointerY:  st.PointerY,
		CenterX:   float64(cfg.C.Width) / 2,
		CenterY:   float64(cfg.C.Height) / 2,
		AxisX:     st.X,
		AxisY:     st.Y,
		Player:    player,
		HasPlayer: hasPlayer,
		Entities:  s.Store.Snapshot().Entities,
	}
}
