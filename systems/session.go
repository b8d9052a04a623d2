package systems

import (
	"github.com/automoto/emberveil/components"
	"github.com/automoto/emberveil/shared/worldstate"
	"github.com/automoto/emberveil/uistate"
	"github.com/yohamta/donburi/ecs"
)

// getSession returns the session singleton, if the scene has one.
func getSession(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

// panelView is the part of the snapshot the panels act on.
func panelView(snap *worldstate.Snapshot) uistate.View {
	c := &snap.Character
	return uistate.View{
		Equipment:  c.Equipment,
		Inventory:  c.Inventory,
		StatPoints: c.StatPoints,
		Shop:       snap.Shop,
		Recipes:    snap.Recipes,
	}
}

// SetFocused records whether the window has focus.
func SetFocused(e *ecs.ECS, focused bool) {
	if s, ok := getSession(e); ok {
		s.Focused = focused
	}
}
