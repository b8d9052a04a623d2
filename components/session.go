package components

import (
	"github.com/automoto/emberveil/aim"
	"github.com/automoto/emberveil/desktop"
	"github.com/automoto/emberveil/hud"
	"github.com/automoto/emberveil/intent"
	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/worldstate"
	"github.com/automoto/emberveil/uistate"
	"github.com/yohamta/donburi"
)

// Connection is what the game systems need from the network client.
type Connection interface {
	intent.Sender
	DrainSnapshots() []messages.SnapshotUpdate
	DrainEvents() []messages.Inbound
}

// SessionData is the per-scene game session (singleton component). It owns
// the merged snapshot, the UI focus state and the outbound intent emitter.
type SessionData struct {
	Conn     Connection
	Store    *worldstate.Store
	UI       *uistate.Machine
	Emitter  *intent.Emitter
	Resolver *aim.Resolver
	Presence *desktop.Presence

	// Frame counts game loop ticks; animations advance per frame.
	Frame int

	// HUD is rebuilt when the snapshot or the UI state changes.
	HUD         hud.Model
	HUDRevision int // bumped on every rebuild; panels rebuild when it moves
	Bars        hud.Bars
	HUDDirty    bool
	UIVersion   int

	// ChatDraft is the chat line being typed.
	ChatDraft []rune

	// Focused mirrors ebiten.IsFocused for notification decisions.
	Focused bool
}

var Session = donburi.NewComponentType[SessionData]()
