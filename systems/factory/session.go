package factory

import (
	"github.com/automoto/emberveil/aim"
	"github.com/automoto/emberveil/archetypes"
	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/desktop"
	"github.com/automoto/emberveil/intent"
	"github.com/automoto/emberveil/shared/worldstate"
	"github.com/automoto/emberveil/uistate"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the session singleton for a connection.
func CreateSession(ecs *ecs.ECS, conn components.Connection, presence *desktop.Presence) *components.SessionData {
	entry := archetypes.Session.Spawn(ecs)
	resolver := aim.NewResolver(cfg.Aim.TargetRadiusTiles, cfg.World.TileSize)
	resolver.MoveDeadzone = cfg.Aim.MoveDeadzone
	components.Session.Set(entry, &components.SessionData{
		Conn:     conn,
		Store:    worldstate.NewStore(),
		UI:       uistate.NewWithInterval(cfg.Input.NavInterval),
		Emitter:  intent.NewEmitter(conn),
		Resolver: resolver,
		Presence: presence,
		HUDDirty: true,
		Focused:  true,
	})
	return components.Session.Get(entry)
}
