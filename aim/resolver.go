// Package aim derives facing and aim angles from whichever input device is
// authoritative.
package aim

import (
	"math"

	"github.com/automoto/emberveil/controls"
	"github.com/automoto/emberveil/shared/gamemath"
	"github.com/automoto/emberveil/shared/messages"
)

// Input is what the resolver needs for one call.
type Input struct {
	Device controls.DeviceClass

	// Pointer position and screen center, in screen pixels.
	PointerX, PointerY float64
	CenterX, CenterY   float64

	// Movement axes from the current State.
	AxisX, AxisY float64

	// Player is the local player's entity; HasPlayer is false before the
	// first snapshot that contains it.
	Player    messages.Entity
	HasPlayer bool

	// Entities are candidate targets.
	Entities []messages.Entity
}

// Resolver computes angles in radians, 0 facing right.
type Resolver struct {
	// Radius is the auto-target engagement radius in world units.
	Radius float64
	// MoveDeadzone is the axis magnitude above which movement sets facing.
	MoveDeadzone float64
}

// NewResolver returns a resolver with an engagement radius of the given
// number of tiles.
func NewResolver(tiles, tileSize float64) *Resolver {
	return &Resolver{
		Radius:       tiles * tileSize,
		MoveDeadzone: 0.1,
	}
}

// AttackAngle aims attacks. Off-pointer devices auto-target the nearest
// hostile within the engagement radius.
func (r *Resolver) AttackAngle(in Input) (float64, bool) {
	if in.Device == controls.DevicePointer {
		return pointerAngle(in), true
	}
	if !in.HasPlayer {
		return 0, false
	}
	if target, ok := r.NearestHostile(in.Player, in.Entities); ok {
		return gamemath.Angle(target.X-in.Player.X, target.Y-in.Player.Y), true
	}
	return r.fallback(in), true
}

// DashAngle aims dashes and facing. It never auto-targets.
func (r *Resolver) DashAngle(in Input) (float64, bool) {
	if in.Device == controls.DevicePointer {
		return pointerAngle(in), true
	}
	if !in.HasPlayer {
		return 0, false
	}
	return r.fallback(in), true
}

// LookAngle is the facing direction; it follows the same rules as dashing.
func (r *Resolver) LookAngle(in Input) (float64, bool) {
	return r.DashAngle(in)
}

// NearestHostile finds the closest qualifying target within Radius,
// comparing squared distances.
func (r *Resolver) NearestHostile(player messages.Entity, entities []messages.Entity) (messages.Entity, bool) {
	best := messages.Entity{}
	bestD2 := r.Radius * r.Radius
	found := false
	for _, e := range entities {
		if e.ID == player.ID || e.Dead || !e.Kind.Hostile() {
			continue
		}
		d2 := gamemath.Dist2(player.X, player.Y, e.X, e.Y)
		if d2 <= bestD2 {
			if found && d2 == bestD2 {
				continue
			}
			best, bestD2, found = e, d2, true
		}
	}
	return best, found
}

func (r *Resolver) fallback(in Input) float64 {
	if math.Hypot(in.AxisX, in.AxisY) > r.MoveDeadzone {
		return gamemath.Angle(in.AxisX, in.AxisY)
	}
	if in.Player.VX != 0 || in.Player.VY != 0 {
		return gamemath.Angle(in.Player.VX, in.Player.VY)
	}
	return 0
}

func pointerAngle(in Input) float64 {
	return gamemath.Angle(in.PointerX-in.CenterX, in.PointerY-in.CenterY)
}
