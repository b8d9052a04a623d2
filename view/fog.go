package view

import "github.com/automoto/emberveil/shared/gamemath"

// Fog controls the darkness layer drawn over the world.
type Fog struct {
	// ExploredAlpha is the darkness over explored tiles outside the light.
	ExploredAlpha float64
	// LightRadius is the radius of the player's light in world units.
	LightRadius float64
	// Falloff is the width of the soft edge at the rim of the light.
	Falloff float64
}

// Alpha returns the darkness over a tile: unexplored tiles are fully dark,
// explored tiles are dimmed, and the player's light clears the dimming
// with a soft edge.
func (f Fog) Alpha(explored bool, dist float64) float64 {
	if !explored {
		return 1
	}
	return f.ExploredAlpha * (1 - f.Light(dist))
}

// Light is the light intensity at a distance from the player, 1 at the
// center fading to 0 across the falloff band.
func (f Fog) Light(dist float64) float64 {
	inner := f.LightRadius - f.Falloff
	switch {
	case dist <= inner:
		return 1
	case dist >= f.LightRadius:
		return 0
	}
	if f.Falloff <= 0 {
		return 0
	}
	return gamemath.Clamp((f.LightRadius-dist)/f.Falloff, 0, 1)
}
