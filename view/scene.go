package view

import (
	"image/color"
	"math"
	"slices"

	"github.com/automoto/emberveil/shared/gamemath"
	"github.com/automoto/emberveil/shared/messages"
)

// BobOffset is the vertical bob applied to ground items.
func BobOffset(frame int) float64 {
	return math.Sin(float64(frame)*0.1) * 2
}

// DepthSorted returns the living entities ordered by Y so that lower
// entities draw on top. Entities with equal Y keep their snapshot order.
func DepthSorted(entities []messages.Entity) []messages.Entity {
	out := make([]messages.Entity, 0, len(entities))
	for _, e := range entities {
		if !e.Dead {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b messages.Entity) int {
		switch {
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		}
		return 0
	})
	return out
}

// HealthFraction is hp/max clamped to [0, 1]; zero max is empty.
func HealthFraction(hp, maxHP int) float64 {
	if maxHP <= 0 {
		return 0
	}
	return gamemath.Clamp(float64(hp)/float64(maxHP), 0, 1)
}

// ProjectileShape selects how a projectile is drawn.
type ProjectileShape int

const (
	ShapeOrb ProjectileShape = iota
	ShapeStreak
	ShapeGlow
)

// ProjectileStyle is the look of one projectile tag.
type ProjectileStyle struct {
	Shape  ProjectileShape
	Color  color.RGBA
	Size   float64 // radius for orbs/glows, length for streaks
	Stroke float32
}

var projectileStyles = map[string]ProjectileStyle{
	"arrow":    {Shape: ShapeStreak, Color: color.RGBA{R: 210, G: 180, B: 140, A: 255}, Size: 14, Stroke: 2},
	"fireball": {Shape: ShapeGlow, Color: color.RGBA{R: 255, G: 120, B: 20, A: 255}, Size: 7},
	"bolt":     {Shape: ShapeStreak, Color: color.RGBA{R: 120, G: 220, B: 255, A: 255}, Size: 10, Stroke: 3},
	"ember":    {Shape: ShapeGlow, Color: color.RGBA{R: 255, G: 90, B: 40, A: 255}, Size: 6},
}

// DefaultProjectile is the orb drawn for unknown tags.
var DefaultProjectile = ProjectileStyle{Shape: ShapeOrb, Color: color.RGBA{R: 230, G: 230, B: 255, A: 255}, Size: 4}

// Projectile returns the style for a projectile tag.
func Projectile(tag string) ProjectileStyle {
	if s, ok := projectileStyles[tag]; ok {
		return s
	}
	return DefaultProjectile
}

// StreakEnd returns the tail point of a streak drawn behind (x, y).
func StreakEnd(x, y, angle, length float64) (float64, float64) {
	return x - math.Cos(angle)*length, y - math.Sin(angle)*length
}
