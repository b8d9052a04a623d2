// Package view holds the frame math the renderer needs: camera easing,
// tile culling, depth ordering, fog and per-tag projectile styles. It has no
// ebiten dependency so it can be tested headless.
package view

import (
	"math"

	"github.com/automoto/emberveil/shared/gamemath"
)

// Camera is a centered 2D camera in world coordinates.
type Camera struct {
	X, Y          float64
	Width, Height float64
}

// Follow eases the camera toward a target by the smoothing fraction.
func (c *Camera) Follow(tx, ty, smoothing float64) {
	c.X = gamemath.Approach(c.X, tx, smoothing)
	c.Y = gamemath.Approach(c.Y, ty, smoothing)
}

// Snap moves the camera directly onto a point.
func (c *Camera) Snap(x, y float64) {
	c.X, c.Y = x, y
}

// Offset is the translation from world to screen space.
func (c Camera) Offset() (float64, float64) {
	return c.Width/2 - c.X, c.Height/2 - c.Y
}

// ToScreen converts a world position to screen pixels.
func (c Camera) ToScreen(x, y float64) (float64, float64) {
	ox, oy := c.Offset()
	return x + ox, y + oy
}

// ToWorld converts a screen position to world coordinates.
func (c Camera) ToWorld(sx, sy float64) (float64, float64) {
	ox, oy := c.Offset()
	return sx - ox, sy - oy
}

// Center is the screen center in pixels.
func (c Camera) Center() (float64, float64) {
	return c.Width / 2, c.Height / 2
}

// TileRange is a half-open range of tile coordinates.
type TileRange struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether the range covers no tiles.
func (r TileRange) Empty() bool {
	return r.X0 >= r.X1 || r.Y0 >= r.Y1
}

// Count is the number of tiles covered.
func (r TileRange) Count() int {
	if r.Empty() {
		return 0
	}
	return (r.X1 - r.X0) * (r.Y1 - r.Y0)
}

// VisibleTiles returns the tiles overlapping the camera viewport plus one
// tile of margin, clipped to the map.
func (c Camera) VisibleTiles(tileSize float64, mapW, mapH int) TileRange {
	if tileSize <= 0 {
		return TileRange{}
	}
	left := c.X - c.Width/2
	top := c.Y - c.Height/2
	r := TileRange{
		X0: int(math.Floor(left/tileSize)) - 1,
		Y0: int(math.Floor(top/tileSize)) - 1,
		X1: int(math.Ceil((left+c.Width)/tileSize)) + 1,
		Y1: int(math.Ceil((top+c.Height)/tileSize)) + 1,
	}
	r.X0 = gamemath.ClampInt(r.X0, 0, mapW)
	r.Y0 = gamemath.ClampInt(r.Y0, 0, mapH)
	r.X1 = gamemath.ClampInt(r.X1, 0, mapW)
	r.Y1 = gamemath.ClampInt(r.Y1, 0, mapH)
	return r
}

// OnScreen reports whether a world point with the given radius is within
// the viewport.
func (c Camera) OnScreen(x, y, radius float64) bool {
	sx, sy := c.ToScreen(x, y)
	return sx+radius >= 0 && sy+radius >= 0 && sx-radius <= c.Width && sy-radius <= c.Height
}

// Shake is a decaying oscillating camera offset.
type Shake struct {
	Intensity float64
	Duration  int
	Elapsed   int
}

// Step advances the shake one frame and returns the offset to apply.
func (s *Shake) Step() (dx, dy float64) {
	s.Elapsed++
	if s.Duration <= 0 {
		return 0, 0
	}
	progress := float64(s.Duration-s.Elapsed) / float64(s.Duration)
	if progress < 0 {
		progress = 0
	}
	i := s.Intensity * progress
	return math.Sin(float64(s.Elapsed)*1.1) * i, math.Cos(float64(s.Elapsed)*1.3) * i
}

// Done reports whether the shake has run out.
func (s *Shake) Done() bool {
	return s.Elapsed >= s.Duration
}
