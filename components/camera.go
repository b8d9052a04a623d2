package components

import (
	"github.com/automoto/emberveil/view"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	View  view.Camera
	Ready bool // snapped onto the player at least once

	// Shake offset for this frame, kept apart so it never accumulates
	// into the follow position.
	ShakeX, ShakeY float64
}

// Frame is the camera to draw with, shake applied.
func (c *CameraData) Frame() view.Camera {
	v := c.View
	v.X += c.ShakeX
	v.Y += c.ShakeY
	return v
}

var Camera = donburi.NewComponentType[CameraData]()
