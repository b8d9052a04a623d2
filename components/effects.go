package components

import (
	"github.com/automoto/emberveil/feedback"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/automoto/emberveil/view"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	view.Shake
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// EffectData is a transient visual effect in world space
type EffectData struct {
	Kind  netconfig.EffectKind
	X, Y  float64
	Angle float64
	Style feedback.EffectStyle
}

var Effect = donburi.NewComponentType[EffectData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int // frames until destruction
	Life            int // total frames, for progress
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
