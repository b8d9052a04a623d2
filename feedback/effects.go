package feedback

import (
	"image/color"

	"github.com/automoto/emberveil/shared/netconfig"
)

// EffectStyle describes a transient visual effect.
type EffectStyle struct {
	Cue    Cue
	Life   int     // frames
	Radius float64 // world units at full size
	Arc    float64 // radians swept; 0 draws a full circle
	Color  color.RGBA
}

var effectStyles = map[netconfig.EffectKind]EffectStyle{
	netconfig.EffectMeleeSwing: {Cue: CueSwing, Life: 12, Radius: 40, Arc: 2.0, Color: color.RGBA{R: 240, G: 240, B: 255, A: 200}},
	netconfig.EffectSpinAttack: {Cue: CueSpin, Life: 20, Radius: 56, Color: color.RGBA{R: 200, G: 220, B: 255, A: 180}},
	netconfig.EffectAreaBurst:  {Cue: CueBurst, Life: 30, Radius: 96, Color: color.RGBA{R: 255, G: 140, B: 40, A: 160}},
	netconfig.EffectDash:       {Cue: CueDash, Life: 15, Radius: 24, Color: color.RGBA{R: 160, G: 200, B: 255, A: 140}},
}

// Effect returns the style for an effect kind. Unknown kinds get a short
// silent flash.
func Effect(kind netconfig.EffectKind) EffectStyle {
	if s, ok := effectStyles[kind]; ok {
		return s
	}
	return EffectStyle{Life: 10, Radius: 16, Color: color.RGBA{R: 255, G: 255, B: 255, A: 120}}
}

// Progress is how far through its life an effect is, from 0 to 1.
func Progress(remaining, life int) float64 {
	if life <= 0 {
		return 1
	}
	p := 1 - float64(remaining)/float64(life)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
