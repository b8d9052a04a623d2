// Package feedback decides how server-pushed events look and sound on the
// client: floating text styling and motion, and visual effect lifetimes.
package feedback

import (
	"image/color"
	"strings"

	"github.com/automoto/emberveil/shared/netconfig"
)

// Cue is a sound cue triggered alongside a visual.
type Cue int

const (
	CueNone Cue = iota
	CueHit
	CueLevelUp
	CueMiss
	CueHeal
	CueGold
	CueSwing
	CueSpin
	CueBurst
	CueDash
	CueChat
	CueShop
	CueNavigate
	CueConfirm
)

// TextStyle is how a floating text renders and moves.
type TextStyle struct {
	Kind netconfig.TextKind
	// Color is used only when HasColor is set; otherwise the renderer's
	// default text color applies.
	Color    color.RGBA
	HasColor bool
	Large    bool
	Rise     float64 // initial vertical speed, pixels per frame (negative is up)
	Life     int     // frames
	Cue      Cue
}

var (
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Gold      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	DamageRed = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	HealGreen = color.RGBA{R: 90, G: 230, B: 110, A: 255}
	MissGrey  = color.RGBA{R: 170, G: 170, B: 170, A: 255}
)

var styles = map[netconfig.TextKind]TextStyle{
	netconfig.TextGeneric: {Rise: -0.3, Life: 80},
	netconfig.TextDamage:  {Color: DamageRed, HasColor: true, Rise: -0.3, Life: 80},
	netconfig.TextCrit:    {Color: Magenta, HasColor: true, Large: true, Rise: -0.4, Life: 100, Cue: CueHit},
	netconfig.TextHeal:    {Color: HealGreen, HasColor: true, Rise: -0.3, Life: 80, Cue: CueHeal},
	netconfig.TextLevelUp: {Color: Gold, HasColor: true, Large: true, Rise: -0.2, Life: 150, Cue: CueLevelUp},
	netconfig.TextMiss:    {Color: MissGrey, HasColor: true, Rise: -0.25, Life: 60, Cue: CueMiss},
	netconfig.TextGold:    {Color: Gold, HasColor: true, Rise: -0.3, Life: 80, Cue: CueGold},
}

// Classify picks the style for a floating text. An explicit kind wins; a
// generic kind falls back to looking for markers in the value.
func Classify(kind netconfig.TextKind, value string) TextStyle {
	if kind == netconfig.TextGeneric {
		kind = sniff(value)
	}
	s, ok := styles[kind]
	if !ok {
		s = styles[netconfig.TextGeneric]
		kind = netconfig.TextGeneric
	}
	s.Kind = kind
	return s
}

func sniff(value string) netconfig.TextKind {
	v := strings.ToUpper(value)
	switch {
	case strings.Contains(v, "LEVEL UP"):
		return netconfig.TextLevelUp
	case strings.Contains(v, "CRIT"):
		return netconfig.TextCrit
	case strings.Contains(v, "MISS"):
		return netconfig.TextMiss
	}
	return netconfig.TextGeneric
}

// Gravity is the per-frame deceleration applied to rising text.
const Gravity = 0.004

// FloatingText is the motion state of one floating text.
type FloatingText struct {
	X, Y    float64
	VY      float64
	Life    int
	MaxLife int
}

// NewFloatingText starts a text at (x, y) with the style's motion.
func NewFloatingText(x, y float64, s TextStyle) FloatingText {
	return FloatingText{X: x, Y: y, VY: s.Rise, Life: s.Life, MaxLife: s.Life}
}

// Step advances one frame and reports whether the text is still alive.
// Rising text decelerates but never starts falling.
func (f *FloatingText) Step() bool {
	f.Y += f.VY
	if f.VY < 0 {
		f.VY += Gravity
		if f.VY > 0 {
			f.VY = 0
		}
	}
	if f.Life > 0 {
		f.Life--
	}
	return f.Life > 0
}

// Alpha is the opacity, proportional to remaining life.
func (f *FloatingText) Alpha() float64 {
	if f.MaxLife <= 0 {
		return 0
	}
	return float64(f.Life) / float64(f.MaxLife)
}
