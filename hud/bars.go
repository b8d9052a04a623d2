package hud

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BarEaseSeconds is how long a bar takes to reach a new value.
const BarEaseSeconds = 0.25

// EasedBar smooths a bar fraction toward its latest target.
type EasedBar struct {
	value  float32
	target float32
	tween  *gween.Tween
}

// Set retargets the bar. The first call jumps straight to the value.
func (b *EasedBar) Set(target float64, initial bool) {
	t := float32(target)
	if initial {
		b.value, b.target, b.tween = t, t, nil
		return
	}
	if t == b.target {
		return
	}
	b.target = t
	b.tween = gween.New(b.value, t, BarEaseSeconds, ease.OutQuad)
}

// Update advances the easing by dt seconds and returns the drawn fraction.
func (b *EasedBar) Update(dt float64) float64 {
	if b.tween != nil {
		v, done := b.tween.Update(float32(dt))
		b.value = v
		if done {
			b.value = b.target
			b.tween = nil
		}
	}
	return float64(b.value)
}

// Value is the current drawn fraction.
func (b *EasedBar) Value() float64 { return float64(b.value) }

// Bars eases the three HUD bars together.
type Bars struct {
	HP, MP, XP EasedBar
	primed     bool
}

// Set retargets all bars from a model.
func (b *Bars) Set(m Model) {
	b.HP.Set(m.HP.Fraction, !b.primed)
	b.MP.Set(m.MP.Fraction, !b.primed)
	b.XP.Set(m.XP.Fraction, !b.primed)
	b.primed = true
}

// Update advances all bars.
func (b *Bars) Update(dt float64) {
	b.HP.Update(dt)
	b.MP.Update(dt)
	b.XP.Update(dt)
}
