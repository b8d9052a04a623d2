package controls

import "math"

// Raw is everything the polling glue gathers from the platform in one frame.
type Raw struct {
	// Keys holds actions bound to keyboard keys or mouse buttons.
	Keys [ActionCount]bool
	// KeyOrClick is true when a key or mouse button went down this frame.
	KeyOrClick bool

	PointerX, PointerY float64
	PointerMoved       bool

	Gamepad         *GamepadSample // nil when no gamepad is connected
	PadConnected    []int
	PadDisconnected []int
	PadBindings     [ActionCount][]PadButton
	Touches         []TouchPoint
}

// Reader merges the device readers into a State.
type Reader struct {
	Authority *Authority
	Pad       *GamepadReader
	Touch     *TouchTracker // nil when the platform has no touch layout

	prev [ActionCount]bool
}

func NewReader(deadzone float64, layout *Layout) *Reader {
	r := &Reader{
		Authority: NewAuthority(),
		Pad:       NewGamepadReader(deadzone),
	}
	if layout != nil {
		r.Touch = NewTouchTracker(layout)
	}
	return r
}

// Sample produces this frame's State. Axes come from the authoritative
// device; held actions are merged across all devices.
func (r *Reader) Sample(raw Raw) State {
	a := r.Authority
	for _, id := range raw.PadDisconnected {
		a.GamepadDisconnected(id)
		r.Pad.Reset()
	}
	for _, id := range raw.PadConnected {
		a.GamepadConnected(id)
	}

	s := State{TouchSlot: -1, PointerX: raw.PointerX, PointerY: raw.PointerY}
	held := raw.Keys

	keyX := KeyAxis(raw.Keys[ActionMoveLeft], raw.Keys[ActionMoveRight])
	keyY := KeyAxis(raw.Keys[ActionMoveUp], raw.Keys[ActionMoveDown])
	if raw.KeyOrClick {
		a.KeyOrClick()
	}
	if raw.PointerMoved {
		a.MouseMoved()
	}

	var padX, padY float64
	if raw.Gamepad != nil {
		pf := r.Pad.Read(*raw.Gamepad)
		if pf.Active {
			a.GamepadActivity(raw.Gamepad.ID)
		}
		padX, padY = pf.X, pf.Y
		if nav, ok := stickNav(padX, padY); ok {
			held[nav] = true
		}
		for action, buttons := range raw.PadBindings {
			for _, b := range buttons {
				if pf.Held[b] {
					held[action] = true
				}
			}
		}
	}

	var touchX, touchY float64
	if r.Touch != nil {
		tf := r.Touch.Update(raw.Touches)
		for i := 0; i < tf.Started; i++ {
			a.TouchStarted()
		}
		for i := 0; i < tf.Ended; i++ {
			a.TouchEnded()
		}
		touchX, touchY = tf.X, tf.Y
		s.TouchSlot = tf.Slot
		for action := range tf.Held {
			if tf.Held[action] {
				held[action] = true
			}
		}
	}

	s.Device = a.Class()
	switch s.Device {
	case DeviceGamepad:
		s.X, s.Y = padX, padY
	case DeviceTouch:
		s.X, s.Y = touchX, touchY
	default:
		s.X, s.Y = keyX, keyY
	}
	// A device that is not authoritative can still move the player while
	// the authoritative one is idle.
	if s.X == 0 && s.Y == 0 {
		switch {
		case keyX != 0 || keyY != 0:
			s.X, s.Y = keyX, keyY
		case padX != 0 || padY != 0:
			s.X, s.Y = padX, padY
		case touchX != 0 || touchY != 0:
			s.X, s.Y = touchX, touchY
		}
	}

	s.Held = held
	for i := range held {
		s.Pressed[i] = held[i] && !r.prev[i]
	}
	r.prev = held
	return s
}

// stickNav maps a deadzone-filtered stick onto the navigation action of its
// dominant axis. Ties go to the vertical axis.
func stickNav(x, y float64) (Action, bool) {
	switch {
	case x == 0 && y == 0:
		return 0, false
	case math.Abs(y) >= math.Abs(x) && y < 0:
		return ActionNavUp, true
	case math.Abs(y) >= math.Abs(x):
		return ActionNavDown, true
	case x < 0:
		return ActionNavLeft, true
	}
	return ActionNavRight, true
}
