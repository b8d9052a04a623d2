package controls

import "math"

// PadButton is a button on a standard-layout gamepad.
type PadButton int

const (
	PadSouth PadButton = iota // A / Cross
	PadEast                   // B / Circle
	PadWest                   // X / Square
	PadNorth                  // Y / Triangle
	PadLeftBumper
	PadRightBumper
	PadLeftTrigger
	PadRightTrigger
	PadSelect
	PadStart
	PadUp
	PadDown
	PadLeft
	PadRight
	PadButtonCount
)

// GamepadSample is one frame of raw gamepad state.
type GamepadSample struct {
	ID             int
	StickX, StickY float64
	Buttons        [PadButtonCount]bool
}

// GamepadFrame is the filtered result of one sample.
type GamepadFrame struct {
	X, Y    float64
	Held    [PadButtonCount]bool
	Pressed [PadButtonCount]bool
	// Active is true when the pad produced any input this frame.
	Active bool
}

// GamepadReader applies the stick deadzone and D-pad override and keeps the
// previous frame's buttons for edge detection.
type GamepadReader struct {
	Deadzone float64
	prev     [PadButtonCount]bool
}

func NewGamepadReader(deadzone float64) *GamepadReader {
	return &GamepadReader{Deadzone: deadzone}
}

// Read filters one sample. It must be called exactly once per frame.
func (r *GamepadReader) Read(s GamepadSample) GamepadFrame {
	var f GamepadFrame

	if math.Hypot(s.StickX, s.StickY) >= r.Deadzone {
		f.X, f.Y = s.StickX, s.StickY
		f.Active = true
	}

	if s.Buttons[PadUp] || s.Buttons[PadDown] || s.Buttons[PadLeft] || s.Buttons[PadRight] {
		f.X = KeyAxis(s.Buttons[PadLeft], s.Buttons[PadRight])
		f.Y = KeyAxis(s.Buttons[PadUp], s.Buttons[PadDown])
	}

	for b := PadButton(0); b < PadButtonCount; b++ {
		held := s.Buttons[b]
		f.Held[b] = held
		f.Pressed[b] = held && !r.prev[b]
		if held {
			f.Active = true
		}
	}
	r.prev = s.Buttons
	return f
}

// Reset forgets the previous frame, e.g. after the pad disconnects.
func (r *GamepadReader) Reset() {
	r.prev = [PadButtonCount]bool{}
}

// KeyAxis turns an opposing key pair into -1, 0 or 1.
func KeyAxis(negative, positive bool) float64 {
	switch {
	case negative && !positive:
		return -1
	case positive && !negative:
		return 1
	}
	return 0
}
