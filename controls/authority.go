package controls

// DeviceClass is the input device currently deciding facing and aim.
type DeviceClass int

const (
	DevicePointer DeviceClass = iota // keyboard and mouse
	DeviceTouch
	DeviceGamepad
)

func (d DeviceClass) String() string {
	switch d {
	case DevicePointer:
		return "pointer"
	case DeviceTouch:
		return "touch"
	case DeviceGamepad:
		return "gamepad"
	}
	return "unknown"
}

// Authority tracks which device class is authoritative. Transitions happen
// only through its event methods.
type Authority struct {
	class   DeviceClass
	gamepad int
	touches int
}

// NewAuthority starts pointer-authoritative.
func NewAuthority() *Authority {
	return &Authority{class: DevicePointer, gamepad: -1}
}

func (a *Authority) Class() DeviceClass { return a.class }

// GamepadConnected makes the new gamepad authoritative.
func (a *Authority) GamepadConnected(id int) {
	a.class = DeviceGamepad
	a.gamepad = id
}

// GamepadActivity makes the gamepad authoritative on any button or stick input.
func (a *Authority) GamepadActivity(id int) {
	a.class = DeviceGamepad
	a.gamepad = id
}

// GamepadDisconnected hands authority back to the pointer when the
// authoritative gamepad goes away.
func (a *Authority) GamepadDisconnected(id int) {
	if a.class == DeviceGamepad && a.gamepad == id {
		a.class = DevicePointer
		a.gamepad = -1
	}
}

// TouchStarted records a new touch point and makes touch authoritative.
func (a *Authority) TouchStarted() {
	a.touches++
	a.class = DeviceTouch
}

// TouchEnded records a released touch point.
func (a *Authority) TouchEnded() {
	if a.touches > 0 {
		a.touches--
	}
}

// ActiveTouches is the number of touch points currently down.
func (a *Authority) ActiveTouches() int { return a.touches }

// MouseMoved reclaims authority for the pointer unless a gamepad is
// authoritative or a touch is in progress.
func (a *Authority) MouseMoved() {
	if a.class == DeviceGamepad || a.touches > 0 {
		return
	}
	a.class = DevicePointer
}

// KeyOrClick reclaims authority for keyboard and mouse.
func (a *Authority) KeyOrClick() {
	if a.touches > 0 {
		return
	}
	a.class = DevicePointer
}
