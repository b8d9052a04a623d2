package controls

import (
	"testing"
	"testing/fstest"
)

func TestGamepadDeadzone(t *testing.T) {
	r := NewGamepadReader(0.3)
	f := r.Read(GamepadSample{StickX: 0.05, StickY: 0.05})
	if f.X != 0 || f.Y != 0 {
		t.Errorf("stick inside deadzone resolved to (%v,%v), want (0,0)", f.X, f.Y)
	}
	if f.Active {
		t.Error("stick inside deadzone should not count as activity")
	}

	f = r.Read(GamepadSample{StickX: 0.5, StickY: -0.2})
	if f.X != 0.5 || f.Y != -0.2 {
		t.Errorf("stick outside deadzone = (%v,%v)", f.X, f.Y)
	}
}

func TestGamepadDPadOverridesStick(t *testing.T) {
	r := NewGamepadReader(0.3)
	var s GamepadSample
	s.StickX = 0.9
	s.Buttons[PadLeft] = true
	s.Buttons[PadUp] = true

	f := r.Read(s)
	if f.X != -1 || f.Y != -1 {
		t.Errorf("dpad should override stick, got (%v,%v)", f.X, f.Y)
	}
}

func TestGamepadEdgeDetection(t *testing.T) {
	r := NewGamepadReader(0.3)
	var s GamepadSample
	s.Buttons[PadSouth] = true

	if f := r.Read(s); !f.Pressed[PadSouth] {
		t.Error("first frame should be a press edge")
	}
	if f := r.Read(s); f.Pressed[PadSouth] || !f.Held[PadSouth] {
		t.Error("held button must not re-trigger")
	}
	r.Read(GamepadSample{})
	if f := r.Read(s); !f.Pressed[PadSouth] {
		t.Error("press after release should trigger again")
	}
}

func TestKeyAxis(t *testing.T) {
	tests := []struct {
		neg, pos bool
		want     float64
	}{
		{false, false, 0},
		{true, false, -1},
		{false, true, 1},
		{true, true, 0},
	}
	for _, tt := range tests {
		if got := KeyAxis(tt.neg, tt.pos); got != tt.want {
			t.Errorf("KeyAxis(%v,%v) = %v, want %v", tt.neg, tt.pos, got, tt.want)
		}
	}
}

func TestAuthorityTransitions(t *testing.T) {
	a := NewAuthority()
	if a.Class() != DevicePointer {
		t.Fatalf("initial class = %v", a.Class())
	}

	a.GamepadConnected(0)
	if a.Class() != DeviceGamepad {
		t.Fatalf("after connect = %v", a.Class())
	}

	a.MouseMoved()
	if a.Class() != DeviceGamepad {
		t.Error("mouse motion must not reclaim authority from an active gamepad")
	}

	a.KeyOrClick()
	if a.Class() != DevicePointer {
		t.Error("keyboard input should reclaim authority")
	}

	a.GamepadActivity(0)
	a.GamepadDisconnected(1)
	if a.Class() != DeviceGamepad {
		t.Error("disconnecting another pad must not change authority")
	}
	a.GamepadDisconnected(0)
	if a.Class() != DevicePointer {
		t.Error("disconnecting the active pad should return to pointer")
	}

	a.TouchStarted()
	if a.Class() != DeviceTouch {
		t.Fatalf("after touch = %v", a.Class())
	}
	a.MouseMoved()
	if a.Class() != DeviceTouch {
		t.Error("synthetic mouse motion during a touch must be ignored")
	}
	a.TouchEnded()
	a.MouseMoved()
	if a.Class() != DevicePointer {
		t.Error("mouse motion with no touch or gamepad should be authoritative")
	}
}

func testLayout() *Layout {
	return NewLayout(640, 360, []Zone{
		{Name: "pad", Kind: ZoneMovePad, X: 20, Y: 240, W: 100, H: 100},
		{Name: "attack", Kind: ZoneButton, Action: ActionAttack, X: 540, Y: 260, W: 60, H: 60},
		{Name: "bag", Kind: ZoneButton, Action: ActionInventory, X: 300, Y: 0, W: 200, H: 200},
		{Name: "slot3", Kind: ZoneSlot, Index: 3, X: 340, Y: 40, W: 20, H: 20},
	})
}

func TestLayoutHitTest(t *testing.T) {
	l := testLayout()

	tests := []struct {
		x, y float64
		want string
		ok   bool
	}{
		{70, 290, "pad", true},
		{560, 280, "attack", true},
		{345, 45, "slot3", true}, // slot sits above the bag zone
		{310, 10, "bag", true},
		{250, 100, "", false},
		{121, 290, "", false}, // same broadphase cell as the pad, outside it
	}
	for _, tt := range tests {
		z, ok := l.HitTest(tt.x, tt.y)
		if ok != tt.ok || z.Name != tt.want {
			t.Errorf("HitTest(%v,%v) = %q,%v want %q,%v", tt.x, tt.y, z.Name, ok, tt.want, tt.ok)
		}
	}
}

func TestTouchClassificationIsSticky(t *testing.T) {
	tr := NewTouchTracker(testLayout())

	f := tr.Update([]TouchPoint{{ID: 1, X: 560, Y: 280}})
	if !f.Pressed[ActionAttack] || !f.Held[ActionAttack] || f.Started != 1 {
		t.Fatalf("attack touch not classified: %+v", f)
	}

	// Dragging off the button keeps the classification.
	f = tr.Update([]TouchPoint{{ID: 1, X: 200, Y: 100}})
	if !f.Held[ActionAttack] || f.Pressed[ActionAttack] {
		t.Error("touch lost its classification while moving")
	}

	f = tr.Update(nil)
	if f.Held[ActionAttack] || f.Ended != 1 || f.Active != 0 {
		t.Errorf("release not tracked: %+v", f)
	}
}

func TestTouchMultiPointPadAndButton(t *testing.T) {
	tr := NewTouchTracker(testLayout())
	tr.PadRadius = 50

	f := tr.Update([]TouchPoint{
		{ID: 1, X: 70 + 25, Y: 290},
		{ID: 2, X: 560, Y: 280},
	})
	if f.X != 0.5 || f.Y != 0 {
		t.Errorf("pad axes = (%v,%v), want (0.5,0)", f.X, f.Y)
	}
	if !f.Held[ActionAttack] || f.Active != 2 {
		t.Errorf("concurrent button touch missing: %+v", f)
	}

	f = tr.Update([]TouchPoint{{ID: 1, X: 70 + 200, Y: 290}})
	if f.X != 1 || f.Y != 0 {
		t.Errorf("pad axes should clamp to unit length, got (%v,%v)", f.X, f.Y)
	}
}

func TestTouchSlotTap(t *testing.T) {
	tr := NewTouchTracker(testLayout())
	f := tr.Update([]TouchPoint{{ID: 4, X: 345, Y: 45}})
	if f.Slot != 3 {
		t.Errorf("slot = %d, want 3", f.Slot)
	}
	if f = tr.Update([]TouchPoint{{ID: 4, X: 345, Y: 45}}); f.Slot != -1 {
		t.Error("slot tap must only fire on touch start")
	}
}

func TestReaderGamepadAuthorityDrivesAxes(t *testing.T) {
	r := NewReader(0.3, nil)
	var bindings [ActionCount][]PadButton
	bindings[ActionAttack] = []PadButton{PadWest}

	pad := GamepadSample{ID: 0, StickX: 0.8}
	pad.Buttons[PadWest] = true
	raw := Raw{Gamepad: &pad, PadConnected: []int{0}, PadBindings: bindings}
	raw.Keys[ActionMoveLeft] = true

	s := r.Sample(raw)
	if s.Device != DeviceGamepad {
		t.Fatalf("device = %v", s.Device)
	}
	if s.X != 0.8 {
		t.Errorf("axes should come from the gamepad, X = %v", s.X)
	}
	if !s.JustPressed(ActionAttack) {
		t.Error("pad binding did not map to attack")
	}

	s = r.Sample(Raw{Gamepad: &pad, PadBindings: bindings})
	if s.JustPressed(ActionAttack) {
		t.Error("held attack re-triggered")
	}
}

func TestReaderStickNavigates(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		want   Action
		wantOK bool
	}{
		{"down", 0, 1, ActionNavDown, true},
		{"up", 0.2, -0.9, ActionNavUp, true},
		{"left", -0.9, 0.4, ActionNavLeft, true},
		{"right", 0.7, 0.1, ActionNavRight, true},
		{"inside deadzone", 0.1, 0.1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(0.3, nil)
			var bindings [ActionCount][]PadButton
			bindings[ActionNavDown] = []PadButton{PadDown}

			pad := GamepadSample{StickX: tt.x, StickY: tt.y}
			s := r.Sample(Raw{Gamepad: &pad, PadConnected: []int{0}, PadBindings: bindings})
			nav := []Action{ActionNavUp, ActionNavDown, ActionNavLeft, ActionNavRight}
			for _, a := range nav {
				want := tt.wantOK && a == tt.want
				if s.Held[a] != want {
					t.Errorf("held[%v] = %v, want %v", a, s.Held[a], want)
				}
			}
			if tt.wantOK && !s.JustPressed(tt.want) {
				t.Error("stick push should be a fresh press")
			}
		})
	}
}

func TestReaderKeyboardAxes(t *testing.T) {
	r := NewReader(0.3, nil)
	raw := Raw{KeyOrClick: true}
	raw.Keys[ActionMoveUp] = true
	raw.Keys[ActionMoveRight] = true

	s := r.Sample(raw)
	if s.Device != DevicePointer || s.X != 1 || s.Y != -1 {
		t.Errorf("keyboard sample = %+v", s)
	}
	if s.TouchSlot != -1 {
		t.Errorf("TouchSlot = %d without touch", s.TouchSlot)
	}
}

const layoutTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="12" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="zones">
  <object id="1" name="pad" x="16" y="240" width="96" height="96">
   <properties><property name="kind" value="pad"/></properties>
  </object>
  <object id="2" name="attack" x="560" y="272" width="64" height="64">
   <properties><property name="kind" value="button"/><property name="action" value="attack"/></properties>
  </object>
  <object id="3" name="slot0" x="200" y="40" width="24" height="24">
   <properties><property name="kind" value="slot"/><property name="index" type="int" value="0"/></properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"touch.tmx": &fstest.MapFile{Data: []byte(layoutTMX)}}
	l, err := LoadLayout(fsys, "touch.tmx")
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	if len(l.Zones) != 3 {
		t.Fatalf("zones = %d, want 3", len(l.Zones))
	}
	z, ok := l.HitTest(580, 300)
	if !ok || z.Kind != ZoneButton || z.Action != ActionAttack {
		t.Errorf("attack zone = %+v, %v", z, ok)
	}
	z, ok = l.HitTest(210, 50)
	if !ok || z.Kind != ZoneSlot || z.Index != 0 {
		t.Errorf("slot zone = %+v, %v", z, ok)
	}
}

func TestLoadLayoutRejectsUnknownAction(t *testing.T) {
	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="1" height="1" tilewidth="32" tileheight="32">
 <objectgroup id="1" name="zones">
  <object id="1" name="x" x="0" y="0" width="8" height="8">
   <properties><property name="action" value="teleport"/></properties>
  </object>
 </objectgroup>
</map>
`
	fsys := fstest.MapFS{"bad.tmx": &fstest.MapFile{Data: []byte(bad)}}
	if _, err := LoadLayout(fsys, "bad.tmx"); err == nil {
		t.Error("expected an error for an unknown action")
	}
}
