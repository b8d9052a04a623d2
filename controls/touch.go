package controls

import (
	"math"

	"github.com/automoto/emberveil/shared/gamemath"
	"github.com/solarlune/resolv"
)

// ZoneKind distinguishes the on-screen touch zone types.
type ZoneKind int

const (
	ZoneButton ZoneKind = iota
	ZoneMovePad
	ZoneSlot
)

const zoneTag = "zone"

// Zone is a rectangular on-screen touch target.
type Zone struct {
	Name       string
	Kind       ZoneKind
	Action     Action // for ZoneButton
	Index      int    // for ZoneSlot
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the zone.
func (z Zone) Contains(x, y float64) bool {
	return x >= z.X && x < z.X+z.W && y >= z.Y && y < z.Y+z.H
}

// Center returns the zone's midpoint.
func (z Zone) Center() (float64, float64) {
	return z.X + z.W/2, z.Y + z.H/2
}

// Layout indexes touch zones in a resolv space for hit testing.
type Layout struct {
	Zones []Zone
	space *resolv.Space
	probe *resolv.Object
}

// NewLayout builds a layout for a screen of the given size.
func NewLayout(width, height int, zones []Zone) *Layout {
	l := &Layout{
		Zones: zones,
		space: resolv.NewSpace(width, height, 16, 16),
	}
	for i := range zones {
		z := zones[i]
		obj := resolv.NewObject(z.X, z.Y, z.W, z.H, zoneTag)
		obj.SetShape(resolv.NewRectangle(0, 0, z.W, z.H))
		obj.Data = i
		l.space.Add(obj)
	}
	l.probe = resolv.NewObject(0, 0, 1, 1)
	l.space.Add(l.probe)
	return l
}

// HitTest returns the topmost zone under (x, y). Later zones win over
// earlier ones so slots can sit on top of a panel background zone.
func (l *Layout) HitTest(x, y float64) (Zone, bool) {
	l.probe.X = x
	l.probe.Y = y
	l.probe.Update()

	best := -1
	if check := l.probe.Check(0, 0, zoneTag); check != nil {
		for _, obj := range check.Objects {
			i, ok := obj.Data.(int)
			if !ok || !l.Zones[i].Contains(x, y) {
				continue
			}
			if i > best {
				best = i
			}
		}
	}
	if best < 0 {
		return Zone{}, false
	}
	return l.Zones[best], true
}

// TouchPoint is one active touch this frame.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// TouchFrame is the result of one tracker update.
type TouchFrame struct {
	X, Y    float64
	Held    [ActionCount]bool
	Pressed [ActionCount]bool
	Slot    int // inventory slot tapped this frame, -1 if none
	Started int // touches that began this frame
	Ended   int // touches released this frame
	Active  int
}

// TouchTracker classifies each touch on start and keeps that classification
// until the touch is released.
type TouchTracker struct {
	layout  *Layout
	touches map[int]Zone
	// PadRadius is the distance from the pad center that maps to full tilt.
	PadRadius float64
}

func NewTouchTracker(layout *Layout) *TouchTracker {
	return &TouchTracker{
		layout:    layout,
		touches:   make(map[int]Zone),
		PadRadius: 48,
	}
}

// Update consumes the full set of touches currently down.
func (t *TouchTracker) Update(points []TouchPoint) TouchFrame {
	f := TouchFrame{Slot: -1}

	seen := make(map[int]bool, len(points))
	for _, p := range points {
		seen[p.ID] = true
		zone, known := t.touches[p.ID]
		if !known {
			f.Started++
			var ok bool
			zone, ok = t.layout.HitTest(p.X, p.Y)
			if !ok {
				zone = Zone{Kind: ZoneButton, Action: ActionNone}
			}
			t.touches[p.ID] = zone
			switch zone.Kind {
			case ZoneButton:
				f.Pressed[zone.Action] = true
			case ZoneSlot:
				f.Slot = zone.Index
			}
		}

		switch zone.Kind {
		case ZoneButton:
			f.Held[zone.Action] = true
		case ZoneMovePad:
			f.X, f.Y = t.padAxes(zone, p.X, p.Y)
		}
	}

	for id := range t.touches {
		if !seen[id] {
			delete(t.touches, id)
			f.Ended++
		}
	}

	f.Held[ActionNone] = false
	f.Pressed[ActionNone] = false
	f.Active = len(t.touches)
	return f
}

func (t *TouchTracker) padAxes(pad Zone, x, y float64) (float64, float64) {
	cx, cy := pad.Center()
	r := t.PadRadius
	if r <= 0 {
		r = math.Min(pad.W, pad.H) / 2
	}
	return gamemath.ClampUnit((x-cx)/r, (y-cy)/r)
}
