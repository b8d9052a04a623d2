package aim

import (
	"math"
	"testing"

	"github.com/automoto/emberveil/controls"
	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
)

const tile = 32.0

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func baseInput(device controls.DeviceClass) Input {
	return Input{
		Device:    device,
		PointerX:  320,
		PointerY:  80,
		CenterX:   320,
		CenterY:   180,
		Player:    messages.Entity{ID: 1, X: 100, Y: 100},
		HasPlayer: true,
	}
}

func TestPointerAngleIgnoresEnemies(t *testing.T) {
	r := NewResolver(8, tile)
	in := baseInput(controls.DevicePointer)
	in.Entities = []messages.Entity{
		{ID: 2, Kind: netconfig.EntityMob, X: 110, Y: 100},
	}
	in.AxisX = 1

	want := -math.Pi / 2 // pointer is straight above center
	attack, ok := r.AttackAngle(in)
	if !ok || !near(attack, want) {
		t.Errorf("attack = %v, want %v", attack, want)
	}
	dash, _ := r.DashAngle(in)
	look, _ := r.LookAngle(in)
	if !near(dash, want) || !near(look, want) {
		t.Errorf("dash = %v, look = %v, want %v", dash, look, want)
	}
}

func TestPointerWorksWithoutPlayer(t *testing.T) {
	r := NewResolver(8, tile)
	in := baseInput(controls.DevicePointer)
	in.HasPlayer = false
	if _, ok := r.AttackAngle(in); !ok {
		t.Error("pointer aim should not need a player entity")
	}
}

func TestAttackTargetsNearestHostile(t *testing.T) {
	r := NewResolver(8, tile)
	for _, device := range []controls.DeviceClass{controls.DeviceGamepad, controls.DeviceTouch} {
		in := baseInput(device)
		in.AxisX = -1 // moving left; dash should follow this
		in.Entities = []messages.Entity{
			in.Player,
			{ID: 2, Kind: netconfig.EntityMob, X: 100, Y: 100 + 3*tile},  // south, farther
			{ID: 3, Kind: netconfig.EntityMob, X: 100 + 2*tile, Y: 100},  // east, nearest
			{ID: 4, Kind: netconfig.EntityNPC, X: 101, Y: 100},           // excluded kind
			{ID: 5, Kind: netconfig.EntityResource, X: 100, Y: 99},       // excluded kind
			{ID: 6, Kind: netconfig.EntityStatic, X: 99, Y: 100},         // excluded kind
			{ID: 7, Kind: netconfig.EntityMob, X: 100, Y: 101, Dead: true}, // dead
		}

		attack, ok := r.AttackAngle(in)
		if !ok || !near(attack, 0) {
			t.Errorf("%v: attack = %v, want 0 (east target)", device, attack)
		}
		dash, _ := r.DashAngle(in)
		if !near(dash, math.Pi) {
			t.Errorf("%v: dash = %v, want pi (movement direction)", device, dash)
		}
	}
}

func TestAttackIgnoresTargetsOutsideRadius(t *testing.T) {
	r := NewResolver(8, tile)
	in := baseInput(controls.DeviceGamepad)
	in.AxisY = 1
	in.Entities = []messages.Entity{
		{ID: 2, Kind: netconfig.EntityMob, X: 100 + 8*tile + 1, Y: 100},
	}
	attack, _ := r.AttackAngle(in)
	if !near(attack, math.Pi/2) {
		t.Errorf("attack = %v, want movement direction pi/2", attack)
	}
}

func TestAttackSkipsAllies(t *testing.T) {
	r := NewResolver(8, tile)

	in := baseInput(controls.DeviceGamepad)
	in.AxisY = 1
	in.Entities = []messages.Entity{
		in.Player,
		{ID: 2, Kind: netconfig.EntityPlayer, X: 100 - tile, Y: 100},
	}
	attack, ok := r.AttackAngle(in)
	if !ok || !near(attack, math.Pi/2) {
		t.Errorf("lone ally: attack = %v, want movement direction pi/2", attack)
	}

	in = baseInput(controls.DeviceTouch)
	in.Entities = []messages.Entity{
		in.Player,
		{ID: 2, Kind: netconfig.EntityPlayer, X: 100 - tile, Y: 100},  // west, closer
		{ID: 3, Kind: netconfig.EntityMob, X: 100, Y: 100 + 4*tile},   // south
	}
	attack, _ = r.AttackAngle(in)
	if !near(attack, math.Pi/2) {
		t.Errorf("ally and mob: attack = %v, want pi/2 (the mob)", attack)
	}
}

func TestAttackRadiusIsInclusive(t *testing.T) {
	r := NewResolver(8, tile)
	in := baseInput(controls.DeviceGamepad)
	in.Entities = []messages.Entity{
		{ID: 2, Kind: netconfig.EntityMob, X: 100, Y: 100 - 8*tile},
	}
	attack, _ := r.AttackAngle(in)
	if !near(attack, -math.Pi/2) {
		t.Errorf("attack = %v, want -pi/2", attack)
	}
}

func TestFallbacks(t *testing.T) {
	r := NewResolver(8, tile)

	in := baseInput(controls.DeviceGamepad)
	in.AxisX, in.AxisY = 0.05, 0.05 // inside the movement deadzone
	in.Player.VX, in.Player.VY = 0, -2
	got, _ := r.DashAngle(in)
	if !near(got, -math.Pi/2) {
		t.Errorf("velocity fallback = %v, want -pi/2", got)
	}

	in.Player.VX, in.Player.VY = 0, 0
	got, _ = r.DashAngle(in)
	if got != 0 {
		t.Errorf("zero velocity fallback = %v, want 0", got)
	}
}

func TestNoPlayerOffPointer(t *testing.T) {
	r := NewResolver(8, tile)
	in := baseInput(controls.DeviceTouch)
	in.HasPlayer = false
	if _, ok := r.AttackAngle(in); ok {
		t.Error("attack should report no target without a player")
	}
	if _, ok := r.DashAngle(in); ok {
		t.Error("dash should report no target without a player")
	}
}
