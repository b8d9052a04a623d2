package core

import (
	"math"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const bodySize = 20

// BodyData is a living thing in the area. Positions are body centers.
type BodyData struct {
	ID     messages.EntityID
	Kind   netconfig.EntityKind
	Name   string
	X, Y   float64
	VX, VY float64
	HP     int
	MaxHP  int
	Dead   bool
}

// WanderData drives a mob: it strolls around its home and respawns there.
type WanderData struct {
	HomeX, HomeY float64
	Timer        int
	Respawn      int
	Level        int
}

var (
	Body   = donburi.NewComponentType[BodyData]()
	Wander = donburi.NewComponentType[WanderData]()
)

// Mob tuning, in ticks at the default tick rate.
const (
	mobSpeed        = 1.5
	mobWanderRadius = 3 * netconfig.TileSize
	mobRespawnTicks = 200
	mobBaseHP       = 30
)

// spawnBody creates an entity with a Body and registers its collision box.
func (s *Server) spawnBody(kind netconfig.EntityKind, name string, x, y float64, hp int) donburi.Entity {
	s.nextEntity++
	entity := s.world.Create(Body)
	Body.Set(s.world.Entry(entity), &BodyData{
		ID:    s.nextEntity,
		Kind:  kind,
		Name:  name,
		X:     x,
		Y:     y,
		HP:    hp,
		MaxHP: hp,
	})

	obj := resolv.NewObject(x-bodySize/2, y-bodySize/2, bodySize, bodySize, tagBody)
	obj.SetShape(resolv.NewRectangle(0, 0, bodySize, bodySize))
	s.area.Space.Add(obj)
	s.objects[entity] = obj
	return entity
}

func (s *Server) removeBody(entity donburi.Entity) {
	if obj, ok := s.objects[entity]; ok {
		s.area.Space.Remove(obj)
		delete(s.objects, entity)
	}
	if s.world.Valid(entity) {
		s.world.Remove(entity)
	}
}

func (s *Server) spawnMobs() {
	for i, home := range s.area.MobHomes {
		level := 1 + i%3
		e := s.spawnBody(netconfig.EntityMob, "Ashling", home[0], home[1], mobBaseHP*level)
		s.world.Entry(e).AddComponent(Wander)
		Wander.Set(s.world.Entry(e), &WanderData{HomeX: home[0], HomeY: home[1], Level: level})
	}
	s.spawnBody(netconfig.EntityNPC, "Merchant", s.area.Merchant[0], s.area.Merchant[1], 1)
}

// moveBody slides the body by (dx, dy), stopping at solid tiles. Each axis
// is resolved on its own so bodies glide along walls.
func (s *Server) moveBody(entity donburi.Entity, dx, dy float64) {
	obj, ok := s.objects[entity]
	if !ok {
		return
	}
	b := Body.Get(s.world.Entry(entity))

	if dx != 0 {
		if check := obj.Check(dx, 0, tagSolid); check != nil {
			if solids := check.ObjectsByTags(tagSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		obj.X += dx
	}
	if dy != 0 {
		if check := obj.Check(0, dy, tagSolid); check != nil {
			if solids := check.ObjectsByTags(tagSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		obj.Y += dy
	}
	obj.Update()

	b.VX, b.VY = dx, dy
	b.X = obj.X + bodySize/2
	b.Y = obj.Y + bodySize/2
}

// teleportBody places the body without collision checks.
func (s *Server) teleportBody(entity donburi.Entity, x, y float64) {
	b := Body.Get(s.world.Entry(entity))
	b.X, b.Y = x, y
	if obj, ok := s.objects[entity]; ok {
		obj.X = x - bodySize/2
		obj.Y = y - bodySize/2
		obj.Update()
	}
}

func (s *Server) updateMobs() {
	Wander.Each(s.world, func(e *donburi.Entry) {
		w := Wander.Get(e)
		b := Body.Get(e)

		if b.Dead {
			w.Respawn--
			if w.Respawn <= 0 {
				b.Dead = false
				b.HP = b.MaxHP
				s.teleportBody(e.Entity(), w.HomeX, w.HomeY)
			}
			return
		}

		w.Timer--
		if w.Timer <= 0 {
			w.Timer = 20 + s.rng.IntN(40)
			angle := s.rng.Float64() * 2 * math.Pi
			if math.Hypot(b.X-w.HomeX, b.Y-w.HomeY) > mobWanderRadius {
				angle = math.Atan2(w.HomeY-b.Y, w.HomeX-b.X)
			}
			if s.rng.IntN(3) == 0 {
				b.VX, b.VY = 0, 0
			} else {
				b.VX = math.Cos(angle) * mobSpeed
				b.VY = math.Sin(angle) * mobSpeed
			}
		}
		if b.VX != 0 || b.VY != 0 {
			vx, vy := b.VX, b.VY
			s.moveBody(e.Entity(), vx, vy)
			// keep heading even when a wall ate the step
			b.VX, b.VY = vx, vy
		}
	})
}

func (b *BodyData) entity() messages.Entity {
	return messages.Entity{
		ID:    b.ID,
		Kind:  b.Kind,
		Name:  b.Name,
		X:     b.X,
		Y:     b.Y,
		VX:    b.VX,
		VY:    b.VY,
		HP:    b.HP,
		MaxHP: b.MaxHP,
		Dead:  b.Dead,
	}
}
