package core

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/automoto/emberveil/shared/gamemath"
	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/yohamta/donburi"
)

// Combat tuning. Durations are in ticks.
const (
	meleeRange      = 52.0
	meleeArc        = math.Pi / 3 // half-angle
	spinRange       = 64.0
	burstDistance   = 96.0
	burstRadius     = 48.0
	emberSpeed      = 9.0
	emberLifetime   = 30
	dashStep        = 16.0
	dashSteps       = 5
	attackCooldown  = 8
	skillCooldown   = 20
	dashCooldown    = 30
	skillManaCost   = 8
	manaRegenTicks  = 20
	lootDropPercent = 40
)

// projectile is an in-flight ember bolt.
type projectile struct {
	id     uint32
	owner  *session
	x, y   float64
	angle  float64
	ttl    int
	damage int
}

func (p *projectile) wire() messages.Projectile {
	return messages.Projectile{ID: p.id, Tag: "ember", X: p.x, Y: p.y, Angle: p.angle}
}

// angleDiff is the absolute difference between two angles in [0, pi].
func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// rollDamage returns the damage of one hit and whether it was a critical.
func rollDamage(ch *messages.Character, r *rand.Rand) (int, bool) {
	dmg := ch.Attack + r.IntN(max(ch.Attack/3, 1)+1)
	if r.Float64() < ch.CritChance {
		return dmg * 2, true
	}
	return dmg, false
}

// mobsWhere calls fn for each living mob accepted by match.
func (s *Server) mobsWhere(match func(b *BodyData) bool, fn func(e *donburi.Entry)) {
	Wander.Each(s.world, func(e *donburi.Entry) {
		b := Body.Get(e)
		if !b.Dead && match(b) {
			fn(e)
		}
	})
}

func (s *Server) attack(sess *session, angle float64) {
	if sess.attackCD > 0 {
		return
	}
	sess.attackCD = attackCooldown
	p := sess.body()
	s.effect(netconfig.EffectMeleeSwing, p.X, p.Y, angle)

	s.mobsWhere(func(b *BodyData) bool {
		d := math.Hypot(b.X-p.X, b.Y-p.Y)
		return d <= meleeRange && angleDiff(gamemath.Angle(b.X-p.X, b.Y-p.Y), angle) <= meleeArc
	}, func(e *donburi.Entry) {
		dmg, crit := rollDamage(&sess.char.sheet, s.rng)
		s.hitMob(sess, e, dmg, crit)
	})
}

// skill casts the hotbar skill at index. 0 is a spin around the caster,
// 1 an ember burst ahead of it, 2 an ember bolt.
func (s *Server) skill(sess *session, index int, angle float64) {
	if sess.skillCD > 0 || index < 0 || index > 2 {
		return
	}
	ch := &sess.char.sheet
	p := sess.body()
	if ch.MP < skillManaCost {
		s.floatingText(netconfig.TextMiss, "no mana", p.X, p.Y)
		return
	}
	ch.MP -= skillManaCost
	sess.skillCD = skillCooldown
	sess.charDirty = true

	switch index {
	case 0:
		s.effect(netconfig.EffectSpinAttack, p.X, p.Y, angle)
		s.mobsWhere(func(b *BodyData) bool {
			return math.Hypot(b.X-p.X, b.Y-p.Y) <= spinRange
		}, func(e *donburi.Entry) {
			dmg, crit := rollDamage(ch, s.rng)
			s.hitMob(sess, e, dmg, crit)
		})
	case 1:
		cx := p.X + math.Cos(angle)*burstDistance
		cy := p.Y + math.Sin(angle)*burstDistance
		s.effect(netconfig.EffectAreaBurst, cx, cy, angle)
		s.mobsWhere(func(b *BodyData) bool {
			return math.Hypot(b.X-cx, b.Y-cy) <= burstRadius
		}, func(e *donburi.Entry) {
			dmg, crit := rollDamage(ch, s.rng)
			s.hitMob(sess, e, dmg*3/2, crit)
		})
	case 2:
		s.nextProjectile++
		s.projectiles = append(s.projectiles, &projectile{
			id:     s.nextProjectile,
			owner:  sess,
			x:      p.X,
			y:      p.Y,
			angle:  angle,
			ttl:    emberLifetime,
			damage: ch.Attack * 2,
		})
	}
}

func (s *Server) dash(sess *session, angle float64) {
	if sess.dashCD > 0 {
		return
	}
	sess.dashCD = dashCooldown
	p := sess.body()
	s.effect(netconfig.EffectDash, p.X, p.Y, angle)
	for range dashSteps {
		s.moveBody(sess.entity, math.Cos(angle)*dashStep, math.Sin(angle)*dashStep)
	}
}

func (s *Server) potion(sess *session) {
	healed, err := sess.char.drinkPotion()
	p := sess.body()
	if err != nil {
		s.floatingText(netconfig.TextMiss, "no potions", p.X, p.Y)
		return
	}
	sess.charDirty = true
	s.floatingText(netconfig.TextHeal, fmt.Sprintf("+%d", healed), p.X, p.Y)
}

// hitMob applies damage and hands out rewards on a kill.
func (s *Server) hitMob(sess *session, e *donburi.Entry, dmg int, crit bool) {
	b := Body.Get(e)
	w := Wander.Get(e)
	b.HP -= dmg

	kind := netconfig.TextDamage
	if crit {
		kind = netconfig.TextCrit
	}
	s.floatingText(kind, fmt.Sprintf("%d", dmg), b.X, b.Y)
	if b.HP > 0 {
		return
	}

	b.HP = 0
	b.Dead = true
	b.VX, b.VY = 0, 0
	w.Respawn = mobRespawnTicks

	gold := 5 * w.Level
	sess.char.sheet.Gold += gold
	sess.charDirty = true
	s.floatingText(netconfig.TextGold, fmt.Sprintf("+%dg", gold), b.X, b.Y-12)
	if sess.char.gainXP(20*w.Level) > 0 {
		p := sess.body()
		s.floatingText(netconfig.TextLevelUp, "Level up!", p.X, p.Y-16)
	}

	if s.rng.IntN(100) < lootDropPercent {
		loot := tmplDust.make(1)
		if s.rng.IntN(5) == 0 {
			loot = tmplGem.make(1)
		}
		s.ground = append(s.ground, messages.GroundItem{Item: loot, X: b.X, Y: b.Y})
	}
}

func (s *Server) updateProjectiles() {
	alive := s.projectiles[:0]
	for _, p := range s.projectiles {
		p.x += math.Cos(p.angle) * emberSpeed
		p.y += math.Sin(p.angle) * emberSpeed
		p.ttl--

		hit := false
		s.mobsWhere(func(b *BodyData) bool {
			return !hit && math.Hypot(b.X-p.x, b.Y-p.y) <= bodySize
		}, func(e *donburi.Entry) {
			hit = true
			if p.owner.inWorld {
				s.hitMob(p.owner, e, p.damage, false)
			}
		})

		tx := int(p.x) / netconfig.TileSize
		ty := int(p.y) / netconfig.TileSize
		switch s.area.Tiles.At(tx, ty) {
		case netconfig.TileWall, netconfig.TileVoid:
			hit = true
		}
		if hit || p.ttl <= 0 {
			continue
		}
		alive = append(alive, p)
	}
	s.projectiles = alive
}

func (s *Server) effect(kind netconfig.EffectKind, x, y, angle float64) {
	s.broadcast(messages.VisualEffectEvent{Kind: kind, X: x, Y: y, Angle: angle})
}

func (s *Server) floatingText(kind netconfig.TextKind, value string, x, y float64) {
	s.broadcast(messages.FloatingTextEvent{Kind: kind, Value: value, X: x, Y: y})
}
