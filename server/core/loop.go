package core

import (
	"log"
	"math"
	"time"

	"github.com/automoto/emberveil/shared/messages"
)

type GameLoop struct {
	server   *Server
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: max(tickRate, 1),
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.server.locked(g.server.step)
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

// step advances the world one tick and queues every session's snapshot.
// Callers hold the state lock.
func (s *Server) step() {
	s.tick++
	s.updateMobs()
	s.updateProjectiles()
	s.updatePlayers()
	for p, sess := range s.sessions {
		if sess.inWorld {
			s.send(p, s.snapshotFor(sess))
		}
	}
}

func (s *Server) updatePlayers() {
	for p, sess := range s.sessions {
		if !sess.inWorld {
			continue
		}
		sess.attackCD = max(sess.attackCD-1, 0)
		sess.skillCD = max(sess.skillCD-1, 0)
		sess.dashCD = max(sess.dashCD-1, 0)

		ch := &sess.char.sheet
		if s.tick%manaRegenTicks == 0 && ch.MP < ch.MaxMP {
			ch.MP++
			sess.charDirty = true
		}

		speed := s.moveSpeed * ch.Speed
		if sess.blocking {
			speed /= 2
		}
		if sess.moveX != 0 || sess.moveY != 0 {
			s.moveBody(sess.entity, sess.moveX*speed, sess.moveY*speed)
		} else {
			b := sess.body()
			b.VX, b.VY = 0, 0
		}

		b := sess.body()
		b.HP, b.MaxHP = ch.HP, ch.MaxHP
		if s.area.Explore(sess.explored, b.X, b.Y, exploreRadius) {
			sess.exploreDirty = true
		}
		s.pickUp(sess, b)

		near := s.area.NearMerchant(b.X, b.Y)
		if near && !sess.nearMerchant {
			s.send(p, messages.ShopOpenEvent{Merchant: "Merchant", Items: shopListing()})
		}
		sess.nearMerchant = near
	}
}

// pickUp moves ground items under the player into the inventory.
func (s *Server) pickUp(sess *session, b *BodyData) {
	kept := s.ground[:0]
	for _, g := range s.ground {
		if math.Hypot(g.X-b.X, g.Y-b.Y) > bodySize || sess.char.addItem(g.Item) != nil {
			kept = append(kept, g)
			continue
		}
		sess.charDirty = true
	}
	s.ground = kept
}
