// Package worldstate holds the client's copy of the authoritative snapshot.
// A Store has exactly one writer, the game loop, which applies updates with
// Merge. Readers get the current Snapshot by pointer and must not modify it.
package worldstate

import (
	"time"

	"github.com/automoto/emberveil/shared/messages"
)

// Snapshot is the merged authoritative state.
type Snapshot struct {
	Tick        uint64
	Character   messages.Character
	Entities    []messages.Entity
	Items       []messages.GroundItem
	Projectiles []messages.Projectile
	Props       []messages.Prop
	Tiles       messages.TileMap
	Explored    []bool
	Chat        []messages.ChatLine
	Recipes     []messages.Recipe
	Shop        []messages.ShopItem
}

// Store owns the Snapshot and the bookkeeping around it.
type Store struct {
	snap      Snapshot
	merges    int
	lastMerge time.Time
	hasChar   bool
}

func NewStore() *Store {
	return &Store{}
}

// Merge applies an update shallowly: each present field replaces the stored
// one wholesale, absent fields are kept. It returns the fields that changed
// so callers can decide what to rebuild.
func (s *Store) Merge(u messages.SnapshotUpdate, now time.Time) messages.Field {
	if u.Tick > s.snap.Tick {
		s.snap.Tick = u.Tick
	}
	if u.Has(messages.FieldCharacter) {
		s.snap.Character = u.Character
		s.hasChar = true
	}
	if u.Has(messages.FieldEntities) {
		s.snap.Entities = u.Entities
	}
	if u.Has(messages.FieldItems) {
		s.snap.Items = u.Items
	}
	if u.Has(messages.FieldProjectiles) {
		s.snap.Projectiles = u.Projectiles
	}
	if u.Has(messages.FieldProps) {
		s.snap.Props = u.Props
	}
	if u.Has(messages.FieldTiles) {
		s.snap.Tiles = u.Tiles
	}
	if u.Has(messages.FieldExplored) {
		s.snap.Explored = u.Explored
	}
	if u.Has(messages.FieldChat) {
		s.snap.Chat = u.Chat
	}
	if u.Has(messages.FieldRecipes) {
		s.snap.Recipes = u.Recipes
	}
	if u.Has(messages.FieldShop) {
		s.snap.Shop = u.Shop
	}
	s.merges++
	s.lastMerge = now
	return u.Fields & messages.FieldsAll
}

// SetShop replaces the shop stock outside of a snapshot (shop-open event).
func (s *Store) SetShop(items []messages.ShopItem) {
	s.snap.Shop = items
}

// Snapshot returns the current state. Callers must treat it as read-only.
func (s *Store) Snapshot() *Snapshot {
	return &s.snap
}

// Merges is the number of updates applied so far.
func (s *Store) Merges() int { return s.merges }

// Age is the time since the last merge, or zero before the first one.
func (s *Store) Age(now time.Time) time.Duration {
	if s.lastMerge.IsZero() {
		return 0
	}
	return now.Sub(s.lastMerge)
}

// Player returns the local player's entity, if it is present in the world.
func (s *Store) Player() (messages.Entity, bool) {
	if !s.hasChar {
		return messages.Entity{}, false
	}
	return s.snap.EntityByID(s.snap.Character.EntityID)
}

// EntityByID finds an entity by ID.
func (s *Snapshot) EntityByID(id messages.EntityID) (messages.Entity, bool) {
	for _, e := range s.Entities {
		if e.ID == id {
			return e, true
		}
	}
	return messages.Entity{}, false
}

// IsExplored reports whether the tile at (tx, ty) was ever seen.
func (s *Snapshot) IsExplored(tx, ty int) bool {
	w := s.Tiles.Width
	if tx < 0 || ty < 0 || tx >= w || ty >= s.Tiles.Height {
		return false
	}
	i := ty*w + tx
	return i < len(s.Explored) && s.Explored[i]
}
