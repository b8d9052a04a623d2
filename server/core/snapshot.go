package core

import (
	"slices"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/yohamta/donburi"
)

// snapshotFor builds the update for one session. Moving things go out every
// tick; the sheet, fog mask and chat only when they changed; terrain once.
func (s *Server) snapshotFor(sess *session) messages.SnapshotUpdate {
	u := messages.SnapshotUpdate{
		Tick:        s.tick,
		Fields:      messages.FieldEntities | messages.FieldItems | messages.FieldProjectiles,
		Entities:    s.entities(),
		Items:       slices.Clone(s.ground),
		Projectiles: s.wireProjectiles(),
	}

	first := !sess.sentStatic
	if first {
		u.Fields |= messages.FieldTiles | messages.FieldProps | messages.FieldShop
		u.Tiles = s.area.Tiles
		u.Props = s.area.Props
		u.Shop = shopListing()
		sess.sentStatic = true
		sess.exploreDirty = true
		sess.charDirty = true
	}
	if sess.charDirty {
		u.Fields |= messages.FieldCharacter | messages.FieldRecipes
		u.Character = sess.char.sheet
		u.Character.Inventory = slices.Clone(sess.char.sheet.Inventory)
		u.Recipes = sess.char.recipeList()
		sess.charDirty = false
	}
	if sess.exploreDirty {
		u.Fields |= messages.FieldExplored
		u.Explored = slices.Clone(sess.explored)
		sess.exploreDirty = false
	}
	if first || sess.chatSent != s.chatRev {
		u.Fields |= messages.FieldChat
		u.Chat = slices.Clone(s.chat)
		sess.chatSent = s.chatRev
	}
	return u
}

func (s *Server) entities() []messages.Entity {
	var out []messages.Entity
	Body.Each(s.world, func(e *donburi.Entry) {
		out = append(out, Body.Get(e).entity())
	})
	slices.SortFunc(out, func(a, b messages.Entity) int { return int(a.ID) - int(b.ID) })
	return out
}

func (s *Server) wireProjectiles() []messages.Projectile {
	out := make([]messages.Projectile, 0, len(s.projectiles))
	for _, p := range s.projectiles {
		out = append(out, p.wire())
	}
	return out
}
