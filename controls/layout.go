package controls

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

var zoneActions = map[string]Action{
	"attack":    ActionAttack,
	"skill":     ActionSkill,
	"dash":      ActionDash,
	"potion":    ActionPotion,
	"block":     ActionBlock,
	"menu":      ActionMenuToggle,
	"inventory": ActionInventory,
	"character": ActionCharacter,
	"crafting":  ActionCrafting,
	"chat":      ActionChat,
	"confirm":   ActionConfirm,
	"secondary": ActionSecondary,
	"escape":    ActionEscape,
}

// LoadLayout reads touch zones from the "zones" object group of a TMX map.
// Each object's "kind" property is "pad", "slot" or "button"; buttons name
// their action in "action" and slots their index in "index".
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var zones []Zone
	for _, og := range m.ObjectGroups {
		if og.Name != "zones" {
			continue
		}
		for _, o := range og.Objects {
			z := Zone{
				Name: o.Name,
				X:    o.X,
				Y:    o.Y,
				W:    o.Width,
				H:    o.Height,
			}
			switch o.Properties.GetString("kind") {
			case "pad":
				z.Kind = ZoneMovePad
			case "slot":
				z.Kind = ZoneSlot
				z.Index = o.Properties.GetInt("index")
			default:
				name := o.Properties.GetString("action")
				action, ok := zoneActions[name]
				if !ok {
					return nil, fmt.Errorf("zone %q: unknown action %q", o.Name, name)
				}
				z.Kind = ZoneButton
				z.Action = action
			}
			zones = append(zones, z)
		}
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("no touch zones in %s", tmxPath)
	}

	return NewLayout(m.Width*m.TileWidth, m.Height*m.TileHeight, zones), nil
}
