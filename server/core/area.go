package core

import (
	"math"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/solarlune/resolv"
)

const (
	tagSolid = "solid"
	tagBody  = "body"
)

// areaLayout is the dev zone. '#' wall, '~' water, ',' grass, '.' floor,
// 'M' merchant spot, 'S' player spawn, 'm' mob home.
var areaLayout = []string{
	"##############################",
	"#............,,,,,...........#",
	"#..S.........,,,,,.....m.....#",
	"#............,,,,,...........#",
	"#.....####...................#",
	"#.....#..#..........~~~~.....#",
	"#.....#..#....m.....~~~~.....#",
	"#.....##.#..........~~~~.....#",
	"#............................#",
	"#..M.........####.......m....#",
	"#............#..#............#",
	"#,,,,,.......#..#............#",
	"#,,,,,...m...................#",
	"#,,,,,.......................#",
	"##############################",
}

// Area holds the zone's terrain, collision space and fixed points.
type Area struct {
	Name     string
	Space    *resolv.Space
	Tiles    messages.TileMap
	Props    []messages.Prop
	SpawnX   float64
	SpawnY   float64
	Merchant [2]float64
	MobHomes [][2]float64
}

// NewArea builds the zone from areaLayout. Walls and water become solid
// objects in the resolv space.
func NewArea(name string) *Area {
	h := len(areaLayout)
	w := len(areaLayout[0])
	a := &Area{
		Name:  name,
		Space: resolv.NewSpace(w*netconfig.TileSize, h*netconfig.TileSize, 16, 16),
		Tiles: messages.TileMap{Width: w, Height: h, Tiles: make([]netconfig.TileKind, w*h)},
	}

	for ty, row := range areaLayout {
		for tx, ch := range row {
			kind := netconfig.TileFloor
			cx, cy := tileCenter(tx, ty)
			switch ch {
			case '#':
				kind = netconfig.TileWall
			case '~':
				kind = netconfig.TileWater
			case ',':
				kind = netconfig.TileGrass
			case 'S':
				a.SpawnX, a.SpawnY = cx, cy
			case 'M':
				a.Merchant = [2]float64{cx, cy}
				a.Props = append(a.Props, messages.Prop{Kind: "stall", X: cx, Y: cy - netconfig.TileSize})
			case 'm':
				a.MobHomes = append(a.MobHomes, [2]float64{cx, cy})
			}
			a.Tiles.Tiles[ty*w+tx] = kind

			if kind == netconfig.TileWall || kind == netconfig.TileWater {
				x := float64(tx * netconfig.TileSize)
				y := float64(ty * netconfig.TileSize)
				obj := resolv.NewObject(x, y, netconfig.TileSize, netconfig.TileSize, tagSolid)
				obj.SetShape(resolv.NewRectangle(0, 0, netconfig.TileSize, netconfig.TileSize))
				a.Space.Add(obj)
			}
			if kind == netconfig.TileGrass && (tx+ty)%3 == 0 {
				a.Props = append(a.Props, messages.Prop{Kind: "tuft", X: cx, Y: cy})
			}
		}
	}
	return a
}

// Explore marks every tile within radius tiles of (x, y) as seen and
// reports whether any tile was new.
func (a *Area) Explore(mask []bool, x, y float64, radius int) bool {
	changed := false
	ctx := int(x) / netconfig.TileSize
	cty := int(y) / netconfig.TileSize
	for ty := cty - radius; ty <= cty+radius; ty++ {
		for tx := ctx - radius; tx <= ctx+radius; tx++ {
			if tx < 0 || ty < 0 || tx >= a.Tiles.Width || ty >= a.Tiles.Height {
				continue
			}
			if math.Hypot(float64(tx-ctx), float64(ty-cty)) > float64(radius) {
				continue
			}
			i := ty*a.Tiles.Width + tx
			if !mask[i] {
				mask[i] = true
				changed = true
			}
		}
	}
	return changed
}

// NearMerchant reports whether (x, y) is close enough to trade.
func (a *Area) NearMerchant(x, y float64) bool {
	return math.Hypot(x-a.Merchant[0], y-a.Merchant[1]) <= 2*netconfig.TileSize
}

func tileCenter(tx, ty int) (float64, float64) {
	return float64(tx*netconfig.TileSize + netconfig.TileSize/2), float64(ty*netconfig.TileSize + netconfig.TileSize/2)
}
