package systems

import (
	"image/color"
	"math"

	"github.com/automoto/emberveil/assets"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/worldstate"
	"github.com/automoto/emberveil/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	noiseImage *ebiten.Image
	noiseOp    = &ebiten.DrawImageOptions{}
)

// drawFog darkens unexplored and unlit tiles, then lays the grain on top.
func drawFog(screen *ebiten.Image, cam view.Camera, snap *worldstate.Snapshot, player messages.Entity) {
	fog := view.Fog{
		ExploredAlpha: cfg.Fog.ExploredAlpha,
		LightRadius:   cfg.Fog.LightRadius,
		Falloff:       cfg.Fog.Falloff,
	}
	ts := cfg.World.TileSize
	r := cam.VisibleTiles(ts, snap.Tiles.Width, snap.Tiles.Height)
	for ty := r.Y0; ty < r.Y1; ty++ {
		for tx := r.X0; tx < r.X1; tx++ {
			cx := (float64(tx) + 0.5) * ts
			cy := (float64(ty) + 0.5) * ts
			a := fog.Alpha(snap.IsExplored(tx, ty), math.Hypot(cx-player.X, cy-player.Y))
			if a <= 0 {
				continue
			}
			sx, sy := cam.ToScreen(float64(tx)*ts, float64(ty)*ts)
			vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(ts), float32(ts), color.RGBA{A: uint8(a * 255)}, false)
		}
	}

	drawNoise(screen)
}

func drawNoise(screen *ebiten.Image) {
	if cfg.Fog.NoiseAlpha <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if noiseImage == nil || noiseImage.Bounds().Dx() != w || noiseImage.Bounds().Dy() != h {
		if noiseImage != nil {
			noiseImage.Deallocate()
		}
		noiseImage = assets.NoiseImage(w, h, cfg.Fog.NoiseSeed, cfg.Fog.NoiseAlpha)
	}
	noiseOp.GeoM.Reset()
	screen.DrawImage(noiseImage, noiseOp)
}
