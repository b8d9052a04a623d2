package systems

import (
	"image/color"
	"math"

	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/feedback"
	"github.com/automoto/emberveil/fonts"
	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/worldstate"
	"github.com/automoto/emberveil/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// arcSegments is how many line segments approximate an effect arc.
const arcSegments = 16

// DrawWorld renders the merged snapshot and the client-side effects. Nothing
// but a black frame is drawn until the local player appears in a snapshot.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Black)

	s, ok := getSession(e)
	if !ok {
		return
	}
	player, ok := s.Store.Player()
	if !ok {
		return
	}
	cam, ok := CurrentCamera(e)
	if !ok {
		return
	}
	snap := s.Store.Snapshot()

	drawTiles(screen, cam, snap)
	drawProps(screen, cam, snap.Props)
	drawGroundItems(screen, cam, snap.Items, s.Frame)
	drawProjectiles(screen, cam, snap.Projectiles)
	drawEffects(e, screen, cam)
	drawEntities(e, screen, cam, s, player)
	drawFloatingText(e, screen, cam)
	drawFog(screen, cam, snap, player)
}

func drawTiles(screen *ebiten.Image, cam view.Camera, snap *worldstate.Snapshot) {
	ts := cfg.World.TileSize
	r := cam.VisibleTiles(ts, snap.Tiles.Width, snap.Tiles.Height)
	for ty := r.Y0; ty < r.Y1; ty++ {
		for tx := r.X0; tx < r.X1; tx++ {
			c, ok := cfg.World.TileColors[uint8(snap.Tiles.At(tx, ty))]
			if !ok {
				continue
			}
			sx, sy := cam.ToScreen(float64(tx)*ts, float64(ty)*ts)
			vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(ts), float32(ts), c, false)
		}
	}
}

func drawProps(screen *ebiten.Image, cam view.Camera, props []messages.Prop) {
	size := cfg.World.PropSize
	for _, p := range props {
		if !cam.OnScreen(p.X, p.Y, size) {
			continue
		}
		sx, sy := cam.ToScreen(p.X, p.Y)
		vector.DrawFilledRect(screen, float32(sx-size/2), float32(sy-size/2), float32(size), float32(size), cfg.World.PropColor, false)
	}
}

func drawGroundItems(screen *ebiten.Image, cam view.Camera, items []messages.GroundItem, frame int) {
	size := cfg.World.ItemSize
	bob := view.BobOffset(frame)
	for _, it := range items {
		if !cam.OnScreen(it.X, it.Y, size) {
			continue
		}
		sx, sy := cam.ToScreen(it.X, it.Y+bob)
		// diamond
		h := float32(size / 2)
		x, y := float32(sx), float32(sy)
		vector.StrokeLine(screen, x-h, y, x, y-h, 2, cfg.World.ItemColor, true)
		vector.StrokeLine(screen, x, y-h, x+h, y, 2, cfg.World.ItemColor, true)
		vector.StrokeLine(screen, x+h, y, x, y+h, 2, cfg.World.ItemColor, true)
		vector.StrokeLine(screen, x, y+h, x-h, y, 2, cfg.World.ItemColor, true)
	}
}

func drawProjectiles(screen *ebiten.Image, cam view.Camera, projectiles []messages.Projectile) {
	for _, p := range projectiles {
		style := view.Projectile(p.Tag)
		if !cam.OnScreen(p.X, p.Y, style.Size) {
			continue
		}
		sx, sy := cam.ToScreen(p.X, p.Y)
		switch style.Shape {
		case view.ShapeStreak:
			tx, ty := view.StreakEnd(sx, sy, p.Angle, style.Size)
			vector.StrokeLine(screen, float32(tx), float32(ty), float32(sx), float32(sy), style.Stroke, style.Color, true)
		case view.ShapeGlow:
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(style.Size*1.8), fade(style.Color, 0.3), true)
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(style.Size), style.Color, true)
		default:
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(style.Size), style.Color, true)
		}
	}
}

// drawEffects grows each effect outward and fades it over its lifetime.
func drawEffects(e *ecs.ECS, screen *ebiten.Image, cam view.Camera) {
	components.Effect.Each(e.World, func(entry *donburi.Entry) {
		fx := components.Effect.Get(entry)
		life := components.AutoDestroy.Get(entry)
		p := feedback.Progress(life.FramesRemaining, life.Life)

		radius := fx.Style.Radius * (0.4 + 0.6*p)
		if !cam.OnScreen(fx.X, fx.Y, radius) {
			return
		}
		c := fade(fx.Style.Color, 1-p)
		sx, sy := cam.ToScreen(fx.X, fx.Y)
		if fx.Style.Arc <= 0 {
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(radius), 3, c, true)
			return
		}
		drawArc(screen, sx, sy, radius, fx.Angle-fx.Style.Arc/2, fx.Style.Arc, c)
	})
}

func drawArc(screen *ebiten.Image, cx, cy, r, start, sweep float64, c color.RGBA) {
	step := sweep / arcSegments
	px, py := cx+math.Cos(start)*r, cy+math.Sin(start)*r
	for i := 1; i <= arcSegments; i++ {
		a := start + step*float64(i)
		x, y := cx+math.Cos(a)*r, cy+math.Sin(a)*r
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 3, c, true)
		px, py = x, y
	}
}

func drawEntities(e *ecs.ECS, screen *ebiten.Image, cam view.Camera, s *components.SessionData, player messages.Entity) {
	radius := cfg.World.EntityRadius
	labelFont := fonts.HUD.Get()

	for _, ent := range view.DepthSorted(s.Store.Snapshot().Entities) {
		if !cam.OnScreen(ent.X, ent.Y, radius*3) {
			continue
		}
		sx, sy := cam.ToScreen(ent.X, ent.Y)
		x, y := float32(sx), float32(sy)

		c, ok := cfg.World.EntityColors[int(ent.Kind)]
		if !ok {
			c = cfg.White
		}
		if ent.ID == player.ID {
			c = cfg.World.LocalPlayer
		}
		vector.DrawFilledCircle(screen, x, y, float32(radius), c, true)

		if ent.ID == player.ID {
			if angle, ok := s.Resolver.LookAngle(aimInput(s, &getOrCreateInput(e).State)); ok {
				tx := x + float32(math.Cos(angle)*radius*1.6)
				ty := y + float32(math.Sin(angle)*radius*1.6)
				vector.StrokeLine(screen, x, y, tx, ty, 2, cfg.White, true)
			}
		}

		if ent.MaxHP > 0 {
			w := cfg.World.HealthBarWidth
			h := cfg.World.HealthBarH
			bx := float32(sx - w/2)
			by := float32(sy - radius - h - 3)
			vector.DrawFilledRect(screen, bx, by, float32(w), float32(h), cfg.UI.BarBgColor, false)
			vector.DrawFilledRect(screen, bx, by, float32(w*view.HealthFraction(ent.HP, ent.MaxHP)), float32(h), cfg.UI.HPColor, false)
		}

		if ent.Name != "" {
			lx := int(sx) - text.BoundString(labelFont, ent.Name).Dx()/2
			text.Draw(screen, ent.Name, labelFont, lx, int(sy+cfg.World.LabelOffsetY), cfg.UI.TextColor)
		}
	}
}

func drawFloatingText(e *ecs.ECS, screen *ebiten.Image, cam view.Camera) {
	components.FloatingText.Each(e.World, func(entry *donburi.Entry) {
		ft := components.FloatingText.Get(entry)
		if !cam.OnScreen(ft.Motion.X, ft.Motion.Y, 40) {
			return
		}
		face := fonts.HUD.Get()
		if ft.Style.Large {
			face = fonts.Large.Get()
		}
		c := cfg.UI.TextColor
		if ft.Style.HasColor {
			c = ft.Style.Color
		}
		sx, sy := cam.ToScreen(ft.Motion.X, ft.Motion.Y)
		x := int(sx) - text.BoundString(face, ft.Text).Dx()/2
		text.Draw(screen, ft.Text, face, x, int(sy), fade(c, ft.Motion.Alpha()))
	})
}

// fade scales a premultiplied color by alpha.
func fade(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
