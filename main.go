package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
	"log"

	"github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/desktop"
	"github.com/automoto/emberveil/fonts"
	"github.com/automoto/emberveil/scenes"
	"github.com/automoto/emberveil/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(presence *desktop.Presence) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLoginScene(g, presence, "")
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	server := flag.String("server", "", "game server address (host:port)")
	name := flag.String("name", "", "account name to prefill")
	configPath := flag.String("config", config.DefaultOverridePath, "optional YAML settings override")
	flag.Parse()

	if o, err := config.LoadOverride(*configPath); err == nil {
		o.Apply()
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.LargeFontSize, config.UI.PanelFontSize, config.UI.TitleFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	systems.OverrideLastLogin(*name, *server)

	desktop.InitClipboard()
	presence := desktop.NewPresence(config.Desktop.DiscordAppID)
	defer presence.Close()

	systems.PreloadAllSFX()

	if err := ebiten.RunGame(NewGame(presence)); err != nil {
		log.Fatal(err)
	}
}
