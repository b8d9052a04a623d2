package scenes

import (
	"log"
	"sync"

	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/desktop"
	"github.com/automoto/emberveil/network"
	"github.com/automoto/emberveil/systems"
	"github.com/automoto/emberveil/systems/factory"
	"github.com/automoto/emberveil/ui"
	"github.com/automoto/emberveil/uistate"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene plays one session on a logged in connection.
type GameScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	presence     *desktop.Presence
	panels       *ui.PanelsUI
	once         sync.Once
	lost         bool
}

func NewGameScene(sc SceneChanger, client *network.Client, presence *desktop.Presence) *GameScene {
	return &GameScene{
		sceneChanger: sc,
		netClient:    client,
		presence:     presence,
	}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	// A lost connection leaves the last snapshot on screen; the HUD shows
	// how old it is.
	if !gs.lost {
		if state := gs.netClient.State(); state == network.StateDisconnected || state == network.StateError {
			status := "connection lost"
			if err := gs.netClient.LastError(); err != nil {
				status = err.Error()
			}
			log.Printf("[game] %s", status)
			gs.lost = true
			systems.FadeOutMusic(gs.ecsWorld)
		}
	}

	systems.SetFocused(gs.ecsWorld, ebiten.IsFocused())
	gs.ecsWorld.Update()

	if m, rev, ok := systems.CurrentHUD(gs.ecsWorld); ok {
		gs.panels.Sync(m, rev)
	}
	gs.panels.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	if gs.ecsWorld == nil {
		screen.Fill(cfg.Black)
		return
	}

	gs.ecsWorld.Draw(screen)
	gs.panels.UI.Draw(screen)
	systems.DrawSettingsMenu(gs.ecsWorld, screen)
}

func (gs *GameScene) configure() {
	gs.ecsWorld = ecs.NewECS(donburi.NewWorld())

	factory.CreateCamera(gs.ecsWorld)
	factory.CreateSession(gs.ecsWorld, gs.netClient, gs.presence)

	gs.ecsWorld.AddSystem(systems.UpdateNetwork)
	gs.ecsWorld.AddSystem(systems.UpdateInput)
	gs.ecsWorld.AddSystem(systems.UpdateSettingsMenu)
	gs.ecsWorld.AddSystem(systems.UpdateUI)
	gs.ecsWorld.AddSystem(systems.UpdateIntent)
	gs.ecsWorld.AddSystem(systems.UpdateCamera)
	gs.ecsWorld.AddSystem(systems.UpdateEffects)
	gs.ecsWorld.AddSystem(systems.UpdateHUD)
	gs.ecsWorld.AddSystem(systems.UpdatePresence)
	gs.ecsWorld.AddSystem(systems.UpdateAudio)

	gs.ecsWorld.AddRenderer(cfg.Default, systems.DrawWorld)
	gs.ecsWorld.AddRenderer(cfg.Default, systems.DrawHUD)

	gs.panels = ui.NewPanelsUI(func(area uistate.Area, index int) {
		systems.ActivateSlot(gs.ecsWorld, area, index)
	})

	systems.PlayMusic(gs.ecsWorld, cfg.Sound.WorldMusic)
}
