package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/desktop"
	"github.com/automoto/emberveil/intent"
	"github.com/automoto/emberveil/network"
	"github.com/automoto/emberveil/systems"
	"github.com/automoto/emberveil/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LoginScene connects to a server and picks or creates a character.
type LoginScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	loginUI      *ui.LoginUI
	netClient    *network.Client
	presence     *desktop.Presence
	once         sync.Once

	status       string
	listShown    bool
	enteredWorld bool
}

// NewLoginScene returns the login screen. status is shown on entry, e.g.
// why the previous session ended.
func NewLoginScene(sc SceneChanger, presence *desktop.Presence, status string) *LoginScene {
	return &LoginScene{
		sceneChanger: sc,
		presence:     presence,
		status:       status,
	}
}

func (s *LoginScene) Update() {
	s.once.Do(s.configure)

	s.ecsWorld.Update()
	s.loginUI.Update()

	if s.netClient == nil {
		return
	}

	if s.enteredWorld {
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewGameScene(s.sceneChanger, client, s.presence))
		return
	}

	switch s.netClient.State() {
	case network.StateLoggedIn:
		if !s.listShown {
			s.listShown = true
			s.loginUI.SetCharacters(s.netClient.Characters())
			s.loginUI.SetStatus("Logged in as " + s.netClient.Account() + " on " + s.netClient.ServerName())
		}

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.reset(errMsg)

	case network.StateConnecting:
		s.loginUI.SetStatus("Connecting...")

	case network.StateConnected:
		s.loginUI.SetStatus("Connected, logging in...")

	case network.StateDisconnected:
		s.reset("Disconnected")
	}
}

// reset drops the connection and returns to the connect form.
func (s *LoginScene) reset(status string) {
	s.loginUI.SetStatus(status)
	s.loginUI.SetConnecting(false)
	s.loginUI.HideCharacters()
	s.listShown = false
	s.netClient.Disconnect()
	s.netClient = nil
}

func (s *LoginScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{14, 12, 18, 255})

	if s.ecsWorld == nil {
		return
	}

	s.loginUI.UI.Draw(screen)
}

func (s *LoginScene) configure() {
	s.ecsWorld = ecs.NewECS(donburi.NewWorld())
	s.ecsWorld.AddSystem(systems.UpdateAudio)

	name, server := systems.LastLogin()
	if server == "" {
		server = cfg.Net.ServerAddr
	}
	s.loginUI = ui.NewLoginUI(server, name)
	s.loginUI.OnConnect = s.onConnect
	s.loginUI.OnSelect = s.onSelect
	s.loginUI.OnCreate = s.onCreate
	s.loginUI.SetStatus(s.status)

	s.presence.Set(desktop.Detail("", 0, ""))
	systems.PlayMusic(s.ecsWorld, cfg.Sound.LoginMusic)
}

func (s *LoginScene) onConnect(address, account string) {
	if s.netClient != nil {
		s.netClient.Disconnect()
	}
	log.Printf("[login] connecting to %s as %s", address, account)
	systems.SaveLastLogin(account, address)

	s.loginUI.SetStatus("Connecting...")
	s.loginUI.SetConnecting(true)

	s.netClient = network.NewClient(cfg.Net.SnapshotBuffer, cfg.Net.EventBuffer)
	s.netClient.Connect(address, cfg.Net.Version, account)
}

// The server starts streaming snapshots right after either request, so the
// scene switches without waiting for a reply.
func (s *LoginScene) onSelect(id uint32) {
	if s.netClient == nil || s.netClient.State() != network.StateLoggedIn {
		return
	}
	intent.NewEmitter(s.netClient).SelectCharacter(id)
	s.enteredWorld = true
}

func (s *LoginScene) onCreate(name, class string) {
	if s.netClient == nil || s.netClient.State() != network.StateLoggedIn {
		return
	}
	intent.NewEmitter(s.netClient).CreateCharacter(name, class)
	s.enteredWorld = true
}
