package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume     float64 `json:"musicVolume"`
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	LastName        string  `json:"lastName,omitempty"`
	LastServer      string  `json:"lastServer,omitempty"`
}

var gdataManager *gdata.Manager

// saved is the last settings record read or written, so partial saves
// (login name, server) keep the audio/video fields and vice versa.
var saved SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. A nil result means defaults.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	s, err := decodeSettings(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	saved = *s
	return s, nil
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	s := SavedSettings{
		MusicVolume:     cfg.Audio.DefaultMusicVol,
		SFXVolume:       cfg.Audio.DefaultSFXVol,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	s.MusicVolume = cfg.SnapVolume(s.MusicVolume)
	s.SFXVolume = cfg.SnapVolume(s.SFXVolume)
	if s.ResolutionIndex < 0 || s.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		s.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	saved = *s
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// LastLogin returns the character name and server from the previous session.
func LastLogin() (name, server string) {
	return saved.LastName, saved.LastServer
}

// SaveLastLogin remembers the name and server the player connected with.
func SaveLastLogin(name, server string) {
	s := saved
	s.LastName = name
	s.LastServer = server
	_ = SaveSettings(&s)
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	out := saved
	out.MusicVolume = s.MusicVolume
	out.SFXVolume = s.SFXVolume
	out.Muted = s.Muted
	out.Fullscreen = s.Fullscreen
	out.ResolutionIndex = s.ResolutionIndex
	if s.Muted {
		out.MusicVolume = s.RestoreMusic
		out.SFXVolume = s.RestoreSFX
	}
	_ = SaveSettings(&out)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(s *SavedSettings) {
	if s == nil {
		return
	}

	mix.musicVol = s.MusicVolume
	mix.sfxVol = s.SFXVolume
	if s.Muted {
		mix.musicVol = 0
		mix.sfxVol = 0
	}

	ebiten.SetFullscreen(s.Fullscreen)
	if !s.Fullscreen {
		res := cfg.ResolutionAt(s.ResolutionIndex)
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// settingsFromSaved seeds the settings overlay for a new scene.
func settingsFromSaved(e *ecs.ECS) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if ok {
		return components.SettingsMenu.Get(entry)
	}
	entry = e.World.Entry(e.World.Create(components.SettingsMenu))
	data := components.SettingsMenuData{
		MusicVolume:     mix.musicVol,
		SFXVolume:       mix.sfxVol,
		Muted:           saved.Muted,
		Fullscreen:      ebiten.IsFullscreen(),
		ResolutionIndex: saved.ResolutionIndex,
	}
	if saved.Muted {
		data.RestoreMusic = saved.MusicVolume
		data.RestoreSFX = saved.SFXVolume
	}
	components.SettingsMenu.SetValue(entry, data)
	return components.SettingsMenu.Get(entry)
}

// OverrideLastLogin replaces the remembered login for this run only. Empty
// values keep what was saved.
func OverrideLastLogin(name, server string) {
	if name != "" {
		saved.LastName = name
	}
	if server != "" {
		saved.LastServer = server
	}
}
