package components

import "github.com/yohamta/donburi"

// SettingsMenuOption indexes a row of the settings overlay, top to bottom.
type SettingsMenuOption int

const (
	SettingsOptMusicVolume SettingsMenuOption = iota
	SettingsOptSFXVolume
	SettingsOptMute
	SettingsOptFullscreen
	SettingsOptResolution // hidden while fullscreen
	SettingsOptBack

	SettingsRowCount
)

// SettingsMenuData is the overlay singleton. The values mirror what the mixer
// and window use and are written to disk when the overlay closes.
type SettingsMenuData struct {
	IsOpen         bool
	SelectedOption SettingsMenuOption

	MusicVolume float64 // snapped to config.Settings.VolumeSteps
	SFXVolume   float64
	Muted       bool

	Fullscreen      bool
	ResolutionIndex int

	// Levels to go back to when mute is switched off.
	RestoreMusic, RestoreSFX float64
}

var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
