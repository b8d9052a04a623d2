package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/controls"
	"github.com/automoto/emberveil/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// settingsRow describes one line of the settings overlay. adjust handles
// left/right (dir is -1 or +1); activate handles confirm.
type settingsRow struct {
	label    string
	value    func(s *components.SettingsMenuData) string
	adjust   func(e *ecs.ECS, s *components.SettingsMenuData, dir int)
	activate func(e *ecs.ECS, s *components.SettingsMenuData)
	hidden   func(s *components.SettingsMenuData) bool
}

var settingsRows [components.SettingsRowCount]settingsRow

func init() {
	toggleMuteRow := func(e *ecs.ECS, s *components.SettingsMenuData) {
		toggleMute(e, s)
		PlaySFX(e, cfg.SoundMenuSelect)
	}
	toggleFullscreenRow := func(e *ecs.ECS, s *components.SettingsMenuData) {
		s.Fullscreen = !s.Fullscreen
		ebiten.SetFullscreen(s.Fullscreen)
		PlaySFX(e, cfg.SoundMenuSelect)
	}

	settingsRows = [...]settingsRow{
		components.SettingsOptMusicVolume: {
			label: "Music Volume",
			value: func(s *components.SettingsMenuData) string { return formatVolumeBar(s.MusicVolume) },
			adjust: func(e *ecs.ECS, s *components.SettingsMenuData, dir int) {
				s.MusicVolume = adjustVolumeStep(s.MusicVolume, dir)
				if !s.Muted {
					SetMusicVolume(e, s.MusicVolume)
				}
				PlaySFX(e, cfg.SoundMenuNavigate)
			},
		},
		components.SettingsOptSFXVolume: {
			label: "SFX Volume",
			value: func(s *components.SettingsMenuData) string { return formatVolumeBar(s.SFXVolume) },
			adjust: func(e *ecs.ECS, s *components.SettingsMenuData, dir int) {
				s.SFXVolume = adjustVolumeStep(s.SFXVolume, dir)
				if !s.Muted {
					SetSFXVolume(e, s.SFXVolume)
				}
				// preview at the new level
				PlaySFX(e, cfg.SoundMenuSelect)
			},
		},
		components.SettingsOptMute: {
			label:    "Mute",
			value:    func(s *components.SettingsMenuData) string { return formatToggle(s.Muted) },
			adjust:   func(e *ecs.ECS, s *components.SettingsMenuData, _ int) { toggleMuteRow(e, s) },
			activate: toggleMuteRow,
		},
		components.SettingsOptFullscreen: {
			label:    "Fullscreen",
			value:    func(s *components.SettingsMenuData) string { return formatToggle(s.Fullscreen) },
			adjust:   func(e *ecs.ECS, s *components.SettingsMenuData, _ int) { toggleFullscreenRow(e, s) },
			activate: toggleFullscreenRow,
		},
		components.SettingsOptResolution: {
			label: "Resolution",
			value: func(s *components.SettingsMenuData) string { return cfg.ResolutionAt(s.ResolutionIndex).Label },
			adjust: func(e *ecs.ECS, s *components.SettingsMenuData, dir int) {
				n := len(cfg.Settings.Resolutions)
				s.ResolutionIndex = (s.ResolutionIndex + dir + n) % n
				res := cfg.ResolutionAt(s.ResolutionIndex)
				ebiten.SetWindowSize(res.Width, res.Height)
				PlaySFX(e, cfg.SoundMenuNavigate)
			},
			// meaningless in fullscreen
			hidden: func(s *components.SettingsMenuData) bool { return s.Fullscreen },
		},
		components.SettingsOptBack: {
			label:    "< Back",
			activate: closeSettings,
		},
	}
}

func rowHidden(s *components.SettingsMenuData, opt components.SettingsMenuOption) bool {
	h := settingsRows[opt].hidden
	return h != nil && h(s)
}

// UpdateSettingsMenu opens and closes the settings overlay and applies
// changes while it is open. Chat owns the keyboard while it is open.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	input := getOrCreateInput(e)
	pressed := func(a controls.Action) bool { return input.State.Pressed[a] }

	if !settings.IsOpen {
		if pressed(controls.ActionMenuToggle) && !chatOpen(e) {
			OpenSettings(e)
			PlaySFX(e, cfg.SoundMenuSelect)
		}
		return
	}

	switch {
	case pressed(controls.ActionNavUp):
		stepSelection(settings, -1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	case pressed(controls.ActionNavDown):
		stepSelection(settings, +1)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	row := settingsRows[settings.SelectedOption]
	if row.adjust != nil {
		if pressed(controls.ActionNavLeft) {
			row.adjust(e, settings, -1)
		}
		if pressed(controls.ActionNavRight) {
			row.adjust(e, settings, +1)
		}
	}
	if pressed(controls.ActionConfirm) && row.activate != nil {
		row.activate(e, settings)
	}
	if settings.IsOpen && (pressed(controls.ActionEscape) || pressed(controls.ActionMenuToggle)) {
		closeSettings(e, settings)
	}
}

func chatOpen(e *ecs.ECS) bool {
	s, ok := getSession(e)
	return ok && s.UI.ChatOpen()
}

// stepSelection moves the highlight by dir, wrapping and skipping hidden rows.
func stepSelection(s *components.SettingsMenuData, dir int) {
	n := len(settingsRows)
	for range n {
		next := (int(s.SelectedOption) + dir + n) % n
		s.SelectedOption = components.SettingsMenuOption(next)
		if !rowHidden(s, s.SelectedOption) {
			return
		}
	}
}

// adjustVolumeStep moves one configured volume step, clamped at both ends.
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.Settings.VolumeSteps
	idx := 0
	for i, step := range steps {
		if step == cfg.SnapVolume(current) {
			idx = i
			break
		}
	}
	idx = max(0, min(len(steps)-1, idx+direction))
	return steps[idx]
}

func toggleMute(e *ecs.ECS, s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	if s.Muted {
		s.RestoreMusic = s.MusicVolume
		s.RestoreSFX = s.SFXVolume
		SetMusicVolume(e, 0)
		SetSFXVolume(e, 0)
		return
	}
	SetMusicVolume(e, s.MusicVolume)
	SetSFXVolume(e, s.SFXVolume)
}

// closeSettings closes the overlay and persists what changed.
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), cfg.BlackOverlay, false)

	titleFace := fonts.Title.Get()
	title := "SETTINGS"
	text.Draw(screen, title, titleFace, w/2-text.BoundString(titleFace, title).Dx()/2, 48, cfg.UI.TextColor)

	const rowH, rowGap = 24, 8
	visible := 0
	for opt := range settingsRows {
		if !rowHidden(settings, components.SettingsMenuOption(opt)) {
			visible++
		}
	}
	y := (h-visible*(rowH+rowGap))/2 + 10 + rowH

	face := fonts.Large.Get()
	for i, row := range settingsRows {
		opt := components.SettingsMenuOption(i)
		if rowHidden(settings, opt) {
			continue
		}
		c := cfg.UI.DimText
		if opt == settings.SelectedOption {
			c = cfg.UI.SlotFocused
		}
		text.Draw(screen, row.label, face, w/2-160, y, c)
		if row.value != nil {
			text.Draw(screen, row.value(settings), face, w/2+20, y, c)
		}
		y += rowH + rowGap
	}

	hint := settingsHint(getOrCreateInput(e).State.Device)
	hintFace := fonts.HUD.Get()
	text.Draw(screen, hint, hintFace, w/2-text.BoundString(hintFace, hint).Dx()/2, h-12, cfg.UI.DimText)
}

func settingsHint(device controls.DeviceClass) string {
	switch device {
	case controls.DeviceGamepad:
		return "D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	case controls.DeviceTouch:
		return "Tap MENU to close"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// formatVolumeBar renders a volume as a ten-cell bar and a percentage.
func formatVolumeBar(volume float64) string {
	filled := int(volume*10 + 0.5)
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100+0.5))
}

func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	return settingsFromSaved(e)
}

// OpenSettings opens the overlay with the live audio and window values.
func OpenSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.SelectedOption = components.SettingsOptMusicVolume
	if !settings.Muted {
		settings.MusicVolume = GetMusicVolume()
		settings.SFXVolume = GetSFXVolume()
	}
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen returns true if the settings overlay is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	entry, ok := components.SettingsMenu.First(e.World)
	return ok && components.SettingsMenu.Get(entry).IsOpen
}
