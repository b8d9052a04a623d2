package systems

import (
	"log"
	"os"
	"sync"

	"github.com/automoto/emberveil/assets"
	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/feedback"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// mixer is the audio state shared by every scene. The device is opened
// lazily so headless code paths can queue sounds without one.
type mixer struct {
	ctx    *audio.Context
	loader *assets.AudioLoader

	music    *audio.Player
	musicKey string
	fade     *gween.Tween // nil unless the music is fading out

	musicVol float64
	sfxVol   float64
}

var (
	mix = mixer{
		musicVol: cfg.Audio.DefaultMusicVol,
		sfxVol:   cfg.Audio.DefaultSFXVol,
	}
	mixOnce sync.Once
)

func (m *mixer) open() {
	mixOnce.Do(func() {
		m.ctx = audio.NewContext(cfg.Audio.SampleRate)
		m.loader = assets.NewAudioLoader(m.ctx, os.DirFS(cfg.Sound.Dir))
	})
}

func (m *mixer) stopMusic() {
	if m.music != nil {
		_ = m.music.Close()
	}
	m.music = nil
	m.musicKey = ""
	m.fade = nil
}

// stepFade advances a running fade by one frame and stops the track at the end.
func (m *mixer) stepFade() {
	if m.fade == nil {
		return
	}
	v, done := m.fade.Update(1)
	if done {
		m.stopMusic()
		return
	}
	if m.music != nil {
		m.music.SetVolume(float64(v))
	}
}

func (m *mixer) playSFX(id cfg.SoundID) {
	if m.sfxVol <= 0 {
		return
	}
	path, ok := cfg.Sound.SFXPaths[id]
	if !ok {
		return
	}
	player, err := m.loader.LoadSFX(path)
	if err != nil {
		return
	}
	vol := m.sfxVol
	if mult, ok := cfg.Sound.VolumeMultipliers[id]; ok {
		vol *= mult
	}
	player.SetVolume(vol)
	player.Play()
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	mix.open()

	paths := make([]string, 0, len(cfg.Sound.SFXPaths))
	for _, p := range cfg.Sound.SFXPaths {
		paths = append(paths, p)
	}
	if failed := mix.loader.PreloadAll(paths); failed > 0 {
		log.Printf("[audio] %d of %d sound effects unavailable under %s", failed, len(paths), cfg.Sound.Dir)
	}
}

// UpdateAudio plays the sounds queued this frame and advances the music fade.
func UpdateAudio(e *ecs.ECS) {
	mix.open()
	mix.stepFade()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	q := components.Audio.Get(entry)
	for _, id := range q.PendingSFX {
		mix.playSFX(id)
	}
	q.PendingSFX = q.PendingSFX[:0]
}

// PlayMusic loops the track at path. Asking for the current track is a no-op.
func PlayMusic(e *ecs.ECS, path string) {
	mix.open()
	if mix.musicKey == path && mix.fade == nil {
		return
	}
	mix.stopMusic()

	player, err := mix.loader.LoadMusic(path)
	if err != nil {
		log.Printf("[audio] music %s: %v", path, err)
		return
	}
	player.SetVolume(mix.musicVol)
	player.Play()
	mix.music = player
	mix.musicKey = path
}

// FadeOutMusic fades the current track to silence over the configured frames.
func FadeOutMusic(e *ecs.ECS) {
	if mix.music == nil || mix.fade != nil {
		return
	}
	frames := float32(max(cfg.Audio.MusicFadeDuration, 1))
	mix.fade = gween.New(float32(mix.music.Volume()), 0, frames, ease.Linear)
}

// PlaySFX queues a sound effect to be played on the next UpdateAudio.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	q := GetOrCreateAudio(e)
	q.PendingSFX = append(q.PendingSFX, sound)
}

// PlayCue queues the sound for a feedback cue.
func PlayCue(e *ecs.ECS, cue feedback.Cue) {
	PlaySFX(e, SoundForCue(cue))
}

var cueSounds = map[feedback.Cue]cfg.SoundID{
	feedback.CueHit:      cfg.SoundHit,
	feedback.CueLevelUp:  cfg.SoundLevelUp,
	feedback.CueMiss:     cfg.SoundMiss,
	feedback.CueHeal:     cfg.SoundHeal,
	feedback.CueGold:     cfg.SoundGold,
	feedback.CueSwing:    cfg.SoundSwing,
	feedback.CueSpin:     cfg.SoundSpin,
	feedback.CueBurst:    cfg.SoundBurst,
	feedback.CueDash:     cfg.SoundDash,
	feedback.CueChat:     cfg.SoundChat,
	feedback.CueShop:     cfg.SoundShopOpen,
	feedback.CueNavigate: cfg.SoundMenuNavigate,
	feedback.CueConfirm:  cfg.SoundMenuSelect,
}

// SoundForCue maps a feedback cue to its sound effect.
func SoundForCue(cue feedback.Cue) cfg.SoundID {
	return cueSounds[cue]
}

// SetMusicVolume changes the music volume (0.0 - 1.0). A running fade keeps
// its own level.
func SetMusicVolume(e *ecs.ECS, volume float64) {
	mix.musicVol = volume
	if mix.music != nil && mix.fade == nil {
		mix.music.SetVolume(volume)
	}
}

func SetSFXVolume(e *ecs.ECS, volume float64) {
	mix.sfxVol = volume
}

func GetMusicVolume() float64 { return mix.musicVol }
func GetSFXVolume() float64 { return mix.sfxVol }

// GetOrCreateAudio returns the per-scene sound queue, creating it if needed.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
