package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundSwing
	SoundSpin
	SoundBurst
	SoundDash
	SoundHit
	SoundMiss
	// Reward sounds
	SoundHeal
	SoundGold
	SoundLevelUp
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundShopOpen
	SoundChat
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Dir               string // directory holding the audio files, relative to the working dir
	WorldMusic        string
	LoginMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.6,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		Dir:        "assets",
		WorldMusic: "audio/music/world.ogg",
		LoginMusic: "audio/music/login.ogg",
		SFXPaths: map[SoundID]string{
			SoundSwing:        "audio/sfx/swing.wav",
			SoundSpin:         "audio/sfx/spin.wav",
			SoundBurst:        "audio/sfx/burst.wav",
			SoundDash:         "audio/sfx/dash.wav",
			SoundHit:          "audio/sfx/hit.wav",
			SoundMiss:         "audio/sfx/miss.wav",
			SoundHeal:         "audio/sfx/heal.wav",
			SoundGold:         "audio/sfx/gold.wav",
			SoundLevelUp:      "audio/sfx/level_up.wav",
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
			SoundShopOpen:     "audio/sfx/shop_open.wav",
			SoundChat:         "audio/sfx/chat.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundHit:          1.5,
			SoundMenuNavigate: 0.6,
		},
	}
}
