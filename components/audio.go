package components

import (
	cfg "github.com/automoto/emberveil/config"
	"github.com/yohamta/donburi"
)

// AudioData is the scene's queue of sounds to play on the next audio update
// (singleton component).
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
