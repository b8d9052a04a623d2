package components

import (
	"github.com/automoto/emberveil/controls"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed     bool // Currently held down
	JustPressed bool // Pressed this frame
}

// InputData holds the device readers and this frame's merged input state.
// Singleton; rebuilt once per frame by UpdateInput.
type InputData struct {
	Reader *controls.Reader
	State  controls.State

	// Typed is text entered this frame, consumed by the chat line.
	Typed []rune
}

var Input = donburi.NewComponentType[InputData]()
