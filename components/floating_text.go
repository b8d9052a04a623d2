package components

import (
	"github.com/automoto/emberveil/feedback"
	"github.com/yohamta/donburi"
)

// FloatingTextData is a rising combat/status text
type FloatingTextData struct {
	Text   string
	Style  feedback.TextStyle
	Motion feedback.FloatingText
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()
