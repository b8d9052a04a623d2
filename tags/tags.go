package tags

import "github.com/yohamta/donburi"

var (
	Camera       = donburi.NewTag().SetName("Camera")
	Effect       = donburi.NewTag().SetName("Effect")
	FloatingText = donburi.NewTag().SetName("FloatingText")
)
