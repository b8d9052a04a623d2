package systems

import (
	"github.com/automoto/emberveil/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects ages transient visuals: effects count down their frames and
// floating texts rise and fade.
func UpdateEffects(ecs *ecs.ECS) {
	updateFloatingText(ecs)
	updateAutoDestroy(ecs)
}

func updateFloatingText(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.FloatingText.Each(ecs.World, func(e *donburi.Entry) {
		ft := components.FloatingText.Get(e)
		if !ft.Motion.Step() {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// updateAutoDestroy removes entities whose frame countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}
