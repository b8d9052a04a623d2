package systems

import (
	"github.com/automoto/emberveil/components"
	"github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/view"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	s, ok := getSession(e)
	if !ok {
		return
	}
	player, ok := s.Store.Player()
	if !ok {
		return // not in the world yet, keep the last position
	}

	if !camera.Ready {
		camera.View.Snap(player.X, player.Y)
		camera.Ready = true
		return
	}
	camera.View.Follow(player.X, player.Y, config.Camera.FollowSmoothing)
}

// updateScreenShake sets this frame's shake offset and removes the
// component when the shake is over.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.ShakeX, camera.ShakeY = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	camera.ShakeX, camera.ShakeY = shake.Step()

	if shake.Done() {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	// Add or update screen shake component
	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Shake: view.Shake{Intensity: intensity, Duration: duration},
		})
	}
}

// CurrentCamera returns the camera to draw with.
func CurrentCamera(e *ecs.ECS) (view.Camera, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return view.Camera{}, false
	}
	return components.Camera.Get(entry).Frame(), true
}
