package factory

import (
	"github.com/automoto/emberveil/archetypes"
	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/view"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		View: view.Camera{Width: float64(cfg.C.Width), Height: float64(cfg.C.Height)},
	})
}
