package archetypes

import (
	"github.com/automoto/emberveil/components"
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.AutoDestroy,
	)
	FloatingText = newArchetype(
		tags.FloatingText,
		components.FloatingText,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
