package factory

import (
	"github.com/automoto/emberveil/archetypes"
	"github.com/automoto/emberveil/components"
	"github.com/automoto/emberveil/feedback"
	"github.com/automoto/emberveil/shared/messages"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnEffect creates a transient effect entity for a server effect event.
func SpawnEffect(ecs *ecs.ECS, evt messages.VisualEffectEvent) *donburi.Entry {
	style := feedback.Effect(evt.Kind)
	entry := archetypes.Effect.Spawn(ecs)
	components.Effect.Set(entry, &components.EffectData{
		Kind:  evt.Kind,
		X:     evt.X,
		Y:     evt.Y,
		Angle: evt.Angle,
		Style: style,
	})
	components.AutoDestroy.Set(entry, &components.AutoDestroyData{
		FramesRemaining: style.Life,
		Life:            style.Life,
	})
	return entry
}

// SpawnFloatingText creates a rising text for a server text event.
func SpawnFloatingText(ecs *ecs.ECS, evt messages.FloatingTextEvent) *donburi.Entry {
	style := feedback.Classify(evt.Kind, evt.Value)
	entry := archetypes.FloatingText.Spawn(ecs)
	components.FloatingText.Set(entry, &components.FloatingTextData{
		Text:   evt.Value,
		Style:  style,
		Motion: feedback.NewFloatingText(evt.X, evt.Y, style),
	})
	return entry
}
