package entity

import (
	"fmt"

	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
	"github.com/Mairuzu0/Boost-Game/prefabs"
	"golang.org/x/image/colornames"
)

// Emitter names the rocket controller expects on its entity.
const (
	EngineEmitter  = prefabs.EngineEmitter
	DeathEmitter   = prefabs.DeathEmitter
	SuccessEmitter = prefabs.SuccessEmitter
)

// NewRocketAt creates the rocket described by spec with its center at x, y,
// nose up. The controller is attached later by BindRocket, once the physics
// system has created the body.
func NewRocketAt(w *ecs.World, spec *prefabs.RocketSpec, x, y float64, muted bool) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("rocket: nil spec")
	}

	audioComp, err := buildAudioComponent(spec.Audio, muted)
	if err != nil {
		return 0, fmt.Errorf("rocket: %w", err)
	}

	e := ecs.CreateEntity(w)
	add := func(name string, err error) error {
		if err != nil {
			return fmt.Errorf("rocket: add %s: %w", name, err)
		}
		return nil
	}

	if err := add("tag", ecs.Add(w, e, component.RocketTagComponent.Kind(), &component.RocketTag{})); err != nil {
		return 0, err
	}
	if err := add("transform", ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})); err != nil {
		return 0, err
	}
	if err := add("physics body", ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      spec.Body.Width,
		Height:     spec.Body.Height,
		Mass:       spec.Body.Mass,
		Friction:   spec.Body.Friction,
		Elasticity: spec.Body.Elasticity,
	})); err != nil {
		return 0, err
	}
	if err := add("hull", ecs.Add(w, e, component.HullComponent.Kind(), &component.Hull{
		Width:  spec.Body.Width,
		Height: spec.Body.Height,
		Color:  spec.Hull.Color.Or(colornames.Whitesmoke),
		Window: spec.Hull.Window.Or(colornames.Lightskyblue),
	})); err != nil {
		return 0, err
	}
	if err := add("input", ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})); err != nil {
		return 0, err
	}
	if err := add("contacts", ecs.Add(w, e, component.ContactsComponent.Kind(), &component.Contacts{})); err != nil {
		return 0, err
	}
	if err := add("emitters", ecs.Add(w, e, component.ParticleEmittersComponent.Kind(), buildEmitters(spec.Emitters))); err != nil {
		return 0, err
	}
	if err := add("audio", ecs.Add(w, e, component.AudioComponent.Kind(), audioComp)); err != nil {
		return 0, err
	}
	if err := add("render layer", ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerRocket})); err != nil {
		return 0, err
	}

	return e, nil
}

func buildEmitters(specs []prefabs.EmitterSpec) *component.ParticleEmitters {
	items := make([]*component.ParticleEmitter, 0, len(specs))
	for _, s := range specs {
		items = append(items, &component.ParticleEmitter{
			Name:        s.Name,
			Burst:       s.Burst,
			Count:       s.Count,
			Rate:        s.Rate,
			Speed:       s.Speed,
			SpeedJitter: s.SpeedJitter,
			Spread:      s.Spread,
			Lifetime:    s.LifetimeSeconds,
			Size:        s.Size,
			Color:       s.Color.Or(colornames.White),
			OffsetX:     s.Offset.X,
			OffsetY:     s.Offset.Y,
			DirX:        s.Direction.X,
			DirY:        s.Direction.Y,
		})
	}
	return &component.ParticleEmitters{Items: items}
}
