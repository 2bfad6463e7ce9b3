package entity

import (
	"fmt"

	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
	"github.com/Mairuzu0/Boost-Game/levels"
)

const (
	zoneFriction   = 0.9
	zoneElasticity = 0.05
)

// LoadLevelToWorld creates the level bounds, the camera and one static body
// per zone.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}

	boundsEntity := ecs.CreateEntity(world)
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  lvl.Width,
		Height: lvl.Height,
	}); err != nil {
		return fmt.Errorf("level: add bounds: %w", err)
	}

	if _, err := NewCamera(world); err != nil {
		return err
	}

	for i, zone := range lvl.Zones {
		if _, err := NewZone(world, zone); err != nil {
			return fmt.Errorf("level %q: zone %d: %w", lvl.Name, i, err)
		}
	}

	return nil
}

// NewZone creates a static tagged body from a level zone.
func NewZone(world *ecs.World, zone levels.Zone) (ecs.Entity, error) {
	e := ecs.CreateEntity(world)
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
		X: zone.X + zone.W/2,
		Y: zone.Y + zone.H/2,
	}); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:      zone.W,
		Height:     zone.H,
		Friction:   zoneFriction,
		Elasticity: zoneElasticity,
		Static:     true,
	}); err != nil {
		return 0, fmt.Errorf("add physics body: %w", err)
	}
	if err := ecs.Add(world, e, component.ZoneComponent.Kind(), &component.Zone{Tag: zone.Tag}); err != nil {
		return 0, fmt.Errorf("add zone: %w", err)
	}
	if err := ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerTerrain}); err != nil {
		return 0, fmt.Errorf("add render layer: %w", err)
	}
	return e, nil
}
