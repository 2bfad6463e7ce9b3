package entity

import (
	"fmt"

	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
