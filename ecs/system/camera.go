package system

import (
	"math/rand/v2"

	"github.com/Mairuzu0/Boost-Game/common"
	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
)

// CameraSystem turns shake requests into a decaying random offset on the
// camera entity.
type CameraSystem struct {
	camEntity ecs.Entity
	rng       *rand.Rand
}

func NewCameraSystem(seed uint64) *CameraSystem {
	return &CameraSystem{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}

	for _, e := range w.Query(component.CameraShakeRequestComponent.Kind()) {
		req, ok := ecs.Get(w, e, component.CameraShakeRequestComponent.Kind())
		if !ok {
			continue
		}
		if req.Duration > cam.ShakeRemaining {
			cam.ShakeRemaining = req.Duration
			cam.ShakeTotal = req.Duration
		}
		if req.Intensity > cam.ShakeIntensity {
			cam.ShakeIntensity = req.Intensity
		}
		ecs.Remove(w, e, component.CameraShakeRequestComponent.Kind())
	}

	if cam.ShakeRemaining <= 0 {
		cam.OffsetX, cam.OffsetY = 0, 0
		cam.ShakeIntensity = 0
		return
	}

	falloff := common.Clamp(float64(cam.ShakeRemaining)/float64(cam.ShakeTotal), 0, 1)
	amp := cam.ShakeIntensity * falloff
	cam.OffsetX = (cs.rng.Float64()*2 - 1) * amp
	cam.OffsetY = (cs.rng.Float64()*2 - 1) * amp
	cam.ShakeRemaining -= common.TickDuration
}
