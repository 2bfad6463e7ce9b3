package system

import (
	"github.com/Mairuzu0/Boost-Game/common"
	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/ecs/component"
)

// RocketSystem hands each controller the contacts recorded by the last
// physics step, then runs its tick of manual control.
type RocketSystem struct{}

func NewRocketSystem() *RocketSystem {
	return &RocketSystem{}
}

func (s *RocketSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RocketControlComponent.Kind(), func(e ecs.Entity, rc *component.RocketControl) {
		if rc.Controller == nil {
			return
		}

		if contacts, ok := ecs.Get(w, e, component.ContactsComponent.Kind()); ok {
			for _, tag := range contacts.Tags {
				rc.Controller.HandleCollision(tag)
			}
			contacts.Tags = contacts.Tags[:0]
		}

		rc.Controller.Update(common.TickDuration)
	})
}
