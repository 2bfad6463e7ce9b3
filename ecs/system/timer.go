package system

import (
	"github.com/Mairuzu0/Boost-Game/common"
	"github.com/Mairuzu0/Boost-Game/ecs"
	"github.com/Mairuzu0/Boost-Game/timer"
)

// TimerSystem advances the scene's timer queue by one tick.
type TimerSystem struct {
	queue *timer.Queue
}

func NewTimerSystem(queue *timer.Queue) *TimerSystem {
	return &TimerSystem{queue: queue}
}

func (s *TimerSystem) Update(_ *ecs.World) {
	if s == nil || s.queue == nil {
		return
	}
	s.queue.Advance(common.TickDuration)
}
