package systems

import (
	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/game"
)

// LifetimeSystem 管理限时实体（道具、最终首领散射弹）的生命周期
// 存活时间按游戏时钟计算，暂停期间不会过期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	clock         *game.GameClock
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager, clock *game.GameClock) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
		clock:         clock,
	}
}

// Update 标记所有已过期的实体待删除
func (s *LifetimeSystem) Update(deltaTime float64) {
	now := s.clock.Now()
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if lifetime.Expired(now) {
			s.entityManager.DestroyEntity(id)
		}
	}
}
