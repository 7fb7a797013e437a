package entities

import (
	"time"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/utils"
)

// RandomInteriorPosition 在战场内缩 margin 的范围内随机取整数坐标（道具、炸弹）
func RandomInteriorPosition(rng utils.Rand, margin float64) utils.Vec2 {
	m := int(margin)
	x := utils.RandRange(rng, m, int(config.BoardWidth)-m)
	y := utils.RandRange(rng, m, int(config.BoardHeight)-m)
	return utils.V(float64(x), float64(y))
}

// NewPickupEntity 创建道具，寿命按游戏时钟计算
func NewPickupEntity(em *ecs.EntityManager, b *config.BalanceConfig, kind components.PickupKind, pos utils.Vec2, now time.Duration) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.PickupSize,
		Height: config.PickupSize,
	})
	em.AddComponent(id, &components.PickupComponent{Kind: kind})
	em.AddComponent(id, &components.LifetimeComponent{
		SpawnedAt:   now,
		MaxLifetime: time.Duration(b.Pickup.LifetimeMs) * time.Millisecond,
	})

	return id
}
