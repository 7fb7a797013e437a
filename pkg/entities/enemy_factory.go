package entities

import (
	"log"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/utils"
)

// RandomEdgePosition 在战场四条边之一上随机取点
func RandomEdgePosition(rng utils.Rand) utils.Vec2 {
	w, h := int(config.BoardWidth), int(config.BoardHeight)
	switch rng.Intn(4) {
	case 0: // 上
		return utils.V(float64(utils.RandRange(rng, 0, w)), 0)
	case 1: // 下
		return utils.V(float64(utils.RandRange(rng, 0, w)), config.BoardHeight)
	case 2: // 左
		return utils.V(0, float64(utils.RandRange(rng, 0, h)))
	default: // 右
		return utils.V(config.BoardWidth, float64(utils.RandRange(rng, 0, h)))
	}
}

// NewEnemyEntity 创建普通敌人
//
// 参数:
//   - pos: 出生点；原地游荡模式以此为游荡中心
//   - mode: 追踪或原地游荡
//   - explodesOnDeath: 死亡时是否必定产生音爆
func NewEnemyEntity(em *ecs.EntityManager, b *config.BalanceConfig, pos utils.Vec2, mode components.EnemyMode, explodesOnDeath bool) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: b.Enemy.Health,
		MaxHealth:     b.Enemy.Health,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.EnemySize,
		Height: config.EnemySize,
	})
	em.AddComponent(id, &components.EnemyComponent{
		Mode:            mode,
		Facing:          components.FacingRight,
		Home:            pos,
		ExplodesOnDeath: explodesOnDeath,
	})

	return id
}

// NewMiniBossEntity 创建小首领
func NewMiniBossEntity(em *ecs.EntityManager, b *config.BalanceConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: b.MiniBoss.SpawnX, Y: b.MiniBoss.SpawnY})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: b.MiniBoss.Health,
		MaxHealth:     b.MiniBoss.Health,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.MiniBossSize,
		Height: config.MiniBossSize,
	})
	em.AddComponent(id, &components.MiniBossComponent{})

	log.Printf("[EnemyFactory] 小首领登场 (entity %d, hp %d)", id, b.MiniBoss.Health)
	return id
}

// NewBossEntity 创建最终首领，初始处于 intro 状态
func NewBossEntity(em *ecs.EntityManager, b *config.BalanceConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: b.Boss.OriginX, Y: b.Boss.OriginY})
	em.AddComponent(id, &components.HealthComponent{
		CurrentHealth: b.Boss.Health,
		MaxHealth:     b.Boss.Health,
	})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.BossSize,
		Height: config.BossSize,
	})
	em.AddComponent(id, &components.BossComponent{
		State:       components.BossIntro,
		AttackPhase: 1,
	})

	log.Printf("[EnemyFactory] 最终首领登场 (entity %d, hp %d)", id, b.Boss.Health)
	return id
}
