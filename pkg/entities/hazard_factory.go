package entities

import (
	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/utils"
)

// NewBombEntity 创建炸弹
// warningFrames 预警帧数（小首领 90，最终首领 180）
func NewBombEntity(em *ecs.EntityManager, b *config.BalanceConfig, pos utils.Vec2, warningFrames int) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.BombSize,
		Height: config.BombSize,
	})
	em.AddComponent(id, &components.BombComponent{
		WarningFrames: warningFrames,
		ArmedFrames:   b.Bomb.ArmedFrames,
		Radius:        b.Bomb.ExplosionRadius,
		WaveCount:     b.Bomb.WaveCount,
	})

	return id
}

// NewExplosionEntity 创建普通爆炸
// damage 为 0 时只是视觉效果，不会触发玩家受伤冷却
func NewExplosionEntity(em *ecs.EntityManager, b *config.BalanceConfig, pos utils.Vec2, radius float64, damage int) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	em.AddComponent(id, &components.ExplosionComponent{
		Kind:     components.ExplosionPlain,
		Radius:   radius,
		Damage:   damage,
		Lifetime: b.Explosion.LifetimeFrames,
	})

	return id
}

// NewSonicExplosionEntity 创建音爆：范围伤害，并在固定帧发射 waveCount 道冲击波
func NewSonicExplosionEntity(em *ecs.EntityManager, b *config.BalanceConfig, pos utils.Vec2, radius float64, waveCount int) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	em.AddComponent(id, &components.ExplosionComponent{
		Kind:      components.ExplosionSonic,
		Radius:    radius,
		Damage:    b.Explosion.Damage,
		Lifetime:  b.Explosion.SonicLifetimeFrames,
		WaveCount: waveCount,
	})

	return id
}
