package entities

import (
	"time"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/utils"
)

// newProjectile 创建沿 dir 匀速直线运动的弹幕
// dir 为零向量时沿画面右方飞行
func newProjectile(em *ecs.EntityManager, group components.ProjectileGroup, pos, dir utils.Vec2, speed, size float64) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{X: pos.X, Y: pos.Y})
	em.AddComponent(id, &components.VelocityComponent{
		Dir:   dir.Normalize(utils.Right),
		Speed: speed,
	})
	em.AddComponent(id, &components.CollisionComponent{Width: size, Height: size})
	em.AddComponent(id, &components.ProjectileComponent{Group: group, Damage: 1})

	return id
}

// NewPlayerBullet 创建玩家子弹
func NewPlayerBullet(em *ecs.EntityManager, b *config.BalanceConfig, pos, dir utils.Vec2) ecs.EntityID {
	return newProjectile(em, components.GroupPlayerBullet, pos, dir, b.Player.BulletSpeed, config.BulletSize)
}

// NewWave 创建声波类弹幕（敌人声波、小首领环形波、音爆冲击波）
func NewWave(em *ecs.EntityManager, group components.ProjectileGroup, pos, dir utils.Vec2, speed float64) ecs.EntityID {
	return newProjectile(em, group, pos, dir, speed, config.WaveSize)
}

// NewBossBullet 创建最终首领散射弹，寿命按游戏时钟计算
func NewBossBullet(em *ecs.EntityManager, b *config.BalanceConfig, pos, dir utils.Vec2, now time.Duration) ecs.EntityID {
	id := newProjectile(em, components.GroupBossBullet, pos, dir, b.Boss.BulletSpeed, config.BossBulletSize)
	em.AddComponent(id, &components.LifetimeComponent{
		SpawnedAt:   now,
		MaxLifetime: time.Duration(b.Boss.BulletLifetimeMs) * time.Millisecond,
	})
	return id
}
