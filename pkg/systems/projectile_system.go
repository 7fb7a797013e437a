package systems

import (
	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
)

// ProjectileSystem 推进所有弹幕的直线运动，并移除飞出战场的弹幕
type ProjectileSystem struct {
	entityManager *ecs.EntityManager
}

// NewProjectileSystem 创建弹幕运动系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{
		entityManager: em,
	}
}

// Update 每帧沿固定方向移动 Speed 像素
func (s *ProjectileSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[
		*components.ProjectileComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.entityManager)

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		pos.Set(pos.Vec().Add(vel.Dir.Scale(vel.Speed)))

		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if isOffBoard(pos, col) {
			s.entityManager.DestroyEntity(id)
		}
	}
}

// isOffBoard 判断碰撞盒是否已完全离开战场（边缘相切也算离开）
func isOffBoard(pos *components.PositionComponent, col *components.CollisionComponent) bool {
	halfW, halfH := 0.0, 0.0
	if col != nil {
		halfW, halfH = col.Width/2, col.Height/2
	}
	return pos.X+halfW <= 0 || pos.X-halfW >= config.BoardWidth ||
		pos.Y+halfH <= 0 || pos.Y-halfH >= config.BoardHeight
}
