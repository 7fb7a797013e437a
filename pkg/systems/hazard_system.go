package systems

import (
	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
)

// BombSystem 推进炸弹计时：预警 -> 待爆 -> 引爆为音爆
type BombSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewBombSystem 创建炸弹系统
func NewBombSystem(em *ecs.EntityManager, gs *game.GameState) *BombSystem {
	return &BombSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 更新所有炸弹
func (s *BombSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.BombComponent](s.entityManager) {
		bomb, _ := ecs.GetComponent[*components.BombComponent](s.entityManager, id)
		bomb.Timer++
		if !bomb.ShouldDetonate() {
			continue
		}

		pos := positionOf(s.entityManager, id)
		entities.NewSonicExplosionEntity(s.entityManager, s.gameState.Balance, pos, bomb.Radius, bomb.WaveCount)
		s.gameState.Audio.PlayCue(game.CueExplosion)
		s.entityManager.DestroyEntity(id)
	}
}

// ExplosionSystem 推进爆炸动画，音爆在固定帧发射一圈冲击波
// 范围伤害由 CollisionSystem 结算
type ExplosionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewExplosionSystem 创建爆炸系统
func NewExplosionSystem(em *ecs.EntityManager, gs *game.GameState) *ExplosionSystem {
	return &ExplosionSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 更新所有爆炸
func (s *ExplosionSystem) Update(deltaTime float64) {
	eb := s.gameState.Balance.Explosion

	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](s.entityManager) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		exp.Timer++

		if exp.Kind == components.ExplosionSonic && !exp.RingFired && exp.Timer >= eb.RingFrame {
			exp.RingFired = true
			s.fireRing(positionOf(s.entityManager, id), exp.WaveCount)
		}

		if exp.Timer >= exp.Lifetime {
			s.entityManager.DestroyEntity(id)
		}
	}
}

func (s *ExplosionSystem) fireRing(origin utils.Vec2, count int) {
	if count <= 0 {
		return
	}
	speed := s.gameState.Balance.Explosion.WaveSpeed
	step := 360.0 / float64(count)
	for i := 0; i < count; i++ {
		entities.NewWave(s.entityManager, components.GroupSonicWave, origin, utils.Right.Rotate(float64(i)*step), speed)
	}
}
