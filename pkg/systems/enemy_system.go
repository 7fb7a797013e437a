package systems

import (
	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
)

// EnemySystem 处理普通敌人的移动和射击
type EnemySystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewEnemySystem 创建普通敌人系统
func NewEnemySystem(em *ecs.EntityManager, gs *game.GameState) *EnemySystem {
	return &EnemySystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 移动所有普通敌人；射击阶段内按固定周期朝玩家发射声波
func (s *EnemySystem) Update(deltaTime float64) {
	target := positionOf(s.entityManager, s.gameState.PlayerID)
	shooting := s.gameState.Timer.ShootingEnabled(s.gameState.Balance.Phase)

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		switch enemy.Mode {
		case components.EnemyStationary:
			s.wander(enemy, pos)
		default:
			s.chase(enemy, pos, target)
		}

		if shooting {
			s.tryShoot(enemy, pos, target)
		}
	}
}

// chase 以固定速度直线追向玩家；与玩家重合时原地不动
func (s *EnemySystem) chase(enemy *components.EnemyComponent, pos *components.PositionComponent, target utils.Vec2) {
	dir := target.Sub(pos.Vec()).Normalize(utils.Vec2{})
	enemy.Facing = components.FacingFor(enemy.Facing, dir.X)
	pos.Set(pos.Vec().Add(dir.Scale(s.gameState.Balance.Enemy.Speed)))
}

// wander 在出生点附近随机游走，超出游荡半径时向出生点回拉
func (s *EnemySystem) wander(enemy *components.EnemyComponent, pos *components.PositionComponent) {
	eb := s.gameState.Balance.Enemy
	rng := s.gameState.Rand

	step := utils.V(utils.RandUniform(rng, -1, 1), utils.RandUniform(rng, -1, 1)).Normalize(utils.Vec2{})
	enemy.Facing = components.FacingFor(enemy.Facing, step.X)
	pos.Set(pos.Vec().Add(step.Scale(eb.Speed * eb.WanderStepFactor)))

	if pos.Vec().Dist(enemy.Home) > eb.WanderRadius {
		back := enemy.Home.Sub(pos.Vec()).Normalize(utils.Vec2{})
		pos.Set(pos.Vec().Add(back.Scale(eb.Speed * eb.ReturnStepFactor)))
	}
}

// tryShoot 射击计时达到周期时朝玩家发射一道声波
// 与玩家重合时向正下方发射
func (s *EnemySystem) tryShoot(enemy *components.EnemyComponent, pos *components.PositionComponent, target utils.Vec2) {
	eb := s.gameState.Balance.Enemy
	enemy.ShootTimer++
	if enemy.ShootTimer < eb.ShootPeriodFrames {
		return
	}
	enemy.ShootTimer = 0

	dir := target.Sub(pos.Vec()).Normalize(utils.V(0, 1))
	enemy.Facing = components.FacingFor(enemy.Facing, dir.X)
	entities.NewWave(s.entityManager, components.GroupEnemyWave, pos.Vec(), dir, eb.WaveSpeed)
}
