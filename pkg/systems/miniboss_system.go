package systems

import (
	"log"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
)

// MiniBossSystem 处理小首领的追踪、环形声波和炸弹召唤
type MiniBossSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewMiniBossSystem 创建小首领系统
func NewMiniBossSystem(em *ecs.EntityManager, gs *game.GameState) *MiniBossSystem {
	return &MiniBossSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 更新小首领
func (s *MiniBossSystem) Update(deltaTime float64) {
	mb := s.gameState.Balance.MiniBoss
	target := positionOf(s.entityManager, s.gameState.PlayerID)

	for _, id := range ecs.GetEntitiesWith2[*components.MiniBossComponent, *components.PositionComponent](s.entityManager) {
		boss, _ := ecs.GetComponent[*components.MiniBossComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// 半速追踪，限制在内缩的活动区域
		dir := target.Sub(pos.Vec()).Normalize(utils.Vec2{})
		next := pos.Vec().Add(dir.Scale(s.gameState.Balance.Enemy.Speed * mb.SpeedFactor))
		inset := mb.ClampInset
		pos.Set(next.Clamp(inset, inset, config.BoardWidth-inset, config.BoardHeight-inset))

		boss.RadialTimer++
		boss.BombTimer++

		if boss.RadialTimer >= mb.RadialPeriodFrames {
			boss.RadialTimer = 0
			s.fireRing(pos.Vec())
		}
		if boss.BombTimer >= mb.BombPeriodFrames {
			boss.BombTimer = 0
			s.summonBombs()
		}
	}
}

// fireRing 向四周均匀发射一圈声波
func (s *MiniBossSystem) fireRing(origin utils.Vec2) {
	mb := s.gameState.Balance.MiniBoss
	step := 360.0 / float64(mb.RadialCount)
	for i := 0; i < mb.RadialCount; i++ {
		dir := utils.Right.Rotate(float64(i) * step)
		entities.NewWave(s.entityManager, components.GroupMiniBossWave, origin, dir, mb.WaveSpeed)
	}
}

// summonBombs 在战场内随机位置召唤 BombMin~BombMax 枚炸弹
func (s *MiniBossSystem) summonBombs() {
	b := s.gameState.Balance
	rng := s.gameState.Rand
	count := utils.RandRange(rng, b.MiniBoss.BombMin, b.MiniBoss.BombMax)
	for i := 0; i < count; i++ {
		entities.NewBombEntity(s.entityManager, b, entities.RandomInteriorPosition(rng, b.MiniBoss.BombMargin), b.MiniBoss.BombWarningFrames)
	}
	log.Printf("[MiniBossSystem] 召唤 %d 枚炸弹", count)
}
