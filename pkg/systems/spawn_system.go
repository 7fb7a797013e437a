package systems

import (
	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
)

// SpawnSystem 按每帧概率生成普通敌人和道具
// 时间冻结或强化选择期间由调用方跳过
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(em *ecs.EntityManager, gs *game.GameState) *SpawnSystem {
	return &SpawnSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 执行本帧的生成判定，各项判定相互独立
func (s *SpawnSystem) Update(deltaTime float64) {
	gs := s.gameState
	b := gs.Balance
	rng := gs.Rand
	elapsed := gs.Timer.ElapsedSeconds

	if elapsed < b.Phase.MiniBossSec && utils.OneIn(rng, b.Spawn.ChaserOneIn) {
		entities.NewEnemyEntity(s.entityManager, b, entities.RandomEdgePosition(rng), components.EnemyChasing, false)
	}
	if elapsed >= b.Phase.MiniBossSec && !gs.Timer.MiniBossSpawned && utils.OneIn(rng, b.Spawn.StationaryOneIn) {
		entities.NewEnemyEntity(s.entityManager, b, entities.RandomEdgePosition(rng), components.EnemyStationary, false)
	}

	if utils.OneIn(rng, b.Spawn.HealthPotionOneIn) {
		pos := entities.RandomInteriorPosition(rng, b.Spawn.PickupMargin)
		entities.NewPickupEntity(s.entityManager, b, components.PickupHealthPotion, pos, gs.Clock.Now())
	}
	if utils.OneIn(rng, b.Spawn.SpeedBoostOneIn) {
		pos := entities.RandomInteriorPosition(rng, b.Spawn.PickupMargin)
		entities.NewPickupEntity(s.entityManager, b, components.PickupSpeedBoost, pos, gs.Clock.Now())
	}
}
