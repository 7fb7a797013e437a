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

// CombatSystem 集中处理伤害结算与击杀后果
//
// 子弹命中和技能伤害都经过这里，保证击杀计数、掉落、音爆和胜利判定只有一份实现。
// 它本身没有每帧逻辑，由 PlayerSystem 和 CollisionSystem 调用。
type CombatSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewCombatSystem 创建战斗结算系统
func NewCombatSystem(em *ecs.EntityManager, gs *game.GameState) *CombatSystem {
	return &CombatSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// playerParts 获取玩家的常用组件
func playerParts(em *ecs.EntityManager, id ecs.EntityID) (*components.PositionComponent, *components.HealthComponent, *components.PlayerComponent, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return nil, nil, nil, false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		return nil, nil, nil, false
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		return nil, nil, nil, false
	}
	return pos, health, player, true
}

// positionOf 返回实体位置；没有位置组件时返回零向量
func positionOf(em *ecs.EntityManager, id ecs.EntityID) utils.Vec2 {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		return pos.Vec()
	}
	return utils.Vec2{}
}

// DamageEnemy 对普通敌人造成伤害，返回是否击杀
func (s *CombatSystem) DamageEnemy(id ecs.EntityID, amount int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok || health.IsDead() {
		return false
	}
	if !health.Damage(amount) {
		return false
	}

	b := s.gameState.Balance
	pos := positionOf(s.entityManager, id)
	s.entityManager.DestroyEntity(id)
	s.gameState.AddKills(b.Enemy.KillScore)
	s.gameState.Audio.PlayCue(game.CueExplosion)

	explodes := s.gameState.Timer.ElapsedSeconds >= b.Phase.MiniBossSec
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); ok && enemy.ExplodesOnDeath {
		explodes = true
	}
	if explodes {
		entities.NewSonicExplosionEntity(s.entityManager, b, pos, b.Explosion.KillBurstRadius, b.Explosion.KillBurstWaves)
	}

	s.RollDrop(pos)
	return true
}

// DamageMiniBoss 对小首领造成伤害，返回是否击杀
func (s *CombatSystem) DamageMiniBoss(id ecs.EntityID, amount int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok || health.IsDead() {
		return false
	}
	if !health.Damage(amount) {
		return false
	}

	pos := positionOf(s.entityManager, id)
	s.entityManager.DestroyEntity(id)
	s.gameState.AddKills(s.gameState.Balance.MiniBoss.KillScore)
	s.gameState.Audio.PlayCue(game.CueExplosion)
	log.Printf("[CombatSystem] 小首领被击败 (kills=%d)", s.gameState.Kills)

	s.RollDrop(pos)
	return true
}

// DamageBoss 对最终首领造成伤害；击杀即胜利
func (s *CombatSystem) DamageBoss(id ecs.EntityID, amount int) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok || health.IsDead() {
		return false
	}
	if !health.Damage(amount) {
		return false
	}

	pos := positionOf(s.entityManager, id)
	s.entityManager.DestroyEntity(id)
	log.Printf("[CombatSystem] 最终首领被击败 (kills=%d)", s.gameState.Kills)
	if err := s.gameState.Win(); err != nil {
		log.Printf("[CombatSystem] Warning: %v", err)
	}

	s.RollDrop(pos)
	return true
}

// RollDrop 掷一次掉落：<0.4 生命药水，<0.8 加速道具，否则无掉落
func (s *CombatSystem) RollDrop(pos utils.Vec2) {
	b := s.gameState.Balance
	r := s.gameState.Rand.Float64()
	switch {
	case r < b.Spawn.DropHealthBelow:
		entities.NewPickupEntity(s.entityManager, b, components.PickupHealthPotion, pos, s.gameState.Clock.Now())
	case r < b.Spawn.DropSpeedBelow:
		entities.NewPickupEntity(s.entityManager, b, components.PickupSpeedBoost, pos, s.gameState.Clock.Now())
	}
}

// DamagePlayer 对玩家造成伤害，受伤冷却内或已阵亡时无效
// 返回伤害是否实际生效
func (s *CombatSystem) DamagePlayer(amount int) bool {
	_, health, player, ok := playerParts(s.entityManager, s.gameState.PlayerID)
	if !ok {
		return false
	}
	if player.DamageCooldown > 0 || health.CurrentHealth <= 0 {
		return false
	}

	health.Damage(amount)
	player.DamageCooldown = s.gameState.Balance.Player.DamageCooldownFrames
	s.gameState.Audio.PlayCue(game.CueHit)
	return true
}

// KnockbackPlayer 把玩家沿 dir 方向瞬间推开，并在击退期间屏蔽移动输入
// 已处于击退中时不叠加
func (s *CombatSystem) KnockbackPlayer(dir utils.Vec2) {
	pos, _, player, ok := playerParts(s.entityManager, s.gameState.PlayerID)
	if !ok || player.KnockbackTimer > 0 {
		return
	}

	pb := s.gameState.Balance.Player
	s.PushPlayer(pos, dir, pb.KnockbackStrength)
	player.KnockbackTimer = pb.KnockbackFrames
}

// PushPlayer 沿 dir 推动玩家 distance 像素并限制在战场内；dir 为零向量时不动
func (s *CombatSystem) PushPlayer(pos *components.PositionComponent, dir utils.Vec2, distance float64) {
	if dir.IsZero() {
		return
	}
	margin := s.gameState.Balance.Player.EdgeMargin
	next := pos.Vec().Add(dir.Normalize(utils.Vec2{}).Scale(distance))
	pos.Set(next.Clamp(margin, margin, config.BoardWidth-margin, config.BoardHeight-margin))
}
