package systems

import (
	"log"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
	"github.com/solarlune/resolv"
)

// CollisionSystem 每帧按固定顺序结算碰撞
//
//  1. 玩家子弹 vs 普通敌人 / 小首领 / 最终首领
//  2. 玩家 vs 各类危险物（音爆冲击波、敌方弹幕、敌人身体、首领身体、范围爆炸）
//  3. 玩家 vs 道具
//
// 玩家受伤统一经过 CombatSystem.DamagePlayer，受伤冷却保证 30 帧内最多掉一次血，
// 同一帧内无论命中多少种危险物都只结算一次。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	combat        *CombatSystem
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState, combat *CombatSystem) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
		combat:        combat,
	}
}

// hitbox 以实体位置为中心构造碰撞矩形
func (s *CollisionSystem) hitbox(id ecs.EntityID) (resolv.IShape, bool) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return nil, false
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return nil, false
	}
	return resolv.NewRectangleTopLeft(pos.X-col.Width/2, pos.Y-col.Height/2, col.Width, col.Height), true
}

// overlaps 判断两个实体的碰撞矩形是否相交
// 按包围盒判定，完全包含和完全重合都算相交；仅边缘相接不算
func (s *CollisionSystem) overlaps(a, b ecs.EntityID) bool {
	sa, ok := s.hitbox(a)
	if !ok {
		return false
	}
	sb, ok := s.hitbox(b)
	if !ok {
		return false
	}
	ba, bb := sa.Bounds(), sb.Bounds()
	return ba.Min.X < bb.Max.X && bb.Min.X < ba.Max.X &&
		ba.Min.Y < bb.Max.Y && bb.Min.Y < ba.Max.Y
}

// touching 返回与 subject 相交的候选实体
func (s *CollisionSystem) touching(subject ecs.EntityID, candidates []ecs.EntityID) []ecs.EntityID {
	var hits []ecs.EntityID
	for _, id := range candidates {
		if s.entityManager.IsAlive(id) && s.overlaps(subject, id) {
			hits = append(hits, id)
		}
	}
	return hits
}

// projectilesIn 返回指定分组的存活弹幕
func (s *CollisionSystem) projectilesIn(group components.ProjectileGroup) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		if proj.Group == group {
			result = append(result, id)
		}
	}
	return result
}

// Update 执行本帧碰撞结算
func (s *CollisionSystem) Update(deltaTime float64) {
	s.resolvePlayerBullets()
	if !s.gameState.IsRunning() {
		// 最终首领已被击败
		return
	}

	s.resolveHazards()
	s.resolvePickups()

	if _, health, _, ok := playerParts(s.entityManager, s.gameState.PlayerID); ok && health.IsDead() {
		log.Printf("[CollisionSystem] 玩家阵亡 (kills=%d)", s.gameState.Kills)
		if err := s.gameState.Lose(); err != nil {
			log.Printf("[CollisionSystem] Warning: %v", err)
		}
	}
}

// resolvePlayerBullets 一发子弹对本帧所有相交目标各造成一次伤害，然后消失
func (s *CollisionSystem) resolvePlayerBullets() {
	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)
	miniBosses := ecs.GetEntitiesWith1[*components.MiniBossComponent](s.entityManager)
	bosses := ecs.GetEntitiesWith1[*components.BossComponent](s.entityManager)

	for _, bullet := range s.projectilesIn(components.GroupPlayerBullet) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, bullet)
		hit := false

		for _, id := range s.touching(bullet, enemies) {
			s.combat.DamageEnemy(id, proj.Damage)
			hit = true
		}
		for _, id := range s.touching(bullet, miniBosses) {
			s.combat.DamageMiniBoss(id, proj.Damage)
			hit = true
		}
		for _, id := range s.touching(bullet, bosses) {
			s.combat.DamageBoss(id, proj.Damage)
			hit = true
		}

		if hit {
			s.entityManager.DestroyEntity(bullet)
		}
	}
}

func (s *CollisionSystem) resolveHazards() {
	gs := s.gameState
	playerID := gs.PlayerID
	pos, _, player, ok := playerParts(s.entityManager, playerID)
	if !ok {
		return
	}
	invincible := player.IsInvincible(gs.Clock.Now())

	// 音爆冲击波：击退 + 伤害；击退中不再重复结算
	for _, wave := range s.touching(playerID, s.projectilesIn(components.GroupSonicWave)) {
		s.entityManager.DestroyEntity(wave)
		if invincible || player.KnockbackTimer > 0 {
			continue
		}
		fallback := utils.Right
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, wave); ok {
			fallback = vel.Dir
		}
		away := pos.Vec().Sub(positionOf(s.entityManager, wave)).Normalize(fallback)
		s.combat.KnockbackPlayer(away)
		s.combat.DamagePlayer(projectileDamage(s.entityManager, wave))
	}

	// 普通弹幕
	for _, group := range []components.ProjectileGroup{
		components.GroupEnemyWave,
		components.GroupMiniBossWave,
		components.GroupBossBullet,
	} {
		for _, id := range s.touching(playerID, s.projectilesIn(group)) {
			s.entityManager.DestroyEntity(id)
			if !invincible {
				s.combat.DamagePlayer(projectileDamage(s.entityManager, id))
			}
		}
	}

	// 敌人身体：接触的敌人全部消失（不计击杀），结算一次伤害和一次掉落
	if hits := s.touching(playerID, ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)); len(hits) > 0 {
		for _, id := range hits {
			s.entityManager.DestroyEntity(id)
		}
		if !invincible {
			s.combat.DamagePlayer(1)
		}
		s.combat.RollDrop(pos.Vec())
	}

	// 首领身体：只有伤害实际生效时才把玩家推开
	bodies := ecs.GetEntitiesWith1[*components.MiniBossComponent](s.entityManager)
	bodies = append(bodies, ecs.GetEntitiesWith1[*components.BossComponent](s.entityManager)...)
	for _, id := range s.touching(playerID, bodies) {
		if invincible {
			continue
		}
		if s.combat.DamagePlayer(1) {
			s.combat.PushPlayer(pos, pos.Vec().Sub(positionOf(s.entityManager, id)), gs.Balance.Player.BodyPushDistance)
		}
	}

	// 范围爆炸：只取第一个满足条件的爆炸
	window := gs.Balance.Explosion.DamageWindowFrames
	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](s.entityManager) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](s.entityManager, id)
		if exp.Damage <= 0 || exp.Timer >= window {
			continue
		}
		if pos.Vec().Dist(positionOf(s.entityManager, id)) < exp.Radius && !invincible {
			s.combat.DamagePlayer(exp.Damage)
			break
		}
	}
}

func (s *CollisionSystem) resolvePickups() {
	gs := s.gameState
	_, health, player, ok := playerParts(s.entityManager, gs.PlayerID)
	if !ok {
		return
	}

	for _, id := range s.touching(gs.PlayerID, ecs.GetEntitiesWith1[*components.PickupComponent](s.entityManager)) {
		pickup, _ := ecs.GetComponent[*components.PickupComponent](s.entityManager, id)
		switch pickup.Kind {
		case components.PickupHealthPotion:
			health.Heal(1)
		case components.PickupSpeedBoost:
			applySpeedBoost(player, gs)
		}
		s.entityManager.DestroyEntity(id)
		gs.Audio.PlayCue(game.CuePickup)
	}
}

func projectileDamage(em *ecs.EntityManager, id ecs.EntityID) int {
	if proj, ok := ecs.GetComponent[*components.ProjectileComponent](em, id); ok && proj.Damage > 0 {
		return proj.Damage
	}
	return 1
}
