package systems

import (
	"log"
	"math"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
)

// PlayerSystem 处理玩家移动、计时器、射击和技能
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	combat        *CombatSystem
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, gs *game.GameState, combat *CombatSystem) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		gameState:     gs,
		combat:        combat,
	}
}

// Update 推进玩家计时器并按输入移动
//
// 击退、受伤冷却、技能冷却每帧各减 1（击退期间同样递减）；
// 击退期间忽略移动输入。
func (s *PlayerSystem) Update(deltaTime float64, input game.InputSnapshot) {
	pos, _, player, ok := playerParts(s.entityManager, s.gameState.PlayerID)
	if !ok {
		return
	}

	knockedBack := player.KnockbackTimer > 0
	if player.KnockbackTimer > 0 {
		player.KnockbackTimer--
	}
	if player.DamageCooldown > 0 {
		player.DamageCooldown--
	}
	if player.SkillCooldown > 0 {
		player.SkillCooldown--
	}
	if player.IsBoosted() && s.gameState.Clock.Now() > player.SpeedBoostUntil {
		player.Speed = player.BaseSpeed
	}

	if knockedBack {
		return
	}

	dx, dy := input.Move()
	if dx != 0 {
		player.LastDir = utils.V(dx, 0)
		player.Facing = components.FacingFor(player.Facing, dx)
	}

	move := utils.V(dx, dy)
	if move.IsZero() {
		return
	}

	margin := s.gameState.Balance.Player.EdgeMargin
	next := pos.Vec().Add(move.Normalize(utils.Vec2{}).Scale(player.Speed))
	pos.Set(next.Clamp(margin, margin, config.BoardWidth-margin, config.BoardHeight-margin))
}

// nearestTarget 在普通敌人、小首领和最终首领中寻找离 from 最近的存活目标
func (s *PlayerSystem) nearestTarget(from utils.Vec2) (utils.Vec2, bool) {
	var targets []ecs.EntityID
	targets = append(targets, ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)...)
	targets = append(targets, ecs.GetEntitiesWith1[*components.MiniBossComponent](s.entityManager)...)
	targets = append(targets, ecs.GetEntitiesWith1[*components.BossComponent](s.entityManager)...)

	best := utils.Vec2{}
	bestDist := math.Inf(1)
	for _, id := range targets {
		p := positionOf(s.entityManager, id)
		if d := p.Sub(from).LenSq(); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// Shoot 发射子弹：自动瞄准最近的目标，无目标时沿最近的朝向射击
// 散射优先于双发
func (s *PlayerSystem) Shoot() {
	pos, _, player, ok := playerParts(s.entityManager, s.gameState.PlayerID)
	if !ok {
		return
	}

	origin := pos.Vec()
	if target, found := s.nearestTarget(origin); found {
		if aim := target.Sub(origin); !aim.IsZero() {
			player.LastDir = aim.Normalize(player.LastDir)
			player.Facing = components.FacingFor(player.Facing, player.LastDir.X)
		}
	}

	b := s.gameState.Balance
	dir := player.LastDir
	switch {
	case player.ScatterShot:
		off := b.Player.ScatterOffset
		origins := []utils.Vec2{
			origin,
			origin.Add(utils.V(-off, -off)),
			origin.Add(utils.V(off, -off)),
			origin.Add(utils.V(-off, off)),
			origin.Add(utils.V(off, off)),
		}
		for i, angle := range b.Player.ScatterAngles {
			at := origin
			if i < len(origins) {
				at = origins[i]
			}
			entities.NewPlayerBullet(s.entityManager, b, at, dir.Rotate(angle))
		}
	case player.DoubleShot:
		spread := b.Player.DoubleShotSpread
		entities.NewPlayerBullet(s.entityManager, b, origin, dir.Rotate(-spread))
		entities.NewPlayerBullet(s.entityManager, b, origin, dir.Rotate(spread))
	default:
		entities.NewPlayerBullet(s.entityManager, b, origin, dir)
	}

	s.gameState.Audio.PlayCue(game.CueShoot)
}

// UseSkill 释放清屏技能，冷却中返回 false
//
// 清除所有普通敌人和敌方弹幕（不计击杀），对小首领和最终首领造成技能伤害；
// 首领因此死亡时按正常击杀结算。
func (s *PlayerSystem) UseSkill() bool {
	_, _, player, ok := playerParts(s.entityManager, s.gameState.PlayerID)
	if !ok || !player.SkillReady() {
		return false
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](s.entityManager) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		switch proj.Group {
		case components.GroupEnemyWave, components.GroupMiniBossWave, components.GroupBossBullet:
			s.entityManager.DestroyEntity(id)
		}
	}

	b := s.gameState.Balance
	for _, id := range ecs.GetEntitiesWith1[*components.MiniBossComponent](s.entityManager) {
		s.combat.DamageMiniBoss(id, b.Player.SkillDamage)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.BossComponent](s.entityManager) {
		s.combat.DamageBoss(id, b.Player.SkillDamage)
	}

	player.SkillCooldown = b.Player.SkillCooldownFrames
	s.gameState.Audio.PlayCue(game.CueExplosion)
	log.Printf("[PlayerSystem] 释放技能，冷却 %d 帧", player.SkillCooldown)
	return true
}

// ApplyPowerUp 应用永久强化
func (s *PlayerSystem) ApplyPowerUp(choice game.PowerUpChoice) {
	_, _, player, ok := playerParts(s.entityManager, s.gameState.PlayerID)
	if !ok {
		return
	}
	switch choice {
	case game.ChoiceDoubleShot:
		player.DoubleShot = true
	case game.ChoiceScatterShot:
		player.ScatterShot = true
	default:
		return
	}
	s.gameState.Audio.PlayCue(game.CuePickup)
	log.Printf("[PlayerSystem] 获得强化: %s", choice)
}

// applySpeedBoost 加速并获得同样时长的无敌
func applySpeedBoost(player *components.PlayerComponent, gs *game.GameState) {
	pb := gs.Balance.Player
	until := gs.Clock.Now() + msToDuration(pb.SpeedBoostMs)
	player.Speed = player.BaseSpeed * pb.SpeedBoostMultiplier
	player.SpeedBoostUntil = until
	player.InvincibleUntil = until
}
