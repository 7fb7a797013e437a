package systems

import (
	"log"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
)

// BossSystem 驱动最终首领的两阶段状态机
//
// 一阶段: intro -> attack1 <-> attack2
// 二阶段: phase2_idle -> phase2_attack1 -> phase2_attack2 -> 随机回到 attack1/attack2
// 生命值首次降到一半及以下时，无论处于哪个一阶段状态都立即切入二阶段。
type BossSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewBossSystem 创建最终首领系统
func NewBossSystem(em *ecs.EntityManager, gs *game.GameState) *BossSystem {
	return &BossSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 推进最终首领状态机
func (s *BossSystem) Update(deltaTime float64) {
	target := positionOf(s.entityManager, s.gameState.PlayerID)

	for _, id := range ecs.GetEntitiesWith3[*components.BossComponent, *components.PositionComponent, *components.HealthComponent](s.entityManager) {
		boss, _ := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)

		// 切换阶段的这一帧不再执行新状态的逻辑
		if boss.AttackPhase == 1 && health.CurrentHealth <= health.MaxHealth/2 {
			s.enterPhase2(boss)
			continue
		}

		if boss.AttackPhase == 1 {
			s.updatePhase1(boss, pos, target)
		} else {
			s.updatePhase2(boss, pos)
		}
	}
}

func (s *BossSystem) enterPhase2(boss *components.BossComponent) {
	log.Printf("[BossSystem] %s -> %s (生命值过半，进入二阶段)", boss.State, components.BossPhase2Idle)
	boss.AttackPhase = 2
	boss.State = components.BossPhase2Idle
	boss.Timer = 0
}

func (s *BossSystem) setState(boss *components.BossComponent, next components.BossState) {
	if boss.State != next {
		log.Printf("[BossSystem] %s -> %s", boss.State, next)
	}
	boss.State = next
}

func (s *BossSystem) updatePhase1(boss *components.BossComponent, pos *components.PositionComponent, target utils.Vec2) {
	bb := s.gameState.Balance.Boss
	origin := utils.V(bb.OriginX, bb.OriginY)

	switch boss.State {
	case components.BossIntro:
		boss.Timer++
		if boss.Timer > bb.IntroFrames {
			s.setState(boss, components.BossAttack1)
			boss.Timer = 0
			boss.AttackTimer = 0
		}

	case components.BossAttack1:
		pos.Set(origin)
		boss.AttackTimer++
		if boss.AttackTimer%bb.Attack1BurstPeriod == 0 {
			s.fireBurst(pos.Vec(), bb.Attack1BurstCount)
		}
		if boss.AttackTimer >= bb.Attack1Frames {
			s.setState(boss, components.BossAttack2)
			boss.AttackTimer = 0
		}

	case components.BossAttack2:
		if dir := target.Sub(pos.Vec()); !dir.IsZero() {
			pos.Set(pos.Vec().Add(dir.Normalize(utils.Vec2{}).Scale(bb.Attack2DriftSpeed)))
		}
		boss.AttackTimer++
		if boss.AttackTimer%bb.Attack2BurstPeriod == 0 {
			s.fireBurst(pos.Vec(), bb.Attack2BurstCount)
		}
		if boss.AttackTimer >= bb.Attack2Frames {
			s.setState(boss, components.BossAttack1)
			boss.AttackTimer = 0
			pos.Set(origin)
		}
	}
}

func (s *BossSystem) updatePhase2(boss *components.BossComponent, pos *components.PositionComponent) {
	bb := s.gameState.Balance.Boss

	switch boss.State {
	case components.BossPhase2Idle:
		boss.Timer++
		if boss.Timer > bb.Phase2IdleFrames {
			s.setState(boss, components.BossPhase2Attack1)
			boss.Timer = 0
			boss.AttackTimer = 0
		}

	case components.BossPhase2Attack1:
		boss.SummonTimer++
		if boss.SummonTimer%bb.SummonPeriod == 0 {
			s.summonMinions(bb.SummonCount)
		}
		boss.AttackTimer++
		if boss.AttackTimer >= bb.Phase2Attack1Frames {
			s.setState(boss, components.BossPhase2Attack2)
			boss.AttackTimer = 0
			boss.BombTimer = 0
		}

	case components.BossPhase2Attack2:
		center := utils.V(bb.CenterX, bb.CenterY)
		if pos.Vec().Dist(center) > bb.GlideSnapDistance {
			dir := center.Sub(pos.Vec()).Normalize(utils.Vec2{})
			pos.Set(pos.Vec().Add(dir.Scale(bb.GlideSpeed)))
		} else {
			pos.Set(center)
		}

		boss.BombTimer++
		if boss.BombTimer%bb.BombPeriod == 0 {
			s.summonBombs(bb.BombCount)
		}

		boss.AttackTimer++
		if boss.AttackTimer >= bb.Phase2Attack2Frames {
			next := components.BossPhase2Attack2
			if s.gameState.Rand.Intn(2) == 0 {
				next = components.BossPhase2Attack1
			}
			s.setState(boss, next)
			boss.AttackTimer = 0
		}
	}
}

// fireBurst 发射 count 发带随机偏角的散射弹
// 每发子弹独立地有一定概率在稍后被强制引爆为无伤害的视觉爆炸
func (s *BossSystem) fireBurst(origin utils.Vec2, count int) {
	b := s.gameState.Balance
	rng := s.gameState.Rand
	now := s.gameState.Clock.Now()
	step := 360.0 / float64(count)

	for i := 0; i < count; i++ {
		angle := float64(i)*step + utils.RandUniform(rng, -b.Boss.BurstJitter, b.Boss.BurstJitter)
		bullet := entities.NewBossBullet(s.entityManager, b, origin, utils.Right.Rotate(angle), now)

		if rng.Float64() < b.Boss.DetonationChance {
			delay := utils.RandRange(rng, b.Boss.DetonationMinMs, b.Boss.DetonationMaxMs)
			s.gameState.Scheduler.Schedule(now+msToDuration(delay), s.detonate(bullet))
		}
	}
}

// detonate 返回引爆指定子弹的回调；子弹已消失时什么也不做
func (s *BossSystem) detonate(bullet ecs.EntityID) game.ScheduledFunc {
	return func() {
		if !s.entityManager.IsAlive(bullet) {
			return
		}
		b := s.gameState.Balance
		entities.NewExplosionEntity(s.entityManager, b, positionOf(s.entityManager, bullet), b.Boss.DetonationRadius, 0)
		s.entityManager.DestroyEntity(bullet)
	}
}

// summonMinions 从战场边缘召唤死亡必爆的追踪敌人
func (s *BossSystem) summonMinions(count int) {
	for i := 0; i < count; i++ {
		pos := entities.RandomEdgePosition(s.gameState.Rand)
		entities.NewEnemyEntity(s.entityManager, s.gameState.Balance, pos, components.EnemyChasing, true)
	}
}

func (s *BossSystem) summonBombs(count int) {
	b := s.gameState.Balance
	for i := 0; i < count; i++ {
		pos := entities.RandomInteriorPosition(s.gameState.Rand, b.MiniBoss.BombMargin)
		entities.NewBombEntity(s.entityManager, b, pos, b.Boss.BombWarningFrames)
	}
}
