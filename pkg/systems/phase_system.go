package systems

import (
	"log"
	"time"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
)

// PhaseSystem 推进关卡时间线：存活计时、小首领预警与强化选择、最终首领登场倒计时
//
// 预警、选择和倒计时期间时间冻结，ElapsedSeconds 停在冻结前的值；
// 解冻后重新按游戏时钟（不含暂停）计算。
type PhaseSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	player        *PlayerSystem
}

// NewPhaseSystem 创建阶段系统
func NewPhaseSystem(em *ecs.EntityManager, gs *game.GameState, player *PlayerSystem) *PhaseSystem {
	return &PhaseSystem{
		entityManager: em,
		gameState:     gs,
		player:        player,
	}
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Update 每个未暂停的帧调用一次（冻结期间同样调用）
func (s *PhaseSystem) Update(deltaTime float64) {
	t := &s.gameState.Timer
	pb := s.gameState.Balance.Phase
	now := s.gameState.Clock.Now()

	if !t.Frozen() {
		t.ElapsedSeconds = int(now / time.Second)
	}

	// 小首领预警
	if t.ElapsedSeconds >= pb.MiniBossSec && !t.MiniBossSpawned && !t.Selecting && !t.MiniBossWarning {
		t.MiniBossWarning = true
		t.MiniBossWarningAt = now
		log.Printf("[PhaseSystem] 小首领预警开始 (elapsed=%ds)", t.ElapsedSeconds)
	}
	if t.MiniBossWarning && now-t.MiniBossWarningAt >= msToDuration(pb.MiniBossWarningMs) {
		t.MiniBossWarning = false
		t.Selecting = true
		log.Printf("[PhaseSystem] 进入强化选择")
	}

	// 小首领被击败后的最终首领登场序列
	if t.ElapsedSeconds >= pb.MiniBossSec && t.MiniBossSpawned && !t.BossSpawned &&
		t.BossStage == game.BossWarningNone && !s.miniBossAlive() {
		t.BossStage = game.BossWarningArrival
		t.BossStageAt = now
		s.gameState.Audio.StopMusic()
		s.gameState.Audio.PlayMusic(game.TrackBoss)
		log.Printf("[PhaseSystem] 最终首领预警开始")
	}
	s.advanceBossStage(now)
}

func (s *PhaseSystem) advanceBossStage(now time.Duration) {
	t := &s.gameState.Timer
	pb := s.gameState.Balance.Phase
	if t.BossStage == game.BossWarningNone || now-t.BossStageAt < msToDuration(pb.BossStageMs) {
		return
	}

	switch t.BossStage {
	case game.BossWarningArrival:
		t.BossStage = game.BossWarningGetReady
		t.BossStageAt = now
	case game.BossWarningGetReady:
		t.BossStage = game.BossWarningCountdown
		t.BossStageAt = now
		t.Countdown = pb.BossCountdown
	case game.BossWarningCountdown:
		t.Countdown--
		t.BossStageAt = now
		if t.Countdown <= 0 {
			entities.NewBossEntity(s.entityManager, s.gameState.Balance)
			t.BossSpawned = true
			t.BossStage = game.BossWarningNone
			t.Countdown = 0
		}
	}
}

// ChoosePowerUp 在强化选择期间应用所选强化并让小首领登场
// 不在选择期间或选择无效时返回 false
func (s *PhaseSystem) ChoosePowerUp(choice game.PowerUpChoice) bool {
	t := &s.gameState.Timer
	if !t.Selecting || choice == game.ChoiceNone {
		return false
	}

	s.player.ApplyPowerUp(choice)
	t.Selecting = false
	t.MiniBossSpawned = true
	entities.NewMiniBossEntity(s.entityManager, s.gameState.Balance)
	return true
}

// CurrentPhase 返回用于 HUD 显示的当前阶段
func (s *PhaseSystem) CurrentPhase() game.Phase {
	t := &s.gameState.Timer
	return game.DerivePhase(t.ElapsedSeconds, t.MiniBossSpawned, s.miniBossAlive(), t.BossSpawned, s.gameState.Balance.Phase)
}

func (s *PhaseSystem) miniBossAlive() bool {
	return len(ecs.GetEntitiesWith1[*components.MiniBossComponent](s.entityManager)) > 0
}
