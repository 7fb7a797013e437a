package scenes

import (
	"log"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 是唯一的游戏场景：标题、对局、暂停和结算都在这里切换
//
// 每帧流程（对局中且未暂停）：
//
//	时钟 -> 阶段 -> [强化选择] -> 生成 -> 射击/技能 -> 玩家 -> 弹幕 -> 敌人 -> 小首领
//	-> 最终首领 -> 延迟回调 -> 炸弹 -> 爆炸 -> 寿命 -> 碰撞 -> 清理已删除实体
//
// 时间冻结（预警、倒计时）期间只推进阶段系统，其余系统全部停止。
type GameScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	settings      *game.SettingsManager

	inputSystem      *systems.InputSystem
	combatSystem     *systems.CombatSystem
	playerSystem     *systems.PlayerSystem
	spawnSystem      *systems.SpawnSystem
	projectileSystem *systems.ProjectileSystem
	enemySystem      *systems.EnemySystem
	miniBossSystem   *systems.MiniBossSystem
	bossSystem       *systems.BossSystem
	bombSystem       *systems.BombSystem
	explosionSystem  *systems.ExplosionSystem
	lifetimeSystem   *systems.LifetimeSystem
	phaseSystem      *systems.PhaseSystem
	collisionSystem  *systems.CollisionSystem
	renderSystem     *systems.RenderSystem
}

// NewGameScene 创建游戏场景并生成玩家实体
// settings 可为 nil（不持久化设置）
func NewGameScene(gs *game.GameState, settings *game.SettingsManager) *GameScene {
	em := ecs.NewEntityManager()
	gs.PlayerID = entities.NewPlayerEntity(em, gs.Balance)

	combat := systems.NewCombatSystem(em, gs)
	player := systems.NewPlayerSystem(em, gs, combat)
	phase := systems.NewPhaseSystem(em, gs, player)

	scene := &GameScene{
		entityManager: em,
		gameState:     gs,
		settings:      settings,

		inputSystem:      systems.NewInputSystem(),
		combatSystem:     combat,
		playerSystem:     player,
		spawnSystem:      systems.NewSpawnSystem(em, gs),
		projectileSystem: systems.NewProjectileSystem(em),
		enemySystem:      systems.NewEnemySystem(em, gs),
		miniBossSystem:   systems.NewMiniBossSystem(em, gs),
		bossSystem:       systems.NewBossSystem(em, gs),
		bombSystem:       systems.NewBombSystem(em, gs),
		explosionSystem:  systems.NewExplosionSystem(em, gs),
		lifetimeSystem:   systems.NewLifetimeSystem(em, gs.Clock),
		phaseSystem:      phase,
		collisionSystem:  systems.NewCollisionSystem(em, gs, combat),
		renderSystem:     systems.NewRenderSystem(em, gs, phase),
	}

	if settings != nil {
		scene.renderSystem.SetShowHitboxes(settings.GetSettings().ShowHitboxes)
	}

	log.Printf("[GameScene] Scene created (player entity %d)", gs.PlayerID)
	return scene
}

// Update 采样输入并推进一帧
func (s *GameScene) Update(deltaTime float64) error {
	return s.Step(deltaTime, s.inputSystem.Poll())
}

// Step 用给定输入推进一帧
// 返回 ebiten.Termination 表示玩家选择退出程序
func (s *GameScene) Step(deltaTime float64, in game.InputSnapshot) error {
	gs := s.gameState
	s.handleSettingsKeys(in)

	switch gs.State {
	case game.StateTitle:
		if in.Quit {
			return ebiten.Termination
		}
		if in.Confirm || in.Clicked {
			s.startSession()
		}

	case game.StatePlaying:
		if in.Pause && !gs.Timer.Selecting {
			s.logIfErr(gs.TogglePause())
			return nil
		}
		s.tick(deltaTime, in)

	case game.StatePaused:
		switch {
		case in.Pause:
			s.logIfErr(gs.TogglePause())
		case in.Back:
			s.quitToTitle()
		}

	case game.StateGameOver:
		switch {
		case in.Quit:
			return ebiten.Termination
		case in.Confirm || in.Clicked:
			s.startSession()
		case in.Back:
			s.quitToTitle()
		}

	case game.StateVictory:
		if in.Confirm || in.Back || in.Clicked {
			s.quitToTitle()
		}
	}
	return nil
}

// tick 推进一个对局逻辑帧
func (s *GameScene) tick(deltaTime float64, in game.InputSnapshot) {
	gs := s.gameState
	defer s.entityManager.RemoveMarkedEntities()

	gs.Clock.Tick()
	s.phaseSystem.Update(deltaTime)

	if gs.Timer.Selecting {
		if choice := selectionChoice(in); choice != game.ChoiceNone {
			s.phaseSystem.ChoosePowerUp(choice)
		}
		return
	}
	if gs.Timer.Frozen() {
		return
	}

	s.spawnSystem.Update(deltaTime)

	if in.Shoot {
		s.playerSystem.Shoot()
	}
	if in.Skill {
		s.playerSystem.UseSkill()
	}
	s.playerSystem.Update(deltaTime, in)

	s.projectileSystem.Update(deltaTime)
	s.enemySystem.Update(deltaTime)
	s.miniBossSystem.Update(deltaTime)
	s.bossSystem.Update(deltaTime)
	gs.Scheduler.RunDue(gs.Clock.Now())
	s.bombSystem.Update(deltaTime)
	s.explosionSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)

	s.collisionSystem.Update(deltaTime)
}

// selectionChoice 从键盘或点击位置解析强化选择：左半屏双发，右半屏散射
func selectionChoice(in game.InputSnapshot) game.PowerUpChoice {
	if in.Choice != game.ChoiceNone {
		return in.Choice
	}
	if !in.Clicked {
		return game.ChoiceNone
	}
	if in.ClickX < config.BoardWidth/2 {
		return game.ChoiceDoubleShot
	}
	return game.ChoiceScatterShot
}

// startSession 开始新的一局（开始或重试）
func (s *GameScene) startSession() {
	if err := s.gameState.BeginSession(); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
		return
	}
	s.ResetWorld()
}

func (s *GameScene) quitToTitle() {
	if err := s.gameState.QuitToTitle(); err != nil {
		log.Printf("[GameScene] Warning: %v", err)
		return
	}
	s.ResetWorld()
}

// ResetWorld 清空除玩家外的全部实体，并把玩家恢复到开局状态
func (s *GameScene) ResetWorld() {
	em := s.entityManager
	for _, id := range em.GetEntitiesWith() {
		if id != s.gameState.PlayerID {
			em.DestroyEntity(id)
		}
	}
	em.RemoveMarkedEntities()
	entities.ResetPlayer(em, s.gameState.PlayerID, s.gameState.Balance)
	log.Printf("[GameScene] World reset")
}

func (s *GameScene) handleSettingsKeys(in game.InputSnapshot) {
	if s.settings == nil {
		return
	}
	changed := false
	if in.ToggleMusic {
		log.Printf("[GameScene] Music enabled: %v", s.settings.ToggleMusic())
		changed = true
	}
	if in.ToggleSound {
		log.Printf("[GameScene] Sound enabled: %v", s.settings.ToggleSound())
		changed = true
	}
	if in.ToggleHitboxes {
		s.renderSystem.SetShowHitboxes(s.settings.ToggleHitboxes())
		changed = true
	}
	if !changed {
		return
	}
	if applier, ok := s.gameState.Audio.(game.SettingsApplier); ok && s.gameState.State != game.StatePaused {
		applier.ApplySettings()
	}
}

func (s *GameScene) logIfErr(err error) {
	if err != nil {
		log.Printf("[GameScene] Warning: %v", err)
	}
}

// Draw 绘制整帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// Close 退出前保存设置
func (s *GameScene) Close() error {
	if s.settings == nil {
		return nil
	}
	return s.settings.Save()
}

// EntityManager 返回场景的实体管理器（供测试检查）
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// PlayerParts 返回玩家的位置、生命值和玩家组件
func (s *GameScene) PlayerParts() (*components.PositionComponent, *components.HealthComponent, *components.PlayerComponent) {
	em := s.entityManager
	id := s.gameState.PlayerID
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	health, _ := ecs.GetComponent[*components.HealthComponent](em, id)
	player, _ := ecs.GetComponent[*components.PlayerComponent](em, id)
	return pos, health, player
}
