package systems

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugGlyphWidth ebitenutil 调试字体的字符宽度，用于文本居中
const debugGlyphWidth = 6

var (
	colorBackground   = color.RGBA{R: 24, G: 20, B: 40, A: 255}
	colorPlayer       = color.RGBA{R: 110, G: 220, B: 255, A: 255}
	colorPlayerGhost  = color.RGBA{R: 110, G: 220, B: 255, A: 120}
	colorChaser       = color.RGBA{R: 90, G: 200, B: 90, A: 255}
	colorStationary   = color.RGBA{R: 170, G: 90, B: 210, A: 255}
	colorExploder     = color.RGBA{R: 230, G: 120, B: 60, A: 255}
	colorMiniBoss     = color.RGBA{R: 240, G: 150, B: 40, A: 255}
	colorBoss         = color.RGBA{R: 200, G: 30, B: 60, A: 255}
	colorPlayerBullet = color.RGBA{R: 255, G: 240, B: 80, A: 255}
	colorEnemyWave    = color.RGBA{R: 0, G: 200, B: 255, A: 255}
	colorSonicWave    = color.RGBA{R: 120, G: 255, B: 255, A: 255}
	colorBossBullet   = color.RGBA{R: 255, G: 50, B: 50, A: 255}
	colorBombWarning  = color.RGBA{R: 255, G: 0, B: 0, A: 180}
	colorBombArmed    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorBombCore     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorPotion       = color.RGBA{R: 255, G: 90, B: 140, A: 255}
	colorBoost        = color.RGBA{R: 170, G: 255, B: 60, A: 255}
	colorHitbox       = color.RGBA{R: 255, G: 255, B: 255, A: 160}
	colorBarBack      = color.RGBA{R: 60, G: 60, B: 60, A: 220}
	colorDim          = color.RGBA{A: 150}
	colorChoiceLeft   = color.RGBA{R: 40, G: 90, B: 160, A: 200}
	colorChoiceRight  = color.RGBA{R: 160, G: 70, B: 40, A: 200}
)

// RenderSystem 绘制战场实体、HUD 和各状态的界面文字
//
// 只读取组件数据，不修改任何游戏状态。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	phase         *PhaseSystem

	showHitboxes bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, phase *PhaseSystem) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		phase:         phase,
	}
}

// SetShowHitboxes 开关碰撞盒调试绘制
func (s *RenderSystem) SetShowHitboxes(show bool) {
	s.showHitboxes = show
}

// Draw 按当前游戏状态绘制整帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	switch s.gameState.State {
	case game.StateTitle:
		s.drawLines(screen, titleLines(s.gameState.HighScore))
		return
	case game.StatePlaying, game.StatePaused:
		s.drawWorld(screen)
		s.drawHUD(screen)
		s.drawPhaseOverlay(screen)
		if s.gameState.State == game.StatePaused {
			vector.DrawFilledRect(screen, 0, 0, float32(config.BoardWidth), float32(config.BoardHeight), colorDim, false)
			s.drawLines(screen, []string{"PAUSED", "", "P - resume", "Esc - quit to title"})
		}
	case game.StateVictory:
		s.drawWorld(screen)
		s.drawLines(screen, resultLines("VICTORY!", s.gameState, "Enter / Esc - back to title"))
	case game.StateGameOver:
		s.drawWorld(screen)
		s.drawLines(screen, resultLines("GAME OVER", s.gameState, "Enter / click - retry   Esc - title   Q - quit"))
	}
}

func (s *RenderSystem) drawWorld(screen *ebiten.Image) {
	em := s.entityManager

	for _, id := range ecs.GetEntitiesWith1[*components.PickupComponent](em) {
		pickup, _ := ecs.GetComponent[*components.PickupComponent](em, id)
		clr := colorPotion
		if pickup.Kind == components.PickupSpeedBoost {
			clr = colorBoost
		}
		s.fillBox(screen, id, clr)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.BombComponent](em) {
		bomb, _ := ecs.GetComponent[*components.BombComponent](em, id)
		p := positionOf(em, id)
		r := float32(config.BombSize / 2)
		if bomb.Warning() {
			pulse := float32(5 * math.Sin(float64(bomb.Timer)*0.3))
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r+pulse, colorBombWarning, true)
		} else {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, colorBombArmed, true)
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r/2, colorBombCore, true)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ExplosionComponent](em) {
		exp, _ := ecs.GetComponent[*components.ExplosionComponent](em, id)
		p := positionOf(em, id)
		progress := exp.Progress()
		alpha := uint8(utils.Lerp(200, 0, utils.EaseInQuad(progress)))
		clr := color.RGBA{R: 255, G: 100, A: alpha}
		if exp.Kind == components.ExplosionSonic {
			clr = color.RGBA{G: 150, B: 255, A: alpha}
		}
		radius := exp.Radius * utils.EaseOutCubic(progress)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(radius), clr, true)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		clr := colorChaser
		switch {
		case enemy.ExplodesOnDeath:
			clr = colorExploder
		case enemy.Mode == components.EnemyStationary:
			clr = colorStationary
		}
		s.fillBox(screen, id, clr)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.MiniBossComponent](em) {
		s.fillBox(screen, id, colorMiniBoss)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.BossComponent](em) {
		s.fillBox(screen, id, colorBoss)
	}

	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		p := positionOf(em, id)
		r := float32(4)
		if col != nil {
			r = float32(col.Width / 2)
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, projectileColor(proj.Group), true)
	}

	if _, _, player, ok := playerParts(em, s.gameState.PlayerID); ok {
		clr := colorPlayer
		if player.IsInvincible(s.gameState.Clock.Now()) {
			clr = colorPlayerGhost
		}
		s.fillBox(screen, s.gameState.PlayerID, clr)
		// 朝向标记
		p := positionOf(em, s.gameState.PlayerID)
		eyeX := p.X + config.PlayerSize/4
		if player.Facing == components.FacingLeft {
			eyeX = p.X - config.PlayerSize/4
		}
		vector.DrawFilledCircle(screen, float32(eyeX), float32(p.Y-config.PlayerSize/6), 5, color.White, true)
	}

	if s.showHitboxes {
		for _, id := range ecs.GetEntitiesWith2[*components.PositionComponent, *components.CollisionComponent](em) {
			col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
			p := positionOf(em, id)
			vector.StrokeRect(screen, float32(p.X-col.Width/2), float32(p.Y-col.Height/2), float32(col.Width), float32(col.Height), 1, colorHitbox, false)
		}
	}
}

func projectileColor(group components.ProjectileGroup) color.Color {
	switch group {
	case components.GroupPlayerBullet:
		return colorPlayerBullet
	case components.GroupSonicWave:
		return colorSonicWave
	case components.GroupBossBullet:
		return colorBossBullet
	}
	return colorEnemyWave
}

// fillBox 按碰撞盒大小填充实体矩形
func (s *RenderSystem) fillBox(screen *ebiten.Image, id ecs.EntityID, clr color.Color) {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return
	}
	p := positionOf(s.entityManager, id)
	vector.DrawFilledRect(screen, float32(p.X-col.Width/2), float32(p.Y-col.Height/2), float32(col.Width), float32(col.Height), clr, true)
}

func (s *RenderSystem) drawHUD(screen *ebiten.Image) {
	for i, line := range s.hudLines() {
		ebitenutil.DebugPrintAt(screen, line, config.HUDMarginX, config.HUDMarginX+i*config.HUDLineHeight)
	}

	y := float32(config.BossBarOffsetY)
	for _, id := range ecs.GetEntitiesWith1[*components.MiniBossComponent](s.entityManager) {
		s.drawBossBar(screen, id, "MINI BOSS", y, colorMiniBoss)
		y += config.BossBarHeight + config.HUDLineHeight
	}
	for _, id := range ecs.GetEntitiesWith1[*components.BossComponent](s.entityManager) {
		s.drawBossBar(screen, id, "BOSS", y, colorBoss)
		y += config.BossBarHeight + config.HUDLineHeight
	}
}

// hudLines 生成左上角的状态文本
func (s *RenderSystem) hudLines() []string {
	gs := s.gameState
	lines := make([]string, 0, 6)

	if _, health, player, ok := playerParts(s.entityManager, gs.PlayerID); ok {
		lines = append(lines, fmt.Sprintf("HP: %d/%d", health.CurrentHealth, health.MaxHealth))
		if player.SkillReady() {
			lines = append(lines, "Skill: READY (Enter)")
		} else {
			secs := int(math.Ceil(float64(player.SkillCooldown) / config.TicksPerSecond))
			lines = append(lines, fmt.Sprintf("Skill: %ds", secs))
		}
		var powerUps []string
		if player.DoubleShot {
			powerUps = append(powerUps, game.ChoiceDoubleShot.String())
		}
		if player.ScatterShot {
			powerUps = append(powerUps, game.ChoiceScatterShot.String())
		}
		if len(powerUps) > 0 {
			lines = append(lines, "Power-ups: "+strings.Join(powerUps, ", "))
		}
	}

	lines = append(lines,
		fmt.Sprintf("Kills: %d  High: %d", gs.Kills, gs.HighScore),
		fmt.Sprintf("Time: %ds", gs.Timer.ElapsedSeconds),
		s.phase.CurrentPhase().String(),
	)
	return lines
}

func (s *RenderSystem) drawBossBar(screen *ebiten.Image, id ecs.EntityID, label string, y float32, clr color.Color) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
	if !ok || health.MaxHealth <= 0 {
		return
	}
	x := float32(config.BoardWidth-config.BossBarWidth) / 2
	ratio := float32(health.CurrentHealth) / float32(health.MaxHealth)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s %d/%d", label, health.CurrentHealth, health.MaxHealth), int(x), int(y)-config.HUDLineHeight+2)
	vector.DrawFilledRect(screen, x, y, config.BossBarWidth, config.BossBarHeight, colorBarBack, false)
	vector.DrawFilledRect(screen, x, y, config.BossBarWidth*ratio, config.BossBarHeight, clr, false)
}

// drawPhaseOverlay 绘制预警文字和强化选择面板
func (s *RenderSystem) drawPhaseOverlay(screen *ebiten.Image) {
	t := &s.gameState.Timer

	switch {
	case t.MiniBossWarning:
		s.drawLines(screen, []string{"WARNING!", "", "A MINI BOSS IS APPROACHING"})
	case t.Selecting:
		half := float32(config.BoardWidth / 2)
		top := float32(config.BannerCenterY)
		vector.DrawFilledRect(screen, 40, top, half-60, 160, colorChoiceLeft, false)
		vector.DrawFilledRect(screen, half+20, top, half-60, 160, colorChoiceRight, false)
		printCentered(screen, "CHOOSE A POWER-UP", int(top)-2*config.HUDLineHeight)
		ebitenutil.DebugPrintAt(screen, "[1] "+game.ChoiceDoubleShot.String(), 60, int(top)+70)
		ebitenutil.DebugPrintAt(screen, "[2] "+game.ChoiceScatterShot.String(), int(half)+40, int(top)+70)
	case t.BossStage == game.BossWarningArrival:
		s.drawLines(screen, []string{"IT'S HERE..."})
	case t.BossStage == game.BossWarningGetReady:
		s.drawLines(screen, []string{"GET READY!"})
	case t.BossStage == game.BossWarningCountdown:
		s.drawLines(screen, []string{fmt.Sprintf("%d", t.Countdown)})
	}
}

// drawLines 在画面中央纵向排列多行文字
func (s *RenderSystem) drawLines(screen *ebiten.Image, lines []string) {
	y := config.BannerCenterY - len(lines)*config.HUDLineHeight/2
	for i, line := range lines {
		printCentered(screen, line, y+i*config.HUDLineHeight)
	}
}

func printCentered(screen *ebiten.Image, text string, y int) {
	x := (int(config.BoardWidth) - len(text)*debugGlyphWidth) / 2
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

func titleLines(highScore int) []string {
	return []string{
		"CRYSTAL SLIME CHRONICLES",
		"",
		"Arrows / WASD - move   Space - shoot   Enter - skill   P - pause",
		"",
		"Enter / click - start",
		"Q - quit",
		"",
		fmt.Sprintf("High score: %d", highScore),
	}
}

func resultLines(title string, gs *game.GameState, hint string) []string {
	return []string{
		title,
		"",
		fmt.Sprintf("Kills: %d", gs.Kills),
		fmt.Sprintf("High score: %d", gs.HighScore),
		"",
		hint,
	}
}
