package scenes

import (
	"errors"
	"testing"
	"time"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const dt = config.FrameDeltaTime

type sceneFixture struct {
	scene *GameScene
	gs    *game.GameState
	time  *game.MockTimeProvider
	audio *game.AudioLog
}

func newSceneFixture(t *testing.T) *sceneFixture {
	t.Helper()
	provider := game.NewMockTimeProvider(time.Unix(1000, 0))
	audio := &game.AudioLog{}
	gs := game.NewGameState(config.DefaultBalance(), game.NewGameClock(provider), &utils.ScriptedRand{}, audio)
	return &sceneFixture{
		scene: NewGameScene(gs, nil),
		gs:    gs,
		time:  provider,
		audio: audio,
	}
}

func (f *sceneFixture) step(t *testing.T, in game.InputSnapshot) {
	t.Helper()
	if err := f.scene.Step(dt, in); err != nil {
		t.Fatalf("Step returned %v", err)
	}
}

func (f *sceneFixture) start(t *testing.T) {
	t.Helper()
	f.step(t, game.InputSnapshot{Confirm: true})
	if f.gs.State != game.StatePlaying {
		t.Fatalf("Expected playing, got %s", f.gs.State)
	}
}

func TestTitleScreen(t *testing.T) {
	tests := []struct {
		name      string
		input     game.InputSnapshot
		wantState game.State
		wantQuit  bool
	}{
		{"无输入停留在标题", game.InputSnapshot{}, game.StateTitle, false},
		{"回车开始", game.InputSnapshot{Confirm: true}, game.StatePlaying, false},
		{"点击开始", game.InputSnapshot{Clicked: true, ClickX: 10}, game.StatePlaying, false},
		{"移动键不开始", game.InputSnapshot{Right: true}, game.StateTitle, false},
		{"退出", game.InputSnapshot{Quit: true}, game.StateTitle, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSceneFixture(t)

			err := f.scene.Step(dt, tt.input)

			if got := errors.Is(err, ebiten.Termination); got != tt.wantQuit {
				t.Fatalf("Expected termination=%v, got err=%v", tt.wantQuit, err)
			}
			if f.gs.State != tt.wantState {
				t.Errorf("Expected %s, got %s", tt.wantState, f.gs.State)
			}
		})
	}
}

func TestStartPlaysAmbientMusic(t *testing.T) {
	f := newSceneFixture(t)
	f.start(t)

	if got := f.audio.CurrentMusic(); got != game.TrackAmbient {
		t.Errorf("Expected ambient music, got %q", got)
	}
}

func TestPlayingMovesPlayer(t *testing.T) {
	f := newSceneFixture(t)
	f.start(t)

	f.step(t, game.InputSnapshot{Right: true})

	pos, _, _ := f.scene.PlayerParts()
	if pos.X != 455 || pos.Y != 350 {
		t.Errorf("Expected (455, 350), got (%v, %v)", pos.X, pos.Y)
	}
	if got := f.gs.Clock.Ticks(); got != 1 {
		t.Errorf("Expected 1 tick, got %d", got)
	}
}

func TestShootInsideFrame(t *testing.T) {
	f := newSceneFixture(t)
	f.start(t)

	f.step(t, game.InputSnapshot{Shoot: true})

	em := f.scene.EntityManager()
	bullets := ecs.GetEntitiesWith1[*components.ProjectileComponent](em)
	if len(bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(bullets))
	}
	// 发射当帧即已移动一次
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, bullets[0])
	if pos.X != 460 {
		t.Errorf("Expected bullet at x 460 after the first frame, got %v", pos.X)
	}
}

func TestPauseAndResume(t *testing.T) {
	f := newSceneFixture(t)
	f.start(t)

	f.step(t, game.InputSnapshot{Pause: true})
	if f.gs.State != game.StatePaused {
		t.Fatalf("Expected paused, got %s", f.gs.State)
	}
	if !f.audio.MusicPaused() {
		t.Error("music should pause with the game")
	}

	f.time.Advance(time.Minute)
	f.step(t, game.InputSnapshot{Right: true})
	pos, _, _ := f.scene.PlayerParts()
	if pos.X != 450 {
		t.Errorf("player should not move while paused, x = %v", pos.X)
	}

	f.step(t, game.InputSnapshot{Pause: true})
	if f.gs.State != game.StatePlaying {
		t.Fatalf("Expected playing after resume, got %s", f.gs.State)
	}
	if got := f.gs.Clock.Now(); got != 0 {
		t.Errorf("paused time should not count, clock = %v", got)
	}
}

func TestQuitToTitleResetsWorld(t *testing.T) {
	f := newSceneFixture(t)
	f.start(t)
	em := f.scene.EntityManager()
	entities.NewEnemyEntity(em, f.gs.Balance, utils.V(100, 100), components.EnemyChasing, false)
	entities.NewMiniBossEntity(em, f.gs.Balance)
	f.step(t, game.InputSnapshot{Right: true})
	f.gs.Kills = 9

	f.step(t, game.InputSnapshot{Pause: true})
	f.step(t, game.InputSnapshot{Back: true})

	if f.gs.State != game.StateTitle {
		t.Fatalf("Expected title, got %s", f.gs.State)
	}
	if got := len(em.GetEntitiesWith()); got != 1 {
		t.Errorf("Expected only the player to remain, got %d entities", got)
	}
	pos, _, _ := f.scene.PlayerParts()
	if pos.X != 450 || pos.Y != 350 {
		t.Errorf("Expected player reset to the center, got (%v, %v)", pos.X, pos.Y)
	}

	f.start(t)
	if f.gs.Kills != 0 || f.gs.Timer.ElapsedSeconds != 0 {
		t.Errorf("new session should start clean, kills=%d elapsed=%d", f.gs.Kills, f.gs.Timer.ElapsedSeconds)
	}
}

func TestPowerUpSelectionByClick(t *testing.T) {
	tests := []struct {
		name        string
		input       game.InputSnapshot
		wantDouble  bool
		wantScatter bool
	}{
		{"点击左半屏", game.InputSnapshot{Clicked: true, ClickX: 100}, true, false},
		{"点击右半屏", game.InputSnapshot{Clicked: true, ClickX: 700}, false, true},
		{"键盘选择", game.InputSnapshot{Choice: game.ChoiceScatterShot}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSceneFixture(t)
			f.start(t)
			f.gs.Timer.Selecting = true

			// 选择期间暂停键无效
			f.step(t, game.InputSnapshot{Pause: true})
			if f.gs.State != game.StatePlaying {
				t.Fatalf("pause should be ignored during selection, got %s", f.gs.State)
			}

			f.step(t, tt.input)

			_, _, player := f.scene.PlayerParts()
			if player.DoubleShot != tt.wantDouble || player.ScatterShot != tt.wantScatter {
				t.Errorf("Expected double=%v scatter=%v, got double=%v scatter=%v",
					tt.wantDouble, tt.wantScatter, player.DoubleShot, player.ScatterShot)
			}
			if f.gs.Timer.Selecting || !f.gs.Timer.MiniBossSpawned {
				t.Error("selection should end with the mini-boss spawned")
			}
		})
	}
}

func TestFrozenFrameSkipsSimulation(t *testing.T) {
	f := newSceneFixture(t)
	f.start(t)
	em := f.scene.EntityManager()
	enemy := entities.NewEnemyEntity(em, f.gs.Balance, utils.V(100, 100), components.EnemyChasing, false)
	f.gs.Timer.MiniBossWarning = true

	f.step(t, game.InputSnapshot{Right: true, Shoot: true})

	pos, _, _ := f.scene.PlayerParts()
	if pos.X != 450 {
		t.Errorf("player should not move during the warning, x = %v", pos.X)
	}
	if p, _ := ecs.GetComponent[*components.PositionComponent](em, enemy); p.X != 100 || p.Y != 100 {
		t.Errorf("enemy should not move during the warning, got (%v, %v)", p.X, p.Y)
	}
	if got := len(ecs.GetEntitiesWith1[*components.ProjectileComponent](em)); got != 0 {
		t.Errorf("shooting should be ignored during the warning, got %d bullets", got)
	}
}

func TestGameOverRetry(t *testing.T) {
	f := newSceneFixture(t)
	f.start(t)
	em := f.scene.EntityManager()
	entities.NewEnemyEntity(em, f.gs.Balance, utils.V(100, 100), components.EnemyChasing, false)
	_, health, player := f.scene.PlayerParts()
	health.CurrentHealth = 0
	player.ScatterShot = true
	f.gs.Kills = 3
	if err := f.gs.Lose(); err != nil {
		t.Fatalf("Lose failed: %v", err)
	}

	// 结算界面不推进逻辑
	f.step(t, game.InputSnapshot{Right: true})
	if f.gs.State != game.StateGameOver {
		t.Fatalf("Expected game over, got %s", f.gs.State)
	}

	f.step(t, game.InputSnapshot{Confirm: true})

	if f.gs.State != game.StatePlaying {
		t.Fatalf("Expected retry to start playing, got %s", f.gs.State)
	}
	if f.gs.HighScore != 3 {
		t.Errorf("Expected high score 3 to survive the retry, got %d", f.gs.HighScore)
	}
	if health.CurrentHealth != 10 || player.ScatterShot {
		t.Errorf("player should be reset, hp=%d scatter=%v", health.CurrentHealth, player.ScatterShot)
	}
	if got := len(ecs.GetEntitiesWith1[*components.EnemyComponent](em)); got != 0 {
		t.Errorf("Expected enemies cleared on retry, got %d", got)
	}
}

func TestGameOverQuit(t *testing.T) {
	f := newSceneFixture(t)
	f.start(t)
	if err := f.gs.Lose(); err != nil {
		t.Fatalf("Lose failed: %v", err)
	}

	if err := f.scene.Step(dt, game.InputSnapshot{Quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Expected ebiten.Termination, got %v", err)
	}
}

func TestVictoryReturnsToTitle(t *testing.T) {
	f := newSceneFixture(t)
	f.start(t)
	if err := f.gs.Win(); err != nil {
		t.Fatalf("Win failed: %v", err)
	}

	f.step(t, game.InputSnapshot{Clicked: true, ClickX: 100})

	if f.gs.State != game.StateTitle {
		t.Errorf("Expected title after victory, got %s", f.gs.State)
	}
}

func TestCloseWithoutSettings(t *testing.T) {
	f := newSceneFixture(t)
	if err := f.scene.Close(); err != nil {
		t.Errorf("Close without settings should succeed, got %v", err)
	}
}
