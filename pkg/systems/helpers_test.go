package systems

import (
	"testing"
	"time"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
)

// testWorld 一局已开始的最小游戏世界：玩家在战场中心，时间为 0
type testWorld struct {
	em     *ecs.EntityManager
	gs     *game.GameState
	time   *game.MockTimeProvider
	audio  *game.AudioLog
	rng    *utils.ScriptedRand
	combat *CombatSystem
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	provider := game.NewMockTimeProvider(time.Unix(1000, 0))
	rng := &utils.ScriptedRand{}
	audio := &game.AudioLog{}
	gs := game.NewGameState(config.DefaultBalance(), game.NewGameClock(provider), rng, audio)
	if err := gs.BeginSession(); err != nil {
		t.Fatalf("BeginSession failed: %v", err)
	}

	em := ecs.NewEntityManager()
	gs.PlayerID = entities.NewPlayerEntity(em, gs.Balance)

	return &testWorld{
		em:     em,
		gs:     gs,
		time:   provider,
		audio:  audio,
		rng:    rng,
		combat: NewCombatSystem(em, gs),
	}
}

// advance 推进模拟墙钟
func (w *testWorld) advance(d time.Duration) {
	w.time.Advance(d)
}

func (w *testWorld) player(t *testing.T) (*components.PositionComponent, *components.HealthComponent, *components.PlayerComponent) {
	t.Helper()
	pos, health, player, ok := playerParts(w.em, w.gs.PlayerID)
	if !ok {
		t.Fatal("player entity is missing components")
	}
	return pos, health, player
}

func (w *testWorld) placePlayer(t *testing.T, x, y float64) {
	t.Helper()
	pos, _, _ := w.player(t)
	pos.X, pos.Y = x, y
}

func (w *testWorld) spawnEnemy(x, y float64) ecs.EntityID {
	return entities.NewEnemyEntity(w.em, w.gs.Balance, utils.V(x, y), components.EnemyChasing, false)
}

func (w *testWorld) spawnWave(group components.ProjectileGroup, x, y float64, dir utils.Vec2) ecs.EntityID {
	return entities.NewWave(w.em, group, utils.V(x, y), dir, 4)
}

// countProjectiles 统计指定分组的存活弹幕
func (w *testWorld) countProjectiles(group components.ProjectileGroup) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](w.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, id)
		if proj.Group == group {
			n++
		}
	}
	return n
}

func count[T any](em *ecs.EntityManager) int {
	return len(ecs.GetEntitiesWith1[T](em))
}
