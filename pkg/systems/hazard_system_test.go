package systems

import (
	"testing"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/game"
	"github.com/decker502/crystalslime/pkg/utils"
)

func TestBombDetonation(t *testing.T) {
	w := newTestWorld(t)
	sys := NewBombSystem(w.em, w.gs)
	id := entities.NewBombEntity(w.em, w.gs.Balance, utils.V(200, 200), 90)
	bomb, _ := ecs.GetComponent[*components.BombComponent](w.em, id)

	for frame := 1; frame < 150; frame++ {
		sys.Update(0)
		if wantWarning := frame < 90; bomb.Warning() != wantWarning {
			t.Fatalf("frame %d: Expected warning=%v", frame, wantWarning)
		}
	}
	if !w.em.IsAlive(id) || count[*components.ExplosionComponent](w.em) != 0 {
		t.Fatal("bomb should not detonate before frame 150")
	}

	sys.Update(0)

	if w.em.IsAlive(id) {
		t.Error("bomb should be removed after detonating")
	}
	explosions := ecs.GetEntitiesWith1[*components.ExplosionComponent](w.em)
	if len(explosions) != 1 {
		t.Fatalf("Expected 1 explosion, got %d", len(explosions))
	}
	exp, _ := ecs.GetComponent[*components.ExplosionComponent](w.em, explosions[0])
	if exp.Kind != components.ExplosionSonic || exp.Radius != 60 || exp.WaveCount != 8 || exp.Damage != 1 {
		t.Errorf("unexpected bomb explosion %+v", exp)
	}
	if p := positionOf(w.em, explosions[0]); p != utils.V(200, 200) {
		t.Errorf("Expected explosion at bomb position, got %v", p)
	}
	if got := w.audio.Count(game.CueExplosion); got != 1 {
		t.Errorf("Expected 1 explosion cue, got %d", got)
	}
}

func TestSonicExplosionRing(t *testing.T) {
	w := newTestWorld(t)
	sys := NewExplosionSystem(w.em, w.gs)
	id := entities.NewSonicExplosionEntity(w.em, w.gs.Balance, utils.V(300, 300), 60, 8)

	sys.Update(0)
	sys.Update(0)
	if n := w.countProjectiles(components.GroupSonicWave); n != 0 {
		t.Fatalf("ring should not fire before frame 3, got %d waves", n)
	}

	sys.Update(0)
	if n := w.countProjectiles(components.GroupSonicWave); n != 8 {
		t.Fatalf("Expected 8 waves on frame 3, got %d", n)
	}

	for frame := 4; frame < 30; frame++ {
		sys.Update(0)
	}
	if n := w.countProjectiles(components.GroupSonicWave); n != 8 {
		t.Errorf("ring should fire once, got %d waves", n)
	}
	if !w.em.IsAlive(id) {
		t.Fatal("sonic explosion should last 30 frames")
	}

	sys.Update(0)
	if w.em.IsAlive(id) {
		t.Error("sonic explosion should be removed on frame 30")
	}
}

func TestPlainExplosionLifetime(t *testing.T) {
	w := newTestWorld(t)
	sys := NewExplosionSystem(w.em, w.gs)
	id := entities.NewExplosionEntity(w.em, w.gs.Balance, utils.V(300, 300), 70, 0)

	for frame := 1; frame < 20; frame++ {
		sys.Update(0)
	}
	if !w.em.IsAlive(id) {
		t.Fatal("plain explosion should last 20 frames")
	}
	if n := w.countProjectiles(components.GroupSonicWave); n != 0 {
		t.Errorf("plain explosion should not fire waves, got %d", n)
	}

	sys.Update(0)
	if w.em.IsAlive(id) {
		t.Error("plain explosion should be removed on frame 20")
	}
}
