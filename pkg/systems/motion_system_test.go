package systems

import (
	"testing"
	"time"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/entities"
	"github.com/decker502/crystalslime/pkg/utils"
)

func TestProjectileMovement(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		dir       utils.Vec2
		wantX     float64
		wantY     float64
		wantAlive bool
	}{
		{"战场内直线移动", 450, 350, utils.V(1, 0), 460, 350, true},
		{"碰撞盒仍与战场重叠", 890, 350, utils.V(1, 0), 900, 350, true},
		{"完全飞出右边界", 896, 350, utils.V(1, 0), 906, 350, false},
		{"完全飞出上边界", 450, 5, utils.V(0, -1), 450, -5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			sys := NewProjectileSystem(w.em)
			id := entities.NewPlayerBullet(w.em, w.gs.Balance, utils.V(tt.x, tt.y), tt.dir)

			sys.Update(0)

			if p := positionOf(w.em, id); !almostEqual(p.X, tt.wantX) || !almostEqual(p.Y, tt.wantY) {
				t.Errorf("Expected (%v, %v), got %v", tt.wantX, tt.wantY, p)
			}
			if w.em.IsAlive(id) != tt.wantAlive {
				t.Errorf("Expected alive=%v", tt.wantAlive)
			}
		})
	}
}

func TestLifetimeExpiry(t *testing.T) {
	w := newTestWorld(t)
	sys := NewLifetimeSystem(w.em, w.gs.Clock)
	id := entities.NewPickupEntity(w.em, w.gs.Balance, components.PickupHealthPotion, utils.V(100, 100), w.gs.Clock.Now())

	w.advance(5 * time.Second)
	sys.Update(0)
	if !w.em.IsAlive(id) {
		t.Fatal("pickup should survive exactly 5000ms")
	}

	w.advance(time.Millisecond)
	sys.Update(0)
	if w.em.IsAlive(id) {
		t.Error("pickup should expire after 5000ms")
	}
}

func TestLifetimeIgnoresPause(t *testing.T) {
	w := newTestWorld(t)
	sys := NewLifetimeSystem(w.em, w.gs.Clock)
	id := entities.NewBossBullet(w.em, w.gs.Balance, utils.V(100, 100), utils.Right, w.gs.Clock.Now())

	w.advance(time.Second)
	w.gs.Clock.Pause()
	w.advance(time.Minute)
	w.gs.Clock.Resume()
	sys.Update(0)

	if !w.em.IsAlive(id) {
		t.Error("paused time should not count toward the bullet lifetime")
	}

	w.advance(1001 * time.Millisecond)
	sys.Update(0)
	if w.em.IsAlive(id) {
		t.Error("boss bullet should expire after 2000ms of game time")
	}
}
