package systems

import (
	"reflect"
	"testing"
)

func TestHUDLines(t *testing.T) {
	w := newTestWorld(t)
	player := NewPlayerSystem(w.em, w.gs, w.combat)
	render := NewRenderSystem(w.em, w.gs, NewPhaseSystem(w.em, w.gs, player))

	want := []string{
		"HP: 10/10",
		"Skill: READY (Enter)",
		"Kills: 0  High: 0",
		"Time: 0s",
		"Phase 1: Enemies chase",
	}
	if got := render.hudLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("hudLines() = %q, want %q", got, want)
	}

	_, health, p := w.player(t)
	health.CurrentHealth = 4
	p.SkillCooldown = 661
	p.DoubleShot = true
	p.ScatterShot = true
	w.gs.Kills = 7
	w.gs.HighScore = 20
	w.gs.Timer.ElapsedSeconds = 42

	want = []string{
		"HP: 4/10",
		"Skill: 12s",
		"Power-ups: Double Shot, Scatter Shot",
		"Kills: 7  High: 20",
		"Time: 42s",
		"Phase 2: Enemies shoot",
	}
	if got := render.hudLines(); !reflect.DeepEqual(got, want) {
		t.Errorf("hudLines() = %q, want %q", got, want)
	}
}

func TestTitleLinesShowHighScore(t *testing.T) {
	lines := titleLines(33)
	if last := lines[len(lines)-1]; last != "High score: 33" {
		t.Errorf("Expected high score line, got %q", last)
	}
}
