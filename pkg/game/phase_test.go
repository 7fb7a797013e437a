package game

import (
	"testing"

	"github.com/decker502/crystalslime/pkg/config"
)

func TestDerivePhase(t *testing.T) {
	b := config.DefaultBalance().Phase

	tests := []struct {
		name            string
		elapsed         int
		miniBossSpawned bool
		miniBossAlive   bool
		bossSpawned     bool
		want            Phase
	}{
		{"开局追击", 0, false, false, false, PhaseChase},
		{"29秒仍为追击", 29, false, false, false, PhaseChase},
		{"30秒开始射击", 30, false, false, false, PhaseShooting},
		{"60秒原地敌人", 60, false, false, false, PhaseStationary},
		{"小首领存活", 70, true, true, false, PhaseMiniBoss},
		{"小首领已死首领未至", 80, true, false, false, PhaseBossIncoming},
		{"首领战", 90, true, false, true, PhaseBoss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePhase(tt.elapsed, tt.miniBossSpawned, tt.miniBossAlive, tt.bossSpawned, b)
			if got != tt.want {
				t.Errorf("DerivePhase() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestShootingEnabled(t *testing.T) {
	b := config.DefaultBalance().Phase
	pt := PhaseTimer{ElapsedSeconds: 45}
	if !pt.ShootingEnabled(b) {
		t.Error("shooting should be enabled at 45s")
	}
	pt.MiniBossWarning = true
	if pt.ShootingEnabled(b) {
		t.Error("shooting should be disabled while frozen")
	}
	pt = PhaseTimer{ElapsedSeconds: 60}
	if pt.ShootingEnabled(b) {
		t.Error("shooting should be disabled from 60s")
	}
}
