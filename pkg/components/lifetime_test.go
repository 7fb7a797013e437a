package components

import (
	"testing"
	"time"
)

func TestLifetimeExpired(t *testing.T) {
	l := &LifetimeComponent{SpawnedAt: time.Second, MaxLifetime: 5 * time.Second}

	tests := []struct {
		now  time.Duration
		want bool
	}{
		{time.Second, false},
		{6 * time.Second, false},
		{6*time.Second + time.Millisecond, true},
	}
	for _, tt := range tests {
		if got := l.Expired(tt.now); got != tt.want {
			t.Errorf("Expired(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}
