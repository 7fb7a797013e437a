package utils

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVec2Normalize(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		fallback Vec2
		want     Vec2
	}{
		{"水平向量", V(10, 0), Right, V(1, 0)},
		{"斜向量", V(3, 4), Right, V(0.6, 0.8)},
		{"零向量使用 fallback", V(0, 0), V(0, 1), V(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize(tt.fallback)
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVec2Rotate(t *testing.T) {
	got := Right.Rotate(90)
	if !almostEqual(got.X, 0) || !almostEqual(got.Y, 1) {
		t.Errorf("Right.Rotate(90) = %v, want (0, 1)", got)
	}

	got = Right.Rotate(180)
	if !almostEqual(got.X, -1) || !almostEqual(got.Y, 0) {
		t.Errorf("Right.Rotate(180) = %v, want (-1, 0)", got)
	}

	// 旋转保持长度
	v := V(3, 4).Rotate(37)
	if !almostEqual(v.Len(), 5) {
		t.Errorf("Rotation changed length: %f", v.Len())
	}
}

func TestVec2Clamp(t *testing.T) {
	got := V(-5, 900).Clamp(20, 20, 880, 680)
	if got != V(20, 680) {
		t.Errorf("Clamp = %v, want (20, 680)", got)
	}
}

func TestRandRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		n := RandRange(r, 2, 3)
		if n < 2 || n > 3 {
			t.Fatalf("RandRange out of bounds: %d", n)
		}
	}
	if got := RandRange(r, 5, 5); got != 5 {
		t.Errorf("RandRange(5,5) = %d", got)
	}
}
