package utils

import "math"

// 缓动函数：输入进度 t，超出 [0, 1] 的部分先被截断

// Clamp01 把 t 截断到 [0, 1]
func Clamp01(t float64) float64 {
	return math.Max(0, math.Min(1, t))
}

// EaseOutCubic 开始快、结束慢，用于爆炸半径的扩张
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInQuad 开始慢、结束快，用于淡出
func EaseInQuad(t float64) float64 {
	t = Clamp01(t)
	return t * t
}

// Lerp 在 a 和 b 之间插值（t 不截断）
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
