package utils

import "math"

// Vec2 二维向量，用于位置、方向和位移计算
type Vec2 struct {
	X, Y float64
}

// V 构造 Vec2 的简写
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len 向量长度
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq 向量长度的平方（比较距离时避免开方）
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero 是否为零向量
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize 返回单位向量
// 零向量没有方向，此时返回 fallback（调用方通常传入上一次的朝向）
func (v Vec2) Normalize(fallback Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return fallback
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rotate 按角度（度，屏幕坐标系下顺时针为正）旋转向量
func (v Vec2) Rotate(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Dist 两点间距离
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Clamp 将点限制在 [minX,maxX]x[minY,maxY] 矩形内
func (v Vec2) Clamp(minX, minY, maxX, maxY float64) Vec2 {
	return Vec2{
		X: math.Max(minX, math.Min(maxX, v.X)),
		Y: math.Max(minY, math.Min(maxY, v.Y)),
	}
}

// Right 默认朝向（向右）
var Right = Vec2{X: 1, Y: 0}
