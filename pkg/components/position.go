package components

import "github.com/decker502/crystalslime/pkg/utils"

// PositionComponent 实体中心点的屏幕坐标
type PositionComponent struct {
	X float64
	Y float64
}

// Vec 以向量形式返回位置
func (p *PositionComponent) Vec() utils.Vec2 {
	return utils.V(p.X, p.Y)
}

// Set 用向量更新位置
func (p *PositionComponent) Set(v utils.Vec2) {
	p.X, p.Y = v.X, v.Y
}
