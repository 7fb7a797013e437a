package components

import "github.com/decker502/crystalslime/pkg/utils"

// VelocityComponent 匀速直线运动
// Dir 为单位向量，每帧位移 = Dir * Speed
type VelocityComponent struct {
	Dir   utils.Vec2
	Speed float64
}
