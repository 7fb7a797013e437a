package components

import (
	"time"

	"github.com/decker502/crystalslime/pkg/utils"
)

// Facing 角色朝向
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// FacingFor 根据水平分量返回朝向，分量为 0 时保持当前朝向
func FacingFor(current Facing, dx float64) Facing {
	switch {
	case dx < 0:
		return FacingLeft
	case dx > 0:
		return FacingRight
	}
	return current
}

// PlayerComponent 玩家专属状态
//
// 帧计时器（击退、受伤冷却、技能冷却）每帧递减；
// 加速和无敌窗口记录为游戏时钟上的截止时刻。
type PlayerComponent struct {
	Facing    Facing
	LastDir   utils.Vec2 // 最近一次移动/瞄准方向（单位向量），无目标射击时使用
	BaseSpeed float64
	Speed     float64

	KnockbackTimer int // 剩余击退帧数，期间忽略移动输入
	DamageCooldown int // 剩余受伤冷却帧数
	SkillCooldown  int // 剩余技能冷却帧数

	SpeedBoostUntil time.Duration
	InvincibleUntil time.Duration

	DoubleShot  bool
	ScatterShot bool
}

// IsInvincible 在 now 时刻是否处于无敌窗口
func (p *PlayerComponent) IsInvincible(now time.Duration) bool {
	return now < p.InvincibleUntil
}

// IsBoosted 当前速度是否高于基础速度
func (p *PlayerComponent) IsBoosted() bool {
	return p.Speed > p.BaseSpeed
}

// SkillReady 技能是否可用
func (p *PlayerComponent) SkillReady() bool {
	return p.SkillCooldown == 0
}
