package components

import "github.com/decker502/crystalslime/pkg/utils"

// EnemyMode 普通敌人的移动模式
type EnemyMode int

const (
	// EnemyChasing 追踪玩家
	EnemyChasing EnemyMode = iota
	// EnemyStationary 在出生点附近游荡
	EnemyStationary
)

// EnemyComponent 普通敌人状态
type EnemyComponent struct {
	Mode            EnemyMode
	Facing          Facing
	ShootTimer      int        // 射击计时（帧），仅在允许射击的阶段累加
	Home            utils.Vec2 // 游荡中心（出生点）
	ExplodesOnDeath bool       // 死亡时必定产生音爆（最终首领召唤的敌人）
}
