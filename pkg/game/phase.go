package game

import (
	"time"

	"github.com/decker502/crystalslime/pkg/config"
)

// Phase 会话阶段（HUD 显示与规则判定使用）
type Phase int

const (
	PhaseChase Phase = iota
	PhaseShooting
	PhaseStationary
	PhaseMiniBoss
	PhaseBossIncoming
	PhaseBoss
)

// String 返回 HUD 显示的阶段名称
func (p Phase) String() string {
	switch p {
	case PhaseChase:
		return "Phase 1: Enemies chase"
	case PhaseShooting:
		return "Phase 2: Enemies shoot"
	case PhaseStationary:
		return "Phase 3: Stationary Enemies"
	case PhaseMiniBoss:
		return "Phase 3: Miniboss Fight!"
	case PhaseBossIncoming:
		return "Phase 4: Boss Incoming"
	case PhaseBoss:
		return "Phase 4: Boss Fight!"
	}
	return "Unknown"
}

// DerivePhase 由经过秒数和首领标记推导阶段（纯函数）
func DerivePhase(elapsed int, miniBossSpawned, miniBossAlive, bossSpawned bool, b config.PhaseBalance) Phase {
	switch {
	case elapsed < b.ShootingStartSec:
		return PhaseChase
	case elapsed < b.MiniBossSec:
		return PhaseShooting
	case bossSpawned:
		return PhaseBoss
	case miniBossAlive:
		return PhaseMiniBoss
	case miniBossSpawned:
		return PhaseBossIncoming
	}
	return PhaseStationary
}

// BossWarningStage 最终首领登场预警阶段
type BossWarningStage int

const (
	BossWarningNone BossWarningStage = iota
	// BossWarningArrival 显示 "IT'S HERE!"
	BossWarningArrival
	// BossWarningGetReady 显示 "GET READY!"
	BossWarningGetReady
	// BossWarningCountdown 显示 3、2、1 倒计时
	BossWarningCountdown
)

// PhaseTimer 阶段计时状态
//
// ElapsedSeconds 只在未冻结时从游戏时钟刷新；冻结期间保持冻结时的值。
// 冻结结束后重新按游戏时钟计算，因此冻结时长会计入之后的经过秒数。
type PhaseTimer struct {
	ElapsedSeconds  int
	MiniBossSpawned bool
	BossSpawned     bool

	MiniBossWarning   bool
	MiniBossWarningAt time.Duration
	Selecting         bool // 强化选择中（阻塞）

	BossStage   BossWarningStage
	BossStageAt time.Duration
	Countdown   int
}

// Frozen 经过时间是否冻结（预警或强化选择期间）
// 冻结期间不生成、不移动、不结算碰撞
func (pt *PhaseTimer) Frozen() bool {
	return pt.MiniBossWarning || pt.Selecting || pt.BossStage != BossWarningNone
}

// ShootingEnabled 普通敌人是否允许射击
func (pt *PhaseTimer) ShootingEnabled(b config.PhaseBalance) bool {
	return !pt.Frozen() && pt.ElapsedSeconds >= b.ShootingStartSec && pt.ElapsedSeconds < b.MiniBossSec
}

// Reset 恢复初始状态
func (pt *PhaseTimer) Reset() {
	*pt = PhaseTimer{}
}
