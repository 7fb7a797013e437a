package components

// BossState 最终首领行为状态
type BossState int

const (
	BossIntro BossState = iota
	BossAttack1
	BossAttack2
	BossPhase2Idle
	BossPhase2Attack1
	BossPhase2Attack2
)

// String 返回状态名称
func (s BossState) String() string {
	switch s {
	case BossIntro:
		return "intro"
	case BossAttack1:
		return "attack1"
	case BossAttack2:
		return "attack2"
	case BossPhase2Idle:
		return "phase2_idle"
	case BossPhase2Attack1:
		return "phase2_attack1"
	case BossPhase2Attack2:
		return "phase2_attack2"
	}
	return "unknown"
}

// BossComponent 最终首领状态机数据
//
// 一阶段：intro → attack1 ⇄ attack2
// 生命值首次降到一半及以下时进入二阶段：phase2_idle → phase2_attack1 → phase2_attack2 → 随机
type BossComponent struct {
	State       BossState
	AttackPhase int // 1 或 2

	Timer       int // intro / phase2_idle 停顿计时
	AttackTimer int // 当前攻击状态已持续帧数
	SummonTimer int // 二阶段召唤计时，跨状态累计
	BombTimer   int // 二阶段炸弹计时
}
