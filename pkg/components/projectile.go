package components

// ProjectileGroup 弹幕分组
// 分组决定碰撞对象以及命中玩家时是否附带击退
type ProjectileGroup int

const (
	// GroupPlayerBullet 玩家子弹，命中敌方单位
	GroupPlayerBullet ProjectileGroup = iota
	// GroupEnemyWave 普通敌人发射的声波
	GroupEnemyWave
	// GroupMiniBossWave 小首领环形声波
	GroupMiniBossWave
	// GroupBossBullet 最终首领散射弹
	GroupBossBullet
	// GroupSonicWave 音爆产生的冲击波，命中玩家时附带击退
	GroupSonicWave
)

// String 返回分组名称（日志使用）
func (g ProjectileGroup) String() string {
	switch g {
	case GroupPlayerBullet:
		return "PlayerBullet"
	case GroupEnemyWave:
		return "EnemyWave"
	case GroupMiniBossWave:
		return "MiniBossWave"
	case GroupBossBullet:
		return "BossBullet"
	case GroupSonicWave:
		return "SonicWave"
	}
	return "Unknown"
}

// HostileToPlayer 该分组是否会伤害玩家
func (g ProjectileGroup) HostileToPlayer() bool {
	return g != GroupPlayerBullet
}

// ProjectileComponent 弹幕状态
// 离开战场或寿命到期（LifetimeComponent）时销毁
type ProjectileComponent struct {
	Group  ProjectileGroup
	Damage int
}
