package components

import "time"

// LifetimeComponent 管理按游戏时钟计时的实体寿命
// 用于道具和首领子弹；时钟在暂停期间不前进，暂停不会让实体提前过期
type LifetimeComponent struct {
	SpawnedAt   time.Duration // 生成时刻（游戏时钟）
	MaxLifetime time.Duration // 最大存活时长
}

// Expired 判断在 now 时刻是否已超过寿命
func (l *LifetimeComponent) Expired(now time.Duration) bool {
	return now-l.SpawnedAt > l.MaxLifetime
}
