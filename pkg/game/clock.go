package game

import "time"

// TimeProvider 墙钟时间来源
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider 使用系统时间
type SystemTimeProvider struct{}

// Now 返回当前系统时间
func (SystemTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider 可控的时间来源，用于测试
type MockTimeProvider struct {
	currentTime time.Time
}

// NewMockTimeProvider 以指定起始时间创建
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

// Now 返回当前模拟时间
func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

// Advance 推进模拟时间
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}

// GameClock 游戏时钟，会话内唯一的时间来源
//
// 提供两种计时：
//   - 帧计数（Tick），每个未暂停的逻辑帧 +1
//   - 游戏时长（Now），墙钟时长减去全部暂停时长
//
// 所有毫秒级窗口（预警、加速、无敌、道具寿命、延迟引爆）都基于 Now，
// 因此暂停期间这些窗口不会流逝。
type GameClock struct {
	provider TimeProvider

	startTime   time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	paused      bool

	ticks uint64
}

// NewGameClock 创建游戏时钟；provider 为 nil 时使用系统时间
func NewGameClock(provider TimeProvider) *GameClock {
	if provider == nil {
		provider = SystemTimeProvider{}
	}
	c := &GameClock{provider: provider}
	c.Reset()
	return c
}

// Reset 从当前墙钟时刻重新开始计时（新会话）
func (c *GameClock) Reset() {
	c.startTime = c.provider.Now()
	c.pausedAt = time.Time{}
	c.pausedTotal = 0
	c.paused = false
	c.ticks = 0
}

// Now 返回会话开始以来的游戏时长（不含暂停）
func (c *GameClock) Now() time.Duration {
	wall := c.provider.Now()
	if c.paused {
		wall = c.pausedAt
	}
	return wall.Sub(c.startTime) - c.pausedTotal
}

// Seconds 返回取整后的游戏秒数
func (c *GameClock) Seconds() int {
	return int(c.Now() / time.Second)
}

// Tick 推进一帧；暂停期间不计数
func (c *GameClock) Tick() {
	if c.paused {
		return
	}
	c.ticks++
}

// Ticks 返回已推进的帧数
func (c *GameClock) Ticks() uint64 {
	return c.ticks
}

// Pause 暂停计时，重复调用无副作用
func (c *GameClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.provider.Now()
}

// Resume 恢复计时，并把本次暂停时长计入总暂停时长
func (c *GameClock) Resume() {
	if !c.paused {
		return
	}
	c.pausedTotal += c.provider.Now().Sub(c.pausedAt)
	c.pausedAt = time.Time{}
	c.paused = false
}

// IsPaused 是否处于暂停
func (c *GameClock) IsPaused() bool {
	return c.paused
}

// PausedTotal 返回累计暂停时长（含进行中的暂停）
func (c *GameClock) PausedTotal() time.Duration {
	total := c.pausedTotal
	if c.paused {
		total += c.provider.Now().Sub(c.pausedAt)
	}
	return total
}
