package config

// 布局配置常量
// 本文件定义了战场尺寸、帧率以及各类实体的碰撞盒尺寸
// 所有坐标使用屏幕坐标系（左上角为原点，Y 轴向下）

// Board Configuration (战场配置)
const (
	// BoardWidth 战场宽度（像素）
	BoardWidth = 900.0

	// BoardHeight 战场高度（像素）
	BoardHeight = 700.0

	// TicksPerSecond 逻辑帧率（帧/秒）
	// 所有"帧"单位的计时器都以此为基准
	TicksPerSecond = 60

	// FrameDeltaTime 单帧时长（秒）
	FrameDeltaTime = 1.0 / TicksPerSecond
)

// Hitbox Configuration (碰撞盒尺寸，正方形边长)
const (
	PlayerSize     = 60.0
	EnemySize      = 50.0
	MiniBossSize   = 160.0
	BossSize       = 200.0
	BulletSize     = 8.0
	WaveSize       = 12.0
	BossBulletSize = 10.0
	BombSize       = 30.0
	PickupSize     = 20.0
)

// HUD Configuration (界面文字位置)
const (
	HUDMarginX     = 10
	HUDLineHeight  = 18
	BannerCenterY  = BoardHeight / 2
	BossBarWidth   = 600.0
	BossBarHeight  = 12.0
	BossBarOffsetY = 20.0
)
