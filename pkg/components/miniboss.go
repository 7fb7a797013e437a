package components

// MiniBossComponent 小首领状态
type MiniBossComponent struct {
	RadialTimer int // 环形弹幕计时（帧）
	BombTimer   int // 召唤炸弹计时（帧）
}
