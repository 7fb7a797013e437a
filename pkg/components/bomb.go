package components

// BombComponent 炸弹状态
// 先预警 WarningFrames 帧，再经过 ArmedFrames 帧后引爆
type BombComponent struct {
	Timer         int
	WarningFrames int
	ArmedFrames   int
	Radius        float64
	WaveCount     int
}

// Warning 是否仍处于预警阶段
func (b *BombComponent) Warning() bool {
	return b.Timer < b.WarningFrames
}

// ShouldDetonate 是否到达引爆帧
func (b *BombComponent) ShouldDetonate() bool {
	return b.Timer == b.WarningFrames+b.ArmedFrames
}
