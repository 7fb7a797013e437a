package components

// ExplosionKind 爆炸类型
type ExplosionKind int

const (
	// ExplosionPlain 普通爆炸，仅范围伤害（伤害为 0 时只作视觉效果）
	ExplosionPlain ExplosionKind = iota
	// ExplosionSonic 音爆，范围伤害并在固定帧发射一圈冲击波
	ExplosionSonic
)

// ExplosionComponent 爆炸状态
type ExplosionComponent struct {
	Kind      ExplosionKind
	Radius    float64
	Damage    int
	Timer     int // 已持续帧数
	Lifetime  int // 总帧数
	WaveCount int // 音爆冲击波数量
	RingFired bool
}

// Progress 返回 [0,1] 的动画进度
func (e *ExplosionComponent) Progress() float64 {
	if e.Lifetime <= 0 {
		return 1
	}
	return float64(e.Timer) / float64(e.Lifetime)
}
