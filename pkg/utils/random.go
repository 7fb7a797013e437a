package utils

// Rand 游戏逻辑使用的随机数来源
// *rand.Rand 满足此接口；测试中可替换为脚本化的实现以获得确定结果
type Rand interface {
	// Float64 返回 [0,1) 内的均匀随机数
	Float64() float64
	// Intn 返回 [0,n) 内的均匀随机整数
	Intn(n int) int
}

// RandRange 返回 [min,max] 闭区间内的随机整数
func RandRange(r Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}

// RandUniform 返回 [min,max) 内的随机浮点数
func RandUniform(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// OneIn 以 1/n 的概率返回 true
func OneIn(r Rand, n int) bool {
	if n <= 1 {
		return true
	}
	return r.Intn(n) == 0
}
