package utils

// ScriptedRand 按预设序列返回随机数的 Rand 实现，用于测试中复现指定分支
// 仅供测试使用，导出是为了让其他包的测试也能注入
// 序列耗尽后 Float64 返回 0.99、Intn 返回 n-1（即"最不可能触发"的结果）
type ScriptedRand struct {
	Floats []float64
	Ints   []int
}

// Float64 返回下一个预设浮点数
func (s *ScriptedRand) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.99
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

// Intn 返回下一个预设整数（对 n 取模以保证落在合法区间）
func (s *ScriptedRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if len(s.Ints) == 0 {
		return n - 1
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return ((v % n) + n) % n
}
