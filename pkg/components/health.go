package components

// HealthComponent 存储实体的生命值信息
// 用于玩家、敌人、小首领和最终首领
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// Damage 扣除生命值，返回扣除后是否死亡
// 生命值不会低于 0
func (h *HealthComponent) Damage(amount int) bool {
	h.CurrentHealth -= amount
	if h.CurrentHealth < 0 {
		h.CurrentHealth = 0
	}
	return h.CurrentHealth <= 0
}

// Heal 恢复生命值，不超过上限
func (h *HealthComponent) Heal(amount int) {
	h.CurrentHealth += amount
	if h.CurrentHealth > h.MaxHealth {
		h.CurrentHealth = h.MaxHealth
	}
}

// IsDead 生命值是否已归零
func (h *HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}
