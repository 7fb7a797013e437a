package components

// PickupKind 道具类型
type PickupKind int

const (
	PickupHealthPotion PickupKind = iota
	PickupSpeedBoost
)

// PickupComponent 场上可拾取道具
type PickupComponent struct {
	Kind PickupKind
}
