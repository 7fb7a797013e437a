package entities

import (
	"log"

	"github.com/decker502/crystalslime/pkg/components"
	"github.com/decker502/crystalslime/pkg/config"
	"github.com/decker502/crystalslime/pkg/ecs"
	"github.com/decker502/crystalslime/pkg/utils"
)

// PlayerSpawn 玩家出生点（战场中心）
var PlayerSpawn = utils.V(config.BoardWidth/2, config.BoardHeight/2)

// NewPlayerEntity 创建玩家实体
// 玩家在整个程序生命周期内只创建一次，之后每局通过 ResetPlayer 原地重置
func NewPlayerEntity(em *ecs.EntityManager, b *config.BalanceConfig) ecs.EntityID {
	id := em.CreateEntity()

	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.HealthComponent{})
	em.AddComponent(id, &components.CollisionComponent{
		Width:  config.PlayerSize,
		Height: config.PlayerSize,
	})
	em.AddComponent(id, &components.PlayerComponent{})

	ResetPlayer(em, id, b)
	log.Printf("[PlayerFactory] 创建玩家实体 %d", id)
	return id
}

// ResetPlayer 把玩家恢复到开局状态：满血、居中、基础速度、无强化、所有计时器清零
func ResetPlayer(em *ecs.EntityManager, id ecs.EntityID, b *config.BalanceConfig) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		pos.Set(PlayerSpawn)
	}
	if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
		health.MaxHealth = b.Player.MaxHealth
		health.CurrentHealth = b.Player.MaxHealth
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, id); ok {
		*player = components.PlayerComponent{
			Facing:    components.FacingRight,
			LastDir:   utils.Right,
			BaseSpeed: b.Player.BaseSpeed,
			Speed:     b.Player.BaseSpeed,
		}
	}
}
