// internal/system/utils.go
package system

import (
	"corridor-defense/internal/entity"
	"corridor-defense/internal/types"
)

// ApplyDamage наносит урон монстру и возвращает остаток здоровья.
// Для несуществующей сущности возвращает false.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) (int, bool) {
	health, ok := ecs.Healths[entityID]
	if !ok {
		return 0, false
	}
	if damage < 0 {
		damage = 0
	}

	before := health.Value
	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}
	entity.AssertHealthNotIncreased(entityID, before, health.Value)
	return health.Value, true
}
