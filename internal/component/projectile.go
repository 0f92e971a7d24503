// internal/component/projectile.go
package component

import (
	"corridor-defense/internal/defs"
	"corridor-defense/internal/types"
)

// Projectile представляет летящий самонаводящийся снаряд.
type Projectile struct {
	TargetID types.EntityID
	TowerID  types.EntityID
	Kind     defs.TowerKind // тип выпустившей башни, нужен для отрисовки
	Damage   int
	Speed    float64
	Effect   *defs.EffectDefinition
}
