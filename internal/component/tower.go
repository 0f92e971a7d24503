// internal/component/tower.go
package component

import (
	"corridor-defense/internal/defs"
	"corridor-defense/pkg/gridpath"
)

type Tower struct {
	Kind   defs.TowerKind
	Cell   gridpath.Cell // клетка, на которой стоит башня
	Cost   int
	Effect *defs.EffectDefinition // шаблон эффекта, копируется на каждое попадание
}
