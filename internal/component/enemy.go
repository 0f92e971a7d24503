// internal/component/enemy.go
package component

import "corridor-defense/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID         string // id шаблона из каталога
	Kind          defs.MonsterKind
	ContactDamage int // урон игроку при достижении конца пути
	Width         float64
	Height        float64
	Reward        int
}
