// internal/defs/enemies.go
package defs

// MonsterDefinition holds all the static data for a specific type of monster.
// Speed is measured in pixels per simulation tick.
type MonsterDefinition struct {
	ID            string      `yaml:"id"`
	Kind          MonsterKind `yaml:"kind"`
	HP            int         `yaml:"hp"`
	Speed         float64     `yaml:"speed"`
	ContactDamage int         `yaml:"contact_damage"`
	Width         float64     `yaml:"width"`
	Height        float64     `yaml:"height"`
	Reward        int         `yaml:"reward"`
}
