// internal/defs/towers.go
package defs

import "time"

// TowerDefinition is a placeable tower archetype.
// Range and ProjectileSpeed are in pixels (per tick for the speed).
type TowerDefinition struct {
	Kind            TowerKind         `yaml:"kind"`
	Name            string            `yaml:"name"`
	Cost            int               `yaml:"cost"`
	Damage          int               `yaml:"damage"`
	Range           float64           `yaml:"range"`
	AttackInterval  time.Duration     `yaml:"attack_interval"`
	ProjectileSpeed float64           `yaml:"projectile_speed"`
	Effect          *EffectDefinition `yaml:"effect,omitempty"`
}

// EffectDefinition is the template of a status effect a tower applies on hit.
type EffectDefinition struct {
	Type     EffectType    `yaml:"type"`
	Value    float64       `yaml:"value"`
	Duration time.Duration `yaml:"duration"`
}
