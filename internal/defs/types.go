// internal/defs/types.go
package defs

// MonsterKind defines the category of a monster.
type MonsterKind string

const (
	MonsterNormal MonsterKind = "NORMAL"
	MonsterElite  MonsterKind = "ELITE"
)

// TowerKind defines the category of a tower.
type TowerKind string

const (
	TowerNormal TowerKind = "NORMAL"
	TowerSlow   TowerKind = "SLOW"
)

// EffectType defines the kind of a temporary status effect.
type EffectType string

const (
	EffectSlow EffectType = "SLOW"
)

func (k MonsterKind) valid() bool {
	return k == MonsterNormal || k == MonsterElite
}

func (k TowerKind) valid() bool {
	return k == TowerNormal || k == TowerSlow
}

func (t EffectType) valid() bool {
	return t == EffectSlow
}
