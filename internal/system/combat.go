// internal/system/combat.go
package system

import (
	"time"

	"corridor-defense/internal/component"
	"corridor-defense/internal/config"
	"corridor-defense/internal/entity"
	"corridor-defense/internal/types"
	"corridor-defense/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs *entity.ECS
}

func NewCombatSystem(ecs *entity.ECS) *CombatSystem {
	return &CombatSystem{ecs: ecs}
}

// Update: каждая готовая башня стреляет в первого монстра (в порядке появления)
// в радиусе. Время выстрела записывается после прохода по всем башням.
func (s *CombatSystem) Update(now time.Duration) {
	var fired []types.EntityID

	for _, id := range s.ecs.TowerOrder {
		combat, ok := s.ecs.Combats[id]
		if !ok || !combat.Ready(now) {
			continue
		}
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}

		targetID, found := s.findTarget(pos, combat.Range)
		if !found {
			continue
		}
		s.createProjectile(id, pos, targetID, combat)
		fired = append(fired, id)
	}

	for _, id := range fired {
		combat := s.ecs.Combats[id]
		combat.LastAttackTime = now
		combat.HasAttacked = true
	}
}

func (s *CombatSystem) findTarget(from *component.Position, attackRange float64) (types.EntityID, bool) {
	for _, id := range s.ecs.MonsterOrder {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		if utils.Distance(from.X, from.Y, pos.X, pos.Y) <= attackRange {
			return id, true
		}
	}
	return 0, false
}

func (s *CombatSystem) createProjectile(towerID types.EntityID, from *component.Position, targetID types.EntityID, combat *component.Combat) {
	tower := s.ecs.Towers[towerID]

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Projectiles[id] = &component.Projectile{
		TargetID: targetID,
		TowerID:  towerID,
		Kind:     tower.Kind,
		Damage:   combat.Damage,
		Speed:    combat.ProjectileSpeed,
		Effect:   tower.Effect,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColors[string(tower.Kind)],
		Radius: config.ProjectileRadius,
	}
	s.ecs.RegisterProjectile(id)
}
